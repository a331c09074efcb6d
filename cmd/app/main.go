package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prasetyowira/qrgen/api"
	"github.com/prasetyowira/qrgen/config"
	"github.com/prasetyowira/qrgen/constant"
	"github.com/prasetyowira/qrgen/domain/generator"
	"github.com/prasetyowira/qrgen/infrastructure/cache"
	"github.com/prasetyowira/qrgen/infrastructure/db"
	"github.com/prasetyowira/qrgen/infrastructure/encoder"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
	"github.com/prasetyowira/qrgen/infrastructure/rasterizer"
)

func printHelp() {
	helpInfo := []string{
		"QR Code Generator Parameters:",
		"1. Filename/Path (required) - Output file for QR code (.svg or .png)",
		"2. URL (required) - The web address to encode in the QR code",
		"3. Color (optional) - Hex color code for QR code dots (default: #000000)",
		"4. Shape (optional) - QR code dot shape. Options:",
		"   - square (default)",
		"   - circle",
		"   - dot",
		"",
		"Flags:",
		"-i      Print this help text",
		"-serve  Run the HTTP preview server (PORT env, default 8080)",
		"",
		"Usage Examples:",
		"qrgen myqr.png https://example.com",
		"qrgen myqr.svg https://example.com '#FF0000' circle",
		"qrgen ~/Downloads/myqr.png https://example.com",
	}
	fmt.Println(strings.Join(helpInfo, "\n"))
}

func main() {
	args := os.Args[1:]

	// Check for info flag
	if len(args) == 1 && args[0] == "-i" {
		printHelp()
		os.Exit(0)
	}

	// Load configuration from environment variables
	cfg := config.LoadConfig()

	// Initialize logger based on environment
	isProduction := cfg.LogLevel == "INFO"
	appLogger.Initialize(isProduction)
	defer appLogger.Close()

	serveMode := len(args) == 1 && args[0] == "-serve"

	if !serveMode && (len(args) < 2 || len(args) > 4) {
		fmt.Println("Error: Incorrect number of arguments.")
		printHelp()
		os.Exit(1)
	}

	appLogger.Info(constant.MsgApplicationStarting, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
		Data: map[string]interface{}{
			constant.DataDBPath:      cfg.HistoryDB,
			constant.DataEnvironment: cfg.LogLevel,
		},
	})

	// Create generation history repository when enabled
	var history generator.History
	if cfg.HistoryDB != "" {
		repository, err := db.NewSQLiteRepository(cfg.HistoryDB)
		if err != nil {
			appLogger.Fatal(constant.MsgFailedToInitDB, appLogger.LoggerInfo{
				ContextFunction: constant.CtxMain,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeAppDBInit,
					Message: err.Error(),
					Type:    constant.ErrTypeApp,
				},
				Data: map[string]interface{}{
					constant.DataDBPath: cfg.HistoryDB,
				},
			})
		}
		defer repository.Close()
		history = repository
	}

	// Create generator service
	service := generator.NewService(encoder.NewEncoder(), rasterizer.NewRasterizer(), history)

	if serveMode {
		runServer(cfg, service)
		return
	}

	req := generator.Request{
		Filename: args[0],
		URL:      args[1],
		Color:    constant.DefaultColor,
		Shape:    constant.DefaultShape,
	}
	if len(args) > 2 {
		req.Color = args[2]
	}
	if len(args) > 3 {
		req.Shape = args[3]
	}

	ctx := appLogger.WithRequestID(appLogger.NewRequestContext(), uuid.New().String())

	result, err := service.Generate(ctx, req)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		appLogger.Fatal(constant.MsgGenerationFailed, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppGenerate,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
			Data: map[string]interface{}{
				constant.DataFilename: req.Filename,
				constant.DataURL:      req.URL,
			},
		})
	}

	fmt.Printf("%s %s\n", constant.MsgQRCodeSaved, result.Path)
}

func runServer(cfg config.Config, service *generator.Service) {
	imageCache := cache.NewNamespaceLRU(cfg.CacheSize)

	// Create API handler and router
	handler := api.NewHandler(service, imageCache)
	router := api.NewRouter(handler)
	router.SetupRoutes()

	// Configure HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLogger.Info(constant.MsgServerStarting, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Data: map[string]interface{}{
				constant.DataPort: cfg.Port,
			},
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal(constant.MsgServerFailedToStart, appLogger.LoggerInfo{
				ContextFunction: constant.CtxMain,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeAppServerStart,
					Message: err.Error(),
					Type:    constant.ErrTypeApp,
				},
				Data: map[string]interface{}{
					constant.DataPort: cfg.Port,
				},
			})
		}
	}()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	appLogger.Info(constant.MsgServerShuttingDown, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
	})

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error(constant.MsgServerShutdownError, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppServerStart,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
		})
	}

	appLogger.Info(constant.MsgServerStopped, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
	})
}
