package generator

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prasetyowira/qrgen/constant"
	"github.com/prasetyowira/qrgen/domain/render"
	"github.com/prasetyowira/qrgen/infrastructure/logger"
)

// Encoder produces the QR module matrix for a URL
type Encoder interface {
	Encode(ctx context.Context, url string) ([][]bool, error)
}

// Rasterizer converts an SVG document into a PNG bitmap
type Rasterizer interface {
	Rasterize(ctx context.Context, svg io.Reader, out io.Writer) error
}

// Generation represents one generated QR code image
type Generation struct {
	ID        uint      `json:"id"`
	URL       string    `json:"url"`
	Path      string    `json:"path"`
	Color     string    `json:"color"`
	Shape     string    `json:"shape"`
	Format    string    `json:"format"`
	CreatedAt time.Time `json:"created_at"`
}

// History defines the interface for generation history persistence
type History interface {
	Record(ctx context.Context, gen *Generation) error
	Recent(ctx context.Context, limit int) ([]Generation, error)
}

// Request describes one QR code generation
type Request struct {
	Filename string
	URL      string
	Color    string
	Shape    string
}

// Result describes the produced image
type Result struct {
	Path   string
	Format string
}

// Service represents the domain service for QR code generation
type Service struct {
	encoder    Encoder
	rasterizer Rasterizer
	history    History
}

// NewService creates a new generator service. history may be nil when
// generation history is disabled.
func NewService(enc Encoder, ras Rasterizer, history History) *Service {
	ctx := logger.NewRequestContext()

	logger.CtxDebug(ctx, "Creating generator service", logger.LoggerInfo{
		ContextFunction: constant.CtxDomain,
		Data: map[string]interface{}{
			constant.DataService: "generator",
		},
	})

	return &Service{
		encoder:    enc,
		rasterizer: ras,
		history:    history,
	}
}

// Generate encodes the URL, renders the module matrix with the
// requested color and shape, and writes the image to the resolved
// output path. Validation runs before any rendering or file I/O, so
// a rejected request never leaves a partial output file behind.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	logger.CtxDebug(ctx, "Generating QR code", logger.LoggerInfo{
		ContextFunction: constant.CtxGenerate,
		Data: map[string]interface{}{
			constant.DataFilename: req.Filename,
			constant.DataURL:      req.URL,
			constant.DataColor:    req.Color,
			constant.DataShape:    req.Shape,
		},
	})

	shape, err := s.validate(ctx, req.URL, req.Shape)
	if err != nil {
		return nil, err
	}

	color := req.Color
	if color == "" {
		color = constant.DefaultColor
	}

	matrix, err := s.encoder.Encode(ctx, req.URL)
	if err != nil {
		logger.CtxError(ctx, "Failed to encode URL", logger.LoggerInfo{
			ContextFunction: constant.CtxGenerate,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeEncodeFailure,
				Message: err.Error(),
				Type:    constant.ErrTypeEncoding,
			},
			Data: map[string]interface{}{
				constant.DataURL: req.URL,
			},
		})
		return nil, err
	}

	drawing := render.Render(matrix, color, shape)

	path, format, err := resolveOutputPath(req.Filename)
	if err != nil {
		logger.CtxError(ctx, "Failed to resolve output path", logger.LoggerInfo{
			ContextFunction: constant.CtxGenerate,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeResolvePath,
				Message: err.Error(),
				Type:    constant.ErrTypeOutput,
			},
			Data: map[string]interface{}{
				constant.DataFilename: req.Filename,
			},
		})
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.CtxError(ctx, "Failed to create output directory", logger.LoggerInfo{
			ContextFunction: constant.CtxGenerate,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeWriteOutput,
				Message: err.Error(),
				Type:    constant.ErrTypeOutput,
			},
			Data: map[string]interface{}{
				constant.DataPath: path,
			},
		})
		return nil, err
	}

	var svgBuf bytes.Buffer
	drawing.WriteSVG(&svgBuf)

	if format == constant.FormatPNG {
		var pngBuf bytes.Buffer
		if err := s.rasterizer.Rasterize(ctx, &svgBuf, &pngBuf); err != nil {
			logger.CtxError(ctx, "Failed to rasterize drawing", logger.LoggerInfo{
				ContextFunction: constant.CtxGenerate,
				Error: &logger.CustomError{
					Code:    constant.ErrCodeRasterizeOutput,
					Message: err.Error(),
					Type:    constant.ErrTypeOutput,
				},
				Data: map[string]interface{}{
					constant.DataPath: path,
				},
			})
			return nil, err
		}
		if err := os.WriteFile(path, pngBuf.Bytes(), 0o644); err != nil {
			return nil, s.writeError(ctx, path, err)
		}
	} else {
		if err := os.WriteFile(path, svgBuf.Bytes(), 0o644); err != nil {
			return nil, s.writeError(ctx, path, err)
		}
	}

	s.record(ctx, &Generation{
		URL:       req.URL,
		Path:      path,
		Color:     color,
		Shape:     string(shape),
		Format:    format,
		CreatedAt: time.Now(),
	})

	logger.CtxInfo(ctx, constant.MsgQRCodeSaved, logger.LoggerInfo{
		ContextFunction: constant.CtxGenerate,
		Data: map[string]interface{}{
			constant.DataPath:    path,
			constant.DataFormat:  format,
			constant.DataModules: len(drawing.Primitives),
		},
	})

	return &Result{Path: path, Format: format}, nil
}

// RenderImage renders the QR code fully in memory and returns the
// image bytes, for callers that serve the image instead of writing a
// file.
func (s *Service) RenderImage(ctx context.Context, url, color, shapeName, format string) ([]byte, error) {
	shape, err := s.validate(ctx, url, shapeName)
	if err != nil {
		return nil, err
	}

	if color == "" {
		color = constant.DefaultColor
	}

	matrix, err := s.encoder.Encode(ctx, url)
	if err != nil {
		return nil, err
	}

	drawing := render.Render(matrix, color, shape)

	var svgBuf bytes.Buffer
	drawing.WriteSVG(&svgBuf)

	if format != constant.FormatPNG {
		return svgBuf.Bytes(), nil
	}

	var pngBuf bytes.Buffer
	if err := s.rasterizer.Rasterize(ctx, &svgBuf, &pngBuf); err != nil {
		return nil, err
	}
	return pngBuf.Bytes(), nil
}

// RecentGenerations returns the latest recorded generations
func (s *Service) RecentGenerations(ctx context.Context, limit int) ([]Generation, error) {
	if s.history == nil {
		return nil, errors.New(constant.ErrHistoryOff)
	}
	return s.history.Recent(ctx, limit)
}

// validate checks the URL and shape before any rendering starts
func (s *Service) validate(ctx context.Context, url, shapeName string) (render.Shape, error) {
	if url == "" {
		logger.CtxWarn(ctx, "URL cannot be empty", logger.LoggerInfo{
			ContextFunction: constant.CtxGenerate,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeEmptyURL,
				Message: constant.ErrEmptyURL,
				Type:    constant.ErrTypeValidation,
			},
		})
		return "", errors.New(constant.ErrEmptyURL)
	}

	if shapeName == "" {
		shapeName = constant.DefaultShape
	}

	shape, err := render.ParseShape(shapeName)
	if err != nil {
		logger.CtxWarn(ctx, "Invalid shape", logger.LoggerInfo{
			ContextFunction: constant.CtxGenerate,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeInvalidShape,
				Message: err.Error(),
				Type:    constant.ErrTypeValidation,
			},
			Data: map[string]interface{}{
				constant.DataShape: shapeName,
			},
		})
		return "", err
	}

	return shape, nil
}

// record stores the generation in history when history is enabled.
// Failures are logged and do not fail the generation itself.
func (s *Service) record(ctx context.Context, gen *Generation) {
	if s.history == nil {
		return
	}

	if err := s.history.Record(ctx, gen); err != nil {
		logger.CtxWarn(ctx, "Failed to record generation history", logger.LoggerInfo{
			ContextFunction: constant.CtxGenerate,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeRecordHistory,
				Message: err.Error(),
				Type:    constant.ErrTypeHistory,
			},
			Data: map[string]interface{}{
				constant.DataPath: gen.Path,
			},
		})
	}
}

func (s *Service) writeError(ctx context.Context, path string, err error) error {
	logger.CtxError(ctx, "Failed to write output file", logger.LoggerInfo{
		ContextFunction: constant.CtxGenerate,
		Error: &logger.CustomError{
			Code:    constant.ErrCodeWriteOutput,
			Message: err.Error(),
			Type:    constant.ErrTypeOutput,
		},
		Data: map[string]interface{}{
			constant.DataPath: path,
		},
	})
	return err
}

// resolveOutputPath turns the user-supplied filename into an
// absolute output path and format. An existing directory gets a
// timestamped filename appended; the extension follows whether the
// original argument asked for PNG.
func resolveOutputPath(filename string) (string, string, error) {
	wantsPNG := strings.EqualFold(filepath.Ext(filename), constant.ExtPNG)

	if info, err := os.Stat(filename); err == nil && info.IsDir() {
		ext := constant.ExtSVG
		if wantsPNG {
			ext = constant.ExtPNG
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(filename, "qr_"+timestamp+ext)
	}

	format := constant.FormatSVG
	if strings.EqualFold(filepath.Ext(filename), constant.ExtPNG) {
		format = constant.FormatPNG
	}

	abs, err := filepath.Abs(filename)
	if err != nil {
		return "", "", err
	}
	return abs, format, nil
}
