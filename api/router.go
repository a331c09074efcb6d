package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	appMiddleware "github.com/prasetyowira/qrgen/api/middleware"
	"github.com/prasetyowira/qrgen/constant"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
)

// Router represents the application router
type Router struct {
	handler *Handler
	router  *chi.Mux
}

// NewRouter creates a new router
func NewRouter(handler *Handler) *Router {
	r := chi.NewRouter()

	// Middleware setup
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(appMiddleware.RequestLogger())

	return &Router{
		handler: handler,
		router:  r,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() {
	appLogger.Info(constant.MsgSettingUpRoutes, appLogger.LoggerInfo{
		ContextFunction: constant.CtxRouter,
	})

	r.router.Get(constant.RouteQRCode, r.handler.RenderQRCode)
	r.router.Get(constant.RouteGenerations, r.handler.GetGenerations)

	// Healthcheck
	r.router.Get(constant.RouteHealthcheck, func(w http.ResponseWriter, req *http.Request) {
		appLogger.CtxDebug(req.Context(), constant.MsgHealthcheckRequest, appLogger.LoggerInfo{
			ContextFunction: constant.CtxRouter,
		})

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(constant.MsgHealthy))
	})
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
