package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/prasetyowira/qrgen/constant"
	"github.com/prasetyowira/qrgen/domain/generator"
	"github.com/prasetyowira/qrgen/infrastructure/cache"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
)

// Handler contains service dependencies for API handlers
type Handler struct {
	service *generator.Service
	cache   *cache.NamespaceLRU
}

// GenerationsResponse is the response for the generation history endpoint
type GenerationsResponse struct {
	Generations []generator.Generation `json:"generations"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// NewHandler creates a new API handler
func NewHandler(service *generator.Service, imageCache *cache.NamespaceLRU) *Handler {
	return &Handler{
		service: service,
		cache:   imageCache,
	}
}

// RenderQRCode renders a QR code for the url query parameter and
// serves it as SVG or PNG. Rendered images are LRU-cached by their
// full parameter set.
func (h *Handler) RenderQRCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	appLogger.CtxDebug(ctx, constant.MsgHandlingRenderRequest, appLogger.LoggerInfo{
		ContextFunction: constant.CtxRenderQRCode,
	})

	query := r.URL.Query()

	url := query.Get("url")
	if url == "" {
		appLogger.CtxWarn(ctx, "Missing url parameter", appLogger.LoggerInfo{
			ContextFunction: constant.CtxRenderQRCode,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIMissingURL,
				Message: constant.ErrEmptyURL,
				Type:    constant.ErrTypeAPI,
			},
		})
		WriteJSONError(w, "url parameter is required", http.StatusBadRequest)
		return
	}

	color := parseColorParam(query.Get("color"), constant.DefaultColor)

	shape := query.Get("shape")
	if shape == "" {
		shape = constant.DefaultShape
	}

	format := strings.ToLower(query.Get("format"))
	if format != constant.FormatPNG {
		format = constant.FormatSVG
	}

	cacheKey := url + "|" + color + "|" + shape + "|" + format
	if cached, found := h.cache.Get(constant.RenderedImageNamespace, cacheKey); found {
		if img, ok := cached.([]byte); ok {
			appLogger.CtxInfo(ctx, "Serving cached QR image", appLogger.LoggerInfo{
				ContextFunction: constant.CtxRenderQRCode,
				Data: map[string]interface{}{
					constant.DataURL:      url,
					constant.DataFormat:   format,
					constant.DataCacheHit: true,
				},
			})
			writeImage(w, img, format)
			return
		}
	}

	img, err := h.service.RenderImage(ctx, url, color, shape, format)
	if err != nil {
		if err.Error() == constant.ErrInvalidShape {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		appLogger.CtxError(ctx, "Error rendering QR code", appLogger.LoggerInfo{
			ContextFunction: constant.CtxRenderQRCode,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIServiceError,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
			Data: map[string]interface{}{
				constant.DataURL: url,
			},
		})
		WriteJSONError(w, "Failed to render QR code", http.StatusInternalServerError)
		return
	}

	h.cache.Set(constant.RenderedImageNamespace, cacheKey, img)

	appLogger.CtxInfo(ctx, "Rendered QR code", appLogger.LoggerInfo{
		ContextFunction: constant.CtxRenderQRCode,
		Data: map[string]interface{}{
			constant.DataURL:    url,
			constant.DataShape:  shape,
			constant.DataFormat: format,
			constant.DataSize:   len(img),
		},
	})

	writeImage(w, img, format)
}

// GetGenerations returns recent generation history as JSON
func (h *Handler) GetGenerations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	generations, err := h.service.RecentGenerations(ctx, limit)
	if err != nil {
		if err.Error() == constant.ErrHistoryOff {
			WriteJSONError(w, err.Error(), http.StatusServiceUnavailable)
			return
		}

		appLogger.CtxError(ctx, "Error fetching generation history", appLogger.LoggerInfo{
			ContextFunction: constant.CtxGetGenerations,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIServiceError,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
			Data: map[string]interface{}{
				constant.DataLimit: limit,
			},
		})
		WriteJSONError(w, "Failed to fetch generation history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(GenerationsResponse{Generations: generations})
}

// WriteJSONError writes a JSON error response with the given status code
func WriteJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
		Code:  status,
	})
}

// writeImage writes the image bytes with the matching content type
func writeImage(w http.ResponseWriter, img []byte, format string) {
	if format == constant.FormatPNG {
		w.Header().Set("Content-Type", "image/png")
	} else {
		w.Header().Set("Content-Type", "image/svg+xml")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}

// parseColorParam normalizes a hex color query parameter, falling
// back to the default on anything malformed
func parseColorParam(param, defaultColor string) string {
	if param == "" {
		return defaultColor
	}

	hex := strings.TrimPrefix(param, "#")
	if len(hex) != 6 {
		return defaultColor
	}
	for _, c := range hex {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return defaultColor
		}
	}

	return "#" + hex
}
