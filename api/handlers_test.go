package api

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prasetyowira/qrgen/constant"
	"github.com/prasetyowira/qrgen/domain/generator"
	"github.com/prasetyowira/qrgen/infrastructure/cache"
	"github.com/prasetyowira/qrgen/infrastructure/encoder"
	"github.com/prasetyowira/qrgen/infrastructure/rasterizer"
	"github.com/stretchr/testify/assert"
)

// Helper to build a handler backed by the real encoder and rasterizer
func newTestHandler() (*Handler, *cache.NamespaceLRU) {
	service := generator.NewService(encoder.NewEncoder(), rasterizer.NewRasterizer(), nil)
	imageCache := cache.NewNamespaceLRU(16)
	return NewHandler(service, imageCache), imageCache
}

func newTestRouter() (*Router, *cache.NamespaceLRU) {
	handler, imageCache := newTestHandler()
	router := NewRouter(handler)
	router.SetupRoutes()
	return router, imageCache
}

func TestRenderQRCode_SVG(t *testing.T) {
	// Arrange
	router, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/qr?url=https://example.com", nil)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
	assert.Contains(t, rec.Body.String(), "fill:none")
	assert.Contains(t, rec.Body.String(), "fill:"+constant.DefaultColor)
}

func TestRenderQRCode_PNG(t *testing.T) {
	// Arrange
	router, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/qr?url=https://example.com&format=png&color=%23FF0000&shape=circle", nil)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	assert.NoError(t, err)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())

	// Quiet zone corner stays transparent through rasterization
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a)
}

func TestRenderQRCode_MissingURL(t *testing.T) {
	// Arrange
	router, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/qr", nil)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NotEmpty(t, resp.Error)
}

func TestRenderQRCode_InvalidShape(t *testing.T) {
	// Arrange
	router, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/qr?url=https://example.com&shape=triangle", nil)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, constant.ErrInvalidShape, resp.Error)
}

func TestRenderQRCode_CachesRenderedImage(t *testing.T) {
	// Arrange
	router, imageCache := newTestRouter()
	assert.Equal(t, 0, imageCache.Size())

	url := "/qr?url=https://example.com&shape=dot"

	// Act
	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, url, nil))

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, url, nil))

	// Assert
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, imageCache.Size())
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestRenderQRCode_MalformedColorFallsBack(t *testing.T) {
	// Arrange
	router, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/qr?url=https://example.com&color=notahex", nil)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fill:"+constant.DefaultColor)
}

func TestGetGenerations_HistoryDisabled(t *testing.T) {
	// Arrange
	router, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/generations", nil)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, constant.ErrHistoryOff, resp.Error)
}

func TestParseColorParam(t *testing.T) {
	assert.Equal(t, constant.DefaultColor, parseColorParam("", constant.DefaultColor))
	assert.Equal(t, "#FF0000", parseColorParam("#FF0000", constant.DefaultColor))
	assert.Equal(t, "#ff00aa", parseColorParam("ff00aa", constant.DefaultColor))
	assert.Equal(t, constant.DefaultColor, parseColorParam("red", constant.DefaultColor))
	assert.Equal(t, constant.DefaultColor, parseColorParam("#FF00", constant.DefaultColor))
	assert.Equal(t, constant.DefaultColor, parseColorParam("#GG0000", constant.DefaultColor))
}

func TestWriteJSONError(t *testing.T) {
	// Arrange
	rec := httptest.NewRecorder()

	// Act
	WriteJSONError(rec, "boom", http.StatusBadRequest)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json"))

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "boom", resp.Error)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
