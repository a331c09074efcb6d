package rasterizer

import (
	"context"
	"image"
	"image/png"
	"io"

	"github.com/prasetyowira/qrgen/constant"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterizer converts SVG documents to PNG via oksvg and rasterx.
// The hand-off is fully in-memory, no intermediate vector file is
// written.
type Rasterizer struct{}

// NewRasterizer creates a new SVG rasterizer
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Rasterize parses the SVG document from r and writes a PNG of the
// same pixel dimensions to out. Transparent regions of the SVG stay
// transparent in the PNG.
func (rz *Rasterizer) Rasterize(ctx context.Context, r io.Reader, out io.Writer) error {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		appLogger.CtxError(ctx, "Failed to parse SVG document", appLogger.LoggerInfo{
			ContextFunction: constant.CtxRasterizer,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeRasterizeOutput,
				Message: err.Error(),
				Type:    constant.ErrTypeOutput,
			},
		})
		return err
	}

	w, h := int(icon.ViewBox.W), int(icon.ViewBox.H)
	if w == 0 || h == 0 {
		w, h = 512, 512
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	if err := png.Encode(out, rgba); err != nil {
		appLogger.CtxError(ctx, "Failed to encode PNG", appLogger.LoggerInfo{
			ContextFunction: constant.CtxRasterizer,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeRasterizeOutput,
				Message: err.Error(),
				Type:    constant.ErrTypeOutput,
			},
		})
		return err
	}

	appLogger.CtxDebug(ctx, "Rasterized SVG to PNG", appLogger.LoggerInfo{
		ContextFunction: constant.CtxRasterizer,
		Data: map[string]interface{}{
			constant.DataSize: w,
		},
	})

	return nil
}
