package encoder

import (
	"context"

	"github.com/prasetyowira/qrgen/constant"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
	"github.com/skip2/go-qrcode"
)

// Encoder produces QR module matrices via skip2/go-qrcode
type Encoder struct{}

// NewEncoder creates a new QR matrix encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode turns a URL into a boolean module matrix. Error correction
// is level L and the quiet-zone border is included in the matrix, so
// callers never compute a margin themselves.
func (e *Encoder) Encode(ctx context.Context, url string) ([][]bool, error) {
	q, err := qrcode.New(url, qrcode.Low)
	if err != nil {
		appLogger.CtxError(ctx, "Failed to encode QR symbol", appLogger.LoggerInfo{
			ContextFunction: constant.CtxEncoder,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeEncodeFailure,
				Message: err.Error(),
				Type:    constant.ErrTypeEncoding,
			},
			Data: map[string]interface{}{
				constant.DataURL: url,
			},
		})
		return nil, err
	}

	matrix := q.Bitmap()

	appLogger.CtxDebug(ctx, "Encoded QR symbol", appLogger.LoggerInfo{
		ContextFunction: constant.CtxEncoder,
		Data: map[string]interface{}{
			constant.DataURL:    url,
			constant.DataMatrix: len(matrix),
		},
	})

	return matrix, nil
}
