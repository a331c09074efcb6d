package render

import (
	"errors"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/prasetyowira/qrgen/constant"
)

// Shape selects how a single dark module is drawn
type Shape string

const (
	ShapeSquare Shape = "square"
	ShapeCircle Shape = "circle"
	ShapeDot    Shape = "dot"
)

// ParseShape validates a shape name. It must succeed before any
// rendering or file I/O takes place.
func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case ShapeSquare, ShapeCircle, ShapeDot:
		return Shape(s), nil
	}
	return "", errors.New(constant.ErrInvalidShape)
}

// Kind identifies the primitive type
type Kind int

const (
	KindRect Kind = iota
	KindCircle
)

// Primitive is one filled shape in the drawing. Rect primitives use
// X/Y/Width/Height, circle primitives use CX/CY/R.
type Primitive struct {
	Kind   Kind
	X      int
	Y      int
	Width  int
	Height int
	CX     int
	CY     int
	R      int
}

// Drawing is the vector representation of a rendered module matrix:
// a Size×Size canvas with a transparent background and one filled
// primitive per dark module.
type Drawing struct {
	Size       int
	Fill       string
	Primitives []Primitive
}

// Render converts a boolean module matrix into a Drawing. Each dark
// module at (row, col) becomes one primitive at pixel origin
// (col*BoxSize, row*BoxSize); light modules emit nothing, so the
// transparent background shows through.
func Render(matrix [][]bool, fill string, shape Shape) *Drawing {
	size := len(matrix)
	d := &Drawing{
		Size: size * constant.BoxSize,
		Fill: fill,
	}

	for row := 0; row < size; row++ {
		for col := 0; col < len(matrix[row]); col++ {
			if !matrix[row][col] {
				continue
			}

			x := col * constant.BoxSize
			y := row * constant.BoxSize

			switch shape {
			case ShapeCircle:
				d.Primitives = append(d.Primitives, Primitive{
					Kind: KindCircle,
					CX:   x + constant.BoxSize/2,
					CY:   y + constant.BoxSize/2,
					R:    constant.CircleRadius,
				})
			case ShapeDot:
				d.Primitives = append(d.Primitives, Primitive{
					Kind: KindCircle,
					CX:   x + constant.BoxSize/2,
					CY:   y + constant.BoxSize/2,
					R:    constant.DotRadius,
				})
			default:
				d.Primitives = append(d.Primitives, Primitive{
					Kind:   KindRect,
					X:      x,
					Y:      y,
					Width:  constant.BoxSize,
					Height: constant.BoxSize,
				})
			}
		}
	}

	return d
}

// WriteSVG serializes the drawing as an SVG document. The background
// rectangle covers the full canvas with fill:none so rasterized
// output keeps its transparency.
func (d *Drawing) WriteSVG(w io.Writer) {
	canvas := svg.New(w)
	canvas.Start(d.Size, d.Size)
	canvas.Rect(0, 0, d.Size, d.Size, "fill:none")

	fillStyle := "fill:" + d.Fill
	for _, p := range d.Primitives {
		switch p.Kind {
		case KindCircle:
			canvas.Circle(p.CX, p.CY, p.R, fillStyle)
		default:
			canvas.Rect(p.X, p.Y, p.Width, p.Height, fillStyle)
		}
	}

	canvas.End()
}
