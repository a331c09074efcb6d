package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prasetyowira/qrgen/constant"
	"github.com/stretchr/testify/assert"
)

// matrixFrom builds a module matrix from a pattern where '#' marks a
// dark module
func matrixFrom(pattern []string) [][]bool {
	matrix := make([][]bool, len(pattern))
	for i, row := range pattern {
		matrix[i] = make([]bool, len(row))
		for j, c := range row {
			matrix[i][j] = c == '#'
		}
	}
	return matrix
}

func countDark(matrix [][]bool) int {
	count := 0
	for _, row := range matrix {
		for _, dark := range row {
			if dark {
				count++
			}
		}
	}
	return count
}

func TestParseShape_Valid(t *testing.T) {
	for _, name := range []string{"square", "circle", "dot"} {
		// Act
		shape, err := ParseShape(name)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, Shape(name), shape)
	}
}

func TestParseShape_Invalid(t *testing.T) {
	for _, name := range []string{"triangle", "SQUARE", "", "circle "} {
		// Act
		shape, err := ParseShape(name)

		// Assert
		assert.Error(t, err)
		assert.Equal(t, constant.ErrInvalidShape, err.Error())
		assert.Empty(t, shape)
	}
}

func TestRender_PrimitiveCountMatchesDarkModules(t *testing.T) {
	matrix := matrixFrom([]string{
		"#.#.#",
		".....",
		"##..#",
		".#.#.",
		"#...#",
	})
	expected := countDark(matrix)

	for _, shape := range []Shape{ShapeSquare, ShapeCircle, ShapeDot} {
		// Act
		drawing := Render(matrix, constant.DefaultColor, shape)

		// Assert
		assert.Len(t, drawing.Primitives, expected)
	}
}

func TestRender_EmptyMatrixEmitsNothing(t *testing.T) {
	matrix := matrixFrom([]string{
		"...",
		"...",
		"...",
	})

	// Act
	drawing := Render(matrix, constant.DefaultColor, ShapeSquare)

	// Assert
	assert.Empty(t, drawing.Primitives)
	assert.Equal(t, 3*constant.BoxSize, drawing.Size)
}

func TestRender_SquareGeometry(t *testing.T) {
	matrix := matrixFrom([]string{
		".#",
		"#.",
	})

	// Act
	drawing := Render(matrix, constant.DefaultColor, ShapeSquare)

	// Assert
	assert.Len(t, drawing.Primitives, 2)

	// (row 0, col 1) then (row 1, col 0)
	first := drawing.Primitives[0]
	assert.Equal(t, KindRect, first.Kind)
	assert.Equal(t, 10, first.X)
	assert.Equal(t, 0, first.Y)
	assert.Equal(t, 10, first.Width)
	assert.Equal(t, 10, first.Height)

	second := drawing.Primitives[1]
	assert.Equal(t, 0, second.X)
	assert.Equal(t, 10, second.Y)
}

func TestRender_CircleGeometry(t *testing.T) {
	matrix := matrixFrom([]string{
		"..",
		".#",
	})

	// Act
	drawing := Render(matrix, constant.DefaultColor, ShapeCircle)

	// Assert
	assert.Len(t, drawing.Primitives, 1)

	p := drawing.Primitives[0]
	assert.Equal(t, KindCircle, p.Kind)
	assert.Equal(t, 15, p.CX)
	assert.Equal(t, 15, p.CY)
	assert.Equal(t, constant.CircleRadius, p.R)
}

func TestRender_DotGeometry(t *testing.T) {
	matrix := matrixFrom([]string{
		"#",
	})

	// Act
	drawing := Render(matrix, constant.DefaultColor, ShapeDot)

	// Assert
	assert.Len(t, drawing.Primitives, 1)

	p := drawing.Primitives[0]
	assert.Equal(t, KindCircle, p.Kind)
	assert.Equal(t, 5, p.CX)
	assert.Equal(t, 5, p.CY)
	assert.Equal(t, constant.DotRadius, p.R)
}

func TestRender_CanvasSize(t *testing.T) {
	for _, n := range []int{1, 21, 33} {
		matrix := make([][]bool, n)
		for i := range matrix {
			matrix[i] = make([]bool, n)
		}

		// Act
		drawing := Render(matrix, constant.DefaultColor, ShapeSquare)

		// Assert
		assert.Equal(t, n*constant.BoxSize, drawing.Size)
	}
}

func TestWriteSVG_TransparentBackground(t *testing.T) {
	matrix := matrixFrom([]string{
		"#.",
		".#",
	})
	drawing := Render(matrix, "#FF0000", ShapeSquare)

	// Act
	var buf bytes.Buffer
	drawing.WriteSVG(&buf)
	out := buf.String()

	// Assert
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `width="20"`)
	assert.Contains(t, out, `height="20"`)
	assert.Contains(t, out, "fill:none")
	assert.Contains(t, out, "fill:#FF0000")
}

func TestWriteSVG_PrimitiveCounts(t *testing.T) {
	matrix := matrixFrom([]string{
		"#.#",
		".#.",
		"#.#",
	})

	// Square: one rect per dark module plus the background rect
	var buf bytes.Buffer
	Render(matrix, constant.DefaultColor, ShapeSquare).WriteSVG(&buf)
	assert.Equal(t, 5+1, strings.Count(buf.String(), "<rect"))
	assert.Equal(t, 0, strings.Count(buf.String(), "<circle"))

	// Circle: background rect stays, dark modules become circles
	buf.Reset()
	Render(matrix, constant.DefaultColor, ShapeCircle).WriteSVG(&buf)
	assert.Equal(t, 1, strings.Count(buf.String(), "<rect"))
	assert.Equal(t, 5, strings.Count(buf.String(), "<circle"))

	// Dot: same counts, smaller radius
	buf.Reset()
	Render(matrix, constant.DefaultColor, ShapeDot).WriteSVG(&buf)
	assert.Equal(t, 5, strings.Count(buf.String(), "<circle"))
	assert.Contains(t, buf.String(), `r="3"`)
}
