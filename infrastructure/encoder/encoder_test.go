package encoder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode_ProducesSquareMatrix(t *testing.T) {
	// Arrange
	enc := NewEncoder()

	// Act
	matrix, err := enc.Encode(context.Background(), "https://example.com")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, matrix)

	// Version 1 symbol is 21x21; the quiet-zone border adds 4 modules
	// on each side
	size := len(matrix)
	assert.GreaterOrEqual(t, size, 21+8)
	for _, row := range matrix {
		assert.Len(t, row, size)
	}
}

func TestEncode_QuietZoneIsLight(t *testing.T) {
	// Arrange
	enc := NewEncoder()

	// Act
	matrix, err := enc.Encode(context.Background(), "https://example.com")

	// Assert
	assert.NoError(t, err)

	// The outermost rows and columns belong to the quiet zone and
	// must never be dark
	size := len(matrix)
	for i := 0; i < size; i++ {
		assert.False(t, matrix[0][i])
		assert.False(t, matrix[size-1][i])
		assert.False(t, matrix[i][0])
		assert.False(t, matrix[i][size-1])
	}
}

func TestEncode_DeterministicForSameURL(t *testing.T) {
	// Arrange
	enc := NewEncoder()

	// Act
	first, err1 := enc.Encode(context.Background(), "https://example.com")
	second, err2 := enc.Encode(context.Background(), "https://example.com")

	// Assert
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestEncode_TooLongContent(t *testing.T) {
	// Arrange
	enc := NewEncoder()

	long := make([]byte, 8000)
	for i := range long {
		long[i] = 'a'
	}

	// Act
	matrix, err := enc.Encode(context.Background(), "https://example.com/"+string(long))

	// Assert
	assert.Error(t, err)
	assert.Nil(t, matrix)
}
