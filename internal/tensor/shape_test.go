package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
		{nil, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.NumElements(), "%v", tt.shape)
	}
}

func TestShapeValidate(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		err   error
	}{
		{"vector", Shape{3}, nil},
		{"matrix", Shape{2, 3}, nil},
		{"cube", Shape{2, 3, 4}, nil},
		{"no axes", Shape{}, ErrInvalidOrder},
		{"four axes", Shape{1, 2, 3, 4}, ErrInvalidOrder},
		{"zero extent", Shape{2, 0}, ErrEmptyShape},
		{"negative extent", Shape{-1}, ErrEmptyShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestShapeEqual(t *testing.T) {
	assert.True(t, Shape{2, 3}.Equal(Shape{2, 3}))
	assert.False(t, Shape{2, 3}.Equal(Shape{3, 2}))
	assert.False(t, Shape{2, 3}.Equal(Shape{2, 3, 1}))
	assert.False(t, Shape{6}.Equal(Shape{2, 3}))
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{1}, Shape{7}.ComputeStrides())
	assert.Equal(t, []int{4, 1}, Shape{3, 4}.ComputeStrides())
	assert.Equal(t, []int{20, 5, 1}, Shape{3, 4, 5}.ComputeStrides())
}

func TestShapeLinearIndex(t *testing.T) {
	tests := []struct {
		shape  Shape
		coords []int
		want   int
	}{
		{Shape{10}, []int{7}, 7},
		{Shape{3, 4}, []int{0, 0}, 0},
		{Shape{3, 4}, []int{2, 1}, 2*4 + 1},
		{Shape{2, 3, 4}, []int{1, 2, 3}, 1*12 + 2*4 + 3},
		{Shape{2, 3, 4}, []int{1, 2, 3}, 23},
	}

	for _, tt := range tests {
		got, err := tt.shape.LinearIndex(tt.coords...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v at %v", tt.shape, tt.coords)
	}
}

func TestShapeLinearIndexMatchesStrides(t *testing.T) {
	shape := Shape{3, 5, 7}
	strides := shape.ComputeStrides()

	for z := 0; z < shape[0]; z++ {
		for y := 0; y < shape[1]; y++ {
			for x := 0; x < shape[2]; x++ {
				got, err := shape.LinearIndex(z, y, x)
				require.NoError(t, err)
				assert.Equal(t, z*strides[0]+y*strides[1]+x*strides[2], got)
				assert.Equal(t, []int{z, y, x}, shape.Coords(got))
			}
		}
	}
}

func TestShapeLinearIndexOutOfRange(t *testing.T) {
	shape := Shape{3, 4}

	for _, coords := range [][]int{
		{3, 0},
		{0, 4},
		{-1, 0},
		{0},
		{0, 0, 0},
	} {
		_, err := shape.LinearIndex(coords...)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "%v", coords)
	}
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "(2, 3)", Shape{2, 3}.String())
	assert.Equal(t, "(4)", Shape{4}.String())
}
