package tensor

import (
	"fmt"
	"math"
)

// New creates a zero-initialized tensor.
// Returns ErrInvalidOrder or ErrEmptyShape for an invalid shape.
//
// Example:
//
//	t, err := tensor.New[float32](tensor.Shape{3, 4})
func New[T Number](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	// Data is already zero-initialized by make()
	return newUnchecked[T](shape), nil
}

// Zeros is New under the name used by the other constructors.
func Zeros[T Number](shape Shape) (*Tensor[T], error) {
	return New[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T Number](shape Shape) (*Tensor[T], error) {
	return Full[T](shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, err := tensor.Full[float32](tensor.Shape{3, 3}, 3.14)
func Full[T Number](shape Shape, value T) (*Tensor[T], error) {
	t, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// FromSlice creates a tensor from a flat row-major slice.
// The slice is copied into the tensor's memory.
// Returns ErrShapeMismatch if len(data) differs from the shape's element count.
func FromSlice[T Number](shape Shape, data []T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	t := newUnchecked[T](shape)
	copy(t.data, data)
	return t, nil
}

// Arange creates a 1-D tensor with values start, start+1, ... up to end (exclusive).
//
// Example:
//
//	t, err := tensor.Arange[int32](0, 10) // [0 1 2 ... 9]
func Arange[T Number](start, end T) (*Tensor[T], error) {
	n := max(int(math.Ceil(float64(end)-float64(start))), 0)
	t, err := New[T](Shape{n})
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = start + T(i)
	}
	return t, nil
}
