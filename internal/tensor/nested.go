package tensor

import (
	"errors"
	"fmt"
)

// Nested lists the initializer forms accepted by FromNested, one per order.
type Nested[T Number] interface {
	[]T | [][]T | [][][]T
}

// FromNested creates a tensor from nested slices, inferring the shape from the
// nesting depth and the sibling lengths.
//
// Returns ErrEmptyInitializer when a list is empty and ErrInconsistentShape when
// sibling lists at the same depth have different lengths. The values are copied.
//
// Example:
//
//	m, err := tensor.FromNested[int]([][]int{
//	    {1, 2},
//	    {3, 4},
//	}) // shape (2, 2)
func FromNested[T Number, N Nested[T]](nested N) (*Tensor[T], error) {
	switch v := any(nested).(type) {
	case []T:
		return fromVector(v)
	case [][]T:
		return fromMatrix(v)
	case [][][]T:
		return fromCube(v)
	default:
		// Unreachable: the type set is closed.
		panic(fmt.Sprintf("FromNested: unsupported initializer %T", nested))
	}
}

func fromVector[T Number](v []T) (*Tensor[T], error) {
	if len(v) == 0 {
		return nil, ErrEmptyInitializer
	}
	t := newUnchecked[T](Shape{len(v)})
	copy(t.data, v)
	return t, nil
}

func fromMatrix[T Number](rows [][]T) (*Tensor[T], error) {
	height, width, err := matrixShape(rows)
	if err != nil {
		return nil, err
	}
	t := newUnchecked[T](Shape{height, width})
	for y, row := range rows {
		copy(t.data[y*width:], row)
	}
	return t, nil
}

func fromCube[T Number](planes [][][]T) (*Tensor[T], error) {
	if len(planes) == 0 {
		return nil, ErrEmptyInitializer
	}
	height, width, err := matrixShape(planes[0])
	if err != nil {
		return nil, err
	}
	for z, plane := range planes[1:] {
		h, w, err := matrixShape(plane)
		if errors.Is(err, ErrEmptyInitializer) {
			return nil, fmt.Errorf("%w: plane %d is empty, expected %dx%d", ErrInconsistentShape, z+1, height, width)
		}
		if err != nil {
			return nil, err
		}
		if h != height || w != width {
			return nil, fmt.Errorf("%w: plane %d is %dx%d, expected %dx%d",
				ErrInconsistentShape, z+1, h, w, height, width)
		}
	}

	t := newUnchecked[T](Shape{len(planes), height, width})
	for z, plane := range planes {
		for y, row := range plane {
			copy(t.data[(z*height+y)*width:], row)
		}
	}
	return t, nil
}

// matrixShape returns (rows, cols) of a rectangular [][]T.
func matrixShape[T Number](rows [][]T) (int, int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, 0, ErrEmptyInitializer
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return 0, 0, fmt.Errorf("%w: row %d has %d elements, expected %d",
				ErrInconsistentShape, y, len(row), width)
		}
	}
	return len(rows), width, nil
}
