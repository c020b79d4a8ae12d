package tensor

import "fmt"

// MaxOrder is the largest number of axes a tensor can have.
const MaxOrder = 3

// Shape represents the extents of a tensor, one per axis.
type Shape []int

// Order returns the number of axes.
func (s Shape) Order() int {
	return len(s)
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has 1 to 3 axes and that every extent is > 0.
func (s Shape) Validate() error {
	if len(s) == 0 || len(s) > MaxOrder {
		return fmt.Errorf("%w: got %d axes", ErrInvalidOrder, len(s))
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: extent at axis %d is %d (must be > 0)", ErrEmptyShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// LinearIndex maps coordinates to an offset in the row-major buffer.
//
//	Order 1: x
//	Order 2: y*width + x
//	Order 3: z*(height*width) + y*width + x
//
// Returns ErrIndexOutOfRange if the number of coordinates differs from the
// order or any coordinate lies outside [0, extent).
func (s Shape) LinearIndex(coords ...int) (int, error) {
	if len(coords) != len(s) {
		return 0, fmt.Errorf("%w: expected %d coordinates, got %d", ErrIndexOutOfRange, len(s), len(coords))
	}
	for i, c := range coords {
		if c < 0 || c >= s[i] {
			return 0, fmt.Errorf("%w: coordinate %d for axis %d (extent %d)", ErrIndexOutOfRange, c, i, s[i])
		}
	}
	return s.offset(coords), nil
}

// offset is LinearIndex without bounds checks.
func (s Shape) offset(coords []int) int {
	switch len(coords) {
	case 1:
		return coords[0]
	case 2:
		return coords[0]*s[1] + coords[1]
	case 3:
		return coords[0]*(s[1]*s[2]) + coords[1]*s[2] + coords[2]
	default:
		panic(fmt.Sprintf("offset: unsupported order %d", len(coords)))
	}
}

// Coords is the inverse of LinearIndex for an in-range offset.
func (s Shape) Coords(offset int) []int {
	coords := make([]int, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		coords[i] = offset % s[i]
		offset /= s[i]
	}
	return coords
}

// String formats the shape as (d0, d1, ...).
func (s Shape) String() string {
	out := "("
	for i, d := range s {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprint(d)
	}
	return out + ")"
}
