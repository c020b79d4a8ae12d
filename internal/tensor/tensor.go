package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a dense tensor of element type T with 1 to 3 axes.
// It exclusively owns a contiguous row-major buffer of Size() elements.
//
// Type Parameters:
//   - T: Element type (must satisfy the Number constraint)
//
// A Tensor provides no internal synchronization. Concurrent writers must touch
// disjoint elements, which is what the block dispatcher guarantees.
//
// Example:
//
//	a, _ := tensor.Full[int](tensor.Shape{2, 2}, 1)
//	b, _ := tensor.Full[int](tensor.Shape{2, 2}, 2)
//	c, _ := tensor.Add(a, b) // every element is 3
type Tensor[T Number] struct {
	shape  Shape
	stride []int
	data   []T
}

// newUnchecked allocates a zeroed tensor for an already validated shape.
func newUnchecked[T Number](shape Shape) *Tensor[T] {
	return &Tensor[T]{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]T, shape.NumElements()),
	}
}

// Shape returns a copy of the tensor's shape.
// A moved-from tensor returns nil.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Order returns the number of axes.
func (t *Tensor[T]) Order() int {
	return len(t.shape)
}

// Size returns the total number of elements.
func (t *Tensor[T]) Size() int {
	return len(t.data)
}

// Strides returns the row-major strides.
func (t *Tensor[T]) Strides() []int {
	out := make([]int, len(t.stride))
	copy(out, t.stride)
	return out
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return DTypeOf[T]()
}

// Data returns the underlying buffer (zero-copy).
// It is meant for handing bytes to encoders and must be treated as read-only;
// use Set for element writes.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// At returns the element at the given coordinates.
// Returns ErrIndexOutOfRange for invalid coordinates.
//
// Example:
//
//	v, err := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(coords ...int) (T, error) {
	idx, err := t.shape.LinearIndex(coords...)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.data[idx], nil
}

// Set writes the element at the given coordinates.
// Returns ErrIndexOutOfRange for invalid coordinates.
func (t *Tensor[T]) Set(value T, coords ...int) error {
	idx, err := t.shape.LinearIndex(coords...)
	if err != nil {
		return err
	}
	t.data[idx] = value
	return nil
}

// Clone creates a deep copy of the tensor.
// Mutating the clone never affects the original.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return &Tensor[T]{
		shape:  t.shape.Clone(),
		stride: t.Strides(),
		data:   data,
	}
}

// Move transfers ownership of the buffer to a new tensor.
// The receiver is left empty (Size() == 0, Shape() == nil); it may only be
// dropped or reassigned with Assign.
func (t *Tensor[T]) Move() *Tensor[T] {
	moved := &Tensor[T]{
		shape:  t.shape,
		stride: t.stride,
		data:   t.data,
	}
	t.shape, t.stride, t.data = nil, nil, nil
	return moved
}

// Assign replaces the receiver's shape and contents with a deep copy of other.
func (t *Tensor[T]) Assign(other *Tensor[T]) {
	if t == other {
		return
	}
	c := other.Clone()
	t.shape, t.stride, t.data = c.shape, c.stride, c.data
}

// Equals reports whether both tensors have the same shape and elements.
// Unequal shapes compare as not equal.
func (t *Tensor[T]) Equals(other *Tensor[T]) bool {
	return t.Compare(other) == nil
}

// Compare is Equals with a reason: ErrShapeMismatch when the shapes differ,
// or an error naming the first differing element.
func (t *Tensor[T]) Compare(other *Tensor[T]) error {
	if !t.shape.Equal(other.shape) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, t.shape, other.shape)
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return fmt.Errorf("tensor: element %v differs: %v vs %v", t.shape.Coords(i), t.data[i], other.data[i])
		}
	}
	return nil
}

// String returns the element type, shape and values.
//
//	Tensor[int](2, 2)
//	[[1 2]
//	 [3 4]]
func (t *Tensor[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor[%s]%v", t.DType(), t.shape)
	if len(t.data) == 0 {
		return sb.String()
	}
	sb.WriteByte('\n')
	t.writeAxis(&sb, 0, 0)
	return sb.String()
}

func (t *Tensor[T]) writeAxis(sb *strings.Builder, axis, base int) {
	sb.WriteByte('[')
	for i := 0; i < t.shape[axis]; i++ {
		off := base + i*t.stride[axis]
		if axis == len(t.shape)-1 {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(sb, t.data[off])
			continue
		}
		if i > 0 {
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", axis+1))
		}
		t.writeAxis(sb, axis+1, off)
	}
	sb.WriteByte(']')
}
