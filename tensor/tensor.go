// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tessera/internal/parallel"
	"github.com/born-ml/tessera/internal/tensor"
)

// Type aliases for public API

// Number is the constraint for tensor element types.
type Number = tensor.Number

// Nested is the constraint for nested slice initializers ([]T, [][]T, [][][]T).
type Nested[T Number] = tensor.Nested[T]

// DataType represents the element type of a tensor at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Int     DataType = tensor.Int
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
	Uint    DataType = tensor.Uint
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the extents of a tensor.
// Example: Shape{2, 3, 4} is an order-3 tensor of 2 planes, 3 rows and 4 columns.
type Shape = tensor.Shape

// MaxOrder is the highest supported tensor order.
const MaxOrder = tensor.MaxOrder

// Tensor is a dense row-major tensor of element type T.
//
// Example:
//
//	x, _ := tensor.Zeros[float32](tensor.Shape{2, 3})
//	y, _ := tensor.Ones[float32](tensor.Shape{2, 3})
//	z, _ := tensor.Add(x, y)
type Tensor[T Number] = tensor.Tensor[T]

// Op selects an elementwise operation.
type Op = tensor.Op

// Elementwise operations.
const (
	OpAdd Op = tensor.OpAdd
	OpSub Op = tensor.OpSub
	OpMul Op = tensor.OpMul
	OpDiv Op = tensor.OpDiv
)

// ParallelConfig controls how arithmetic is spread across workers.
type ParallelConfig = parallel.Config

// Errors, matched with errors.Is.
var (
	ErrShapeMismatch     = tensor.ErrShapeMismatch
	ErrInconsistentShape = tensor.ErrInconsistentShape
	ErrEmptyShape        = tensor.ErrEmptyShape
	ErrEmptyInitializer  = tensor.ErrEmptyInitializer
	ErrIndexOutOfRange   = tensor.ErrIndexOutOfRange
	ErrInvalidOrder      = tensor.ErrInvalidOrder
	ErrPromotion         = tensor.ErrPromotion
)

// Creation functions

// New creates a zero-filled tensor.
func New[T Number](shape Shape) (*Tensor[T], error) {
	return tensor.New[T](shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T Number](shape Shape) (*Tensor[T], error) {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T Number](shape Shape) (*Tensor[T], error) {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with value.
//
// Example:
//
//	x, _ := tensor.Full[float32](tensor.Shape{2, 3}, 3.14)
func Full[T Number](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// FromSlice creates a tensor from a copy of data laid out row-major.
func FromSlice[T Number](shape Shape, data []T) (*Tensor[T], error) {
	return tensor.FromSlice(shape, data)
}

// FromNested creates a tensor whose shape is inferred from a nested slice.
//
// Example:
//
//	m, _ := tensor.FromNested[int]([][]int{{1, 2}, {3, 4}}) // shape (2, 2)
func FromNested[T Number, N Nested[T]](nested N) (*Tensor[T], error) {
	return tensor.FromNested[T, N](nested)
}

// Arange creates the 1-D tensor start, start+1, ..., end-1.
func Arange[T Number](start, end T) (*Tensor[T], error) {
	return tensor.Arange(start, end)
}

// DTypeOf returns the DataType of T.
func DTypeOf[T Number]() DataType {
	return tensor.DTypeOf[T]()
}

// Promote returns the result type of a binary operation on a and b.
func Promote(a, b DataType) DataType {
	return tensor.Promote(a, b)
}

// Arithmetic

// Apply computes op elementwise over a and b into a new tensor of type R.
// R must equal Promote(DTypeOf[A](), DTypeOf[B]()).
func Apply[R, A, B Number](op Op, a *Tensor[A], b *Tensor[B]) (*Tensor[R], error) {
	return tensor.Apply[R](op, a, b)
}

// ApplyScalar computes a[i] op s.
func ApplyScalar[R, A, S Number](op Op, a *Tensor[A], s S) (*Tensor[R], error) {
	return tensor.ApplyScalar[R](op, a, s)
}

// ApplyScalarLeft computes s op b[i].
func ApplyScalarLeft[R, S, B Number](op Op, s S, b *Tensor[B]) (*Tensor[R], error) {
	return tensor.ApplyScalarLeft[R](op, s, b)
}

// Add returns a + b.
func Add[T Number](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Add(a, b) }

// Sub returns a - b.
func Sub[T Number](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Sub(a, b) }

// Mul returns the elementwise product a * b.
func Mul[T Number](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Mul(a, b) }

// Div returns a / b.
func Div[T Number](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Div(a, b) }

// AddScalar returns a + s.
func AddScalar[T Number](a *Tensor[T], s T) (*Tensor[T], error) { return tensor.AddScalar(a, s) }

// SubScalar returns a - s.
func SubScalar[T Number](a *Tensor[T], s T) (*Tensor[T], error) { return tensor.SubScalar(a, s) }

// MulScalar returns a * s.
func MulScalar[T Number](a *Tensor[T], s T) (*Tensor[T], error) { return tensor.MulScalar(a, s) }

// DivScalar returns a / s.
func DivScalar[T Number](a *Tensor[T], s T) (*Tensor[T], error) { return tensor.DivScalar(a, s) }

// ScalarAdd returns s + b.
func ScalarAdd[T Number](s T, b *Tensor[T]) (*Tensor[T], error) { return tensor.ScalarAdd(s, b) }

// ScalarSub returns s - b.
func ScalarSub[T Number](s T, b *Tensor[T]) (*Tensor[T], error) { return tensor.ScalarSub(s, b) }

// ScalarMul returns s * b.
func ScalarMul[T Number](s T, b *Tensor[T]) (*Tensor[T], error) { return tensor.ScalarMul(s, b) }

// ScalarDiv returns s / b.
func ScalarDiv[T Number](s T, b *Tensor[T]) (*Tensor[T], error) { return tensor.ScalarDiv(s, b) }

// Parallel execution

// DefaultParallelConfig returns the CPU-count based defaults.
func DefaultParallelConfig() ParallelConfig { return parallel.DefaultConfig() }

// SequentialConfig returns a config that disables worker pools.
func SequentialConfig() ParallelConfig { return parallel.Sequential() }

// CurrentParallelConfig returns the settings used by arithmetic.
func CurrentParallelConfig() ParallelConfig { return tensor.ParallelConfig() }

// SetParallelConfig replaces the settings used by arithmetic.
func SetParallelConfig(cfg ParallelConfig) { tensor.SetParallelConfig(cfg) }
