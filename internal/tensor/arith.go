package tensor

import (
	"fmt"
	"sync/atomic"

	"github.com/born-ml/tessera/internal/parallel"
)

// Op identifies an elementwise binary operator.
type Op int

// Supported elementwise operators.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

var parallelConfig atomic.Pointer[parallel.Config]

// ParallelConfig returns the dispatcher configuration used by arithmetic.
func ParallelConfig() parallel.Config {
	if cfg := parallelConfig.Load(); cfg != nil {
		return *cfg
	}
	return parallel.DefaultConfig()
}

// SetParallelConfig replaces the dispatcher configuration used by arithmetic.
func SetParallelConfig(cfg parallel.Config) {
	parallelConfig.Store(&cfg)
}

// Apply computes op(a[i], b[i]) for every position and returns a new tensor.
//
// R must be the promotion of A and B (see Promote), otherwise ErrPromotion is
// returned. The shapes must be equal, otherwise ErrShapeMismatch is returned.
// Operands are never modified.
//
// Integer division by zero panics inside the worker; the panic is captured and
// returned as an error wrapping *parallel.PanicError. Floating point division
// follows IEEE semantics.
//
// Example:
//
//	a, _ := tensor.Full[int32](tensor.Shape{2, 2}, 3)
//	b, _ := tensor.Full[float32](tensor.Shape{2, 2}, 0.5)
//	c, err := tensor.Apply[float32](tensor.OpMul, a, b) // 1.5 everywhere
func Apply[R, A, B Number](op Op, a *Tensor[A], b *Tensor[B]) (*Tensor[R], error) {
	if err := checkPromotion[R](DTypeOf[A](), DTypeOf[B]()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := a.shape.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !a.shape.Equal(b.shape) {
		return nil, fmt.Errorf("%s: %w: %v vs %v", op, ErrShapeMismatch, a.shape, b.shape)
	}

	out := newUnchecked[R](a.shape)
	if err := run(out.shape, binaryKernel(op, out.data, a.data, b.data)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// ApplyScalar computes op(a[i], s) for every position.
// R must be the promotion of A and S.
func ApplyScalar[R, A, S Number](op Op, a *Tensor[A], s S) (*Tensor[R], error) {
	return applyScalar[R](op, a, DTypeOf[S](), R(s), false)
}

// ApplyScalarLeft computes op(s, b[i]) for every position.
// R must be the promotion of S and B.
func ApplyScalarLeft[R, S, B Number](op Op, s S, b *Tensor[B]) (*Tensor[R], error) {
	return applyScalar[R](op, b, DTypeOf[S](), R(s), true)
}

func applyScalar[R, A Number](op Op, t *Tensor[A], sType DataType, s R, scalarLeft bool) (*Tensor[R], error) {
	if err := checkPromotion[R](DTypeOf[A](), sType); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := t.shape.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := newUnchecked[R](t.shape)
	if err := run(out.shape, scalarKernel(op, out.data, t.data, s, scalarLeft)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func checkPromotion[R Number](a, b DataType) error {
	want := Promote(a, b)
	if got := DTypeOf[R](); got != want {
		return fmt.Errorf("%w: %s and %s promote to %s, not %s", ErrPromotion, a, b, want, got)
	}
	return nil
}

// run spreads kernel over the flat buffer of a tensor with the given shape.
// Order 2 and 3 tensors go through the block dispatcher (order 3 folds its
// leading axes into rows); order 1 uses flat-range dispatch.
func run(shape Shape, kernel func(lo, hi int)) error {
	cfg := ParallelConfig()
	if len(shape) == 1 {
		return parallel.ForRange(shape[0], kernel, cfg)
	}

	width := shape[len(shape)-1]
	height := shape.NumElements() / width
	return parallel.DispatchSpans(height, width, func(y, x0, x1 int) {
		base := y * width
		kernel(base+x0, base+x1)
	}, cfg)
}

// Same-type sugar.

// Add returns a + b elementwise.
func Add[T Number](a, b *Tensor[T]) (*Tensor[T], error) {
	return Apply[T](OpAdd, a, b)
}

// Sub returns a - b elementwise.
func Sub[T Number](a, b *Tensor[T]) (*Tensor[T], error) {
	return Apply[T](OpSub, a, b)
}

// Mul returns a * b elementwise.
func Mul[T Number](a, b *Tensor[T]) (*Tensor[T], error) {
	return Apply[T](OpMul, a, b)
}

// Div returns a / b elementwise.
func Div[T Number](a, b *Tensor[T]) (*Tensor[T], error) {
	return Apply[T](OpDiv, a, b)
}

// AddScalar adds s to each element.
func AddScalar[T Number](a *Tensor[T], s T) (*Tensor[T], error) {
	return ApplyScalar[T](OpAdd, a, s)
}

// SubScalar subtracts s from each element.
func SubScalar[T Number](a *Tensor[T], s T) (*Tensor[T], error) {
	return ApplyScalar[T](OpSub, a, s)
}

// MulScalar multiplies each element by s.
func MulScalar[T Number](a *Tensor[T], s T) (*Tensor[T], error) {
	return ApplyScalar[T](OpMul, a, s)
}

// DivScalar divides each element by s.
func DivScalar[T Number](a *Tensor[T], s T) (*Tensor[T], error) {
	return ApplyScalar[T](OpDiv, a, s)
}

// ScalarAdd returns s + b elementwise.
func ScalarAdd[T Number](s T, b *Tensor[T]) (*Tensor[T], error) {
	return ApplyScalarLeft[T](OpAdd, s, b)
}

// ScalarSub returns s - b elementwise.
func ScalarSub[T Number](s T, b *Tensor[T]) (*Tensor[T], error) {
	return ApplyScalarLeft[T](OpSub, s, b)
}

// ScalarMul returns s * b elementwise.
func ScalarMul[T Number](s T, b *Tensor[T]) (*Tensor[T], error) {
	return ApplyScalarLeft[T](OpMul, s, b)
}

// ScalarDiv returns s / b elementwise.
func ScalarDiv[T Number](s T, b *Tensor[T]) (*Tensor[T], error) {
	return ApplyScalarLeft[T](OpDiv, s, b)
}
