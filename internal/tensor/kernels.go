package tensor

import (
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Elementwise kernels. Each returns a func computing dst[lo:hi]; the dispatcher
// hands every index range to exactly one call, so kernels never synchronize.

// binaryKernel computes dst[i] = op(R(a[i]), R(b[i])).
// Requires: len(dst) == len(a) == len(b).
func binaryKernel[R, A, B Number](op Op, dst []R, a []A, b []B) func(lo, hi int) {
	if fast := binaryFloat64(op, any(dst), any(a), any(b)); fast != nil {
		return fast
	}

	switch op {
	case OpAdd:
		return func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = R(a[i]) + R(b[i])
			}
		}
	case OpSub:
		return func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = R(a[i]) - R(b[i])
			}
		}
	case OpMul:
		return func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = R(a[i]) * R(b[i])
			}
		}
	case OpDiv:
		return func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = R(a[i]) / R(b[i])
			}
		}
	default:
		panic("binaryKernel: unsupported op " + op.String())
	}
}

// scalarKernel computes dst[i] = op(R(src[i]), s), or op(s, R(src[i])) when
// scalarLeft is set.
func scalarKernel[R, A Number](op Op, dst []R, src []A, s R, scalarLeft bool) func(lo, hi int) {
	if fast := scalarFloat64(op, any(dst), any(src), any(s)); fast != nil {
		return fast
	}

	switch {
	case op == OpAdd:
		return func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = R(src[i]) + s
			}
		}
	case op == OpMul:
		return func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = R(src[i]) * s
			}
		}
	case op == OpSub && scalarLeft:
		return func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = s - R(src[i])
			}
		}
	case op == OpSub:
		return func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = R(src[i]) - s
			}
		}
	case op == OpDiv && scalarLeft:
		return func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = s / R(src[i])
			}
		}
	case op == OpDiv:
		return func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = R(src[i]) / s
			}
		}
	default:
		panic("scalarKernel: unsupported op " + op.String())
	}
}

// binaryFloat64 returns a vectorized kernel when every operand is []float64
// and the op has a block implementation, nil otherwise.
func binaryFloat64(op Op, dst, a, b any) func(lo, hi int) {
	d, ok1 := dst.([]float64)
	x, ok2 := a.([]float64)
	y, ok3 := b.([]float64)
	if !ok1 || !ok2 || !ok3 {
		return nil
	}

	switch op {
	case OpAdd:
		return func(lo, hi int) {
			copy(d[lo:hi], x[lo:hi])
			vecmath.AddBlockInPlace(d[lo:hi], y[lo:hi])
		}
	case OpMul:
		return func(lo, hi int) {
			vecmath.MulBlock(d[lo:hi], x[lo:hi], y[lo:hi])
		}
	default:
		return nil
	}
}

// scalarFloat64 is binaryFloat64 for tensor-scalar multiplication.
func scalarFloat64(op Op, dst, src, s any) func(lo, hi int) {
	d, ok1 := dst.([]float64)
	x, ok2 := src.([]float64)
	v, ok3 := s.(float64)
	if !ok1 || !ok2 || !ok3 || op != OpMul {
		return nil
	}
	return func(lo, hi int) {
		vecmath.ScaleBlock(d[lo:hi], x[lo:hi], v)
	}
}
