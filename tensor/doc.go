// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense numeric tensors of order 1, 2 and 3 with
// elementwise arithmetic spread across CPU cores.
//
// # Overview
//
// A Tensor[T] owns a shape and one contiguous row-major buffer of T. This
// package provides:
//   - Generic type-safe tensors (Tensor[T]) over every Go integer and float type
//   - Construction from shapes, fill values, flat slices and nested slices
//   - Elementwise Add, Sub, Mul and Div between tensors and with scalars
//   - Mixed-type arithmetic with an explicit, checked result type
//
// # Basic Usage
//
//	m1, _ := tensor.FromNested[int]([][]int{{1, 2}, {3, 4}})
//	m2, _ := tensor.FromNested[int]([][]int{{4, 3}, {2, 1}})
//	sum, err := tensor.Add(m1, m2)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(sum) // every element is 5
//
// # Type Promotion
//
// Go cannot compute a result type from two operand types, so mixed-type calls
// name the result type and the package checks it against Promote:
//
//	a, _ := tensor.Full[int32](tensor.Shape{2, 2}, 3)
//	b, _ := tensor.Full[float32](tensor.Shape{2, 2}, 0.5)
//	c, err := tensor.Apply[float32](tensor.OpMul, a, b) // ok
//	_, err = tensor.Apply[int32](tensor.OpMul, a, b)    // ErrPromotion
//
// # Parallelism
//
// Arithmetic on large tensors is split into tiles and executed on a fresh
// worker pool per call. SetParallelConfig changes the process-wide settings;
// SequentialConfig runs everything on the calling goroutine.
//
// # Errors
//
// Failures are reported as wrapped sentinel errors (ErrShapeMismatch,
// ErrIndexOutOfRange, ...) and are matched with errors.Is. A panic inside a
// kernel, such as integer division by zero, is returned as an error and no
// partial result is produced.
package tensor
