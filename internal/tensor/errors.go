package tensor

import "errors"

// Errors returned by tensor construction, indexing and arithmetic.
// Callers match them with errors.Is; most are wrapped with context.
var (
	ErrShapeMismatch     = errors.New("tensor: shape mismatch")
	ErrInconsistentShape = errors.New("tensor: inconsistent initializer shape")
	ErrEmptyShape        = errors.New("tensor: empty shape")
	ErrEmptyInitializer  = errors.New("tensor: empty initializer list")
	ErrIndexOutOfRange   = errors.New("tensor: index out of range")
	ErrInvalidOrder      = errors.New("tensor: order must be 1, 2 or 3")
	ErrPromotion         = errors.New("tensor: result type does not match promoted type")
)
