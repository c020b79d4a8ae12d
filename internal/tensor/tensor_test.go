package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensorAccessors(t *testing.T) {
	x, err := New[float32](Shape{2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3, 4}, x.Shape())
	assert.Equal(t, 3, x.Order())
	assert.Equal(t, 24, x.Size())
	assert.Equal(t, []int{12, 4, 1}, x.Strides())
	assert.Equal(t, Float32, x.DType())
	assert.Len(t, x.Data(), 24)
}

func TestTensorShapeIsCopied(t *testing.T) {
	x, err := New[int](Shape{2, 2})
	require.NoError(t, err)

	s := x.Shape()
	s[0] = 100
	assert.Equal(t, Shape{2, 2}, x.Shape())
}

func TestTensorAtSet(t *testing.T) {
	x, err := New[int32](Shape{3, 4})
	require.NoError(t, err)

	require.NoError(t, x.Set(42, 1, 2))

	v, err := x.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)
	assert.Equal(t, int32(42), x.Data()[1*4+2])
}

func TestTensorAtSetOutOfRange(t *testing.T) {
	x, err := New[int32](Shape{3, 4})
	require.NoError(t, err)

	_, err = x.At(3, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	err = x.Set(1, 0, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = x.At(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestTensorCloneIsIndependent(t *testing.T) {
	src, err := FromSlice(Shape{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	dst := src.Clone()
	require.True(t, dst.Equals(src))

	require.NoError(t, dst.Set(99, 0, 0))
	v, _ := src.At(0, 0)
	assert.Equal(t, 1.0, v, "mutating the copy must not affect the source")

	require.NoError(t, src.Set(-1, 1, 1))
	v, _ = dst.At(1, 1)
	assert.Equal(t, 4.0, v, "mutating the source must not affect the copy")
}

func TestTensorMove(t *testing.T) {
	src, err := FromSlice(Shape{3}, []int{7, 8, 9})
	require.NoError(t, err)

	dst := src.Move()

	assert.Equal(t, 0, src.Size())
	assert.Nil(t, src.Shape())
	assert.Equal(t, Shape{3}, dst.Shape())
	assert.Equal(t, []int{7, 8, 9}, dst.Data())
}

func TestTensorAssign(t *testing.T) {
	a, err := Full[int](Shape{2, 2}, 1)
	require.NoError(t, err)
	b, err := Full[int](Shape{3}, 5)
	require.NoError(t, err)

	a.Assign(b)
	assert.True(t, a.Equals(b))

	require.NoError(t, b.Set(0, 0))
	v, _ := a.At(0)
	assert.Equal(t, 5, v)

	// Reassigning a moved-from tensor makes it usable again.
	moved := b.Move()
	b.Assign(moved)
	assert.Equal(t, 3, b.Size())

	a.Assign(a)
	assert.Equal(t, 3, a.Size())
}

func TestTensorEquals(t *testing.T) {
	a, _ := FromSlice(Shape{2, 2}, []int{1, 2, 3, 4})
	b, _ := FromSlice(Shape{2, 2}, []int{1, 2, 3, 4})
	c, _ := FromSlice(Shape{2, 2}, []int{1, 2, 3, 5})
	d, _ := FromSlice(Shape{4}, []int{1, 2, 3, 4})

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(d), "different shapes are not equal")

	assert.ErrorIs(t, a.Compare(d), ErrShapeMismatch)
	assert.ErrorContains(t, a.Compare(c), "[1 1]")
	assert.NoError(t, a.Compare(b))
}

func TestTensorString(t *testing.T) {
	m, err := FromNested[int]([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, "Tensor[int](2, 2)\n[[1 2]\n [3 4]]", m.String())

	v, err := FromNested[uint8]([]uint8{5, 6})
	require.NoError(t, err)
	assert.Equal(t, "Tensor[uint8](2)\n[5 6]", v.String())

	c, err := New[int8](Shape{2, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, "Tensor[int8](2, 1, 2)\n[[[0 0]]\n [[0 0]]]", c.String())
}
