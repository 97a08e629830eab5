package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fegge/cryptopals-go/linalg"
)

func TestMatrixCreation(t *testing.T) {
	m := linalg.NewMatrix(25, 43)
	require.Equal(t, 25, m.Rows())
	require.Equal(t, 43, m.Columns())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Columns(); j++ {
			if (i+j)%2 == 1 {
				m.SetElement(i, j, 1)
			}
		}
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Columns(); j++ {
			assert.Equal(t, uint8((i+j)%2), m.GetElement(i, j))
		}
	}

	ones := linalg.OnesMatrix(32, 33)
	for i := 0; i < ones.Rows(); i++ {
		for j := 0; j < ones.Columns(); j++ {
			assert.Equal(t, uint8(1), ones.GetElement(i, j))
		}
	}
}

func TestIdentity(t *testing.T) {
	identity := linalg.Identity(32)
	for i := 0; i < identity.Rows(); i++ {
		for j := 0; j < identity.Columns(); j++ {
			if i == j {
				assert.Equal(t, uint8(1), identity.GetElement(i, j))
			} else {
				assert.Equal(t, uint8(0), identity.GetElement(i, j))
			}
		}
	}
}

func TestMatrixAddition(t *testing.T) {
	lhs := linalg.NewMatrix(17, 17)
	rhs := linalg.NewMatrix(17, 17)
	for i := 0; i < 17; i++ {
		for j := 0; j < 17; j++ {
			if (i+j)%2 == 0 {
				lhs.SetElement(i, j, 1)
			} else {
				rhs.SetElement(i, j, 1)
			}
		}
	}
	assert.True(t, lhs.Add(rhs).Equal(linalg.OnesMatrix(17, 17)))

	result := lhs.Clone()
	result.AddInPlace(rhs)
	assert.True(t, result.Equal(linalg.OnesMatrix(17, 17)))
}

// A matrix is its own additive inverse over GF(2).
func TestMatrixAdditionInvolution(t *testing.T) {
	m := linalg.RandomMatrix(23, 41)
	assert.True(t, m.Add(m).Equal(linalg.NewMatrix(23, 41)))
}

func TestMatrixRowOperations(t *testing.T) {
	m := linalg.Identity(4)

	row := m.GetRow(2)
	assert.Equal(t, uint8(1), row.GetElement(2))

	// GetRow returns a copy, not a view.
	row.SetElement(0, 1)
	assert.Equal(t, uint8(0), m.GetElement(2, 0))

	m.SwapRows(0, 3)
	assert.Equal(t, uint8(1), m.GetElement(0, 3))
	assert.Equal(t, uint8(1), m.GetElement(3, 0))

	m.AddToRow(1, m.GetRow(2))
	assert.Equal(t, uint8(1), m.GetElement(1, 1))
	assert.Equal(t, uint8(1), m.GetElement(1, 2))

	v := linalg.OnesVector(4)
	m.SetRow(0, v)
	for j := 0; j < 4; j++ {
		assert.Equal(t, uint8(1), m.GetElement(0, j))
	}
	// SetRow copies the value in.
	v.SetElement(0, 0)
	assert.Equal(t, uint8(1), m.GetElement(0, 0))
}

func TestMatrixShiftDown(t *testing.T) {
	m := linalg.Identity(8)
	shifted := m.ShiftDown(3)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			want := uint8(0)
			if i >= 3 && i-3 == j {
				want = 1
			}
			assert.Equal(t, want, shifted.GetElement(i, j), "element (%d, %d)", i, j)
		}
	}
}

func TestMatrixShiftUp(t *testing.T) {
	m := linalg.Identity(8)
	shifted := m.ShiftUp(3)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			want := uint8(0)
			if i+3 < 8 && i+3 == j {
				want = 1
			}
			assert.Equal(t, want, shifted.GetElement(i, j), "element (%d, %d)", i, j)
		}
	}
}

func TestMatrixMask(t *testing.T) {
	m := linalg.OnesMatrix(8, 8)
	selector := linalg.VectorFromUint8(0b0101_0011)
	masked := m.Mask(selector)
	for i := 0; i < 8; i++ {
		want := uint8(0)
		if selector.GetElement(i) == 1 {
			want = 1
		}
		for j := 0; j < 8; j++ {
			assert.Equal(t, want, masked.GetElement(i, j), "element (%d, %d)", i, j)
		}
	}
}

// Masked-out rows must have the column width, also on rectangular
// matrices.
func TestMatrixMaskRectangular(t *testing.T) {
	m := linalg.OnesMatrix(8, 20)
	masked := m.Mask(linalg.NewVector(8))
	require.Equal(t, 8, masked.Rows())
	require.Equal(t, 20, masked.Columns())
	for i := 0; i < 8; i++ {
		assert.True(t, masked.GetRow(i).IsZero())
	}
}

func TestMatrixMulVector(t *testing.T) {
	identity := linalg.Identity(32)
	v := linalg.RandomVector(32)
	assert.True(t, identity.MulVector(v).Equal(v))

	shift := linalg.Identity(8).ShiftUp(2)
	w := linalg.VectorFromUint8(0b1000_0001)
	product, err := shift.MulVector(w).Uint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0b0010_0000), product)
}

func TestInvalidMatrixAccess(t *testing.T) {
	m := linalg.NewMatrix(12, 34)
	assert.Panics(t, func() { m.GetElement(12, 0) })
	assert.Panics(t, func() { m.GetElement(0, 34) })
	assert.Panics(t, func() { m.SwapRows(0, 12) })
}
