// Package linalg implements vectors, matrices, and Gauss elimination
// over the two element field {0, 1}. Addition is XOR and multiplication
// is AND; vectors are bit-packed into 64-bit limbs, least significant
// bit first, so a Vector doubles as the GF(2) view of an unsigned
// integer of the same width.
package linalg

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrDimensionMismatch is returned when converting a vector to an
// unsigned integer of a different width.
var ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

// Vector is a vector over GF(2) with a fixed dimension.
//
// Bits at positions >= dimension in the last limb are always zero, so
// limb-wise comparison coincides with element-wise comparison.
type Vector struct {
	dimension int
	limbs     []uint64
}

// NewVector returns the zero vector of the given dimension.
func NewVector(dimension int) Vector {
	return Vector{
		dimension: dimension,
		limbs:     make([]uint64, (dimension+63)>>6),
	}
}

// OnesVector returns the vector (1, 1, ..., 1) of the given dimension.
func OnesVector(dimension int) Vector {
	v := NewVector(dimension)
	for i := range v.limbs {
		v.limbs[i] = ^uint64(0)
	}
	// Mask off the unused bits of the last limb. A dimension that is an
	// exact multiple of 64 keeps the full final limb; 1<<0 - 1 would
	// clear it instead.
	if rem := dimension & 63; rem != 0 {
		v.limbs[len(v.limbs)-1] &= 1<<rem - 1
	}
	return v
}

// RandomVector returns a uniformly random vector of the given dimension.
func RandomVector(dimension int) Vector {
	v := NewVector(dimension)
	for i := range v.limbs {
		v.limbs[i] = rand.Uint64()
	}
	if rem := dimension & 63; rem != 0 {
		v.limbs[len(v.limbs)-1] &= 1<<rem - 1
	}
	return v
}

// VectorFromUint8 returns the 8-dimensional vector packing value.
func VectorFromUint8(value uint8) Vector {
	return Vector{dimension: 8, limbs: []uint64{uint64(value)}}
}

// VectorFromUint16 returns the 16-dimensional vector packing value.
func VectorFromUint16(value uint16) Vector {
	return Vector{dimension: 16, limbs: []uint64{uint64(value)}}
}

// VectorFromUint32 returns the 32-dimensional vector packing value.
func VectorFromUint32(value uint32) Vector {
	return Vector{dimension: 32, limbs: []uint64{uint64(value)}}
}

// VectorFromUint64 returns the 64-dimensional vector packing value.
func VectorFromUint64(value uint64) Vector {
	return Vector{dimension: 64, limbs: []uint64{value}}
}

// VectorFromUint128 returns the 128-dimensional vector packing the
// 128-bit value hi<<64 | lo.
func VectorFromUint128(hi, lo uint64) Vector {
	return Vector{dimension: 128, limbs: []uint64{lo, hi}}
}

// Uint8 unpacks an 8-dimensional vector.
func (v Vector) Uint8() (uint8, error) {
	if v.dimension != 8 {
		return 0, ErrDimensionMismatch
	}
	return uint8(v.limbs[0]), nil
}

// Uint16 unpacks a 16-dimensional vector.
func (v Vector) Uint16() (uint16, error) {
	if v.dimension != 16 {
		return 0, ErrDimensionMismatch
	}
	return uint16(v.limbs[0]), nil
}

// Uint32 unpacks a 32-dimensional vector.
func (v Vector) Uint32() (uint32, error) {
	if v.dimension != 32 {
		return 0, ErrDimensionMismatch
	}
	return uint32(v.limbs[0]), nil
}

// Uint64 unpacks a 64-dimensional vector.
func (v Vector) Uint64() (uint64, error) {
	if v.dimension != 64 {
		return 0, ErrDimensionMismatch
	}
	return v.limbs[0], nil
}

// Uint128 unpacks a 128-dimensional vector as hi<<64 | lo.
func (v Vector) Uint128() (hi, lo uint64, err error) {
	if v.dimension != 128 {
		return 0, 0, ErrDimensionMismatch
	}
	return v.limbs[1], v.limbs[0], nil
}

// Dimension returns the number of elements in the vector.
func (v Vector) Dimension() int {
	return v.dimension
}

// GetElement returns the element at the given index. It panics if the
// index is out of range.
func (v Vector) GetElement(index int) uint8 {
	v.checkIndex(index)
	return uint8((v.limbs[index>>6] >> (index & 63)) & 1)
}

// SetElement sets the element at the given index to value & 1. It
// panics if the index is out of range.
func (v *Vector) SetElement(index int, value uint8) {
	v.checkIndex(index)
	mask := ^(uint64(1) << (index & 63))
	bit := uint64(value&1) << (index & 63)
	v.limbs[index>>6] = (v.limbs[index>>6] & mask) | bit
}

// SwapElements exchanges the elements at the two indices. It panics if
// either index is out of range.
func (v *Vector) SwapElements(first, second int) {
	x, y := v.GetElement(first), v.GetElement(second)
	v.SetElement(first, y)
	v.SetElement(second, x)
}

// AddToElement adds value to the element at the given index. It panics
// if the index is out of range.
func (v *Vector) AddToElement(index int, value uint8) {
	v.SetElement(index, v.GetElement(index)^value)
}

// Add returns the sum v + w. It panics if the dimensions differ.
func (v Vector) Add(w Vector) Vector {
	result := v.Clone()
	result.AddInPlace(w)
	return result
}

// AddInPlace adds w into v. It panics if the dimensions differ.
func (v *Vector) AddInPlace(w Vector) {
	if v.dimension != w.dimension {
		panic(fmt.Sprintf("linalg: vectors have different dimensions: %d != %d", v.dimension, w.dimension))
	}
	for i := range v.limbs {
		v.limbs[i] ^= w.limbs[i]
	}
}

// Clone returns a copy of the vector with its own backing storage.
func (v Vector) Clone() Vector {
	limbs := make([]uint64, len(v.limbs))
	copy(limbs, v.limbs)
	return Vector{dimension: v.dimension, limbs: limbs}
}

// Equal reports whether v and w have the same dimension and elements.
func (v Vector) Equal(w Vector) bool {
	if v.dimension != w.dimension {
		return false
	}
	for i := range v.limbs {
		if v.limbs[i] != w.limbs[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every element is zero.
func (v Vector) IsZero() bool {
	for _, limb := range v.limbs {
		if limb != 0 {
			return false
		}
	}
	return true
}

func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < v.dimension; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", v.GetElement(i))
	}
	sb.WriteByte(')')
	return sb.String()
}

func (v Vector) checkIndex(index int) {
	if index < 0 || index >= v.dimension {
		panic(fmt.Sprintf("linalg: vector index out of range: %d with dimension %d", index, v.dimension))
	}
}
