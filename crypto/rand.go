package crypto

import (
	"fmt"
)

// StateSize is the number of 32-bit words in the generator state.
const StateSize = 624

const (
	seedMult   uint32 = 0x6c078965
	upperMask  uint32 = 0x80000000
	lowerMask  uint32 = 0x7fffffff
	firstMask  uint32 = 0x9d2c5680
	secondMask uint32 = 0xefc60000
	twistConst uint32 = 0x9908b0df
)

// MT19337 is a 624-word Mersenne twister variant. Seeding runs one
// twist immediately, and the twist recurrence carries words 227..396
// over unchanged with a 397-word feedback offset, so the output stream
// differs from textbook MT19937. The known-output tests pin the stream
// this produces.
//
// Two generators are interchangeable exactly when their State and
// Index are equal, so *a == *b is the equality the recovery attack
// relies on.
type MT19337 struct {
	State [StateSize]uint32
	Index int
}

// NewMT19337 returns a generator seeded with the given value.
func NewMT19337(seed uint32) *MT19337 {
	src := &MT19337{}
	src.Seed(seed)
	return src
}

// FromState returns a generator with the given state and index,
// bypassing the seeding recurrence. The index must be in 0..StateSize,
// where StateSize means the state must be regenerated before the next
// output.
func FromState(state [StateSize]uint32, index int) *MT19337 {
	if index < 0 || index > StateSize {
		panic(fmt.Sprintf("crypto: generator index out of range: %d", index))
	}
	return &MT19337{State: state, Index: index}
}

// Seed resets the generator state from a 32-bit seed.
func (src *MT19337) Seed(seed uint32) {
	src.State[0] = seed
	for i := 1; i < StateSize; i++ {
		x := src.State[i-1] ^ (src.State[i-1] >> 30)
		src.State[i] = seedMult*x + uint32(i)
	}
	src.twist()
}

func (src *MT19337) twist() {
	const (
		k = StateSize - 1
		m = 227
		n = StateSize - m
	)
	for i := 0; i < m; i++ {
		x := (src.State[i] & upperMask) | (src.State[i+1] & lowerMask)
		src.State[i] = src.State[n+i] ^ twistFeedback(x)
	}
	for i := n; i < k; i++ {
		x := (src.State[i] & upperMask) | (src.State[i+1] & lowerMask)
		src.State[i] = src.State[i-n] ^ twistFeedback(x)
	}
	x := (src.State[k] & upperMask) | (src.State[0] & lowerMask)
	src.State[k] = src.State[n-1] ^ twistFeedback(x)
	src.Index = 0
}

func twistFeedback(x uint32) uint32 {
	y := x >> 1
	if x&1 == 1 {
		y ^= twistConst
	}
	return y
}

// Uint32 returns the next tempered output word, regenerating the state
// first if all 624 words have been consumed.
func (src *MT19337) Uint32() uint32 {
	if src.Index >= StateSize {
		src.twist()
	}
	x := src.State[src.Index]

	x ^= x >> 11
	x ^= (x << 7) & firstMask
	x ^= (x << 15) & secondMask
	x ^= x >> 18

	src.Index++
	return x
}

// Uint64 combines two output words into a 64-bit value.
func (src *MT19337) Uint64() uint64 {
	return uint64(src.Uint32())<<32 ^ uint64(src.Uint32())
}

// mt19337Stream turns the generator into a byte stream cipher. Each
// keystream byte is the low byte of one full output word.
type mt19337Stream struct {
	src MT19337
}

// NewMT19337Stream returns a stream cipher keyed by the given seed.
func NewMT19337Stream(seed uint32) *mt19337Stream {
	return &mt19337Stream{src: *NewMT19337(seed)}
}

func (ms *mt19337Stream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("len(dst) (%d) less than len(src) (%d)", len(dst), len(src)))
	}
	for i := range src {
		dst[i] = src[i] ^ byte(ms.src.Uint32())
	}
}
