// Package attacks breaks the MT19337 generator: it recovers internal
// state from observed outputs, seeds from timestamps, and stream-cipher
// keys from known plaintext.
package attacks

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fegge/cryptopals-go/crypto"
	"github.com/fegge/cryptopals-go/linalg"
)

const (
	firstMask  uint32 = 0x9d2c5680
	secondMask uint32 = 0xefc60000
)

// MaxSeedAge is how far back in time RecoverTimestampSeed searches for
// a timestamp that was used as a seed, in seconds.
const MaxSeedAge = 1000

// ErrRecoveryFailed is returned when a brute-force search exhausts its
// key or seed space without a match.
var ErrRecoveryFailed = errors.New("attacks: recovery failed")

// temperingMatrix returns the 32x32 matrix over GF(2) that reproduces
// the generator's tempering transform, y = M·x. The transform is built
// by replaying its shift, mask, and XOR steps against the identity
// matrix: every step is linear over GF(2), so composing them on a basis
// representation yields the operator itself. A right shift of the
// packed word advances bit indices and becomes a row shift up; a left
// shift becomes a row shift down.
func temperingMatrix() linalg.Matrix {
	lhs := linalg.Identity(32)

	// x ^= x >> 11
	lhs.AddInPlace(lhs.ShiftUp(11))
	// x ^= (x << 7) & firstMask
	lhs.AddInPlace(lhs.ShiftDown(7).Mask(linalg.VectorFromUint32(firstMask)))
	// x ^= (x << 15) & secondMask
	lhs.AddInPlace(lhs.ShiftDown(15).Mask(linalg.VectorFromUint32(secondMask)))
	// x ^= x >> 18
	lhs.AddInPlace(lhs.ShiftUp(18))

	return lhs
}

// The matrix is constant, so it is built once and shared; solving
// mutates its inputs, so every solve gets a clone.
var cachedTemperingMatrix = sync.OnceValue(temperingMatrix)

// TemperingMatrix returns a copy of the constant matrix M such that a
// tempered output word equals M times the raw state word it came from.
func TemperingMatrix() linalg.Matrix {
	return cachedTemperingMatrix().Clone()
}

// RecoverStateWord inverts the tempering transform, recovering the
// internal state word that produced one observed output word.
func RecoverStateWord(output uint32) (uint32, error) {
	lhs := TemperingMatrix()
	rhs := linalg.VectorFromUint32(output)
	solution, err := linalg.NewGaussElimination(lhs, rhs).Solve()
	if err != nil {
		return 0, fmt.Errorf("attacks: recovering state word: %w", err)
	}
	word, err := solution.Uint32()
	if err != nil {
		return 0, fmt.Errorf("attacks: recovering state word: %w", err)
	}
	return word, nil
}

// RecoverState clones a generator from 624 consecutive outputs. The
// returned generator has the same internal state as the source, not
// merely the same outputs, so the two remain in lockstep forever.
func RecoverState(src *crypto.MT19337) (*crypto.MT19337, error) {
	var state [crypto.StateSize]uint32
	for i := range state {
		word, err := RecoverStateWord(src.Uint32())
		if err != nil {
			return nil, err
		}
		state[i] = word
	}
	return crypto.FromState(state, crypto.StateSize), nil
}

// RecoverTimestampSeed finds a recent Unix timestamp that, used as a
// seed, reproduces the observed first output word.
func RecoverTimestampSeed(output uint32) (uint32, error) {
	now := uint32(time.Now().Unix())
	for delta := uint32(0); delta <= MaxSeedAge; delta++ {
		seed := now - delta
		if crypto.NewMT19337(seed).Uint32() == output {
			return seed, nil
		}
	}
	return 0, ErrRecoveryFailed
}

// RecoverStreamKey brute-forces the 16-bit key of an MT19337 stream
// cipher given a plaintext and its ciphertext.
func RecoverStreamKey(plaintext, ciphertext []byte) (uint16, error) {
	buf := make([]byte, len(plaintext))
	for key := 0; key <= 0xffff; key++ {
		crypto.NewMT19337Stream(uint32(key)).XORKeyStream(buf, plaintext)
		if bytes.Equal(buf, ciphertext) {
			return uint16(key), nil
		}
	}
	return 0, ErrRecoveryFailed
}
