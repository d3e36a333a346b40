// Package hash256 implements Ascon-Hash256, the fixed-output 256-bit hash
// function built on hashsponge, following coruus/go-sha3's state-machine
// shape for its Keccak sponge but with the Absorb/Finalize/Digest phases
// spelled out as explicit sentinel-error transitions rather than a single
// squeeze-once guard.
package hash256

import (
	"errors"

	"github.com/coruus/ascon/hashsponge"
	"github.com/coruus/ascon/internal/common"
	"github.com/coruus/ascon/permutation"
)

// Size is the digest length in bytes.
const Size = 32

var (
	// ErrAlreadyFinalized is returned by Absorb once Finalize has run.
	ErrAlreadyFinalized = errors.New("ascon: hash256 already finalized, cannot absorb more")

	// ErrNotFinalized is returned by Digest before Finalize has run.
	ErrNotFinalized = errors.New("ascon: hash256 not finalized, call Finalize first")

	// ErrAlreadyDigested is returned by Digest once it has already run once;
	// Ascon-Hash256 has a single fixed-length output and cannot be squeezed
	// twice.
	ErrAlreadyDigested = errors.New("ascon: hash256 already digested")
)

var initialState = hashsponge.InitialState(
	common.ComputeIV(common.AlgorithmHash256, 12, 12, Size*8, hashsponge.RateBytes),
)

type phase int

const (
	phaseAbsorbing phase = iota
	phaseFinalized
	phaseDigested
)

// Hasher is an Ascon-Hash256 instance. The zero value is not usable; use
// New.
type Hasher struct {
	state  permutation.State
	offset int
	phase  phase
}

// New returns a fresh Hasher ready to absorb message bytes.
func New() *Hasher {
	h := &Hasher{}
	h.Reset()
	return h
}

// Reset returns h to its just-constructed state, ready to absorb a new
// message. The permutation state being discarded may still carry
// message-derived bytes, so it is zeroized before being overwritten.
func (h *Hasher) Reset() {
	h.state.Reset()
	h.state = initialState
	h.offset = 0
	h.phase = phaseAbsorbing
}

// Absorb appends msg to the message being hashed. It returns
// ErrAlreadyFinalized if Finalize has already been called.
func (h *Hasher) Absorb(msg []byte) error {
	if h.phase != phaseAbsorbing {
		return ErrAlreadyFinalized
	}
	hashsponge.Absorb(&h.state, &h.offset, msg)
	return nil
}

// Finalize pads and permutes the absorbed message, readying h for Digest.
// It returns ErrAlreadyFinalized if called twice.
func (h *Hasher) Finalize() error {
	if h.phase != phaseAbsorbing {
		return ErrAlreadyFinalized
	}
	hashsponge.Finalize(&h.state, &h.offset)
	h.phase = phaseFinalized
	return nil
}

// Digest writes the 32-byte Ascon-Hash256 digest into out. It returns
// ErrNotFinalized if Finalize has not yet been called, and
// ErrAlreadyDigested if Digest has already run once: Hash256 has a single
// fixed-length output, unlike xof128's repeatable Squeeze.
func (h *Hasher) Digest(out *[Size]byte) error {
	switch h.phase {
	case phaseAbsorbing:
		return ErrNotFinalized
	case phaseDigested:
		return ErrAlreadyDigested
	}
	squeezable := hashsponge.RateBytes
	hashsponge.Squeeze(&h.state, &squeezable, out[:])
	h.phase = phaseDigested
	return nil
}

// Sum computes the Ascon-Hash256 digest of msg in one call.
func Sum(msg []byte) [Size]byte {
	h := New()
	_ = h.Absorb(msg)
	_ = h.Finalize()
	var out [Size]byte
	_ = h.Digest(&out)
	return out
}
