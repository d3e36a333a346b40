// Package xof128 implements Ascon-XOF128, the extendable-output function
// built on hashsponge. It follows hash256's phase-automaton shape but
// replaces the single fixed-length Digest with a repeatable Squeeze, the
// same way coruus/go-sha3's ShakeHash separates Write from a Read that can
// be called any number of times for any total length.
package xof128

import (
	"errors"

	"github.com/coruus/ascon/hashsponge"
	"github.com/coruus/ascon/internal/common"
	"github.com/coruus/ascon/permutation"
)

// ErrAlreadyFinalized is returned by Absorb once Finalize has run.
var ErrAlreadyFinalized = errors.New("ascon: xof128 already finalized, cannot absorb more")

// ErrNotFinalized is returned by Squeeze before Finalize has run.
var ErrNotFinalized = errors.New("ascon: xof128 not finalized, call Finalize first")

var initialState = hashsponge.InitialState(
	common.ComputeIV(common.AlgorithmXOF128, 12, 12, 0, hashsponge.RateBytes),
)

// XOF is an Ascon-XOF128 instance. The zero value is not usable; use New.
type XOF struct {
	state      permutation.State
	offset     int
	squeezable int
	finalized  bool
}

// New returns a fresh XOF ready to absorb message bytes.
func New() *XOF {
	x := &XOF{}
	x.Reset()
	return x
}

// Reset returns x to its just-constructed state. The permutation state
// being discarded may still carry message-derived bytes, so it is
// zeroized before being overwritten.
func (x *XOF) Reset() {
	x.state.Reset()
	x.state = initialState
	x.offset = 0
	x.squeezable = 0
	x.finalized = false
}

// Absorb appends msg to the message being hashed. It returns
// ErrAlreadyFinalized if Finalize has already been called.
func (x *XOF) Absorb(msg []byte) error {
	if x.finalized {
		return ErrAlreadyFinalized
	}
	hashsponge.Absorb(&x.state, &x.offset, msg)
	return nil
}

// Finalize pads and permutes the absorbed message, readying x for Squeeze.
// It returns ErrAlreadyFinalized if called twice.
func (x *XOF) Finalize() error {
	if x.finalized {
		return ErrAlreadyFinalized
	}
	hashsponge.Finalize(&x.state, &x.offset)
	x.squeezable = hashsponge.RateBytes
	x.finalized = true
	return nil
}

// Squeeze writes len(out) bytes of output into out, continuing from
// wherever the last Squeeze call left off. It returns ErrNotFinalized if
// Finalize has not yet been called. Squeeze may be called any number of
// times; the concatenation of all calls is a prefix of the same infinite
// output stream regardless of how it is chunked.
func (x *XOF) Squeeze(out []byte) error {
	if !x.finalized {
		return ErrNotFinalized
	}
	hashsponge.Squeeze(&x.state, &x.squeezable, out)
	return nil
}

// Sum absorbs msg and returns outLen bytes of Ascon-XOF128 output in one
// call.
func Sum(msg []byte, outLen int) []byte {
	x := New()
	_ = x.Absorb(msg)
	_ = x.Finalize()
	out := make([]byte, outLen)
	_ = x.Squeeze(out)
	return out
}
