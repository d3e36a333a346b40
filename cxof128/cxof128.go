// Package cxof128 implements Ascon-CXOF128, the customizable
// extendable-output function: an XOF-128 whose initial state is further
// domain-separated by a customization string absorbed once, up front,
// before any ordinary message bytes. It reuses hashsponge exactly as
// xof128 does and adds one extra phase ahead of Absorbing.
package cxof128

import (
	"encoding/binary"
	"errors"

	"github.com/coruus/ascon/hashsponge"
	"github.com/coruus/ascon/internal/common"
	"github.com/coruus/ascon/permutation"
)

// MaxCustomizationLen is the largest customization string length this
// package accepts, in bytes.
const MaxCustomizationLen = 256

var (
	// ErrNotCustomized is returned by Absorb, Finalize and Squeeze before
	// Customize has been called.
	ErrNotCustomized = errors.New("ascon: cxof128 not customized, call Customize first")

	// ErrAlreadyCustomized is returned by Customize if called more than
	// once on the same instance.
	ErrAlreadyCustomized = errors.New("ascon: cxof128 already customized")

	// ErrCustomizationTooLong is returned by Customize when the
	// customization string exceeds MaxCustomizationLen bytes.
	ErrCustomizationTooLong = errors.New("ascon: cxof128 customization string exceeds 256 bytes")

	// ErrAlreadyFinalized is returned by Absorb once Finalize has run.
	ErrAlreadyFinalized = errors.New("ascon: cxof128 already finalized, cannot absorb more")

	// ErrNotFinalized is returned by Squeeze before Finalize has run.
	ErrNotFinalized = errors.New("ascon: cxof128 not finalized, call Finalize first")
)

var initialState = hashsponge.InitialState(
	common.ComputeIV(common.AlgorithmCXOF128, 12, 12, 0, hashsponge.RateBytes),
)

type phase int

const (
	phaseAwaitingCustomization phase = iota
	phaseAbsorbing
	phaseFinalized
)

// CXOF is an Ascon-CXOF128 instance. The zero value is not usable; use
// New.
type CXOF struct {
	state      permutation.State
	offset     int
	squeezable int
	phase      phase
}

// New returns a fresh CXOF awaiting a call to Customize.
func New() *CXOF {
	c := &CXOF{}
	c.Reset()
	return c
}

// Reset returns c to its just-constructed, not-yet-customized state. The
// permutation state being discarded may still carry customization- or
// message-derived bytes, so it is zeroized before being overwritten.
func (c *CXOF) Reset() {
	c.state.Reset()
	c.state = initialState
	c.offset = 0
	c.squeezable = 0
	c.phase = phaseAwaitingCustomization
}

// Customize absorbs a customization string of up to MaxCustomizationLen
// bytes: first an 8-byte little-endian encoding of its bit length, then
// the string itself, then internally finalizes that prefix so ordinary
// message absorption starts from a clean rate block. It transitions c to
// Absorbing. Customize may only be called once per instance (per
// Reset); a zero-length cust is legal and still consumes the 8-byte
// length prefix.
func (c *CXOF) Customize(cust []byte) error {
	if c.phase != phaseAwaitingCustomization {
		return ErrAlreadyCustomized
	}
	if len(cust) > MaxCustomizationLen {
		return ErrCustomizationTooLong
	}

	var lenPrefix [8]byte
	binary.LittleEndian.PutUint64(lenPrefix[:], uint64(len(cust))*8)

	hashsponge.Absorb(&c.state, &c.offset, lenPrefix[:])
	hashsponge.Absorb(&c.state, &c.offset, cust)
	hashsponge.Finalize(&c.state, &c.offset)

	c.phase = phaseAbsorbing
	return nil
}

// Absorb appends msg to the message being hashed. It returns
// ErrNotCustomized before Customize has run, and ErrAlreadyFinalized
// once Finalize has run.
func (c *CXOF) Absorb(msg []byte) error {
	switch c.phase {
	case phaseAwaitingCustomization:
		return ErrNotCustomized
	case phaseFinalized:
		return ErrAlreadyFinalized
	}
	hashsponge.Absorb(&c.state, &c.offset, msg)
	return nil
}

// Finalize pads and permutes the absorbed message, readying c for
// Squeeze.
func (c *CXOF) Finalize() error {
	switch c.phase {
	case phaseAwaitingCustomization:
		return ErrNotCustomized
	case phaseFinalized:
		return ErrAlreadyFinalized
	}
	hashsponge.Finalize(&c.state, &c.offset)
	c.squeezable = hashsponge.RateBytes
	c.phase = phaseFinalized
	return nil
}

// Squeeze writes len(out) bytes of output into out, continuing from
// wherever the last Squeeze call left off. It returns ErrNotCustomized
// or ErrNotFinalized if called out of order.
func (c *CXOF) Squeeze(out []byte) error {
	switch c.phase {
	case phaseAwaitingCustomization:
		return ErrNotCustomized
	case phaseAbsorbing:
		return ErrNotFinalized
	}
	hashsponge.Squeeze(&c.state, &c.squeezable, out)
	return nil
}

// Sum customizes with cust, absorbs msg, and returns outLen bytes of
// Ascon-CXOF128 output in one call.
func Sum(cust, msg []byte, outLen int) ([]byte, error) {
	c := New()
	if err := c.Customize(cust); err != nil {
		return nil, err
	}
	_ = c.Absorb(msg)
	_ = c.Finalize()
	out := make([]byte, outLen)
	_ = c.Squeeze(out)
	return out, nil
}
