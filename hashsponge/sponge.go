// Package hashsponge implements the 64-bit-rate, 256-bit-capacity Ascon
// sponge driver shared by Hash256, XOF-128 and CXOF-128. It is a direct
// counterpart to coruus/go-sha3's keccak_sponge.go, but rewritten for
// Ascon's single-lane rate, its 10* padding placed by an explicit bit
// formula rather than a domain-separator byte, and strictly little-endian
// byte order.
//
// Following the design notes ("resist bundling sponge operations as
// methods on a single object that multiplexes between hash and AEAD
// modes"), this package exposes free functions over an explicit
// (*permutation.State, *int) pair rather than a sponge object; aeadsponge
// is the disjoint counterpart for the 128-bit-rate AEAD driver.
package hashsponge

import (
	"encoding/binary"

	"github.com/coruus/ascon/permutation"
)

// RateBytes is the sponge's rate: one 64-bit lane.
const RateBytes = 8

// rounds is the round count applied between every block, for both
// absorption and squeezing; Hash256/XOF-128/CXOF-128 all use 12 here.
const rounds = 12

// InitialState computes the constant initial permutation state for a given
// IV: lane 0 holds iv, the remaining lanes are zero, followed by one
// 12-round permutation. Every scheme using this sponge computes this once,
// at package-initialization time, and never again.
func InitialState(iv uint64) permutation.State {
	s := permutation.State{iv, 0, 0, 0, 0}
	s.Permute(rounds)
	return s
}

// Absorb XORs msg into lane 0, little-endian, block by block, permuting
// after every full rate block. offset tracks how many bytes of the
// current rate block have been XORed in but not yet permuted; it persists
// across calls so repeated Absorb calls chain correctly. A zero-length msg
// is a no-op.
func Absorb(state *permutation.State, offset *int, msg []byte) {
	mlen := len(msg)

	var block [RateBytes]byte
	totalBlocks := (*offset + mlen) / RateBytes
	msgOffset := 0

	for i := 0; i < totalBlocks; i++ {
		readable := RateBytes - *offset
		block = [RateBytes]byte{}
		copy(block[*offset:], msg[msgOffset:msgOffset+readable])
		state[0] ^= binary.LittleEndian.Uint64(block[:])
		state.Permute(rounds)

		msgOffset += readable
		*offset = 0
	}

	remaining := mlen - msgOffset
	block = [RateBytes]byte{}
	copy(block[*offset:], msg[msgOffset:msgOffset+remaining])
	state[0] ^= binary.LittleEndian.Uint64(block[:])
	*offset += remaining
}

// Finalize applies 10* padding to the in-progress rate block (a single 1
// bit at the least significant bit of the first unfilled rate byte,
// interpreting the rate as little-endian) and permutes, readying the
// state for Squeeze. It resets offset to 0.
func Finalize(state *permutation.State, offset *int) {
	state[0] ^= uint64(1) << (*offset * 8)
	state.Permute(rounds)
	*offset = 0
}

// Squeeze serializes bytes from lane 0 into out, little-endian, permuting
// whenever the current rate block is exhausted. squeezable tracks how many
// bytes remain available from the current lane without permuting; callers
// squeezing a fixed-output scheme seed it with RateBytes right after
// Finalize. Squeeze can be called any number of times and produces a
// contiguous slice of the same infinite output stream. Squeezing zero
// bytes is a no-op and does not permute.
func Squeeze(state *permutation.State, squeezable *int, out []byte) {
	olen := len(out)

	var block [RateBytes]byte
	outOffset := 0

	for outOffset < olen {
		toSqueeze := min(*squeezable, olen-outOffset)
		blockOffset := RateBytes - *squeezable

		binary.LittleEndian.PutUint64(block[:], state[0])
		copy(out[outOffset:outOffset+toSqueeze], block[blockOffset:blockOffset+toSqueeze])

		*squeezable -= toSqueeze
		outOffset += toSqueeze

		if *squeezable == 0 {
			state.Permute(rounds)
			*squeezable = RateBytes
		}
	}
}
