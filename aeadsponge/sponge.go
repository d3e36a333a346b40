// Package aeadsponge implements the 128-bit-rate, 192-bit-capacity Ascon
// sponge driver used by AEAD-128: keyed initialization, associated-data
// absorption, plaintext/ciphertext transformation, and tag finalization.
// It shares nothing with hashsponge but the permutation: different rate
// width, different padding byte placement, different phase discipline, per
// the design notes' instruction to keep the two sponge drivers disjoint.
package aeadsponge

import (
	"encoding/binary"

	"github.com/coruus/ascon/internal/common"
	"github.com/coruus/ascon/permutation"
)

const (
	// RateBytes is the rate: lanes 0 and 1.
	RateBytes = 16

	roundsA = 12
	roundsB = 8

	keyLen   = 16
	nonceLen = 16
	tagLen   = 16
)

// Initialize builds the initial AEAD-128 permutation state from a 16-byte
// key and a 16-byte nonce (spec.md §4.3.1 step 1), and returns the two
// little-endian key words alongside it; Finalize needs them again, and the
// AEAD sponge state itself never stores the key.
func Initialize(key, nonce [keyLen]byte) (state permutation.State, k0, k1 uint64) {
	k0 = binary.LittleEndian.Uint64(key[0:8])
	k1 = binary.LittleEndian.Uint64(key[8:16])
	n0 := binary.LittleEndian.Uint64(nonce[0:8])
	n1 := binary.LittleEndian.Uint64(nonce[8:16])

	state[0] = common.ComputeIV(common.AlgorithmAEAD128, roundsA, roundsB, tagLen*8, RateBytes)
	state[1] = k0
	state[2] = k1
	state[3] = n0
	state[4] = n1

	state.Permute(roundsA)

	state[3] ^= k0
	state[4] ^= k1

	return state, k0, k1
}

// AbsorbAD absorbs associated data into lanes 0 and 1 in 128-bit blocks,
// padding the final (possibly empty) block with the 10* rule, and XORs the
// domain separator bit into lane 4 regardless of whether ad was empty
// (spec.md §4.3.1 step 2).
func AbsorbAD(state *permutation.State, ad []byte) {
	if len(ad) > 0 {
		absorbPadded(state, ad, roundsB)
	}
	state[4] ^= 1
}

// EncryptBlocks encrypts pt into ct (len(ct) == len(pt)) block by block,
// emitting ciphertext before permuting each full block and truncating the
// final block's serialization to the plaintext's length (spec.md §4.3.1
// step 3).
func EncryptBlocks(state *permutation.State, pt, ct []byte) {
	n := len(pt)
	totalBlocks := (n + 1 + (RateBytes - 1)) / RateBytes

	var chunk [RateBytes]byte
	off := 0

	for i := 0; i < totalBlocks-1; i++ {
		copy(chunk[:], pt[off:off+RateBytes])
		state[0] ^= binary.LittleEndian.Uint64(chunk[0:8])
		state[1] ^= binary.LittleEndian.Uint64(chunk[8:16])

		binary.LittleEndian.PutUint64(ct[off:off+8], state[0])
		binary.LittleEndian.PutUint64(ct[off+8:off+16], state[1])

		state.Permute(roundsB)
		off += RateBytes
	}

	read := n - off
	chunk = [RateBytes]byte{}
	copy(chunk[:], pt[off:off+read])
	padBlock(chunk[:], read)

	state[0] ^= binary.LittleEndian.Uint64(chunk[0:8])
	state[1] ^= binary.LittleEndian.Uint64(chunk[8:16])

	binary.LittleEndian.PutUint64(chunk[0:8], state[0])
	binary.LittleEndian.PutUint64(chunk[8:16], state[1])
	copy(ct[off:], chunk[:read])
}

// DecryptBlocks recovers pt from ct (len(pt) == len(ct)), replacing lanes
// 0,1 with the raw ciphertext block (rather than XORing) so the capacity
// is preserved exactly as it would be had the plaintext been encrypted
// (spec.md §4.3.2).
func DecryptBlocks(state *permutation.State, ct, pt []byte) {
	n := len(ct)
	totalBlocks := (n + 1 + (RateBytes - 1)) / RateBytes

	var chunk [RateBytes]byte
	off := 0

	for i := 0; i < totalBlocks-1; i++ {
		copy(chunk[:], ct[off:off+RateBytes])
		ctWord0 := binary.LittleEndian.Uint64(chunk[0:8])
		ctWord1 := binary.LittleEndian.Uint64(chunk[8:16])

		ptWord0 := state[0] ^ ctWord0
		ptWord1 := state[1] ^ ctWord1

		state[0] = ctWord0
		state[1] = ctWord1

		binary.LittleEndian.PutUint64(pt[off:off+8], ptWord0)
		binary.LittleEndian.PutUint64(pt[off+8:off+16], ptWord1)

		state.Permute(roundsB)
		off += RateBytes
	}

	read := n - off
	chunk = [RateBytes]byte{}
	copy(chunk[:], ct[off:off+read])

	ctWord0 := binary.LittleEndian.Uint64(chunk[0:8])
	ctWord1 := binary.LittleEndian.Uint64(chunk[8:16])
	ptWord0 := state[0] ^ ctWord0
	ptWord1 := state[1] ^ ctWord1

	binary.LittleEndian.PutUint64(chunk[0:8], ptWord0)
	binary.LittleEndian.PutUint64(chunk[8:16], ptWord1)
	copy(pt[off:], chunk[:read])

	// chunk now holds the recovered plaintext in its first `read` bytes;
	// the rest is cleared so that XORing chunk into the state replaces the
	// leading rate bytes with the ciphertext and leaves the trailing ones
	// unchanged apart from the pad bit.
	clear(chunk[read:])
	padBlock(chunk[:], read)

	state[0] ^= binary.LittleEndian.Uint64(chunk[0:8])
	state[1] ^= binary.LittleEndian.Uint64(chunk[8:16])
}

// Finalize XORs the key back into lanes 2,3, permutes with roundsA, and
// returns the 16-byte tag (spec.md §4.3.1 step 4).
func Finalize(state *permutation.State, k0, k1 uint64) (tag [tagLen]byte) {
	state[2] ^= k0
	state[3] ^= k1

	state.Permute(roundsA)

	binary.LittleEndian.PutUint64(tag[0:8], state[3]^k0)
	binary.LittleEndian.PutUint64(tag[8:16], state[4]^k1)
	return tag
}

// absorbPadded absorbs data in RateBytes blocks into lanes 0,1, applying
// 10* padding to the final (possibly empty) block, permuting with the
// given round count after every block including the last.
func absorbPadded(state *permutation.State, data []byte, perm int) {
	n := len(data)
	totalBlocks := (n + 1 + (RateBytes - 1)) / RateBytes

	var chunk [RateBytes]byte
	off := 0

	for i := 0; i < totalBlocks-1; i++ {
		copy(chunk[:], data[off:off+RateBytes])
		state[0] ^= binary.LittleEndian.Uint64(chunk[0:8])
		state[1] ^= binary.LittleEndian.Uint64(chunk[8:16])
		state.Permute(perm)
		off += RateBytes
	}

	read := n - off
	chunk = [RateBytes]byte{}
	copy(chunk[:], data[off:off+read])
	padBlock(chunk[:], read)

	state[0] ^= binary.LittleEndian.Uint64(chunk[0:8])
	state[1] ^= binary.LittleEndian.Uint64(chunk[8:16])
	state.Permute(perm)
}

// padBlock XORs the most significant bit of the first unfilled byte,
// implementing the 10* rule's single pad bit at byte granularity. Every
// caller clears the block beyond `read` first, so the XOR sets that bit.
func padBlock(chunk []byte, read int) {
	if read < len(chunk) {
		chunk[read] ^= 0x80
	}
}
