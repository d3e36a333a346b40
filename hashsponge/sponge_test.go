package hashsponge

import (
	"bytes"
	"testing"

	"github.com/coruus/ascon/internal/common"
)

func testIV() uint64 {
	return common.ComputeIV(common.AlgorithmXOF128, 12, 12, 0, RateBytes)
}

// InitialState is a pure function of the IV: two calls with XOF-128's IV
// return the same state.
func TestInitialStateIsPureFunctionOfIV(t *testing.T) {
	a := InitialState(testIV())
	b := InitialState(testIV())
	if a != b {
		t.Fatalf("InitialState is not deterministic: %v vs %v", a, b)
	}
}

// Absorbing a message in one call, or in any partition of consecutive
// slices, followed by the same finalize+squeeze, must yield identical
// output (spec.md §8 "Hash equivalence of chunking").
func TestAbsorbChunkingEquivalence(t *testing.T) {
	msg := bytes.Repeat([]byte{0xAB}, 37)
	want := digestOf(t, [][]byte{msg})

	partitions := [][][]byte{
		{msg[:1], msg[1:]},
		{msg[:8], msg[8:16], msg[16:]},
		{msg[:0], msg},
		splitEvery(msg, 3),
	}
	for i, parts := range partitions {
		got := digestOf(t, parts)
		if !bytes.Equal(got, want) {
			t.Fatalf("partition %d: digest mismatch\n got=%x\nwant=%x", i, got, want)
		}
	}
}

func splitEvery(msg []byte, n int) [][]byte {
	var out [][]byte
	for len(msg) > 0 {
		k := n
		if k > len(msg) {
			k = len(msg)
		}
		out = append(out, msg[:k])
		msg = msg[k:]
	}
	return out
}

func digestOf(t *testing.T, parts [][]byte) []byte {
	t.Helper()
	state := InitialState(testIV())
	offset := 0
	for _, p := range parts {
		Absorb(&state, &offset, p)
	}
	Finalize(&state, &offset)

	squeezable := RateBytes
	out := make([]byte, 32)
	Squeeze(&state, &squeezable, out)
	return out
}

// Squeezing n+m bytes must equal squeezing n then m bytes (spec.md §8
// "XOF/CXOF prefix property").
func TestSqueezePrefixProperty(t *testing.T) {
	state := InitialState(testIV())
	offset := 0
	Absorb(&state, &offset, []byte("prefix property"))
	Finalize(&state, &offset)

	whole := state
	squeezable := RateBytes
	full := make([]byte, 50)
	Squeeze(&whole, &squeezable, full)

	split := state
	squeezableSplit := RateBytes
	first := make([]byte, 20)
	Squeeze(&split, &squeezableSplit, first)
	rest := make([]byte, 30)
	Squeeze(&split, &squeezableSplit, rest)

	if !bytes.Equal(full, append(append([]byte{}, first...), rest...)) {
		t.Fatalf("squeeze is not prefix-stable:\nfull =%x\nfirst+rest=%x%x", full, first, rest)
	}
}

func TestSqueezeZeroBytesIsNoop(t *testing.T) {
	state := InitialState(testIV())
	offset := 0
	Finalize(&state, &offset)

	before := state
	squeezable := RateBytes
	Squeeze(&state, &squeezable, nil)

	if state != before || squeezable != RateBytes {
		t.Fatalf("squeezing 0 bytes mutated the sponge")
	}
}

func TestAbsorbZeroBytesIsNoop(t *testing.T) {
	state := InitialState(testIV())
	offset := 0
	before := state

	Absorb(&state, &offset, nil)

	if state != before || offset != 0 {
		t.Fatalf("absorbing 0 bytes mutated the sponge")
	}
}
