package subtle

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestCTEqualMatch(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{1, 2, 3, 4}
	qt.Assert(t, qt.Equals(CTEqual(a, b), uint32(0xFFFFFFFF)))
}

func TestCTEqualMismatch(t *testing.T) {
	cases := [][2][]byte{
		{{1, 2, 3, 4}, {1, 2, 3, 5}},
		{{0, 0, 0, 0}, {0, 0, 0, 1}},
		{{1, 0, 0, 0}, {0, 0, 0, 0}},
	}
	for _, c := range cases {
		if mask := CTEqual(c[0], c[1]); mask != 0 {
			t.Fatalf("CTEqual(%v, %v) = %#x, want 0", c[0], c[1], mask)
		}
	}
}

func TestCTEqualLengthMismatchPanics(t *testing.T) {
	defer func() {
		qt.Assert(t, qt.IsNotNil(recover()))
	}()
	CTEqual([]byte{1, 2}, []byte{1, 2, 3})
}

func TestZeroizeKeepsOnMatch(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Zeroize(0xFFFFFFFF, b)
	for i, v := range b {
		if v != byte(i+1) {
			t.Fatalf("Zeroize(allOnes) mutated byte %d: got %d", i, v)
		}
	}
}

func TestZeroizeClearsOnMismatch(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Zeroize(0, b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("Zeroize(0) left byte %d = %d, want 0", i, v)
		}
	}
}
