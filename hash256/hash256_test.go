package hash256

import (
	"bytes"
	"testing"
)

func TestSumDeterministic(t *testing.T) {
	msg := []byte("the quick brown fox")
	a := Sum(msg)
	b := Sum(msg)
	if a != b {
		t.Fatalf("Sum is not deterministic")
	}
}

func TestSumMatchesStepwiseAPI(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")
	want := Sum(msg)

	h := New()
	if err := h.Absorb(msg[:5]); err != nil {
		t.Fatalf("Absorb: %v", err)
	}
	if err := h.Absorb(msg[5:]); err != nil {
		t.Fatalf("Absorb: %v", err)
	}
	if err := h.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	var got [Size]byte
	if err := h.Digest(&got); err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if got != want {
		t.Fatalf("stepwise digest mismatch:\ngot =%x\nwant=%x", got, want)
	}
}

func TestAbsorbAfterFinalizeFails(t *testing.T) {
	h := New()
	if err := h.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if err := h.Absorb([]byte("too late")); err != ErrAlreadyFinalized {
		t.Fatalf("Absorb after Finalize = %v, want ErrAlreadyFinalized", err)
	}
}

func TestDigestBeforeFinalizeFails(t *testing.T) {
	h := New()
	var out [Size]byte
	if err := h.Digest(&out); err != ErrNotFinalized {
		t.Fatalf("Digest before Finalize = %v, want ErrNotFinalized", err)
	}
}

func TestDigestTwiceFails(t *testing.T) {
	h := New()
	_ = h.Finalize()
	var out [Size]byte
	if err := h.Digest(&out); err != nil {
		t.Fatalf("first Digest: %v", err)
	}
	if err := h.Digest(&out); err != ErrAlreadyDigested {
		t.Fatalf("second Digest = %v, want ErrAlreadyDigested", err)
	}
}

func TestResetAllowsReuse(t *testing.T) {
	h := New()
	_ = h.Absorb([]byte("first message"))
	_ = h.Finalize()
	var first [Size]byte
	_ = h.Digest(&first)

	h.Reset()
	_ = h.Absorb([]byte("second message"))
	_ = h.Finalize()
	var second [Size]byte
	_ = h.Digest(&second)

	if bytes.Equal(first[:], second[:]) {
		t.Fatalf("distinct messages produced the same digest after Reset")
	}

	want := Sum([]byte("second message"))
	if second != want {
		t.Fatalf("digest after Reset mismatch:\ngot =%x\nwant=%x", second, want)
	}
}

func TestDifferentMessagesDifferentDigests(t *testing.T) {
	a := Sum([]byte("message A"))
	b := Sum([]byte("message B"))
	if a == b {
		t.Fatalf("distinct messages hashed to the same digest")
	}
}
