// Package aead128 implements Ascon-AEAD128, wrapping aeadsponge behind a
// standard cipher.AEAD interface, the same shape pedroalbanese/go-ascon
// exposes its Ascon-128 construction through. Unlike that package, tag
// verification here runs through internal/subtle so the comparison and
// the plaintext zeroization on failure are both constant-time, per the
// design notes' requirement that neither branch on secret bytes.
package aead128

import (
	"crypto/cipher"
	"errors"

	"github.com/coruus/ascon/aeadsponge"
	"github.com/coruus/ascon/internal/subtle"
)

// KeySize and NonceSize are both 16 bytes for Ascon-AEAD128.
const (
	KeySize   = 16
	NonceSize = 16

	// Overhead is the tag length appended to the ciphertext by Seal.
	Overhead = 16
)

// errOpen is returned by Open on tag verification failure. It carries no
// detail about which byte differed, by design.
var errOpen = errors.New("ascon: aead128 message authentication failed")

// ErrKeySize is returned by New when key is not exactly KeySize bytes.
var ErrKeySize = errors.New("ascon: aead128 key must be 16 bytes")

type aead struct {
	key [KeySize]byte
}

var _ cipher.AEAD = (*aead)(nil)

// New returns a cipher.AEAD implementing Ascon-AEAD128 for the given
// 16-byte key.
func New(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}
	a := &aead{}
	copy(a.key[:], key)
	return a, nil
}

func (a *aead) NonceSize() int { return NonceSize }
func (a *aead) Overhead() int  { return Overhead }

// Seal encrypts and authenticates plaintext, authenticates additionalData,
// and appends the result to dst, returning the updated slice. nonce must
// be NonceSize bytes; it is never generated or checked for reuse by this
// package (Non-goal: nonce generation).
func (a *aead) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic("ascon: aead128 nonce must be 16 bytes")
	}

	var nonceArr [NonceSize]byte
	copy(nonceArr[:], nonce)

	ret, ct := sliceForAppend(dst, len(plaintext)+Overhead)

	state, k0, k1 := aeadsponge.Initialize(a.key, nonceArr)
	aeadsponge.AbsorbAD(&state, additionalData)
	aeadsponge.EncryptBlocks(&state, plaintext, ct[:len(plaintext)])
	tag := aeadsponge.Finalize(&state, k0, k1)
	copy(ct[len(plaintext):], tag[:])
	state.Reset()

	return ret
}

// Open decrypts and authenticates ciphertext (which must include the
// trailing tag), authenticates additionalData, and if successful appends
// the recovered plaintext to dst and returns it. On tag mismatch it
// returns errOpen and the destination plaintext buffer is left zeroed:
// no partial plaintext is ever revealed.
func (a *aead) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("ascon: aead128 nonce must be 16 bytes")
	}
	if len(ciphertext) < Overhead {
		return nil, errOpen
	}

	var nonceArr [NonceSize]byte
	copy(nonceArr[:], nonce)

	ctBody := ciphertext[:len(ciphertext)-Overhead]
	wantTag := ciphertext[len(ciphertext)-Overhead:]

	ret, pt := sliceForAppend(dst, len(ctBody))

	state, k0, k1 := aeadsponge.Initialize(a.key, nonceArr)
	aeadsponge.AbsorbAD(&state, additionalData)
	aeadsponge.DecryptBlocks(&state, ctBody, pt)
	gotTag := aeadsponge.Finalize(&state, k0, k1)
	state.Reset()

	keepMask := subtle.CTEqual(gotTag[:], wantTag)
	subtle.Zeroize(keepMask, pt)

	if keepMask != 0xFFFFFFFF {
		return nil, errOpen
	}
	return ret, nil
}

// sliceForAppend extends dst, if necessary, to guarantee capacity for n
// more bytes, and returns the resulting slice along with the storage for
// those n bytes. Mirrors the standard library's cipher/gcm.go helper of
// the same name.
func sliceForAppend(dst []byte, n int) (ret, tail []byte) {
	if total := len(dst) + n; cap(dst) >= total {
		ret = dst[:total]
	} else {
		ret = make([]byte, total)
		copy(ret, dst)
	}
	tail = ret[len(dst):]
	return ret, tail
}
