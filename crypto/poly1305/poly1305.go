// Package poly1305 implements the Poly1305 one-time message authenticator
// described in RFC 8439. It evaluates its polynomial over the prime field
// 2^130-5 using the module's arbitrary-precision integer package rather than
// native 128-bit arithmetic, since Go has no built-in 128-bit integer type.
package poly1305

import (
	"crypto/subtle"

	"github.com/dromara/chacha20poly1305/crypto/chacha20"
	"github.com/dromara/chacha20poly1305/internal/bigint"
)

// KeySize is the size, in bytes, of a Poly1305 one-time key.
const KeySize = 32

// TagSize is the size, in bytes, of a Poly1305 authentication tag.
const TagSize = 16

// prime is 2^130 - 5, the field modulus the Poly1305 accumulator is reduced
// against after every message block.
var prime = bigint.FromBEHex(1, "3fffffffffffffffffffffffffffffffb")

// clamp returns a copy of r with the bits RFC 8439 requires clamped to zero
// before it is used as the polynomial's evaluation point cleared: the top four bits
// of bytes 3, 7, 11 and 15, and the bottom two bits of bytes 4, 8 and 12.
func clamp(r []byte) []byte {
	clamped := make([]byte, 16)
	copy(clamped, r)
	clamped[3] &= 15
	clamped[7] &= 15
	clamped[11] &= 15
	clamped[15] &= 15
	clamped[4] &= 252
	clamped[8] &= 252
	clamped[12] &= 252
	return clamped
}

// blockValue converts a message chunk of at most 16 bytes into its
// little-endian integer value with an extra 0x01 byte appended just past
// the chunk's last byte, per RFC 8439's block encoding.
func blockValue(chunk []byte) *bigint.Int {
	buf := make([]byte, len(chunk)+1)
	copy(buf, chunk)
	buf[len(chunk)] = 1
	return bigint.FromLEBytes(1, buf)
}

// Sum computes the Poly1305 tag of msg under the given 32-byte one-time
// key. The key must never be reused across two different messages.
func Sum(key, msg []byte) ([TagSize]byte, error) {
	var tag [TagSize]byte
	if len(key) != KeySize {
		return tag, KeySizeError(len(key))
	}

	r := bigint.FromLEBytes(1, clamp(key[:16]))
	s := bigint.FromLEBytes(1, key[16:32])

	acc := bigint.Zero
	for len(msg) > 0 {
		n := 16
		if len(msg) < n {
			n = len(msg)
		}
		acc = bigint.Add(acc, blockValue(msg[:n]))
		acc = bigint.Mul(acc, r)
		var err error
		acc, err = bigint.ModCrypto(acc, prime)
		if err != nil {
			return tag, err
		}
		msg = msg[n:]
	}

	acc = bigint.Add(acc, s)
	copy(tag[:], acc.BytesLE(16))
	return tag, nil
}

// Verify reports whether mac is the correct Poly1305 tag of msg under key,
// using a constant-time comparison so that a timing side channel cannot
// leak how many leading bytes of a submitted tag were correct.
func Verify(mac, key, msg []byte) (bool, error) {
	want, err := Sum(key, msg)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(want[:], mac) == 1, nil
}

// KeyGen derives a one-time Poly1305 key from a ChaCha20 key and nonce,
// per RFC 8439 section 2.6: it is the first 32 bytes of the keystream
// produced by the ChaCha20 block function with counter zero.
func KeyGen(key, nonce []byte) []byte {
	block := chacha20.Block(key, nonce, 0)
	out := make([]byte, KeySize)
	copy(out, block[:KeySize])
	return out
}
