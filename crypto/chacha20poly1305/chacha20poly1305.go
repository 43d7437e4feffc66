// Package chacha20poly1305 implements the ChaCha20-Poly1305 AEAD construction
// from RFC 8439. It provides authenticated encryption and decryption using
// 256-bit keys, 96-bit nonces and optional associated data, built from this
// module's from-scratch chacha20 and poly1305 packages rather than the
// standard library's AEAD implementation.
package chacha20poly1305

import (
	"crypto/subtle"
	"encoding/binary"

	"github.com/dromara/chacha20poly1305/crypto/chacha20"
	"github.com/dromara/chacha20poly1305/crypto/cipher"
	"github.com/dromara/chacha20poly1305/crypto/poly1305"
)

// KeySize is the size, in bytes, of a ChaCha20-Poly1305 key.
const KeySize = 32

// NonceSize is the size, in bytes, of a ChaCha20-Poly1305 nonce.
const NonceSize = 12

// TagSize is the size, in bytes, of the Poly1305 authentication tag
// appended to the ciphertext.
const TagSize = 16

// pad16 returns the number of zero bytes needed to round n up to a
// multiple of 16, matching the padding RFC 8439 inserts between the
// associated data and ciphertext fields of the MAC input.
func pad16(n int) int {
	if n%16 == 0 {
		return 0
	}
	return 16 - n%16
}

// macData assembles the authenticated data RFC 8439 section 2.8 feeds to
// Poly1305: aad, padding, ciphertext, padding, then the little-endian
// 64-bit lengths of aad and ciphertext.
func macData(aad, ciphertext []byte) []byte {
	buf := make([]byte, 0, len(aad)+pad16(len(aad))+len(ciphertext)+pad16(len(ciphertext))+16)
	buf = append(buf, aad...)
	buf = append(buf, make([]byte, pad16(len(aad)))...)
	buf = append(buf, ciphertext...)
	buf = append(buf, make([]byte, pad16(len(ciphertext)))...)

	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(aad)))
	buf = append(buf, lenBuf[:]...)
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(ciphertext)))
	buf = append(buf, lenBuf[:]...)
	return buf
}

// seal encrypts plaintext with ChaCha20 under key and nonce starting at
// block counter 1 (block 0 is reserved for deriving the Poly1305 key),
// appending the 16-byte authentication tag over aad and the ciphertext.
func seal(key, nonce, aad, plaintext []byte) ([]byte, error) {
	polyKey := poly1305.KeyGen(key, nonce)

	ciphertext, err := chacha20.Apply(key, nonce, 1, plaintext)
	if err != nil {
		return nil, err
	}

	tag, err := poly1305.Sum(polyKey, macData(aad, ciphertext))
	if err != nil {
		return nil, err
	}

	return append(ciphertext, tag[:]...), nil
}

// open verifies the tag carried at the end of sealed and, if it matches,
// decrypts the leading ciphertext. No plaintext is returned when
// verification fails.
func open(key, nonce, aad, sealed []byte) ([]byte, error) {
	if len(sealed) < TagSize {
		return nil, CiphertextTooShortError(len(sealed))
	}

	ciphertext := sealed[:len(sealed)-TagSize]
	gotTag := sealed[len(sealed)-TagSize:]

	polyKey := poly1305.KeyGen(key, nonce)
	wantTag, err := poly1305.Sum(polyKey, macData(aad, ciphertext))
	if err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare(wantTag[:], gotTag) != 1 {
		return nil, AuthenticationError{}
	}

	return chacha20.Apply(key, nonce, 1, ciphertext)
}

// StdEncrypter represents a ChaCha20-Poly1305 encrypter for standard encryption operations.
type StdEncrypter struct {
	cipher *cipher.ChaCha20Poly1305Cipher // The cipher interface for encryption operations
	Error  error                          // Error field for storing encryption errors
}

// NewStdEncrypter creates a new ChaCha20-Poly1305 encrypter with the specified cipher and key.
// The key must be exactly 32 bytes (256 bits) and the assembled nonce must be 12 bytes (96 bits).
func NewStdEncrypter(c *cipher.ChaCha20Poly1305Cipher) *StdEncrypter {
	e := &StdEncrypter{
		cipher: c,
	}

	if len(c.Key) != KeySize {
		e.Error = KeySizeError(len(c.Key))
		return e
	}

	if len(c.Nonce()) != NonceSize {
		e.Error = InvalidNonceSizeError{Size: len(c.Nonce())}
		return e
	}

	return e
}

// Encrypt encrypts the given byte slice using ChaCha20-Poly1305 authenticated
// encryption, returning ciphertext with a 16-byte authentication tag appended.
// Returns empty data when input is empty.
func (e *StdEncrypter) Encrypt(src []byte) (dst []byte, err error) {
	if e.Error != nil {
		return nil, e.Error
	}

	if len(src) == 0 {
		return
	}

	return seal(e.cipher.Key, e.cipher.Nonce(), e.cipher.AAD, src)
}

// StdDecrypter represents a ChaCha20-Poly1305 decrypter for standard decryption operations.
type StdDecrypter struct {
	cipher *cipher.ChaCha20Poly1305Cipher // The cipher interface for decryption operations
	Error  error                          // Error field for storing decryption errors
}

// NewStdDecrypter creates a new ChaCha20-Poly1305 decrypter with the specified cipher and key.
// The key must be exactly 32 bytes (256 bits) and the assembled nonce must be 12 bytes (96 bits).
func NewStdDecrypter(c *cipher.ChaCha20Poly1305Cipher) *StdDecrypter {
	d := &StdDecrypter{
		cipher: c,
	}

	if len(c.Key) != KeySize {
		d.Error = KeySizeError(len(c.Key))
		return d
	}

	if len(c.Nonce()) != NonceSize {
		d.Error = InvalidNonceSizeError{Size: len(c.Nonce())}
		return d
	}

	return d
}

// Decrypt verifies and decrypts the given byte slice using ChaCha20-Poly1305.
// The input must include the trailing 16-byte authentication tag. Returns
// empty data when input is empty, and AuthenticationError (with no
// plaintext) when the tag does not match.
func (d *StdDecrypter) Decrypt(src []byte) (dst []byte, err error) {
	if d.Error != nil {
		return nil, d.Error
	}

	if len(src) == 0 {
		return
	}

	return open(d.cipher.Key, d.cipher.Nonce(), d.cipher.AAD, src)
}
