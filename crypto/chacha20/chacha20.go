// Package chacha20 implements the ChaCha20 block function and the stream
// cipher built from it, per RFC 8439. It provides ChaCha20 encryption and
// decryption operations using 256-bit keys, 96-bit nonces and an explicit
// 32-bit block counter.
package chacha20

import (
	"encoding/binary"

	"github.com/dromara/chacha20poly1305/crypto/cipher"
)

// constants are the 4 fixed words "expand 32-byte k" placed in the first
// row of the ChaCha20 state matrix.
var constants = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// maxInputLen is the largest input, in bytes, that Apply will encrypt for a
// single nonce: 64 bytes per block times 2^32 possible block-counter values.
const maxInputLen = 64 * (int64(1) << 32)

func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = d<<16 | d>>16

	c += d
	b ^= c
	b = b<<12 | b>>20

	a += b
	d ^= a
	d = d<<8 | d>>24

	c += d
	b ^= c
	b = b<<7 | b>>25

	return a, b, c, d
}

// Block runs the 20-round ChaCha20 block function over key, a 12-byte nonce
// and a 32-bit little-endian block counter, returning 64 bytes of keystream.
// It panics if key is not 32 bytes or nonce is not 12 bytes; Apply,
// NewStdEncrypter and NewStdDecrypter report the same conditions as errors.
func Block(key, nonce []byte, counter uint32) []byte {
	if len(key) != 32 {
		panic(KeySizeError(len(key)))
	}
	if len(nonce) != 12 {
		panic(InvalidNonceSizeError{Size: len(nonce)})
	}

	var state [16]uint32
	state[0], state[1], state[2], state[3] = constants[0], constants[1], constants[2], constants[3]
	for i := 0; i < 8; i++ {
		state[4+i] = binary.LittleEndian.Uint32(key[i*4 : i*4+4])
	}
	state[12] = counter
	state[13] = binary.LittleEndian.Uint32(nonce[0:4])
	state[14] = binary.LittleEndian.Uint32(nonce[4:8])
	state[15] = binary.LittleEndian.Uint32(nonce[8:12])

	working := state
	for round := 0; round < 10; round++ {
		working[0], working[4], working[8], working[12] = quarterRound(working[0], working[4], working[8], working[12])
		working[1], working[5], working[9], working[13] = quarterRound(working[1], working[5], working[9], working[13])
		working[2], working[6], working[10], working[14] = quarterRound(working[2], working[6], working[10], working[14])
		working[3], working[7], working[11], working[15] = quarterRound(working[3], working[7], working[11], working[15])

		working[0], working[5], working[10], working[15] = quarterRound(working[0], working[5], working[10], working[15])
		working[1], working[6], working[11], working[12] = quarterRound(working[1], working[6], working[11], working[12])
		working[2], working[7], working[8], working[13] = quarterRound(working[2], working[7], working[8], working[13])
		working[3], working[4], working[9], working[14] = quarterRound(working[3], working[4], working[9], working[14])
	}

	out := make([]byte, 64)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(out[i*4:i*4+4], working[i]+state[i])
	}
	return out
}

// Apply XORs src with the ChaCha20 keystream generated from key, nonce and
// an initial block counter, writing the result to a freshly allocated
// slice. Encryption and decryption are the same operation. The block
// counter advances by one per 64-byte chunk and is never allowed to wrap:
// inputs that would need more blocks than remain between the initial
// counter and 2^32 are rejected with InputTooLongError.
func Apply(key, nonce []byte, counter uint32, src []byte) ([]byte, error) {
	if len(key) != 32 {
		return nil, KeySizeError(len(key))
	}
	if len(nonce) != 12 {
		return nil, InvalidNonceSizeError{Size: len(nonce)}
	}
	if int64(len(src)) > maxInputLen-int64(counter)*64 {
		return nil, InputTooLongError(int64(len(src)))
	}

	dst := make([]byte, len(src))
	for offset := 0; offset < len(src); offset += 64 {
		keystream := Block(key, nonce, counter)
		end := offset + 64
		if end > len(src) {
			end = len(src)
		}
		for i := offset; i < end; i++ {
			dst[i] = src[i] ^ keystream[i-offset]
		}
		counter++
	}
	return dst, nil
}

// StdEncrypter represents a ChaCha20 encrypter for standard encryption operations.
type StdEncrypter struct {
	cipher *cipher.ChaCha20Cipher // The cipher interface for encryption operations
	Error  error                  // Error field for storing encryption errors
}

// NewStdEncrypter creates a new ChaCha20 encrypter with the specified cipher and key.
// The key must be exactly 32 bytes (256 bits) and nonce must be 12 bytes (96 bits).
func NewStdEncrypter(c *cipher.ChaCha20Cipher) *StdEncrypter {
	e := &StdEncrypter{
		cipher: c,
	}

	if len(c.Key) != 32 {
		e.Error = KeySizeError(len(c.Key))
		return e
	}

	if len(c.Nonce) != 12 {
		e.Error = InvalidNonceSizeError{Size: len(c.Nonce)}
		return e
	}

	return e
}

// Encrypt encrypts the given byte slice using ChaCha20 encryption.
// ChaCha20 is a stream cipher and can encrypt any amount of data.
// Returns empty data when input is empty.
func (e *StdEncrypter) Encrypt(src []byte) (dst []byte, err error) {
	if e.Error != nil {
		return nil, e.Error
	}

	if len(src) == 0 {
		return
	}

	return Apply(e.cipher.Key, e.cipher.Nonce, e.cipher.Counter, src)
}

// StdDecrypter represents a ChaCha20 decrypter for standard decryption operations.
type StdDecrypter struct {
	cipher *cipher.ChaCha20Cipher // The cipher interface for decryption operations
	Error  error                  // Error field for storing decryption errors
}

// NewStdDecrypter creates a new ChaCha20 decrypter with the specified cipher and key.
// The key must be exactly 32 bytes (256 bits) and nonce must be 12 bytes.
func NewStdDecrypter(c *cipher.ChaCha20Cipher) *StdDecrypter {
	d := &StdDecrypter{
		cipher: c,
	}

	if len(c.Key) != 32 {
		d.Error = KeySizeError(len(c.Key))
		return d
	}

	if len(c.Nonce) != 12 {
		d.Error = InvalidNonceSizeError{Size: len(c.Nonce)}
		return d
	}

	return d
}

// Decrypt decrypts the given byte slice using ChaCha20 decryption.
// ChaCha20 is a stream cipher and decryption is identical to encryption.
// Returns empty data when input is empty.
func (d *StdDecrypter) Decrypt(src []byte) (dst []byte, err error) {
	if d.Error != nil {
		return nil, d.Error
	}

	if len(src) == 0 {
		return
	}

	return Apply(d.cipher.Key, d.cipher.Nonce, d.cipher.Counter, src)
}
