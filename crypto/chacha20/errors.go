package chacha20

import "fmt"

// KeySizeError represents an error when the ChaCha20 key size is invalid.
// ChaCha20 keys must be exactly 32 bytes (256 bits) long.
type KeySizeError int

// Error returns a formatted error message describing the invalid key size.
func (k KeySizeError) Error() string {
	return fmt.Sprintf("crypto/chacha20: invalid key size %d, must be exactly 32 bytes", int(k))
}

// InvalidNonceSizeError represents an error when the ChaCha20 nonce size is invalid.
// ChaCha20 nonces must be exactly 12 bytes (96 bits) long.
type InvalidNonceSizeError struct {
	Size int
}

// Error returns a formatted error message describing the invalid nonce size.
func (e InvalidNonceSizeError) Error() string {
	return fmt.Sprintf("crypto/chacha20: invalid nonce size %d, must be exactly 12 bytes", e.Size)
}

// InputTooLongError represents an error when the keystream requested from a
// single nonce would exceed 2^32 blocks (2^38 bytes).
type InputTooLongError int64

// Error returns a formatted error message describing the oversized input.
func (e InputTooLongError) Error() string {
	return fmt.Sprintf("crypto/chacha20: input of %d bytes exceeds the 2^32 block-counter limit", int64(e))
}
