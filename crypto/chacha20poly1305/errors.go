package chacha20poly1305

import "fmt"

// KeySizeError represents an error when the ChaCha20-Poly1305 key size is invalid.
// ChaCha20-Poly1305 keys must be exactly 32 bytes (256 bits) long.
type KeySizeError int

// Error returns a formatted error message describing the invalid key size.
func (k KeySizeError) Error() string {
	return fmt.Sprintf("crypto/chacha20poly1305: invalid key size %d, must be exactly 32 bytes", int(k))
}

// InvalidNonceSizeError represents an error when the ChaCha20-Poly1305 nonce size is invalid.
// ChaCha20-Poly1305 nonces must be exactly 12 bytes long.
type InvalidNonceSizeError struct {
	Size int
}

// Error returns a formatted error message describing the invalid nonce size.
func (e InvalidNonceSizeError) Error() string {
	return fmt.Sprintf("crypto/chacha20poly1305: invalid nonce size %d, must be exactly 12 bytes", e.Size)
}

// AuthenticationError represents an error when ChaCha20-Poly1305 authentication
// fails. This occurs when the computed tag doesn't match the tag carried in
// the ciphertext during decryption, meaning the data was tampered with or
// corrupted. No plaintext is returned alongside this error.
type AuthenticationError struct{}

// Error returns a formatted error message describing the authentication failure.
func (e AuthenticationError) Error() string {
	return "crypto/chacha20poly1305: message authentication failed"
}

// CiphertextTooShortError represents an error when the input to Decrypt is
// shorter than a Poly1305 tag, so it cannot possibly carry one.
type CiphertextTooShortError int

// Error returns a formatted error message describing the undersized ciphertext.
func (e CiphertextTooShortError) Error() string {
	return fmt.Sprintf("crypto/chacha20poly1305: ciphertext of %d bytes is shorter than the 16-byte tag", int(e))
}
