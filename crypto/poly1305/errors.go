package poly1305

import "fmt"

// KeySizeError represents an error when the Poly1305 one-time key size is invalid.
// Poly1305 keys must be exactly 32 bytes: a 16-byte r and a 16-byte s.
type KeySizeError int

// Error returns a formatted error message describing the invalid key size.
func (k KeySizeError) Error() string {
	return fmt.Sprintf("crypto/poly1305: invalid key size %d, must be exactly 32 bytes", int(k))
}
