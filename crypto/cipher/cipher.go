// Package cipher provides cryptographic cipher configuration shared by the
// ChaCha20 and ChaCha20-Poly1305 implementations.
package cipher

type baseCipher struct {
	Key []byte
}

// SetKey sets the encryption key for the cipher.
func (c *baseCipher) SetKey(key []byte) {
	c.Key = key
}
