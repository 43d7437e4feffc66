package cipher

// ChaCha20Cipher defines a ChaCha20Cipher struct.
type ChaCha20Cipher struct {
	baseCipher
	Nonce   []byte
	Counter uint32
}

// NewChaCha20Cipher returns a new ChaCha20Cipher instance.
func NewChaCha20Cipher() (c *ChaCha20Cipher) {
	return &ChaCha20Cipher{}
}

// SetNonce sets the nonce for the cipher.
func (c *ChaCha20Cipher) SetNonce(nonce []byte) {
	c.Nonce = nonce
}

// SetCounter sets the initial 32-bit block counter for the cipher.
func (c *ChaCha20Cipher) SetCounter(counter uint32) {
	c.Counter = counter
}
