package cipher

// ChaCha20Poly1305Cipher defines a ChaCha20Poly1305Cipher struct.
//
// The 96-bit AEAD nonce is assembled from two fields, matching the layout
// used by the reference construction: a 4-byte Constant followed by an
// 8-byte IV.
type ChaCha20Poly1305Cipher struct {
	baseCipher
	IV       []byte
	Constant []byte
	AAD      []byte
}

// NewChaCha20Poly1305Cipher returns a new ChaCha20Poly1305Cipher instance.
func NewChaCha20Poly1305Cipher() (c *ChaCha20Poly1305Cipher) {
	return &ChaCha20Poly1305Cipher{}
}

// SetIV sets the 8-byte IV half of the nonce for the cipher.
func (c *ChaCha20Poly1305Cipher) SetIV(iv []byte) {
	c.IV = iv
}

// SetConstant sets the 4-byte constant half of the nonce for the cipher.
func (c *ChaCha20Poly1305Cipher) SetConstant(constant []byte) {
	c.Constant = constant
}

// SetAAD sets the additional authenticated data (AAD) for the cipher.
func (c *ChaCha20Poly1305Cipher) SetAAD(aad []byte) {
	c.AAD = aad
}

// Nonce returns the assembled 12-byte AEAD nonce: Constant || IV.
func (c *ChaCha20Poly1305Cipher) Nonce() []byte {
	nonce := make([]byte, 0, len(c.Constant)+len(c.IV))
	nonce = append(nonce, c.Constant...)
	nonce = append(nonce, c.IV...)
	return nonce
}
