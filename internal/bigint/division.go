package bigint

// DivMod computes the quotient and remainder of numerator / denominator
// using binary long division over the magnitudes. The quotient sign is the
// product of the operand signs; the remainder sign follows the numerator
// (truncated-toward-zero semantics). Returns ErrDivisionByZero if
// denominator is zero.
func DivMod(numerator, denominator *Int) (quotient, remainder *Int, err error) {
	if denominator.Sign() == 0 {
		return nil, nil, ErrDivisionByZero
	}

	if CmpAbs(numerator, denominator) < 0 {
		return &Int{}, numerator, nil
	}

	qLimbs := make([]uint32, len(numerator.limbs))
	r := &Int{}

	totalBits := numerator.bitLen()

	for i := totalBits; i > 0; i-- {
		// 1. Shift the running remainder left by one bit.
		if r.Sign() != 0 {
			shifted := make([]uint32, len(r.limbs))
			var carry uint32
			for j := range r.limbs {
				nextCarry := r.limbs[j] >> 31
				shifted[j] = (r.limbs[j] << 1) | carry
				carry = nextCarry
			}
			if carry > 0 {
				shifted = append(shifted, carry)
			}
			r = &Int{sign: 1, limbs: shifted}
		}

		// 2. Extract the (i-1)-th bit of the numerator.
		limbIdx := (i - 1) / 32
		bitIdx := uint((i - 1) % 32)
		bit := (numerator.limbs[limbIdx] >> bitIdx) & 1

		// 3. Drop the bit into the LSB of the remainder.
		if bit == 1 {
			if r.Sign() == 0 {
				r = &Int{sign: 1, limbs: []uint32{1}}
			} else {
				limbs := append([]uint32(nil), r.limbs...)
				limbs[0] |= 1
				r = &Int{sign: 1, limbs: limbs}
			}
		}

		// 4. remainder >= denominator: subtract and set the quotient bit.
		if CmpAbs(r, denominator) >= 0 {
			r = SubAbs(r, denominator)
			qLimbs[limbIdx] |= 1 << bitIdx
		}
	}

	quotient = normalize(numerator.sign*denominator.sign, qLimbs)
	remainder = normalize(numerator.sign, r.limbs)
	return quotient, remainder, nil
}

// Div computes the truncated-toward-zero quotient a / b.
func Div(a, b *Int) (*Int, error) {
	q, _, err := DivMod(a, b)
	return q, err
}

// Mod computes the truncated-toward-zero remainder a % b, whose sign
// follows a.
func Mod(a, b *Int) (*Int, error) {
	_, r, err := DivMod(a, b)
	return r, err
}

// ModCrypto computes the Euclidean modulo of a and b: the unique
// representative of a mod b in [0, |b|). Poly1305 evaluates its polynomial
// over a non-negative accumulator, so the correction below is inert on its
// hot path but must still be correct for negative inputs.
func ModCrypto(a, b *Int) (*Int, error) {
	r, err := Mod(a, b)
	if err != nil {
		return nil, err
	}
	if r.Sign() < 0 {
		bAbs := &Int{sign: 1, limbs: b.limbs}
		r = Add(r, bAbs)
	}
	return r, nil
}
