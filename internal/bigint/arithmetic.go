package bigint

// AddAbs computes |a| + |b|, ignoring sign, and returns it with sign +1 (or
// 0 if the result is zero, which cannot happen unless both inputs are zero).
func AddAbs(a, b *Int) *Int {
	maxSize := len(a.limbs)
	if len(b.limbs) > maxSize {
		maxSize = len(b.limbs)
	}

	limbs := make([]uint32, maxSize+1)
	var carry uint64
	for i := 0; i < maxSize; i++ {
		sum := carry
		if i < len(a.limbs) {
			sum += uint64(a.limbs[i])
		}
		if i < len(b.limbs) {
			sum += uint64(b.limbs[i])
		}
		limbs[i] = uint32(sum)
		carry = sum >> 32
	}
	limbs[maxSize] = uint32(carry)

	return normalize(1, limbs)
}

// SubAbs computes |a| - |b|. The caller must ensure |a| >= |b|.
func SubAbs(a, b *Int) *Int {
	limbs := make([]uint32, len(a.limbs))
	var borrow uint32
	for i := 0; i < len(a.limbs); i++ {
		av := a.limbs[i]
		var bv uint32
		if i < len(b.limbs) {
			bv = b.limbs[i]
		}

		diff := uint64(av) - uint64(bv) - uint64(borrow)
		limbs[i] = uint32(diff)
		borrow = uint32((diff >> 32) & 1)
	}

	return normalize(1, limbs)
}

// MulAbs computes |a| * |b|.
func MulAbs(a, b *Int) *Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return &Int{}
	}

	limbs := make([]uint32, len(a.limbs)+len(b.limbs))
	for i := range a.limbs {
		var carry uint64
		for j := range b.limbs {
			product := uint64(a.limbs[i])*uint64(b.limbs[j]) + uint64(limbs[i+j]) + carry
			limbs[i+j] = uint32(product)
			carry = product >> 32
		}
		limbs[i+len(b.limbs)] = uint32(carry)
	}

	return normalize(1, limbs)
}

// Add computes a + b, honoring signs.
func Add(a, b *Int) *Int {
	if a.Sign() == 0 {
		return b
	}
	if b.Sign() == 0 {
		return a
	}

	if a.sign == b.sign {
		r := AddAbs(a, b)
		r.sign = a.sign
		return r
	}

	if CmpAbs(a, b) >= 0 {
		r := SubAbs(a, b)
		if r.Sign() != 0 {
			r.sign = a.sign
		}
		return r
	}
	r := SubAbs(b, a)
	if r.Sign() != 0 {
		r.sign = b.sign
	}
	return r
}

// Sub computes a - b, honoring signs.
func Sub(a, b *Int) *Int {
	if b.Sign() == 0 {
		return a
	}
	if a.Sign() == 0 {
		r := &Int{sign: -b.sign, limbs: b.limbs}
		return r
	}

	if a.sign == b.sign {
		if CmpAbs(a, b) >= 0 {
			r := SubAbs(a, b)
			if r.Sign() != 0 {
				r.sign = a.sign
			}
			return r
		}
		r := SubAbs(b, a)
		if r.Sign() != 0 {
			r.sign = -a.sign
		}
		return r
	}

	r := AddAbs(a, b)
	r.sign = a.sign
	return r
}

// Mul computes a * b, honoring signs.
func Mul(a, b *Int) *Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return &Int{}
	}

	r := MulAbs(a, b)
	if r.Sign() != 0 {
		r.sign = a.sign * b.sign
	}
	return r
}
