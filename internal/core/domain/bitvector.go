package domain

// BitVector is a fixed-length packed bit array. A dependency set keeps one
// bit per class definition of its module, so the length is fixed at
// construction and never changes.
type BitVector struct {
	bits []byte
	n    int
}

// NewBitVector creates a BitVector of n bits, all clear.
func NewBitVector(n int) BitVector {
	return BitVector{bits: make([]byte, (n+7)/8), n: n}
}

// BitVectorFromBytes reconstructs a BitVector of n bits from its packed
// form. It returns false if the byte slice does not have the exact packed
// size for n bits or if any bit beyond n is set.
func BitVectorFromBytes(n int, packed []byte) (BitVector, bool) {
	if len(packed) != (n+7)/8 {
		return BitVector{}, false
	}
	if n%8 != 0 && len(packed) > 0 {
		if packed[len(packed)-1]>>(n%8) != 0 {
			return BitVector{}, false
		}
	}
	bits := make([]byte, len(packed))
	copy(bits, packed)
	return BitVector{bits: bits, n: n}, true
}

// Len returns the number of bits.
func (v BitVector) Len() int {
	return v.n
}

// Get reports whether bit i is set.
func (v BitVector) Get(i int) bool {
	if i < 0 || i >= v.n {
		panic("domain: bit index out of range")
	}
	return v.bits[i/8]&(1<<(i%8)) != 0
}

// Set sets bit i.
func (v BitVector) Set(i int) {
	if i < 0 || i >= v.n {
		panic("domain: bit index out of range")
	}
	v.bits[i/8] |= 1 << (i % 8)
}

// Bytes returns the packed representation, least significant bit first.
// The returned slice aliases the vector's storage.
func (v BitVector) Bytes() []byte {
	return v.bits
}

// IntersectWith clears every bit of v that is clear in other. Both vectors
// must have the same length.
func (v BitVector) IntersectWith(other BitVector) {
	if v.n != other.n {
		panic("domain: bit vector length mismatch")
	}
	for i := range v.bits {
		v.bits[i] &= other.bits[i]
	}
}

// UnionWith sets every bit of v that is set in other. Both vectors must
// have the same length.
func (v BitVector) UnionWith(other BitVector) {
	if v.n != other.n {
		panic("domain: bit vector length mismatch")
	}
	for i := range v.bits {
		v.bits[i] |= other.bits[i]
	}
}

// Clone returns a copy with independent storage.
func (v BitVector) Clone() BitVector {
	bits := make([]byte, len(v.bits))
	copy(bits, v.bits)
	return BitVector{bits: bits, n: v.n}
}

// Equal reports whether both vectors have the same length and bits.
func (v BitVector) Equal(other BitVector) bool {
	if v.n != other.n {
		return false
	}
	for i := range v.bits {
		if v.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}
