// Package bigint implements the two's-complement minimal-byte encoding
// used by the Integer variant of ber.Value. It is deliberately standalone
// (not a method on the value type) so the encoder and decoder share it.
// It lives under internal/, so only packages of this module can import it.
package bigint

import "math/big"

// ToBuffer returns the minimal two's-complement big-endian byte sequence
// for n, with the leading byte's MSB carrying the sign. Zero encodes as a
// single 0x00 byte.
//
// This is the corrected form: a previous iteration of this codec mishandled
// negative values whose magnitude was already a multiple of 8 bits (it
// failed to flip the leading 0xFF padding to two's-complement before
// returning). This implementation always computes the true two's-complement
// representation and is the only behavior an implementer should reproduce.
func ToBuffer(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0x00}
	}

	if n.Sign() > 0 {
		b := n.Bytes() // big-endian, minimal, no leading zero
		if len(b) == 0 || b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	// Negative: find the minimal byte width whose two's-complement form
	// has a leading-byte MSB of 1, then compute that two's-complement value.
	mag := new(big.Int).Neg(n) // |n|, > 0

	width := len(mag.Bytes())
	if width == 0 {
		width = 1
	}
	for {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(width*8-1)) // 2^(8w-1)
		if mag.Cmp(limit) <= 0 {
			break
		}
		width++
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(width*8)) // 2^(8w)
	twos := new(big.Int).Sub(mod, mag)                    // 2^(8w) - |n|

	out := make([]byte, width)
	twos.FillBytes(out)
	return out
}

// FromBuffer is the exact inverse of ToBuffer: b is interpreted as a
// signed two's-complement big-endian integer (a leading-byte MSB of 1
// means negative).
func FromBuffer(b []byte) *big.Int {
	if len(b) == 0 {
		return big.NewInt(0)
	}

	n := new(big.Int).SetBytes(b)
	if b[0]&0x80 == 0 {
		return n
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(len(b)*8))
	return n.Sub(n, mod)
}
