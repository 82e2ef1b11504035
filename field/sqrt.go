package field

import (
	"filippo.io/edwards25519/field"
)

// Element represents an element of the field GF(2^255-19).
type Element = field.Element

// sqrtM1 is 2^((p-1)/4), which squared is equal to -1 by Euler's Criterion.
var sqrtM1 = mustElement([32]byte{
	0xb0, 0xa0, 0x0e, 0x4a, 0x27, 0x1b, 0xee, 0xc4,
	0x78, 0xe4, 0x2f, 0xad, 0x06, 0x18, 0x43, 0x2f,
	0xa7, 0xd7, 0xfb, 0x3d, 0x99, 0x00, 0x4d, 0x2b,
	0x0b, 0xdf, 0xc1, 0x4f, 0x80, 0x24, 0x83, 0x2b,
})

// SqrtM1 returns a new Element set to the non-negative square root of -1.
func SqrtM1() *Element {
	return new(Element).Set(sqrtM1)
}

// SqrtRatio sets r to the non-negative square root of the ratio of u and v.
//
// If u/v is square, SqrtRatio returns r and 1. If v is zero, r is set to zero
// and wasSquare is 1 only if u is zero as well.
//
// If u/v is not square, wasSquare is 0 and r is set so that r² = sqrt(-1)*u/v.
// The candidate is corrected by sqrt(-1) both when v*r² = -u and when
// v*r² = -u*sqrt(-1), but only the former reports a square. Callers that only
// care about squares must check wasSquare before using r.
//
// All arguments are allowed to alias.
func SqrtRatio(r, u, v *Element) (R *Element, wasSquare int) {
	var t0, v2, uv3, uv7, rr, check, uNeg, uNegI, rPrime Element

	// r = (u * v3) * (u * v7)^((p-5)/8)
	v2.Square(v)
	uv3.Multiply(u, t0.Multiply(&v2, v))
	uv7.Multiply(&uv3, t0.Square(&v2))
	rr.Multiply(&uv3, t0.Pow22523(&uv7))

	check.Multiply(v, t0.Square(&rr)) // check = v * r^2

	uNeg.Negate(u)
	uNegI.Multiply(&uNeg, sqrtM1)
	correctSignSqrt := check.Equal(u)
	flippedSignSqrt := check.Equal(&uNeg)
	flippedSignSqrtI := check.Equal(&uNegI)

	// r = CT_SELECT(r * SQRT_M1 IF flipped_sign_sqrt | flipped_sign_sqrt_i ELSE r)
	rPrime.Multiply(&rr, sqrtM1)
	rr.Select(&rPrime, &rr, flippedSignSqrt|flippedSignSqrtI)

	r.Absolute(&rr) // Choose the nonnegative square root.
	return r, correctSignSqrt | flippedSignSqrt
}

func mustElement(b [32]byte) *Element {
	v, err := new(Element).SetBytes(b[:])
	if err != nil {
		panic(err)
	}
	return v
}
