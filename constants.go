package libecdsautil

import (
	"math/big"

	"github.com/AiyionPrime/libecdsautil/field"
)

// Constant 1
var one = new(field.Element).One()

// Constant d = -121665/121666 of the twisted Edwards curve -x² + y² = 1 + d*x²*y².
//
// https://www.rfc-editor.org/rfc/rfc8032.html#section-5.1
var d = func() *field.Element {
	var t field.Element
	t.Invert(fieldElementFromUint64(121666))
	t.Multiply(&t, fieldElementFromUint64(121665))
	return t.Negate(&t)
}()

// Constant -|sqrt(-486664)| - the scaling factor of the bi-rational map between
// curve25519 and edwards25519, x = sqrt(-486664)*u/v.
//
// The legacy libuecc x-coordinate is u/v, so it maps to edwards25519 by a
// single multiplication.
//
// https://www.rfc-editor.org/rfc/rfc7748.html#section-4.1
var legacyToEd25519 = fieldElementFromBytes([]byte{
	0xe7, 0x81, 0xba, 0x00, 0x55, 0xfb, 0x91, 0x33,
	0x7d, 0xe5, 0x82, 0xb4, 0x2e, 0x2c, 0x5e, 0x3a,
	0x81, 0xb0, 0x03, 0xfc, 0x23, 0xf7, 0x84, 0x2d,
	0x44, 0xf9, 0x5f, 0x9f, 0x0b, 0x12, 0xd9, 0x70,
})

// Inverse of legacyToEd25519.
var ed25519ToLegacy = new(field.Element).Invert(legacyToEd25519)

// Largest legacy x-coordinate, p - 1 = 2^255 - 20.
var legacyMax = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(20))
