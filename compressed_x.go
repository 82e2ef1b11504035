// Package libecdsautil implements the "X-compressed" encoding of [edwards25519] points
// used by libuecc and the ecdsautil tools.
//
// The standard Ed25519 encoding stores the y-coordinate and the sign of x.
// [CompressedX] instead stores the x-coordinate and the sign of y:
//
//	bits 0-254: x, little-endian
//	bit 255:    sign of y, i.e. the parity of its canonical encoding
//
// Both encodings describe the same point, so keys can be moved losslessly
// between the two ecosystems. [CompressedLegacyX] accepts the older x-only
// format of libuecc, which lives on an isomorphic curve, and converts it into
// a [CompressedX].
//
// Points are only ever constructed through [edwards25519.Point.SetBytes], so
// every point returned by this package is verified to be on the curve.
// Compression and decompression run in constant time with respect to the
// encoded coordinates.
//
// [edwards25519]: https://pkg.go.dev/filippo.io/edwards25519
package libecdsautil

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/AiyionPrime/libecdsautil/field"
)

// CompressedX is a curve point encoded as its x-coordinate and the sign of its y-coordinate.
//
// A CompressedX is not validated on construction, [CompressedX.Decompress]
// reports whether it encodes a point.
type CompressedX [32]byte

// IdentityX is the reset value of a [CompressedX], see [CompressedX.Zeroize].
//
// It mirrors the [1, 0, ..., 0] identity of the y-compressed encoding and is
// not a valid point: x = 1 is not on the curve. The neutral element itself
// compresses to 00...0080.
var IdentityX = CompressedX{1}

// NewCompressedX returns the x-compressed encoding of p.
//
// NewCompressedX panics if p is not a valid point, which can only happen if
// p was not initialized through the edwards25519 API.
func NewCompressedX(p *edwards25519.Point) CompressedX {
	// The coordinates of edwards25519.Point are reachable only in projective
	// form, so recover x from the y-compressed encoding instead.
	yb := p.Bytes()
	sign := int(yb[31] >> 7)
	yb[31] &= 0x7f

	y, err := new(field.Element).SetBytes(yb)
	if err != nil {
		panic(err)
	}

	// x² = (y² - 1) / (d*y² + 1)
	var yy, u, v field.Element
	yy.Square(y)
	u.Subtract(&yy, one)
	v.Multiply(&yy, d)
	v.Add(&v, one)

	x, wasSquare := field.SqrtRatio(new(field.Element), &u, &v)
	if wasSquare == 0 {
		panic("libecdsautil: internal error: y-coordinate of a valid point has no x")
	}
	// SqrtRatio returns the non-negative root, apply the sign of x.
	x.Select(new(field.Element).Negate(x), x, sign)

	var c CompressedX
	copy(c[:], x.Bytes())
	c[31] |= byte(y.IsNegative()) << 7
	return c
}

// Decompress returns the point encoded by c.
//
// If c is not the x-coordinate of a curve point, or x is not canonical,
// Decompress returns nil and false.
func (c CompressedX) Decompress() (*edwards25519.Point, bool) {
	sign := int(c[31] >> 7)
	xb := c
	xb[31] &= 0x7f

	x, err := new(field.Element).SetBytes(xb[:])
	if err != nil {
		return nil, false
	}
	// field.Element.SetBytes accepts 2^255-19 through 2^255-1.
	if subtle.ConstantTimeCompare(x.Bytes(), xb[:]) == 0 {
		return nil, false
	}

	// y² = (-x² - 1) / (d*x² - 1)
	var xx, s, t field.Element
	xx.Square(x)
	s.Negate(&xx)
	s.Subtract(&s, one)
	t.Multiply(&xx, d)
	t.Subtract(&t, one)

	y, wasSquare := field.SqrtRatio(new(field.Element), &s, &t)
	if wasSquare == 0 {
		return nil, false
	}
	// SqrtRatio returns the non-negative root, apply the sign of y.
	y.Select(new(field.Element).Negate(y), y, sign)

	// edwards25519.Point can't be built from affine coordinates without
	// going through an encoding, so hand it the y-compressed form.
	yb := y.Bytes()
	yb[31] |= byte(x.IsNegative()) << 7

	p, err := new(edwards25519.Point).SetBytes(yb)
	if err != nil {
		return nil, false
	}
	return p, true
}

// Bytes returns a copy of the 32-byte encoding of c.
func (c CompressedX) Bytes() []byte {
	return c[:]
}

// Equal returns 1 if c and o are equal, and 0 otherwise. It runs in constant time.
func (c CompressedX) Equal(o CompressedX) int {
	return subtle.ConstantTimeCompare(c[:], o[:])
}

// Zeroize overwrites c with [IdentityX].
func (c *CompressedX) Zeroize() {
	*c = IdentityX
}

// String returns the hex encoding of c.
func (c CompressedX) String() string {
	return hex.EncodeToString(c[:])
}

// MarshalText implements [encoding.TextMarshaler].
func (c CompressedX) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *CompressedX) UnmarshalText(text []byte) error {
	v, err := ParseCompressedX(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

var errInvalidLength = errors.New("libecdsautil: invalid point encoding length")

// CompressedXFromSlice returns the CompressedX with the encoding b.
// It fails only if b is not 32 bytes long.
func CompressedXFromSlice(b []byte) (CompressedX, error) {
	var c CompressedX
	if len(b) != len(c) {
		return c, errInvalidLength
	}
	copy(c[:], b)
	return c, nil
}

// ParseCompressedX decodes the 64-character hex string s.
func ParseCompressedX(s string) (CompressedX, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return CompressedX{}, fmt.Errorf("libecdsautil: %w", err)
	}
	return CompressedXFromSlice(b)
}
