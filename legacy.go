package libecdsautil

import (
	"encoding/hex"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/AiyionPrime/libecdsautil/field"
)

// ErrOutOfRange is returned for legacy x-coordinates greater than 2^255-20.
var ErrOutOfRange = errors.New("libecdsautil: legacy x-coordinate out of range")

// FlagBitError reports a legacy encoding with a flag bit set.
// The legacy format has no sign bit, so bit 7 of byte 31 must be zero.
type FlagBitError struct {
	Offset int // byte offset in the 32-byte encoding
	Bit    int // bit within that byte
}

func (e *FlagBitError) Error() string {
	return fmt.Sprintf("libecdsautil: invalid encoding: unexpected flag bit %d in byte %d", e.Bit, e.Offset)
}

// HexCharError reports the hex character of an encoding that carries an invalid bit.
type HexCharError struct {
	Index int  // offset in the hex string
	Char  byte // character at Index
	Err   error
}

func (e *HexCharError) Error() string {
	return fmt.Sprintf("libecdsautil: invalid hex character %q at offset %d: %v", e.Char, e.Index, e.Err)
}

func (e *HexCharError) Unwrap() error { return e.Err }

// CompressedLegacyX is the x-coordinate of a point on the legacy libuecc curve.
//
// The legacy curve is isomorphic to edwards25519 with x = sqrt(-486664)*x',
// and its encoding carries no sign bit.
//
// The zero value is the valid encoding of x = 0. Other values must be
// constructed with [NewCompressedLegacyX], [CompressedLegacyXFromSlice],
// [ParseCompressedLegacyX] or [LegacyXFromPoint].
type CompressedLegacyX struct {
	b [32]byte
}

// NewCompressedLegacyX validates the legacy encoding b.
//
// It returns a [*FlagBitError] if the most significant bit is set,
// and [ErrOutOfRange] if b encodes a value of 2^255-19 or more.
func NewCompressedLegacyX(b [32]byte) (CompressedLegacyX, error) {
	if b[31]>>7 == 1 {
		return CompressedLegacyX{}, &FlagBitError{Offset: 31, Bit: 7}
	}
	// Inputs are public keys, so a variable time comparison is fine.
	if bigIntFromBytes(&b).Cmp(legacyMax) > 0 {
		return CompressedLegacyX{}, ErrOutOfRange
	}
	return CompressedLegacyX{b: b}, nil
}

// CompressedLegacyXFromSlice is like [NewCompressedLegacyX] but takes a slice,
// which must be 32 bytes long.
func CompressedLegacyXFromSlice(b []byte) (CompressedLegacyX, error) {
	var buf [32]byte
	if len(b) != len(buf) {
		return CompressedLegacyX{}, errInvalidLength
	}
	copy(buf[:], b)
	return NewCompressedLegacyX(buf)
}

// ParseCompressedLegacyX decodes and validates the 64-character hex string s.
//
// A set flag bit is reported as a [*HexCharError] pointing at the hex
// character that holds it, wrapping the [*FlagBitError].
func ParseCompressedLegacyX(s string) (CompressedLegacyX, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return CompressedLegacyX{}, fmt.Errorf("libecdsautil: %w", err)
	}
	c, err := CompressedLegacyXFromSlice(b)
	var fe *FlagBitError
	if errors.As(err, &fe) {
		// high nibble of the byte holds the flag
		i := 2 * fe.Offset
		return CompressedLegacyX{}, &HexCharError{Index: i, Char: s[i], Err: fe}
	}
	if err != nil {
		return CompressedLegacyX{}, fmt.Errorf("%w: %s", err, s)
	}
	return c, nil
}

// LegacyXFromPoint returns the legacy x-coordinate of p.
//
// The legacy format has no sign bit, so p and its reflection (x, -y) share
// the same encoding.
func LegacyXFromPoint(p *edwards25519.Point) CompressedLegacyX {
	var x, t field.Element

	X, _, Z, _ := p.ExtendedCoordinates()
	t.Invert(Z)
	x.Multiply(X, &t) // x = X/Z
	x.Multiply(&x, ed25519ToLegacy)

	var c CompressedLegacyX
	copy(c.b[:], x.Bytes())
	return c
}

// ToCompressedX converts c to the edwards25519 x-coordinate with a zero y sign.
func (c CompressedLegacyX) ToCompressedX() CompressedX {
	b := c.b
	sign := b[31] >> 7
	b[31] &= 0x7f

	x := fieldElementFromBytes(b[:])
	x.Multiply(x, legacyToEd25519)

	var out CompressedX
	copy(out[:], x.Bytes())
	out[31] |= sign << 7
	return out
}

// Bytes returns a copy of the 32-byte encoding of c.
func (c CompressedLegacyX) Bytes() []byte {
	return c.b[:]
}

// String returns the hex encoding of c.
func (c CompressedLegacyX) String() string {
	return hex.EncodeToString(c.b[:])
}

// MarshalText implements [encoding.TextMarshaler].
func (c CompressedLegacyX) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *CompressedLegacyX) UnmarshalText(text []byte) error {
	v, err := ParseCompressedLegacyX(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
