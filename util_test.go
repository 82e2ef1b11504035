package libecdsautil

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	"github.com/AiyionPrime/libecdsautil/field"
	"github.com/stretchr/testify/assert"
)

func TestBigIntFromBytes(t *testing.T) {
	var b [32]byte
	b[0] = 0x01
	b[1] = 0x02
	b[31] = 0x7f

	expected, _ := new(big.Int).SetString("7f00000000000000000000000000000000000000000000000000000000000201", 16)
	assert.Equal(t, 0, expected.Cmp(bigIntFromBytes(&b)))

	// The input is not modified.
	assert.Equal(t, byte(0x01), b[0])
	assert.Equal(t, byte(0x7f), b[31])
}

func TestLegacyMax(t *testing.T) {
	var b [32]byte
	copy(b[:], new(field.Element).Negate(one).Bytes()) // p - 1

	assert.Equal(t, 0, legacyMax.Cmp(bigIntFromBytes(&b)))
}

func TestCurveConstantD(t *testing.T) {
	// https://www.rfc-editor.org/rfc/rfc8032.html#section-5.1
	expected := fieldElementFromString("37095705934669439343138083508754565189542113879843219016388785533085940283555")
	assert.Equal(t, expected.Bytes(), d.Bytes())
}

func fieldElementFromString(s string) *field.Element {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid fieldElement string")
	}
	var buf [32]byte
	return fieldElementFromBytes(reverse(n.FillBytes(buf[:])))
}

func randUint64() uint64 {
	var num uint64
	err := binary.Read(rand.Reader, binary.NativeEndian, &num)
	if err != nil {
		panic(err)
	}
	return num
}

func scalarFromUint64(n uint64) *edwards25519.Scalar {
	var buf [64]byte
	binary.LittleEndian.PutUint64(buf[:], n)

	xs, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return xs
}

// randomPoint returns a random point of the prime order subgroup.
func randomPoint() *edwards25519.Point {
	var buf [64]byte
	rand.Read(buf[:])

	s, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return new(edwards25519.Point).ScalarBaseMult(s)
}
