package libecdsautil

import (
	"encoding/binary"
	"math/big"

	"github.com/AiyionPrime/libecdsautil/field"
)

func fieldElementFromUint64(n uint64) *field.Element {
	var nb [8]byte
	binary.LittleEndian.PutUint64(nb[:], n)
	return fieldElementFromBytes(nb[:])
}

func fieldElementFromBytes(x []byte) *field.Element {
	var buf [32]byte
	copy(buf[:], x)
	fe, err := new(field.Element).SetBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return fe
}

// bigIntFromBytes returns the little-endian 32-byte x as a big.Int.
func bigIntFromBytes(x *[32]byte) *big.Int {
	buf := *x
	return new(big.Int).SetBytes(reverse(buf[:]))
}

func reverse(b []byte) []byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
