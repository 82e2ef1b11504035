// Package field implements the square root of a ratio modulo 2^255-19.
//
// [Element] is an alias of [filippo.io/edwards25519/field.Element], so values
// flow freely between this package and the edwards25519 module. The package
// adds [SqrtRatio] and the [SqrtM1] constant, which the curve25519 point
// encodings of the parent package are built on.
//
// All functions run in constant time with respect to the values of their
// arguments.
package field
