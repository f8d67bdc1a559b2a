//
// mpint.go
//
// Copyright (c) 2026 kobakaku
//
// All rights reserved.
//

// Package mpint implements the big.Int operations of the raw RSA
// computations.
package mpint

import (
	"math/big"
)

// FromBytes creates a big.Int from the big-endian data.
func FromBytes(data []byte) *big.Int {
	return big.NewInt(0).SetBytes(data)
}

// Exp computes x^y mod m.
func Exp(x, y, m *big.Int) *big.Int {
	return big.NewInt(0).Exp(x, y, m)
}

// ToBytes returns the big-endian bytes of x, left-padded with zeros
// to size bytes. The value must fit into size bytes.
func ToBytes(x *big.Int, size int) []byte {
	buf := make([]byte, size)
	return x.FillBytes(buf)
}
