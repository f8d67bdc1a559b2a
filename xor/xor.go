//
// xor.go
//
// Copyright (c) 2026 kobakaku
//
// All rights reserved.
//

// Package xor implements bytewise XOR over byte slices. It backs the
// insecure swap baseline and the test ciphers; it has no security
// properties of its own.
package xor

// Bytes XORs a and b bytewise. The shorter input is zero-extended,
// so the result always has the length of the longer input.
func Bytes(a, b []byte) []byte {
	if len(b) > len(a) {
		a, b = b, a
	}
	result := make([]byte, len(a))
	copy(result, a)
	for i := 0; i < len(b); i++ {
		result[i] ^= b[i]
	}
	return result
}
