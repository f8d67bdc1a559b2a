//
// xor_test.go
//
// Copyright (c) 2026 kobakaku
//
// All rights reserved.
//

package xor

import (
	"bytes"
	"testing"
)

func TestBytesEqualLength(t *testing.T) {
	a := []byte{0x12, 0x34, 0x56}
	b := []byte{0xab, 0xcd, 0xef}
	expected := []byte{0x12 ^ 0xab, 0x34 ^ 0xcd, 0x56 ^ 0xef}

	result := Bytes(a, b)
	if !bytes.Equal(result, expected) {
		t.Fatalf("Bytes(%x, %x) = %x, expected %x", a, b, result, expected)
	}
}

func TestBytesDifferentLengths(t *testing.T) {
	a := []byte{0x12, 0x34}
	b := []byte{0xab, 0xcd, 0xef}
	expected := []byte{0x12 ^ 0xab, 0x34 ^ 0xcd, 0xef}

	result := Bytes(a, b)
	if !bytes.Equal(result, expected) {
		t.Fatalf("Bytes(%x, %x) = %x, expected %x", a, b, result, expected)
	}
	if !bytes.Equal(Bytes(b, a), result) {
		t.Fatal("Bytes is not symmetric")
	}
}

func TestBytesInverse(t *testing.T) {
	a := []byte("some plaintext")
	pad := []byte{0x42, 0x17, 0x99, 0x00, 0xff, 0x01, 0x02, 0x03,
		0x04, 0x05, 0x06, 0x07, 0x08, 0x09}

	if !bytes.Equal(Bytes(Bytes(a, pad), pad), a) {
		t.Fatal("XOR with the same pad twice is not the identity")
	}
}
