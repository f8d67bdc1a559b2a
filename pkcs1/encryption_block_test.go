//
// encryption_block_test.go
//
// Copyright (c) 2026 kobakaku
//
// All rights reserved.
//

package pkcs1

import (
	"bytes"
	"testing"
)

func TestEncryptionBlock(t *testing.T) {
	data := []byte{'h', 'e', 'l', 'l', 'o'}

	block, err := NewEncryptionBlock(1024/8, data)
	if err != nil {
		t.Fatalf("Failed to create block: %s", err)
	}
	if len(block) != 1024/8 {
		t.Fatalf("Invalid block length %d", len(block))
	}
	parsed, err := ParseEncryptionBlock(block)
	if err != nil {
		t.Fatalf("Failed to parse block: %s", err)
	}
	if !bytes.Equal(data, parsed) {
		t.Fatalf("Parsed invalid data")
	}
}

func TestEncryptionBlockRandomized(t *testing.T) {
	data := []byte("same plaintext")

	b0, err := NewEncryptionBlock(128, data)
	if err != nil {
		t.Fatal(err)
	}
	b1, err := NewEncryptionBlock(128, data)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(b0, b1) {
		t.Fatal("Blocks over the same data are identical")
	}
}

func TestEncryptionBlockTooLong(t *testing.T) {
	data := []byte("hello")

	_, err := NewEncryptionBlock(len(data)+MinPadLen+3-1, data)
	if err != ErrorDataTooLong {
		t.Fatalf("Too long data encoded: %v", err)
	}

	if max := MaxDataLen(128); max != 128-3-MinPadLen {
		t.Fatalf("MaxDataLen returned %d", max)
	}
	long := make([]byte, MaxDataLen(128)+1)
	_, err = NewEncryptionBlock(128, long)
	if err != ErrorDataTooLong {
		t.Fatalf("Over-limit data encoded: %v", err)
	}
}

func TestParseMalformed(t *testing.T) {
	malformed := [][]byte{
		nil,
		{0x00, 0x02},
		append([]byte{0x00, 0x02}, bytes.Repeat([]byte{0xff}, 16)...), // no zero octet
		append([]byte{0x01, 0x02}, make([]byte, 16)...),               // bad first octet
		append([]byte{0x00, 0x01}, make([]byte, 16)...),               // bad block type
		{0x00, 0x02, 0xff, 0x00, 'h', 'i', 0, 0, 0, 0, 0, 0}, // short pad
	}
	for idx, block := range malformed {
		_, err := ParseEncryptionBlock(block)
		if err == nil {
			t.Errorf("Malformed block %d parsed", idx)
		}
	}
}
