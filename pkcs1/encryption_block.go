//
// encryption_block.go
//
// Copyright (c) 2026 kobakaku
//
// All rights reserved.
//
// PKCS #1 encryption-block formatting, RFC 2313. Only block type 02
// is implemented: the protocol requires randomized encryption, and
// the deterministic block types have no caller here.

package pkcs1

import (
	"crypto/rand"
	"errors"
	"io"
)

const (
	// MinPadLen specifies the minimum padding length.
	MinPadLen = 8

	// headerLen is the block header: a zero octet and the block type
	// octet.
	headerLen = 2

	blockType = 0x02
)

var (
	// ErrorInvalidEncryptionBlock error is returned when the
	// encryption block is malformed.
	ErrorInvalidEncryptionBlock = errors.New("invalid encryption block")

	// ErrorDataTooLong error is returned when the data does not fit
	// into the block with the minimum padding.
	ErrorDataTooLong = errors.New("data too long")
)

// MaxDataLen returns the maximum data length an encryption block of
// blockLen octets can carry.
func MaxDataLen(blockLen int) int {
	return blockLen - headerLen - 1 - MinPadLen
}

// NewEncryptionBlock formats data into a block type 02 encryption
// block of blockLen octets:
//
//	EB = 00 || 02 || PS || 00 || D
//
// The padding string PS is at least MinPadLen random nonzero octets,
// so two blocks over the same data differ.
func NewEncryptionBlock(blockLen int, data []byte) ([]byte, error) {
	padLen := blockLen - headerLen - 1 - len(data)
	if padLen < MinPadLen {
		return nil, ErrorDataTooLong
	}

	block := make([]byte, blockLen)
	block[1] = blockType

	pad := block[headerLen : headerLen+padLen]
	_, err := io.ReadFull(rand.Reader, pad)
	if err != nil {
		return nil, err
	}
	for i := range pad {
		for pad[i] == 0 {
			if _, err := rand.Read(pad[i : i+1]); err != nil {
				return nil, err
			}
		}
	}
	copy(block[headerLen+padLen+1:], data)

	return block, nil
}

// ParseEncryptionBlock parses the encryption block and returns its
// data.
func ParseEncryptionBlock(block []byte) ([]byte, error) {
	if len(block) < headerLen+MinPadLen+1 {
		return nil, ErrorInvalidEncryptionBlock
	}
	if block[0] != 0 || block[1] != blockType {
		return nil, ErrorInvalidEncryptionBlock
	}
	for i := headerLen; i < len(block); i++ {
		if block[i] == 0 {
			if i < headerLen+MinPadLen {
				return nil, ErrorInvalidEncryptionBlock
			}
			return block[i+1:], nil
		}
	}
	return nil, ErrorInvalidEncryptionBlock
}
