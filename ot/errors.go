//
// errors.go
//
// Copyright (c) 2026 kobakaku
//
// All rights reserved.
//

package ot

import (
	"errors"
	"fmt"
)

// Protocol errors.
var (
	// ErrInvalidChoice is returned when a choice is constructed from
	// a bit value outside {0, 1}.
	ErrInvalidChoice = errors.New("ot: invalid choice bit")

	// ErrKeyGeneration is returned when the cipher fails to produce
	// a key pair. The session aborts without retaining any key
	// material.
	ErrKeyGeneration = errors.New("ot: key generation failed")

	// ErrProtocolState is returned when an operation is invoked out
	// of its phase order, for example decrypting before the keys
	// have been generated. It reports a programming error, not a
	// cryptographic failure.
	ErrProtocolState = errors.New("ot: operation out of protocol order")

	// ErrDecryption is returned when the chosen ciphertext can not
	// be decrypted.
	ErrDecryption = errors.New("ot: decryption failed")
)

// EncryptionError reports an encryption failure for one ciphertext
// slot. The sender returns no response at all when either slot
// fails.
type EncryptionError struct {
	Slot int
	Err  error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("ot: encrypting slot %d: %v", e.Slot, e.Err)
}

// Unwrap returns the underlying cipher error.
func (e *EncryptionError) Unwrap() error {
	return e.Err
}
