//
// choice.go
//
// Copyright (c) 2026 kobakaku
//
// All rights reserved.
//

package ot

import (
	"fmt"
)

// Choice selects which of the sender's two messages the receiver
// learns. A Choice is fixed for the session's lifetime.
type Choice int

// Choice values.
const (
	Zero Choice = iota
	One
)

func (c Choice) String() string {
	switch c {
	case Zero:
		return "Zero"
	case One:
		return "One"
	default:
		return fmt.Sprintf("{Choice %d}", int(c))
	}
}

// FromBit creates a Choice from the bit value. Only the literal bits
// 0 and 1 are valid; any other value is an error, never clamped.
func FromBit(bit int) (Choice, error) {
	switch bit {
	case 0:
		return Zero, nil
	case 1:
		return One, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidChoice, bit)
	}
}

// Bit returns the choice as a bit value.
func (c Choice) Bit() int {
	if c == One {
		return 1
	}
	return 0
}
