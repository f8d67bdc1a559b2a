//
// mpint_test.go
//
// Copyright (c) 2026 kobakaku
//
// All rights reserved.
//

package mpint

import (
	"bytes"
	"testing"
)

func TestExp(t *testing.T) {
	x := FromBytes([]byte{0x02})
	y := FromBytes([]byte{0x0a})
	m := FromBytes([]byte{0x03, 0xe9}) // 1001

	// 2^10 mod 1001 = 23
	result := Exp(x, y, m)
	if result.Int64() != 23 {
		t.Errorf("%s^%s mod %s = %s, expected 23", x, y, m, result)
	}
}

func TestToBytes(t *testing.T) {
	x := FromBytes([]byte{0x01, 0x02})

	data := ToBytes(x, 4)
	if !bytes.Equal(data, []byte{0x00, 0x00, 0x01, 0x02}) {
		t.Errorf("ToBytes returned %x", data)
	}
	if !bytes.Equal(ToBytes(x, 2), []byte{0x01, 0x02}) {
		t.Errorf("ToBytes without padding failed")
	}
}
