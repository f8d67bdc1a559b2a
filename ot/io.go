//
// io.go
//
// Copyright (c) 2026 kobakaku
//
// All rights reserved.
//

package ot

import (
	"crypto/rsa"
	"math/big"
)

// IO defines the message transport between the two parties. The
// protocol assumes an authenticated but possibly observed channel;
// everything sent through IO is public data.
type IO interface {
	// SendData sends binary data.
	SendData(val []byte) error

	// SendUint32 sends an uint32 value.
	SendUint32(val int) error

	// Flush flushes any pending data in the connection.
	Flush() error

	// ReceiveData receives binary data.
	ReceiveData() ([]byte, error)

	// ReceiveUint32 receives an uint32 value.
	ReceiveUint32() (int, error)
}

// SendPublicKeys sends the receiver's public-key offer. Each slot is
// sent as the modulus bytes followed by the public exponent. The
// slots carry no marker telling which key the receiver can open.
func SendPublicKeys(io IO, keys *ReceiverPublicKeys) error {
	for _, pub := range []PublicKey{keys.PK0, keys.PK1} {
		rsaPub, ok := pub.(*RSAPublicKey)
		if !ok {
			return errKeyType
		}
		if err := io.SendData(rsaPub.pub.N.Bytes()); err != nil {
			return err
		}
		if err := io.SendUint32(rsaPub.pub.E); err != nil {
			return err
		}
	}
	return io.Flush()
}

// ReceivePublicKeys receives the receiver's public-key offer.
func ReceivePublicKeys(io IO) (*ReceiverPublicKeys, error) {
	var pubs [2]PublicKey

	for i := 0; i < 2; i++ {
		n, err := io.ReceiveData()
		if err != nil {
			return nil, err
		}
		e, err := io.ReceiveUint32()
		if err != nil {
			return nil, err
		}
		pubs[i] = &RSAPublicKey{
			pub: &rsa.PublicKey{
				N: big.NewInt(0).SetBytes(n),
				E: e,
			},
		}
	}
	return &ReceiverPublicKeys{
		PK0: pubs[0],
		PK1: pubs[1],
	}, nil
}

// SendResponse sends the sender's two ciphertexts.
func SendResponse(io IO, response *SenderResponse) error {
	if err := io.SendData(response.C0); err != nil {
		return err
	}
	if err := io.SendData(response.C1); err != nil {
		return err
	}
	return io.Flush()
}

// ReceiveResponse receives the sender's two ciphertexts.
func ReceiveResponse(io IO) (*SenderResponse, error) {
	c0, err := io.ReceiveData()
	if err != nil {
		return nil, err
	}
	c1, err := io.ReceiveData()
	if err != nil {
		return nil, err
	}
	return &SenderResponse{
		C0: c0,
		C1: c1,
	}, nil
}
