//
// egl.go
//
// Copyright (c) 2026 kobakaku
//
// All rights reserved.
//
// Even-Goldreich-Lempel 1-out-of-2 OT:
//  - S. Even, O. Goldreich, A. Lempel: A Randomized Protocol for
//    Signing Contracts. CACM 28(6), 1985.

package ot

import (
	"fmt"
)

// ReceiverPublicKeys is the receiver's public-key offer: one key per
// message slot. Exactly one slot holds a key whose private half the
// receiver retained; the slots are indistinguishable to the sender.
type ReceiverPublicKeys struct {
	PK0 PublicKey
	PK1 PublicKey
}

// SenderResponse holds the sender's two ciphertexts, one per message
// slot.
type SenderResponse struct {
	C0 []byte
	C1 []byte
}

type receiverState int

const (
	receiverInit receiverState = iota
	receiverKeysGenerated
	receiverDone
)

// Receiver implements the receiving party of one transfer. The
// receiver is one-shot: GeneratePublicKeys once, DecryptMessage
// once, in that order. A Receiver must not be shared between
// goroutines.
type Receiver struct {
	cipher  Cipher
	choice  Choice
	keyBits int
	state   receiverState
	priv    PrivateKey
}

// NewReceiver creates a receiver for one transfer with the given
// choice. The keyBits argument sets the modulus size of the
// generated key pairs; the protocol itself works with any size the
// cipher accepts.
func NewReceiver(cipher Cipher, choice Choice, keyBits int) *Receiver {
	return &Receiver{
		cipher:  cipher,
		choice:  choice,
		keyBits: keyBits,
	}
}

// GeneratePublicKeys runs the receiver's first phase. It generates
// the real and the decoy key pair, retains the real private key, and
// returns the two public keys with the real key in the slot selected
// by the receiver's choice.
func (r *Receiver) GeneratePublicKeys() (*ReceiverPublicKeys, error) {
	if r.state != receiverInit {
		return nil, fmt.Errorf("%w: public keys already generated",
			ErrProtocolState)
	}

	realPub, realPriv, err := r.cipher.GenerateKeyPair(r.keyBits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}
	decoyPub, err := r.decoyPublicKey()
	if err != nil {
		// Abort cleanly: the half-generated session keeps nothing.
		realPriv.Destroy()
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}

	keys := new(ReceiverPublicKeys)
	if r.choice == Zero {
		keys.PK0 = realPub
		keys.PK1 = decoyPub
	} else {
		keys.PK0 = decoyPub
		keys.PK1 = realPub
	}

	r.priv = realPriv
	r.state = receiverKeysGenerated

	return keys, nil
}

// decoyPublicKey generates a key pair and returns only its public
// half. The private half is destroyed before the function returns,
// so no reference to it can outlive this call. Without it the
// ciphertext in the non-chosen slot stays permanently opaque to the
// receiver, which is what the sender's secrecy rests on.
func (r *Receiver) decoyPublicKey() (PublicKey, error) {
	pub, priv, err := r.cipher.GenerateKeyPair(r.keyBits)
	if err != nil {
		return nil, err
	}
	priv.Destroy()
	return pub, nil
}

// DecryptMessage runs the receiver's second phase. It opens the
// ciphertext slot selected by the receiver's choice and returns the
// plaintext. The other slot is never touched: the receiver holds no
// private key that could open it.
func (r *Receiver) DecryptMessage(response *SenderResponse) ([]byte, error) {
	switch r.state {
	case receiverKeysGenerated:

	case receiverDone:
		return nil, fmt.Errorf("%w: message already decrypted",
			ErrProtocolState)

	default:
		return nil, fmt.Errorf("%w: public keys not generated",
			ErrProtocolState)
	}

	var ciphertext []byte
	if r.choice == Zero {
		ciphertext = response.C0
	} else {
		ciphertext = response.C1
	}

	plaintext, err := r.cipher.Decrypt(r.priv, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	r.state = receiverDone

	return plaintext, nil
}

// Sender implements the sending party of one transfer. The sender
// holds the two messages, fixed at construction, and encrypts them
// once.
type Sender struct {
	cipher Cipher
	m0     []byte
	m1     []byte
	done   bool
}

// NewSender creates a sender for one transfer of the two messages.
func NewSender(cipher Cipher, m0, m1 []byte) *Sender {
	return &Sender{
		cipher: cipher,
		m0:     m0,
		m1:     m1,
	}
}

// EncryptMessages encrypts message 0 under the key in slot 0 and
// message 1 under the key in slot 1, each with independently drawn
// randomness. Both slots are encrypted unconditionally: the sender
// has no way to know which ciphertext the receiver can open, and
// must not behave as if it did. On failure of either slot no
// response is returned.
func (s *Sender) EncryptMessages(keys *ReceiverPublicKeys) (
	*SenderResponse, error) {

	if s.done {
		return nil, fmt.Errorf("%w: messages already encrypted",
			ErrProtocolState)
	}

	c0, err := s.cipher.Encrypt(keys.PK0, s.m0)
	if err != nil {
		return nil, &EncryptionError{Slot: 0, Err: err}
	}
	c1, err := s.cipher.Encrypt(keys.PK1, s.m1)
	if err != nil {
		return nil, &EncryptionError{Slot: 1, Err: err}
	}
	s.done = true

	return &SenderResponse{
		C0: c0,
		C1: c1,
	}, nil
}
