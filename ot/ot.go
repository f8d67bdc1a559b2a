//
// ot.go
//
// Copyright (c) 2026 kobakaku
//
// All rights reserved.
//

// Package ot implements 1-out-of-2 Oblivious Transfer with the
// Even-Goldreich-Lempel construction. The receiver offers two public
// keys of which it knows only one private half, positioned by its
// choice bit; the sender encrypts one message under each key. The
// receiver can open exactly the ciphertext matching its choice and
// the sender cannot tell which one that is.
package ot

import (
	"crypto/rand"
)

// PublicKey is an opaque public key of the asymmetric primitive.
type PublicKey interface {
	// Size returns the key's modulus size in bytes. Ciphertexts
	// produced under the key are exactly this long.
	Size() int
}

// PrivateKey is an opaque private key of the asymmetric primitive.
type PrivateKey interface {
	// Destroy erases the key material. A destroyed key can not
	// decrypt anything anymore.
	Destroy()
}

// Cipher defines the asymmetric primitive the protocol runs on. The
// protocol treats the cipher as a black box; any semantically secure
// scheme with randomized encryption works.
type Cipher interface {
	// GenerateKeyPair generates a new key pair with the given
	// modulus size in bits.
	GenerateKeyPair(bits int) (PublicKey, PrivateKey, error)

	// Encrypt encrypts the plaintext with the public key. Every call
	// draws fresh randomness so two encryptions of the same
	// plaintext differ.
	Encrypt(pub PublicKey, plaintext []byte) ([]byte, error)

	// Decrypt decrypts the ciphertext with the private key.
	Decrypt(priv PrivateKey, ciphertext []byte) ([]byte, error)
}

// RandomData creates size bytes of cryptographically strong random
// data.
func RandomData(size int) ([]byte, error) {
	m := make([]byte, size)
	_, err := rand.Read(m)
	if err != nil {
		return nil, err
	}
	return m, nil
}
