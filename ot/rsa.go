//
// rsa.go
//
// Copyright (c) 2026 kobakaku
//
// All rights reserved.
//

package ot

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"io"
	"math/big"

	"github.com/kobakaku/oblivious-transfer/ot/mpint"
	"github.com/kobakaku/oblivious-transfer/pkcs1"
)

var (
	errKeyType      = errors.New("key is not an RSA key")
	errKeyDestroyed = errors.New("private key destroyed")
	errCiphertext   = errors.New("invalid ciphertext length")
)

// RSACipher implements the Cipher interface with RSA and PKCS #1
// encryption blocks.
type RSACipher struct {
	rand io.Reader
}

// NewRSACipher creates an RSA cipher drawing randomness from the
// system source.
func NewRSACipher() *RSACipher {
	return &RSACipher{
		rand: rand.Reader,
	}
}

// RSAPublicKey wraps an RSA public key.
type RSAPublicKey struct {
	pub *rsa.PublicKey
}

// Size returns the modulus size in bytes.
func (k *RSAPublicKey) Size() int {
	return k.pub.Size()
}

// RSAPrivateKey wraps an RSA private key.
type RSAPrivateKey struct {
	key *rsa.PrivateKey
}

// Destroy zeroes the private key material: the private exponent, the
// prime factors, and the CRT precomputation. The wrapper may be
// collected whenever; the numbers themselves are gone when Destroy
// returns.
func (k *RSAPrivateKey) Destroy() {
	if k.key == nil {
		return
	}
	k.key.D.SetInt64(0)
	for _, p := range k.key.Primes {
		p.SetInt64(0)
	}
	for _, v := range []*big.Int{
		k.key.Precomputed.Dp,
		k.key.Precomputed.Dq,
		k.key.Precomputed.Qinv,
	} {
		if v != nil {
			v.SetInt64(0)
		}
	}
	k.key = nil
}

// GenerateKeyPair generates a new RSA key pair with the given
// modulus size in bits.
func (c *RSACipher) GenerateKeyPair(bits int) (PublicKey, PrivateKey, error) {
	key, err := rsa.GenerateKey(c.rand, bits)
	if err != nil {
		return nil, nil, err
	}
	return &RSAPublicKey{
			pub: &key.PublicKey,
		}, &RSAPrivateKey{
			key: key,
		}, nil
}

// Encrypt encrypts the plaintext with the public key. The plaintext
// is formatted into a PKCS #1 encryption block and raised to the
// public exponent. The block padding is random, so two encryptions
// of the same plaintext differ.
func (c *RSACipher) Encrypt(pub PublicKey, plaintext []byte) ([]byte, error) {
	rsaPub, ok := pub.(*RSAPublicKey)
	if !ok {
		return nil, errKeyType
	}
	k := rsaPub.Size()

	block, err := pkcs1.NewEncryptionBlock(k, plaintext)
	if err != nil {
		return nil, err
	}
	m := mpint.FromBytes(block)
	e := big.NewInt(int64(rsaPub.pub.E))

	return mpint.ToBytes(mpint.Exp(m, e, rsaPub.pub.N), k), nil
}

// Decrypt decrypts the ciphertext with the private key and strips
// the encryption-block formatting.
func (c *RSACipher) Decrypt(priv PrivateKey, ciphertext []byte) (
	[]byte, error) {

	rsaPriv, ok := priv.(*RSAPrivateKey)
	if !ok {
		return nil, errKeyType
	}
	if rsaPriv.key == nil {
		return nil, errKeyDestroyed
	}
	k := rsaPriv.key.PublicKey.Size()
	if len(ciphertext) != k {
		return nil, errCiphertext
	}
	m := mpint.Exp(mpint.FromBytes(ciphertext), rsaPriv.key.D,
		rsaPriv.key.PublicKey.N)

	return pkcs1.ParseEncryptionBlock(mpint.ToBytes(m, k))
}
