/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package elgamal implements the ElGamal public key cryptosystem
// over the multiplicative group of integers modulo a prime.
//
// A private key holds the domain parameters (a prime modulus p and
// a generator g of Z_p*) together with a secret exponent x. The
// matching public key holds the same parameters and the derived
// value y = g^x mod p. Encryption of a plaintext m in [0, p) with a
// fresh ephemeral key k produces the pair (g^k, m * y^k); decryption
// removes the mask y^k using the identity c1^(p-1-x) = c1^(-x) mod p.
//
// An ephemeral key must never be reused across two encryptions under
// the same public key: reuse lets an observer relate the two
// plaintexts. The package keeps no state to detect reuse; this is an
// obligation of the caller.
//
// The package is a didactic reference implementation. It performs
// range validation of all inputs but offers no padding, no message
// splitting and no side-channel protection.
package elgamal

import (
	"math/big"

	"github.com/fentec-project/elgamal/internal"
	"github.com/fentec-project/elgamal/sample"
)

// Params holds the domain parameters of the scheme. They are shared
// between a private key and the public key derived from it, and are
// never modified after construction.
type Params struct {
	// Modulus - we are operating in the group Z_P*.
	P *big.Int
	// Generator of a cyclic subgroup of Z_P*.
	G *big.Int
}

// PrivateKey represents an ElGamal private key. It is held only by
// the party that decrypts and is never transmitted.
type PrivateKey struct {
	Params *Params
	// Secret exponent, 0 < X < P-1.
	X *big.Int
}

// PublicKey represents an ElGamal public key. It is derived from a
// private key and is safe to share.
type PublicKey struct {
	Params *Params
	// Public value Y = G^X mod P.
	Y *big.Int
}

// Ciphertext is the result of an encryption: the pair
// (c1, c2) = (g^k, m * y^k), both reduced modulo p.
type Ciphertext struct {
	C1 *big.Int
	C2 *big.Int
}

func checkParams(p, g *big.Int) error {
	if p == nil || g == nil || p.Cmp(big.NewInt(3)) < 0 {
		return MalformedParams
	}
	if g.Sign() < 1 || g.Cmp(p) >= 0 {
		return MalformedParams
	}

	return nil
}

// NewPrivateKey creates a private key from the given domain
// parameters and secret exponent. It requires p >= 3, 0 < g < p and
// 0 < x < p-1, and returns MalformedParams or MalformedSecKey when a
// requirement is violated. Primality of p is the caller's
// responsibility; see the keygen package for generating valid
// parameters.
func NewPrivateKey(p, g, x *big.Int) (*PrivateKey, error) {
	if err := checkParams(p, g); err != nil {
		return nil, err
	}

	pMin1 := new(big.Int).Sub(p, big.NewInt(1))
	if x == nil || x.Sign() < 1 || x.Cmp(pMin1) >= 0 {
		return nil, MalformedSecKey
	}

	return &PrivateKey{
		Params: &Params{P: p, G: g},
		X:      x,
	}, nil
}

// NewPublicKey creates a public key from the given domain parameters
// and public value y. It is meant for reconstructing a key received
// from the key holder; a fresh key pair is obtained with
// NewPrivateKey followed by PublicKey.
func NewPublicKey(p, g, y *big.Int) (*PublicKey, error) {
	if err := checkParams(p, g); err != nil {
		return nil, err
	}

	if y == nil || y.Sign() < 1 || y.Cmp(p) >= 0 {
		return nil, MalformedPubKey
	}

	return &PublicKey{
		Params: &Params{P: p, G: g},
		Y:      y,
	}, nil
}

// PublicKey derives the public key matching sk. The derivation
// y = g^x mod p is deterministic, so the public key may be recomputed
// freely.
func (sk *PrivateKey) PublicKey() *PublicKey {
	y := internal.ModExp(sk.Params.G, sk.X, sk.Params.P)

	return &PublicKey{
		Params: sk.Params,
		Y:      y,
	}
}

// GenerateEphemeralKey samples a fresh ephemeral key k with
// 0 < k < p-1. The value is drawn directly from the interval
// [1, p-2], so the call terminates after a single draw regardless of
// the size of p. The underlying source is crypto/rand and the call is
// safe for concurrent use.
func (pub *PublicKey) GenerateEphemeralKey() (*big.Int, error) {
	pMin1 := new(big.Int).Sub(pub.Params.P, big.NewInt(1))
	sampler := sample.NewUniformRange(big.NewInt(1), pMin1)

	return sampler.Sample()
}

// Encrypt encrypts a plaintext m in [0, p) under pub with the
// ephemeral key k, 0 < k < p-1, and returns the ciphertext
// (g^k, m * y^k). A plaintext outside [0, p) is rejected with
// MessageOutOfRange: the scheme does not truncate and does not split
// a message into blocks. The ephemeral key k must be fresh for every
// call; see GenerateEphemeralKey.
func (pub *PublicKey) Encrypt(m, k *big.Int) (*Ciphertext, error) {
	p := pub.Params.P
	if m == nil || m.Sign() < 0 || m.Cmp(p) >= 0 {
		return nil, MessageOutOfRange
	}

	pMin1 := new(big.Int).Sub(p, big.NewInt(1))
	if k == nil || k.Sign() < 1 || k.Cmp(pMin1) >= 0 {
		return nil, MalformedEphemeralKey
	}

	c1 := internal.ModExp(pub.Params.G, k, p)
	// shared secret mask s = y^k
	s := internal.ModExp(pub.Y, k, p)
	c2 := new(big.Int).Mod(new(big.Int).Mul(m, s), p)

	return &Ciphertext{C1: c1, C2: c2}, nil
}

// Decrypt recovers the plaintext from cipher. Both ciphertext
// components must lie in [0, p); otherwise MalformedCipher is
// returned. Decrypting a ciphertext produced under an unrelated key
// pair yields an arbitrary value in [0, p), not an error: the scheme
// has no way to detect a key mismatch.
func (sk *PrivateKey) Decrypt(cipher *Ciphertext) (*big.Int, error) {
	p := sk.Params.P
	if cipher == nil || cipher.C1 == nil || cipher.C2 == nil {
		return nil, MalformedCipher
	}
	if cipher.C1.Sign() < 0 || cipher.C1.Cmp(p) >= 0 ||
		cipher.C2.Sign() < 0 || cipher.C2.Cmp(p) >= 0 {
		return nil, MalformedCipher
	}

	// c1^(p-1-x) = c1^(-x) by Fermat's little theorem, which
	// inverts the mask without a separate modular inverse
	exp := new(big.Int).Sub(p, big.NewInt(1))
	exp.Sub(exp, sk.X)
	sInv := internal.ModExp(cipher.C1, exp, p)
	m := new(big.Int).Mod(new(big.Int).Mul(sInv, cipher.C2), p)

	return m, nil
}
