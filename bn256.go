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

package elgamal

import (
	"math/big"

	"github.com/fentec-project/bn256"

	"github.com/fentec-project/elgamal/sample"
)

// PrivateKeyBN256 is an ElGamal private key over the bn256 G1 group.
// In the elliptic curve instantiation the plaintext is a group
// element and masking is additive, so the scheme is homomorphic with
// respect to the group operation.
type PrivateKeyBN256 struct {
	X *big.Int
}

// PublicKeyBN256 holds the public point Y = X * G, where G is the
// fixed generator of bn256 G1.
type PublicKeyBN256 struct {
	Y *bn256.G1
}

// CiphertextBN256 is the pair (k * G, M + k * Y) for an ephemeral
// scalar k.
type CiphertextBN256 struct {
	C1 *bn256.G1
	C2 *bn256.G1
}

// GenerateKeyBN256 generates a fresh key pair over bn256 G1. The
// domain parameters are fixed by the curve, so unlike the modular
// instantiation no parameters need to be chosen or validated.
func GenerateKeyBN256() (*PrivateKeyBN256, *PublicKeyBN256, error) {
	sampler := sample.NewUniformRange(big.NewInt(1), bn256.Order)
	x, err := sampler.Sample()
	if err != nil {
		return nil, nil, err
	}
	y := new(bn256.G1).ScalarBaseMult(x)

	return &PrivateKeyBN256{X: x}, &PublicKeyBN256{Y: y}, nil
}

// Encrypt encrypts a group element msg under pub. The ephemeral
// scalar is sampled internally from crypto/rand, fresh per call.
func (pub *PublicKeyBN256) Encrypt(msg *bn256.G1) (*CiphertextBN256, error) {
	sampler := sample.NewUniformRange(big.NewInt(1), bn256.Order)
	k, err := sampler.Sample()
	if err != nil {
		return nil, err
	}

	c1 := new(bn256.G1).ScalarBaseMult(k)
	mask := new(bn256.G1).ScalarMult(pub.Y, k)
	c2 := new(bn256.G1).Add(mask, msg)

	return &CiphertextBN256{C1: c1, C2: c2}, nil
}

// Decrypt recovers the group element from cipher as C2 - X * C1.
func (sk *PrivateKeyBN256) Decrypt(cipher *CiphertextBN256) *bn256.G1 {
	mask := new(bn256.G1).ScalarMult(cipher.C1, sk.X)
	maskNeg := new(bn256.G1).Neg(mask)

	return new(bn256.G1).Add(cipher.C2, maskNeg)
}

// Add adds two ciphertexts component-wise. For ciphertexts under the
// same public key the result decrypts to the sum of the two
// plaintext group elements.
func (cipher *CiphertextBN256) Add(other *CiphertextBN256) *CiphertextBN256 {
	return &CiphertextBN256{
		C1: new(bn256.G1).Add(cipher.C1, other.C1),
		C2: new(bn256.G1).Add(cipher.C2, other.C2),
	}
}
