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

	"github.com/pkg/errors"

	"github.com/fentec-project/elgamal/internal"
	"github.com/fentec-project/elgamal/internal/dlog"
)

// EncryptExp encrypts g^m instead of m. Ciphertexts produced this
// way are additively homomorphic: multiplying two of them with Mul
// yields an encryption of the sum of the underlying plaintexts, which
// is what e.g. homomorphic vote tallying relies on. The exponent m
// may be negative; recovery with DecryptExp is possible only while
// the (aggregated) plaintext stays within the decryption bound.
func (pub *PublicKey) EncryptExp(m, k *big.Int) (*Ciphertext, error) {
	if m == nil {
		return nil, MessageOutOfRange
	}
	gm := internal.ModExp(pub.Params.G, m, pub.Params.P)

	return pub.Encrypt(gm, k)
}

// Mul multiplies two ciphertexts component-wise modulo p. For
// ciphertexts produced by EncryptExp under the same public key this
// is the homomorphic addition of the plaintexts.
func (cipher *Ciphertext) Mul(other *Ciphertext, p *big.Int) *Ciphertext {
	return &Ciphertext{
		C1: new(big.Int).Mod(new(big.Int).Mul(cipher.C1, other.C1), p),
		C2: new(big.Int).Mod(new(big.Int).Mul(cipher.C2, other.C2), p),
	}
}

// DecryptExp recovers the exponent m from a ciphertext produced by
// EncryptExp (or by Mul of such ciphertexts). Standard decryption
// yields g^m; the exponent is then found with the baby-step
// giant-step method, searching the interval [0, bound]. If the
// exponent lies outside the interval an error is returned.
func (sk *PrivateKey) DecryptExp(cipher *Ciphertext, bound *big.Int) (*big.Int, error) {
	gm, err := sk.Decrypt(cipher)
	if err != nil {
		return nil, err
	}

	calc, err := dlog.NewCalc().InZp(sk.Params.P, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error in decrypt")
	}

	m, err := calc.WithBound(bound).BabyStepGiantStep(gm, sk.Params.G)
	if err != nil {
		return nil, errors.Wrap(err, "failed to recover the exponent")
	}

	return m, nil
}
