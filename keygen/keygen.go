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

// Package keygen generates domain parameters and key pairs for the
// ElGamal scheme: a safe prime modulus, a generator of high
// multiplicative order, and a random secret exponent.
package keygen

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"

	"github.com/fentec-project/elgamal"
	"github.com/fentec-project/elgamal/sample"
)

// GetSafePrime returns a safe prime p of the given bit length, i.e.
// a prime of the form p = 2q + 1 with q prime. Candidates q are
// drawn from crypto/rand until 2q + 1 passes a Miller-Rabin test.
func GetSafePrime(bits int) (*big.Int, error) {
	if bits < 3 {
		return nil, errors.New("safe prime needs at least 3 bits")
	}

	two := big.NewInt(2)
	for {
		q, err := rand.Prime(rand.Reader, bits-1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate safe prime")
		}

		p := new(big.Int).Mul(q, two)
		p.Add(p, big.NewInt(1))
		if p.ProbablyPrime(20) {
			return p, nil
		}
	}
}

// GetGenerator returns a random element of high multiplicative order
// in Z_p*, for a safe prime p = 2q + 1. Candidates of order 1, 2 or
// q are rejected, as are candidates (and their inverses) dividing
// p - 1, which would enable known attacks on the scheme.
//
// adapted from https://github.com/dlitz/pycrypto/blob/master/lib/Crypto/PublicKey/ElGamal.py
func GetGenerator(p, q *big.Int) (*big.Int, error) {
	one := big.NewInt(1)
	pMin1 := new(big.Int).Sub(p, one)
	sampler := sample.NewUniformRange(big.NewInt(3), p)

	for {
		g, err := sampler.Sample()
		if err != nil {
			return nil, err
		}

		if new(big.Int).Exp(g, q, p).Cmp(one) == 0 {
			continue
		}
		if new(big.Int).Exp(g, big.NewInt(2), p).Cmp(one) == 0 {
			continue
		}

		if new(big.Int).Mod(pMin1, g).Sign() == 0 {
			continue
		}
		gInv := new(big.Int).ModInverse(g, p)
		if new(big.Int).Mod(pMin1, gInv).Sign() == 0 {
			continue
		}

		return g, nil
	}
}

// GenerateKey generates a fresh ElGamal private key with a safe
// prime modulus of the given bit length. The public key is obtained
// from the result with its PublicKey method.
func GenerateKey(modulusLength int) (*elgamal.PrivateKey, error) {
	p, err := GetSafePrime(modulusLength)
	if err != nil {
		return nil, err
	}
	// q = (p - 1) / 2
	q := new(big.Int).Div(new(big.Int).Sub(p, big.NewInt(1)), big.NewInt(2))

	g, err := GetGenerator(p, q)
	if err != nil {
		return nil, err
	}

	pMin1 := new(big.Int).Sub(p, big.NewInt(1))
	x, err := sample.NewUniformRange(big.NewInt(2), pMin1).Sample()
	if err != nil {
		return nil, err
	}

	return elgamal.NewPrivateKey(p, g, x)
}
