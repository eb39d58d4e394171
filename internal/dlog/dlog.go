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

// Package dlog computes bounded discrete logarithms in the group
// Z_p*. It backs the decryption of exponentially encoded plaintexts,
// where the result of standard decryption is g^m and the small
// exponent m still has to be extracted.
package dlog

import (
	"fmt"
	"math/big"
)

// Calc is an entry point for discrete logarithm calculators in
// different groups.
type Calc struct{}

func NewCalc() *Calc {
	return &Calc{}
}

// CalcZp is a calculator for discrete logarithms in the Zp group of
// integers modulo a prime p.
type CalcZp struct {
	p     *big.Int
	bound *big.Int
	m     *big.Int
}

// InZp creates a calculator operating modulo p. If order is nil the
// search bound defaults to p-1 and p is checked for primality;
// otherwise order is taken as the bound.
func (*Calc) InZp(p, order *big.Int) (*CalcZp, error) {
	one := big.NewInt(1)
	var bound *big.Int
	if p == nil {
		return nil, fmt.Errorf("group modulus p cannot be nil")
	}

	if order == nil {
		if !p.ProbablyPrime(20) {
			return nil, fmt.Errorf("group modulus p must be prime")
		}
		bound = new(big.Int).Sub(p, one)
	} else {
		bound = order
	}

	m := new(big.Int).Sqrt(bound)
	m.Add(m, one)

	return &CalcZp{
		p:     p,
		bound: bound,
		m:     m,
	}, nil
}

// WithBound restricts the calculator to search for answers within
// [0, bound]. A nil bound leaves the calculator unchanged.
func (c *CalcZp) WithBound(bound *big.Int) *CalcZp {
	if bound == nil {
		return c
	}

	m := new(big.Int).Sqrt(bound)
	m.Add(m, big.NewInt(1))

	return &CalcZp{
		p:     c.p,
		bound: bound,
		m:     m,
	}
}

// BabyStepGiantStep searches for x with h = g^x mod p within the
// bound of the calculator. It precomputes the m = ceil(sqrt(bound))
// baby steps g^0..g^(m-1) and then strides through the giant steps
// h * g^(-im). If no solution lies within the bound an error is
// returned.
func (c *CalcZp) BabyStepGiantStep(h, g *big.Int) (*big.Int, error) {
	one := big.NewInt(1)

	// big.Int cannot be a map key, thus the stringified bytes
	// representation is used instead
	baby := make(map[string]*big.Int)
	x := big.NewInt(1)
	for i := big.NewInt(0); i.Cmp(c.m) < 0; i.Add(i, one) {
		// insert a copy of i as i is mutated each loop
		baby[string(x.Bytes())] = new(big.Int).Set(i)
		x = new(big.Int).Mod(new(big.Int).Mul(x, g), c.p)
	}

	// z = g^-m
	z := new(big.Int).ModInverse(g, c.p)
	z.Exp(z, c.m, c.p)

	x = new(big.Int).Set(h)
	for i := big.NewInt(0); i.Cmp(c.m) < 0; i.Add(i, one) {
		if e, ok := baby[string(x.Bytes())]; ok {
			return new(big.Int).Add(new(big.Int).Mul(i, c.m), e), nil
		}
		x = new(big.Int).Mod(new(big.Int).Mul(x, z), c.p)
	}

	return nil, fmt.Errorf("failed to find the discrete logarithm within bound")
}
