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

package sample

import (
	"crypto/rand"
	"math/big"
)

// Sampler is an interface for samplers of random *big.Int values.
type Sampler interface {
	Sample() (*big.Int, error)
}

// UniformRange samples random values from the interval [min, max).
type UniformRange struct {
	min *big.Int
	max *big.Int
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values; min must
// be strictly smaller than max.
func NewUniformRange(min, max *big.Int) *UniformRange {
	return &UniformRange{
		min: min,
		max: max,
	}
}

// Sample draws a uniformly random value from [min, max). The value
// is sampled directly from an interval of the exact width, so a
// single draw from crypto/rand always suffices.
func (u *UniformRange) Sample() (*big.Int, error) {
	span := new(big.Int).Sub(u.max, u.min)
	r, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, err
	}

	return r.Add(r, u.min), nil
}

// NewUniform returns a sampler of random values from the interval
// [0, max).
func NewUniform(max *big.Int) *UniformRange {
	return NewUniformRange(big.NewInt(0), max)
}

// NewBit returns a sampler of a single random bit (value 0 or 1).
func NewBit() *UniformRange {
	return NewUniform(big.NewInt(2))
}
