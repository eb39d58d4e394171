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
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/salsa20"
)

// UniformDet deterministically samples values from the interval
// [0, max), keyed by a 32-byte seed. Two samplers created with the
// same seed and max produce the same sequence of values, which makes
// test runs reproducible. UniformDet keeps a draw counter and is not
// safe for concurrent use.
type UniformDet struct {
	key     *[32]byte
	max     *big.Int
	maxBits int
	ctr     uint64
}

// NewUniformDet returns an instance of the UniformDet sampler. It
// accepts an upper bound on the sampled values and the seed key.
func NewUniformDet(max *big.Int, key *[32]byte) *UniformDet {
	maxBits := new(big.Int).Sub(max, big.NewInt(1)).BitLen()

	return &UniformDet{
		key:     key,
		max:     max,
		maxBits: maxBits,
	}
}

// Sample returns the next value of the deterministic sequence. Each
// draw uses the counter as the salsa20 nonce; draws that fall
// outside [0, max) after truncation to maxBits are rejected and the
// next counter value is tried, so the rejection probability per
// iteration is below 1/2.
func (u *UniformDet) Sample() (*big.Int, error) {
	maxBytes := (u.maxBits + 7) / 8
	over := uint(maxBytes*8 - u.maxBits)

	for {
		in := make([]byte, maxBytes)
		out := make([]byte, maxBytes)
		nonce := make([]byte, 8)
		binary.BigEndian.PutUint64(nonce, u.ctr)
		u.ctr++

		salsa20.XORKeyStream(out, in, nonce, u.key)

		if maxBytes > 0 {
			out[0] = out[0] >> over
		}
		ret := new(big.Int).SetBytes(out)
		if ret.Cmp(u.max) < 0 {
			return ret, nil
		}
	}
}
