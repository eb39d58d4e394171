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

// Package sample provides samplers for choosing random *big.Int
// values from bounded intervals.
//
// Samplers are passed explicitly wherever randomness is consumed, so
// callers decide where random values come from. The default samplers
// draw from crypto/rand and are safe for concurrent use from
// multiple goroutines; no mutable generator state is shared between
// calls. A deterministic, seed-keyed sampler is provided for tests
// that need reproducible draws.
package sample
