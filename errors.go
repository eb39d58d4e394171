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
	"errors"
	"fmt"
)

var malformedStr = "is not of the proper form"

// MalformedParams signals domain parameters with p < 3 or a
// generator outside (0, p).
var MalformedParams = errors.New(fmt.Sprintf("domain parameters %s", malformedStr))

// MalformedSecKey signals a secret exponent outside (0, p-1).
var MalformedSecKey = errors.New(fmt.Sprintf("secret key %s", malformedStr))

// MalformedPubKey signals a public value outside (0, p).
var MalformedPubKey = errors.New(fmt.Sprintf("public key %s", malformedStr))

// MalformedCipher signals a ciphertext component outside [0, p).
var MalformedCipher = errors.New(fmt.Sprintf("ciphertext %s", malformedStr))

// MalformedEphemeralKey signals an ephemeral key outside (0, p-1).
var MalformedEphemeralKey = errors.New(fmt.Sprintf("ephemeral key %s", malformedStr))

// MessageOutOfRange signals a plaintext outside [0, p). The scheme
// encrypts a single modulus-sized block and declines to truncate or
// split larger messages.
var MessageOutOfRange = errors.New("message out of range: plaintext must be in [0, p)")
