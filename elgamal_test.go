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

package elgamal_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fentec-project/elgamal"
	"github.com/fentec-project/elgamal/keygen"
	"github.com/fentec-project/elgamal/sample"
)

func TestElGamal(t *testing.T) {
	key, err := keygen.GenerateKey(128)
	if err != nil {
		t.Fatalf("Error during key generation: %v", err)
	}
	pub := key.PublicKey()

	sampler := sample.NewUniform(key.Params.P)
	m, err := sampler.Sample()
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	k, err := pub.GenerateEphemeralKey()
	if err != nil {
		t.Fatalf("Error during ephemeral key generation: %v", err)
	}

	cipher, err := pub.Encrypt(m, k)
	if err != nil {
		t.Fatalf("Error during encryption: %v", err)
	}

	// both ciphertext components must be reduced modulo p
	assert.True(t, cipher.C1.Sign() >= 0 && cipher.C1.Cmp(key.Params.P) < 0)
	assert.True(t, cipher.C2.Sign() >= 0 && cipher.C2.Cmp(key.Params.P) < 0)

	dec, err := key.Decrypt(cipher)
	if err != nil {
		t.Fatalf("Error during decryption: %v", err)
	}

	assert.Equal(t, m, dec, "decrypted message should match the original")
}

func TestElGamal_KnownVector(t *testing.T) {
	key, err := elgamal.NewPrivateKey(big.NewInt(23), big.NewInt(5), big.NewInt(6))
	if err != nil {
		t.Fatalf("Error during key creation: %v", err)
	}

	pub := key.PublicKey()
	assert.Equal(t, big.NewInt(8), pub.Y)

	// derivation is a pure function of the private key
	assert.Equal(t, pub.Y, key.PublicKey().Y)

	cipher, err := pub.Encrypt(big.NewInt(10), big.NewInt(3))
	if err != nil {
		t.Fatalf("Error during encryption: %v", err)
	}
	assert.Equal(t, big.NewInt(10), cipher.C1)
	assert.Equal(t, big.NewInt(14), cipher.C2)

	dec, err := key.Decrypt(cipher)
	if err != nil {
		t.Fatalf("Error during decryption: %v", err)
	}
	assert.Equal(t, big.NewInt(10), dec)
}

func TestElGamal_MessageRange(t *testing.T) {
	key, err := elgamal.NewPrivateKey(big.NewInt(23), big.NewInt(5), big.NewInt(6))
	if err != nil {
		t.Fatalf("Error during key creation: %v", err)
	}
	pub := key.PublicKey()

	_, err = pub.Encrypt(big.NewInt(23), big.NewInt(3))
	assert.Equal(t, elgamal.MessageOutOfRange, err)

	_, err = pub.Encrypt(big.NewInt(-1), big.NewInt(3))
	assert.Equal(t, elgamal.MessageOutOfRange, err)

	// the largest block that still fits must be accepted
	cipher, err := pub.Encrypt(big.NewInt(22), big.NewInt(3))
	if err != nil {
		t.Fatalf("Error during encryption: %v", err)
	}
	dec, err := key.Decrypt(cipher)
	if err != nil {
		t.Fatalf("Error during decryption: %v", err)
	}
	assert.Equal(t, big.NewInt(22), dec)
}

func TestElGamal_EphemeralKeyBounds(t *testing.T) {
	key, err := elgamal.NewPrivateKey(big.NewInt(23), big.NewInt(5), big.NewInt(6))
	if err != nil {
		t.Fatalf("Error during key creation: %v", err)
	}
	pub := key.PublicKey()

	pMin1 := new(big.Int).Sub(key.Params.P, big.NewInt(1))
	for i := 0; i < 1000; i++ {
		k, err := pub.GenerateEphemeralKey()
		if err != nil {
			t.Fatalf("Error during ephemeral key generation: %v", err)
		}
		assert.True(t, k.Sign() > 0, "ephemeral key must be positive")
		assert.True(t, k.Cmp(pMin1) < 0, "ephemeral key must be smaller than p-1")
	}
}

func TestElGamal_Probabilistic(t *testing.T) {
	key, err := elgamal.NewPrivateKey(big.NewInt(23), big.NewInt(5), big.NewInt(6))
	if err != nil {
		t.Fatalf("Error during key creation: %v", err)
	}
	pub := key.PublicKey()

	m := big.NewInt(10)
	cipher1, err := pub.Encrypt(m, big.NewInt(3))
	if err != nil {
		t.Fatalf("Error during encryption: %v", err)
	}
	cipher2, err := pub.Encrypt(m, big.NewInt(4))
	if err != nil {
		t.Fatalf("Error during encryption: %v", err)
	}

	// distinct ephemeral keys must give distinct ciphertexts for
	// the same plaintext
	assert.NotEqual(t, cipher1.C1, cipher2.C1)

	dec1, err := key.Decrypt(cipher1)
	if err != nil {
		t.Fatalf("Error during decryption: %v", err)
	}
	dec2, err := key.Decrypt(cipher2)
	if err != nil {
		t.Fatalf("Error during decryption: %v", err)
	}
	assert.Equal(t, dec1, dec2)
}

func TestElGamal_MalformedInputs(t *testing.T) {
	_, err := elgamal.NewPrivateKey(big.NewInt(2), big.NewInt(1), big.NewInt(1))
	assert.Equal(t, elgamal.MalformedParams, err)

	_, err = elgamal.NewPrivateKey(big.NewInt(23), big.NewInt(23), big.NewInt(6))
	assert.Equal(t, elgamal.MalformedParams, err)

	_, err = elgamal.NewPrivateKey(big.NewInt(23), big.NewInt(5), big.NewInt(0))
	assert.Equal(t, elgamal.MalformedSecKey, err)

	// x = p-1 violates 0 < x < p-1
	_, err = elgamal.NewPrivateKey(big.NewInt(23), big.NewInt(5), big.NewInt(22))
	assert.Equal(t, elgamal.MalformedSecKey, err)

	_, err = elgamal.NewPublicKey(big.NewInt(23), big.NewInt(5), big.NewInt(0))
	assert.Equal(t, elgamal.MalformedPubKey, err)

	_, err = elgamal.NewPublicKey(big.NewInt(23), big.NewInt(5), big.NewInt(23))
	assert.Equal(t, elgamal.MalformedPubKey, err)

	key, err := elgamal.NewPrivateKey(big.NewInt(23), big.NewInt(5), big.NewInt(6))
	if err != nil {
		t.Fatalf("Error during key creation: %v", err)
	}
	pub := key.PublicKey()

	_, err = pub.Encrypt(big.NewInt(10), big.NewInt(0))
	assert.Equal(t, elgamal.MalformedEphemeralKey, err)

	_, err = pub.Encrypt(big.NewInt(10), big.NewInt(22))
	assert.Equal(t, elgamal.MalformedEphemeralKey, err)

	_, err = key.Decrypt(&elgamal.Ciphertext{C1: big.NewInt(23), C2: big.NewInt(14)})
	assert.Equal(t, elgamal.MalformedCipher, err)

	_, err = key.Decrypt(&elgamal.Ciphertext{C1: big.NewInt(10), C2: big.NewInt(-1)})
	assert.Equal(t, elgamal.MalformedCipher, err)
}

func TestElGamal_DeterministicEphemeralKeys(t *testing.T) {
	key, err := elgamal.NewPrivateKey(big.NewInt(23), big.NewInt(5), big.NewInt(6))
	if err != nil {
		t.Fatalf("Error during key creation: %v", err)
	}
	pub := key.PublicKey()

	var seed [32]byte
	seed[0] = 42
	pMin1 := new(big.Int).Sub(key.Params.P, big.NewInt(1))

	// a seeded sampler gives callers full control over the
	// ephemeral keys an encryption run consumes
	sampler := sample.NewUniformDet(pMin1, &seed)
	replay := sample.NewUniformDet(pMin1, &seed)

	for i := 0; i < 10; i++ {
		k, err := sampler.Sample()
		if err != nil {
			t.Fatalf("Error during sampling: %v", err)
		}
		k2, err := replay.Sample()
		if err != nil {
			t.Fatalf("Error during sampling: %v", err)
		}
		assert.Equal(t, k, k2)

		if k.Sign() == 0 {
			continue
		}

		cipher1, err := pub.Encrypt(big.NewInt(10), k)
		if err != nil {
			t.Fatalf("Error during encryption: %v", err)
		}
		cipher2, err := pub.Encrypt(big.NewInt(10), k2)
		if err != nil {
			t.Fatalf("Error during encryption: %v", err)
		}
		assert.Equal(t, cipher1, cipher2)
	}
}
