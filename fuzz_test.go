// fuzz_test.go: Fuzz targets for cipher operations.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cipherizy

import (
	"bytes"
	"testing"
)

// FuzzDecrypt feeds randomized ciphertext, key, and salt material into
// Decrypt to discover edge cases. Most inputs are expected to fail; the
// function must reject them gracefully and never panic.
//
// Usage:
//
//	go test -fuzz=FuzzDecrypt
//	go test -fuzz=FuzzDecrypt -fuzztime=30s
func FuzzDecrypt(f *testing.F) {
	key := []byte("00_FELIPE_BONEZI")
	salt := []byte("FELIPEBONEZISALT")
	c := NewAESCipher()

	// Seed with a valid ciphertext plus malformed shapes.
	if encrypted, err := c.Encrypt(key, salt, []byte("fuzz-seed-plaintext")); err == nil {
		f.Add(encrypted, key, salt)
	}
	f.Add([]byte{}, key, salt)
	f.Add(make([]byte, 15), key, salt)
	f.Add(make([]byte, 16), key, salt)
	f.Add(make([]byte, 32), make([]byte, 15), salt)
	f.Add(make([]byte, 32), key, make([]byte, 0))

	f.Fuzz(func(t *testing.T, data, key, salt []byte) {
		plaintext, err := c.Decrypt(key, salt, data)
		if err != nil {
			return
		}

		// A successful decryption implies canonical padding, so encrypting
		// the recovered plaintext must reproduce the ciphertext exactly.
		reencrypted, err := c.Encrypt(key, salt, plaintext)
		if err != nil {
			t.Fatalf("Failed to re-encrypt recovered plaintext: %v", err)
		}
		if !bytes.Equal(reencrypted, data) {
			t.Error("Re-encryption did not reproduce the original ciphertext")
		}
	})
}

// FuzzRoundTrip checks the round-trip law for arbitrary plaintext.
func FuzzRoundTrip(f *testing.F) {
	key := []byte("00_FELIPE_BONEZI")
	salt := []byte("FELIPEBONEZISALT")
	c := NewAESCipher()

	f.Add([]byte{})
	f.Add([]byte("6516600011112222"))
	f.Add([]byte("6062000011112222333355"))
	f.Add(bytes.Repeat([]byte{0}, 4096))

	f.Fuzz(func(t *testing.T, plaintext []byte) {
		encrypted, err := c.Encrypt(key, salt, plaintext)
		if err != nil {
			t.Fatalf("Failed to encrypt: %v", err)
		}
		if len(encrypted)%BlockSize != 0 {
			t.Errorf("Ciphertext length %d is not a multiple of the block size", len(encrypted))
		}
		decrypted, err := c.Decrypt(key, salt, encrypted)
		if err != nil {
			t.Fatalf("Failed to decrypt: %v", err)
		}
		if !bytes.Equal(plaintext, decrypted) {
			t.Error("Round trip mismatch")
		}
	})
}
