// keyutils.go: Key and salt utilities for generation, validation, import/export, and zeroization.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cipherizy

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	goerrors "github.com/agilira/go-errors"
)

// KeySize is the required key size in bytes for the AES implementation.
// AES-128 requires exactly 16 bytes (128 bits) of key material.
const KeySize = 16

// SaltSize is the required salt size in bytes. The salt is used as the
// CBC initialization vector and must match the cipher's block size.
const SaltSize = 16

// GenerateKey generates a cryptographically secure random key of KeySize bytes.
//
// The key is generated using the operating system's cryptographically secure
// random number generator and is suitable for use with every Cipher operation.
//
// Example:
//
//	key, err := cipherizy.GenerateKey()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Generated key length:", len(key)) // Output: 16
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, goerrors.Wrap(err, "KEY_GEN_ERROR", "failed to generate key")
	}
	return key, nil
}

// GenerateSalt generates a cryptographically secure random salt of SaltSize bytes.
//
// The salt randomizes the cipher's starting state so identical plaintexts
// under the same key produce different ciphertexts. It is not secret and can
// be stored alongside the ciphertext.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, goerrors.Wrap(err, "SALT_GEN_ERROR", "failed to generate salt")
	}
	return salt, nil
}

// ValidateKey checks that a key satisfies the AES length constraints.
//
// The key length must be a multiple of 8 bytes and exactly KeySize bytes.
// Validation happens before any cryptographic transform is attempted, so a
// malformed key never reaches the cipher engine.
//
// Returns an error satisfying errors.Is(err, ErrInvalidKeyOrSalt) when the
// key is malformed, nil otherwise.
func ValidateKey(key []byte) error {
	if len(key)%8 != 0 {
		return invalidKeyOrSaltError(fmt.Sprintf("key length must be a multiple of 8 bytes, got %d", len(key)))
	}
	if len(key) != KeySize {
		return invalidKeyOrSaltError(fmt.Sprintf("key must be %d bytes for AES-128, got %d", KeySize, len(key)))
	}
	return nil
}

// ValidateSalt checks that a salt satisfies the AES length constraints.
//
// The salt length must be a multiple of 8 bytes and exactly SaltSize bytes,
// matching the cipher's block size so it can serve as the CBC initialization
// vector.
func ValidateSalt(salt []byte) error {
	if len(salt)%8 != 0 {
		return invalidKeyOrSaltError(fmt.Sprintf("salt length must be a multiple of 8 bytes, got %d", len(salt)))
	}
	if len(salt) != SaltSize {
		return invalidKeyOrSaltError(fmt.Sprintf("salt must be %d bytes for AES-128, got %d", SaltSize, len(salt)))
	}
	return nil
}

// KeyToBase64 encodes key material as a base64 string.
//
// Useful for storing keys in text-based formats like JSON or configuration
// files. Works for salts as well since both are raw byte material.
func KeyToBase64(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// KeyFromBase64 decodes a base64 string to key material.
//
// This function is the inverse of KeyToBase64.
func KeyFromBase64(s string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, goerrors.Wrap(err, "BASE64_DECODE_ERROR", "failed to decode base64 key")
	}
	return key, nil
}

// KeyToHex encodes key material as a hexadecimal string.
func KeyToHex(key []byte) string {
	return hex.EncodeToString(key)
}

// KeyFromHex decodes a hexadecimal string to key material.
//
// This function is the inverse of KeyToHex. The input may contain both
// uppercase and lowercase hexadecimal characters.
func KeyFromHex(s string) ([]byte, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, goerrors.Wrap(err, "HEX_DECODE_ERROR", "failed to decode hex key")
	}
	return key, nil
}

// Zeroize securely wipes a byte slice from memory.
//
// This function overwrites all bytes in the slice with zeros to prevent
// sensitive data from remaining in memory after use. The original slice is
// modified in place.
//
// Example:
//
//	key, _ := cipherizy.GenerateKey()
//	defer cipherizy.Zeroize(key)
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GetKeyFingerprint generates a fingerprint for a key (non-cryptographic).
//
// The fingerprint is the first 8 bytes of the key's SHA-256 hash rendered as
// a 16-character hexadecimal string. It identifies a key in logs and
// diagnostics without exposing the key material itself.
//
// Returns an empty string for an empty key.
func GetKeyFingerprint(key []byte) string {
	if len(key) == 0 {
		return ""
	}
	hash := sha256.Sum256(key)
	return fmt.Sprintf("%016x", hash[:8])
}
