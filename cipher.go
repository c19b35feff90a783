// cipher.go: Cipher contract and algorithm identifiers.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cipherizy

// Algorithm identifies a symmetric-cipher implementation selectable
// through the Factory.
type Algorithm string

const (
	// AlgorithmAES selects the AES-128-CBC implementation with PKCS#7 padding.
	AlgorithmAES Algorithm = "aes"
)

// Cipher is the contract every symmetric-cipher algorithm must implement.
//
// All operations take the key and the salt (used as the initialization
// vector) per call; implementations hold no per-call mutable state and are
// safe for concurrent use by multiple goroutines.
//
// Every operation reports failures to its direct caller and never returns
// partial output. Use errors.Is with ErrInvalidKeyOrSalt, ErrDecryptionFailure
// and ErrUnderlyingFailure to classify failures.
type Cipher interface {
	// Encrypt encrypts data with the given key and salt.
	// The returned ciphertext length is always a multiple of the cipher's
	// block size.
	Encrypt(key, salt, data []byte) ([]byte, error)

	// Decrypt decrypts ciphertext previously produced by Encrypt with the
	// same key and salt.
	Decrypt(key, salt, data []byte) ([]byte, error)

	// EncryptString encodes plaintext as UTF-8 bytes, then encrypts.
	EncryptString(key, salt []byte, plaintext string) ([]byte, error)

	// DecryptToString decrypts, then decodes the plaintext as UTF-8.
	DecryptToString(key, salt, data []byte) (string, error)

	// EncryptFile reads the file's full byte content, then encrypts.
	EncryptFile(key, salt []byte, path string) ([]byte, error)

	// DecryptToFile decrypts and writes the plaintext to a newly created
	// temporary file, returning its path. Deleting the file is the caller's
	// responsibility; no implicit cleanup is performed.
	DecryptToFile(key, salt, data []byte) (string, error)
}
