// aes.go: AES-128-CBC cipher implementation with PKCS#7 padding.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cipherizy

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"os"
)

// BlockSize is the AES block size in bytes. Ciphertext produced by this
// package always has a length that is a multiple of BlockSize.
const BlockSize = aes.BlockSize

// aesCipher implements Cipher using AES-128 in cipher-block-chaining mode
// with PKCS#7 padding. It holds no per-call state: the key, salt, and
// buffers are local to each invocation, so a single instance is safe for
// concurrent use.
//
// CBC provides confidentiality only. There is no integrity check: decrypting
// with a mismatched salt yields garbage plaintext without an error, while a
// mismatched key is detected through the padding verification. See the
// package documentation for this limitation.
type aesCipher struct{}

// NewAESCipher returns the AES-128-CBC implementation of the Cipher contract.
//
// Most callers should obtain the shared instance through the Factory instead:
//
//	c, err := cipherizy.Default().Get(cipherizy.AlgorithmAES)
func NewAESCipher() Cipher {
	return &aesCipher{}
}

// validateKeyAndSalt rejects malformed key or salt material before any
// cryptographic transform is attempted.
func validateKeyAndSalt(key, salt []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	return ValidateSalt(salt)
}

// Encrypt encrypts data with AES-128-CBC using salt as the initialization
// vector. The plaintext is PKCS#7-padded, so the ciphertext length is always
// a multiple of BlockSize and encryption of identical inputs under the same
// key and salt is deterministic.
func (c *aesCipher) Encrypt(key, salt, data []byte) ([]byte, error) {
	if err := validateKeyAndSalt(key, salt); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, underlyingError(err, "failed to initialize AES engine")
	}

	// Stage the padded plaintext in a pooled buffer; it is zeroed on return.
	staging := getDynamicBuffer()
	staging = pkcs7Pad(staging, data, BlockSize)

	ciphertext := make([]byte, len(staging))
	cipher.NewCBCEncrypter(block, salt).CryptBlocks(ciphertext, staging)

	putDynamicBuffer(staging)
	return ciphertext, nil
}

// Decrypt decrypts ciphertext produced by Encrypt with the same key and salt
// and strips the PKCS#7 padding.
//
// A ciphertext whose length is zero or not a multiple of BlockSize is
// rejected before the transform. Malformed padding after the transform,
// which is how a wrong key manifests, yields ErrDecryptionFailure. A wrong
// salt only corrupts the first block and therefore usually leaves the
// padding intact: the call succeeds but returns garbage plaintext.
func (c *aesCipher) Decrypt(key, salt, data []byte) ([]byte, error) {
	if err := validateKeyAndSalt(key, salt); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, decryptionError("ciphertext is empty")
	}
	if len(data)%BlockSize != 0 {
		return nil, decryptionError(fmt.Sprintf("ciphertext length %d is not a multiple of the block size", len(data)))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, underlyingError(err, "failed to initialize AES engine")
	}

	// Decrypt into a pooled staging buffer so the padded plaintext is zeroed
	// before the buffer is reused.
	staging := getDynamicBuffer()
	if cap(staging) < len(data) {
		staging = make([]byte, len(data))
	} else {
		staging = staging[:len(data)]
	}
	cipher.NewCBCDecrypter(block, salt).CryptBlocks(staging, data)

	plaintext, err := pkcs7Unpad(staging, BlockSize)
	if err != nil {
		putDynamicBuffer(staging)
		return nil, err
	}

	// Copy out of the pooled buffer so no reference to it escapes.
	result := make([]byte, len(plaintext))
	copy(result, plaintext)
	putDynamicBuffer(staging)
	return result, nil
}

// EncryptString encodes plaintext as UTF-8 bytes, then encrypts.
func (c *aesCipher) EncryptString(key, salt []byte, plaintext string) ([]byte, error) {
	return c.Encrypt(key, salt, []byte(plaintext))
}

// DecryptToString decrypts, then decodes the plaintext as UTF-8.
func (c *aesCipher) DecryptToString(key, salt, data []byte) (string, error) {
	plaintext, err := c.Decrypt(key, salt, data)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// EncryptFile reads the file's full byte content, then encrypts.
func (c *aesCipher) EncryptFile(key, salt []byte, path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is supplied by the caller by contract
	if err != nil {
		return nil, underlyingError(err, "failed to read source file")
	}
	return c.Encrypt(key, salt, data)
}

// DecryptToFile decrypts and writes the plaintext to a newly created
// temporary file, returning its path. The caller owns the file and is
// responsible for deleting it. On any failure the partially written file is
// removed and no path is returned.
func (c *aesCipher) DecryptToFile(key, salt, data []byte) (string, error) {
	plaintext, err := c.Decrypt(key, salt, data)
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", "cipherizy-*.tmp")
	if err != nil {
		return "", underlyingError(err, "failed to create temporary file")
	}
	if _, err := f.Write(plaintext); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", underlyingError(err, "failed to write decrypted data")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", underlyingError(err, "failed to close temporary file")
	}
	return f.Name(), nil
}
