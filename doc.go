// Package cipherizy provides a pluggable symmetric encryption/decryption
// abstraction for Go applications.
//
// A single contract (Cipher) is implemented by one or more symmetric-cipher
// algorithms, selected through a Factory keyed by algorithm identifier. The
// package ships with an AES-128-CBC implementation with PKCS#7 padding and
// offers convenience operations over byte buffers, UTF-8 strings, and files.
//
// Keys and salts are supplied directly by the caller as already-prepared byte
// material: this is not a key-management or key-derivation library.
//
// # Quick Start
//
//	key, _ := cipherizy.GenerateKey()   // 16 bytes
//	salt, _ := cipherizy.GenerateSalt() // 16 bytes, used as the CBC IV
//
//	c, err := cipherizy.Default().Get(cipherizy.AlgorithmAES)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ciphertext, err := c.EncryptString(key, salt, "sensitive data")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	plaintext, err := c.DecryptToString(key, salt, ciphertext)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(plaintext) // Output: sensitive data
//
// # Factory
//
// Default() returns the process-wide singleton factory; NewFactory() builds
// an independent registry for dependency injection. All supported algorithms
// are constructed eagerly at registry construction, and one stateless
// instance per algorithm is shared by all callers. Register() keeps the
// registry open to additional implementations at runtime.
//
// # Error Handling
//
// All functions return standard Go errors for maximum compatibility.
// Failures are classified with errors.Is against the package sentinels, and
// every error carries a rich code via github.com/agilira/go-errors:
//
//	_, err := c.Decrypt(key, salt, ciphertext)
//	if err != nil {
//		if errors.Is(err, cipherizy.ErrInvalidKeyOrSalt) {
//			// Key or salt fails the length constraints
//		} else if errors.Is(err, cipherizy.ErrDecryptionFailure) {
//			// Invalid ciphertext length, malformed padding, or wrong key
//		}
//		// Handle other errors
//	}
//
// No operation returns partial output on failure, and no fallback key or
// salt is ever substituted.
//
// # Streaming
//
// StreamingEncryptor and StreamingDecryptor process large inputs
// incrementally with the same key/salt parameters as the one-shot API. The
// stream format is raw CBC ciphertext, byte-identical to the one-shot
// Encrypt output for the same inputs.
//
// # Security Considerations
//
// CBC mode provides confidentiality only; there is no integrity check. Two
// consequences follow, and both are deliberate properties of the reproduced
// design rather than defects to be patched with authenticated encryption:
//
//   - Decrypting with a mismatched salt yields garbage plaintext without an
//     error, because the salt only affects the first block's chaining.
//   - Decrypting with a mismatched key is detected through PKCS#7 padding
//     verification and reported as ErrDecryptionFailure.
//
// Callers needing tamper detection must layer a MAC or checksum above this
// package.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package cipherizy
