// errors.go: Error taxonomy for cipher operations.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cipherizy

import (
	"errors"
	"fmt"

	goerrors "github.com/agilira/go-errors"
)

// Public standard errors for drop-in compatibility.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidKeyOrSalt is returned when the key or salt fails the length
	// constraints required by the selected algorithm.
	ErrInvalidKeyOrSalt = errors.New("cipherizy: invalid key or salt")

	// ErrDecryptionFailure is returned when the ciphertext length is invalid,
	// the padding is malformed, or the transform fails (including wrong key).
	ErrDecryptionFailure = errors.New("cipherizy: decryption failure")

	// ErrUnsupportedAlgorithm is returned when the factory is asked for an
	// algorithm identifier with no registered implementation.
	ErrUnsupportedAlgorithm = errors.New("cipherizy: unsupported algorithm")

	// ErrUnderlyingFailure wraps a failure from the platform's cryptographic
	// engine or from file I/O during the file-based convenience operations.
	ErrUnderlyingFailure = errors.New("cipherizy: underlying failure")
)

// Error codes for rich error handling
const (
	ErrCodeInvalidKeyOrSalt     = "CIPHER_INVALID_KEY_OR_SALT"
	ErrCodeDecryptionFailure    = "CIPHER_DECRYPTION_FAILURE"
	ErrCodeUnsupportedAlgorithm = "CIPHER_UNSUPPORTED_ALGORITHM"
	ErrCodeUnderlyingFailure    = "CIPHER_UNDERLYING_FAILURE"
)

// invalidKeyOrSaltError builds an ErrInvalidKeyOrSalt carrying a rich error code.
func invalidKeyOrSaltError(msg string) error {
	richErr := goerrors.New(ErrCodeInvalidKeyOrSalt, msg)
	return fmt.Errorf("%w: %w", ErrInvalidKeyOrSalt, richErr)
}

// decryptionError builds an ErrDecryptionFailure carrying a rich error code.
func decryptionError(msg string) error {
	richErr := goerrors.New(ErrCodeDecryptionFailure, msg)
	return fmt.Errorf("%w: %w", ErrDecryptionFailure, richErr)
}

// underlyingError wraps an engine or I/O failure as ErrUnderlyingFailure.
func underlyingError(err error, msg string) error {
	richErr := goerrors.Wrap(err, ErrCodeUnderlyingFailure, msg)
	return fmt.Errorf("%w: %w", ErrUnderlyingFailure, richErr)
}

// unsupportedAlgorithmError builds an ErrUnsupportedAlgorithm for the given identifier.
func unsupportedAlgorithmError(algorithm Algorithm) error {
	richErr := goerrors.New(ErrCodeUnsupportedAlgorithm, fmt.Sprintf("no cipher registered for algorithm %q", algorithm))
	return fmt.Errorf("%w: %w", ErrUnsupportedAlgorithm, richErr)
}
