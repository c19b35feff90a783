// padding.go: PKCS#7 block padding.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cipherizy

// pkcs7Pad appends PKCS#7 padding so the result length is a multiple of
// blockSize. A full padding block is appended when data is already aligned,
// so the padding length is always in [1, blockSize].
func pkcs7Pad(dst, data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	dst = append(dst, data...)
	for i := 0; i < padLen; i++ {
		dst = append(dst, byte(padLen))
	}
	return dst
}

// pkcs7Unpad verifies and strips PKCS#7 padding. Every padding byte is
// checked, not just the last one, so a wrong-key decryption is detected
// unless the garbage plaintext happens to end in valid padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, decryptionError("padded data length is not a positive multiple of the block size")
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, decryptionError("invalid padding length")
	}
	for i := len(data) - padLen; i < len(data); i++ {
		if data[i] != byte(padLen) {
			return nil, decryptionError("malformed padding bytes")
		}
	}
	return data[:len(data)-padLen], nil
}
