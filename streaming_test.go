// streaming_test.go: Test cases for streaming encryption/decryption.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cipherizy_test

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cipherizy "github.com/matheusnascgomes/cipherizy-lib"
)

func TestStreamingEncryptor_MatchesOneShot(t *testing.T) {
	c := aesCipher(t)
	plaintext := []byte(creditCardNumber22)

	oneShot, err := c.Encrypt(testKey, testSalt, plaintext)
	require.NoError(t, err)

	var streamed bytes.Buffer
	enc, err := cipherizy.NewStreamingEncryptor(&streamed, testKey, testSalt)
	require.NoError(t, err)

	// Feed the plaintext in deliberately awkward pieces.
	for _, piece := range [][]byte{plaintext[:1], plaintext[1:8], plaintext[8:21], plaintext[21:]} {
		n, err := enc.Write(piece)
		require.NoError(t, err)
		require.Equal(t, len(piece), n)
	}
	require.NoError(t, enc.Close())

	assert.Equal(t, oneShot, streamed.Bytes(), "streamed ciphertext must be byte-identical to one-shot output")
}

func TestStreamingRoundTrip_LargePayload(t *testing.T) {
	plaintext := make([]byte, 100*1024+7)
	rng := rand.New(rand.NewSource(42))
	_, err := rng.Read(plaintext)
	require.NoError(t, err)

	var encrypted bytes.Buffer
	enc, err := cipherizy.NewStreamingEncryptor(&encrypted, testKey, testSalt)
	require.NoError(t, err)
	_, err = enc.Write(plaintext)
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.Zero(t, encrypted.Len()%16)

	dec, err := cipherizy.NewStreamingDecryptor(&encrypted, testKey, testSalt)
	require.NoError(t, err)
	defer dec.Close()

	decrypted, err := io.ReadAll(dec)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(plaintext, decrypted), "streaming round trip mismatch")
}

func TestStreamingDecryptor_ReadsOneShotOutput(t *testing.T) {
	c := aesCipher(t)
	oneShot, err := c.Encrypt(testKey, testSalt, []byte(creditCardNumber16))
	require.NoError(t, err)

	dec, err := cipherizy.NewStreamingDecryptor(bytes.NewReader(oneShot), testKey, testSalt)
	require.NoError(t, err)
	defer dec.Close()

	decrypted, err := io.ReadAll(dec)
	require.NoError(t, err)
	assert.Equal(t, creditCardNumber16, string(decrypted))
}

func TestStreamingDecryptor_SmallReads(t *testing.T) {
	c := aesCipher(t)
	oneShot, err := c.Encrypt(testKey, testSalt, []byte(creditCardNumber22))
	require.NoError(t, err)

	dec, err := cipherizy.NewStreamingDecryptor(bytes.NewReader(oneShot), testKey, testSalt)
	require.NoError(t, err)
	defer dec.Close()

	var decrypted []byte
	buf := make([]byte, 3)
	for {
		n, err := dec.Read(buf)
		decrypted = append(decrypted, buf[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, creditCardNumber22, string(decrypted))
}

func TestStreamingDecryptor_TruncatedStream(t *testing.T) {
	c := aesCipher(t)
	oneShot, err := c.Encrypt(testKey, testSalt, []byte(creditCardNumber16))
	require.NoError(t, err)

	dec, err := cipherizy.NewStreamingDecryptor(bytes.NewReader(oneShot[:len(oneShot)-1]), testKey, testSalt)
	require.NoError(t, err)
	defer dec.Close()

	_, err = io.ReadAll(dec)
	assert.ErrorIs(t, err, cipherizy.ErrDecryptionFailure)
}

func TestStreamingDecryptor_EmptyStream(t *testing.T) {
	dec, err := cipherizy.NewStreamingDecryptor(bytes.NewReader(nil), testKey, testSalt)
	require.NoError(t, err)
	defer dec.Close()

	_, err = io.ReadAll(dec)
	assert.ErrorIs(t, err, cipherizy.ErrDecryptionFailure)
}

func TestStreamingEncryptor_WriteAfterClose(t *testing.T) {
	var out bytes.Buffer
	enc, err := cipherizy.NewStreamingEncryptor(&out, testKey, testSalt)
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, enc.Close(), "second Close must be a no-op")

	_, err = enc.Write([]byte("late"))
	assert.Error(t, err)
}

func TestStreamingDecryptor_ReadAfterClose(t *testing.T) {
	dec, err := cipherizy.NewStreamingDecryptor(bytes.NewReader(make([]byte, 16)), testKey, testSalt)
	require.NoError(t, err)
	require.NoError(t, dec.Close())

	_, err = dec.Read(make([]byte, 4))
	assert.Error(t, err)
}

func TestStreaming_InvalidKeyOrSalt(t *testing.T) {
	var out bytes.Buffer
	_, err := cipherizy.NewStreamingEncryptor(&out, make([]byte, 15), testSalt)
	assert.ErrorIs(t, err, cipherizy.ErrInvalidKeyOrSalt)

	_, err = cipherizy.NewStreamingDecryptor(bytes.NewReader(nil), testKey, make([]byte, 15))
	assert.ErrorIs(t, err, cipherizy.ErrInvalidKeyOrSalt)
}

func TestStreamingEncryptor_EmptyPlaintext(t *testing.T) {
	var out bytes.Buffer
	enc, err := cipherizy.NewStreamingEncryptor(&out, testKey, testSalt)
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	// A closed empty stream still carries one full padding block.
	require.Equal(t, 16, out.Len())

	c := aesCipher(t)
	decrypted, err := c.Decrypt(testKey, testSalt, out.Bytes())
	require.NoError(t, err)
	assert.Empty(t, decrypted)
}
