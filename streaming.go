// streaming.go: Streaming encryption/decryption for large data sets.
//
// This module provides streaming interfaces for encrypting and decrypting
// large amounts of data without loading everything into memory. The stream
// format is raw AES-128-CBC ciphertext: for a given key, salt, and plaintext
// the streamed output is byte-identical to the one-shot Encrypt output, so
// either API can decrypt what the other produced.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cipherizy

import (
	"crypto/aes"
	"crypto/cipher"
	"io"

	goerrors "github.com/agilira/go-errors"
)

// streamChunkSize is the read size used when pulling ciphertext from the
// underlying reader.
const streamChunkSize = 32 * 1024

// StreamingEncryptor encrypts data incrementally while writing it to an
// underlying writer.
//
// Example usage:
//
//	enc, _ := cipherizy.NewStreamingEncryptor(outputWriter, key, salt)
//	io.Copy(enc, inputReader) // Encrypts while streaming
//	enc.Close()               // Writes the final padded block
type StreamingEncryptor interface {
	// Write encrypts and writes data to the underlying writer.
	// Input shorter than a cipher block is buffered until enough bytes arrive.
	Write(data []byte) (int, error)

	// Close pads and writes the final block. Must be called to produce a
	// decryptable stream.
	Close() error
}

// StreamingDecryptor decrypts data incrementally while reading it from an
// underlying reader.
//
// Example usage:
//
//	dec, _ := cipherizy.NewStreamingDecryptor(inputReader, key, salt)
//	defer dec.Close()
//	io.Copy(outputWriter, dec) // Decrypts while streaming
//
// The final cipher block is held back until the underlying reader reports
// EOF so the PKCS#7 padding can be verified and stripped.
type StreamingDecryptor interface {
	// Read decrypts and returns data from the underlying reader.
	Read(data []byte) (int, error)

	// Close wipes buffered plaintext and marks the decryptor unusable.
	Close() error
}

// streamingEncryptor implements StreamingEncryptor over AES-128-CBC.
type streamingEncryptor struct {
	writer  io.Writer
	mode    cipher.BlockMode
	partial []byte // bytes short of a full block, carried across writes
	scratch []byte // reusable ciphertext buffer
	closed  bool
}

// streamingDecryptor implements StreamingDecryptor over AES-128-CBC.
type streamingDecryptor struct {
	reader  io.Reader
	mode    cipher.BlockMode
	inbuf   []byte // raw ciphertext bytes short of a full block
	hold    []byte // last decrypted block, held until EOF for padding strip
	pending []byte // decrypted bytes ready to surface
	chunk   []byte // read scratch
	eof     bool
	closed  bool
}

// NewStreamingEncryptor creates a streaming encryptor writing AES-128-CBC
// ciphertext to writer. Key and salt follow the same constraints as the
// one-shot Cipher operations.
func NewStreamingEncryptor(writer io.Writer, key, salt []byte) (StreamingEncryptor, error) {
	if err := validateKeyAndSalt(key, salt); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, underlyingError(err, "failed to initialize AES engine")
	}
	return &streamingEncryptor{
		writer:  writer,
		mode:    cipher.NewCBCEncrypter(block, salt),
		partial: make([]byte, 0, BlockSize),
	}, nil
}

// NewStreamingDecryptor creates a streaming decryptor reading AES-128-CBC
// ciphertext from reader.
func NewStreamingDecryptor(reader io.Reader, key, salt []byte) (StreamingDecryptor, error) {
	if err := validateKeyAndSalt(key, salt); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, underlyingError(err, "failed to initialize AES engine")
	}
	return &streamingDecryptor{
		reader: reader,
		mode:   cipher.NewCBCDecrypter(block, salt),
		chunk:  make([]byte, streamChunkSize),
	}, nil
}

// Write implements the Write method of StreamingEncryptor.
func (e *streamingEncryptor) Write(data []byte) (int, error) {
	if e.closed {
		return 0, goerrors.New("ENCRYPTOR_CLOSED", "cannot write to closed encryptor")
	}

	consumed := 0

	// Complete the carried partial block first.
	if len(e.partial) > 0 {
		n := min(BlockSize-len(e.partial), len(data))
		e.partial = append(e.partial, data[:n]...)
		consumed += n
		data = data[n:]
		if len(e.partial) < BlockSize {
			return consumed, nil
		}
		if err := e.encryptAndWrite(e.partial); err != nil {
			return consumed, err
		}
		e.partial = e.partial[:0]
	}

	// Encrypt whole blocks directly from the input.
	aligned := len(data) - len(data)%BlockSize
	if aligned > 0 {
		if err := e.encryptAndWrite(data[:aligned]); err != nil {
			return consumed, err
		}
		consumed += aligned
		data = data[aligned:]
	}

	e.partial = append(e.partial, data...)
	consumed += len(data)
	return consumed, nil
}

// Close implements the Close method of StreamingEncryptor.
// The final block always carries PKCS#7 padding; a full padding block is
// written when the plaintext is block-aligned.
func (e *streamingEncryptor) Close() error {
	if e.closed {
		return nil
	}

	buf := getBlockBuffer(2 * BlockSize)
	final := pkcs7Pad((*buf)[:0], e.partial, BlockSize)
	err := e.encryptAndWrite(final)
	putBlockBuffer(buf)

	Zeroize(e.partial)
	e.closed = true
	return err
}

// encryptAndWrite encrypts block-aligned plaintext and writes it out.
func (e *streamingEncryptor) encryptAndWrite(blocks []byte) error {
	if cap(e.scratch) < len(blocks) {
		e.scratch = make([]byte, len(blocks))
	}
	out := e.scratch[:len(blocks)]
	e.mode.CryptBlocks(out, blocks)
	if _, err := e.writer.Write(out); err != nil {
		return underlyingError(err, "failed to write encrypted block")
	}
	return nil
}

// Read implements the Read method of StreamingDecryptor.
func (d *streamingDecryptor) Read(data []byte) (int, error) {
	if d.closed {
		return 0, goerrors.New("DECRYPTOR_CLOSED", "cannot read from closed decryptor")
	}

	total := 0
	for len(data) > 0 {
		if len(d.pending) > 0 {
			n := copy(data, d.pending)
			d.pending = d.pending[n:]
			data = data[n:]
			total += n
			continue
		}
		if d.eof {
			if total > 0 {
				return total, nil
			}
			return 0, io.EOF
		}
		if err := d.fill(); err != nil {
			return total, err
		}
	}
	return total, nil
}

// Close implements the Close method of StreamingDecryptor.
func (d *streamingDecryptor) Close() error {
	if d.closed {
		return nil
	}
	Zeroize(d.pending)
	Zeroize(d.hold)
	d.closed = true
	return nil
}

// fill reads more ciphertext and decrypts whole blocks, always retaining the
// most recent decrypted block until EOF so the padding can be stripped.
func (d *streamingDecryptor) fill() error {
	n, err := d.reader.Read(d.chunk)
	if n > 0 {
		d.inbuf = append(d.inbuf, d.chunk[:n]...)
		aligned := len(d.inbuf) - len(d.inbuf)%BlockSize
		if aligned > 0 {
			decrypted := make([]byte, aligned)
			d.mode.CryptBlocks(decrypted, d.inbuf[:aligned])

			remainder := len(d.inbuf) - aligned
			copy(d.inbuf, d.inbuf[aligned:])
			d.inbuf = d.inbuf[:remainder]

			d.hold = append(d.hold, decrypted...)
			if len(d.hold) > BlockSize {
				release := len(d.hold) - BlockSize
				d.pending = append(d.pending, d.hold[:release]...)
				copy(d.hold, d.hold[release:])
				d.hold = d.hold[:BlockSize]
			}
		}
	}

	if err == io.EOF {
		if len(d.inbuf) != 0 {
			return decryptionError("ciphertext stream length is not a multiple of the block size")
		}
		if len(d.hold) == 0 {
			return decryptionError("ciphertext stream is empty")
		}
		plaintext, uerr := pkcs7Unpad(d.hold, BlockSize)
		if uerr != nil {
			return uerr
		}
		d.pending = append(d.pending, plaintext...)
		Zeroize(d.hold)
		d.hold = nil
		d.eof = true
		return nil
	}
	if err != nil {
		return underlyingError(err, "failed to read ciphertext stream")
	}
	return nil
}
