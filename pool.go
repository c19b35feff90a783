// pool.go: Buffer pooling for plaintext staging during cipher operations.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cipherizy

import (
	"sync"
)

var (
	// Pool for block-aligned scratch buffers (final-block padding staging)
	blockBufferPool = sync.Pool{
		New: func() interface{} {
			buf := make([]byte, 2*BlockSize)
			return &buf
		},
	}

	// Pool for dynamic byte slices holding whole padded payloads - uses pointers to avoid allocations
	dynamicBufferPool = sync.Pool{
		New: func() interface{} {
			buf := make([]byte, 0, 256)
			return &buf // Return pointer to avoid allocations (SA6002)
		},
	}
)

func init() {
	// Pre-warm pools to reduce first-access latency in production
	WarmupPools(4)
}

// getBlockBuffer retrieves a scratch buffer of up to two cipher blocks.
func getBlockBuffer(size int) *[]byte {
	if size > 2*BlockSize {
		buf := make([]byte, size)
		return &buf
	}
	buf := blockBufferPool.Get().(*[]byte)
	*buf = (*buf)[:size]
	return buf
}

// putBlockBuffer zeroes and returns a scratch buffer to its pool.
// Staging buffers hold plaintext, so they are always cleared before reuse.
func putBlockBuffer(buf *[]byte) {
	if buf == nil {
		return
	}
	clearBuffer((*buf)[:cap(*buf)])
	if cap(*buf) == 2*BlockSize {
		blockBufferPool.Put(buf)
	}
}

// getDynamicBuffer retrieves a growable buffer with zero length.
func getDynamicBuffer() []byte {
	buf := dynamicBufferPool.Get().(*[]byte)
	return (*buf)[:0]
}

// putDynamicBuffer zeroes and returns a dynamic buffer to the pool.
func putDynamicBuffer(buf []byte) {
	bufCap := cap(buf)
	if bufCap == 0 {
		return
	}

	// Dynamic buffers stage plaintext between padding and transform,
	// so the full capacity is cleared before the buffer is reused.
	clearBuffer(buf[:bufCap])

	// Oversized buffers are dropped to keep the pool footprint bounded.
	if bufCap <= 64*1024 {
		dynamicBufferPool.Put(&buf) // Pass pointer to avoid allocations (SA6002)
	}
}

// clearBuffer zeroes a buffer, unrolled for cache-line throughput on larger slices.
func clearBuffer(buf []byte) {
	if len(buf) <= 64 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	i := 0
	for i < len(buf)-7 {
		buf[i] = 0
		buf[i+1] = 0
		buf[i+2] = 0
		buf[i+3] = 0
		buf[i+4] = 0
		buf[i+5] = 0
		buf[i+6] = 0
		buf[i+7] = 0
		i += 8
	}
	for i < len(buf) {
		buf[i] = 0
		i++
	}
}

// WarmupPools pre-allocates buffers in the pools to reduce cold-start latency.
func WarmupPools(count int) {
	blockBufs := make([]*[]byte, count)
	dynamicBufs := make([][]byte, count)

	for i := 0; i < count; i++ {
		blockBufs[i] = getBlockBuffer(2 * BlockSize)
		dynamicBufs[i] = getDynamicBuffer()
	}

	for i := 0; i < count; i++ {
		putBlockBuffer(blockBufs[i])
		putDynamicBuffer(dynamicBufs[i])
	}
}
