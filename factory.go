// factory.go: Cipher registry keyed by algorithm identifier.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cipherizy

import (
	"sync"
	"time"

	"github.com/agilira/go-timecache"
)

// AlgorithmInfo describes a registered cipher implementation.
type AlgorithmInfo struct {
	Algorithm    Algorithm `json:"algorithm"`     // Algorithm identifier
	RegisteredAt time.Time `json:"registered_at"` // When the implementation was registered
}

// Factory maps algorithm identifiers to shared Cipher instances.
//
// A Factory is an explicit registry: NewFactory constructs every supported
// algorithm eagerly, so all callers observe fully built instances and no
// lazy-initialization race can exist. One Cipher instance per algorithm is
// shared by all callers; instances are stateless per call, so no further
// synchronization is needed to use them.
//
// Pass a Factory by reference to the components that need cipher access, or
// use the process-wide Default factory.
type Factory struct {
	mu      sync.RWMutex
	ciphers map[Algorithm]Cipher
	info    map[Algorithm]AlgorithmInfo
}

// NewFactory creates a registry with all supported algorithms registered.
func NewFactory() *Factory {
	f := &Factory{
		ciphers: make(map[Algorithm]Cipher),
		info:    make(map[Algorithm]AlgorithmInfo),
	}
	f.Register(AlgorithmAES, NewAESCipher())
	return f
}

var (
	defaultFactory *Factory
	defaultOnce    sync.Once
)

// Default returns the process-wide singleton factory, creating it on first
// use. Construction happens at most once even under concurrent first access;
// every caller observes the same fully constructed registry.
func Default() *Factory {
	defaultOnce.Do(func() {
		defaultFactory = NewFactory()
	})
	return defaultFactory
}

// Get returns the shared cipher instance for the given algorithm.
//
// Returns an error satisfying errors.Is(err, ErrUnsupportedAlgorithm) when no
// implementation is registered for the identifier.
func (f *Factory) Get(algorithm Algorithm) (Cipher, error) {
	f.mu.RLock()
	c, ok := f.ciphers[algorithm]
	f.mu.RUnlock()
	if !ok {
		return nil, unsupportedAlgorithmError(algorithm)
	}
	return c, nil
}

// Register adds or replaces the cipher implementation for an algorithm
// identifier. The built-in enumeration is closed, but Register keeps the
// registry open to additional implementations at runtime.
func (f *Factory) Register(algorithm Algorithm, c Cipher) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ciphers[algorithm] = c
	f.info[algorithm] = AlgorithmInfo{
		Algorithm:    algorithm,
		RegisteredAt: timecache.CachedTime().UTC(),
	}
}

// Algorithms returns the identifiers of all registered algorithms.
func (f *Factory) Algorithms() []Algorithm {
	f.mu.RLock()
	defer f.mu.RUnlock()
	algorithms := make([]Algorithm, 0, len(f.ciphers))
	for algorithm := range f.ciphers {
		algorithms = append(algorithms, algorithm)
	}
	return algorithms
}

// Info returns registration metadata for an algorithm.
func (f *Factory) Info(algorithm Algorithm) (AlgorithmInfo, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	info, ok := f.info[algorithm]
	if !ok {
		return AlgorithmInfo{}, unsupportedAlgorithmError(algorithm)
	}
	return info, nil
}
