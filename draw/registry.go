// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
)

// BackendFactory creates a backend instance.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[Method]BackendFactory)
)

func init() {
	Register(MethodPolygon, func() Backend { return Polygon{NativeAntialiasing: runtime.GOOS == "darwin"} })
	Register(MethodFont, func() Backend { return Font{} })
	Register(MethodCircle, func() Backend { return Circle{} })
}

// Register makes a backend available under m, following the
// database/sql driver pattern.
//
// Register panics if factory is nil or m is already registered.
func Register(m Method, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("draw: Register factory is nil")
	}
	if _, dup := backends[m]; dup {
		panic("draw: Register called twice for " + string(m))
	}
	backends[m] = factory
}

// Unregister removes a backend. Unknown methods are ignored.
func Unregister(m Method) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, m)
}

// NewBackend creates the backend registered under m.
func NewBackend(m Method) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[m]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, string(m))
	}
	return factory(), nil
}

// Methods returns the registered methods, sorted.
func Methods() []Method {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]Method, 0, len(backends))
	for m := range backends {
		names = append(names, m)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// IsRegistered reports whether a backend is registered under m.
func IsRegistered(m Method) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[m]
	return ok
}
