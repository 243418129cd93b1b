// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"cmp"
	"slices"
	"sync"
)

// Factory creates a new Resource with the given options.
type Factory func(opts Options) (Resource, error)

// Standard backend priorities. Higher is preferred.
const (
	PriorityTexture = 100
	PriorityPixmap  = 10
)

type entry struct {
	name      string
	priority  int
	factory   Factory
	available func() bool
}

// registry holds the registered backends, highest priority first.
var registry struct {
	mu      sync.RWMutex
	entries []entry
}

// Register adds a backend. If available is nil, the backend is assumed
// always available. Registering an existing name replaces it.
//
//	backend.Register(backend.NameTexture, backend.PriorityTexture, backend.NewTextureFactory(creator), nil)
func Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	registry.entries = slices.DeleteFunc(registry.entries, func(e entry) bool { return e.name == name })
	registry.entries = append(registry.entries, entry{
		name:      name,
		priority:  priority,
		factory:   factory,
		available: available,
	})
	slices.SortFunc(registry.entries, func(a, b entry) int {
		if c := cmp.Compare(b.priority, a.priority); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})
}

// Default returns a factory that creates resources with the best
// available backend at call time.
func Default() Factory {
	return newResource
}

// ByName returns a factory bound to a specific named backend.
func ByName(name string) Factory {
	return func(opts Options) (Resource, error) {
		return newResourceByName(name, opts)
	}
}

// newResource tries the available backends in priority order and
// returns the last failure when none succeeds.
func newResource(opts Options) (Resource, error) {
	registry.mu.RLock()
	entries := slices.Clone(registry.entries)
	registry.mu.RUnlock()

	lastErr := ErrNoBackendAvailable
	for _, e := range entries {
		if !e.available() {
			continue
		}
		res, err := e.factory(opts)
		if err == nil {
			return res, nil
		}
		Logger().Debug("backend: resource creation failed, trying next",
			"backend", e.name, "err", err)
		lastErr = err
	}
	return nil, lastErr
}

func newResourceByName(name string, opts Options) (Resource, error) {
	registry.mu.RLock()
	i := slices.IndexFunc(registry.entries, func(e entry) bool { return e.name == name })
	var e entry
	if i >= 0 {
		e = registry.entries[i]
	}
	registry.mu.RUnlock()

	if i < 0 {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !e.available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return e.factory(opts)
}

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "backend: not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "backend: unavailable: " + e.Name
}

func init() {
	Register(NamePixmap, PriorityPixmap, func(opts Options) (Resource, error) {
		return NewPixmap(opts)
	}, nil)
}
