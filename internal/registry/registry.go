// Package registry provides a global registry of brick layouts.
// Layouts register themselves in init() functions, allowing the round
// simulation and the CLI to look them up by index without hardcoded tables.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Generator builds the bricks of one layout. A carries the area and brick
// dimensions; T is the brick type of the game that registers it.
type Generator[A, T any] func(args A) []T

// LayoutInfo contains metadata about a registered layout.
type LayoutInfo struct {
	Index int
	Name  string
}

// Registry maps layout indices to generators. Indices start at 1.
type Registry[A, T any] struct {
	mu         sync.RWMutex
	generators map[int]Generator[A, T]
	names      map[int]string
}

// New creates an empty registry.
func New[A, T any]() *Registry[A, T] {
	return &Registry[A, T]{
		generators: make(map[int]Generator[A, T]),
		names:      make(map[int]string),
	}
}

// Register adds a layout generator under index.
// Panics if the index is not positive or already registered.
func (r *Registry[A, T]) Register(index int, name string, g Generator[A, T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 1 {
		panic(fmt.Sprintf("registry: layout index %d must be positive", index))
	}
	if _, exists := r.generators[index]; exists {
		panic(fmt.Sprintf("registry: layout %d already registered", index))
	}

	r.generators[index] = g
	r.names[index] = name
}

// List returns information about all registered layouts, sorted by index.
func (r *Registry[A, T]) List() []LayoutInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]LayoutInfo, 0, len(r.generators))
	for idx := range r.generators {
		result = append(result, LayoutInfo{Index: idx, Name: r.names[idx]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Index < result[j].Index
	})

	return result
}

// Len returns the number of registered layouts.
func (r *Registry[A, T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.generators)
}

// Wrap maps any index onto the registered range with ((i-1) mod n)+1.
// Returns 0 when nothing is registered.
func (r *Registry[A, T]) Wrap(index int) int {
	n := r.Len()
	if n == 0 {
		return 0
	}
	m := (index - 1) % n
	if m < 0 {
		m += n
	}
	return m + 1
}

// Generate builds the layout at index (wrapped into range).
// Returns an error if no layout is registered there.
func (r *Registry[A, T]) Generate(index int, args A) ([]T, error) {
	idx := r.Wrap(index)

	r.mu.RLock()
	g, ok := r.generators[idx]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown layout %d", index)
	}
	return g(args), nil
}

// Name returns the display name of the layout at index.
func (r *Registry[A, T]) Name(index int) string {
	idx := r.Wrap(index)

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names[idx]
}
