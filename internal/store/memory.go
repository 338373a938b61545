// Package store provides the indexed in-memory collection behind every
// entity repository: a map keyed by id for point reads and writes plus an
// ordered id index so listings keep a stable display order.
package store

import (
	"context"
	"slices"
	"sync"

	ierr "github.com/vidinfra/erpdesk/internal/errors"
)

// Entity is implemented by pointer model types. Clone must return a deep
// copy so callers never share mutable state with the store.
type Entity[T any] interface {
	GetID() string
	Clone() T
}

// Order controls listing order
type Order int

const (
	// OrderInsertion lists oldest first, used by registries
	OrderInsertion Order = iota
	// OrderNewestFirst lists the most recently created first, used by logs
	OrderNewestFirst
)

// Memory is a concurrency safe collection of T keyed by id
type Memory[T Entity[T]] struct {
	mu    sync.RWMutex
	kind  string
	order Order
	items map[string]T
	index []string
}

// NewMemory creates an empty collection. kind names the entity in errors.
func NewMemory[T Entity[T]](kind string, order Order) *Memory[T] {
	return &Memory[T]{
		kind:  kind,
		order: order,
		items: make(map[string]T),
	}
}

func (s *Memory[T]) Create(_ context.Context, item T) error {
	id := item.GetID()
	if id == "" {
		return ierr.NewErrorf("%s id is required", s.kind).
			WithHintf("A %s must have an id before it is stored", s.kind).
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return ierr.NewErrorf("%s %s already exists", s.kind, id).
			WithHintf("A %s with id %s already exists", s.kind, id).
			WithReportableDetails(map[string]any{
				"id": id,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	s.items[id] = item.Clone()
	s.index = append(s.index, id)
	return nil
}

func (s *Memory[T]) Get(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[id]
	if !exists {
		var zero T
		return zero, s.notFound(id)
	}
	return item.Clone(), nil
}

// Update replaces the stored record. The record keeps its list position.
func (s *Memory[T]) Update(_ context.Context, item T) error {
	id := item.GetID()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return s.notFound(id)
	}
	s.items[id] = item.Clone()
	return nil
}

// Mutate applies fn to a copy of the stored record and saves the copy, all
// under the write lock, so concurrent read-modify-write cycles on the same id
// never lose each other's changes. Nothing is saved when fn fails.
func (s *Memory[T]) Mutate(_ context.Context, id string, fn func(T) error) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.items[id]
	if !exists {
		return zero, s.notFound(id)
	}

	item := current.Clone()
	if err := fn(item); err != nil {
		return zero, err
	}
	if item.GetID() != id {
		return zero, ierr.NewErrorf("%s id cannot change from %s to %s", s.kind, id, item.GetID()).
			WithHintf("The %s id is immutable", s.kind).
			Mark(ierr.ErrInvalidOperation)
	}

	s.items[id] = item.Clone()
	return item, nil
}

func (s *Memory[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return s.notFound(id)
	}
	delete(s.items, id)
	if i := slices.Index(s.index, id); i >= 0 {
		s.index = slices.Delete(s.index, i, i+1)
	}
	return nil
}

// List returns copies of the items accepted by keep, or all items when keep
// is nil, in the collection's order.
func (s *Memory[T]) List(_ context.Context, keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.index))
	s.each(func(item T) {
		if keep == nil || keep(item) {
			result = append(result, item.Clone())
		}
	})
	return result
}

func (s *Memory[T]) Count(_ context.Context, keep func(T) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	s.each(func(item T) {
		if keep == nil || keep(item) {
			count++
		}
	})
	return count
}

func (s *Memory[T]) Exists(_ context.Context, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.items[id]
	return exists
}

// Clear removes all items from the store
func (s *Memory[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]T)
	s.index = nil
}

// each walks the index in list order. Callers hold the lock.
func (s *Memory[T]) each(fn func(T)) {
	if s.order == OrderNewestFirst {
		for i := len(s.index) - 1; i >= 0; i-- {
			fn(s.items[s.index[i]])
		}
		return
	}
	for _, id := range s.index {
		fn(s.items[id])
	}
}

func (s *Memory[T]) notFound(id string) error {
	return ierr.NewErrorf("%s %s not found", s.kind, id).
		WithHintf("%s not found", s.kind).
		WithReportableDetails(map[string]any{
			"id": id,
		}).
		Mark(ierr.ErrNotFound)
}
