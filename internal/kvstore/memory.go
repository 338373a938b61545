package kvstore

import (
	"context"
	"sync"

	goCache "github.com/patrickmn/go-cache"
)

// MemoryStore keeps values for the lifetime of the process
type MemoryStore struct {
	mu    sync.Mutex
	cache *goCache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: goCache.New(goCache.NoExpiration, 0),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.cache.Get(key)
	if !ok {
		return "", false, nil
	}
	value, ok := v.(string)
	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Set(key, value, goCache.NoExpiration)
	return nil
}

func (s *MemoryStore) SetMany(_ context.Context, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range values {
		s.cache.Set(k, v, goCache.NoExpiration)
	}
	return nil
}

func (s *MemoryStore) Close() error {
	s.cache.Flush()
	return nil
}
