package blob

import (
	"context"

	"github.com/patrickmn/go-cache"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
)

type MemoryStore struct {
	objects *cache.Cache
	baseURL string
}

func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{
		objects: cache.New(cache.NoExpiration, 0),
		baseURL: baseURL,
	}
}

func (s *MemoryStore) Put(_ context.Context, obj *Object) (string, error) {
	if obj == nil || obj.Key == "" {
		return "", ierr.NewError("object key is required").
			WithHint("Uploaded content needs a storage key").
			Mark(ierr.ErrValidation)
	}
	data := append([]byte(nil), obj.Data...)
	s.objects.Set(obj.Key, &Object{Key: obj.Key, Data: data, ContentType: obj.ContentType}, cache.NoExpiration)
	return joinURL(s.baseURL, obj.Key), nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (*Object, error) {
	v, ok := s.objects.Get(key)
	if !ok {
		return nil, ierr.NewErrorf("object %s not found", key).
			WithHint("File content not found").
			Mark(ierr.ErrNotFound)
	}
	obj := v.(*Object)
	return &Object{Key: obj.Key, Data: append([]byte(nil), obj.Data...), ContentType: obj.ContentType}, nil
}

func (s *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := s.objects.Get(key)
	return ok, nil
}
