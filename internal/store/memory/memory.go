package memory

import (
	"context"

	"github.com/EricWal/hr-app/internal/store"
	"github.com/patrickmn/go-cache"
)

// Store keeps blobs in process memory. Values never expire.
type Store struct {
	c *cache.Cache
}

func New() *Store {
	return &Store{c: cache.New(cache.NoExpiration, 0)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, store.ErrKeyNotFound
	}
	data := v.([]byte)
	return append([]byte(nil), data...), nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.c.Set(key, append([]byte(nil), value...), cache.NoExpiration)
	return nil
}

func (s *Store) Close() error {
	s.c.Flush()
	return nil
}
