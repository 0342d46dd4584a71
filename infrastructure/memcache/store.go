package memcache

import (
	"context"
	"fmt"

	"github.com/bradfitz/gomemcache/memcache"
)

// FlatStore writes the serialized record as one Memcached item per dedup
// key. Keys are already whitespace-free, which Memcached requires.
type FlatStore struct {
	client *memcache.Client
}

func NewFlatStore(addr string) *FlatStore {
	return &FlatStore{
		client: memcache.New(addr),
	}
}

func (s *FlatStore) Name() string {
	return "memcached"
}

func (s *FlatStore) Ping(_ context.Context) error {
	if err := s.client.Ping(); err != nil {
		return fmt.Errorf("could not ping memcached: %w", err)
	}
	return nil
}

func (s *FlatStore) Write(_ context.Context, key, value string) error {
	if err := s.client.Set(&memcache.Item{Key: key, Value: []byte(value)}); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

func (s *FlatStore) Close() error {
	return s.client.Close()
}
