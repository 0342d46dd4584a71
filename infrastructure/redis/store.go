package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// FieldStore writes records as Redis hashes, one hash per dedup key.
type FieldStore struct {
	client *redis.Client
}

func NewFieldStore(addr string, db int) *FieldStore {
	return &FieldStore{
		client: redis.NewClient(&redis.Options{Addr: addr, DB: db}),
	}
}

func (s *FieldStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("could not ping redis hash store: %w", err)
	}
	return nil
}

func (s *FieldStore) WriteFields(ctx context.Context, key string, fields map[string]string) error {
	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("failed to write hash %q: %w", key, err)
	}
	return nil
}

func (s *FieldStore) Close() error {
	return s.client.Close()
}

// FlatStore writes the serialized record as a plain Redis string value.
type FlatStore struct {
	client *redis.Client
}

func NewFlatStore(addr string, db int) *FlatStore {
	return &FlatStore{
		client: redis.NewClient(&redis.Options{Addr: addr, DB: db}),
	}
}

func (s *FlatStore) Name() string {
	return "redis-flat"
}

func (s *FlatStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("could not ping redis flat store: %w", err)
	}
	return nil
}

func (s *FlatStore) Write(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

func (s *FlatStore) Close() error {
	return s.client.Close()
}
