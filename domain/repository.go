package domain

import (
	"context"
)

// FieldStore persists a record as a named field mapping under one key.
// Writing the same key twice overwrites the earlier mapping.
type FieldStore interface {
	WriteFields(ctx context.Context, key string, fields map[string]string) error
	Close() error
}

// FlatStore persists a record as one opaque serialized value under one key.
// Writing the same key twice overwrites the earlier value.
type FlatStore interface {
	Name() string
	Write(ctx context.Context, key, value string) error
	Close() error
}

// RelationalStore persists records as rows. InsertIfAbsent skips rows that
// conflict with the table's unique constraint instead of erroring. Inserts
// are not visible to other sessions until Commit.
type RelationalStore interface {
	EnsureSchema(ctx context.Context) error
	InsertIfAbsent(ctx context.Context, record Record) error
	Commit(ctx context.Context) error
	Close() error
}

// RecordArchive is the durable exchange form between ingestion and
// replication: the whole ordered record sequence, written once and read
// once.
type RecordArchive interface {
	Save(records []Record) error
	Load() ([]Record, error)
}
