package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"log-replicator/domain"
)

const createTableQuery = `
CREATE TABLE IF NOT EXISTS access_logs (
    id SERIAL PRIMARY KEY,
    host TEXT,
    timestamp TEXT,
    request TEXT,
    status_code INTEGER,
    bytes INTEGER,
    UNIQUE (host, timestamp)
);`

const insertQuery = `
INSERT INTO access_logs (host, timestamp, request, status_code, bytes)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT DO NOTHING;`

// Store inserts records into Postgres. All inserts ride one transaction
// that Commit closes after the whole replication pass.
type Store struct {
	db *sql.DB
	tx *sql.Tx
}

func Open(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open postgres connection: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("could not ping postgres: %w", err)
	}
	return nil
}

// EnsureSchema creates the table if missing and opens the insert
// transaction. The DDL runs outside the transaction so the table survives
// even if the pass later fails.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create access_logs table: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin insert transaction: %w", err)
	}
	s.tx = tx
	return nil
}

// InsertIfAbsent inserts one row; a row conflicting with the unique
// constraint on (host, timestamp) is skipped silently.
func (s *Store) InsertIfAbsent(ctx context.Context, record domain.Record) error {
	if s.tx == nil {
		return errors.New("schema was not ensured before insert")
	}

	_, err := s.tx.ExecContext(ctx, insertQuery,
		record.Host,
		record.Timestamp,
		record.Request,
		record.StatusCode,
		record.Bytes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert row: %w", err)
	}
	return nil
}

func (s *Store) Commit(_ context.Context) error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit inserts: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.tx != nil {
		s.tx.Rollback()
		s.tx = nil
	}
	return s.db.Close()
}
