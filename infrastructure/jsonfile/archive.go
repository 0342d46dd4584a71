// Package jsonfile holds the exchange form between ingestion and
// replication: the full record sequence as one indented JSON array,
// written once as a complete artifact and read back whole.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"

	"log-replicator/domain"
)

type Archive struct {
	path string
}

func NewArchive(path string) *Archive {
	return &Archive{path: path}
}

func (a *Archive) Save(records []domain.Record) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	if err := os.WriteFile(a.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write archive %s: %w", a.path, err)
	}
	return nil
}

func (a *Archive) Load() ([]domain.Record, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive %s: %w", a.path, err)
	}
	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode archive %s: %w", a.path, err)
	}
	return records, nil
}
