package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"log-replicator/domain"
)

// BackendOutcome counts writes against one backend during a replication
// pass.
type BackendOutcome struct {
	Name     string
	Writes   int
	Failures int
}

// ReplicateResult summarizes one replication pass across all backends.
type ReplicateResult struct {
	Records  int
	Outcomes []BackendOutcome
}

type UI interface {
	Init(total int)
	Update(current int)
	RenderReport(result *ReplicateResult)
	Close()
}

// ReplicateService fans every archived record out to the field-mapped
// store, the flat stores and the relational store. Backends are
// independent: a failed write to one backend never blocks the others or
// later records, and failures are aggregated and returned after the full
// pass.
type ReplicateService struct {
	fields  domain.FieldStore
	flats   []domain.FlatStore
	rel     domain.RelationalStore
	archive domain.RecordArchive
	ui      UI
}

const (
	fieldStoreName      = "redis-hash"
	relationalStoreName = "postgres"
)

func NewReplicateService(fields domain.FieldStore, flats []domain.FlatStore, rel domain.RelationalStore, archive domain.RecordArchive, ui UI) *ReplicateService {
	return &ReplicateService{
		fields:  fields,
		flats:   flats,
		rel:     rel,
		archive: archive,
		ui:      ui,
	}
}

func (s *ReplicateService) Run(ctx context.Context) (*ReplicateResult, error) {
	records, err := s.archive.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load archived records: %w", err)
	}

	if err := s.rel.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure relational schema: %w", err)
	}

	result := &ReplicateResult{Records: len(records)}
	result.Outcomes = append(result.Outcomes, BackendOutcome{Name: fieldStoreName})
	for _, flat := range s.flats {
		result.Outcomes = append(result.Outcomes, BackendOutcome{Name: flat.Name()})
	}
	result.Outcomes = append(result.Outcomes, BackendOutcome{Name: relationalStoreName})
	relIdx := len(result.Outcomes) - 1

	s.ui.Init(len(records))
	defer s.ui.Close()

	var errs *multierror.Error

	for i, record := range records {
		key := record.Key()

		payload, err := json.Marshal(record)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to serialize record %q: %w", key, err))
			continue
		}

		if err := s.fields.WriteFields(ctx, key, record.Fields()); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: write %q: %w", fieldStoreName, key, err))
			result.Outcomes[0].Failures++
		} else {
			result.Outcomes[0].Writes++
		}

		for j, flat := range s.flats {
			if err := flat.Write(ctx, key, string(payload)); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%s: write %q: %w", flat.Name(), key, err))
				result.Outcomes[1+j].Failures++
			} else {
				result.Outcomes[1+j].Writes++
			}
		}

		if err := s.rel.InsertIfAbsent(ctx, record); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: insert %q: %w", relationalStoreName, key, err))
			result.Outcomes[relIdx].Failures++
		} else {
			result.Outcomes[relIdx].Writes++
		}

		s.ui.Update(i + 1)
	}

	// One commit for the whole pass; the key-value stores have no
	// transaction boundary to close.
	if err := s.rel.Commit(ctx); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("%s: commit: %w", relationalStoreName, err))
	}

	s.ui.RenderReport(result)

	return result, errs.ErrorOrNil()
}
