package application

import (
	"bufio"
	"fmt"
	"io"

	"log-replicator/domain"
)

// IngestResult summarizes one ingestion pass. Dropped counts lines that did
// not match the access-log shape; they are skipped without further record.
type IngestResult struct {
	TotalLines int
	Parsed     int
	Dropped    int
}

type IngestService struct {
	parser  *domain.LineParser
	archive domain.RecordArchive
}

func NewIngestService(parser *domain.LineParser, archive domain.RecordArchive) *IngestService {
	return &IngestService{
		parser:  parser,
		archive: archive,
	}
}

// Run parses the whole log before anything is written: records accumulate
// in order and are saved to the archive as a single artifact at the end.
func (s *IngestService) Run(input io.Reader) (*IngestResult, error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []domain.Record
	result := &IngestResult{}

	for scanner.Scan() {
		result.TotalLines++
		record, ok := s.parser.Parse(scanner.Text())
		if !ok {
			result.Dropped++
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log input: %w", err)
	}

	result.Parsed = len(records)

	if err := s.archive.Save(records); err != nil {
		return nil, fmt.Errorf("failed to save parsed records: %w", err)
	}

	return result, nil
}
