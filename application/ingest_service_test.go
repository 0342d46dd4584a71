package application

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-replicator/domain"
)

type fakeArchive struct {
	saved   []domain.Record
	saveErr error
	loadErr error
}

func (a *fakeArchive) Save(records []domain.Record) error {
	if a.saveErr != nil {
		return a.saveErr
	}
	a.saved = records
	return nil
}

func (a *fakeArchive) Load() ([]domain.Record, error) {
	if a.loadErr != nil {
		return nil, a.loadErr
	}
	return a.saved, nil
}

func TestIngestService_Run(t *testing.T) {
	input := strings.Join([]string{
		`198.0.0.1 - - [01/Jul/1995:00:00:01 -0400] "GET /index.html HTTP/1.0" 200 1024`,
		`malformed line`,
		`unicomp6.unicomp.net - - [01/Jul/1995:00:00:06 -0400] "GET /shuttle/countdown/ HTTP/1.0" 200 -`,
		`198.0.0.1 - -`,
	}, "\n")

	archive := &fakeArchive{}
	service := NewIngestService(domain.NewLineParser(), archive)

	result, err := service.Run(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalLines)
	assert.Equal(t, 2, result.Parsed)
	assert.Equal(t, 2, result.Dropped)

	// Records keep input order.
	require.Len(t, archive.saved, 2)
	assert.Equal(t, "198.0.0.1", archive.saved[0].Host)
	assert.Equal(t, 1024, archive.saved[0].Bytes)
	assert.Equal(t, "unicomp6.unicomp.net", archive.saved[1].Host)
	assert.Equal(t, 0, archive.saved[1].Bytes)
}

func TestIngestService_Run_EmptyInput(t *testing.T) {
	archive := &fakeArchive{}
	service := NewIngestService(domain.NewLineParser(), archive)

	result, err := service.Run(strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalLines)
	assert.Equal(t, 0, result.Parsed)
	assert.Empty(t, archive.saved)
}

func TestIngestService_Run_ReadFailure(t *testing.T) {
	archive := &fakeArchive{}
	service := NewIngestService(domain.NewLineParser(), archive)

	readErr := errors.New("disk gone")
	_, err := service.Run(iotest.ErrReader(readErr))

	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	// Nothing may be written on a failed read.
	assert.Empty(t, archive.saved)
}

func TestIngestService_Run_SaveFailure(t *testing.T) {
	archive := &fakeArchive{saveErr: errors.New("archive full")}
	service := NewIngestService(domain.NewLineParser(), archive)

	line := `198.0.0.1 - - [01/Jul/1995:00:00:01 -0400] "GET / HTTP/1.0" 200 1`
	_, err := service.Run(strings.NewReader(line))

	require.Error(t, err)
	assert.ErrorIs(t, err, archive.saveErr)
}
