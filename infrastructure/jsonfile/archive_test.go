package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-replicator/domain"
)

func TestArchive_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	archive := NewArchive(path)

	records := []domain.Record{
		{Host: "198.0.0.1", Timestamp: "01/Jul/1995:00:00:01 -0400", Request: "GET /index.html HTTP/1.0", StatusCode: 200, Bytes: 1024},
		{Host: "unicomp6.unicomp.net", Timestamp: "01/Jul/1995:00:00:06 -0400", Request: "GET /shuttle/countdown/ HTTP/1.0", StatusCode: 200, Bytes: 0},
	}

	require.NoError(t, archive.Save(records))

	loaded, err := archive.Load()
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestArchive_SaveIsOneJSONArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	archive := NewArchive(path)

	require.NoError(t, archive.Save([]domain.Record{{Host: "h", Timestamp: "t", Request: "r", StatusCode: 200, Bytes: 1}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte('['), data[0])
	assert.Contains(t, string(data), `"status_code": 200`)
}

func TestArchive_LoadMissingFile(t *testing.T) {
	archive := NewArchive(filepath.Join(t.TempDir(), "absent.json"))

	_, err := archive.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestArchive_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	archive := NewArchive(path)

	require.NoError(t, archive.Save([]domain.Record{{Host: "old"}}))
	require.NoError(t, archive.Save([]domain.Record{{Host: "new"}}))

	loaded, err := archive.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "new", loaded[0].Host)
}
