package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// Record is one parsed access-log entry. Timestamp keeps the raw bracketed
// token from the log line; it is never parsed into a time value.
type Record struct {
	Host       string `json:"host"`
	Timestamp  string `json:"timestamp"`
	Request    string `json:"request"`
	StatusCode int    `json:"status_code"`
	Bytes      int    `json:"bytes"`
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Key returns the deduplication key used to address the record in the
// key-value backends. Timestamps carry only 1-second resolution, so two
// requests from the same host in the same second collide and the later
// write wins.
func (r Record) Key() string {
	return whitespaceRun.ReplaceAllString(r.Host+":"+r.Timestamp, "_")
}

// Fields returns the record as a string field map for the hash store.
func (r Record) Fields() map[string]string {
	return map[string]string{
		"host":        r.Host,
		"timestamp":   r.Timestamp,
		"request":     r.Request,
		"status_code": strconv.Itoa(r.StatusCode),
		"bytes":       strconv.Itoa(r.Bytes),
	}
}

func (r Record) String() string {
	return fmt.Sprintf("%s [%s] %q %d %d", r.Host, r.Timestamp, r.Request, r.StatusCode, r.Bytes)
}
