package domain

import (
	"regexp"
	"strconv"
)

// linePattern matches the common access-log shape at the start of a line:
// host, the "- -" ident/auth placeholders, a bracketed timestamp, a quoted
// request line, a three-digit status and a byte count (or "-" when the
// server reported none). The captures are non-greedy, so an embedded "]"
// or quote terminates its field early instead of failing the match.
var linePattern = regexp.MustCompile(`^(\S+) - - \[(.*?)\] "(.*?)" (\d{3}) (\d+|-)`)

// LineParser turns raw access-log lines into Records.
type LineParser struct{}

func NewLineParser() *LineParser {
	return &LineParser{}
}

// Parse returns the Record for one log line. The second result is false
// when the line does not match the expected shape; that is an expected
// outcome, not an error, and callers drop such lines silently.
func (p *LineParser) Parse(line string) (Record, bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Record{}, false
	}

	status, err := strconv.Atoi(m[4])
	if err != nil {
		return Record{}, false
	}

	// "-" means the byte count was not reported; it collapses to 0, which
	// is indistinguishable from a reported zero.
	bytes := 0
	if m[5] != "-" {
		bytes, err = strconv.Atoi(m[5])
		if err != nil {
			return Record{}, false
		}
	}

	return Record{
		Host:       m[1],
		Timestamp:  m[2],
		Request:    m[3],
		StatusCode: status,
		Bytes:      bytes,
	}, true
}
