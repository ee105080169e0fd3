package utils

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts lists the accepted article date formats, most specific
// first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses s with the first matching layout. Timestamps
// without a zone are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// FormatRFC3339UTC formats t in RFC3339 in UTC.
func FormatRFC3339UTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
