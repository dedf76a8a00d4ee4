package services

import (
	"regexp"
	"strings"
	"time"
)

// Timestamp formats are tried in fixed priority order; the first
// regexp that matches decides which layout parses the line.
var timestampFormats = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2}`), "2006-01-02 15:04:05"},
	{regexp.MustCompile(`[A-Za-z]{3}\s+\d{1,2}\s+\d{2}:\d{2}:\d{2}`), "Jan 2 15:04:05"},
	{regexp.MustCompile(`\d{2}/\d{2}/\d{4}\s+\d{2}:\d{2}:\d{2}`), "01/02/2006 15:04:05"},
}

// ParseLogTimestamp extracts the first recognizable timestamp from a
// log line. Syslog-style timestamps carry no year and default to the
// current one.
func ParseLogTimestamp(line string, now time.Time) (time.Time, bool) {
	for _, f := range timestampFormats {
		raw := f.re.FindString(line)
		if raw == "" {
			continue
		}

		// Collapse runs of whitespace so the fixed layouts apply.
		raw = strings.Join(strings.Fields(raw), " ")

		ts, err := time.ParseInLocation(f.layout, raw, now.Location())
		if err != nil {
			continue
		}
		if ts.Year() == 0 {
			ts = ts.AddDate(now.Year(), 0, 0)
		}
		return ts, true
	}
	return time.Time{}, false
}
