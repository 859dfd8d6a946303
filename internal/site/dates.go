package site

import (
	"os"
	"strings"
	"time"
)

// isoLayouts are the ISO-8601 forms accepted before falling back to a bare
// date. Zone-less values are taken as UTC.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ISODateFromMtime formats a file's modification time as YYYY-MM-DD in the
// given zone (UTC when nil).
func ISODateFromMtime(path string, loc *time.Location) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if loc == nil {
		loc = time.UTC
	}
	return info.ModTime().In(loc).Format("2006-01-02"), nil
}

// RFC2822Date converts a date string to RFC 2822 form. Parsing cascades
// through three tiers: ISO-8601 (a trailing Z is a UTC offset), then strict
// YYYY-MM-DD, then the current UTC time. The cascade is total: it always
// yields a valid timestamp and never returns an error.
func RFC2822Date(dateString string) string {
	return parseLenient(dateString).Format("Mon, 02 Jan 2006 15:04:05 -0700")
}

func parseLenient(dateString string) time.Time {
	s := strings.TrimSpace(dateString)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Now().UTC()
}
