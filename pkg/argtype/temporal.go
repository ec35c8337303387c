package argtype

import (
	"fmt"
	"strings"
	"time"
)

// ParseZoned parses a zone-aware timestamp of the form
// 2007-12-03T10:15:30+01:00[Europe/Paris]. The bracketed IANA zone name is
// optional; when present, the instant is resolved into that zone.
func ParseZoned(s string) (time.Time, error) {
	zone := ""
	if i := strings.IndexByte(s, '['); i >= 0 {
		if !strings.HasSuffix(s, "]") || i+1 >= len(s)-1 {
			return time.Time{}, fmt.Errorf("malformed zone suffix in %q", s)
		}
		zone = s[i+1 : len(s)-1]
		s = s[:i]
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}

	if zone != "" {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			return time.Time{}, fmt.Errorf("unknown zone %q: %w", zone, err)
		}
		t = t.In(loc)
	}
	return t, nil
}

// FormatZoned is the inverse of ParseZoned: RFC 3339 with the IANA zone name
// appended in brackets when the time carries one. Fixed-offset and UTC times
// render without a bracket suffix.
func FormatZoned(t time.Time) string {
	out := t.Format(time.RFC3339)
	name := t.Location().String()
	if name == "" || name == "Local" || name == "UTC" {
		return out
	}
	return out + "[" + name + "]"
}
