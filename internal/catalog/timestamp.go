package catalog

import (
	"strings"
	"time"
)

// Timestamp is a lenient createdAt. The backends are not consistent about
// emitting it (some omit it, one sends fractional seconds without a zone),
// and a bad value must degrade to "not available" rather than fail the
// whole list decode.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999", // no zone
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
	}
	// unparseable -> zero value, matches no date bucket except ALL
	t.Time = time.Time{}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// Display renders the timestamp for operator-facing views.
func (t Timestamp) Display() string {
	if t.IsZero() {
		return "n/a"
	}
	return t.Format("02 Jan 2006 15:04")
}

func At(t time.Time) Timestamp { return Timestamp{Time: t} }
