package timestamp

import (
	"regexp"
	"strings"
	"time"
)

// DefaultContextDate is the fallback date used when a document carries
// no contextual date of its own.
const DefaultContextDate = "1970-01-01"

// naiveLayout is the canonical output shape for timestamps without an
// explicit zone. Naive output is treated as UTC by convention downstream.
const naiveLayout = "2006-01-02T15:04:05"

// layouts is the ordered list of absolute-datetime shapes tried against
// a raw timestamp. The first successful layout wins, so the order
// encodes a priority among structurally ambiguous formats and is fixed
// API: do not reorder.
var layouts = []struct {
	layout string
	zoned  bool
}{
	{"2006-01-02 15:04:05", false},
	{"01/02/2006 15:04:05", false},
	{"02-01-2006 15:04:05", false},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02 15:04:05.999999", false},
	{"2006-01-02T15:04:05.999999", false},
	{"2006-01-02 15:04:05 MST", true},
	{"2006-01-02 15:04:05 -0700", true},
	{"2006-01-02T15:04:05Z07:00", true},
	{"2006-01-02T15:04:05.999999Z07:00", true},
}

var bareTimeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})(?:\s?([AaPp][Mm]))?$`)

var canonicalRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)

// Normalize converts a raw timestamp string into canonical ISO-8601
// form, using contextDate (YYYY-MM-DD) to complete time-only values.
//
// An empty raw value yields midnight on the contextual date. A value no
// known layout matches is returned unchanged: downstream consumers
// tolerate the lenient passthrough, and aborting the record here would
// lose the rest of its fields.
func Normalize(raw, contextDate string) string {
	raw = strings.TrimSpace(raw)
	if contextDate == "" {
		contextDate = DefaultContextDate
	}

	if raw == "" {
		return contextDate + "T00:00:00"
	}

	if m := bareTimeRe.FindStringSubmatch(raw); m != nil {
		layout := "15:04:05"
		if m[4] != "" {
			layout = "3:04:05 PM"
			raw = m[1] + ":" + m[2] + ":" + m[3] + " " + strings.ToUpper(m[4])
		}
		if t, err := time.Parse(layout, raw); err == nil {
			return contextDate + "T" + t.Format("15:04:05")
		}
		return raw
	}

	for _, l := range layouts {
		t, err := time.Parse(l.layout, raw)
		if err != nil {
			continue
		}
		if l.zoned {
			return t.Format("2006-01-02T15:04:05Z07:00")
		}
		return t.Format(naiveLayout)
	}

	return raw
}

// Canonical reports whether a timestamp string begins with a fully
// parsed ISO-8601 local datetime, i.e. did not come out of Normalize as
// a passthrough. Diagnostic only.
func Canonical(s string) bool {
	return canonicalRe.MatchString(s)
}
