package model

import "strings"

// RequiredFields are the keys every record must carry, non-blank, to be
// considered valid. Extractors may declare additional required keys on
// top of these.
var RequiredFields = []string{"author", "detail", "timestamp"}

// Record is one canonical activity record: who did what, when. Beyond
// the required keys, all fields are format-specific and pass through
// verbatim to downstream consumers as flat JSON.
type Record map[string]string

// NewRecord creates an empty record.
func NewRecord() Record {
	return make(Record)
}

// Set stores a field in the record.
func (r Record) Set(key, value string) {
	r[key] = value
}

// Get retrieves a field, returning def if the key is absent.
func (r Record) Get(key, def string) string {
	if v, ok := r[key]; ok {
		return v
	}
	return def
}

// Valid reports whether the record carries every required field
// (defaults plus any extras) with a non-blank value. Invalid records
// are silently excluded by callers; there is no partial credit and no
// error path.
func (r Record) Valid(extra ...string) bool {
	for _, key := range RequiredFields {
		if strings.TrimSpace(r[key]) == "" {
			return false
		}
	}
	for _, key := range extra {
		if strings.TrimSpace(r[key]) == "" {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
