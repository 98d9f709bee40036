package timestamp

import "testing"

func TestNormalize_FullDatetimes(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2014-02-25 14:30:00", "2014-02-25T14:30:00"},
		{"02/25/2014 14:30:00", "2014-02-25T14:30:00"},
		{"25-02-2014 14:30:00", "2014-02-25T14:30:00"},
		{"2014-02-25T14:30:00", "2014-02-25T14:30:00"},
		{"2014-02-25 14:30:00.123456", "2014-02-25T14:30:00"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.raw, "1999-12-31"); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalize_BareTimeUsesContextDate(t *testing.T) {
	if got := Normalize("14:30:00", "2014-02-25"); got != "2014-02-25T14:30:00" {
		t.Errorf("bare time = %q, want 2014-02-25T14:30:00", got)
	}
}

func TestNormalize_BareTimeAmPm(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2:00:18 PM", "2005-08-13T14:00:18"},
		{"2:00:18PM", "2005-08-13T14:00:18"},
		{"12:00:01 AM", "2005-08-13T00:00:01"},
		{"11:59:59 pm", "2005-08-13T23:59:59"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.raw, "2005-08-13"); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalize_EmptyYieldsMidnight(t *testing.T) {
	if got := Normalize("", "2014-02-25"); got != "2014-02-25T00:00:00" {
		t.Errorf("empty raw = %q, want 2014-02-25T00:00:00", got)
	}
	if got := Normalize("   ", ""); got != DefaultContextDate+"T00:00:00" {
		t.Errorf("empty raw, empty context = %q, want epoch midnight", got)
	}
}

func TestNormalize_UnknownPassesThrough(t *testing.T) {
	for _, raw := range []string{"not-a-date", "last Tuesday", "2014-02-25"} {
		if got := Normalize(raw, "2014-02-25"); got != raw {
			t.Errorf("Normalize(%q) = %q, want unchanged passthrough", raw, got)
		}
	}
}

func TestNormalize_ZonedKeepsOffset(t *testing.T) {
	if got := Normalize("2014-02-25 14:30:00 -0500", "1970-01-01"); got != "2014-02-25T14:30:00-05:00" {
		t.Errorf("zoned = %q, want 2014-02-25T14:30:00-05:00", got)
	}
	if got := Normalize("2014-02-25T14:30:00Z", "1970-01-01"); got != "2014-02-25T14:30:00Z" {
		t.Errorf("zulu = %q, want 2014-02-25T14:30:00Z", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"2014-02-25 14:30:00",
		"14:30:00",
		"2:00:18 PM",
		"",
		"not-a-date",
		"2014-02-25 14:30:00 -0500",
	}
	for _, raw := range inputs {
		once := Normalize(raw, "2014-02-25")
		twice := Normalize(once, "2014-02-25")
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", raw, once, twice)
		}
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"2014-02-25T14:30:00", true},
		{"2014-02-25T14:30:00-05:00", true},
		{"2014-02-25", false},
		{"not-a-date", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Canonical(tt.s); got != tt.want {
			t.Errorf("Canonical(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
