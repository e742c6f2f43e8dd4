package query

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"2024-06-15T10:00:00Z", true},
		{"2024-06-15T10:00:00.123Z", true},
		{"2024-06-15T10:00:00", true},
		{"2024-06-15 10:00:00", true},
		{"2024-06-15", true},
		{"5", false},
		{"3.14", false},
		{"not a date", false},
		{"", false},
		{"  2024-06-15  ", true},
	}
	for _, tt := range tests {
		if _, ok := parseTimestamp(tt.in); ok != tt.ok {
			t.Errorf("parseTimestamp(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

func TestCompareTimestamps(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	if compareTimestamps(early, late) != -1 {
		t.Errorf("expected early < late")
	}
	if compareTimestamps(late, early) != 1 {
		t.Errorf("expected late > early")
	}
	if compareTimestamps(early, early) != 0 {
		t.Errorf("expected equal instants to compare 0")
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"nil both", nil, nil, 0},
		{"nil first", nil, "x", -1},
		{"nil second", "x", nil, 1},
		{"numbers", float64(3), float64(7), -1},
		{"numbers equal", float64(5), float64(5), 0},
		{"mixed int float", 3, float64(7), -1},
		{"strings", "alpha", "beta", -1},
		{"strings equal", "same", "same", 0},
		{"bools", false, true, -1},
		{"bools equal", true, true, 0},
		{"numeric strings stay lexicographic", "10", "9", -1},
		{"mixed types fall back to strings", float64(10), "9", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareValues(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareValues(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// The order must be antisymmetric so sorting is consistent regardless of
// input order.
func TestCompareValues_Antisymmetric(t *testing.T) {
	values := []any{nil, float64(1), float64(2), "a", "b", true, false, "10"}
	for _, a := range values {
		for _, b := range values {
			if CompareValues(a, b) != -CompareValues(b, a) {
				t.Errorf("CompareValues(%v, %v) not antisymmetric", a, b)
			}
		}
	}
}
