package query

import (
	"testing"

	"github.com/monigate/monigate/types"
)

func TestMatch_Substring(t *testing.T) {
	tests := []struct {
		fv   any
		raw  string
		want bool
	}{
		{"CPU Usage", "cpu", true},
		{"CPU Usage", "usage", true},
		{"CPU Usage", "memory", false},
		{"critical", "critical", true},
		{"", "x", false},
		{"anything", "", true},
	}
	for _, tt := range tests {
		if got := Match(tt.fv, tt.raw); got != tt.want {
			t.Errorf("Match(%v, %q) = %v, want %v", tt.fv, tt.raw, got, tt.want)
		}
	}
}

func TestMatch_LooseEquality(t *testing.T) {
	tests := []struct {
		fv   any
		raw  string
		want bool
	}{
		{float64(5), "5", true},
		{float64(5), "6", false},
		{float64(2.5), "2.5", true},
		{true, "true", true},
		{false, "true", false},
		{int64(42), "42", true},
	}
	for _, tt := range tests {
		if got := Match(tt.fv, tt.raw); got != tt.want {
			t.Errorf("Match(%v, %q) = %v, want %v", tt.fv, tt.raw, got, tt.want)
		}
	}
}

func TestMatch_OrList(t *testing.T) {
	tests := []struct {
		fv   any
		raw  string
		want bool
	}{
		{"critical", "critical,warning", true},
		{"warning", "critical,warning", true},
		{"info", "critical,warning", false},
		{"warning", " critical , warning ", true},
		{float64(3), "1,2,3", true},
		{float64(4), "1,2,3", false},
	}
	for _, tt := range tests {
		if got := Match(tt.fv, tt.raw); got != tt.want {
			t.Errorf("Match(%v, %q) = %v, want %v", tt.fv, tt.raw, got, tt.want)
		}
	}
}

func TestMatch_RangeNumeric(t *testing.T) {
	tests := []struct {
		fv   any
		raw  string
		want bool
	}{
		{float64(8), "gte:5", true},
		{float64(8), "gte:8", true},
		{float64(8), "gt:8", false},
		{float64(8), "lte:10", true},
		{float64(8), "lt:8", false},
		{float64(3), "gte:5", false},
		{"7", "gte:5", true}, // numeric strings compare numerically
		{"abc", "gte:5", false},
		{float64(8), "gte:junk", false}, // malformed operand fails closed
		{float64(8), "gte:", false},     // empty operand is not an operator
	}
	for _, tt := range tests {
		if got := Match(tt.fv, tt.raw); got != tt.want {
			t.Errorf("Match(%v, %q) = %v, want %v", tt.fv, tt.raw, got, tt.want)
		}
	}
}

func TestMatch_RangeTimestamp(t *testing.T) {
	tests := []struct {
		fv   any
		raw  string
		want bool
	}{
		{"2024-06-15T10:00:00Z", "gte:2024-01-01", true},
		{"2023-06-15T10:00:00Z", "gte:2024-01-01", false},
		{"2024-06-15T10:00:00Z", "lt:2024-12-31", true},
		{"2024-01-01", "gte:2024-01-01T00:00:00Z", true},
		{"not a date", "gte:2024-01-01", false},
	}
	for _, tt := range tests {
		if got := Match(tt.fv, tt.raw); got != tt.want {
			t.Errorf("Match(%v, %q) = %v, want %v", tt.fv, tt.raw, got, tt.want)
		}
	}
}

func TestFilter_MissingFieldExcludes(t *testing.T) {
	records := []types.JSON{
		{"name": "with-severity", "severity": "critical"},
		{"name": "without-severity"},
		{"name": "null-severity", "severity": nil},
	}

	out := Filter(records, Spec{"severity": {"critical"}})

	if len(out) != 1 || out[0]["name"] != "with-severity" {
		t.Fatalf("expected only the record with the field, got %v", out)
	}
}

func TestFilter_DistinctKeysAnd(t *testing.T) {
	out := Filter(alertFixtures(), Spec{"severity": {"critical"}, "name": {"load"}})

	if len(out) != 1 || out[0]["name"] != "CPU Load" {
		t.Fatalf("expected CPU Load only, got %v", out)
	}
}

// Repeated keys AND together: filter(k=[gte:5, lte:10]) must equal the
// intersection of the individual filters.
func TestFilter_RangeAndLaw(t *testing.T) {
	records := alertFixtures()

	both := Filter(records, Spec{"duration": {"gte:5", "lte:10"}})
	lower := Filter(records, Spec{"duration": {"gte:5"}})
	upper := Filter(records, Spec{"duration": {"lte:10"}})

	inBoth := func(rec types.JSON) bool {
		found := func(set []types.JSON) bool {
			for _, r := range set {
				if r["name"] == rec["name"] {
					return true
				}
			}
			return false
		}
		return found(lower) && found(upper)
	}

	if len(both) != 1 || both[0]["name"] != "CPU Usage" {
		t.Fatalf("unexpected range result: %v", both)
	}
	for _, rec := range both {
		if !inBoth(rec) {
			t.Errorf("record %v not in intersection", rec["name"])
		}
	}
	for _, rec := range lower {
		if Match(rec["duration"], "lte:10") != inBoth(rec) {
			t.Errorf("intersection mismatch for %v", rec["name"])
		}
	}
}

// OR-lists union: filter(k="a,b") must equal filter(k="a") ∪ filter(k="b").
func TestFilter_OrListUnionLaw(t *testing.T) {
	records := alertFixtures()

	union := Filter(records, Spec{"severity": {"critical,warning"}})
	crit := Filter(records, Spec{"severity": {"critical"}})
	warn := Filter(records, Spec{"severity": {"warning"}})

	if len(union) != len(crit)+len(warn) {
		t.Fatalf("expected union of %d+%d, got %d", len(crit), len(warn), len(union))
	}
	seen := map[any]bool{}
	for _, r := range append(crit, warn...) {
		seen[r["name"]] = true
	}
	for _, r := range union {
		if !seen[r["name"]] {
			t.Errorf("record %v missing from component filters", r["name"])
		}
	}
}

func TestFilter_EmptySpecCopiesInput(t *testing.T) {
	records := alertFixtures()

	out := Filter(records, Spec{})

	if len(out) != len(records) {
		t.Fatalf("expected passthrough, got %d records", len(out))
	}
	out = append(out, types.JSON{"name": "extra"})
	if len(records) != 3 {
		t.Fatalf("filter output aliases the input slice")
	}
}
