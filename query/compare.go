package query

import (
	"strings"
	"time"

	"github.com/monigate/monigate/types"
)

// timestampLayouts are tried in order when parsing condition operands and
// string field values as instants.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp parses s as an instant. Purely numeric strings are not
// timestamps; they take the numeric comparison path instead.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// timestampValue interprets a field value as an instant. Only string
// fields qualify; numbers always compare numerically.
func timestampValue(fv any) (time.Time, bool) {
	s, ok := fv.(string)
	if !ok {
		return time.Time{}, false
	}
	return parseTimestamp(s)
}

// compareTimestamps returns -1, 0 or 1 ordering a before b.
func compareTimestamps(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// CompareValues orders two dynamically-typed field values for sorting.
// Nil sorts before any defined value. Numbers compare numerically, strings
// lexicographically, booleans false before true. Mixed or unsupported
// types fall back to comparing their string forms, which keeps the order
// total and consistent across calls.
func CompareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if an, aok := numeric(a); aok {
		if bn, bok := numeric(b); bok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		}
	}

	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return strings.Compare(as, bs)
		}
	}

	if ab, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			switch {
			case ab == bb:
				return 0
			case bb:
				return -1
			default:
				return 1
			}
		}
	}

	return strings.Compare(types.ToString(a), types.ToString(b))
}

// numeric reports whether v is a number type, excluding numeric strings so
// that sorting "10" and "9" stays lexicographic like any other string.
func numeric(v any) (float64, bool) {
	switch v.(type) {
	case int, int64, float32, float64:
		f, err := types.ToFloat(v)
		return f, err == nil
	}
	return 0, false
}
