package query

import (
	"strings"

	"github.com/monigate/monigate/types"
)

// Filter returns the records satisfying every non-reserved key of the spec.
// Distinct keys combine with AND, as do repeated values of the same key.
// The result is always a fresh slice.
func Filter(records []types.JSON, spec Spec) []types.JSON {
	conds := spec.conditions()
	out := make([]types.JSON, 0, len(records))
	for _, rec := range records {
		if matchRecord(rec, conds) {
			out = append(out, rec)
		}
	}
	return out
}

// matchRecord reports whether rec satisfies every condition. A record with
// an absent or null field fails that key unconditionally.
func matchRecord(rec types.JSON, conds map[string][]string) bool {
	for key, raws := range conds {
		fv, ok := rec[key]
		if !ok || fv == nil {
			return false
		}
		for _, raw := range raws {
			if !Match(fv, raw) {
				return false
			}
		}
	}
	return true
}

// Match evaluates one raw condition value against a field value.
//
// Evaluation order: range operators first, then OR-lists, then plain
// matching. A malformed range operand evaluates false rather than erroring.
func Match(fv any, raw string) bool {
	if op, operand, ok := splitRangeOp(raw); ok {
		return matchRange(fv, op, operand)
	}
	if strings.Contains(raw, ",") {
		for _, sub := range strings.Split(raw, ",") {
			if sub = strings.TrimSpace(sub); sub == "" {
				continue
			}
			if matchSingle(fv, sub) {
				return true
			}
		}
		return false
	}
	return matchSingle(fv, raw)
}

// matchSingle applies the default rule: case-insensitive substring
// containment for string fields, loose stringified equality otherwise, so
// the numeric 5 matches the raw value "5".
func matchSingle(fv any, raw string) bool {
	if s, ok := fv.(string); ok {
		return strings.Contains(strings.ToLower(s), strings.ToLower(raw))
	}
	return types.ToString(fv) == raw
}

// splitRangeOp recognizes the gte:/gt:/lte:/lt: prefixes. The operand must
// be non-empty for the prefix to count as an operator.
func splitRangeOp(raw string) (op, operand string, ok bool) {
	for _, p := range []string{"gte:", "gt:", "lte:", "lt:"} {
		if strings.HasPrefix(raw, p) && len(raw) > len(p) {
			return strings.TrimSuffix(p, ":"), raw[len(p):], true
		}
	}
	return "", "", false
}

// matchRange compares a field value against a range operand. Timestamps
// win when both sides parse as one; otherwise the comparison is numeric.
// Operands that parse as neither evaluate false.
func matchRange(fv any, op, operand string) bool {
	if ot, ok := parseTimestamp(operand); ok {
		if ft, ok := timestampValue(fv); ok {
			return applyOp(op, compareTimestamps(ft, ot))
		}
	}
	on, err := types.ToFloat(operand)
	if err != nil {
		return false
	}
	fn, err := types.ToFloat(fv)
	if err != nil {
		return false
	}
	switch {
	case fn < on:
		return applyOp(op, -1)
	case fn > on:
		return applyOp(op, 1)
	default:
		return applyOp(op, 0)
	}
}

// applyOp translates a three-way comparison result for the given operator.
func applyOp(op string, cmp int) bool {
	switch op {
	case "gte":
		return cmp >= 0
	case "gt":
		return cmp > 0
	case "lte":
		return cmp <= 0
	case "lt":
		return cmp < 0
	}
	return false
}
