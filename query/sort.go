package query

import (
	"sort"
	"strings"

	"github.com/monigate/monigate/types"
)

// sortKey is one entry of a comma-separated sort list.
type sortKey struct {
	field string
	desc  bool
}

// parseSortKeys splits "name,-duration" into ordered sort keys.
func parseSortKeys(keys string) []sortKey {
	parts := strings.Split(keys, ",")
	parsed := make([]sortKey, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == "-" {
			continue
		}
		if strings.HasPrefix(p, "-") {
			parsed = append(parsed, sortKey{field: p[1:], desc: true})
		} else {
			parsed = append(parsed, sortKey{field: p})
		}
	}
	return parsed
}

// Sort stably reorders records by the comma-separated key list. A leading
// '-' marks a key descending. Records equal on all keys keep their
// original relative order. The input slice is left untouched.
func Sort(records []types.JSON, keys string) []types.JSON {
	parsed := parseSortKeys(keys)
	out := append([]types.JSON(nil), records...)
	if len(parsed) == 0 {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		for _, k := range parsed {
			cmp := CompareValues(out[i][k.field], out[j][k.field])
			if k.desc {
				cmp = -cmp
			}
			if cmp != 0 {
				return cmp < 0
			}
		}
		return false
	})
	return out
}
