package query

import (
	"net/url"
	"strconv"

	"github.com/monigate/monigate/types"
)

// Reserved parameter names consumed by the sort, projection and pagination
// stages. They are never treated as filterable fields.
const (
	KeyPage   = "page"
	KeySort   = "sort"
	KeyLimit  = "limit"
	KeyFields = "fields"
)

// DefaultLimit is the page size used when the caller supplies none.
const DefaultLimit = 100

// Spec holds the caller-supplied query parameters. Repeated keys keep all
// of their raw values, which the filter stage combines with AND.
type Spec map[string][]string

// FromValues builds a Spec from parsed URL query values.
func FromValues(v url.Values) Spec {
	return Spec(v)
}

// Get returns the first raw value for key, or "" when absent.
func (s Spec) Get(key string) string {
	if vs, ok := s[key]; ok && len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// conditions returns the non-reserved entries of the spec.
func (s Spec) conditions() map[string][]string {
	conds := make(map[string][]string, len(s))
	for key, vals := range s {
		switch key {
		case KeyPage, KeySort, KeyLimit, KeyFields:
			continue
		}
		if len(vals) > 0 {
			conds[key] = vals
		}
	}
	return conds
}

// Apply runs the full pipeline over records: filter, sort, project,
// paginate. The input slice is not modified. The returned metadata counts
// the filtered set before pagination slices it.
func Apply(records []types.JSON, spec Spec) ([]types.JSON, Meta) {
	out := Filter(records, spec)
	if keys := spec.Get(KeySort); keys != "" {
		out = Sort(out, keys)
	}
	if fields := spec.Get(KeyFields); fields != "" {
		out = Project(out, fields)
	}
	page := parsePositive(spec.Get(KeyPage), 1)
	limit := parsePositive(spec.Get(KeyLimit), DefaultLimit)
	return Paginate(out, page, limit)
}

// parsePositive parses s as a positive integer, falling back to def for
// anything unparsable or below one.
func parsePositive(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
