package query

import (
	"strings"

	"github.com/monigate/monigate/types"
)

// Project narrows each record to the comma-separated field list. Only
// fields present on the source record are carried over; requesting a
// missing field is a silent no-op. Source records are not modified.
func Project(records []types.JSON, fields string) []types.JSON {
	keys := make([]string, 0, 4)
	for _, f := range strings.Split(fields, ",") {
		if f = strings.TrimSpace(f); f != "" {
			keys = append(keys, f)
		}
	}
	if len(keys) == 0 {
		return append([]types.JSON(nil), records...)
	}
	out := make([]types.JSON, len(records))
	for i, rec := range records {
		projected := make(types.JSON, len(keys))
		for _, k := range keys {
			if v, ok := rec[k]; ok {
				projected[k] = v
			}
		}
		out[i] = projected
	}
	return out
}
