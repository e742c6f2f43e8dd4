package query

// Meta describes one page of results. Total always counts the filtered
// set before pagination slices it, never the unfiltered input.
type Meta struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// Paginate slices records into one page and computes its metadata. Page
// and limit below one are lifted to their defaults. A page beyond the end
// yields an empty slice, not an error.
func Paginate[T any](records []T, page, limit int) ([]T, Meta) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total := len(records)
	totalPages := (total + limit - 1) / limit
	skip := (page - 1) * limit

	out := []T{}
	if skip < total {
		end := skip + limit
		if end > total {
			end = total
		}
		out = append(out, records[skip:end]...)
	}

	return out, Meta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
