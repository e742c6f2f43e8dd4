// Package query provides an in-memory query pipeline for schemaless record
// collections fetched from upstream monitoring APIs.
//
// The pipeline applies four stages in a fixed order — filter, sort, project,
// paginate — to one record slice per call. It exists because the upstreams
// this service fronts (alert and rule listing endpoints) do not support
// ad-hoc filtering over their result sets.
//
// # Basic Usage
//
// Build a Spec from the request's query string and run the pipeline:
//
//	spec := query.FromValues(c.Request.URL.Query())
//	page, meta := query.Apply(records, spec)
//
// Every non-reserved query parameter is a filter condition on the field of
// the same name. Reserved parameters control the later stages:
//
//	page   — page number (default 1)
//	limit  — page size (default 100)
//	sort   — comma-separated sort keys, leading '-' for descending
//	fields — comma-separated projection of output fields
//
// # Filter Grammar
//
// A single condition value is evaluated against the record field as follows:
//
//	severity=critical        substring match, case-insensitive
//	severity=critical,high   OR-list, any sub-value may match
//	duration=gte:5           range operator (gte, gt, lte, lt)
//	startsAt=gte:2024-01-01  range operators compare timestamps when both
//	                         sides parse as one
//
// Repeating a key ANDs its conditions, which is how inclusive ranges are
// expressed: duration=gte:5&duration=lte:10.
//
// The pipeline never returns an error. Malformed range operands evaluate
// false, missing fields exclude the record, unknown projection fields are
// skipped, and an out-of-range page yields an empty page with metadata
// intact.
//
// Each invocation treats its input as read-only and allocates its own
// intermediate slices, so the pipeline is safe for concurrent use across
// request handlers.
package query
