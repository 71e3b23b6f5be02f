// Package query implements the list-query contract shared by the projects
// and blog endpoints: conjunctive filtering, pagination, and distinct-value
// extraction over an in-memory ordered collection.
package query

import "strings"

// DefaultLimit is the page size used when the request does not specify one.
const DefaultLimit = 10

// Params holds the parsed inputs of a list query. Filters contains only the
// keys actually present in the request; unrecognized keys are ignored.
type Params struct {
	Filters map[string]string
	Page    int
	Limit   int
}

// Filter matches one record field against a query-string value.
type Filter[T any] struct {
	Key   string
	Match func(rec T, value string) bool
}

// Result is the pagination envelope returned by every list endpoint.
// TotalPages is computed from the filtered total, not the raw collection size.
type Result[T any] struct {
	Success    bool `json:"success"`
	Count      int  `json:"count"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	TotalPages int  `json:"totalPages"`
	Data       []T  `json:"data"`
}

// Run filters records conjunctively in declaration order, then paginates.
// A filter only applies when its key is present in params.Filters, so an
// absent key short-circuits to the full collection. Page values below 1
// clamp to 1 and limits below 1 fall back to DefaultLimit; pages past the
// end yield an empty data slice with totals still populated. The input
// slice is never mutated.
func Run[T any](records []T, filters []Filter[T], params Params) Result[T] {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	filtered := records
	for _, f := range filters {
		value, ok := params.Filters[f.Key]
		if !ok {
			continue
		}
		kept := make([]T, 0, len(filtered))
		for _, rec := range filtered {
			if f.Match(rec, value) {
				kept = append(kept, rec)
			}
		}
		filtered = kept
	}

	total := len(filtered)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	data := make([]T, end-start)
	copy(data, filtered[start:end])

	return Result[T]{
		Success:    true,
		Count:      len(data),
		Total:      total,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
		Data:       data,
	}
}

// EqualFold builds a filter doing case-insensitive exact match on a string
// field, e.g. category or status.
func EqualFold[T any](key string, field func(T) string) Filter[T] {
	return Filter[T]{
		Key: key,
		Match: func(rec T, value string) bool {
			return strings.EqualFold(field(rec), value)
		},
	}
}

// Bool builds a filter comparing a boolean field against the literal "true".
// Presence of the key enables the filter even when the value is "false" or
// garbage, matching records where the field is false.
func Bool[T any](key string, field func(T) bool) Filter[T] {
	return Filter[T]{
		Key: key,
		Match: func(rec T, value string) bool {
			return field(rec) == (value == "true")
		},
	}
}

// Distinct returns the unique values produced by extract across all records,
// in first-seen order. Values are not case-normalized: "React" and "react"
// count as distinct.
func Distinct[T any](records []T, extract func(T) []string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, rec := range records {
		for _, v := range extract(rec) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
