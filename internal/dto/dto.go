// Package dto holds the request and response shapes of the JSON API and the
// mapping between them and the persisted entities.
//
// Create requests carry every required field. Update requests use pointer
// fields: nil means "leave unchanged", so PUT and PATCH both behave as
// partial updates.
package dto

import "time"

// set copies *src into *dst when src is non-nil.
func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func mapSlice[E any, R any](items []E, fn func(*E) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}
	return out
}

// optionalSlice returns nil for an empty input so omitempty drops it.
func optionalSlice[E any, R any](items []E, fn func(*E) R) []R {
	if len(items) == 0 {
		return nil
	}
	return mapSlice(items, fn)
}

// Page wraps a paginated listing.
type Page[T any] struct {
	Data    []T   `json:"data"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

func NewPage[T any](data []T, total int64, limit, offset int) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data:    data,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(data)) < total,
	}
}

func timePtr(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := *t
	return &v
}
