package dto

import (
	"fmt"
	"strings"
)

const (
	DefaultPage        = 1
	DefaultLimit       = 10
	DefaultSearchLimit = 20
	DefaultSortField   = "created_at"
)

// ListQuery carries the common listing parameters. Raw query values are
// clamped rather than rejected (page/limit), while an unknown sort field
// fails closed with an error instead of silently falling back.
type ListQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Normalize clamps page/limit to their defaults and validates SortBy
// against the caller's allow-list. Empty SortBy defaults to created_at
// descending.
func (q *ListQuery) Normalize(allowedSortFields ...string) error {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}

	if q.SortBy == "" {
		q.SortBy = DefaultSortField
	}
	allowed := false
	for _, f := range allowedSortFields {
		if q.SortBy == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("invalid sort field %q", q.SortBy)
	}

	switch strings.ToLower(q.SortOrder) {
	case "", "desc":
		q.SortOrder = "desc"
	case "asc":
		q.SortOrder = "asc"
	default:
		return fmt.Errorf("invalid sort order %q", q.SortOrder)
	}
	return nil
}

// Desc reports whether the normalized order is descending.
func (q ListQuery) Desc() bool {
	return q.SortOrder != "asc"
}

// Offset is (page-1)*limit over the normalized values.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// NoteSortFields and TodoSortFields are the persisted columns a caller may
// sort listings by.
var (
	NoteSortFields = []string{"created_at", "updated_at", "title"}
	TodoSortFields = []string{"created_at", "updated_at", "title", "due_date", "completed"}
)
