package dto

// Pagination is the envelope attached to every paginated listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// NewPagination computes the derived fields from a normalized page/limit
// pair and a total count. limit is assumed positive (ListQuery.Normalize
// guarantees it).
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Offset is the first row index of the page, (page-1)*limit.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
