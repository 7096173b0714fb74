package dto

// DashboardRequest backs GET /home/v1/dashboard.
type DashboardRequest struct {
	Page    int
	Limit   int
	Type    string // "notes", "todos" or "all"
	Keyword string // optional title/content filter
}

// PinnedItemsResponse is the unpaginated pinned shelf.
type PinnedItemsResponse struct {
	Notes []*NoteResponse `json:"notes"`
	Todos []*TodoResponse `json:"todos"`
}

// DashboardPagination reports per-type totals. Totals for a type that was
// not requested are omitted.
type DashboardPagination struct {
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalNotes *int64           `json:"total_notes,omitempty"`
	TotalTodos *int64           `json:"total_todos,omitempty"`
	TotalPages DashboardPerType `json:"total_pages"`
}

type DashboardPerType struct {
	Notes *int `json:"notes,omitempty"`
	Todos *int `json:"todos,omitempty"`
}

type DashboardItems struct {
	Notes []*NoteResponse `json:"notes"`
	Todos []*TodoResponse `json:"todos"`
}

type DashboardResponse struct {
	Pinned     PinnedItemsResponse `json:"pinned"`
	Items      DashboardItems      `json:"items"`
	Pagination DashboardPagination `json:"pagination"`
}

// SearchRequest backs GET /home/v1/search. Keyword is mandatory.
type SearchRequest struct {
	Keyword  string
	Type     string // "notes", "todos" or "all"
	Category string // "pinned", "archived", "trash", "active", "all"
	Page     int
	Limit    int
}

// SearchPagination: each entity subquery runs with the same limit/offset
// independently; the combined total does not drive a single combined
// offset. Preserved observable behavior.
type SearchPagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	TotalNotes int64 `json:"total_notes"`
	TotalTodos int64 `json:"total_todos"`
}

type SearchEcho struct {
	Keyword  string `json:"keyword"`
	Type     string `json:"type"`
	Category string `json:"category"`
}

type SearchResponse struct {
	Notes      []*NoteResponse  `json:"notes"`
	Todos      []*TodoResponse  `json:"todos"`
	Pagination SearchPagination `json:"pagination"`
	Search     SearchEcho       `json:"search"`
}
