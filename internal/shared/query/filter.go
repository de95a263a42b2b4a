package query

import "strings"

// PageFilter carries one-based pagination for list queries. A zero value
// disables paging so ledger-style reads can fetch the full set.
type PageFilter struct {
	Page     int
	PageSize int
}

// Paged reports whether the caller requested a page size.
func (f PageFilter) Paged() bool {
	return f.PageSize > 0
}

func (f PageFilter) Limit() int {
	return f.PageSize
}

func (f PageFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// SortFilter names the ORDER BY column and direction requested by the
// caller. The column is only trusted after the owning repository checks it
// against its filterable-column whitelist.
type SortFilter struct {
	SortBy    string
	SortOrder string
}

// OrderClause renders "column DIRECTION" when SortBy names a whitelisted
// column, and fallback otherwise. The direction defaults to DESC unless
// the caller asked for ASC explicitly.
func (f SortFilter) OrderClause(allowed map[string]bool, fallback string) string {
	column := strings.ToLower(f.SortBy)
	if column == "" || !allowed[column] {
		return fallback
	}
	direction := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		direction = "ASC"
	}
	return column + " " + direction
}
