package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, PageFilter{}.Offset())
	assert.Equal(t, 0, PageFilter{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, PageFilter{Page: 3, PageSize: 20}.Offset())
}

func TestPageFilter_Paged(t *testing.T) {
	assert.False(t, PageFilter{}.Paged())
	assert.True(t, PageFilter{PageSize: 10}.Paged())
}

func TestSortFilter_OrderClause(t *testing.T) {
	allowed := map[string]bool{"number": true, "created_at": true}

	tests := []struct {
		name     string
		filter   SortFilter
		expected string
	}{
		{"empty column falls back", SortFilter{}, "created_at DESC"},
		{"unlisted column falls back", SortFilter{SortBy: "secret_col"}, "created_at DESC"},
		{"default direction is desc", SortFilter{SortBy: "number"}, "number DESC"},
		{"asc respected", SortFilter{SortBy: "number", SortOrder: "asc"}, "number ASC"},
		{"upper case column folded", SortFilter{SortBy: "NUMBER", SortOrder: "ASC"}, "number ASC"},
		{"bogus direction becomes desc", SortFilter{SortBy: "number", SortOrder: "sideways"}, "number DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.OrderClause(allowed, "created_at DESC"))
		})
	}
}
