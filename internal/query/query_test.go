package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Category string
	Featured bool
	Tags     []string
}

var records = []record{
	{Category: "Web", Featured: true, Tags: []string{"go", "react"}},
	{Category: "Web", Featured: true, Tags: []string{"go"}},
	{Category: "Mobile", Featured: false, Tags: []string{"React", "react"}},
	{Category: "Data", Featured: false, Tags: []string{"python"}},
	{Category: "web", Featured: false, Tags: nil},
}

func filters() []Filter[record] {
	return []Filter[record]{
		EqualFold("category", func(r record) string { return r.Category }),
		Bool("featured", func(r record) bool { return r.Featured }),
	}
}

func TestRun_Filters(t *testing.T) {
	tests := []struct {
		name      string
		filters   map[string]string
		wantTotal int
	}{
		{
			name:      "no filters returns everything",
			filters:   nil,
			wantTotal: 5,
		},
		{
			name:      "category is case-insensitive",
			filters:   map[string]string{"category": "WEB"},
			wantTotal: 3,
		},
		{
			name:      "featured true",
			filters:   map[string]string{"featured": "true"},
			wantTotal: 2,
		},
		{
			name:      "featured with non-true value matches false records",
			filters:   map[string]string{"featured": "false"},
			wantTotal: 3,
		},
		{
			name:      "filters combine with AND",
			filters:   map[string]string{"category": "web", "featured": "true"},
			wantTotal: 2,
		},
		{
			name:      "unrecognized keys are ignored",
			filters:   map[string]string{"bogus": "value"},
			wantTotal: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Run(records, filters(), Params{Filters: tt.filters, Page: 1, Limit: 10})
			assert.True(t, result.Success)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, result.Count, len(result.Data))
		})
	}
}

func TestRun_Pagination(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		wantPage       int
		wantCount      int
		wantTotalPages int
	}{
		{name: "first page", page: 1, limit: 2, wantPage: 1, wantCount: 2, wantTotalPages: 3},
		{name: "middle page", page: 2, limit: 2, wantPage: 2, wantCount: 2, wantTotalPages: 3},
		{name: "short last page", page: 3, limit: 2, wantPage: 3, wantCount: 1, wantTotalPages: 3},
		{name: "past the end is empty with totals intact", page: 9, limit: 2, wantPage: 9, wantCount: 0, wantTotalPages: 3},
		{name: "page below one clamps to one", page: -3, limit: 2, wantPage: 1, wantCount: 2, wantTotalPages: 3},
		{name: "limit below one falls back to default", page: 1, limit: 0, wantPage: 1, wantCount: 5, wantTotalPages: 1},
		{name: "limit larger than collection", page: 1, limit: 50, wantPage: 1, wantCount: 5, wantTotalPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Run(records, filters(), Params{Page: tt.page, Limit: tt.limit})
			assert.Equal(t, tt.wantPage, result.Page)
			assert.Equal(t, tt.wantCount, result.Count)
			assert.Len(t, result.Data, tt.wantCount)
			assert.Equal(t, 5, result.Total)
			assert.Equal(t, tt.wantTotalPages, result.TotalPages)
		})
	}
}

func TestRun_TotalPagesUsesFilteredTotal(t *testing.T) {
	result := Run(records, filters(), Params{
		Filters: map[string]string{"category": "web"},
		Page:    1,
		Limit:   2,
	})
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.TotalPages)
}

func TestRun_EmptyCollection(t *testing.T) {
	result := Run(nil, filters(), Params{Page: 1, Limit: 10})
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.TotalPages)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	input := []record{
		{Category: "Web", Featured: true},
		{Category: "Mobile", Featured: false},
	}
	Run(input, filters(), Params{
		Filters: map[string]string{"featured": "true"},
		Page:    1,
		Limit:   1,
	})
	require.Len(t, input, 2)
	assert.Equal(t, "Web", input[0].Category)
	assert.Equal(t, "Mobile", input[1].Category)
}

func TestRun_Idempotent(t *testing.T) {
	params := Params{
		Filters: map[string]string{"category": "web"},
		Page:    1,
		Limit:   2,
	}
	first := Run(records, filters(), params)
	second := Run(records, filters(), params)
	assert.Equal(t, first, second)
}

func TestDistinct(t *testing.T) {
	t.Run("single-valued field keeps first-seen order", func(t *testing.T) {
		got := Distinct(records, func(r record) []string { return []string{r.Category} })
		assert.Equal(t, []string{"Web", "Mobile", "Data", "web"}, got)
	})

	t.Run("multi-valued field flattens before deduplication", func(t *testing.T) {
		got := Distinct(records, func(r record) []string { return r.Tags })
		assert.Equal(t, []string{"go", "react", "React", "python"}, got)
	})

	t.Run("no case normalization", func(t *testing.T) {
		got := Distinct(records, func(r record) []string { return r.Tags })
		assert.Contains(t, got, "react")
		assert.Contains(t, got, "React")
	})

	t.Run("empty collection yields empty slice", func(t *testing.T) {
		got := Distinct(nil, func(r record) []string { return r.Tags })
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
