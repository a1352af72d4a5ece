package dto_test

import (
	"multimedia/shared/dto"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          url.Values
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "all parameters",
			query:          url.Values{"page": {"2"}, "limit": {"20"}, "sort_by": {"description"}, "sort_dir": {"asc"}},
			defaultRequest: false,
			expected:       dto.QueryParams{Page: 2, Limit: 20, SortBy: "description", SortDir: "ASC"},
		},
		{
			name:           "defaults applied",
			query:          url.Values{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"},
		},
		{
			name:           "invalid values ignored",
			query:          url.Values{"page": {"-1"}, "limit": {"abc"}, "sort_dir": {"sideways"}},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &http.Request{URL: &url.URL{RawQuery: tt.query.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_RestrictSortBy(t *testing.T) {
	params := dto.QueryParams{SortBy: "created_at; DROP TABLE multimedia_entries"}
	params.RestrictSortBy("created_at", "description")
	assert.Equal(t, "created_at", params.SortBy)

	params = dto.QueryParams{SortBy: "description"}
	params.RestrictSortBy("created_at", "description")
	assert.Equal(t, "description", params.SortBy)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "description", Operator: dto.FilterOperatorLike, Value: "beach", Table: "multimedia_entries"},
			dto.Filter{Field: "created_at", Operator: dto.FilterOperatorGreaterEq, Value: "2025-01-01", ArgName: "from"},
			dto.Filter{Field: "ignored", Operator: "unknown"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(LOWER(multimedia_entries.description) LIKE LOWER(:description) AND created_at >= :from)", where)
	assert.Equal(t, map[string]any{"description": "%beach%", "from": "2025-01-01"}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
	assert.Empty(t, group.Key())
}

func TestFilterGroup_KeyIsDeterministic(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "b", Operator: dto.FilterOperatorEq, Value: 2},
			dto.Filter{Field: "a", Operator: dto.FilterOperatorEq, Value: 1},
		},
	}

	assert.Equal(t, "(b = :b AND a = :a)|a=1|b=2", group.Key())
	assert.Equal(t, group.Key(), group.Key())
}
