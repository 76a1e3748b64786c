package models

import (
	"strconv"
	"strings"
)

// SortKey names a recipe field the catalog can be ordered by.
type SortKey string

const (
	SortByName               SortKey = "name"
	SortByPrepTimeMinutes    SortKey = "prepTimeMinutes"
	SortByCookTimeMinutes    SortKey = "cookTimeMinutes"
	SortByDifficulty         SortKey = "difficulty"
	SortByCaloriesPerServing SortKey = "caloriesPerServing"
)

// SortKeys lists the sortable fields in the order the UI cycles through them.
var SortKeys = []SortKey{
	SortByName,
	SortByPrepTimeMinutes,
	SortByCookTimeMinutes,
	SortByDifficulty,
	SortByCaloriesPerServing,
}

// Label is the human readable name of the sort key.
func (k SortKey) Label() string {
	switch k {
	case SortByPrepTimeMinutes:
		return "Prep Time"
	case SortByCookTimeMinutes:
		return "Cook Time"
	case SortByDifficulty:
		return "Difficulty"
	case SortByCaloriesPerServing:
		return "Calories"
	default:
		return "Name"
	}
}

// IsValid reports whether k is a known sort key.
func (k SortKey) IsValid() bool {
	for _, known := range SortKeys {
		if k == known {
			return true
		}
	}
	return false
}

// SortOrder is the sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// IsValid reports whether o is asc or desc.
func (o SortOrder) IsValid() bool {
	return o == OrderAsc || o == OrderDesc
}

// Toggle flips the sort direction.
func (o SortOrder) Toggle() SortOrder {
	if o == OrderDesc {
		return OrderAsc
	}
	return OrderDesc
}

const (
	// DefaultPageSize is the number of recipes shown per page.
	DefaultPageSize = 9
	// DefaultSortKey and DefaultSortOrder are applied when a query leaves them empty.
	DefaultSortKey   = SortByName
	DefaultSortOrder = OrderAsc
)

// RecipeQuery describes one catalog request. Page is 1-based.
type RecipeQuery struct {
	Search string
	Page   int
	Limit  int
	SortBy SortKey
	Order  SortOrder
}

// Normalized returns a copy with defaults filled in: page 1, limit 9,
// sort by name ascending. The search term is trimmed.
func (q RecipeQuery) Normalized() RecipeQuery {
	q.Search = strings.TrimSpace(q.Search)
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if !q.SortBy.IsValid() {
		q.SortBy = DefaultSortKey
	}
	if !q.Order.IsValid() {
		q.Order = DefaultSortOrder
	}
	return q
}

// Skip is the zero-based offset of the first recipe on the page.
func (q RecipeQuery) Skip() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// IsSearch reports whether the query targets the search endpoint.
func (q RecipeQuery) IsSearch() bool {
	return strings.TrimSpace(q.Search) != ""
}

// Params renders the paging and ordering parameters shared by the list and
// search endpoints. The search term is added as "q" when present.
func (q RecipeQuery) Params() map[string]string {
	params := map[string]string{
		"limit":  strconv.Itoa(q.Limit),
		"skip":   strconv.Itoa(q.Skip()),
		"sortBy": string(q.SortBy),
		"order":  string(q.Order),
	}
	if q.IsSearch() {
		params["q"] = strings.TrimSpace(q.Search)
	}
	return params
}
