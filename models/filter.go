package models

import (
	"strings"
)

// RecipeFilter selects a window of the catalog on the serving side. It is the
// decoded form of the limit, skip, sortBy, order and q parameters.
type RecipeFilter struct {
	Search string
	Limit  int
	Skip   int
	SortBy SortKey
	Order  SortOrder
}

// Normalized drops invalid values: a negative skip becomes 0, an unknown sort
// key disables sorting, an unknown order becomes ascending. A non-positive
// limit means "no limit".
func (f RecipeFilter) Normalized() RecipeFilter {
	f.Search = strings.TrimSpace(f.Search)
	if f.Skip < 0 {
		f.Skip = 0
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.SortBy != "" && !f.SortBy.IsValid() {
		f.SortBy = ""
	}
	if !f.Order.IsValid() {
		f.Order = OrderAsc
	}
	return f
}

// Matches reports whether r contains the search term in its name, cuisine,
// tags or ingredients, ignoring case. An empty term matches everything.
func (f RecipeFilter) Matches(r Recipe) bool {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}

	if strings.Contains(strings.ToLower(r.Name), term) ||
		strings.Contains(strings.ToLower(r.Cuisine), term) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	for _, ingredient := range r.Ingredients {
		if strings.Contains(strings.ToLower(ingredient), term) {
			return true
		}
	}
	return false
}

// Rank orders difficulties from easiest to hardest. Unknown labels sort last.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	default:
		return 3
	}
}
