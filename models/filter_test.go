package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipeFilter_Normalized(t *testing.T) {
	f := RecipeFilter{Search: "  pizza ", Limit: -3, Skip: -1, SortBy: "color", Order: "sideways"}.Normalized()

	assert.Equal(t, "pizza", f.Search)
	assert.Equal(t, 0, f.Limit)
	assert.Equal(t, 0, f.Skip)
	assert.Equal(t, SortKey(""), f.SortBy)
	assert.Equal(t, OrderAsc, f.Order)

	kept := RecipeFilter{Limit: 9, Skip: 18, SortBy: SortByDifficulty, Order: OrderDesc}.Normalized()
	assert.Equal(t, RecipeFilter{Limit: 9, Skip: 18, SortBy: SortByDifficulty, Order: OrderDesc}, kept)
}

func TestRecipeFilter_Matches(t *testing.T) {
	r := Recipe{
		Name:        "Classic Margherita Pizza",
		Cuisine:     "Italian",
		Tags:        []string{"Pizza", "Quick"},
		Ingredients: []string{"Fresh basil leaves", "Mozzarella cheese"},
	}

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"margherita", true},
		{"ITALIAN", true},
		{"quick", true},
		{"basil", true},
		{"sushi", false},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, RecipeFilter{Search: tt.term}.Matches(r))
		})
	}
}

func TestDifficulty_Rank(t *testing.T) {
	assert.Less(t, DifficultyEasy.Rank(), DifficultyMedium.Rank())
	assert.Less(t, DifficultyMedium.Rank(), DifficultyHard.Rank())
	assert.Less(t, DifficultyHard.Rank(), Difficulty("Extreme").Rank())
}
