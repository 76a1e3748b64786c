package models

import (
	"strconv"
	"strings"
)

// DefaultRecipeImage pre-fills the image field of a new recipe form.
const DefaultRecipeImage = "https://cdn.dummyjson.com/recipe-images/1.webp"

// RecipeDraft is the editable, form-local shape of a recipe. Numbers are kept
// as raw text, tags as one comma-delimited string and ingredients and
// instructions as newline-delimited text.
type RecipeDraft struct {
	Name               string
	Cuisine            string
	Difficulty         Difficulty
	PrepTimeMinutes    string
	CookTimeMinutes    string
	Servings           string
	CaloriesPerServing string
	Image              string
	Tags               string
	Ingredients        string
	Instructions       string
}

// NewRecipeDraft returns the initial state of a create form.
func NewRecipeDraft() RecipeDraft {
	return RecipeDraft{
		Difficulty:         DifficultyEasy,
		PrepTimeMinutes:    "0",
		CookTimeMinutes:    "0",
		Servings:           "1",
		CaloriesPerServing: "0",
		Image:              DefaultRecipeImage,
	}
}

// DraftFromRecipe pre-fills an edit form with the current recipe values.
func DraftFromRecipe(r Recipe) RecipeDraft {
	return RecipeDraft{
		Name:               r.Name,
		Cuisine:            r.Cuisine,
		Difficulty:         r.Difficulty,
		PrepTimeMinutes:    strconv.Itoa(r.PrepTimeMinutes),
		CookTimeMinutes:    strconv.Itoa(r.CookTimeMinutes),
		Servings:           strconv.Itoa(r.Servings),
		CaloriesPerServing: strconv.Itoa(r.CaloriesPerServing),
		Image:              r.Image,
		Tags:               strings.Join(r.Tags, ", "),
		Ingredients:        strings.Join(r.Ingredients, "\n"),
		Instructions:       strings.Join(r.Instructions, "\n"),
	}
}

// ToFields converts the draft into a create body. Numeric fields that do not
// parse become zero; callers validate the draft first.
func (d RecipeDraft) ToFields() RecipeFields {
	return RecipeFields{
		Name:               strings.TrimSpace(d.Name),
		Cuisine:            strings.TrimSpace(d.Cuisine),
		Difficulty:         d.Difficulty,
		PrepTimeMinutes:    atoi(d.PrepTimeMinutes),
		CookTimeMinutes:    atoi(d.CookTimeMinutes),
		Servings:           atoi(d.Servings),
		CaloriesPerServing: atoi(d.CaloriesPerServing),
		Image:              strings.TrimSpace(d.Image),
		Tags:               SplitTags(d.Tags),
		Ingredients:        SplitLines(d.Ingredients),
		Instructions:       SplitLines(d.Instructions),
	}
}

// ToUpdate converts the draft into a partial update carrying every form field.
func (d RecipeDraft) ToUpdate() RecipeUpdate {
	f := d.ToFields()
	return RecipeUpdate{
		Name:               &f.Name,
		Cuisine:            &f.Cuisine,
		Difficulty:         &f.Difficulty,
		PrepTimeMinutes:    &f.PrepTimeMinutes,
		CookTimeMinutes:    &f.CookTimeMinutes,
		Servings:           &f.Servings,
		CaloriesPerServing: &f.CaloriesPerServing,
		Image:              &f.Image,
		Tags:               &f.Tags,
		Ingredients:        &f.Ingredients,
		Instructions:       &f.Instructions,
	}
}

// SplitTags splits a comma-delimited string, trimming entries and dropping
// empty ones.
func SplitTags(s string) []string {
	return splitNonEmpty(s, ",")
}

// SplitLines splits newline-delimited text, trimming entries and dropping
// empty ones.
func SplitLines(s string) []string {
	return splitNonEmpty(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func splitNonEmpty(s, sep string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
