// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/models"
)

// recipeRepository is the in-memory implementation of [RecipeRepository]. The
// recipe set is fixed at construction, so reads need no locking.
type recipeRepository struct {
	recipes []models.Recipe
	maxID   int64
	logger  *logger.Logger
}

// NewRecipeRepository copies recipes into a new repository.
func NewRecipeRepository(recipes []models.Recipe, logger *logger.Logger) RecipeRepository {
	logger.Debug().Int("recipes", len(recipes)).Msg("creating recipe repository")

	repo := &recipeRepository{
		recipes: slices.Clone(recipes),
		logger:  logger,
	}
	for _, r := range recipes {
		repo.maxID = max(repo.maxID, r.ID)
	}
	return repo
}

func (r *recipeRepository) List(ctx context.Context, filter models.RecipeFilter) (models.RecipesPage, error) {
	log := logger.FromContext(ctx)
	filter = filter.Normalized()

	matched := make([]models.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		if filter.Matches(recipe) {
			matched = append(matched, recipe)
		}
	}

	if filter.SortBy != "" {
		slices.SortStableFunc(matched, func(a, b models.Recipe) int {
			c := compareBy(filter.SortBy, a, b)
			if filter.Order == models.OrderDesc {
				return -c
			}
			return c
		})
	}

	total := len(matched)
	start := min(filter.Skip, total)
	end := total
	if filter.Limit > 0 {
		end = min(start+filter.Limit, total)
	}

	log.Debug().
		Str("func", "*recipeRepository.List").
		Str("search", filter.Search).
		Int("total", total).
		Int("skip", start).
		Int("limit", filter.Limit).
		Msg("recipes selected")

	return models.RecipesPage{
		Recipes: slices.Clone(matched[start:end]),
		Total:   total,
		Skip:    filter.Skip,
		Limit:   end - start,
	}, nil
}

func (r *recipeRepository) Get(ctx context.Context, id int64) (models.Recipe, error) {
	for _, recipe := range r.recipes {
		if recipe.ID == id {
			return recipe, nil
		}
	}
	return models.Recipe{}, ErrRecipeNotFound
}

func (r *recipeRepository) NextID(ctx context.Context) int64 {
	return r.maxID + 1
}

func compareBy(key models.SortKey, a, b models.Recipe) int {
	switch key {
	case models.SortByPrepTimeMinutes:
		return cmp.Compare(a.PrepTimeMinutes, b.PrepTimeMinutes)
	case models.SortByCookTimeMinutes:
		return cmp.Compare(a.CookTimeMinutes, b.CookTimeMinutes)
	case models.SortByCaloriesPerServing:
		return cmp.Compare(a.CaloriesPerServing, b.CaloriesPerServing)
	case models.SortByDifficulty:
		return cmp.Compare(a.Difficulty.Rank(), b.Difficulty.Rank())
	default:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
}
