// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/models"
)

// recipeService serves the seeded catalog and echoes writes the way the
// public demo service does: the response looks like the write happened, the
// catalog stays as seeded.
type recipeService struct {
	recipes store.RecipeRepository
	now     func() time.Time
	logger  *logger.Logger
}

func NewRecipeService(recipes store.RecipeRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipes: recipes,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *recipeService) List(ctx context.Context, filter models.RecipeFilter) (models.RecipesPage, error) {
	page, err := s.recipes.List(ctx, filter)
	if err != nil {
		return models.RecipesPage{}, fmt.Errorf("list recipes: %w", err)
	}
	return page, nil
}

func (s *recipeService) Get(ctx context.Context, id int64) (models.Recipe, error) {
	recipe, err := s.recipes.Get(ctx, id)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe %d: %w", id, err)
	}
	return recipe, nil
}

// Create echoes fields as a recipe with the next free id.
func (s *recipeService) Create(ctx context.Context, userID int64, fields models.RecipeFields) (models.Recipe, error) {
	created := models.Recipe{
		ID:                 s.recipes.NextID(ctx),
		Name:               fields.Name,
		Cuisine:            fields.Cuisine,
		Difficulty:         fields.Difficulty,
		PrepTimeMinutes:    fields.PrepTimeMinutes,
		CookTimeMinutes:    fields.CookTimeMinutes,
		Servings:           fields.Servings,
		CaloriesPerServing: fields.CaloriesPerServing,
		Image:              fields.Image,
		Tags:               nonNil(fields.Tags),
		Ingredients:        nonNil(fields.Ingredients),
		Instructions:       nonNil(fields.Instructions),
		UserID:             userID,
	}

	logger.FromContext(ctx).Info().Int64("id", created.ID).Str("name", created.Name).Msg("recipe create echoed")
	return created, nil
}

// Update echoes the stored recipe with update applied.
func (s *recipeService) Update(ctx context.Context, id int64, update models.RecipeUpdate) (models.Recipe, error) {
	current, err := s.recipes.Get(ctx, id)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("update recipe %d: %w", id, err)
	}

	updated := update.Apply(current)
	logger.FromContext(ctx).Info().Int64("id", id).Msg("recipe update echoed")
	return updated, nil
}

// Delete echoes the stored recipe marked as deleted.
func (s *recipeService) Delete(ctx context.Context, id int64) (models.DeleteResult, error) {
	current, err := s.recipes.Get(ctx, id)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete recipe %d: %w", id, err)
	}

	deletedOn := s.now().UTC()
	logger.FromContext(ctx).Info().Int64("id", id).Msg("recipe delete echoed")
	return models.DeleteResult{Recipe: current, IsDeleted: true, DeletedOn: &deletedOn}, nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
