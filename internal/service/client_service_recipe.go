// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-book/internal/adapter"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/session"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
	"github.com/MKhiriev/go-recipe-book/models"
)

type clientRecipeService struct {
	session   *session.Store
	adapter   adapter.CatalogAdapter
	validator validators.Validator
	pageSize  int
	logger    *logger.Logger
}

// NewClientRecipeService returns a recipe service reading the bearer token
// from sessionStore. pageSize is used for queries that carry no limit.
func NewClientRecipeService(sessionStore *session.Store, catalogAdapter adapter.CatalogAdapter, pageSize int, logger *logger.Logger) ClientRecipeService {
	if pageSize < 1 {
		pageSize = models.DefaultPageSize
	}
	return &clientRecipeService{
		session:   sessionStore,
		adapter:   catalogAdapter,
		validator: validators.NewRecipeValidator(),
		pageSize:  pageSize,
		logger:    logger,
	}
}

func (s *clientRecipeService) List(ctx context.Context, query models.RecipeQuery) (models.RecipesPage, error) {
	if query.Limit < 1 {
		query.Limit = s.pageSize
	}
	query = query.Normalized()

	var (
		page models.RecipesPage
		err  error
	)
	if query.IsSearch() {
		page, err = s.adapter.SearchRecipes(ctx, query)
	} else {
		page, err = s.adapter.ListRecipes(ctx, query)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*clientRecipeService.List").Str("search", query.Search).Int("page", query.Page).Msg("loading recipes failed")
		return models.RecipesPage{}, fmt.Errorf("load recipes: %w", mapAdapterError(err))
	}

	return page, nil
}

func (s *clientRecipeService) Get(ctx context.Context, id int64) (models.Recipe, error) {
	recipe, err := s.adapter.GetRecipe(ctx, id)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("load recipe %d: %w", id, mapAdapterError(err))
	}
	return recipe, nil
}

func (s *clientRecipeService) Create(ctx context.Context, draft models.RecipeDraft) (models.Recipe, error) {
	token, ok := s.session.GetToken()
	if !ok {
		return models.Recipe{}, ErrNotAuthenticated
	}

	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.adapter.CreateRecipe(ctx, token, draft.ToFields())
	if err != nil {
		s.logger.Err(err).Str("func", "*clientRecipeService.Create").Msg("creating recipe failed")
		return models.Recipe{}, fmt.Errorf("create recipe: %w", mapAdapterError(err))
	}

	return created, nil
}

func (s *clientRecipeService) Update(ctx context.Context, id int64, draft models.RecipeDraft) (models.Recipe, error) {
	token, ok := s.session.GetToken()
	if !ok {
		return models.Recipe{}, ErrNotAuthenticated
	}

	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updated, err := s.adapter.UpdateRecipe(ctx, token, id, draft.ToUpdate())
	if err != nil {
		s.logger.Err(err).Str("func", "*clientRecipeService.Update").Int64("id", id).Msg("updating recipe failed")
		return models.Recipe{}, fmt.Errorf("update recipe %d: %w", id, mapAdapterError(err))
	}

	return updated, nil
}

func (s *clientRecipeService) Delete(ctx context.Context, id int64) (models.DeleteResult, error) {
	token, ok := s.session.GetToken()
	if !ok {
		return models.DeleteResult{}, ErrNotAuthenticated
	}

	result, err := s.adapter.DeleteRecipe(ctx, token, id)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientRecipeService.Delete").Int64("id", id).Msg("deleting recipe failed")
		return models.DeleteResult{}, fmt.Errorf("delete recipe %d: %w", id, mapAdapterError(err))
	}

	return result, nil
}
