package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-book/internal/validators"
	"github.com/MKhiriev/go-recipe-book/models"
)

// RecipeValidationService rejects invalid create and update bodies before
// they reach the wrapped RecipeService.
type RecipeValidationService struct {
	inner     RecipeService
	validator validators.Validator
}

func NewRecipeValidationService() RecipeServiceWrapper {
	return &RecipeValidationService{
		validator: validators.NewRecipeValidator(),
	}
}

func (v *RecipeValidationService) Wrap(inner RecipeService) RecipeService {
	v.inner = inner
	return v
}

func (v *RecipeValidationService) List(ctx context.Context, filter models.RecipeFilter) (models.RecipesPage, error) {
	return v.inner.List(ctx, filter)
}

func (v *RecipeValidationService) Get(ctx context.Context, id int64) (models.Recipe, error) {
	return v.inner.Get(ctx, id)
}

func (v *RecipeValidationService) Create(ctx context.Context, userID int64, fields models.RecipeFields) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Create(ctx, userID, fields)
}

func (v *RecipeValidationService) Update(ctx context.Context, id int64, update models.RecipeUpdate) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Update(ctx, id, update)
}

func (v *RecipeValidationService) Delete(ctx context.Context, id int64) (models.DeleteResult, error) {
	return v.inner.Delete(ctx, id)
}
