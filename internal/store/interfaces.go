package store

import (
	"context"

	"github.com/MKhiriev/go-recipe-book/models"
)

// RecipeRepository is the read side of the stand-in catalog. Writes follow
// the echo contract of the public demo service and never reach it.
type RecipeRepository interface {
	// List returns the recipes selected by filter together with the number
	// of matches before paging.
	List(ctx context.Context, filter models.RecipeFilter) (models.RecipesPage, error)
	// Get returns the recipe with the given id or [ErrRecipeNotFound].
	Get(ctx context.Context, id int64) (models.Recipe, error)
	// NextID is the id the next created recipe would be echoed with.
	NextID(ctx context.Context) int64
}

// UserRepository looks up the demo accounts of the stand-in catalog.
type UserRepository interface {
	// FindByUsername returns the account or [ErrUserNotFound].
	FindByUsername(ctx context.Context, username string) (models.Account, error)
	// FindByID returns the public profile or [ErrUserNotFound].
	FindByID(ctx context.Context, id int64) (models.User, error)
}
