package service

import (
	"context"

	"github.com/MKhiriev/go-recipe-book/models"
)

// RecipeService is the catalog side of the stand-in server. Reads come from
// the seeded catalog; writes are validated and echoed but not stored.
type RecipeService interface {
	List(ctx context.Context, filter models.RecipeFilter) (models.RecipesPage, error)
	Get(ctx context.Context, id int64) (models.Recipe, error)
	Create(ctx context.Context, userID int64, fields models.RecipeFields) (models.Recipe, error)
	Update(ctx context.Context, id int64, update models.RecipeUpdate) (models.Recipe, error)
	Delete(ctx context.Context, id int64) (models.DeleteResult, error)
}

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	Me(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RecipeServiceWrapper defines middleware composition for RecipeService.
// Implementations wrap an existing RecipeService to add behavior such as
// validating.
type RecipeServiceWrapper interface {
	Wrap(RecipeService) RecipeService // returns a decorated RecipeService applying additional behavior
}
