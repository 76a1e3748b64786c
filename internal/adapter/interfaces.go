// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote recipe catalog service.
//
// [CatalogAdapter] decouples the service layer from the REST contract. The
// HTTP implementation ([NewHTTPCatalogAdapter]) maps non-2xx responses to the
// sentinel errors in errors.go, so callers can match them with [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404). Failures that
// never produced a response wrap [ErrServerUnavailable].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-recipe-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_adapter_mock.go -package=mock

// CatalogAdapter is the client side of the remote catalog contract. The
// adapter holds no session state: authenticated calls receive the bearer
// token explicitly.
type CatalogAdapter interface {
	// Login exchanges credentials for a profile and access token
	// (POST /auth/login).
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Me returns the profile the token belongs to (GET /auth/me).
	Me(ctx context.Context, token string) (models.User, error)

	// ListRecipes returns one page of the catalog (GET /recipes).
	ListRecipes(ctx context.Context, query models.RecipeQuery) (models.RecipesPage, error)

	// SearchRecipes returns one page of recipes matching query.Search
	// (GET /recipes/search).
	SearchRecipes(ctx context.Context, query models.RecipeQuery) (models.RecipesPage, error)

	// GetRecipe returns a single recipe (GET /recipes/{id}).
	GetRecipe(ctx context.Context, id int64) (models.Recipe, error)

	// CreateRecipe submits a new recipe and returns it as echoed by the
	// service, including the assigned id (POST /recipes/add).
	CreateRecipe(ctx context.Context, token string, fields models.RecipeFields) (models.Recipe, error)

	// UpdateRecipe applies a partial update and returns the updated recipe
	// (PUT /recipes/{id}).
	UpdateRecipe(ctx context.Context, token string, id int64, update models.RecipeUpdate) (models.Recipe, error)

	// DeleteRecipe deletes a recipe and returns the deletion result
	// (DELETE /recipes/{id}).
	DeleteRecipe(ctx context.Context, token string, id int64) (models.DeleteResult, error)
}
