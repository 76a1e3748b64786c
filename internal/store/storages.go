package store

import (
	"github.com/MKhiriev/go-recipe-book/internal/catalog"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
)

// Storages groups the repositories of the stand-in catalog server.
type Storages struct {
	RecipeRepository RecipeRepository
	UserRepository   UserRepository
}

// NewStorages builds in-memory repositories over seed.
func NewStorages(seed catalog.Seed, logger *logger.Logger) *Storages {
	logger.Info().Msg("creating new storages...")

	return &Storages{
		RecipeRepository: NewRecipeRepository(seed.Recipes, logger),
		UserRepository:   NewUserRepository(seed.Accounts, logger),
	}
}
