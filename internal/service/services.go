package service

import (
	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/store"
)

type Services struct {
	AuthService   AuthService
	RecipeService RecipeService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg, logger),
		RecipeService: NewRecipeValidationService().Wrap(NewRecipeService(storages.RecipeRepository, logger)),
	}
}
