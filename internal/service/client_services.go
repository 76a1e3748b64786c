package service

import (
	"github.com/MKhiriev/go-recipe-book/internal/adapter"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/session"
)

type ClientServices struct {
	AuthService   ClientAuthService
	RecipeService ClientRecipeService
}

func NewClientServices(sessionStore *session.Store, catalogAdapter adapter.CatalogAdapter, pageSize int, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:   NewClientAuthService(sessionStore, catalogAdapter, logger),
		RecipeService: NewClientRecipeService(sessionStore, catalogAdapter, pageSize, logger),
	}
}
