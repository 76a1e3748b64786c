package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.With(h.auth).Get("/me", h.me)
	})

	router.Route("/recipes", func(r chi.Router) {
		r.Get("/", h.listRecipes)
		r.Get("/search", h.searchRecipes)
		r.Get("/{id}", h.getRecipe)

		// writes are echoed, never stored
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/add", h.addRecipe)
			r.Put("/{id}", h.updateRecipe)
			r.Patch("/{id}", h.updateRecipe)
			r.Delete("/{id}", h.deleteRecipe)
		})
	})

	return router
}
