package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-recipe-book/models"
)

// filterFromRequest decodes limit, skip, sortBy, order and q. Missing
// numbers default to zero; malformed or negative ones are rejected.
func filterFromRequest(r *http.Request) (models.RecipeFilter, error) {
	q := r.URL.Query()

	limit, err := intParam(q.Get("limit"))
	if err != nil {
		return models.RecipeFilter{}, err
	}
	skip, err := intParam(q.Get("skip"))
	if err != nil {
		return models.RecipeFilter{}, err
	}

	return models.RecipeFilter{
		Search: q.Get("q"),
		Limit:  limit,
		Skip:   skip,
		SortBy: models.SortKey(q.Get("sortBy")),
		Order:  models.SortOrder(q.Get("order")),
	}.Normalized(), nil
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errInvalidPage
	}
	return n, nil
}

func recipeIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errInvalidID
	}
	return id, nil
}
