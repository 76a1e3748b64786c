// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/internal/utils"
	"github.com/MKhiriev/go-recipe-book/models"
)

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromRequest(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	// the list endpoint ignores q
	filter.Search = ""

	h.writePage(w, r, filter)
}

func (h *Handler) searchRecipes(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromRequest(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writePage(w, r, filter)
}

func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, filter models.RecipeFilter) {
	page, err := h.services.RecipeService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := recipeIDFromRequest(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	recipe, err := h.services.RecipeService.Get(r.Context(), id)
	if err != nil {
		writeRecipeError(w, r, id, err)
		return
	}

	_, _ = utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) addRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var fields models.RecipeFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	created, err := h.services.RecipeService.Create(ctx, userID, fields)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := recipeIDFromRequest(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var update models.RecipeUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.services.RecipeService.Update(ctx, id, update)
	if err != nil {
		writeRecipeError(w, r, id, err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := recipeIDFromRequest(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.services.RecipeService.Delete(r.Context(), id)
	if err != nil {
		writeRecipeError(w, r, id, err)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

// writeRecipeError words a missing recipe the way the public catalog does.
func writeRecipeError(w http.ResponseWriter, r *http.Request, id int64, err error) {
	if errors.Is(err, store.ErrRecipeNotFound) {
		logger.FromRequest(r).Info().Int64("id", id).Msg("recipe not found")
		utils.WriteError(w, fmt.Sprintf("Recipe with id '%d' not found", id), http.StatusNotFound)
		return
	}
	writeServiceError(w, r, err)
}
