// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Difficulty is the recipe complexity label.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists every valid [Difficulty] in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// IsValid reports whether d is one of the known difficulty labels.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Recipe is a catalog entry. Identity is assigned by the remote service;
// every field is treated as authoritative as received.
type Recipe struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Cuisine            string     `json:"cuisine"`
	Difficulty         Difficulty `json:"difficulty"`
	PrepTimeMinutes    int        `json:"prepTimeMinutes"`
	CookTimeMinutes    int        `json:"cookTimeMinutes"`
	Servings           int        `json:"servings"`
	CaloriesPerServing int        `json:"caloriesPerServing"`
	Image              string     `json:"image"`
	Tags               []string   `json:"tags"`
	Ingredients        []string   `json:"ingredients"`
	Instructions       []string   `json:"instructions"`
	UserID             int64      `json:"userId,omitempty"`
	Rating             float64    `json:"rating,omitempty"`
	ReviewCount        int        `json:"reviewCount,omitempty"`
	MealType           []string   `json:"mealType,omitempty"`
}

// TotalTimeMinutes is the sum of preparation and cooking time.
func (r Recipe) TotalTimeMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

// RecipeFields is the body of a create request: a full recipe without
// identity.
type RecipeFields struct {
	Name               string     `json:"name"`
	Cuisine            string     `json:"cuisine"`
	Difficulty         Difficulty `json:"difficulty"`
	PrepTimeMinutes    int        `json:"prepTimeMinutes"`
	CookTimeMinutes    int        `json:"cookTimeMinutes"`
	Servings           int        `json:"servings"`
	CaloriesPerServing int        `json:"caloriesPerServing"`
	Image              string     `json:"image"`
	Tags               []string   `json:"tags"`
	Ingredients        []string   `json:"ingredients"`
	Instructions       []string   `json:"instructions"`
}

// RecipeUpdate is a partial update. Only non-nil fields are sent.
type RecipeUpdate struct {
	Name               *string     `json:"name,omitempty"`
	Cuisine            *string     `json:"cuisine,omitempty"`
	Difficulty         *Difficulty `json:"difficulty,omitempty"`
	PrepTimeMinutes    *int        `json:"prepTimeMinutes,omitempty"`
	CookTimeMinutes    *int        `json:"cookTimeMinutes,omitempty"`
	Servings           *int        `json:"servings,omitempty"`
	CaloriesPerServing *int        `json:"caloriesPerServing,omitempty"`
	Image              *string     `json:"image,omitempty"`
	Tags               *[]string   `json:"tags,omitempty"`
	Ingredients        *[]string   `json:"ingredients,omitempty"`
	Instructions       *[]string   `json:"instructions,omitempty"`
}

// Apply returns a copy of r with every non-nil field of u written over it.
func (u RecipeUpdate) Apply(r Recipe) Recipe {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Cuisine != nil {
		r.Cuisine = *u.Cuisine
	}
	if u.Difficulty != nil {
		r.Difficulty = *u.Difficulty
	}
	if u.PrepTimeMinutes != nil {
		r.PrepTimeMinutes = *u.PrepTimeMinutes
	}
	if u.CookTimeMinutes != nil {
		r.CookTimeMinutes = *u.CookTimeMinutes
	}
	if u.Servings != nil {
		r.Servings = *u.Servings
	}
	if u.CaloriesPerServing != nil {
		r.CaloriesPerServing = *u.CaloriesPerServing
	}
	if u.Image != nil {
		r.Image = *u.Image
	}
	if u.Tags != nil {
		r.Tags = append([]string(nil), (*u.Tags)...)
	}
	if u.Ingredients != nil {
		r.Ingredients = append([]string(nil), (*u.Ingredients)...)
	}
	if u.Instructions != nil {
		r.Instructions = append([]string(nil), (*u.Instructions)...)
	}
	return r
}

// DeleteResult is returned by the delete endpoint: the deleted recipe echoed
// back with deletion markers.
type DeleteResult struct {
	Recipe
	IsDeleted bool       `json:"isDeleted"`
	DeletedOn *time.Time `json:"deletedOn,omitempty"`
}
