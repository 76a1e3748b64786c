// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog holds the seed data served by the stand-in catalog server:
// a fixed set of recipes and demo accounts. Demo passwords are hashed with
// bcrypt when the seed is loaded, so plain passwords never reach the stores.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-recipe-book/models"
)

//go:embed seed/*.json
var seedFS embed.FS

// HashCost is the bcrypt cost used for demo account passwords.
var HashCost = bcrypt.DefaultCost

// Seed is the initial content of the stand-in catalog.
type Seed struct {
	Recipes  []models.Recipe
	Accounts []models.Account
}

type seedUser struct {
	models.User
	Password string `json:"password"`
}

// Load decodes the embedded seed files and hashes the demo passwords.
func Load() (Seed, error) {
	var seed Seed

	if err := readJSON("seed/recipes.json", &seed.Recipes); err != nil {
		return Seed{}, err
	}

	var users []seedUser
	if err := readJSON("seed/users.json", &users); err != nil {
		return Seed{}, err
	}

	seed.Accounts = make([]models.Account, 0, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), HashCost)
		if err != nil {
			return Seed{}, fmt.Errorf("error hashing password of %s: %w", u.Username, err)
		}
		seed.Accounts = append(seed.Accounts, models.Account{User: u.User, PasswordHash: string(hash)})
	}

	return seed, nil
}

func readJSON(name string, dst any) error {
	raw, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("error decoding %s: %w", name, err)
	}
	return nil
}
