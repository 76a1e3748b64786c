package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-recipe-book/models"
)

func TestLoad(t *testing.T) {
	HashCost = bcrypt.MinCost

	seed, err := Load()
	require.NoError(t, err)

	require.Greater(t, len(seed.Recipes), models.DefaultPageSize, "seed must span more than one page")
	ids := make(map[int64]bool)
	for _, r := range seed.Recipes {
		assert.False(t, ids[r.ID], "duplicate id %d", r.ID)
		ids[r.ID] = true
		assert.NotEmpty(t, r.Name)
		assert.True(t, r.Difficulty.IsValid(), r.Name)
		assert.NotEmpty(t, r.Ingredients, r.Name)
		assert.NotEmpty(t, r.Instructions, r.Name)
	}

	require.Len(t, seed.Accounts, 2)
	emily := seed.Accounts[0]
	assert.Equal(t, "emilys", emily.Username)
	assert.Equal(t, "Emily", emily.FirstName)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(emily.PasswordHash), []byte("emilyspass")))
	assert.NotEqual(t, "emilyspass", emily.PasswordHash)
}
