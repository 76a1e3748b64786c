package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/models"
)

// userRepository keeps the demo accounts in memory, indexed by lowercase
// username.
type userRepository struct {
	byUsername map[string]models.Account
	byID       map[int64]models.Account
	logger     *logger.Logger
}

// NewUserRepository indexes accounts. A later account with a duplicate
// username or id replaces the earlier one.
func NewUserRepository(accounts []models.Account, logger *logger.Logger) UserRepository {
	logger.Debug().Int("accounts", len(accounts)).Msg("creating user repository")

	repo := &userRepository{
		byUsername: make(map[string]models.Account, len(accounts)),
		byID:       make(map[int64]models.Account, len(accounts)),
		logger:     logger,
	}
	for _, a := range accounts {
		repo.byUsername[strings.ToLower(a.Username)] = a
		repo.byID[a.ID] = a
	}
	return repo
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	account, ok := r.byUsername[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		logger.FromContext(ctx).Debug().
			Str("func", "*userRepository.FindByUsername").
			Str("username", username).
			Msg("no such user")
		return models.Account{}, ErrUserNotFound
	}
	return account, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	account, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return account.User, nil
}
