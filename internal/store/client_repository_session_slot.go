package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
)

type sessionSlotRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionSlotRepository returns a [SessionSlotRepository] backed by the
// session_slots table.
func NewSessionSlotRepository(db *DB, logger *logger.Logger) SessionSlotRepository {
	return &sessionSlotRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *sessionSlotRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := getSessionSlotQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSlotNotFound
		}
		r.logger.Err(err).Str("func", "sessionSlotRepository.Get").Str("key", key).Msg("failed to read session slot")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *sessionSlotRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := upsertSessionSlotQuery(key, value, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.execRetrying(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "sessionSlotRepository.Set").Str("key", key).Msg("failed to write session slot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionSlotRepository) Delete(ctx context.Context, key string) error {
	query, args, err := deleteSessionSlotQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.execRetrying(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "sessionSlotRepository.Delete").Str("key", key).Msg("failed to delete session slot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
