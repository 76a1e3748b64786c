package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// SessionSlots keeps the session token across restarts.
	SessionSlots SessionSlotRepository

	db *DB
}

// NewClientStorages opens the local sqlite database (creating the file when
// it does not exist yet), applies pending migrations and wires the
// repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionSlots: NewSessionSlotRepository(db, logger),
		db:           db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
