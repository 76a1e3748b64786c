package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/migrations"
)

const (
	execAttempts = 3
	execBackoff  = 50 * time.Millisecond
)

// DB is the local sqlite connection shared by the client repositories.
type DB struct {
	*sql.DB
	logger             *logger.Logger
	errorClassificator ErrorClassificator
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// execRetrying runs a write statement and repeats it while the classifier
// reports the failure as transient, up to [execAttempts] times.
func (db *DB) execRetrying(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var (
		res sql.Result
		err error
	)
	for attempt := 1; ; attempt++ {
		res, err = db.ExecContext(ctx, query, args...)
		if err == nil || db.errorClassificator == nil || attempt == execAttempts ||
			db.errorClassificator.Classify(err) != Retryable {
			return res, err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("database is busy, retrying statement")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * execBackoff):
		}
	}
}
