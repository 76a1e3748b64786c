package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const sessionSlotsTable = "session_slots"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func getSessionSlotQuery(key string) (string, []any, error) {
	return sqlite.
		Select("value").
		From(sessionSlotsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func upsertSessionSlotQuery(key, value string, now time.Time) (string, []any, error) {
	return sqlite.
		Insert(sessionSlotsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now.UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func deleteSessionSlotQuery(key string) (string, []any, error) {
	return sqlite.
		Delete(sessionSlotsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
