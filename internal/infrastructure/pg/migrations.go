package pg

import (
	"context"
)

const createCallsTable = `
CREATE TABLE IF NOT EXISTS calls (
	id         SERIAL PRIMARY KEY,
	request_id VARCHAR(64) NOT NULL,
	method     VARCHAR(64) NOT NULL DEFAULT '',
	login      VARCHAR(255) NOT NULL DEFAULT '',
	code       INTEGER NOT NULL,
	has        TEXT[] NOT NULL DEFAULT '{}',
	nclients   INTEGER NOT NULL DEFAULT 0,
	score      DOUBLE PRECISION,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS calls_created_at_idx ON calls (created_at DESC);
`

// Migrate создаёт таблицу calls, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createCallsTable)
	return err
}
