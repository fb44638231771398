package database

import (
	"context"
	"fmt"
)

// Multi-value fields are stored as single delimited strings; the repository
// is the only code that joins/splits them (comma for emails and websites,
// newline for addresses, pipe for gallery URLs).
const agentsSchema = `
CREATE TABLE IF NOT EXISTS agents (
	slug         TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	company      TEXT NOT NULL DEFAULT '',
	role         TEXT NOT NULL DEFAULT '',
	bio          TEXT NOT NULL DEFAULT '',
	mobile_phone TEXT NOT NULL DEFAULT '',
	office_phone TEXT NOT NULL DEFAULT '',
	emails       TEXT NOT NULL DEFAULT '',
	websites     TEXT NOT NULL DEFAULT '',
	addresses    TEXT NOT NULL DEFAULT '',
	facebook     TEXT NOT NULL DEFAULT '',
	instagram    TEXT NOT NULL DEFAULT '',
	linkedin     TEXT NOT NULL DEFAULT '',
	twitter      TEXT NOT NULL DEFAULT '',
	youtube      TEXT NOT NULL DEFAULT '',
	tiktok       TEXT NOT NULL DEFAULT '',
	pec          TEXT NOT NULL DEFAULT '',
	vat_number   TEXT NOT NULL DEFAULT '',
	sdi_code     TEXT NOT NULL DEFAULT '',
	photo_url    TEXT,
	gallery_urls TEXT NOT NULL DEFAULT '',
	doc1_url     TEXT,
	doc2_url     TEXT,
	doc3_url     TEXT,
	doc4_url     TEXT,
	doc5_url     TEXT,
	doc6_url     TEXT,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureSchema creates the agents table when it does not exist yet. The
// store is a single table, so a migration tool would be overhead.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}
	if _, err := db.Pool.Exec(ctx, agentsSchema); err != nil {
		return fmt.Errorf("failed to ensure agents schema: %w", err)
	}
	return nil
}
