package postgres

import (
	"context"
	"fmt"
)

// schema DDL idempotente. Los CHECK repiten las invariantes de cantidades como última barrera.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		item_code TEXT PRIMARY KEY,
		item_name TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS moves (
		id          TEXT PRIMARY KEY,
		doc_type    TEXT NOT NULL CHECK (doc_type IN ('PO', 'SO', 'TR', 'RT')),
		move_type   TEXT NOT NULL,
		doc_number  VARCHAR(64) NOT NULL,
		status      TEXT NOT NULL CHECK (status IN ('draft', 'pending', 'approved')),
		created_by  TEXT NOT NULL,
		approved_by TEXT,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_moves_created_at ON moves (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS move_lines (
		id            TEXT PRIMARY KEY,
		move_id       TEXT NOT NULL REFERENCES moves (id),
		position      INT NOT NULL,
		item_code     TEXT NOT NULL,
		qty           BIGINT NOT NULL CHECK (qty > 0),
		qty_confirmed BIGINT NOT NULL DEFAULT 0 CHECK (qty_confirmed >= 0 AND qty_confirmed <= qty),
		location_from VARCHAR(64) NOT NULL,
		location_to   VARCHAR(64) NOT NULL,
		UNIQUE (move_id, item_code, location_from, location_to)
	)`,
	`CREATE TABLE IF NOT EXISTS stock (
		item_code  TEXT NOT NULL,
		location   VARCHAR(64) NOT NULL,
		qty        BIGINT NOT NULL CHECK (qty >= 0),
		updated_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (item_code, location)
	)`,
	`CREATE TABLE IF NOT EXISTS audit (
		id        TEXT PRIMARY KEY,
		entity    TEXT NOT NULL,
		entity_id TEXT NOT NULL,
		action    TEXT NOT NULL,
		payload   JSONB NOT NULL,
		actor     TEXT NOT NULL,
		ts        TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_entity ON audit (entity_id, ts DESC)`,
}

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, q Querier) error {
	for _, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
