package migrations

import (
	"context"
	"database/sql"

	"terminusaOnline/services/migrationService"
)

var addGates = migrationService.Revision{
	Revision:     "002_add_gates",
	DownRevision: "001_initial_schema",
	Upgrade:      upAddGates,
	Downgrade:    downAddGates,
}

func upAddGates(ctx context.Context, tx *sql.Tx) error {
	if _, err := migrationService.EnsureEnumType(ctx, tx, "gaterank", []string{"E", "D", "C", "B", "A", "S", "Monarch"}); err != nil {
		return err
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS gates (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			rank gaterank NOT NULL,
			type VARCHAR(20) NOT NULL DEFAULT 'normal',
			min_level INTEGER NOT NULL DEFAULT 1,
			crystal_reward_min INTEGER,
			crystal_reward_max INTEGER,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			last_cleared_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS magic_beasts (
			id SERIAL PRIMARY KEY,
			gate_id INTEGER REFERENCES gates (id),
			name VARCHAR(100) NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			rank gaterank,
			hp INTEGER,
			max_hp INTEGER,
			mp INTEGER,
			max_mp INTEGER,
			is_monarch BOOLEAN NOT NULL DEFAULT FALSE,
			is_shadow BOOLEAN NOT NULL DEFAULT FALSE,
			shadow_owner_id INTEGER REFERENCES users (id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func downAddGates(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`DROP TABLE IF EXISTS magic_beasts`,
		`DROP TABLE IF EXISTS gates`,
		`DROP TYPE IF EXISTS gaterank`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
