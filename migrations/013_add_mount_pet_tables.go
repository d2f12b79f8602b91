package migrations

import (
	"context"
	"database/sql"

	"terminusaOnline/services/migrationService"
)

var addMountPetTables = migrationService.Revision{
	Revision:     "013_add_mount_pet_tables",
	DownRevision: "012_add_currency_system",
	Upgrade:      upAddMountPetTables,
	Downgrade:    downAddMountPetTables,
}

func upAddMountPetTables(ctx context.Context, tx *sql.Tx) error {
	if _, err := migrationService.EnsureEnumType(ctx, tx, "mounttype", []string{"ground", "flying", "aquatic", "hybrid"}); err != nil {
		return err
	}
	if _, err := migrationService.EnsureEnumType(ctx, tx, "pettype", []string{"combat", "utility", "gathering", "support"}); err != nil {
		return err
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS mounts (
			id SERIAL PRIMARY KEY,
			owner_id INTEGER NOT NULL REFERENCES users (id),
			name VARCHAR(50) NOT NULL,
			type mounttype NOT NULL,
			rarity mountpetrarity NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			experience BIGINT NOT NULL DEFAULT 0,
			stats JSONB NOT NULL DEFAULT '{}',
			abilities JSONB NOT NULL DEFAULT '[]',
			is_active BOOLEAN NOT NULL DEFAULT FALSE,
			stamina_current INTEGER NOT NULL DEFAULT 100,
			is_tradeable BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS pets (
			id SERIAL PRIMARY KEY,
			owner_id INTEGER NOT NULL REFERENCES users (id),
			name VARCHAR(50) NOT NULL,
			type pettype NOT NULL,
			rarity mountpetrarity NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			experience BIGINT NOT NULL DEFAULT 0,
			stats JSONB NOT NULL DEFAULT '{}',
			abilities JSONB NOT NULL DEFAULT '[]',
			loyalty INTEGER NOT NULL DEFAULT 50,
			is_active BOOLEAN NOT NULL DEFAULT FALSE,
			is_tradeable BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func downAddMountPetTables(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`DROP TABLE IF EXISTS pets`,
		`DROP TABLE IF EXISTS mounts`,
		`DROP TYPE IF EXISTS pettype`,
		`DROP TYPE IF EXISTS mounttype`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
