package migrations

import (
	"context"
	"database/sql"

	"terminusaOnline/services/migrationService"
)

var initialSchema = migrationService.Revision{
	Revision:     "001_initial_schema",
	DownRevision: "",
	Upgrade:      upInitialSchema,
	Downgrade:    downInitialSchema,
}

func upInitialSchema(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(20) NOT NULL UNIQUE,
			email VARCHAR(255) NOT NULL UNIQUE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			is_banned BOOLEAN NOT NULL DEFAULT FALSE,
			ban_reason VARCHAR(255),
			ban_expires TIMESTAMPTZ,
			last_login TIMESTAMPTZ,
			last_ip VARCHAR(45),
			failed_login_attempts INTEGER NOT NULL DEFAULT 0,
			settings JSONB NOT NULL DEFAULT '{}',
			registered_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS guilds (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL UNIQUE,
			description VARCHAR(500),
			leader_id INTEGER NOT NULL REFERENCES users (id) DEFERRABLE INITIALLY DEFERRED,
			level INTEGER NOT NULL DEFAULT 1,
			experience BIGINT NOT NULL DEFAULT 0,
			reputation INTEGER NOT NULL DEFAULT 0,
			crystal_balance BIGINT NOT NULL DEFAULT 0,
			exon_balance NUMERIC(18,9) NOT NULL DEFAULT 0,
			crystal_tax_rate INTEGER NOT NULL DEFAULT 0,
			exon_tax_rate INTEGER NOT NULL DEFAULT 0,
			max_members INTEGER NOT NULL DEFAULT 50,
			recruitment_status VARCHAR(20) NOT NULL DEFAULT 'open',
			min_level_requirement INTEGER NOT NULL DEFAULT 1,
			settings JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	_, err := migrationService.EnsureColumn(ctx, tx, "users", "guild_id", "INTEGER REFERENCES guilds (id) DEFERRABLE INITIALLY DEFERRED", "")
	return err
}

func downInitialSchema(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`ALTER TABLE users DROP COLUMN IF EXISTS guild_id`,
		`DROP TABLE IF EXISTS guilds`,
		`DROP TABLE IF EXISTS users`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
