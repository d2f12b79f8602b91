package migrations

import (
	"context"
	"database/sql"

	"terminusaOnline/services/migrationService"
)

var addGuildWarTables = migrationService.Revision{
	Revision:     "014_add_guild_war_tables",
	DownRevision: "013_add_mount_pet_tables",
	Upgrade:      upAddGuildWarTables,
	Downgrade:    downAddGuildWarTables,
}

func upAddGuildWarTables(ctx context.Context, tx *sql.Tx) error {
	if _, err := migrationService.EnsureEnumType(ctx, tx, "warstatus", []string{"pending", "preparation", "active", "completed", "cancelled"}); err != nil {
		return err
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS guild_wars (
			id SERIAL PRIMARY KEY,
			challenger_id INTEGER NOT NULL REFERENCES guilds (id),
			target_id INTEGER NOT NULL REFERENCES guilds (id),
			status warstatus NOT NULL DEFAULT 'pending',
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ NOT NULL,
			winner_id INTEGER REFERENCES guilds (id),
			participants JSONB NOT NULL DEFAULT '{}',
			scores JSONB NOT NULL DEFAULT '{}',
			rewards JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS war_territories (
			id SERIAL PRIMARY KEY,
			war_id INTEGER NOT NULL REFERENCES guild_wars (id),
			type VARCHAR(20) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'neutral',
			controller_id INTEGER REFERENCES guilds (id)
		)`,
		`CREATE TABLE IF NOT EXISTS war_events (
			id SERIAL PRIMARY KEY,
			war_id INTEGER NOT NULL REFERENCES guild_wars (id),
			type VARCHAR(50) NOT NULL,
			payload JSONB NOT NULL DEFAULT '{}',
			occurred_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func downAddGuildWarTables(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`DROP TABLE IF EXISTS war_events`,
		`DROP TABLE IF EXISTS war_territories`,
		`DROP TABLE IF EXISTS guild_wars`,
		`DROP TYPE IF EXISTS warstatus`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
