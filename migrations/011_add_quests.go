package migrations

import (
	"context"
	"database/sql"

	"terminusaOnline/services/migrationService"
)

var addQuests = migrationService.Revision{
	Revision:     "011_add_quests",
	DownRevision: "010_update_announcements",
	Upgrade:      upAddQuests,
	Downgrade:    downAddQuests,
}

func upAddQuests(ctx context.Context, tx *sql.Tx) error {
	if _, err := migrationService.EnsureEnumType(ctx, tx, "questtype", []string{"Main", "Side", "Guild", "Daily", "Event"}); err != nil {
		return err
	}
	if _, err := migrationService.EnsureEnumType(ctx, tx, "queststatus", []string{"Available", "In Progress", "Completed", "Failed"}); err != nil {
		return err
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quests (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description TEXT,
			quest_type questtype NOT NULL,
			difficulty INTEGER NOT NULL DEFAULT 1,
			min_level INTEGER NOT NULL DEFAULT 1,
			required_items JSONB NOT NULL DEFAULT '{}',
			reward_experience BIGINT NOT NULL DEFAULT 0,
			reward_crystals BIGINT NOT NULL DEFAULT 0,
			reward_items JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS quest_progress (
			id SERIAL PRIMARY KEY,
			quest_id INTEGER REFERENCES quests (id),
			user_id INTEGER REFERENCES users (id),
			status queststatus NOT NULL DEFAULT 'Available',
			objectives JSONB NOT NULL DEFAULT '{}',
			started_at TIMESTAMPTZ,
			completed_at TIMESTAMPTZ
		)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func downAddQuests(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`DROP TABLE IF EXISTS quest_progress`,
		`DROP TABLE IF EXISTS quests`,
		`DROP TYPE IF EXISTS queststatus`,
		`DROP TYPE IF EXISTS questtype`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
