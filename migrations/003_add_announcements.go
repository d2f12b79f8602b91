package migrations

import (
	"context"
	"database/sql"

	"terminusaOnline/services/migrationService"
)

var addAnnouncements = migrationService.Revision{
	Revision:     "003_add_announcements",
	DownRevision: "002_add_gates",
	Upgrade:      upAddAnnouncements,
	Downgrade:    downAddAnnouncements,
}

func upAddAnnouncements(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS announcements (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	return err
}

func downAddAnnouncements(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS announcements`)
	return err
}
