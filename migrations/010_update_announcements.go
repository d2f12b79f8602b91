package migrations

import (
	"context"
	"database/sql"

	"terminusaOnline/services/migrationService"
)

// Announcements reference their author by id only; the author is resolved
// with an explicit lookup, never a loaded back-reference.
var updateAnnouncements = migrationService.Revision{
	Revision:     "010_update_announcements",
	DownRevision: "009_make_credentials_nullable",
	Upgrade:      upUpdateAnnouncements,
	Downgrade:    downUpdateAnnouncements,
}

var announcementColumns = []struct {
	name, colType, def string
}{
	{"author_id", "INTEGER REFERENCES users (id)", ""},
	{"is_active", "BOOLEAN NOT NULL", "TRUE"},
	{"expires_at", "TIMESTAMPTZ", ""},
}

func upUpdateAnnouncements(ctx context.Context, tx *sql.Tx) error {
	for _, col := range announcementColumns {
		if _, err := migrationService.EnsureColumn(ctx, tx, "announcements", col.name, col.colType, col.def); err != nil {
			return err
		}
	}
	return nil
}

func downUpdateAnnouncements(ctx context.Context, tx *sql.Tx) error {
	for _, col := range announcementColumns {
		if _, err := tx.ExecContext(ctx, `ALTER TABLE announcements DROP COLUMN IF EXISTS `+col.name); err != nil {
			return err
		}
	}
	return nil
}
