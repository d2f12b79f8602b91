package migrations

import (
	"context"
	"database/sql"

	"terminusaOnline/services/migrationService"
)

var addMissingUserColumns = migrationService.Revision{
	Revision:     "007_add_missing_user_columns",
	DownRevision: "006_add_password_hash",
	Upgrade:      upAddMissingUserColumns,
	Downgrade:    downAddMissingUserColumns,
}

var missingUserColumns = []struct {
	name, colType, def string
}{
	{"last_failed_login", "TIMESTAMPTZ", ""},
	{"friends", "JSONB NOT NULL", "'[]'"},
	{"blocked_users", "JSONB NOT NULL", "'[]'"},
	{"guild_rank", "VARCHAR(20)", ""},
	{"last_daily_reset", "TIMESTAMPTZ", ""},
	{"is_online", "BOOLEAN NOT NULL", "FALSE"},
	{"last_seen", "TIMESTAMPTZ", ""},
}

func upAddMissingUserColumns(ctx context.Context, tx *sql.Tx) error {
	for _, col := range missingUserColumns {
		if _, err := migrationService.EnsureColumn(ctx, tx, "users", col.name, col.colType, col.def); err != nil {
			return err
		}
	}
	return nil
}

func downAddMissingUserColumns(ctx context.Context, tx *sql.Tx) error {
	for _, col := range missingUserColumns {
		if _, err := tx.ExecContext(ctx, `ALTER TABLE users DROP COLUMN IF EXISTS `+col.name); err != nil {
			return err
		}
	}
	return nil
}
