package migrations

import (
	"context"
	"database/sql"

	"terminusaOnline/services/migrationService"
)

var addPasswordHash = migrationService.Revision{
	Revision:     "006_add_password_hash",
	DownRevision: "005_add_game_models",
	Upgrade:      upAddPasswordHash,
	Downgrade:    downAddPasswordHash,
}

func upAddPasswordHash(ctx context.Context, tx *sql.Tx) error {
	if _, err := migrationService.EnsureColumn(ctx, tx, "users", "password_hash", "TEXT NOT NULL", "''"); err != nil {
		return err
	}
	_, err := migrationService.EnsureColumn(ctx, tx, "users", "salt", "TEXT NOT NULL", "''")
	return err
}

func downAddPasswordHash(ctx context.Context, tx *sql.Tx) error {
	for _, col := range []string{"password_hash", "salt"} {
		if _, err := tx.ExecContext(ctx, `ALTER TABLE users DROP COLUMN IF EXISTS `+col); err != nil {
			return err
		}
	}
	return nil
}
