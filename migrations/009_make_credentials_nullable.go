package migrations

import (
	"context"
	"database/sql"

	"terminusaOnline/services/migrationService"
)

// Web3-only accounts sign in with a wallet and never set a password.
var makeCredentialsNullable = migrationService.Revision{
	Revision:     "009_make_credentials_nullable",
	DownRevision: "008_add_user_stats_columns",
	Upgrade:      upMakeCredentialsNullable,
	Downgrade:    downMakeCredentialsNullable,
}

func upMakeCredentialsNullable(ctx context.Context, tx *sql.Tx) error {
	for _, col := range []string{"password_hash", "salt"} {
		has, err := migrationService.HasColumn(ctx, tx, "users", col)
		if err != nil {
			return err
		}
		if !has {
			continue
		}
		if _, err := tx.ExecContext(ctx, `ALTER TABLE users ALTER COLUMN `+col+` DROP NOT NULL`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `ALTER TABLE users ALTER COLUMN `+col+` DROP DEFAULT`); err != nil {
			return err
		}
	}
	return nil
}

func downMakeCredentialsNullable(ctx context.Context, tx *sql.Tx) error {
	for _, col := range []string{"password_hash", "salt"} {
		has, err := migrationService.HasColumn(ctx, tx, "users", col)
		if err != nil {
			return err
		}
		if !has {
			continue
		}
		if _, err := tx.ExecContext(ctx, `UPDATE users SET `+col+` = '' WHERE `+col+` IS NULL`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `ALTER TABLE users ALTER COLUMN `+col+` SET DEFAULT ''`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `ALTER TABLE users ALTER COLUMN `+col+` SET NOT NULL`); err != nil {
			return err
		}
	}
	return nil
}
