package migrations

import (
	"context"
	"database/sql"

	"terminusaOnline/services/migrationService"
)

var addWeb3Wallets = migrationService.Revision{
	Revision:     "004_add_web3_wallets",
	DownRevision: "003_add_announcements",
	Upgrade:      upAddWeb3Wallets,
	Downgrade:    downAddWeb3Wallets,
}

func upAddWeb3Wallets(ctx context.Context, tx *sql.Tx) error {
	cols := []struct {
		name, colType, def string
	}{
		{"web3_wallet", "VARCHAR(64)", ""},
		{"solana_balance", "NUMERIC(18,9) NOT NULL", "0"},
		{"exons_balance", "NUMERIC(18,9) NOT NULL", "0"},
		{"crystals", "BIGINT NOT NULL", "100"},
	}
	for _, col := range cols {
		if _, err := migrationService.EnsureColumn(ctx, tx, "users", col.name, col.colType, col.def); err != nil {
			return err
		}
	}
	return nil
}

func downAddWeb3Wallets(ctx context.Context, tx *sql.Tx) error {
	for _, col := range []string{"web3_wallet", "solana_balance", "exons_balance", "crystals"} {
		if _, err := tx.ExecContext(ctx, `ALTER TABLE users DROP COLUMN IF EXISTS `+col); err != nil {
			return err
		}
	}
	return nil
}
