package migrations

import (
	"context"
	"database/sql"

	"terminusaOnline/services/migrationService"
)

var addCurrencySystem = migrationService.Revision{
	Revision:     "012_add_currency_system",
	DownRevision: "011_add_quests",
	Upgrade:      upAddCurrencySystem,
	Downgrade:    downAddCurrencySystem,
}

func upAddCurrencySystem(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS currencies (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL UNIQUE,
			symbol VARCHAR(10) NOT NULL UNIQUE,
			is_crypto BOOLEAN NOT NULL DEFAULT FALSE,
			is_tradeable BOOLEAN NOT NULL DEFAULT TRUE,
			total_supply NUMERIC(36,18) NOT NULL DEFAULT 0,
			circulating_supply NUMERIC(36,18) NOT NULL DEFAULT 0,
			max_supply NUMERIC(36,18),
			exchange_rates JSONB NOT NULL DEFAULT '{}',
			min_transaction NUMERIC(36,18) NOT NULL DEFAULT 0,
			max_transaction NUMERIC(36,18),
			transfer_fee NUMERIC(5,2) NOT NULL DEFAULT 0,
			swap_fee NUMERIC(5,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			last_rate_update TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id SERIAL PRIMARY KEY,
			reference VARCHAR(36) NOT NULL UNIQUE,
			user_id INTEGER REFERENCES users (id),
			counterparty_id INTEGER REFERENCES users (id),
			currency_symbol VARCHAR(10) NOT NULL,
			amount NUMERIC(36,18) NOT NULL,
			fee NUMERIC(36,18) NOT NULL DEFAULT 0,
			kind VARCHAR(20) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`INSERT INTO currencies (name, symbol, is_crypto, total_supply, circulating_supply, min_transaction, swap_fee)
			VALUES
				('Solana', 'SOL', TRUE, 0, 0, 0.000000001, 0.5),
				('Exons', 'EXON', TRUE, 1000000000, 0, 0.000000001, 0.25),
				('Crystals', 'CRYS', FALSE, 0, 0, 1, 0)
			ON CONFLICT (symbol) DO NOTHING`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func downAddCurrencySystem(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`DROP TABLE IF EXISTS transactions`,
		`DROP TABLE IF EXISTS currencies`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
