package migrations

import (
	"context"
	"database/sql"

	"terminusaOnline/services/migrationService"
)

var addGameModels = migrationService.Revision{
	Revision:     "005_add_game_models",
	DownRevision: "004_add_web3_wallets",
	Upgrade:      upAddGameModels,
	Downgrade:    downAddGameModels,
}

func upAddGameModels(ctx context.Context, tx *sql.Tx) error {
	enums := []struct {
		name   string
		values []string
	}{
		{"hunterclass", []string{"F", "E", "D", "C", "B", "A", "S"}},
		{"jobclass", []string{"Fighter", "Mage", "Assassin", "Archer", "Healer"}},
		{"itemrarity", []string{"Common", "Uncommon", "Rare", "Epic", "Legendary", "Immortal"}},
		{"mountpetrarity", []string{"Basic", "Intermediate", "Excellent", "Legendary", "Immortal"}},
		{"healthstatus", []string{"Normal", "Burned", "Poisoned", "Frozen", "Feared", "Confused", "Dismembered", "Decapitated", "Shadow"}},
	}
	for _, e := range enums {
		if _, err := migrationService.EnsureEnumType(ctx, tx, e.name, e.values); err != nil {
			return err
		}
	}

	userCols := []struct {
		name, colType, def string
	}{
		{"level", "INTEGER NOT NULL", "1"},
		{"exp", "BIGINT NOT NULL", "0"},
		{"hunter_class", "hunterclass NOT NULL", "'F'"},
		{"job_class", "jobclass", ""},
		{"job_level", "INTEGER NOT NULL", "1"},
		{"strength", "INTEGER NOT NULL", "10"},
		{"agility", "INTEGER NOT NULL", "10"},
		{"intelligence", "INTEGER NOT NULL", "10"},
		{"vitality", "INTEGER NOT NULL", "10"},
		{"luck", "INTEGER NOT NULL", "10"},
		{"hp", "INTEGER NOT NULL", "100"},
		{"max_hp", "INTEGER NOT NULL", "100"},
		{"mp", "INTEGER NOT NULL", "100"},
		{"max_mp", "INTEGER NOT NULL", "100"},
		{"health_status", "healthstatus NOT NULL", "'Normal'"},
		{"is_in_gate", "BOOLEAN NOT NULL", "FALSE"},
		{"is_in_party", "BOOLEAN NOT NULL", "FALSE"},
		{"inventory_slots", "INTEGER NOT NULL", "20"},
	}
	for _, col := range userCols {
		if _, err := migrationService.EnsureColumn(ctx, tx, "users", col.name, col.colType, col.def); err != nil {
			return err
		}
	}
	if _, err := migrationService.EnsureColumn(ctx, tx, "gates", "min_hunter_class", "hunterclass NOT NULL", "'F'"); err != nil {
		return err
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS parties (
			id SERIAL PRIMARY KEY,
			leader_id INTEGER REFERENCES users (id),
			gate_id INTEGER REFERENCES gates (id),
			is_in_combat BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description TEXT,
			type VARCHAR(50),
			rarity itemrarity,
			level_requirement INTEGER NOT NULL DEFAULT 1,
			price_crystals INTEGER,
			price_exons NUMERIC(18,9),
			is_tradeable BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS inventory_items (
			id SERIAL PRIMARY KEY,
			user_id INTEGER REFERENCES users (id),
			item_id INTEGER REFERENCES items (id),
			quantity INTEGER NOT NULL DEFAULT 1,
			durability INTEGER NOT NULL DEFAULT 100,
			is_equipped BOOLEAN NOT NULL DEFAULT FALSE
		)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	_, err := migrationService.EnsureColumn(ctx, tx, "users", "party_id", "INTEGER REFERENCES parties (id)", "")
	return err
}

func downAddGameModels(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`ALTER TABLE users DROP COLUMN IF EXISTS party_id`,
		`DROP TABLE IF EXISTS inventory_items`,
		`DROP TABLE IF EXISTS items`,
		`DROP TABLE IF EXISTS parties`,
		`ALTER TABLE gates DROP COLUMN IF EXISTS min_hunter_class`,
	}
	for _, col := range []string{
		"level", "exp", "hunter_class", "job_class", "job_level",
		"strength", "agility", "intelligence", "vitality", "luck",
		"hp", "max_hp", "mp", "max_mp", "health_status",
		"is_in_gate", "is_in_party", "inventory_slots",
	} {
		stmts = append(stmts, `ALTER TABLE users DROP COLUMN IF EXISTS `+col)
	}
	for _, enum := range []string{"healthstatus", "mountpetrarity", "itemrarity", "jobclass", "hunterclass"} {
		stmts = append(stmts, `DROP TYPE IF EXISTS `+enum)
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
