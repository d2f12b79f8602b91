package migrations

import (
	"context"
	"database/sql"

	"terminusaOnline/services/migrationService"
)

var addUserStatsColumns = migrationService.Revision{
	Revision:     "008_add_user_stats_columns",
	DownRevision: "007_add_missing_user_columns",
	Upgrade:      upAddUserStatsColumns,
	Downgrade:    downAddUserStatsColumns,
}

var userStatsColumns = []struct {
	name, colType, def string
}{
	{"total_gates_cleared", "INTEGER NOT NULL", "0"},
	{"total_quests_completed", "INTEGER NOT NULL", "0"},
	{"total_crystals_earned", "BIGINT NOT NULL", "0"},
	{"monsters_slain", "BIGINT NOT NULL", "0"},
	{"deaths", "INTEGER NOT NULL", "0"},
}

func upAddUserStatsColumns(ctx context.Context, tx *sql.Tx) error {
	for _, col := range userStatsColumns {
		if _, err := migrationService.EnsureColumn(ctx, tx, "users", col.name, col.colType, col.def); err != nil {
			return err
		}
	}
	return nil
}

func downAddUserStatsColumns(ctx context.Context, tx *sql.Tx) error {
	for _, col := range userStatsColumns {
		if _, err := tx.ExecContext(ctx, `ALTER TABLE users DROP COLUMN IF EXISTS `+col.name); err != nil {
			return err
		}
	}
	return nil
}
