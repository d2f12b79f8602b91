package migrationService

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Querier is the subset of *sql.DB / *sql.Tx the catalog helpers need, so
// the guards work both standalone and inside a revision body.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// HasTable reports whether a table exists in the current schema. The live
// catalog is consulted on every call; nothing is cached.
func HasTable(ctx context.Context, q Querier, table string) (bool, error) {
	var exists bool
	row := q.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1)",
		table,
	)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("has_table %s: %w", table, err)
	}
	return exists, nil
}

// HasColumn reports whether a column exists on a table in the current schema.
func HasColumn(ctx context.Context, q Querier, table, column string) (bool, error) {
	var exists bool
	row := q.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = $1 AND column_name = $2)",
		table, column,
	)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("has_column %s.%s: %w", table, column, err)
	}
	return exists, nil
}

// HasEnum reports whether an enumerated type exists in the current schema.
func HasEnum(ctx context.Context, q Querier, name string) (bool, error) {
	var exists bool
	row := q.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_type t JOIN pg_namespace n ON n.oid = t.typnamespace WHERE t.typtype = 'e' AND t.typname = $1 AND n.nspname = current_schema())",
		name,
	)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("has_enum %s: %w", name, err)
	}
	return exists, nil
}

// EnsureColumn adds a column when it is missing and reports whether it did.
// defaultExpr is a raw SQL expression ("0", "'F'", "now()"); empty means no
// default. Safe to call repeatedly with the same arguments.
func EnsureColumn(ctx context.Context, q Querier, table, column, colType, defaultExpr string) (bool, error) {
	has, err := HasColumn(ctx, q, table, column)
	if err != nil {
		return false, err
	}
	if has {
		return false, nil
	}
	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s",
		pq.QuoteIdentifier(table), pq.QuoteIdentifier(column), colType)
	if defaultExpr != "" {
		stmt += " DEFAULT " + defaultExpr
	}
	if _, err := q.ExecContext(ctx, stmt); err != nil {
		return false, fmt.Errorf("add column %s.%s: %w", table, column, err)
	}
	return true, nil
}

// EnsureEnumType creates an enumerated type when it is missing and reports
// whether it did. Existing types are left untouched even when their values
// differ; changing an enum needs its own revision.
func EnsureEnumType(ctx context.Context, q Querier, name string, values []string) (bool, error) {
	has, err := HasEnum(ctx, q, name)
	if err != nil {
		return false, err
	}
	if has {
		return false, nil
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = pq.QuoteLiteral(v)
	}
	stmt := fmt.Sprintf("CREATE TYPE %s AS ENUM (%s)", pq.QuoteIdentifier(name), strings.Join(quoted, ", "))
	if _, err := q.ExecContext(ctx, stmt); err != nil {
		return false, fmt.Errorf("create enum %s: %w", name, err)
	}
	return true, nil
}
