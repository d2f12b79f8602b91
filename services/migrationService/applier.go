package migrationService

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/lib/pq"
)

// Targets accepted by Upgrade and Downgrade in place of a revision identifier.
const (
	Head = "head"
	Base = "base"
)

const (
	defaultLedgerTable = "alembic_version"
	defaultMaxAttempts = 3
)

// Applier walks a revision chain against a live database, recording the
// current revision in a single-row ledger table. It assumes exclusive access
// to the database for the duration of a run.
type Applier struct {
	db          *sql.DB
	chain       *Chain
	ledgerTable string
	maxAttempts int
	log         *log.Logger
}

type Option func(*Applier)

// WithLedgerTable overrides the ledger table name.
func WithLedgerTable(name string) Option {
	return func(a *Applier) { a.ledgerTable = name }
}

// WithMaxAttempts overrides the per-revision attempt budget.
func WithMaxAttempts(n int) Option {
	return func(a *Applier) {
		if n > 0 {
			a.maxAttempts = n
		}
	}
}

// WithLogger overrides the destination for progress output.
func WithLogger(l *log.Logger) Option {
	return func(a *Applier) { a.log = l }
}

func New(db *sql.DB, chain *Chain, opts ...Option) *Applier {
	a := &Applier{
		db:          db,
		chain:       chain,
		ledgerTable: defaultLedgerTable,
		maxAttempts: defaultMaxAttempts,
		log:         log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Current reads the ledger. It returns the empty string when no revision has
// been applied yet (missing ledger table or empty table).
func (a *Applier) Current(ctx context.Context) (string, error) {
	has, err := HasTable(ctx, a.db, a.ledgerTable)
	if err != nil {
		return "", fmt.Errorf("check ledger table: %w", err)
	}
	if !has {
		return "", nil
	}
	var current string
	row := a.db.QueryRowContext(ctx, fmt.Sprintf("SELECT version_num FROM %s", pq.QuoteIdentifier(a.ledgerTable)))
	if err := row.Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("read ledger: %w", err)
	}
	return current, nil
}

// Upgrade applies every revision between the ledger's current value
// (exclusive) and target (inclusive), in chain order. Head selects the newest
// revision. Returns ErrAlreadyCurrent when there is nothing to do.
func (a *Applier) Upgrade(ctx context.Context, target string) error {
	if target == Head {
		target = a.chain.Head()
	}
	current, err := a.Current(ctx)
	if err != nil {
		return err
	}
	if current == target {
		return ErrAlreadyCurrent
	}
	path, err := a.chain.pathUp(current, target)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return ErrAlreadyCurrent
	}
	if err := a.ensureLedgerTable(ctx); err != nil {
		return err
	}
	for _, rev := range path {
		a.log.Printf("migrations: upgrading %s -> %s", orBase(current), rev.Revision)
		if err := a.applyRevision(ctx, rev, rev.Upgrade, current, rev.Revision); err != nil {
			return err
		}
		current = rev.Revision
	}
	return nil
}

// Downgrade reverts revisions from the ledger's current value down to, but
// excluding, target. Base reverts everything, leaving an empty ledger.
func (a *Applier) Downgrade(ctx context.Context, target string) error {
	if target == Base {
		target = ""
	}
	current, err := a.Current(ctx)
	if err != nil {
		return err
	}
	if current == target || (current == "" && target == "") {
		return ErrAlreadyCurrent
	}
	path, err := a.chain.pathDown(current, target)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return ErrAlreadyCurrent
	}
	for _, rev := range path {
		a.log.Printf("migrations: downgrading %s -> %s", rev.Revision, orBase(rev.DownRevision))
		if err := a.applyRevision(ctx, rev, rev.Downgrade, rev.Revision, rev.DownRevision); err != nil {
			return err
		}
	}
	return nil
}

// applyRevision runs one direction of one revision inside its own
// transaction, retrying from the top after a rollback when the database
// reports the transaction as aborted. The ledger row moves from -> to in the
// same transaction, so a revision is only ever recorded once its body
// completed.
func (a *Applier) applyRevision(ctx context.Context, rev Revision, body MigrateFunc, from, to string) error {
	var lastErr error
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		err := a.runInTx(ctx, body, from, to)
		if err == nil {
			return nil
		}
		if !isTransientTxError(err) {
			return &DDLError{Revision: rev.Revision, Err: err}
		}
		lastErr = err
		a.log.Printf("migrations: revision %s attempt %d/%d rolled back: %v", rev.Revision, attempt, a.maxAttempts, err)
	}
	return &RetryExhaustedError{Revision: rev.Revision, Attempts: a.maxAttempts, Err: lastErr}
}

func (a *Applier) runInTx(ctx context.Context, body MigrateFunc, from, to string) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if body != nil {
		if err := body(ctx, tx); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err := a.writeLedger(ctx, tx, from, to); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (a *Applier) ensureLedgerTable(ctx context.Context) error {
	stmt := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (version_num VARCHAR(128) NOT NULL PRIMARY KEY)",
		pq.QuoteIdentifier(a.ledgerTable),
	)
	if _, err := a.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("ensure ledger table: %w", err)
	}
	return nil
}

func (a *Applier) writeLedger(ctx context.Context, tx *sql.Tx, from, to string) error {
	table := pq.QuoteIdentifier(a.ledgerTable)
	switch {
	case to == "":
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE version_num = $1", table), from); err != nil {
			return fmt.Errorf("clear ledger: %w", err)
		}
	case from == "":
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("INSERT INTO %s (version_num) VALUES ($1)", table), to); err != nil {
			return fmt.Errorf("seed ledger: %w", err)
		}
	default:
		res, err := tx.ExecContext(ctx, fmt.Sprintf("UPDATE %s SET version_num = $1 WHERE version_num = $2", table), to, from)
		if err != nil {
			return fmt.Errorf("advance ledger: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("advance ledger: %w", err)
		}
		if affected != 1 {
			return fmt.Errorf("advance ledger: expected row at %s, found none", from)
		}
	}
	return nil
}

func orBase(id string) string {
	if id == "" {
		return "(base)"
	}
	return id
}
