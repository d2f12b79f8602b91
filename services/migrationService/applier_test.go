package migrationService

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func newSpyDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// widgetsChain is a two-revision chain exercising create and drop bodies.
func widgetsChain(t *testing.T) *Chain {
	t.Helper()
	chain, err := BuildChain([]Revision{
		{
			Revision: "001_widgets",
			Upgrade: func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS widgets (id INT)")
				return err
			},
			Downgrade: func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS widgets")
				return err
			},
		},
		{
			Revision:     "002_gadgets",
			DownRevision: "001_widgets",
			Upgrade: func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS gadgets (id INT)")
				return err
			},
			Downgrade: func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS gadgets")
				return err
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return chain
}

func expectLedgerTableCheck(mock sqlmock.Sqlmock, exists bool) {
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM information_schema\.tables`).
		WithArgs("alembic_version").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))
}

func expectLedgerRead(mock sqlmock.Sqlmock, current string) {
	expectLedgerTableCheck(mock, true)
	mock.ExpectQuery(`SELECT version_num FROM "alembic_version"`).
		WillReturnRows(sqlmock.NewRows([]string{"version_num"}).AddRow(current))
}

func expectLedgerCreate(mock sqlmock.Sqlmock) {
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "alembic_version"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestUpgradeFromEmpty(t *testing.T) {
	db, mock := newSpyDB(t)
	applier := New(db, widgetsChain(t), WithLogger(quietLogger()))

	expectLedgerTableCheck(mock, false)
	expectLedgerCreate(mock)

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS widgets").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "alembic_version"`).
		WithArgs("001_widgets").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS gadgets").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "alembic_version" SET version_num`).
		WithArgs("002_gadgets", "001_widgets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := applier.Upgrade(context.Background(), Head); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestUpgradeAlreadyCurrent(t *testing.T) {
	db, mock := newSpyDB(t)
	applier := New(db, widgetsChain(t), WithLogger(quietLogger()))

	expectLedgerRead(mock, "002_gadgets")

	err := applier.Upgrade(context.Background(), Head)
	if !errors.Is(err, ErrAlreadyCurrent) {
		t.Errorf("expected ErrAlreadyCurrent, got %v", err)
	}
	// No DDL beyond the ledger read.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestUpgradeRetriesTransientError(t *testing.T) {
	db, mock := newSpyDB(t)
	applier := New(db, widgetsChain(t), WithLogger(quietLogger()))

	expectLedgerRead(mock, "001_widgets")
	expectLedgerCreate(mock)

	// Attempt 1 hits an aborted transaction and rolls back.
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS gadgets").
		WillReturnError(&pq.Error{Code: "25P02"})
	mock.ExpectRollback()

	// Attempt 2 succeeds.
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS gadgets").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "alembic_version" SET version_num`).
		WithArgs("002_gadgets", "001_widgets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := applier.Upgrade(context.Background(), "002_gadgets"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	// Ordered expectations prove exactly two attempts and one rollback.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestUpgradeRetryExhausted(t *testing.T) {
	db, mock := newSpyDB(t)
	applier := New(db, widgetsChain(t), WithLogger(quietLogger()))

	expectLedgerRead(mock, "001_widgets")
	expectLedgerCreate(mock)

	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS gadgets").
			WillReturnError(&pq.Error{Code: "25P02"})
		mock.ExpectRollback()
	}

	err := applier.Upgrade(context.Background(), Head)
	var exhausted *RetryExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected *RetryExhaustedError, got %v", err)
	}
	if exhausted.Attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", exhausted.Attempts)
	}
	if exhausted.Revision != "002_gadgets" {
		t.Errorf("expected revision 002_gadgets, got %s", exhausted.Revision)
	}
	// The ledger write never happened: no UPDATE was expected or sent.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestUpgradeFatalErrorDoesNotRetry(t *testing.T) {
	db, mock := newSpyDB(t)
	applier := New(db, widgetsChain(t), WithLogger(quietLogger()))

	expectLedgerRead(mock, "001_widgets")
	expectLedgerCreate(mock)

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS gadgets").
		WillReturnError(&pq.Error{Code: "42601"}) // syntax_error
	mock.ExpectRollback()

	err := applier.Upgrade(context.Background(), Head)
	var ddlErr *DDLError
	if !errors.As(err, &ddlErr) {
		t.Fatalf("expected *DDLError, got %v", err)
	}
	if ddlErr.Revision != "002_gadgets" {
		t.Errorf("expected revision 002_gadgets, got %s", ddlErr.Revision)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestDowngradeToRevision(t *testing.T) {
	db, mock := newSpyDB(t)
	applier := New(db, widgetsChain(t), WithLogger(quietLogger()))

	expectLedgerRead(mock, "002_gadgets")

	mock.ExpectBegin()
	mock.ExpectExec("DROP TABLE IF EXISTS gadgets").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "alembic_version" SET version_num`).
		WithArgs("001_widgets", "002_gadgets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := applier.Downgrade(context.Background(), "001_widgets"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestDowngradeToBaseClearsLedger(t *testing.T) {
	db, mock := newSpyDB(t)
	applier := New(db, widgetsChain(t), WithLogger(quietLogger()))

	expectLedgerRead(mock, "001_widgets")

	mock.ExpectBegin()
	mock.ExpectExec("DROP TABLE IF EXISTS widgets").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "alembic_version" WHERE version_num`).
		WithArgs("001_widgets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := applier.Downgrade(context.Background(), Base); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestDuplicateIdentifierSendsNoDDL(t *testing.T) {
	db, mock := newSpyDB(t)

	_, err := BuildChain([]Revision{
		rev("001", ""),
		rev("002", "001"),
		rev("002", "001"),
	})
	var chainErr *ChainError
	if !errors.As(err, &chainErr) {
		t.Fatalf("expected *ChainError, got %v", err)
	}

	// The spy connection saw no statements at all.
	_ = db
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("statements were sent to the connection: %v", err)
	}
}

func TestCurrentWithoutLedgerTable(t *testing.T) {
	db, mock := newSpyDB(t)
	applier := New(db, widgetsChain(t), WithLogger(quietLogger()))

	expectLedgerTableCheck(mock, false)

	current, err := applier.Current(context.Background())
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if current != "" {
		t.Errorf("expected empty current revision, got %q", current)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}
