package migrationService

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// ErrAlreadyCurrent signals that the ledger already points at the requested
// target. Callers should treat it as a successful no-op.
var ErrAlreadyCurrent = errors.New("ledger already at requested revision")

// ChainError reports a revision chain that cannot be walked: duplicate
// identifiers, a missing predecessor, branches, or a cycle. No DDL has been
// executed when it is returned.
type ChainError struct {
	Revision string
	Reason   string
}

func (e *ChainError) Error() string {
	if e.Revision == "" {
		return fmt.Sprintf("broken revision chain: %s", e.Reason)
	}
	return fmt.Sprintf("broken revision chain at %q: %s", e.Revision, e.Reason)
}

// DDLError wraps a non-transient database error raised by a revision body.
// The ledger was not advanced for the failed revision.
type DDLError struct {
	Revision string
	Err      error
}

func (e *DDLError) Error() string {
	return fmt.Sprintf("revision %s failed: %v", e.Revision, e.Err)
}

func (e *DDLError) Unwrap() error { return e.Err }

// RetryExhaustedError reports that a revision kept hitting transient
// transaction errors past the attempt budget. The last error is attached.
type RetryExhaustedError struct {
	Revision string
	Attempts int
	Err      error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("revision %s still failing after %d attempts: %v", e.Revision, e.Attempts, e.Err)
}

func (e *RetryExhaustedError) Unwrap() error { return e.Err }

// isTransientTxError reports whether err means the current transaction is in
// an aborted state and a rollback-and-retry of the whole revision can
// succeed. Everything else is treated as fatal for the run.
func isTransientTxError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case "25P02": // in_failed_sql_transaction
			return true
		case "40001": // serialization_failure
			return true
		case "40P01": // deadlock_detected
			return true
		}
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "current transaction is aborted")
}
