package migrationService

import (
	"context"
	"database/sql"
)

// MigrateFunc is one direction of a revision, executed inside a single
// transaction. Bodies must stay re-runnable: a retry re-executes the whole
// function, so every statement needs its own IF EXISTS / IF NOT EXISTS guard.
type MigrateFunc func(ctx context.Context, tx *sql.Tx) error

// Revision is one schema-change unit. DownRevision names its predecessor;
// the empty string marks the base of the chain.
type Revision struct {
	Revision     string
	DownRevision string
	Upgrade      MigrateFunc
	Downgrade    MigrateFunc
}

// Chain is a validated revision chain, ordered base first.
type Chain struct {
	ordered []Revision
	index   map[string]int
}

// BuildChain validates that the given revisions form a single linear chain
// from one base (empty DownRevision) to one head. Duplicate identifiers,
// unknown predecessors, branches, and cycles are configuration errors
// reported before any DDL runs.
func BuildChain(revisions []Revision) (*Chain, error) {
	if len(revisions) == 0 {
		return nil, &ChainError{Reason: "no revisions defined"}
	}

	byID := make(map[string]Revision, len(revisions))
	for _, rev := range revisions {
		if rev.Revision == "" {
			return nil, &ChainError{Reason: "revision with empty identifier"}
		}
		if _, dup := byID[rev.Revision]; dup {
			return nil, &ChainError{Revision: rev.Revision, Reason: "duplicate revision identifier"}
		}
		byID[rev.Revision] = rev
	}

	var base string
	children := make(map[string]string, len(revisions))
	for _, rev := range revisions {
		if rev.DownRevision == "" {
			if base != "" {
				return nil, &ChainError{Revision: rev.Revision, Reason: "more than one base revision"}
			}
			base = rev.Revision
			continue
		}
		if _, ok := byID[rev.DownRevision]; !ok {
			return nil, &ChainError{Revision: rev.Revision, Reason: "down revision " + rev.DownRevision + " does not exist"}
		}
		if prev, taken := children[rev.DownRevision]; taken {
			return nil, &ChainError{Revision: rev.Revision, Reason: "revisions " + prev + " and " + rev.Revision + " both follow " + rev.DownRevision}
		}
		children[rev.DownRevision] = rev.Revision
	}
	if base == "" {
		return nil, &ChainError{Reason: "no base revision (cycle or missing root)"}
	}

	chain := &Chain{
		ordered: make([]Revision, 0, len(revisions)),
		index:   make(map[string]int, len(revisions)),
	}
	for id := base; id != ""; id = children[id] {
		chain.index[id] = len(chain.ordered)
		chain.ordered = append(chain.ordered, byID[id])
	}
	if len(chain.ordered) != len(revisions) {
		return nil, &ChainError{Reason: "revisions unreachable from base (cycle)"}
	}
	return chain, nil
}

// Head returns the identifier of the newest revision.
func (c *Chain) Head() string {
	return c.ordered[len(c.ordered)-1].Revision
}

// Base returns the identifier of the oldest revision.
func (c *Chain) Base() string {
	return c.ordered[0].Revision
}

// Contains reports whether id names a revision in the chain.
func (c *Chain) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Revisions returns the chain in apply order, base first.
func (c *Chain) Revisions() []Revision {
	out := make([]Revision, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// pathUp returns the revisions strictly after current up to and including
// target, in apply order. current == "" means nothing is applied yet.
func (c *Chain) pathUp(current, target string) ([]Revision, error) {
	start := 0
	if current != "" {
		idx, ok := c.index[current]
		if !ok {
			return nil, &ChainError{Revision: current, Reason: "ledger revision not in chain"}
		}
		start = idx + 1
	}
	end, ok := c.index[target]
	if !ok {
		return nil, &ChainError{Revision: target, Reason: "target revision not in chain"}
	}
	if end < start-1 {
		return nil, &ChainError{Revision: target, Reason: "target is older than the current revision; use a downgrade"}
	}
	return c.ordered[start : end+1], nil
}

// pathDown returns the revisions from current down to, but excluding, target,
// newest first. target == "" rolls back past the base.
func (c *Chain) pathDown(current, target string) ([]Revision, error) {
	if current == "" {
		return nil, nil
	}
	start, ok := c.index[current]
	if !ok {
		return nil, &ChainError{Revision: current, Reason: "ledger revision not in chain"}
	}
	end := -1
	if target != "" {
		idx, ok := c.index[target]
		if !ok {
			return nil, &ChainError{Revision: target, Reason: "target revision not in chain"}
		}
		if idx > start {
			return nil, &ChainError{Revision: target, Reason: "target is newer than the current revision; use an upgrade"}
		}
		end = idx
	}
	path := make([]Revision, 0, start-end)
	for i := start; i > end; i-- {
		path = append(path, c.ordered[i])
	}
	return path, nil
}
