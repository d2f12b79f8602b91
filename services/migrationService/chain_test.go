package migrationService

import (
	"errors"
	"testing"
)

func rev(id, down string) Revision {
	return Revision{Revision: id, DownRevision: down}
}

func TestBuildChain(t *testing.T) {
	tests := []struct {
		name      string
		revisions []Revision
		wantErr   bool
		wantOrder []string
	}{
		{
			name:      "Valid linear chain",
			revisions: []Revision{rev("002", "001"), rev("001", ""), rev("003", "002")},
			wantOrder: []string{"001", "002", "003"},
		},
		{
			name:      "Single revision",
			revisions: []Revision{rev("001", "")},
			wantOrder: []string{"001"},
		},
		{
			name:      "Duplicate identifier",
			revisions: []Revision{rev("001", ""), rev("002", "001"), rev("002", "001")},
			wantErr:   true,
		},
		{
			name:      "Missing predecessor",
			revisions: []Revision{rev("001", ""), rev("003", "002")},
			wantErr:   true,
		},
		{
			name:      "Two bases",
			revisions: []Revision{rev("001", ""), rev("002", "")},
			wantErr:   true,
		},
		{
			name:      "Branch: two revisions follow the same predecessor",
			revisions: []Revision{rev("001", ""), rev("002a", "001"), rev("002b", "001")},
			wantErr:   true,
		},
		{
			name:      "Cycle with no base",
			revisions: []Revision{rev("001", "002"), rev("002", "001")},
			wantErr:   true,
		},
		{
			name:      "Empty chain",
			revisions: nil,
			wantErr:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chain, err := BuildChain(tc.revisions)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got chain %v", chain)
				}
				var chainErr *ChainError
				if !errors.As(err, &chainErr) {
					t.Errorf("expected *ChainError, got %T: %v", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := chain.Revisions()
			if len(got) != len(tc.wantOrder) {
				t.Fatalf("expected %d revisions, got %d", len(tc.wantOrder), len(got))
			}
			for i, id := range tc.wantOrder {
				if got[i].Revision != id {
					t.Errorf("position %d: expected %s, got %s", i, id, got[i].Revision)
				}
			}
			if chain.Base() != tc.wantOrder[0] {
				t.Errorf("expected base %s, got %s", tc.wantOrder[0], chain.Base())
			}
			if chain.Head() != tc.wantOrder[len(tc.wantOrder)-1] {
				t.Errorf("expected head %s, got %s", tc.wantOrder[len(tc.wantOrder)-1], chain.Head())
			}
		})
	}
}

func TestPathUp(t *testing.T) {
	chain, err := BuildChain([]Revision{rev("001", ""), rev("002", "001"), rev("003", "002")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("From empty to head", func(t *testing.T) {
		path, err := chain.pathUp("", "003")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(path) != 3 {
			t.Errorf("expected 3 revisions, got %d", len(path))
		}
	})

	t.Run("Partial path excludes current", func(t *testing.T) {
		path, err := chain.pathUp("001", "003")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(path) != 2 || path[0].Revision != "002" || path[1].Revision != "003" {
			t.Errorf("expected [002 003], got %v", path)
		}
	})

	t.Run("Target behind current is an error", func(t *testing.T) {
		if _, err := chain.pathUp("003", "001"); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("Ledger revision off the chain is an error", func(t *testing.T) {
		if _, err := chain.pathUp("999", "003"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestPathDown(t *testing.T) {
	chain, err := BuildChain([]Revision{rev("001", ""), rev("002", "001"), rev("003", "002")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Head to base reverses everything", func(t *testing.T) {
		path, err := chain.pathDown("003", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(path) != 3 || path[0].Revision != "003" || path[2].Revision != "001" {
			t.Errorf("expected [003 002 001], got %v", path)
		}
	})

	t.Run("Target revision stays applied", func(t *testing.T) {
		path, err := chain.pathDown("003", "001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(path) != 2 || path[0].Revision != "003" || path[1].Revision != "002" {
			t.Errorf("expected [003 002], got %v", path)
		}
	})

	t.Run("Target newer than current is an error", func(t *testing.T) {
		if _, err := chain.pathDown("001", "003"); err == nil {
			t.Error("expected error")
		}
	})
}
