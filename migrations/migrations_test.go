package migrations

import (
	"testing"
)

func TestChainIsLinear(t *testing.T) {
	chain, err := Chain()
	if err != nil {
		t.Fatalf("chain does not validate: %v", err)
	}

	revisions := chain.Revisions()
	if len(revisions) != len(All()) {
		t.Fatalf("expected %d revisions in order, got %d", len(All()), len(revisions))
	}

	if chain.Base() != "001_initial_schema" {
		t.Errorf("expected base 001_initial_schema, got %s", chain.Base())
	}
	if chain.Head() != "014_add_guild_war_tables" {
		t.Errorf("expected head 014_add_guild_war_tables, got %s", chain.Head())
	}

	for i, rev := range revisions {
		if rev.Upgrade == nil {
			t.Errorf("revision %s has no upgrade", rev.Revision)
		}
		if rev.Downgrade == nil {
			t.Errorf("revision %s has no downgrade", rev.Revision)
		}
		if i == 0 {
			if rev.DownRevision != "" {
				t.Errorf("base revision %s declares predecessor %s", rev.Revision, rev.DownRevision)
			}
			continue
		}
		if rev.DownRevision != revisions[i-1].Revision {
			t.Errorf("revision %s follows %s, expected %s", rev.Revision, rev.DownRevision, revisions[i-1].Revision)
		}
	}
}
