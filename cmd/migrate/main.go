package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"terminusaOnline/config"
	"terminusaOnline/migrations"
	"terminusaOnline/services/common"
	"terminusaOnline/services/migrationService"
)

const usage = `usage: migrate <command> [revision]

commands:
  up [revision]    apply pending revisions up to revision (default: head)
  down <revision>  roll back to revision ("base" reverts everything)
  current          print the ledger's current revision`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	sqlDB, err := common.OpenSQL(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer sqlDB.Close()

	chain, err := migrations.Chain()
	if err != nil {
		log.Fatalf("Invalid migration chain: %v", err)
	}
	applier := migrationService.New(sqlDB, chain, migrationService.WithLedgerTable(cfg.LedgerTable))
	ctx := context.Background()

	switch os.Args[1] {
	case "up":
		target := migrationService.Head
		if len(os.Args) > 2 {
			target = os.Args[2]
		}
		report(applier, ctx, applier.Upgrade(ctx, target))
	case "down":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		report(applier, ctx, applier.Downgrade(ctx, os.Args[2]))
	case "current":
		current, err := applier.Current(ctx)
		if err != nil {
			log.Fatalf("Error reading ledger: %v", err)
		}
		if current == "" {
			fmt.Println("(base)")
		} else {
			fmt.Println(current)
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

// report prints the outcome and exits non-zero on real failures, including
// the last known-good ledger value so an operator can decide what to do.
func report(applier *migrationService.Applier, ctx context.Context, err error) {
	switch {
	case err == nil:
		current, _ := applier.Current(ctx)
		fmt.Printf("ok, ledger at %s\n", orBase(current))
	case errors.Is(err, migrationService.ErrAlreadyCurrent):
		fmt.Println("nothing to do")
	default:
		current, readErr := applier.Current(ctx)
		if readErr != nil {
			log.Fatalf("Error: %v (ledger unreadable: %v)", err, readErr)
		}
		log.Fatalf("Error: %v (ledger at %s)", err, orBase(current))
	}
}

func orBase(id string) string {
	if id == "" {
		return "(base)"
	}
	return id
}
