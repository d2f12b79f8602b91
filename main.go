package main

import (
	"context"
	"errors"
	"log"

	"terminusaOnline/config"
	"terminusaOnline/migrations"
	"terminusaOnline/scheduler"
	"terminusaOnline/services/common"
	"terminusaOnline/services/migrationService"
)

func main() {
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
	if cfg.MigrateOnBoot {
		err := applier.Upgrade(ctx, migrationService.Head)
		switch {
		case errors.Is(err, migrationService.ErrAlreadyCurrent):
			log.Println("Schema already at head")
		case err != nil:
			current, _ := applier.Current(ctx)
			log.Fatalf("Error migrating database (ledger at %q): %v", current, err)
		}
	}

	db, err := common.OpenGorm(sqlDB)
	if err != nil {
		log.Fatalf("Error initializing ORM: %v", err)
	}

	scheduler.SetupCron(db)

	log.Println("Terminusa Online backend is running. Press CTRL+C to exit.")
	select {}
}
