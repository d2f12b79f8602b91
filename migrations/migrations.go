// Package migrations holds the canonical revision chain for the Terminusa
// Online schema. Revisions are listed explicitly; there is no init-time
// registry, so the chain a process runs with is exactly the chain it links.
package migrations

import (
	"terminusaOnline/services/migrationService"
)

// All returns every revision in authoring order, base first.
func All() []migrationService.Revision {
	return []migrationService.Revision{
		initialSchema,
		addGates,
		addAnnouncements,
		addWeb3Wallets,
		addGameModels,
		addPasswordHash,
		addMissingUserColumns,
		addUserStatsColumns,
		makeCredentialsNullable,
		updateAnnouncements,
		addQuests,
		addCurrencySystem,
		addMountPetTables,
		addGuildWarTables,
	}
}

// Chain validates and orders the revisions.
func Chain() (*migrationService.Chain, error) {
	return migrationService.BuildChain(All())
}
