package scheduler_jobs

import (
	"log"
	"time"

	"gorm.io/gorm"

	"terminusaOnline/models"
)

// Cleared gates stay closed for an hour before reopening.
const gateCooldown = time.Hour

// RegenerateGates reopens gates whose cooldown has elapsed and restores
// their beasts to full health.
func RegenerateGates(db *gorm.DB) error {
	cutoff := time.Now().UTC().Add(-gateCooldown)

	var gateIDs []uint
	result := db.Model(&models.Gate{}).
		Where("is_active = ? AND last_cleared_at IS NOT NULL AND last_cleared_at <= ?", false, cutoff).
		Pluck("id", &gateIDs)
	if result.Error != nil {
		return result.Error
	}
	if len(gateIDs) == 0 {
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Gate{}).
			Where("id IN ?", gateIDs).
			UpdateColumn("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		result = tx.Model(&models.MagicBeast{}).
			Where("gate_id IN ?", gateIDs).
			UpdateColumns(map[string]interface{}{
				"hp": gorm.Expr("max_hp"),
				"mp": gorm.Expr("max_mp"),
			})
		return result.Error
	})
	if err != nil {
		return err
	}
	log.Printf("Regenerated %d gates", len(gateIDs))
	return nil
}
