package scheduler_jobs

import (
	"log"

	"gorm.io/gorm"

	"terminusaOnline/models"
)

// ResetDailyQuests reopens completed daily quests so players can run them
// again.
func ResetDailyQuests(db *gorm.DB) error {
	dailyIDs := db.Model(&models.Quest{}).Select("id").Where("quest_type = ?", models.QuestDaily)

	result := db.Model(&models.QuestProgress{}).
		Where("quest_id IN (?)", dailyIDs).
		Where("status IN ?", []models.QuestStatus{models.QuestCompleted, models.QuestFailed}).
		UpdateColumns(map[string]interface{}{
			"status":       models.QuestAvailable,
			"objectives":   "{}",
			"started_at":   nil,
			"completed_at": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Reset %d daily quest entries", result.RowsAffected)
	}
	return nil
}
