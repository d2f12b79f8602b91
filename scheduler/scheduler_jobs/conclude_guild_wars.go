package scheduler_jobs

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"terminusaOnline/models"
)

// ConcludeGuildWars finishes active wars whose end time has passed, picking
// the winner from the recorded scores.
func ConcludeGuildWars(db *gorm.DB) error {
	var wars []models.GuildWar
	result := db.
		Where("status = ? AND end_time <= ?", models.WarActive, time.Now().UTC()).
		Find(&wars)
	if result.Error != nil {
		return result.Error
	}

	for _, war := range wars {
		winnerID, err := DecideWarWinner(war.Scores, war.ChallengerID, war.TargetID)
		if err != nil {
			log.Printf("Error scoring war %d: %v", war.ID, err)
			continue
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			updates := map[string]interface{}{"status": models.WarCompleted}
			if winnerID != nil {
				updates["winner_id"] = *winnerID
			}
			result := tx.Model(&models.GuildWar{}).Where("id = ?", war.ID).UpdateColumns(updates)
			if result.Error != nil {
				return result.Error
			}

			payload, err := json.Marshal(map[string]interface{}{"winner_id": winnerID})
			if err != nil {
				return err
			}
			event := models.WarEvent{WarID: war.ID, Type: "concluded", Payload: payload}
			return tx.Create(&event).Error
		})
		if err != nil {
			log.Printf("Error concluding war %d: %v", war.ID, err)
			continue
		}
		log.Printf("Concluded guild war %d", war.ID)
	}
	return nil
}

// DecideWarWinner compares the two guilds' scores. A nil result means a draw.
// Scores are stored as a JSON object keyed by guild id.
func DecideWarWinner(scores []byte, challengerID, targetID uint) (*uint, error) {
	parsed := map[string]int64{}
	if len(scores) > 0 {
		if err := json.Unmarshal(scores, &parsed); err != nil {
			return nil, fmt.Errorf("parse war scores: %w", err)
		}
	}
	challengerScore := parsed[strconv.FormatUint(uint64(challengerID), 10)]
	targetScore := parsed[strconv.FormatUint(uint64(targetID), 10)]

	switch {
	case challengerScore > targetScore:
		return &challengerID, nil
	case targetScore > challengerScore:
		return &targetID, nil
	default:
		return nil, nil
	}
}
