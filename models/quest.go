package models

import "time"

type QuestType string

const (
	QuestMain  QuestType = "Main"
	QuestSide  QuestType = "Side"
	QuestGuild QuestType = "Guild"
	QuestDaily QuestType = "Daily"
	QuestEvent QuestType = "Event"
)

type QuestStatus string

const (
	QuestAvailable  QuestStatus = "Available"
	QuestInProgress QuestStatus = "In Progress"
	QuestCompleted  QuestStatus = "Completed"
	QuestFailed     QuestStatus = "Failed"
)

type Quest struct {
	ID               uint      `gorm:"primaryKey"`
	Name             string    `gorm:"size:100"`
	Description      *string
	QuestType        QuestType `gorm:"type:questtype"`
	Difficulty       int       `gorm:"default:1"`
	MinLevel         int       `gorm:"default:1"`
	RequiredItems    []byte    `gorm:"type:jsonb; default:'{}'"`
	RewardExperience int64     `gorm:"default:0"`
	RewardCrystals   int64     `gorm:"default:0"`
	RewardItems      []byte    `gorm:"type:jsonb; default:'{}'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type QuestProgress struct {
	ID          uint        `gorm:"primaryKey"`
	QuestID     *uint
	UserID      *uint
	Status      QuestStatus `gorm:"type:queststatus; default:'Available'"`
	Objectives  []byte      `gorm:"type:jsonb; default:'{}'"`
	StartedAt   *time.Time
	CompletedAt *time.Time
}

func (QuestProgress) TableName() string {
	return "quest_progress"
}
