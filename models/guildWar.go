package models

import "time"

type WarStatus string

const (
	WarPending     WarStatus = "pending"
	WarPreparation WarStatus = "preparation"
	WarActive      WarStatus = "active"
	WarCompleted   WarStatus = "completed"
	WarCancelled   WarStatus = "cancelled"
)

type GuildWar struct {
	ID           uint      `gorm:"primaryKey"`
	ChallengerID uint
	TargetID     uint
	Status       WarStatus `gorm:"type:warstatus; default:'pending'"`
	StartTime    time.Time
	EndTime      time.Time
	WinnerID     *uint
	Participants []byte    `gorm:"type:jsonb; default:'{}'"`
	Scores       []byte    `gorm:"type:jsonb; default:'{}'"`
	Rewards      []byte    `gorm:"type:jsonb; default:'{}'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type WarTerritory struct {
	ID           uint   `gorm:"primaryKey"`
	WarID        uint
	Type         string `gorm:"size:20"`
	Status       string `gorm:"size:20; default:'neutral'"`
	ControllerID *uint
}

type WarEvent struct {
	ID         uint      `gorm:"primaryKey"`
	WarID      uint
	Type       string    `gorm:"size:50"`
	Payload    []byte    `gorm:"type:jsonb; default:'{}'"`
	OccurredAt time.Time `gorm:"autoCreateTime"`
}
