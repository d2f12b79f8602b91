package models

import "time"

type Party struct {
	ID         uint `gorm:"primaryKey"`
	LeaderID   *uint
	GateID     *uint
	IsInCombat bool
	CreatedAt  time.Time
}
