package models

import "time"

type Guild struct {
	ID                  uint    `gorm:"primaryKey"`
	Name                string  `gorm:"uniqueIndex; size:50"`
	Description         *string
	LeaderID            uint
	Level               int     `gorm:"default:1"`
	Experience          int64   `gorm:"default:0"`
	Reputation          int     `gorm:"default:0"`
	CrystalBalance      int64   `gorm:"default:0"`
	ExonBalance         float64 `gorm:"default:0"`
	CrystalTaxRate      int     `gorm:"default:0"`
	ExonTaxRate         int     `gorm:"default:0"`
	MaxMembers          int     `gorm:"default:50"`
	RecruitmentStatus   string  `gorm:"size:20; default:'open'"`
	MinLevelRequirement int     `gorm:"default:1"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
