package models

import "time"

type GateRank string

const (
	GateRankE       GateRank = "E"
	GateRankD       GateRank = "D"
	GateRankC       GateRank = "C"
	GateRankB       GateRank = "B"
	GateRankA       GateRank = "A"
	GateRankS       GateRank = "S"
	GateRankMonarch GateRank = "Monarch"
)

type Gate struct {
	ID               uint        `gorm:"primaryKey"`
	Name             string      `gorm:"size:100"`
	Rank             GateRank    `gorm:"type:gaterank"`
	Type             string      `gorm:"size:20; default:'normal'"`
	MinLevel         int         `gorm:"default:1"`
	MinHunterClass   HunterClass `gorm:"type:hunterclass; default:'F'"`
	CrystalRewardMin *int
	CrystalRewardMax *int
	IsActive         bool        `gorm:"default:true"`
	LastClearedAt    *time.Time
	CreatedAt        time.Time
}

type MagicBeast struct {
	ID            uint      `gorm:"primaryKey"`
	GateID        *uint
	Name          string    `gorm:"size:100"`
	Level         int       `gorm:"default:1"`
	Rank          *GateRank `gorm:"type:gaterank"`
	HP            *int      `gorm:"column:hp"`
	MaxHP         *int      `gorm:"column:max_hp"`
	MP            *int      `gorm:"column:mp"`
	MaxMP         *int      `gorm:"column:max_mp"`
	IsMonarch     bool
	IsShadow      bool
	ShadowOwnerID *uint
}
