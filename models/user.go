package models

import "time"

type HunterClass string

const (
	HunterClassF HunterClass = "F"
	HunterClassE HunterClass = "E"
	HunterClassD HunterClass = "D"
	HunterClassC HunterClass = "C"
	HunterClassB HunterClass = "B"
	HunterClassA HunterClass = "A"
	HunterClassS HunterClass = "S"
)

type JobClass string

const (
	JobFighter  JobClass = "Fighter"
	JobMage     JobClass = "Mage"
	JobAssassin JobClass = "Assassin"
	JobArcher   JobClass = "Archer"
	JobHealer   JobClass = "Healer"
)

type HealthStatus string

const (
	HealthNormal      HealthStatus = "Normal"
	HealthBurned      HealthStatus = "Burned"
	HealthPoisoned    HealthStatus = "Poisoned"
	HealthFrozen      HealthStatus = "Frozen"
	HealthFeared      HealthStatus = "Feared"
	HealthConfused    HealthStatus = "Confused"
	HealthDismembered HealthStatus = "Dismembered"
	HealthDecapitated HealthStatus = "Decapitated"
	HealthShadow      HealthStatus = "Shadow"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex; size:20"`
	Email        string `gorm:"uniqueIndex; size:255"`
	PasswordHash *string
	Salt         *string
	IsActive     bool   `gorm:"default:true"`
	IsAdmin      bool
	IsBanned     bool
	BanReason    *string
	BanExpires   *time.Time

	Level          int          `gorm:"default:1"`
	Exp            int64        `gorm:"default:0"`
	HunterClass    HunterClass  `gorm:"type:hunterclass; default:'F'"`
	JobClass       *JobClass    `gorm:"type:jobclass"`
	JobLevel       int          `gorm:"default:1"`
	Strength       int          `gorm:"default:10"`
	Agility        int          `gorm:"default:10"`
	Intelligence   int          `gorm:"default:10"`
	Vitality       int          `gorm:"default:10"`
	Luck           int          `gorm:"default:10"`
	HP             int          `gorm:"column:hp; default:100"`
	MaxHP          int          `gorm:"column:max_hp; default:100"`
	MP             int          `gorm:"column:mp; default:100"`
	MaxMP          int          `gorm:"column:max_mp; default:100"`
	HealthStatus   HealthStatus `gorm:"type:healthstatus; default:'Normal'"`
	IsInGate       bool
	IsInParty      bool
	InventorySlots int          `gorm:"default:20"`

	Web3Wallet    *string `gorm:"size:64"`
	SolanaBalance float64 `gorm:"default:0"`
	ExonsBalance  float64 `gorm:"default:0"`
	Crystals      int64   `gorm:"default:100"`

	GuildID   *uint
	GuildRank *string `gorm:"size:20"`
	PartyID   *uint

	TotalGatesCleared    int   `gorm:"default:0"`
	TotalQuestsCompleted int   `gorm:"default:0"`
	TotalCrystalsEarned  int64 `gorm:"default:0"`
	MonstersSlain        int64 `gorm:"default:0"`
	Deaths               int   `gorm:"default:0"`

	LastLogin      *time.Time
	LastDailyReset *time.Time
	IsOnline       bool
	LastSeen       *time.Time
	RegisteredAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}
