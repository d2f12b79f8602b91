package models

import "time"

type MountType string

const (
	MountGround  MountType = "ground"
	MountFlying  MountType = "flying"
	MountAquatic MountType = "aquatic"
	MountHybrid  MountType = "hybrid"
)

type PetType string

const (
	PetCombat    PetType = "combat"
	PetUtility   PetType = "utility"
	PetGathering PetType = "gathering"
	PetSupport   PetType = "support"
)

type MountPetRarity string

const (
	MountPetBasic        MountPetRarity = "Basic"
	MountPetIntermediate MountPetRarity = "Intermediate"
	MountPetExcellent    MountPetRarity = "Excellent"
	MountPetLegendary    MountPetRarity = "Legendary"
	MountPetImmortal     MountPetRarity = "Immortal"
)

type Mount struct {
	ID             uint           `gorm:"primaryKey"`
	OwnerID        uint
	Name           string         `gorm:"size:50"`
	Type           MountType      `gorm:"type:mounttype"`
	Rarity         MountPetRarity `gorm:"type:mountpetrarity"`
	Level          int            `gorm:"default:1"`
	Experience     int64          `gorm:"default:0"`
	Stats          []byte         `gorm:"type:jsonb; default:'{}'"`
	Abilities      []byte         `gorm:"type:jsonb; default:'[]'"`
	IsActive       bool
	StaminaCurrent int            `gorm:"default:100"`
	IsTradeable    bool           `gorm:"default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Pet struct {
	ID          uint           `gorm:"primaryKey"`
	OwnerID     uint
	Name        string         `gorm:"size:50"`
	Type        PetType        `gorm:"type:pettype"`
	Rarity      MountPetRarity `gorm:"type:mountpetrarity"`
	Level       int            `gorm:"default:1"`
	Experience  int64          `gorm:"default:0"`
	Stats       []byte         `gorm:"type:jsonb; default:'{}'"`
	Abilities   []byte         `gorm:"type:jsonb; default:'[]'"`
	Loyalty     int            `gorm:"default:50"`
	IsActive    bool
	IsTradeable bool           `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
