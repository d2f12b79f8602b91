package models

type ItemRarity string

const (
	RarityCommon    ItemRarity = "Common"
	RarityUncommon  ItemRarity = "Uncommon"
	RarityRare      ItemRarity = "Rare"
	RarityEpic      ItemRarity = "Epic"
	RarityLegendary ItemRarity = "Legendary"
	RarityImmortal  ItemRarity = "Immortal"
)

type Item struct {
	ID               uint        `gorm:"primaryKey"`
	Name             string      `gorm:"size:100"`
	Description      *string
	Type             *string     `gorm:"size:50"`
	Rarity           *ItemRarity `gorm:"type:itemrarity"`
	LevelRequirement int         `gorm:"default:1"`
	PriceCrystals    *int
	PriceExons       *float64
	IsTradeable      bool        `gorm:"default:true"`
}

type InventoryItem struct {
	ID         uint `gorm:"primaryKey"`
	UserID     *uint
	ItemID     *uint
	Quantity   int  `gorm:"default:1"`
	Durability int  `gorm:"default:100"`
	IsEquipped bool
}
