package models

import "time"

type Currency struct {
	ID                uint    `gorm:"primaryKey"`
	Name              string  `gorm:"uniqueIndex; size:50"`
	Symbol            string  `gorm:"uniqueIndex; size:10"`
	IsCrypto          bool
	IsTradeable       bool    `gorm:"default:true"`
	TotalSupply       float64 `gorm:"default:0"`
	CirculatingSupply float64 `gorm:"default:0"`
	MaxSupply         *float64
	ExchangeRates     []byte  `gorm:"type:jsonb; default:'{}'"`
	MinTransaction    float64 `gorm:"default:0"`
	MaxTransaction    *float64
	TransferFee       float64 `gorm:"default:0"`
	SwapFee           float64 `gorm:"default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	LastRateUpdate    *time.Time
}

type TransactionKind string

const (
	TxTransfer TransactionKind = "transfer"
	TxSwap     TransactionKind = "swap"
	TxTax      TransactionKind = "tax"
	TxReward   TransactionKind = "reward"
)

type Transaction struct {
	ID             uint            `gorm:"primaryKey"`
	Reference      string          `gorm:"uniqueIndex; size:36"`
	UserID         *uint
	CounterpartyID *uint
	CurrencySymbol string          `gorm:"size:10"`
	Amount         float64
	Fee            float64         `gorm:"default:0"`
	Kind           TransactionKind `gorm:"size:20"`
	CreatedAt      time.Time
}
