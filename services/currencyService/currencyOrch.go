package currencyService

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"terminusaOnline/models"
)

// CrystalTax returns the guild's cut of a crystal transfer. Rates are whole
// percentage points.
func CrystalTax(amount int64, taxRate int) int64 {
	if taxRate <= 0 || amount <= 0 {
		return 0
	}
	return amount * int64(taxRate) / 100
}

// SwapOutput converts an amount through an exchange rate after deducting the
// percentage swap fee.
func SwapOutput(amount, rate, feePct float64) (out float64, fee float64) {
	fee = amount * feePct / 100
	return (amount - fee) * rate, fee
}

// TransferCrystals moves crystals between players. When the payer belongs to
// a guild, the guild's crystal tax is taken out of the transferred amount and
// credited to the guild balance.
func TransferCrystals(db *gorm.DB, fromID, toID uint, amount int64) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("transfer amount must be positive")
	}
	var tx *models.Transaction
	err := db.Transaction(func(dbtx *gorm.DB) error {
		var payer models.User
		if result := dbtx.First(&payer, fromID); result.Error != nil {
			return result.Error
		}
		if payer.Crystals < amount {
			return fmt.Errorf("user %d has %d crystals, needs %d", fromID, payer.Crystals, amount)
		}

		var tax int64
		if payer.GuildID != nil {
			var guild models.Guild
			if result := dbtx.First(&guild, *payer.GuildID); result.Error != nil {
				return result.Error
			}
			tax = CrystalTax(amount, guild.CrystalTaxRate)
			if tax > 0 {
				result := dbtx.Model(&models.Guild{}).
					Where("id = ?", guild.ID).
					UpdateColumn("crystal_balance", gorm.Expr("crystal_balance + ?", tax))
				if result.Error != nil {
					return result.Error
				}
			}
		}

		result := dbtx.Model(&models.User{}).
			Where("id = ?", fromID).
			UpdateColumn("crystals", gorm.Expr("crystals - ?", amount))
		if result.Error != nil {
			return result.Error
		}
		result = dbtx.Model(&models.User{}).
			Where("id = ?", toID).
			UpdateColumn("crystals", gorm.Expr("crystals + ?", amount-tax))
		if result.Error != nil {
			return result.Error
		}

		tx = &models.Transaction{
			Reference:      uuid.NewString(),
			UserID:         &fromID,
			CounterpartyID: &toID,
			CurrencySymbol: "CRYS",
			Amount:         float64(amount),
			Fee:            float64(tax),
			Kind:           models.TxTransfer,
		}
		return dbtx.Create(tx).Error
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// SwapCurrency exchanges one of the player's balances for another at the
// source currency's published rate, charging its swap fee.
func SwapCurrency(db *gorm.DB, userID uint, fromSymbol, toSymbol string, amount float64) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("swap amount must be positive")
	}
	var tx *models.Transaction
	err := db.Transaction(func(dbtx *gorm.DB) error {
		var from models.Currency
		if result := dbtx.Where("symbol = ?", fromSymbol).First(&from); result.Error != nil {
			return result.Error
		}
		if !from.IsTradeable {
			return fmt.Errorf("%s is not tradeable", fromSymbol)
		}
		if amount < from.MinTransaction {
			return fmt.Errorf("amount below minimum transaction for %s", fromSymbol)
		}

		rates := map[string]float64{}
		if len(from.ExchangeRates) > 0 {
			if err := json.Unmarshal(from.ExchangeRates, &rates); err != nil {
				return fmt.Errorf("exchange rates for %s: %w", fromSymbol, err)
			}
		}
		rate, ok := rates[toSymbol]
		if !ok || rate <= 0 {
			return fmt.Errorf("no exchange rate from %s to %s", fromSymbol, toSymbol)
		}
		out, fee := SwapOutput(amount, rate, from.SwapFee)

		if err := adjustBalance(dbtx, userID, fromSymbol, -amount); err != nil {
			return err
		}
		if err := adjustBalance(dbtx, userID, toSymbol, out); err != nil {
			return err
		}

		tx = &models.Transaction{
			Reference:      uuid.NewString(),
			UserID:         &userID,
			CurrencySymbol: fromSymbol,
			Amount:         amount,
			Fee:            fee,
			Kind:           models.TxSwap,
		}
		return dbtx.Create(tx).Error
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func adjustBalance(db *gorm.DB, userID uint, symbol string, delta float64) error {
	var column string
	switch symbol {
	case "SOL":
		column = "solana_balance"
	case "EXON":
		column = "exons_balance"
	case "CRYS":
		column = "crystals"
	default:
		return fmt.Errorf("unknown currency symbol %s", symbol)
	}
	result := db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %d not found", userID)
	}
	return nil
}
