package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типи вибуття основного засобу.
const (
	DisposalTypeSale         = "sale"          // продаж
	DisposalTypeLiquidation  = "liquidation"   // ліквідація
	DisposalTypeFreeTransfer = "free_transfer" // безоплатна передача
	DisposalTypeShortage     = "shortage"      // нестача
	DisposalTypeOther        = "other"
)

// ValidDisposalType перевіряє тип вибуття.
func ValidDisposalType(t string) bool {
	switch t {
	case DisposalTypeSale, DisposalTypeLiquidation, DisposalTypeFreeTransfer,
		DisposalTypeShortage, DisposalTypeOther:
		return true
	}
	return false
}

// AssetDisposal вибуття основного засобу: незмінний знімок вартісних
// показників на дату вибуття. Не більше одного на ОЗ.
type AssetDisposal struct {
	ID                                string
	AssetID                           string
	DisposalType                      string
	DocumentNumber                    string
	DocumentDate                      time.Time
	Reason                            string
	SaleAmount                        decimal.Decimal // заповнюється при продажу
	BookValueAtDisposal               decimal.Decimal
	AccumulatedDepreciationAtDisposal decimal.Decimal
	Notes                             string
	CreatedBy                         string
	CreatedAt                         time.Time
}
