package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типи бухгалтерських проводок за операціями з ОЗ.
const (
	EntryTypeReceipt      = "receipt"      // оприбуткування
	EntryTypeDepreciation = "depreciation" // нарахування амортизації
	EntryTypeDisposal     = "disposal"     // вибуття
	EntryTypeRevaluation  = "revaluation"  // переоцінка
	EntryTypeImprovement  = "improvement"  // поліпшення
	EntryTypeRepair       = "repair"       // ремонт
	EntryTypeTransfer     = "transfer"     // переміщення (довідкова)
)

// AccountEntry бухгалтерська проводка — append-only журнал.
// Ніколи не оновлюється і не видаляється; одна логічна операція може
// породити 1-3 проводки.
type AccountEntry struct {
	ID            string
	EntryType     string
	Date          time.Time
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
	Description   string
	AssetID       string
	DocumentNumber string
	DocumentDate   *time.Time
	IsPosted      bool
	CreatedBy     string
	CreatedAt     time.Time
}
