package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типи надходження основного засобу.
const (
	ReceiptTypePurchase     = "purchase"     // придбання
	ReceiptTypeFreeReceipt  = "free_receipt" // безоплатне отримання
	ReceiptTypeContribution = "contribution" // внесок до статутного капіталу
	ReceiptTypeExchange     = "exchange"     // обмін
	ReceiptTypeSelfMade     = "self_made"    // виготовлення власними силами
	ReceiptTypeOther        = "other"
)

// ValidReceiptType перевіряє тип надходження.
func ValidReceiptType(t string) bool {
	switch t {
	case ReceiptTypePurchase, ReceiptTypeFreeReceipt, ReceiptTypeContribution,
		ReceiptTypeExchange, ReceiptTypeSelfMade, ReceiptTypeOther:
		return true
	}
	return false
}

// AssetReceipt оприбуткування основного засобу. Не більше одного на ОЗ;
// незмінний після створення.
type AssetReceipt struct {
	ID                     string
	AssetID                string
	ReceiptType            string
	DocumentNumber         string
	DocumentDate           time.Time
	Supplier               string
	SupplierOrganizationID string // може бути порожнім
	Amount                 decimal.Decimal
	Notes                  string
	CreatedBy              string
	CreatedAt              time.Time
}
