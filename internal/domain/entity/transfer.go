package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetTransfer внутрішнє переміщення основних засобів між місцями
// зберігання / МВО. Вартісні показники не змінює.
type AssetTransfer struct {
	ID                    string
	DocumentNumber        string
	DocumentDate          time.Time
	FromLocationID        string
	ToLocationID          string
	ToResponsiblePersonID string // може бути порожнім
	Notes                 string
	CreatedBy             string
	CreatedAt             time.Time
	Items                 []AssetTransferItem
}

// AssetTransferItem рядок переміщення зі знімком балансової вартості ОЗ
// на момент переміщення.
type AssetTransferItem struct {
	ID         string
	TransferID string
	AssetID    string
	BookValue  decimal.Decimal
}
