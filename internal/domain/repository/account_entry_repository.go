package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

// EntryFilter критерії вибірки проводок.
type EntryFilter struct {
	EntryType string
	AssetID   string
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
	Offset    int
}

// AccountTurnover оборот за рахунком у журналі проводок.
type AccountTurnover struct {
	Account string
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// AccountEntryRepository порт персистентності для AccountEntry.
// Журнал append-only: оновлення та видалення відсутні.
type AccountEntryRepository interface {
	Create(ctx context.Context, e *entity.AccountEntry) error
	CreateBatch(ctx context.Context, entries []entity.AccountEntry) error
	List(ctx context.Context, filter EntryFilter) ([]*entity.AccountEntry, int, error)
	ListByAsset(ctx context.Context, assetID string) ([]*entity.AccountEntry, error)
	// Turnovers обороти за рахунками за період — для журналу проводок.
	Turnovers(ctx context.Context, from, to *time.Time) ([]AccountTurnover, error)
}
