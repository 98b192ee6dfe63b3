package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

// PeriodTotal підсумок нарахувань за період.
type PeriodTotal struct {
	PeriodYear  int
	PeriodMonth int
	RecordCount int
	TotalAmount decimal.Decimal
}

// DepreciationRecordRepository порт персистентності для DepreciationRecord.
// Унікальність (asset_id, period_year, period_month) гарантує сховище;
// Create повертає domain.ErrPeriodAlreadyAccrued при порушенні.
type DepreciationRecordRepository interface {
	Create(ctx context.Context, rec *entity.DepreciationRecord) error
	Exists(ctx context.Context, assetID string, year, month int) (bool, error)
	ListByAsset(ctx context.Context, assetID string, limit, offset int) ([]*entity.DepreciationRecord, error)
	ListByPeriod(ctx context.Context, year, month int) ([]*entity.DepreciationRecord, error)
	// PeriodTotals підсумки за періодами у зворотному хронологічному порядку.
	PeriodTotals(ctx context.Context, limit int) ([]PeriodTotal, error)
}
