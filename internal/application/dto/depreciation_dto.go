package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

// AccruePeriodRequest вхід для масового нарахування амортизації за період.
// ProductionVolumes — обсяги продукції за місяць для об'єктів з виробничим
// методом (ключ — ідентифікатор ОЗ). AssetIDs обмежує нарахування переліченими
// об'єктами; порожній список означає всі активні.
type AccruePeriodRequest struct {
	Year             int                        `json:"year" validate:"required,min=1991,max=2100"`
	Month            int                        `json:"month" validate:"required,min=1,max=12"`
	ExpenseAccount   string                     `json:"expense_account" validate:"omitempty,oneof=23 91 92 93"`
	AssetIDs         []string                   `json:"asset_ids,omitempty" validate:"omitempty,dive,required"`
	ProductionVolumes map[string]decimal.Decimal `json:"production_volumes,omitempty"`
}

// AccrueAssetRequest вхід для нарахування за один об'єкт.
type AccrueAssetRequest struct {
	Year             int              `json:"year" validate:"required,min=1991,max=2100"`
	Month            int              `json:"month" validate:"required,min=1,max=12"`
	ExpenseAccount   string           `json:"expense_account" validate:"omitempty,oneof=23 91 92 93"`
	ProductionVolume *decimal.Decimal `json:"production_volume,omitempty"`
}

// CalculateRequest вхід для попереднього розрахунку без збереження.
type CalculateRequest struct {
	AssetID          string           `json:"asset_id" validate:"required"`
	ProductionVolume *decimal.Decimal `json:"production_volume,omitempty"`
	AsOf             *time.Time       `json:"as_of,omitempty"`
}

// CalculateResponse результат попереднього розрахунку.
type CalculateResponse struct {
	AssetID       string          `json:"asset_id"`
	Amount        decimal.Decimal `json:"amount"`
	AppliedMethod string          `json:"applied_method"`
	BookValue     decimal.Decimal `json:"book_value"`
	ResidualValue decimal.Decimal `json:"residual_value"`
}

// DepreciationRecordResponse подання запису нарахування.
type DepreciationRecordResponse struct {
	ID              string          `json:"id"`
	AssetID         string          `json:"asset_id"`
	PeriodYear      int             `json:"period_year"`
	PeriodMonth     int             `json:"period_month"`
	Method          string          `json:"method"`
	Amount          decimal.Decimal `json:"amount"`
	BookValueBefore decimal.Decimal `json:"book_value_before"`
	BookValueAfter  decimal.Decimal `json:"book_value_after"`
	CreatedAt       time.Time       `json:"created_at"`
}

// FromDepreciationRecord мапінг сутності у подання.
func FromDepreciationRecord(r *entity.DepreciationRecord) DepreciationRecordResponse {
	return DepreciationRecordResponse{
		ID:              r.ID,
		AssetID:         r.AssetID,
		PeriodYear:      r.PeriodYear,
		PeriodMonth:     r.PeriodMonth,
		Method:          string(r.Method),
		Amount:          r.Amount,
		BookValueBefore: r.BookValueBefore,
		BookValueAfter:  r.BookValueAfter,
		CreatedAt:       r.CreatedAt,
	}
}

// AccrualItemResult результат нарахування за один об'єкт у межах батчу.
type AccrualItemResult struct {
	AssetID         string          `json:"asset_id"`
	InventoryNumber string          `json:"inventory_number"`
	Amount          decimal.Decimal `json:"amount"`
	AppliedMethod   string          `json:"applied_method"`
}

// AccrualItemError помилка нарахування за один об'єкт: батч продовжується.
type AccrualItemError struct {
	AssetID         string `json:"asset_id"`
	InventoryNumber string `json:"inventory_number,omitempty"`
	Error           string `json:"error"`
}

// AccruePeriodResponse підсумок батчу нарахування за період.
type AccruePeriodResponse struct {
	Year         int                 `json:"year"`
	Month        int                 `json:"month"`
	AccruedCount int                 `json:"accrued_count"`
	SkippedCount int                 `json:"skipped_count"`
	TotalAmount  decimal.Decimal     `json:"total_amount"`
	Items        []AccrualItemResult `json:"items"`
	Errors       []AccrualItemError  `json:"errors,omitempty"`
}

// PeriodTotalResponse підсумок нарахувань за період для зведення.
type PeriodTotalResponse struct {
	PeriodYear  int             `json:"period_year"`
	PeriodMonth int             `json:"period_month"`
	RecordCount int             `json:"record_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// FromPeriodTotal мапінг агрегату сховища у подання.
func FromPeriodTotal(t repository.PeriodTotal) PeriodTotalResponse {
	return PeriodTotalResponse{
		PeriodYear:  t.PeriodYear,
		PeriodMonth: t.PeriodMonth,
		RecordCount: t.RecordCount,
		TotalAmount: t.TotalAmount,
	}
}
