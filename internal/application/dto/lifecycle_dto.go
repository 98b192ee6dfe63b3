package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

// ReceiptRequest вхід для оприбуткування ОЗ.
type ReceiptRequest struct {
	ReceiptType            string          `json:"receipt_type" validate:"required"`
	DocumentNumber         string          `json:"document_number" validate:"required,max=50"`
	DocumentDate           time.Time       `json:"document_date" validate:"required"`
	Supplier               string          `json:"supplier"`
	SupplierOrganizationID string          `json:"supplier_organization_id" validate:"omitempty,uuid4"`
	Amount                 decimal.Decimal `json:"amount"`
	Notes                  string          `json:"notes"`
}

// ReceiptResponse подання оприбуткування.
type ReceiptResponse struct {
	ID                     string          `json:"id"`
	AssetID                string          `json:"asset_id"`
	ReceiptType            string          `json:"receipt_type"`
	DocumentNumber         string          `json:"document_number"`
	DocumentDate           time.Time       `json:"document_date"`
	Supplier               string          `json:"supplier,omitempty"`
	SupplierOrganizationID string          `json:"supplier_organization_id,omitempty"`
	Amount                 decimal.Decimal `json:"amount"`
	Notes                  string          `json:"notes,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
}

// FromReceipt мапінг сутності у подання.
func FromReceipt(r *entity.AssetReceipt) ReceiptResponse {
	return ReceiptResponse{
		ID:                     r.ID,
		AssetID:                r.AssetID,
		ReceiptType:            r.ReceiptType,
		DocumentNumber:         r.DocumentNumber,
		DocumentDate:           r.DocumentDate,
		Supplier:               r.Supplier,
		SupplierOrganizationID: r.SupplierOrganizationID,
		Amount:                 r.Amount,
		Notes:                  r.Notes,
		CreatedAt:              r.CreatedAt,
	}
}

// DisposalRequest вхід для вибуття ОЗ.
type DisposalRequest struct {
	DisposalType   string          `json:"disposal_type" validate:"required"`
	DocumentNumber string          `json:"document_number" validate:"required,max=50"`
	DocumentDate   time.Time       `json:"document_date" validate:"required"`
	Reason         string          `json:"reason"`
	SaleAmount     decimal.Decimal `json:"sale_amount"`
	Notes          string          `json:"notes"`
}

// DisposalResponse подання вибуття зі знімком вартісних показників.
type DisposalResponse struct {
	ID                                string          `json:"id"`
	AssetID                           string          `json:"asset_id"`
	DisposalType                      string          `json:"disposal_type"`
	DocumentNumber                    string          `json:"document_number"`
	DocumentDate                      time.Time       `json:"document_date"`
	Reason                            string          `json:"reason,omitempty"`
	SaleAmount                        decimal.Decimal `json:"sale_amount"`
	BookValueAtDisposal               decimal.Decimal `json:"book_value_at_disposal"`
	AccumulatedDepreciationAtDisposal decimal.Decimal `json:"accumulated_depreciation_at_disposal"`
	Notes                             string          `json:"notes,omitempty"`
	CreatedAt                         time.Time       `json:"created_at"`
}

// FromDisposal мапінг сутності у подання.
func FromDisposal(d *entity.AssetDisposal) DisposalResponse {
	return DisposalResponse{
		ID:                                d.ID,
		AssetID:                           d.AssetID,
		DisposalType:                      d.DisposalType,
		DocumentNumber:                    d.DocumentNumber,
		DocumentDate:                      d.DocumentDate,
		Reason:                            d.Reason,
		SaleAmount:                        d.SaleAmount,
		BookValueAtDisposal:               d.BookValueAtDisposal,
		AccumulatedDepreciationAtDisposal: d.AccumulatedDepreciationAtDisposal,
		Notes:                             d.Notes,
		CreatedAt:                         d.CreatedAt,
	}
}

// RevaluationRequest вхід для переоцінки ОЗ.
type RevaluationRequest struct {
	FairValue      decimal.Decimal `json:"fair_value"`
	Date           time.Time       `json:"date" validate:"required"`
	DocumentNumber string          `json:"document_number" validate:"required,max=50"`
	Notes          string          `json:"notes"`
}

// RevaluationResponse подання переоцінки.
type RevaluationResponse struct {
	ID              string    `json:"id"`
	AssetID         string    `json:"asset_id"`
	RevaluationType string    `json:"revaluation_type"`
	Date            time.Time `json:"date"`
	DocumentNumber  string    `json:"document_number"`

	OldInitialCost  decimal.Decimal `json:"old_initial_cost"`
	OldDepreciation decimal.Decimal `json:"old_depreciation"`
	OldBookValue    decimal.Decimal `json:"old_book_value"`
	FairValue       decimal.Decimal `json:"fair_value"`
	NewInitialCost  decimal.Decimal `json:"new_initial_cost"`
	NewDepreciation decimal.Decimal `json:"new_depreciation"`
	NewBookValue    decimal.Decimal `json:"new_book_value"`

	RevaluationAmount decimal.Decimal `json:"revaluation_amount"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// FromRevaluation мапінг сутності у подання.
func FromRevaluation(rv *entity.AssetRevaluation) RevaluationResponse {
	return RevaluationResponse{
		ID:                rv.ID,
		AssetID:           rv.AssetID,
		RevaluationType:   rv.RevaluationType,
		Date:              rv.Date,
		DocumentNumber:    rv.DocumentNumber,
		OldInitialCost:    rv.OldInitialCost,
		OldDepreciation:   rv.OldDepreciation,
		OldBookValue:      rv.OldBookValue,
		FairValue:         rv.FairValue,
		NewInitialCost:    rv.NewInitialCost,
		NewDepreciation:   rv.NewDepreciation,
		NewBookValue:      rv.NewBookValue,
		RevaluationAmount: rv.RevaluationAmount,
		Notes:             rv.Notes,
		CreatedAt:         rv.CreatedAt,
	}
}

// ImprovementRequest вхід для поліпшення або ремонту ОЗ.
type ImprovementRequest struct {
	ImprovementType string          `json:"improvement_type" validate:"required"`
	Date            time.Time       `json:"date" validate:"required"`
	DocumentNumber  string          `json:"document_number" validate:"required,max=50"`
	Description     string          `json:"description" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Contractor      string          `json:"contractor"`
	IncreasesValue  bool            `json:"increases_value"`
	ExpenseAccount  string          `json:"expense_account" validate:"omitempty,oneof=23 91 92 93"`
	Notes           string          `json:"notes"`
}

// ImprovementResponse подання поліпшення.
type ImprovementResponse struct {
	ID              string          `json:"id"`
	AssetID         string          `json:"asset_id"`
	ImprovementType string          `json:"improvement_type"`
	Date            time.Time       `json:"date"`
	DocumentNumber  string          `json:"document_number"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	Contractor      string          `json:"contractor,omitempty"`
	IncreasesValue  bool            `json:"increases_value"`
	ExpenseAccount  string          `json:"expense_account,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// FromImprovement мапінг сутності у подання.
func FromImprovement(imp *entity.AssetImprovement) ImprovementResponse {
	return ImprovementResponse{
		ID:              imp.ID,
		AssetID:         imp.AssetID,
		ImprovementType: imp.ImprovementType,
		Date:            imp.Date,
		DocumentNumber:  imp.DocumentNumber,
		Description:     imp.Description,
		Amount:          imp.Amount,
		Contractor:      imp.Contractor,
		IncreasesValue:  imp.IncreasesValue,
		ExpenseAccount:  imp.ExpenseAccount,
		Notes:           imp.Notes,
		CreatedAt:       imp.CreatedAt,
	}
}

// TransferRequest вхід для внутрішнього переміщення ОЗ.
type TransferRequest struct {
	DocumentNumber        string    `json:"document_number" validate:"required,max=50"`
	DocumentDate          time.Time `json:"document_date" validate:"required"`
	FromLocationID        string    `json:"from_location_id" validate:"omitempty,uuid4"`
	ToLocationID          string    `json:"to_location_id" validate:"required,uuid4"`
	ToResponsiblePersonID string    `json:"to_responsible_person_id" validate:"omitempty,uuid4"`
	AssetIDs              []string  `json:"asset_ids" validate:"required,min=1,dive,uuid4"`
	Notes                 string    `json:"notes"`
}

// TransferItemResponse рядок переміщення.
type TransferItemResponse struct {
	AssetID   string          `json:"asset_id"`
	BookValue decimal.Decimal `json:"book_value"`
}

// TransferResponse подання документа переміщення.
type TransferResponse struct {
	ID                    string                 `json:"id"`
	DocumentNumber        string                 `json:"document_number"`
	DocumentDate          time.Time              `json:"document_date"`
	FromLocationID        string                 `json:"from_location_id,omitempty"`
	ToLocationID          string                 `json:"to_location_id"`
	ToResponsiblePersonID string                 `json:"to_responsible_person_id,omitempty"`
	Notes                 string                 `json:"notes,omitempty"`
	Items                 []TransferItemResponse `json:"items"`
	CreatedAt             time.Time              `json:"created_at"`
}

// FromTransfer мапінг сутності у подання.
func FromTransfer(t *entity.AssetTransfer) TransferResponse {
	items := make([]TransferItemResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, TransferItemResponse{AssetID: it.AssetID, BookValue: it.BookValue})
	}
	return TransferResponse{
		ID:                    t.ID,
		DocumentNumber:        t.DocumentNumber,
		DocumentDate:          t.DocumentDate,
		FromLocationID:        t.FromLocationID,
		ToLocationID:          t.ToLocationID,
		ToResponsiblePersonID: t.ToResponsiblePersonID,
		Notes:                 t.Notes,
		Items:                 items,
		CreatedAt:             t.CreatedAt,
	}
}
