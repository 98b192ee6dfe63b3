package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

// CreateInventoryRequest вхід для створення інвентаризації.
type CreateInventoryRequest struct {
	Number              string    `json:"number" validate:"required,max=50"`
	Date                time.Time `json:"date" validate:"required"`
	OrderNumber         string    `json:"order_number" validate:"required,max=50"`
	OrderDate           time.Time `json:"order_date" validate:"required"`
	LocationID          string    `json:"location_id" validate:"omitempty,uuid4"`
	ResponsiblePersonID string    `json:"responsible_person_id" validate:"omitempty,uuid4"`
	CommissionHeadID    string    `json:"commission_head_id" validate:"omitempty,uuid4"`
	Notes               string    `json:"notes"`
}

// UpdateInventoryItemRequest вхід для фіксації результату огляду об'єкта.
type UpdateInventoryItemRequest struct {
	IsFound     bool             `json:"is_found"`
	Condition   string           `json:"condition" validate:"omitempty,oneof=good needs_repair unusable"`
	ActualValue *decimal.Decimal `json:"actual_value,omitempty"`
	Notes       string           `json:"notes"`
}

// InventoryItemResponse рядок інвентаризаційного опису.
type InventoryItemResponse struct {
	ID          string           `json:"id"`
	InventoryID string           `json:"inventory_id"`
	AssetID     string           `json:"asset_id"`
	IsFound     bool             `json:"is_found"`
	Condition   string           `json:"condition,omitempty"`
	BookValue   decimal.Decimal  `json:"book_value"`
	ActualValue *decimal.Decimal `json:"actual_value,omitempty"`
	Difference  decimal.Decimal  `json:"difference"`
	Notes       string           `json:"notes,omitempty"`
}

// FromInventoryItem мапінг рядка опису у подання.
func FromInventoryItem(it *entity.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:          it.ID,
		InventoryID: it.InventoryID,
		AssetID:     it.AssetID,
		IsFound:     it.IsFound,
		Condition:   it.Condition,
		BookValue:   it.BookValue,
		ActualValue: it.ActualValue,
		Difference:  it.Difference,
		Notes:       it.Notes,
	}
}

// InventoryResponse подання інвентаризації.
type InventoryResponse struct {
	ID                  string                  `json:"id"`
	Number              string                  `json:"number"`
	Date                time.Time               `json:"date"`
	OrderNumber         string                  `json:"order_number"`
	OrderDate           time.Time               `json:"order_date"`
	Status              string                  `json:"status"`
	LocationID          string                  `json:"location_id,omitempty"`
	ResponsiblePersonID string                  `json:"responsible_person_id,omitempty"`
	CommissionHeadID    string                  `json:"commission_head_id,omitempty"`
	Notes               string                  `json:"notes,omitempty"`
	Items               []InventoryItemResponse `json:"items,omitempty"`
	CreatedAt           time.Time               `json:"created_at"`
}

// FromInventory мапінг сутності у подання; рядки опису додаються окремо.
func FromInventory(inv *entity.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:                  inv.ID,
		Number:              inv.Number,
		Date:                inv.Date,
		OrderNumber:         inv.OrderNumber,
		OrderDate:           inv.OrderDate,
		Status:              inv.Status,
		LocationID:          inv.LocationID,
		ResponsiblePersonID: inv.ResponsiblePersonID,
		CommissionHeadID:    inv.CommissionHeadID,
		Notes:               inv.Notes,
		CreatedAt:           inv.CreatedAt,
	}
}

// InventoryResultResponse підсумок завершеної інвентаризації.
type InventoryResultResponse struct {
	InventoryID     string          `json:"inventory_id"`
	TotalItems      int             `json:"total_items"`
	FoundCount      int             `json:"found_count"`
	MissingCount    int             `json:"missing_count"`
	SurplusAmount   decimal.Decimal `json:"surplus_amount"`
	ShortageAmount  decimal.Decimal `json:"shortage_amount"`
	TotalDifference decimal.Decimal `json:"total_difference"`
}
