package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

// CreateAssetRequest вхід для створення основного засобу.
type CreateAssetRequest struct {
	InventoryNumber string `json:"inventory_number" validate:"required,min=1,max=50"`
	Name            string `json:"name" validate:"required,min=1,max=300"`
	GroupID         string `json:"group_id" validate:"required,uuid4"`
	OrganizationID  string `json:"organization_id" validate:"omitempty,uuid4"`

	InitialCost          decimal.Decimal  `json:"initial_cost"`
	ResidualValue        decimal.Decimal  `json:"residual_value"`
	IncomingDepreciation decimal.Decimal  `json:"incoming_depreciation"`

	DepreciationMethod      string           `json:"depreciation_method" validate:"required"`
	UsefulLifeMonths        int              `json:"useful_life_months" validate:"required,min=1"`
	TotalProductionCapacity *decimal.Decimal `json:"total_production_capacity,omitempty"`

	CommissioningDate     time.Time `json:"commissioning_date" validate:"required"`
	DepreciationStartDate time.Time `json:"depreciation_start_date"`

	Quantity        int    `json:"quantity" validate:"omitempty,min=1"`
	FactoryNumber   string `json:"factory_number"`
	PassportNumber  string `json:"passport_number"`
	ManufactureYear *int   `json:"manufacture_year" validate:"omitempty,min=1900,max=2100"`
	UnitOfMeasure   string `json:"unit_of_measure"`

	ResponsiblePersonID string `json:"responsible_person_id" validate:"omitempty,uuid4"`
	LocationID          string `json:"location_id" validate:"omitempty,uuid4"`
	Description         string `json:"description"`
}

// UpdateAssetRequest вхід для оновлення. Вартісні поля та метод амортизації
// тут відсутні: вони змінюються лише операціями життєвого циклу.
type UpdateAssetRequest struct {
	Name                string  `json:"name" validate:"omitempty,min=1,max=300"`
	Status              *string `json:"status" validate:"omitempty,oneof=active conserved"`
	FactoryNumber       *string `json:"factory_number"`
	PassportNumber      *string `json:"passport_number"`
	ManufactureYear     *int    `json:"manufacture_year" validate:"omitempty,min=1900,max=2100"`
	UnitOfMeasure       *string `json:"unit_of_measure"`
	ResponsiblePersonID *string `json:"responsible_person_id"`
	LocationID          *string `json:"location_id"`
	Description         *string `json:"description"`
}

// AssetResponse подання основного засобу.
type AssetResponse struct {
	ID              string `json:"id"`
	InventoryNumber string `json:"inventory_number"`
	Name            string `json:"name"`
	GroupID         string `json:"group_id"`
	OrganizationID  string `json:"organization_id,omitempty"`
	Status          string `json:"status"`

	InitialCost             decimal.Decimal `json:"initial_cost"`
	ResidualValue           decimal.Decimal `json:"residual_value"`
	IncomingDepreciation    decimal.Decimal `json:"incoming_depreciation"`
	CurrentBookValue        decimal.Decimal `json:"current_book_value"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulated_depreciation"`
	WearPercent             decimal.Decimal `json:"wear_percent"`

	DepreciationMethod      string           `json:"depreciation_method"`
	UsefulLifeMonths        int              `json:"useful_life_months"`
	TotalProductionCapacity *decimal.Decimal `json:"total_production_capacity,omitempty"`

	CommissioningDate     time.Time  `json:"commissioning_date"`
	DepreciationStartDate time.Time  `json:"depreciation_start_date"`
	DisposalDate          *time.Time `json:"disposal_date,omitempty"`

	Quantity        int    `json:"quantity"`
	FactoryNumber   string `json:"factory_number,omitempty"`
	PassportNumber  string `json:"passport_number,omitempty"`
	ManufactureYear *int   `json:"manufacture_year,omitempty"`
	UnitOfMeasure   string `json:"unit_of_measure,omitempty"`

	ResponsiblePersonID string `json:"responsible_person_id,omitempty"`
	LocationID          string `json:"location_id,omitempty"`
	Description         string `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromAsset мапінг сутності у подання.
func FromAsset(a *entity.Asset) AssetResponse {
	return AssetResponse{
		ID:                      a.ID,
		InventoryNumber:         a.InventoryNumber,
		Name:                    a.Name,
		GroupID:                 a.GroupID,
		OrganizationID:          a.OrganizationID,
		Status:                  a.Status,
		InitialCost:             a.InitialCost,
		ResidualValue:           a.ResidualValue,
		IncomingDepreciation:    a.IncomingDepreciation,
		CurrentBookValue:        a.CurrentBookValue,
		AccumulatedDepreciation: a.AccumulatedDepreciation,
		WearPercent:             a.WearRatio().Mul(decimal.NewFromInt(100)).Round(2),
		DepreciationMethod:      string(a.DepreciationMethod),
		UsefulLifeMonths:        a.UsefulLifeMonths,
		TotalProductionCapacity: a.TotalProductionCapacity,
		CommissioningDate:       a.CommissioningDate,
		DepreciationStartDate:   a.DepreciationStartDate,
		DisposalDate:            a.DisposalDate,
		Quantity:                a.Quantity,
		FactoryNumber:           a.FactoryNumber,
		PassportNumber:          a.PassportNumber,
		ManufactureYear:         a.ManufactureYear,
		UnitOfMeasure:           a.UnitOfMeasure,
		ResponsiblePersonID:     a.ResponsiblePersonID,
		LocationID:              a.LocationID,
		Description:             a.Description,
		CreatedAt:               a.CreatedAt,
		UpdatedAt:               a.UpdatedAt,
	}
}

// AssetListResponse сторінка списку основних засобів.
type AssetListResponse struct {
	Items []AssetResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
