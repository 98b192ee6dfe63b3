package dto

import "github.com/oz-oblik/assets-backend/internal/domain/entity"

// AssetGroupRequest вхід для створення/оновлення групи ОЗ.
type AssetGroupRequest struct {
	Code                string `json:"code" validate:"required,max=10"`
	Name                string `json:"name" validate:"required,max=200"`
	MinUsefulLifeMonths *int   `json:"min_useful_life_months" validate:"omitempty,min=1"`
	AccountNumber       string `json:"account_number" validate:"required,max=5"`
	DepreciationAccount string `json:"depreciation_account" validate:"required,max=5"`
}

// AssetGroupResponse подання групи ОЗ.
type AssetGroupResponse struct {
	ID                  string `json:"id"`
	Code                string `json:"code"`
	Name                string `json:"name"`
	MinUsefulLifeMonths *int   `json:"min_useful_life_months,omitempty"`
	AccountNumber       string `json:"account_number"`
	DepreciationAccount string `json:"depreciation_account"`
}

// FromAssetGroup мапінг сутності у подання.
func FromAssetGroup(g *entity.AssetGroup) AssetGroupResponse {
	return AssetGroupResponse{
		ID:                  g.ID,
		Code:                g.Code,
		Name:                g.Name,
		MinUsefulLifeMonths: g.MinUsefulLifeMonths,
		AccountNumber:       g.AccountNumber,
		DepreciationAccount: g.DepreciationAccount,
	}
}

// NamedReferenceRequest вхід для простих довідників (місця, посади).
type NamedReferenceRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	IsActive *bool  `json:"is_active"`
}

// NamedReferenceResponse подання простого довідника.
type NamedReferenceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// ResponsiblePersonRequest вхід для МВО.
type ResponsiblePersonRequest struct {
	IPN        string `json:"ipn" validate:"required,len=10,numeric"`
	FullName   string `json:"full_name" validate:"required,max=300"`
	PositionID string `json:"position_id" validate:"omitempty,uuid4"`
	LocationID string `json:"location_id" validate:"omitempty,uuid4"`
	IsEmployee *bool  `json:"is_employee"`
	IsActive   *bool  `json:"is_active"`
}

// ResponsiblePersonResponse подання МВО.
type ResponsiblePersonResponse struct {
	ID         string `json:"id"`
	IPN        string `json:"ipn"`
	FullName   string `json:"full_name"`
	PositionID string `json:"position_id,omitempty"`
	LocationID string `json:"location_id,omitempty"`
	IsEmployee bool   `json:"is_employee"`
	IsActive   bool   `json:"is_active"`
}

// FromResponsiblePerson мапінг сутності у подання.
func FromResponsiblePerson(p *entity.ResponsiblePerson) ResponsiblePersonResponse {
	return ResponsiblePersonResponse{
		ID:         p.ID,
		IPN:        p.IPN,
		FullName:   p.FullName,
		PositionID: p.PositionID,
		LocationID: p.LocationID,
		IsEmployee: p.IsEmployee,
		IsActive:   p.IsActive,
	}
}

// OrganizationRequest вхід для організації.
type OrganizationRequest struct {
	Name       string `json:"name" validate:"required,max=300"`
	ShortName  string `json:"short_name" validate:"omitempty,max=100"`
	EDRPOU     string `json:"edrpou" validate:"required,min=8,max=10,numeric"`
	Address    string `json:"address"`
	Director   string `json:"director"`
	Accountant string `json:"accountant"`
	IsActive   *bool  `json:"is_active"`
	IsOwn      *bool  `json:"is_own"`
}

// OrganizationResponse подання організації.
type OrganizationResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ShortName  string `json:"short_name,omitempty"`
	EDRPOU     string `json:"edrpou"`
	Address    string `json:"address,omitempty"`
	Director   string `json:"director,omitempty"`
	Accountant string `json:"accountant,omitempty"`
	IsActive   bool   `json:"is_active"`
	IsOwn      bool   `json:"is_own"`
}

// FromOrganization мапінг сутності у подання.
func FromOrganization(o *entity.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:         o.ID,
		Name:       o.Name,
		ShortName:  o.ShortName,
		EDRPOU:     o.EDRPOU,
		Address:    o.Address,
		Director:   o.Director,
		Accountant: o.Accountant,
		IsActive:   o.IsActive,
		IsOwn:      o.IsOwn,
	}
}
