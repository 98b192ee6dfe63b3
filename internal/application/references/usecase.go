// Package references довідники: групи ОЗ, місця, посади, МВО, організації.
package references

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oz-oblik/assets-backend/internal/application/dto"
	"github.com/oz-oblik/assets-backend/internal/domain"
	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
	"github.com/oz-oblik/assets-backend/pkg/logger"
)

// UseCase CRUD довідників. Унікальність кодів і номерів гарантують
// обмеження сховища (domain.ErrDuplicate).
type UseCase struct {
	groupRepo    repository.AssetGroupRepository
	locationRepo repository.LocationRepository
	positionRepo repository.PositionRepository
	personRepo   repository.ResponsiblePersonRepository
	orgRepo      repository.OrganizationRepository
	log          *logger.Logger
}

// NewUseCase конструює юзкейс.
func NewUseCase(
	groupRepo repository.AssetGroupRepository,
	locationRepo repository.LocationRepository,
	positionRepo repository.PositionRepository,
	personRepo repository.ResponsiblePersonRepository,
	orgRepo repository.OrganizationRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		groupRepo:    groupRepo,
		locationRepo: locationRepo,
		positionRepo: positionRepo,
		personRepo:   personRepo,
		orgRepo:      orgRepo,
		log:          log,
	}
}

// --- групи основних засобів ---

// CreateGroup створює групу ОЗ.
func (uc *UseCase) CreateGroup(ctx context.Context, req dto.AssetGroupRequest) (*dto.AssetGroupResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	g := &entity.AssetGroup{
		ID:                  uuid.New().String(),
		Code:                req.Code,
		Name:                req.Name,
		MinUsefulLifeMonths: req.MinUsefulLifeMonths,
		AccountNumber:       req.AccountNumber,
		DepreciationAccount: req.DepreciationAccount,
	}
	if err := uc.groupRepo.Create(ctx, g); err != nil {
		return nil, err
	}
	resp := dto.FromAssetGroup(g)
	return &resp, nil
}

// UpdateGroup оновлює групу ОЗ.
func (uc *UseCase) UpdateGroup(ctx context.Context, id string, req dto.AssetGroupRequest) (*dto.AssetGroupResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	g, err := uc.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	g.Code = req.Code
	g.Name = req.Name
	g.MinUsefulLifeMonths = req.MinUsefulLifeMonths
	g.AccountNumber = req.AccountNumber
	g.DepreciationAccount = req.DepreciationAccount
	if err := uc.groupRepo.Update(ctx, g); err != nil {
		return nil, err
	}
	resp := dto.FromAssetGroup(g)
	return &resp, nil
}

// ListGroups усі групи ОЗ.
func (uc *UseCase) ListGroups(ctx context.Context) ([]dto.AssetGroupResponse, error) {
	list, err := uc.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssetGroupResponse, 0, len(list))
	for _, g := range list {
		out = append(out, dto.FromAssetGroup(g))
	}
	return out, nil
}

// DeleteGroup видаляє групу; сховище відхилить видалення групи з об'єктами.
func (uc *UseCase) DeleteGroup(ctx context.Context, id string) error {
	return uc.groupRepo.Delete(ctx, id)
}

// --- місця зберігання ---

// CreateLocation створює місце зберігання.
func (uc *UseCase) CreateLocation(ctx context.Context, req dto.NamedReferenceRequest) (*dto.NamedReferenceResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	l := &entity.Location{ID: uuid.New().String(), Name: req.Name, IsActive: true}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}
	if err := uc.locationRepo.Create(ctx, l); err != nil {
		return nil, err
	}
	return &dto.NamedReferenceResponse{ID: l.ID, Name: l.Name, IsActive: l.IsActive}, nil
}

// UpdateLocation оновлює місце зберігання.
func (uc *UseCase) UpdateLocation(ctx context.Context, id string, req dto.NamedReferenceRequest) (*dto.NamedReferenceResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	l, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	l.Name = req.Name
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}
	if err := uc.locationRepo.Update(ctx, l); err != nil {
		return nil, err
	}
	return &dto.NamedReferenceResponse{ID: l.ID, Name: l.Name, IsActive: l.IsActive}, nil
}

// ListLocations місця зберігання.
func (uc *UseCase) ListLocations(ctx context.Context, activeOnly bool) ([]dto.NamedReferenceResponse, error) {
	list, err := uc.locationRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedReferenceResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.NamedReferenceResponse{ID: l.ID, Name: l.Name, IsActive: l.IsActive})
	}
	return out, nil
}

// --- посади ---

// CreatePosition створює посаду.
func (uc *UseCase) CreatePosition(ctx context.Context, req dto.NamedReferenceRequest) (*dto.NamedReferenceResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	p := &entity.Position{ID: uuid.New().String(), Name: req.Name, IsActive: true}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if err := uc.positionRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return &dto.NamedReferenceResponse{ID: p.ID, Name: p.Name, IsActive: p.IsActive}, nil
}

// ListPositions посади.
func (uc *UseCase) ListPositions(ctx context.Context, activeOnly bool) ([]dto.NamedReferenceResponse, error) {
	list, err := uc.positionRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedReferenceResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.NamedReferenceResponse{ID: p.ID, Name: p.Name, IsActive: p.IsActive})
	}
	return out, nil
}

// --- матеріально відповідальні особи ---

// CreatePerson створює МВО. ІПН унікальний.
func (uc *UseCase) CreatePerson(ctx context.Context, req dto.ResponsiblePersonRequest) (*dto.ResponsiblePersonResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	p := &entity.ResponsiblePerson{
		ID:         uuid.New().String(),
		IPN:        req.IPN,
		FullName:   req.FullName,
		PositionID: req.PositionID,
		LocationID: req.LocationID,
		IsEmployee: true,
		IsActive:   true,
	}
	if req.IsEmployee != nil {
		p.IsEmployee = *req.IsEmployee
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if err := uc.personRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := dto.FromResponsiblePerson(p)
	return &resp, nil
}

// UpdatePerson оновлює МВО.
func (uc *UseCase) UpdatePerson(ctx context.Context, id string, req dto.ResponsiblePersonRequest) (*dto.ResponsiblePersonResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	p, err := uc.personRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.IPN = req.IPN
	p.FullName = req.FullName
	p.PositionID = req.PositionID
	p.LocationID = req.LocationID
	if req.IsEmployee != nil {
		p.IsEmployee = *req.IsEmployee
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if err := uc.personRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := dto.FromResponsiblePerson(p)
	return &resp, nil
}

// ListPersons МВО.
func (uc *UseCase) ListPersons(ctx context.Context, activeOnly bool) ([]dto.ResponsiblePersonResponse, error) {
	list, err := uc.personRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResponsiblePersonResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.FromResponsiblePerson(p))
	}
	return out, nil
}

// --- організації ---

// CreateOrganization створює організацію. ЄДРПОУ унікальний; власна
// організація (is_own) може бути лише одна.
func (uc *UseCase) CreateOrganization(ctx context.Context, req dto.OrganizationRequest) (*dto.OrganizationResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	o := &entity.Organization{
		ID:         uuid.New().String(),
		Name:       req.Name,
		ShortName:  req.ShortName,
		EDRPOU:     req.EDRPOU,
		Address:    req.Address,
		Director:   req.Director,
		Accountant: req.Accountant,
		IsActive:   true,
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}
	if req.IsOwn != nil && *req.IsOwn {
		own, err := uc.orgRepo.GetOwn(ctx)
		if err != nil {
			return nil, err
		}
		if own != nil {
			return nil, fmt.Errorf("%w: власна організація вже налаштована", domain.ErrConflict)
		}
		o.IsOwn = true
	}
	if err := uc.orgRepo.Create(ctx, o); err != nil {
		return nil, err
	}
	resp := dto.FromOrganization(o)
	return &resp, nil
}

// ListOrganizations організації.
func (uc *UseCase) ListOrganizations(ctx context.Context, activeOnly bool) ([]dto.OrganizationResponse, error) {
	list, err := uc.orgRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrganizationResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.FromOrganization(o))
	}
	return out, nil
}

// GetOwnOrganization власна організація для реквізитів документів.
func (uc *UseCase) GetOwnOrganization(ctx context.Context) (*dto.OrganizationResponse, error) {
	o, err := uc.orgRepo.GetOwn(ctx)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromOrganization(o)
	return &resp, nil
}
