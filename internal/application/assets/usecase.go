package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oz-oblik/assets-backend/internal/application/dto"
	"github.com/oz-oblik/assets-backend/internal/domain"
	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
	"github.com/oz-oblik/assets-backend/pkg/logger"
)

// AssetUseCase операції над картотекою основних засобів: створення, читання,
// оновлення облікових полів, статистика.
type AssetUseCase struct {
	assetRepo     repository.AssetRepository
	groupRepo     repository.AssetGroupRepository
	analyticsRepo repository.AnalyticsRepository
	auditRepo     repository.AuditLogRepository
	log           *logger.Logger
}

// NewAssetUseCase конструює юзкейс.
func NewAssetUseCase(
	assetRepo repository.AssetRepository,
	groupRepo repository.AssetGroupRepository,
	analyticsRepo repository.AnalyticsRepository,
	auditRepo repository.AuditLogRepository,
	log *logger.Logger,
) *AssetUseCase {
	return &AssetUseCase{
		assetRepo:     assetRepo,
		groupRepo:     groupRepo,
		analyticsRepo: analyticsRepo,
		auditRepo:     auditRepo,
		log:           log,
	}
}

// Create створює основний засіб. Інвентарний номер унікальний: попередня
// перевірка дає зрозумілу помилку, але джерело істини — обмеження сховища,
// яке повертає domain.ErrDuplicate при гонці.
func (uc *AssetUseCase) Create(ctx context.Context, userID string, req dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	group, err := uc.groupRepo.GetByID(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, fmt.Errorf("%w: група ОЗ не знайдена", domain.ErrValidation)
	}
	if group.MinUsefulLifeMonths != nil && req.UsefulLifeMonths < *group.MinUsefulLifeMonths {
		return nil, fmt.Errorf("%w: строк використання менший за мінімальний для групи (%d міс.)",
			domain.ErrValidation, *group.MinUsefulLifeMonths)
	}

	existing, err := uc.assetRepo.GetByInventoryNumber(ctx, req.InventoryNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: інвентарний номер %s вже використано", domain.ErrDuplicate, req.InventoryNumber)
	}

	now := time.Now()
	a := &entity.Asset{
		ID:                      uuid.New().String(),
		OrganizationID:          req.OrganizationID,
		InventoryNumber:         req.InventoryNumber,
		Name:                    req.Name,
		GroupID:                 req.GroupID,
		Status:                  entity.AssetStatusActive,
		InitialCost:             req.InitialCost,
		ResidualValue:           req.ResidualValue,
		IncomingDepreciation:    req.IncomingDepreciation,
		DepreciationMethod:      entity.DepreciationMethod(req.DepreciationMethod),
		UsefulLifeMonths:        req.UsefulLifeMonths,
		TotalProductionCapacity: req.TotalProductionCapacity,
		CommissioningDate:       req.CommissioningDate,
		DepreciationStartDate:   req.DepreciationStartDate,
		Quantity:                req.Quantity,
		FactoryNumber:           req.FactoryNumber,
		PassportNumber:          req.PassportNumber,
		ManufactureYear:         req.ManufactureYear,
		UnitOfMeasure:           req.UnitOfMeasure,
		ResponsiblePersonID:     req.ResponsiblePersonID,
		LocationID:              req.LocationID,
		Description:             req.Description,
		CreatedBy:               userID,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if a.Quantity <= 0 {
		a.Quantity = 1
	}
	// Амортизація стартує з першого числа місяця, наступного за введенням
	// в експлуатацію (НП(С)БО 7 п. 29), якщо дату не задано явно.
	if a.DepreciationStartDate.IsZero() {
		c := a.CommissioningDate
		a.DepreciationStartDate = time.Date(c.Year(), c.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	}
	a.InitBookValue()

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	if err := uc.assetRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	uc.audit(ctx, userID, entity.AuditActionCreate, "asset", a.ID,
		fmt.Sprintf("ОЗ %s «%s»", a.InventoryNumber, a.Name), nil)
	uc.log.Info().Str("asset_id", a.ID).Str("inventory_number", a.InventoryNumber).Msg("основний засіб створено")

	resp := dto.FromAsset(a)
	return &resp, nil
}

// Get повертає основний засіб за ідентифікатором.
func (uc *AssetUseCase) Get(ctx context.Context, id string) (*dto.AssetResponse, error) {
	a, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromAsset(a)
	return &resp, nil
}

// List сторінка картотеки за фільтром.
func (uc *AssetUseCase) List(ctx context.Context, filter repository.AssetFilter) (*dto.AssetListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	items, total, err := uc.assetRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.AssetListResponse{
		Items: make([]dto.AssetResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset, Total: total},
	}
	for _, a := range items {
		resp.Items = append(resp.Items, dto.FromAsset(a))
	}
	return resp, nil
}

// Update оновлює облікові поля. Вартісні показники та метод амортизації
// недоторканні: їх змінюють лише операції життєвого циклу.
func (uc *AssetUseCase) Update(ctx context.Context, userID, id string, req dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	a, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if a.Status == entity.AssetStatusDisposed {
		return nil, domain.ErrAssetDisposed
	}

	changes := map[string]any{}
	if req.Name != "" && req.Name != a.Name {
		changes["name"] = map[string]string{"old": a.Name, "new": req.Name}
		a.Name = req.Name
	}
	if req.Status != nil {
		a.Status = *req.Status
		changes["status"] = *req.Status
	}
	if req.FactoryNumber != nil {
		a.FactoryNumber = *req.FactoryNumber
	}
	if req.PassportNumber != nil {
		a.PassportNumber = *req.PassportNumber
	}
	if req.ManufactureYear != nil {
		a.ManufactureYear = req.ManufactureYear
	}
	if req.UnitOfMeasure != nil {
		a.UnitOfMeasure = *req.UnitOfMeasure
	}
	if req.ResponsiblePersonID != nil {
		a.ResponsiblePersonID = *req.ResponsiblePersonID
	}
	if req.LocationID != nil {
		a.LocationID = *req.LocationID
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	a.UpdatedAt = time.Now()

	if err := uc.assetRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	uc.audit(ctx, userID, entity.AuditActionUpdate, "asset", a.ID,
		fmt.Sprintf("ОЗ %s «%s»", a.InventoryNumber, a.Name), changes)

	resp := dto.FromAsset(a)
	return &resp, nil
}

// Delete видаляє основний засіб. Дозволено лише для об'єктів без руху:
// сховище відхилить видалення за наявності нарахувань чи проводок.
func (uc *AssetUseCase) Delete(ctx context.Context, userID, id string) error {
	a, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	if !a.AccumulatedDepreciation.IsZero() {
		return fmt.Errorf("%w: об'єкт має нараховану амортизацію, використайте списання", domain.ErrConflict)
	}
	if err := uc.assetRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.audit(ctx, userID, entity.AuditActionDelete, "asset", id,
		fmt.Sprintf("ОЗ %s «%s»", a.InventoryNumber, a.Name), nil)
	return nil
}

// Statistics зведена статистика парку для дашборда.
func (uc *AssetUseCase) Statistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	s, err := uc.analyticsRepo.AssetStatistics(ctx)
	if err != nil {
		return nil, err
	}
	resp := dto.FromStatistics(s)
	return &resp, nil
}

func (uc *AssetUseCase) audit(ctx context.Context, userID, action, entityType, entityID, repr string, changes map[string]any) {
	var raw json.RawMessage
	if len(changes) > 0 {
		raw, _ = json.Marshal(changes)
	}
	if err := uc.auditRepo.Create(ctx, &entity.AuditLog{
		ID:         uuid.New().String(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		ObjectRepr: repr,
		Changes:    raw,
		Timestamp:  time.Now(),
	}); err != nil {
		uc.log.Error().Err(err).Str("entity_id", entityID).Msg("не вдалося записати аудит")
	}
}
