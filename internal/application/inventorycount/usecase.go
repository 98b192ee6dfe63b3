// Package inventorycount інвентаризація основних засобів: створення сесії,
// наповнення опису знімком картотеки, фіксація результатів огляду,
// завершення з підсумками та сповіщеннями про нестачі.
package inventorycount

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oz-oblik/assets-backend/internal/application/dto"
	"github.com/oz-oblik/assets-backend/internal/domain"
	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
	"github.com/oz-oblik/assets-backend/pkg/logger"
)

// InventoryUseCase сценарії інвентаризації.
type InventoryUseCase struct {
	invRepo   repository.InventoryRepository
	assetRepo repository.AssetRepository
	userRepo  repository.UserRepository
	notifRepo repository.NotificationRepository
	auditRepo repository.AuditLogRepository
	log       *logger.Logger
}

// NewInventoryUseCase конструює юзкейс.
func NewInventoryUseCase(
	invRepo repository.InventoryRepository,
	assetRepo repository.AssetRepository,
	userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository,
	auditRepo repository.AuditLogRepository,
	log *logger.Logger,
) *InventoryUseCase {
	return &InventoryUseCase{
		invRepo:   invRepo,
		assetRepo: assetRepo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
		auditRepo: auditRepo,
		log:       log,
	}
}

// Create створює інвентаризацію у статусі draft. Номер унікальний:
// сховище повертає domain.ErrDuplicate при повторі.
func (uc *InventoryUseCase) Create(ctx context.Context, userID string, req dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	existing, err := uc.invRepo.GetByNumber(ctx, req.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: інвентаризація %s вже існує", domain.ErrDuplicate, req.Number)
	}

	now := time.Now()
	inv := &entity.Inventory{
		ID:                  uuid.New().String(),
		Number:              req.Number,
		Date:                req.Date,
		OrderNumber:         req.OrderNumber,
		OrderDate:           req.OrderDate,
		Status:              entity.InventoryStatusDraft,
		LocationID:          req.LocationID,
		ResponsiblePersonID: req.ResponsiblePersonID,
		CommissionHeadID:    req.CommissionHeadID,
		Notes:               req.Notes,
		CreatedBy:           userID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.invRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	uc.audit(ctx, userID, entity.AuditActionCreate, inv.ID,
		fmt.Sprintf("Інвентаризація %s", inv.Number), nil)

	resp := dto.FromInventory(inv)
	return &resp, nil
}

// Populate наповнює опис знімком активних об'єктів (за місцем проведення,
// якщо воно задане) і переводить інвентаризацію у in_progress.
// Дозволено лише зі статусу draft.
func (uc *InventoryUseCase) Populate(ctx context.Context, userID, id string) (*dto.InventoryResponse, error) {
	inv, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status != entity.InventoryStatusDraft {
		return nil, domain.ErrInventoryNotDraft
	}

	assets, err := uc.assetRepo.ListActive(ctx, inv.LocationID)
	if err != nil {
		return nil, err
	}

	items := make([]entity.InventoryItem, 0, len(assets))
	for _, a := range assets {
		items = append(items, entity.InventoryItem{
			ID:          uuid.New().String(),
			InventoryID: inv.ID,
			AssetID:     a.ID,
			IsFound:     true,
			Condition:   entity.ConditionGood,
			BookValue:   a.CurrentBookValue,
			Difference:  decimal.Zero,
		})
	}
	if err := uc.invRepo.AddItems(ctx, items); err != nil {
		return nil, err
	}

	inv.Status = entity.InventoryStatusInProgress
	inv.UpdatedAt = time.Now()
	if err := uc.invRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	uc.log.Info().Str("inventory_id", inv.ID).Int("items", len(items)).Msg("інвентаризаційний опис сформовано")

	return uc.Get(ctx, id)
}

// UpdateItem фіксує результат огляду одного об'єкта. Різниця обчислюється
// на момент запису і далі не перераховується.
func (uc *InventoryUseCase) UpdateItem(ctx context.Context, userID, inventoryID, assetID string, req dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	inv, err := uc.invRepo.GetByID(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status != entity.InventoryStatusInProgress {
		return nil, fmt.Errorf("%w: інвентаризація не в процесі проведення", domain.ErrConflict)
	}

	item, err := uc.invRepo.GetItem(ctx, inventoryID, assetID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	item.IsFound = req.IsFound
	if req.Condition != "" {
		item.Condition = req.Condition
	}
	item.ActualValue = req.ActualValue
	item.Notes = req.Notes
	item.ComputeDifference()

	if err := uc.invRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	resp := dto.FromInventoryItem(item)
	return &resp, nil
}

// Complete завершує інвентаризацію: статус completed, сповіщення про кожну
// нестачу і підсумкове сповіщення комісії.
func (uc *InventoryUseCase) Complete(ctx context.Context, userID, id string) (*dto.InventoryResultResponse, error) {
	inv, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status != entity.InventoryStatusInProgress {
		return nil, fmt.Errorf("%w: завершити можна лише інвентаризацію в процесі проведення", domain.ErrConflict)
	}

	result, missing, err := uc.result(ctx, inv)
	if err != nil {
		return nil, err
	}

	inv.Status = entity.InventoryStatusCompleted
	inv.UpdatedAt = time.Now()
	if err := uc.invRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	uc.notifyCompletion(ctx, inv, result, missing)

	changes, _ := json.Marshal(map[string]any{
		"total_items": result.TotalItems, "missing": result.MissingCount,
		"shortage_amount": result.ShortageAmount,
	})
	uc.audit(ctx, userID, entity.AuditActionInventory, inv.ID,
		fmt.Sprintf("Завершено інвентаризацію %s", inv.Number), changes)

	return result, nil
}

// Get інвентаризація разом з описом.
func (uc *InventoryUseCase) Get(ctx context.Context, id string) (*dto.InventoryResponse, error) {
	inv, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	resp := dto.FromInventory(inv)
	items, err := uc.invRepo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.FromInventoryItem(it))
	}
	return &resp, nil
}

// List інвентаризації за статусом.
func (uc *InventoryUseCase) List(ctx context.Context, status string, limit, offset int) ([]dto.InventoryResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	list, err := uc.invRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, dto.FromInventory(inv))
	}
	return out, nil
}

// Result підсумки інвентаризації за поточним станом опису.
func (uc *InventoryUseCase) Result(ctx context.Context, id string) (*dto.InventoryResultResponse, error) {
	inv, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	result, _, err := uc.result(ctx, inv)
	return result, err
}

func (uc *InventoryUseCase) result(ctx context.Context, inv *entity.Inventory) (*dto.InventoryResultResponse, []*entity.InventoryItem, error) {
	items, err := uc.invRepo.ListItems(ctx, inv.ID)
	if err != nil {
		return nil, nil, err
	}

	result := &dto.InventoryResultResponse{
		InventoryID:     inv.ID,
		TotalItems:      len(items),
		SurplusAmount:   decimal.Zero,
		ShortageAmount:  decimal.Zero,
		TotalDifference: decimal.Zero,
	}
	var missing []*entity.InventoryItem
	for _, it := range items {
		if it.IsFound {
			result.FoundCount++
		} else {
			result.MissingCount++
			missing = append(missing, it)
		}
		result.TotalDifference = result.TotalDifference.Add(it.Difference)
		if it.Difference.IsPositive() {
			result.SurplusAmount = result.SurplusAmount.Add(it.Difference)
		} else if it.Difference.IsNegative() {
			result.ShortageAmount = result.ShortageAmount.Add(it.Difference.Neg())
		}
	}
	return result, missing, nil
}

func (uc *InventoryUseCase) notifyCompletion(ctx context.Context, inv *entity.Inventory, result *dto.InventoryResultResponse, missing []*entity.InventoryItem) {
	recipients, err := uc.userRepo.ListByRoles(ctx, entity.RoleAdmin, entity.RoleAccountant)
	if err != nil {
		uc.log.Error().Err(err).Msg("не вдалося отримати одержувачів сповіщень")
		return
	}

	var ns []entity.Notification
	for _, u := range recipients {
		ns = append(ns, entity.Notification{
			ID:          uuid.New().String(),
			RecipientID: u.ID,
			Type:        entity.NotificationInventoryDue,
			Title:       fmt.Sprintf("Інвентаризацію %s завершено", inv.Number),
			Message: fmt.Sprintf("Опис: %d об'єктів, знайдено %d, не знайдено %d. Нестача: %s грн.",
				result.TotalItems, result.FoundCount, result.MissingCount, result.ShortageAmount),
			CreatedAt: time.Now(),
		})
		for _, it := range missing {
			ns = append(ns, entity.Notification{
				ID:          uuid.New().String(),
				RecipientID: u.ID,
				Type:        entity.NotificationShortageFound,
				Title:       "Виявлено нестачу",
				Message:     fmt.Sprintf("Об'єкт не знайдено під час інвентаризації %s. Облікова вартість: %s грн.", inv.Number, it.BookValue),
				AssetID:     it.AssetID,
				CreatedAt:   time.Now(),
			})
		}
	}
	if len(ns) > 0 {
		if err := uc.notifRepo.CreateBatch(ctx, ns); err != nil {
			uc.log.Error().Err(err).Msg("не вдалося створити сповіщення про інвентаризацію")
		}
	}
}

func (uc *InventoryUseCase) audit(ctx context.Context, userID, action, entityID, repr string, changes json.RawMessage) {
	if err := uc.auditRepo.Create(ctx, &entity.AuditLog{
		ID:         uuid.New().String(),
		UserID:     userID,
		Action:     action,
		EntityType: "inventory",
		EntityID:   entityID,
		ObjectRepr: repr,
		Changes:    changes,
		Timestamp:  time.Now(),
	}); err != nil {
		uc.log.Error().Err(err).Str("entity_id", entityID).Msg("не вдалося записати аудит")
	}
}
