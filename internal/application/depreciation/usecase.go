package depreciation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oz-oblik/assets-backend/internal/application/dto"
	"github.com/oz-oblik/assets-backend/internal/domain"
	calc "github.com/oz-oblik/assets-backend/internal/domain/depreciation"
	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/ledger"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
	"github.com/oz-oblik/assets-backend/pkg/logger"
)

// Поріг зносу, після якого надсилається сповіщення про критичний стан.
var highWearThreshold = decimal.RequireFromString("0.9")

// errSkip внутрішній сигнал: об'єкт пропущено без помилки (нульова сума,
// не в експлуатації).
var errSkip = errors.New("skip")

// AccrualUseCase нарахування амортизації: масове за період, за один об'єкт,
// попередній розрахунок і зведення. Кожен об'єкт обробляється в окремій
// транзакції з блокуванням рядка; помилка за одним об'єктом не зупиняє батч.
type AccrualUseCase struct {
	txRunner   TxRunner
	assetRepo  repository.AssetRepository
	groupRepo  repository.AssetGroupRepository
	recordRepo repository.DepreciationRecordRepository
	userRepo   repository.UserRepository
	notifRepo  repository.NotificationRepository
	auditRepo  repository.AuditLogRepository
	log        *logger.Logger
}

// NewAccrualUseCase конструює юзкейс.
func NewAccrualUseCase(
	txRunner TxRunner,
	assetRepo repository.AssetRepository,
	groupRepo repository.AssetGroupRepository,
	recordRepo repository.DepreciationRecordRepository,
	userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository,
	auditRepo repository.AuditLogRepository,
	log *logger.Logger,
) *AccrualUseCase {
	return &AccrualUseCase{
		txRunner:   txRunner,
		assetRepo:  assetRepo,
		groupRepo:  groupRepo,
		recordRepo: recordRepo,
		userRepo:   userRepo,
		notifRepo:  notifRepo,
		auditRepo:  auditRepo,
		log:        log,
	}
}

// accrualOutcome результат нарахування за один об'єкт у межах транзакції.
type accrualOutcome struct {
	record           *entity.DepreciationRecord
	inventoryNumber  string
	assetName        string
	fullyDepreciated bool
	highWear         bool
}

// accrueOne нараховує амортизацію за один об'єкт всередині транзакції:
// блокування рядка, розрахунок, запис нарахування, мутація агрегата, проводки.
// Унікальність періоду гарантує сховище: повторне нарахування повертає
// domain.ErrPeriodAlreadyAccrued.
func (uc *AccrualUseCase) accrueOne(
	tx TxRepos,
	ctx context.Context,
	assetID string,
	year, month int,
	groups map[string]*entity.AssetGroup,
	volume decimal.Decimal,
	expenseAccount, userID string,
) (*accrualOutcome, error) {
	a, err := tx.Assets.GetByIDForUpdate(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if a.Status != entity.AssetStatusActive {
		return nil, errSkip
	}

	group, ok := groups[a.GroupID]
	if !ok {
		return nil, fmt.Errorf("група ОЗ %s не знайдена", a.GroupID)
	}

	periodDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	res := calc.Calculate(a, a.MonthsUsed(periodDate), volume)
	if !res.Amount.IsPositive() {
		return nil, errSkip
	}

	rec := &entity.DepreciationRecord{
		ID:              uuid.New().String(),
		AssetID:         a.ID,
		PeriodYear:      year,
		PeriodMonth:     month,
		Method:          res.Method,
		Amount:          res.Amount,
		BookValueBefore: a.CurrentBookValue,
		BookValueAfter:  a.CurrentBookValue.Sub(res.Amount),
		IsPosted:        true,
		CreatedBy:       userID,
		CreatedAt:       time.Now(),
	}
	if a.DepreciationMethod == entity.MethodProduction {
		v := volume
		rec.ProductionVolume = &v
	}
	if err := tx.Records.Create(ctx, rec); err != nil {
		return nil, err
	}

	if err := a.Accrue(res.Amount); err != nil {
		return nil, err
	}
	if err := tx.Assets.Update(ctx, a); err != nil {
		return nil, err
	}

	entries := ledger.DepreciationEntries(a, group, rec, expenseAccount)
	for i := range entries {
		entries[i].ID = uuid.New().String()
		entries[i].CreatedBy = userID
		entries[i].CreatedAt = time.Now()
	}
	if err := tx.Entries.CreateBatch(ctx, entries); err != nil {
		return nil, err
	}

	return &accrualOutcome{
		record:           rec,
		inventoryNumber:  a.InventoryNumber,
		assetName:        a.Name,
		fullyDepreciated: a.IsFullyDepreciated(),
		highWear:         a.WearRatio().GreaterThan(highWearThreshold),
	}, nil
}

// AccruePeriod масове нарахування амортизації за місяць для всіх об'єктів
// в експлуатації (або для підмножини з req.AssetIDs). Кожен об'єкт — окрема
// транзакція; повторне нарахування періоду потрапляє в помилки за об'єктом,
// нульові суми пропускаються, батч продовжується.
func (uc *AccrualUseCase) AccruePeriod(ctx context.Context, userID string, req dto.AccruePeriodRequest) (*dto.AccruePeriodResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	assets, err := uc.assetRepo.ListActive(ctx, "")
	if err != nil {
		return nil, err
	}
	groups, err := uc.loadGroups(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.AccruePeriodResponse{
		Year:        req.Year,
		Month:       req.Month,
		TotalAmount: decimal.Zero,
	}
	var outcomes []*accrualOutcome

	var wanted map[string]struct{}
	if len(req.AssetIDs) > 0 {
		wanted = make(map[string]struct{}, len(req.AssetIDs))
		for _, id := range req.AssetIDs {
			wanted[id] = struct{}{}
		}
	}

	for _, a := range assets {
		if wanted != nil {
			if _, ok := wanted[a.ID]; !ok {
				continue
			}
		}
		volume := decimal.Zero
		if v, ok := req.ProductionVolumes[a.ID]; ok {
			volume = v
		}

		var out *accrualOutcome
		err := uc.txRunner.Run(ctx, func(tx TxRepos) error {
			var txErr error
			out, txErr = uc.accrueOne(tx, ctx, a.ID, req.Year, req.Month, groups, volume, req.ExpenseAccount, userID)
			return txErr
		})

		switch {
		case err == nil:
			outcomes = append(outcomes, out)
			resp.AccruedCount++
			resp.TotalAmount = resp.TotalAmount.Add(out.record.Amount)
			resp.Items = append(resp.Items, dto.AccrualItemResult{
				AssetID:         a.ID,
				InventoryNumber: a.InventoryNumber,
				Amount:          out.record.Amount,
				AppliedMethod:   string(out.record.Method),
			})
		case errors.Is(err, errSkip):
			resp.SkippedCount++
		case errors.Is(err, domain.ErrPeriodAlreadyAccrued):
			uc.log.Warn().
				Str("asset_id", a.ID).
				Int("year", req.Year).Int("month", req.Month).
				Msg("повторне нарахування за період")
			resp.Errors = append(resp.Errors, dto.AccrualItemError{
				AssetID:         a.ID,
				InventoryNumber: a.InventoryNumber,
				Error:           fmt.Sprintf("амортизацію за %02d.%d вже нараховано", req.Month, req.Year),
			})
		default:
			uc.log.Error().Err(err).
				Str("asset_id", a.ID).
				Int("year", req.Year).Int("month", req.Month).
				Msg("помилка нарахування амортизації за об'єктом")
			resp.Errors = append(resp.Errors, dto.AccrualItemError{
				AssetID:         a.ID,
				InventoryNumber: a.InventoryNumber,
				Error:           err.Error(),
			})
		}
	}

	uc.log.Info().
		Int("year", req.Year).Int("month", req.Month).
		Int("accrued", resp.AccruedCount).Int("skipped", resp.SkippedCount).
		Int("errors", len(resp.Errors)).
		Str("total", resp.TotalAmount.String()).
		Msg("масове нарахування амортизації завершено")

	uc.afterBatch(ctx, userID, req.Year, req.Month, resp, outcomes)
	return resp, nil
}

// AccrueAsset нарахування за один об'єкт за вказаний період.
func (uc *AccrualUseCase) AccrueAsset(ctx context.Context, userID, assetID string, req dto.AccrueAssetRequest) (*dto.DepreciationRecordResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	groups, err := uc.loadGroups(ctx)
	if err != nil {
		return nil, err
	}
	volume := decimal.Zero
	if req.ProductionVolume != nil {
		volume = *req.ProductionVolume
	}

	var out *accrualOutcome
	err = uc.txRunner.Run(ctx, func(tx TxRepos) error {
		var txErr error
		out, txErr = uc.accrueOne(tx, ctx, assetID, req.Year, req.Month, groups, volume, req.ExpenseAccount, userID)
		return txErr
	})
	if err != nil {
		if errors.Is(err, errSkip) {
			return nil, fmt.Errorf("%w: амортизація не нараховується (об'єкт не в експлуатації або сума нульова)", domain.ErrValidation)
		}
		return nil, err
	}

	uc.notifyThresholds(ctx, []*accrualOutcome{out})

	r := dto.FromDepreciationRecord(out.record)
	return &r, nil
}

// Calculate попередній розрахунок без збереження.
func (uc *AccrualUseCase) Calculate(ctx context.Context, req dto.CalculateRequest) (*dto.CalculateResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	a, err := uc.assetRepo.GetByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}

	asOf := time.Now()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}
	volume := decimal.Zero
	if req.ProductionVolume != nil {
		volume = *req.ProductionVolume
	}

	res := calc.Calculate(a, a.MonthsUsed(asOf), volume)
	return &dto.CalculateResponse{
		AssetID:       a.ID,
		Amount:        res.Amount,
		AppliedMethod: string(res.Method),
		BookValue:     a.CurrentBookValue,
		ResidualValue: a.ResidualValue,
	}, nil
}

// ListByAsset історія нарахувань за об'єктом.
func (uc *AccrualUseCase) ListByAsset(ctx context.Context, assetID string, limit, offset int) ([]dto.DepreciationRecordResponse, error) {
	recs, err := uc.recordRepo.ListByAsset(ctx, assetID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepreciationRecordResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.FromDepreciationRecord(r))
	}
	return out, nil
}

// PeriodTotals зведення нарахувань за останні періоди.
func (uc *AccrualUseCase) PeriodTotals(ctx context.Context, limit int) ([]dto.PeriodTotalResponse, error) {
	if limit <= 0 {
		limit = 24
	}
	totals, err := uc.recordRepo.PeriodTotals(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PeriodTotalResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, dto.FromPeriodTotal(t))
	}
	return out, nil
}

func (uc *AccrualUseCase) loadGroups(ctx context.Context) (map[string]*entity.AssetGroup, error) {
	list, err := uc.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	groups := make(map[string]*entity.AssetGroup, len(list))
	for _, g := range list {
		groups[g.ID] = g
	}
	return groups, nil
}

// afterBatch пост-обробка завершеного батчу: сповіщення бухгалтерії,
// сповіщення про граничний знос і запис у журнал аудиту. Помилки тут лише
// логуються: нарахування вже зафіксовані.
func (uc *AccrualUseCase) afterBatch(ctx context.Context, userID string, year, month int, resp *dto.AccruePeriodResponse, outcomes []*accrualOutcome) {
	if resp.AccruedCount > 0 {
		recipients, err := uc.userRepo.ListByRoles(ctx, entity.RoleAdmin, entity.RoleAccountant)
		if err != nil {
			uc.log.Error().Err(err).Msg("не вдалося отримати одержувачів сповіщень")
		} else {
			ns := make([]entity.Notification, 0, len(recipients))
			for _, u := range recipients {
				ns = append(ns, entity.Notification{
					ID:          uuid.New().String(),
					RecipientID: u.ID,
					Type:        entity.NotificationDepreciationDone,
					Title:       fmt.Sprintf("Амортизацію за %02d.%d нараховано", month, year),
					Message: fmt.Sprintf("Нараховано амортизацію за %d об'єктами на суму %s грн.",
						resp.AccruedCount, resp.TotalAmount),
					CreatedAt: time.Now(),
				})
			}
			if err := uc.notifRepo.CreateBatch(ctx, ns); err != nil {
				uc.log.Error().Err(err).Msg("не вдалося створити сповіщення про нарахування")
			}
		}
	}

	uc.notifyThresholds(ctx, outcomes)

	changes, _ := json.Marshal(map[string]any{
		"year": year, "month": month,
		"accrued": resp.AccruedCount, "skipped": resp.SkippedCount,
		"errors": len(resp.Errors), "total_amount": resp.TotalAmount,
	})
	if err := uc.auditRepo.Create(ctx, &entity.AuditLog{
		ID:         uuid.New().String(),
		UserID:     userID,
		Action:     entity.AuditActionDepreciation,
		EntityType: "depreciation_batch",
		ObjectRepr: fmt.Sprintf("Нарахування амортизації за %02d.%d", month, year),
		Changes:    changes,
		Timestamp:  time.Now(),
	}); err != nil {
		uc.log.Error().Err(err).Msg("не вдалося записати аудит нарахування")
	}
}

// notifyThresholds сповіщення про об'єкти, що досягли повної амортизації
// або зносу понад 90%.
func (uc *AccrualUseCase) notifyThresholds(ctx context.Context, outcomes []*accrualOutcome) {
	var ns []entity.Notification
	var recipients []*entity.User

	for _, out := range outcomes {
		if !out.fullyDepreciated && !out.highWear {
			continue
		}
		if recipients == nil {
			var err error
			recipients, err = uc.userRepo.ListByRoles(ctx, entity.RoleAdmin, entity.RoleAccountant)
			if err != nil {
				uc.log.Error().Err(err).Msg("не вдалося отримати одержувачів сповіщень")
				return
			}
		}
		for _, u := range recipients {
			n := entity.Notification{
				ID:          uuid.New().String(),
				RecipientID: u.ID,
				AssetID:     out.record.AssetID,
				CreatedAt:   time.Now(),
			}
			if out.fullyDepreciated {
				n.Type = entity.NotificationFullDepreciation
				n.Title = "Об'єкт повністю замортизовано"
				n.Message = fmt.Sprintf("ОЗ %s «%s» досяг ліквідаційної вартості.", out.inventoryNumber, out.assetName)
			} else {
				n.Type = entity.NotificationHighWear
				n.Title = "Знос понад 90%"
				n.Message = fmt.Sprintf("ОЗ %s «%s» має знос понад 90%%. Розгляньте списання або модернізацію.", out.inventoryNumber, out.assetName)
			}
			ns = append(ns, n)
		}
	}

	if len(ns) > 0 {
		if err := uc.notifRepo.CreateBatch(ctx, ns); err != nil {
			uc.log.Error().Err(err).Msg("не вдалося створити сповіщення про граничний знос")
		}
	}
}
