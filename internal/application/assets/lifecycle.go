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
	"github.com/oz-oblik/assets-backend/internal/domain/ledger"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
	"github.com/oz-oblik/assets-backend/pkg/logger"
)

// LifecycleUseCase операції життєвого циклу ОЗ: оприбуткування, вибуття,
// переоцінка, поліпшення, переміщення. Кожна операція атомарна: запис
// операції, мутація агрегата і проводки фіксуються в одній транзакції.
type LifecycleUseCase struct {
	txRunner     TxRunner
	assetRepo    repository.AssetRepository
	groupRepo    repository.AssetGroupRepository
	locationRepo repository.LocationRepository
	receiptRepo  repository.AssetReceiptRepository
	disposalRepo repository.AssetDisposalRepository
	revalRepo    repository.AssetRevaluationRepository
	imprRepo     repository.AssetImprovementRepository
	transferRepo repository.AssetTransferRepository
	auditRepo    repository.AuditLogRepository
	log          *logger.Logger
}

// NewLifecycleUseCase конструює юзкейс.
func NewLifecycleUseCase(
	txRunner TxRunner,
	assetRepo repository.AssetRepository,
	groupRepo repository.AssetGroupRepository,
	locationRepo repository.LocationRepository,
	receiptRepo repository.AssetReceiptRepository,
	disposalRepo repository.AssetDisposalRepository,
	revalRepo repository.AssetRevaluationRepository,
	imprRepo repository.AssetImprovementRepository,
	transferRepo repository.AssetTransferRepository,
	auditRepo repository.AuditLogRepository,
	log *logger.Logger,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		txRunner:     txRunner,
		assetRepo:    assetRepo,
		groupRepo:    groupRepo,
		locationRepo: locationRepo,
		receiptRepo:  receiptRepo,
		disposalRepo: disposalRepo,
		revalRepo:    revalRepo,
		imprRepo:     imprRepo,
		transferRepo: transferRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

func (uc *LifecycleUseCase) group(ctx context.Context, groupID string) (*entity.AssetGroup, error) {
	g, err := uc.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("група ОЗ %s не знайдена", groupID)
	}
	return g, nil
}

// lockActive читає об'єкт із блокуванням рядка і відхиляє списані.
func lockActive(ctx context.Context, tx TxRepos, assetID string) (*entity.Asset, error) {
	a, err := tx.Assets.GetByIDForUpdate(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if a.Status == entity.AssetStatusDisposed {
		return nil, domain.ErrAssetDisposed
	}
	return a, nil
}

func persistEntries(ctx context.Context, tx TxRepos, entries []entity.AccountEntry, userID string) error {
	for i := range entries {
		entries[i].ID = uuid.New().String()
		entries[i].CreatedBy = userID
		entries[i].CreatedAt = time.Now()
	}
	return tx.Entries.CreateBatch(ctx, entries)
}

// Receipt оприбуткування основного засобу. Не більше одного на об'єкт:
// повторне повертає domain.ErrReceiptExists (обмеження сховища).
// Нульова сума трактується як первісна вартість об'єкта.
func (uc *LifecycleUseCase) Receipt(ctx context.Context, userID, assetID string, req dto.ReceiptRequest) (*dto.ReceiptResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	if !entity.ValidReceiptType(req.ReceiptType) {
		return nil, fmt.Errorf("%w: невідомий тип надходження: %s", domain.ErrValidation, req.ReceiptType)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: сума не може бути від'ємною", domain.ErrValidation)
	}

	var receipt *entity.AssetReceipt
	err := uc.txRunner.Run(ctx, func(tx TxRepos) error {
		a, err := lockActive(ctx, tx, assetID)
		if err != nil {
			return err
		}
		g, err := uc.group(ctx, a.GroupID)
		if err != nil {
			return err
		}

		amount := req.Amount
		if amount.IsZero() {
			amount = a.InitialCost
		}
		receipt = &entity.AssetReceipt{
			ID:                     uuid.New().String(),
			AssetID:                a.ID,
			ReceiptType:            req.ReceiptType,
			DocumentNumber:         req.DocumentNumber,
			DocumentDate:           req.DocumentDate,
			Supplier:               req.Supplier,
			SupplierOrganizationID: req.SupplierOrganizationID,
			Amount:                 amount,
			Notes:                  req.Notes,
			CreatedBy:              userID,
			CreatedAt:              time.Now(),
		}
		if err := tx.Receipts.Create(ctx, receipt); err != nil {
			return err
		}
		return persistEntries(ctx, tx, ledger.ReceiptEntries(a, g, receipt), userID)
	})
	if err != nil {
		return nil, err
	}

	uc.audit(ctx, userID, entity.AuditActionReceipt, "asset_receipt", receipt.ID,
		fmt.Sprintf("Оприбуткування ОЗ, документ %s", receipt.DocumentNumber), nil)

	resp := dto.FromReceipt(receipt)
	return &resp, nil
}

// GetReceipt надходження за об'єктом; domain.ErrNotFound якщо його немає.
func (uc *LifecycleUseCase) GetReceipt(ctx context.Context, assetID string) (*dto.ReceiptResponse, error) {
	r, err := uc.receiptRepo.GetByAssetID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromReceipt(r)
	return &resp, nil
}

// Disposal вибуття основного засобу: знімок вартісних показників, термінальний
// статус, проводки списання. Повторне вибуття повертає domain.ErrAssetDisposed.
func (uc *LifecycleUseCase) Disposal(ctx context.Context, userID, assetID string, req dto.DisposalRequest) (*dto.DisposalResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	if !entity.ValidDisposalType(req.DisposalType) {
		return nil, fmt.Errorf("%w: невідомий тип вибуття: %s", domain.ErrValidation, req.DisposalType)
	}
	if req.DisposalType == entity.DisposalTypeSale && !req.SaleAmount.IsPositive() {
		return nil, fmt.Errorf("%w: для продажу потрібна сума продажу", domain.ErrValidation)
	}

	var disposal *entity.AssetDisposal
	err := uc.txRunner.Run(ctx, func(tx TxRepos) error {
		a, err := lockActive(ctx, tx, assetID)
		if err != nil {
			return err
		}
		g, err := uc.group(ctx, a.GroupID)
		if err != nil {
			return err
		}
		if req.DocumentDate.Before(a.CommissioningDate) {
			return fmt.Errorf("%w: дата вибуття раніше введення в експлуатацію", domain.ErrValidation)
		}

		disposal = &entity.AssetDisposal{
			ID:                                uuid.New().String(),
			AssetID:                           a.ID,
			DisposalType:                      req.DisposalType,
			DocumentNumber:                    req.DocumentNumber,
			DocumentDate:                      req.DocumentDate,
			Reason:                            req.Reason,
			SaleAmount:                        req.SaleAmount,
			BookValueAtDisposal:               a.CurrentBookValue,
			AccumulatedDepreciationAtDisposal: a.AccumulatedDepreciation,
			Notes:                             req.Notes,
			CreatedBy:                         userID,
			CreatedAt:                         time.Now(),
		}
		if err := tx.Disposals.Create(ctx, disposal); err != nil {
			return err
		}

		a.MarkDisposed(req.DocumentDate)
		a.UpdatedAt = time.Now()
		if err := tx.Assets.Update(ctx, a); err != nil {
			return err
		}
		return persistEntries(ctx, tx, ledger.DisposalEntries(a, g, disposal), userID)
	})
	if err != nil {
		return nil, err
	}

	uc.audit(ctx, userID, entity.AuditActionDisposal, "asset_disposal", disposal.ID,
		fmt.Sprintf("Вибуття ОЗ, документ %s", disposal.DocumentNumber), nil)
	uc.log.Info().Str("asset_id", assetID).Str("disposal_type", req.DisposalType).Msg("основний засіб списано")

	resp := dto.FromDisposal(disposal)
	return &resp, nil
}

// GetDisposal вибуття за об'єктом; domain.ErrNotFound якщо об'єкт не списаний.
func (uc *LifecycleUseCase) GetDisposal(ctx context.Context, assetID string) (*dto.DisposalResponse, error) {
	d, err := uc.disposalRepo.GetByAssetID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromDisposal(d)
	return &resp, nil
}

// Revaluate переоцінка за справедливою вартістю (НП(С)БО 7 п. 17):
// перерахунок первісної вартості і зносу за індексом, запис знімка до/після.
func (uc *LifecycleUseCase) Revaluate(ctx context.Context, userID, assetID string, req dto.RevaluationRequest) (*dto.RevaluationResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	if req.FairValue.IsNegative() {
		return nil, fmt.Errorf("%w: справедлива вартість не може бути від'ємною", domain.ErrValidation)
	}

	var reval *entity.AssetRevaluation
	err := uc.txRunner.Run(ctx, func(tx TxRepos) error {
		a, err := lockActive(ctx, tx, assetID)
		if err != nil {
			return err
		}
		g, err := uc.group(ctx, a.GroupID)
		if err != nil {
			return err
		}

		res := a.ApplyRevaluation(req.FairValue)
		a.UpdatedAt = time.Now()

		reval = &entity.AssetRevaluation{
			ID:                uuid.New().String(),
			AssetID:           a.ID,
			RevaluationType:   res.Type,
			Date:              req.Date,
			DocumentNumber:    req.DocumentNumber,
			OldInitialCost:    res.OldInitialCost,
			OldDepreciation:   res.OldDepreciation,
			OldBookValue:      res.OldBookValue,
			FairValue:         req.FairValue,
			NewInitialCost:    res.NewInitialCost,
			NewDepreciation:   res.NewDepreciation,
			NewBookValue:      res.NewBookValue,
			RevaluationAmount: res.RevaluationAmount,
			Notes:             req.Notes,
			CreatedBy:         userID,
			CreatedAt:         time.Now(),
		}
		if err := tx.Revaluations.Create(ctx, reval); err != nil {
			return err
		}
		if err := tx.Assets.Update(ctx, a); err != nil {
			return err
		}
		return persistEntries(ctx, tx, ledger.RevaluationEntries(a, g, reval), userID)
	})
	if err != nil {
		return nil, err
	}

	uc.audit(ctx, userID, entity.AuditActionRevaluation, "asset_revaluation", reval.ID,
		fmt.Sprintf("Переоцінка ОЗ, документ %s", reval.DocumentNumber), nil)

	resp := dto.FromRevaluation(reval)
	return &resp, nil
}

// ListRevaluations історія переоцінок об'єкта.
func (uc *LifecycleUseCase) ListRevaluations(ctx context.Context, assetID string) ([]dto.RevaluationResponse, error) {
	list, err := uc.revalRepo.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RevaluationResponse, 0, len(list))
	for _, rv := range list {
		out = append(out, dto.FromRevaluation(rv))
	}
	return out, nil
}

// Improve поліпшення або ремонт. Капіталізоване поліпшення збільшує первісну
// і залишкову вартість; ремонт лишає агрегат недоторканим і йде на витрати.
func (uc *LifecycleUseCase) Improve(ctx context.Context, userID, assetID string, req dto.ImprovementRequest) (*dto.ImprovementResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	if !entity.ValidImprovementType(req.ImprovementType) {
		return nil, fmt.Errorf("%w: невідомий тип поліпшення: %s", domain.ErrValidation, req.ImprovementType)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: сума має бути більшою за нуль", domain.ErrValidation)
	}

	var impr *entity.AssetImprovement
	err := uc.txRunner.Run(ctx, func(tx TxRepos) error {
		a, err := lockActive(ctx, tx, assetID)
		if err != nil {
			return err
		}
		g, err := uc.group(ctx, a.GroupID)
		if err != nil {
			return err
		}

		impr = &entity.AssetImprovement{
			ID:              uuid.New().String(),
			AssetID:         a.ID,
			ImprovementType: req.ImprovementType,
			Date:            req.Date,
			DocumentNumber:  req.DocumentNumber,
			Description:     req.Description,
			Amount:          req.Amount,
			Contractor:      req.Contractor,
			IncreasesValue:  req.IncreasesValue,
			ExpenseAccount:  req.ExpenseAccount,
			Notes:           req.Notes,
			CreatedBy:       userID,
			CreatedAt:       time.Now(),
		}
		if !impr.IncreasesValue && impr.ExpenseAccount == "" {
			impr.ExpenseAccount = ledger.DefaultRepairExpenseAccount
		}
		if err := tx.Improvements.Create(ctx, impr); err != nil {
			return err
		}

		if impr.IncreasesValue {
			a.CapitalizeImprovement(impr.Amount)
			a.UpdatedAt = time.Now()
			if err := tx.Assets.Update(ctx, a); err != nil {
				return err
			}
		}
		return persistEntries(ctx, tx, ledger.ImprovementEntries(a, g, impr), userID)
	})
	if err != nil {
		return nil, err
	}

	uc.audit(ctx, userID, entity.AuditActionImprovement, "asset_improvement", impr.ID,
		fmt.Sprintf("Поліпшення ОЗ, документ %s", impr.DocumentNumber), nil)

	resp := dto.FromImprovement(impr)
	return &resp, nil
}

// ListImprovements історія поліпшень об'єкта.
func (uc *LifecycleUseCase) ListImprovements(ctx context.Context, assetID string) ([]dto.ImprovementResponse, error) {
	list, err := uc.imprRepo.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ImprovementResponse, 0, len(list))
	for _, imp := range list {
		out = append(out, dto.FromImprovement(imp))
	}
	return out, nil
}

// Transfer внутрішнє переміщення: документ з рядками-знімками балансової
// вартості, оновлення місця і МВО кожного об'єкта, довідкові проводки.
func (uc *LifecycleUseCase) Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*dto.TransferResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	toLoc, err := uc.locationRepo.GetByID(ctx, req.ToLocationID)
	if err != nil {
		return nil, err
	}
	if toLoc == nil {
		return nil, fmt.Errorf("%w: місце призначення не знайдено", domain.ErrValidation)
	}
	var fromName string
	if req.FromLocationID != "" {
		if fromLoc, err := uc.locationRepo.GetByID(ctx, req.FromLocationID); err == nil && fromLoc != nil {
			fromName = fromLoc.Name
		}
	}

	var transfer *entity.AssetTransfer
	err = uc.txRunner.Run(ctx, func(tx TxRepos) error {
		transfer = &entity.AssetTransfer{
			ID:                    uuid.New().String(),
			DocumentNumber:        req.DocumentNumber,
			DocumentDate:          req.DocumentDate,
			FromLocationID:        req.FromLocationID,
			ToLocationID:          req.ToLocationID,
			ToResponsiblePersonID: req.ToResponsiblePersonID,
			Notes:                 req.Notes,
			CreatedBy:             userID,
			CreatedAt:             time.Now(),
		}

		var entries []entity.AccountEntry
		for _, assetID := range req.AssetIDs {
			a, err := lockActive(ctx, tx, assetID)
			if err != nil {
				return fmt.Errorf("об'єкт %s: %w", assetID, err)
			}
			g, err := uc.group(ctx, a.GroupID)
			if err != nil {
				return err
			}

			item := entity.AssetTransferItem{
				ID:         uuid.New().String(),
				TransferID: transfer.ID,
				AssetID:    a.ID,
				BookValue:  a.CurrentBookValue,
			}
			transfer.Items = append(transfer.Items, item)

			a.LocationID = req.ToLocationID
			if req.ToResponsiblePersonID != "" {
				a.ResponsiblePersonID = req.ToResponsiblePersonID
			}
			a.UpdatedAt = time.Now()
			if err := tx.Assets.Update(ctx, a); err != nil {
				return err
			}

			entries = append(entries, ledger.TransferEntries(a, g, transfer, &item, fromName, toLoc.Name)...)
		}

		if err := tx.Transfers.Create(ctx, transfer); err != nil {
			return err
		}
		return persistEntries(ctx, tx, entries, userID)
	})
	if err != nil {
		return nil, err
	}

	uc.audit(ctx, userID, entity.AuditActionUpdate, "asset_transfer", transfer.ID,
		fmt.Sprintf("Переміщення ОЗ, документ %s", transfer.DocumentNumber), nil)

	resp := dto.FromTransfer(transfer)
	return &resp, nil
}

// ListTransfers документи переміщення.
func (uc *LifecycleUseCase) ListTransfers(ctx context.Context, limit, offset int) ([]dto.TransferResponse, error) {
	list, err := uc.transferRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.FromTransfer(t))
	}
	return out, nil
}

func (uc *LifecycleUseCase) audit(ctx context.Context, userID, action, entityType, entityID, repr string, changes map[string]any) {
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
