package assets

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oz-oblik/assets-backend/internal/application/dto"
	"github.com/oz-oblik/assets-backend/internal/domain"
	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
	"github.com/oz-oblik/assets-backend/pkg/logger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// --- фейкові репозиторії в пам'яті ---

type fakeAssetRepo struct {
	assets map[string]*entity.Asset
}

func (r *fakeAssetRepo) Create(_ context.Context, a *entity.Asset) error {
	for _, ex := range r.assets {
		if ex.InventoryNumber == a.InventoryNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *a
	r.assets[a.ID] = &cp
	return nil
}
func (r *fakeAssetRepo) GetByID(_ context.Context, id string) (*entity.Asset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}
func (r *fakeAssetRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Asset, error) {
	return r.GetByID(ctx, id)
}
func (r *fakeAssetRepo) GetByInventoryNumber(_ context.Context, number string) (*entity.Asset, error) {
	for _, a := range r.assets {
		if a.InventoryNumber == number {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeAssetRepo) Update(_ context.Context, a *entity.Asset) error {
	cp := *a
	r.assets[a.ID] = &cp
	return nil
}
func (r *fakeAssetRepo) List(_ context.Context, _ repository.AssetFilter) ([]*entity.Asset, int, error) {
	var out []*entity.Asset
	for _, a := range r.assets {
		cp := *a
		out = append(out, &cp)
	}
	return out, len(out), nil
}
func (r *fakeAssetRepo) ListActive(_ context.Context, _ string) ([]*entity.Asset, error) {
	return nil, nil
}
func (r *fakeAssetRepo) Delete(_ context.Context, id string) error {
	delete(r.assets, id)
	return nil
}

type fakeGroupRepo struct{ groups map[string]*entity.AssetGroup }

func (r *fakeGroupRepo) Create(_ context.Context, g *entity.AssetGroup) error {
	r.groups[g.ID] = g
	return nil
}
func (r *fakeGroupRepo) GetByID(_ context.Context, id string) (*entity.AssetGroup, error) {
	return r.groups[id], nil
}
func (r *fakeGroupRepo) GetByCode(_ context.Context, _ string) (*entity.AssetGroup, error) {
	return nil, nil
}
func (r *fakeGroupRepo) Update(_ context.Context, _ *entity.AssetGroup) error { return nil }
func (r *fakeGroupRepo) List(_ context.Context) ([]*entity.AssetGroup, error) { return nil, nil }
func (r *fakeGroupRepo) Delete(_ context.Context, _ string) error             { return nil }

type fakeLocationRepo struct{ locations map[string]*entity.Location }

func (r *fakeLocationRepo) Create(_ context.Context, l *entity.Location) error {
	r.locations[l.ID] = l
	return nil
}
func (r *fakeLocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	return r.locations[id], nil
}
func (r *fakeLocationRepo) Update(_ context.Context, _ *entity.Location) error { return nil }
func (r *fakeLocationRepo) List(_ context.Context, _ bool) ([]*entity.Location, error) {
	return nil, nil
}
func (r *fakeLocationRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeReceiptRepo struct{ byAsset map[string]*entity.AssetReceipt }

func (r *fakeReceiptRepo) Create(_ context.Context, rec *entity.AssetReceipt) error {
	if _, ok := r.byAsset[rec.AssetID]; ok {
		return domain.ErrReceiptExists
	}
	r.byAsset[rec.AssetID] = rec
	return nil
}
func (r *fakeReceiptRepo) GetByAssetID(_ context.Context, assetID string) (*entity.AssetReceipt, error) {
	return r.byAsset[assetID], nil
}
func (r *fakeReceiptRepo) List(_ context.Context, _, _ int) ([]*entity.AssetReceipt, error) {
	return nil, nil
}

type fakeDisposalRepo struct{ byAsset map[string]*entity.AssetDisposal }

func (r *fakeDisposalRepo) Create(_ context.Context, d *entity.AssetDisposal) error {
	if _, ok := r.byAsset[d.AssetID]; ok {
		return domain.ErrDisposalExists
	}
	r.byAsset[d.AssetID] = d
	return nil
}
func (r *fakeDisposalRepo) GetByAssetID(_ context.Context, assetID string) (*entity.AssetDisposal, error) {
	return r.byAsset[assetID], nil
}
func (r *fakeDisposalRepo) List(_ context.Context, _, _ int) ([]*entity.AssetDisposal, error) {
	return nil, nil
}

type fakeRevalRepo struct{ list []*entity.AssetRevaluation }

func (r *fakeRevalRepo) Create(_ context.Context, rv *entity.AssetRevaluation) error {
	r.list = append(r.list, rv)
	return nil
}
func (r *fakeRevalRepo) ListByAsset(_ context.Context, assetID string) ([]*entity.AssetRevaluation, error) {
	var out []*entity.AssetRevaluation
	for _, rv := range r.list {
		if rv.AssetID == assetID {
			out = append(out, rv)
		}
	}
	return out, nil
}
func (r *fakeRevalRepo) List(_ context.Context, _, _ int) ([]*entity.AssetRevaluation, error) {
	return r.list, nil
}

type fakeImprRepo struct{ list []*entity.AssetImprovement }

func (r *fakeImprRepo) Create(_ context.Context, imp *entity.AssetImprovement) error {
	r.list = append(r.list, imp)
	return nil
}
func (r *fakeImprRepo) ListByAsset(_ context.Context, assetID string) ([]*entity.AssetImprovement, error) {
	var out []*entity.AssetImprovement
	for _, imp := range r.list {
		if imp.AssetID == assetID {
			out = append(out, imp)
		}
	}
	return out, nil
}
func (r *fakeImprRepo) List(_ context.Context, _, _ int) ([]*entity.AssetImprovement, error) {
	return r.list, nil
}

type fakeTransferRepo struct{ list []*entity.AssetTransfer }

func (r *fakeTransferRepo) Create(_ context.Context, t *entity.AssetTransfer) error {
	r.list = append(r.list, t)
	return nil
}
func (r *fakeTransferRepo) GetByID(_ context.Context, id string) (*entity.AssetTransfer, error) {
	for _, t := range r.list {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (r *fakeTransferRepo) List(_ context.Context, _, _ int) ([]*entity.AssetTransfer, error) {
	return r.list, nil
}
func (r *fakeTransferRepo) ListByAsset(_ context.Context, _ string) ([]*entity.AssetTransfer, error) {
	return nil, nil
}

type fakeEntryRepo struct{ entries []entity.AccountEntry }

func (r *fakeEntryRepo) Create(_ context.Context, e *entity.AccountEntry) error {
	r.entries = append(r.entries, *e)
	return nil
}
func (r *fakeEntryRepo) CreateBatch(_ context.Context, es []entity.AccountEntry) error {
	r.entries = append(r.entries, es...)
	return nil
}
func (r *fakeEntryRepo) List(_ context.Context, _ repository.EntryFilter) ([]*entity.AccountEntry, int, error) {
	return nil, 0, nil
}
func (r *fakeEntryRepo) ListByAsset(_ context.Context, _ string) ([]*entity.AccountEntry, error) {
	return nil, nil
}
func (r *fakeEntryRepo) Turnovers(_ context.Context, _, _ *time.Time) ([]repository.AccountTurnover, error) {
	return nil, nil
}

type fakeAuditRepo struct{ logs []entity.AuditLog }

func (r *fakeAuditRepo) Create(_ context.Context, l *entity.AuditLog) error {
	r.logs = append(r.logs, *l)
	return nil
}
func (r *fakeAuditRepo) List(_ context.Context, _ repository.AuditFilter) ([]*entity.AuditLog, int, error) {
	return nil, 0, nil
}

type fakeAnalyticsRepo struct{}

func (r *fakeAnalyticsRepo) AssetStatistics(_ context.Context) (*repository.AssetStatistics, error) {
	return &repository.AssetStatistics{}, nil
}

type fakeTxRunner struct{ repos TxRepos }

func (r *fakeTxRunner) Run(_ context.Context, fn func(TxRepos) error) error {
	return fn(r.repos)
}

// --- тестове оточення ---

type env struct {
	crud      *AssetUseCase
	lifecycle *LifecycleUseCase

	assets    *fakeAssetRepo
	entries   *fakeEntryRepo
	disposals *fakeDisposalRepo
	revals    *fakeRevalRepo
	audits    *fakeAuditRepo

	groupID    string
	locationID string
}

func newEnv() *env {
	groupID := uuid.New().String()
	locationID := uuid.New().String()

	assets := &fakeAssetRepo{assets: map[string]*entity.Asset{}}
	groups := &fakeGroupRepo{groups: map[string]*entity.AssetGroup{
		groupID: {ID: groupID, Code: "4", Name: "Машини та обладнання", AccountNumber: "104", DepreciationAccount: "131"},
	}}
	locations := &fakeLocationRepo{locations: map[string]*entity.Location{
		locationID: {ID: locationID, Name: "Цех №2", IsActive: true},
	}}
	receipts := &fakeReceiptRepo{byAsset: map[string]*entity.AssetReceipt{}}
	disposals := &fakeDisposalRepo{byAsset: map[string]*entity.AssetDisposal{}}
	revals := &fakeRevalRepo{}
	imprs := &fakeImprRepo{}
	transfers := &fakeTransferRepo{}
	entries := &fakeEntryRepo{}
	audits := &fakeAuditRepo{}
	log := logger.New(logger.Config{Level: "error"})

	txRunner := &fakeTxRunner{repos: TxRepos{
		Assets:       assets,
		Receipts:     receipts,
		Disposals:    disposals,
		Revaluations: revals,
		Improvements: imprs,
		Transfers:    transfers,
		Entries:      entries,
	}}

	return &env{
		crud:      NewAssetUseCase(assets, groups, &fakeAnalyticsRepo{}, audits, log),
		lifecycle: NewLifecycleUseCase(txRunner, assets, groups, locations, receipts, disposals, revals, imprs, transfers, audits, log),
		assets:    assets,
		entries:   entries,
		disposals: disposals,
		revals:    revals,
		audits:    audits,
		groupID:   groupID,
		locationID: locationID,
	}
}

func (e *env) seedAsset(t *testing.T) *entity.Asset {
	t.Helper()
	a := &entity.Asset{
		ID:                    uuid.New().String(),
		InventoryNumber:       "104-0001",
		Name:                  "Верстат токарний",
		GroupID:               e.groupID,
		Status:                entity.AssetStatusActive,
		InitialCost:           dec("12000"),
		ResidualValue:         dec("0"),
		DepreciationMethod:    entity.MethodStraightLine,
		UsefulLifeMonths:      60,
		CommissioningDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DepreciationStartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	a.InitBookValue()
	require.NoError(t, a.Validate())
	e.assets.assets[a.ID] = a
	return a
}

func TestAssetCreate(t *testing.T) {
	ctx := context.Background()
	e := newEnv()

	req := dto.CreateAssetRequest{
		InventoryNumber:      "104-0007",
		Name:                 "Компресор",
		GroupID:              e.groupID,
		InitialCost:          dec("24000"),
		ResidualValue:        dec("1000"),
		IncomingDepreciation: dec("0"),
		DepreciationMethod:   "straight_line",
		UsefulLifeMonths:     48,
		CommissioningDate:    time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
	}

	resp, err := e.crud.Create(ctx, "u-1", req)
	require.NoError(t, err)

	assert.True(t, dec("24000").Equal(resp.CurrentBookValue))
	assert.True(t, resp.AccumulatedDepreciation.IsZero())
	assert.Equal(t, entity.AssetStatusActive, resp.Status)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), resp.DepreciationStartDate,
		"амортизація стартує з першого числа наступного місяця")

	t.Run("дублікат інвентарного номера", func(t *testing.T) {
		_, err := e.crud.Create(ctx, "u-1", req)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("невідомий метод амортизації", func(t *testing.T) {
		bad := req
		bad.InventoryNumber = "104-0008"
		bad.DepreciationMethod = "linear"
		_, err := e.crud.Create(ctx, "u-1", bad)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestDisposal(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	a := e.seedAsset(t)
	// трохи амортизації, щоб вибуття породило дві проводки списання
	stored := e.assets.assets[a.ID]
	stored.CurrentBookValue = dec("4000")
	stored.AccumulatedDepreciation = dec("8000")

	req := dto.DisposalRequest{
		DisposalType:   entity.DisposalTypeSale,
		DocumentNumber: "АКТ-1",
		DocumentDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Reason:         "ТОВ «Покупець»",
		SaleAmount:     dec("5000"),
	}

	resp, err := e.lifecycle.Disposal(ctx, "u-1", a.ID, req)
	require.NoError(t, err)

	assert.True(t, dec("4000").Equal(resp.BookValueAtDisposal), "знімок залишкової вартості")
	assert.True(t, dec("8000").Equal(resp.AccumulatedDepreciationAtDisposal))

	updated := e.assets.assets[a.ID]
	assert.Equal(t, entity.AssetStatusDisposed, updated.Status)
	require.NotNil(t, updated.DisposalDate)

	assert.Len(t, e.entries.entries, 3, "знос + залишкова + дохід від продажу")

	t.Run("повторне вибуття", func(t *testing.T) {
		_, err := e.lifecycle.Disposal(ctx, "u-1", a.ID, req)
		assert.ErrorIs(t, err, domain.ErrAssetDisposed)
	})

	t.Run("продаж без суми", func(t *testing.T) {
		b := e.seedAssetWithNumber(t, "104-0002")
		bad := req
		bad.SaleAmount = decimal.Zero
		_, err := e.lifecycle.Disposal(ctx, "u-1", b.ID, bad)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func (e *env) seedAssetWithNumber(t *testing.T, number string) *entity.Asset {
	t.Helper()
	a := e.seedAsset(t)
	stored := e.assets.assets[a.ID]
	stored.InventoryNumber = number
	return stored
}

func TestRevaluate(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	a := e.seedAsset(t)
	stored := e.assets.assets[a.ID]
	stored.CurrentBookValue = dec("10000")
	stored.AccumulatedDepreciation = dec("2000")

	resp, err := e.lifecycle.Revaluate(ctx, "u-1", a.ID, dto.RevaluationRequest{
		FairValue:      dec("12500"),
		Date:           time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		DocumentNumber: "ПЕР-1",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RevaluationUpward, resp.RevaluationType)
	assert.True(t, dec("15000").Equal(resp.NewInitialCost))
	assert.True(t, dec("2500").Equal(resp.NewDepreciation))
	assert.True(t, dec("12500").Equal(resp.NewBookValue))

	updated := e.assets.assets[a.ID]
	assert.True(t, dec("12500").Equal(updated.CurrentBookValue), "агрегат оновлено")

	require.Len(t, e.entries.entries, 1)
	assert.Equal(t, "104", e.entries.entries[0].DebitAccount)
	assert.Equal(t, "411", e.entries.entries[0].CreditAccount)
}

func TestImprove(t *testing.T) {
	ctx := context.Background()
	e := newEnv()

	t.Run("капіталізація збільшує вартість", func(t *testing.T) {
		a := e.seedAsset(t)
		_, err := e.lifecycle.Improve(ctx, "u-1", a.ID, dto.ImprovementRequest{
			ImprovementType: entity.ImprovementTypeModernization,
			Date:            time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
			DocumentNumber:  "МОД-1",
			Description:     "заміна ЧПК",
			Amount:          dec("3000"),
			IncreasesValue:  true,
		})
		require.NoError(t, err)

		updated := e.assets.assets[a.ID]
		assert.True(t, dec("15000").Equal(updated.InitialCost))
		assert.True(t, dec("15000").Equal(updated.CurrentBookValue))
	})

	t.Run("ремонт не зачіпає агрегат", func(t *testing.T) {
		e := newEnv()
		a := e.seedAsset(t)
		_, err := e.lifecycle.Improve(ctx, "u-1", a.ID, dto.ImprovementRequest{
			ImprovementType: entity.ImprovementTypeCurrent,
			Date:            time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
			DocumentNumber:  "РЕМ-1",
			Description:     "заміна пасів",
			Amount:          dec("500"),
		})
		require.NoError(t, err)

		updated := e.assets.assets[a.ID]
		assert.True(t, dec("12000").Equal(updated.InitialCost))
		require.Len(t, e.entries.entries, 1)
		assert.Equal(t, "91", e.entries.entries[0].DebitAccount, "типовий рахунок витрат на ремонт")
	})
}

func TestReceipt(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	a := e.seedAsset(t)

	req := dto.ReceiptRequest{
		ReceiptType:    entity.ReceiptTypePurchase,
		DocumentNumber: "ПН-12",
		DocumentDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Supplier:       "ТОВ «Постачальник»",
	}

	resp, err := e.lifecycle.Receipt(ctx, "u-1", a.ID, req)
	require.NoError(t, err)
	assert.True(t, dec("12000").Equal(resp.Amount), "нульова сума означає первісну вартість")

	require.Len(t, e.entries.entries, 1)
	assert.Equal(t, "104", e.entries.entries[0].DebitAccount)
	assert.Equal(t, "152", e.entries.entries[0].CreditAccount)

	t.Run("повторне оприбуткування", func(t *testing.T) {
		_, err := e.lifecycle.Receipt(ctx, "u-1", a.ID, req)
		assert.ErrorIs(t, err, domain.ErrReceiptExists)
	})
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	a := e.seedAsset(t)
	personID := uuid.New().String()

	resp, err := e.lifecycle.Transfer(ctx, "u-1", dto.TransferRequest{
		DocumentNumber:        "ВП-3",
		DocumentDate:          time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		ToLocationID:          e.locationID,
		ToResponsiblePersonID: personID,
		AssetIDs:              []string{a.ID},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.True(t, dec("12000").Equal(resp.Items[0].BookValue), "знімок балансової вартості")

	updated := e.assets.assets[a.ID]
	assert.Equal(t, e.locationID, updated.LocationID)
	assert.Equal(t, personID, updated.ResponsiblePersonID)

	require.Len(t, e.entries.entries, 1)
	assert.Equal(t, e.entries.entries[0].DebitAccount, e.entries.entries[0].CreditAccount)
}
