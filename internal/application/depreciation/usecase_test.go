package depreciation

import (
	"context"
	"fmt"
	"testing"
	"time"

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
	r.assets[a.ID] = a
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
	return nil, 0, nil
}
func (r *fakeAssetRepo) ListActive(_ context.Context, _ string) ([]*entity.Asset, error) {
	var out []*entity.Asset
	for _, a := range r.assets {
		if a.Status == entity.AssetStatusActive {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeAssetRepo) Delete(_ context.Context, id string) error {
	delete(r.assets, id)
	return nil
}

type fakeRecordRepo struct {
	records []*entity.DepreciationRecord
	byKey   map[string]bool
}

func recKey(assetID string, y, m int) string { return fmt.Sprintf("%s/%d/%d", assetID, y, m) }

func (r *fakeRecordRepo) Create(_ context.Context, rec *entity.DepreciationRecord) error {
	key := recKey(rec.AssetID, rec.PeriodYear, rec.PeriodMonth)
	if r.byKey[key] {
		return domain.ErrPeriodAlreadyAccrued
	}
	r.byKey[key] = true
	r.records = append(r.records, rec)
	return nil
}
func (r *fakeRecordRepo) Exists(_ context.Context, assetID string, y, m int) (bool, error) {
	return r.byKey[recKey(assetID, y, m)], nil
}
func (r *fakeRecordRepo) ListByAsset(_ context.Context, assetID string, _, _ int) ([]*entity.DepreciationRecord, error) {
	var out []*entity.DepreciationRecord
	for _, rec := range r.records {
		if rec.AssetID == assetID {
			out = append(out, rec)
		}
	}
	return out, nil
}
func (r *fakeRecordRepo) ListByPeriod(_ context.Context, y, m int) ([]*entity.DepreciationRecord, error) {
	var out []*entity.DepreciationRecord
	for _, rec := range r.records {
		if rec.PeriodYear == y && rec.PeriodMonth == m {
			out = append(out, rec)
		}
	}
	return out, nil
}
func (r *fakeRecordRepo) PeriodTotals(_ context.Context, _ int) ([]repository.PeriodTotal, error) {
	return nil, nil
}

type fakeEntryRepo struct {
	entries []entity.AccountEntry
}

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

type fakeGroupRepo struct {
	groups map[string]*entity.AssetGroup
}

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
func (r *fakeGroupRepo) List(_ context.Context) ([]*entity.AssetGroup, error) {
	var out []*entity.AssetGroup
	for _, g := range r.groups {
		out = append(out, g)
	}
	return out, nil
}
func (r *fakeGroupRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error { return nil }
func (r *fakeUserRepo) GetByID(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(_ context.Context, _ *entity.User) error { return nil }
func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	return r.users, nil
}
func (r *fakeUserRepo) ListByRoles(_ context.Context, roles ...string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		for _, role := range roles {
			if u.Role == role {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

type fakeNotifRepo struct {
	notifications []entity.Notification
}

func (r *fakeNotifRepo) Create(_ context.Context, n *entity.Notification) error {
	r.notifications = append(r.notifications, *n)
	return nil
}
func (r *fakeNotifRepo) CreateBatch(_ context.Context, ns []entity.Notification) error {
	r.notifications = append(r.notifications, ns...)
	return nil
}
func (r *fakeNotifRepo) ListByRecipient(_ context.Context, _ string, _ bool, _, _ int) ([]*entity.Notification, error) {
	return nil, nil
}
func (r *fakeNotifRepo) CountUnread(_ context.Context, _ string) (int, error) { return 0, nil }
func (r *fakeNotifRepo) MarkRead(_ context.Context, _, _ string) error        { return nil }
func (r *fakeNotifRepo) MarkAllRead(_ context.Context, _ string) error        { return nil }

type fakeAuditRepo struct {
	logs []entity.AuditLog
}

func (r *fakeAuditRepo) Create(_ context.Context, l *entity.AuditLog) error {
	r.logs = append(r.logs, *l)
	return nil
}
func (r *fakeAuditRepo) List(_ context.Context, _ repository.AuditFilter) ([]*entity.AuditLog, int, error) {
	return nil, 0, nil
}

type fakeTxRunner struct {
	repos TxRepos
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(TxRepos) error) error {
	return fn(r.repos)
}

// --- тестове оточення ---

type env struct {
	uc      *AccrualUseCase
	assets  *fakeAssetRepo
	records *fakeRecordRepo
	entries *fakeEntryRepo
	notifs  *fakeNotifRepo
	audits  *fakeAuditRepo
}

func newEnv() *env {
	assets := &fakeAssetRepo{assets: map[string]*entity.Asset{}}
	records := &fakeRecordRepo{byKey: map[string]bool{}}
	entries := &fakeEntryRepo{}
	groups := &fakeGroupRepo{groups: map[string]*entity.AssetGroup{
		"g-1": {ID: "g-1", Code: "4", Name: "Машини та обладнання", AccountNumber: "104", DepreciationAccount: "131"},
	}}
	users := &fakeUserRepo{users: []*entity.User{
		{ID: "u-acc", Role: entity.RoleAccountant},
		{ID: "u-view", Role: entity.RoleViewer},
	}}
	notifs := &fakeNotifRepo{}
	audits := &fakeAuditRepo{}

	txRunner := &fakeTxRunner{repos: TxRepos{Assets: assets, Records: records, Entries: entries}}
	log := logger.New(logger.Config{Level: "error"})

	return &env{
		uc:      NewAccrualUseCase(txRunner, assets, groups, records, users, notifs, audits, log),
		assets:  assets,
		records: records,
		entries: entries,
		notifs:  notifs,
		audits:  audits,
	}
}

func newActiveAsset(id, invNumber string) *entity.Asset {
	a := &entity.Asset{
		ID:                    id,
		InventoryNumber:       invNumber,
		Name:                  "Верстат",
		GroupID:               "g-1",
		Status:                entity.AssetStatusActive,
		InitialCost:           dec("12000"),
		ResidualValue:         dec("0"),
		IncomingDepreciation:  dec("0"),
		DepreciationMethod:    entity.MethodStraightLine,
		UsefulLifeMonths:      60,
		CommissioningDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DepreciationStartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	a.InitBookValue()
	return a
}

func TestAccruePeriod(t *testing.T) {
	ctx := context.Background()

	t.Run("нараховує для всіх активних об'єктів", func(t *testing.T) {
		e := newEnv()
		e.assets.assets["a-1"] = newActiveAsset("a-1", "104-0001")
		e.assets.assets["a-2"] = newActiveAsset("a-2", "104-0002")

		resp, err := e.uc.AccruePeriod(ctx, "u-1", dto.AccruePeriodRequest{Year: 2024, Month: 3})
		require.NoError(t, err)

		assert.Equal(t, 2, resp.AccruedCount)
		assert.Equal(t, 0, resp.SkippedCount)
		assert.Empty(t, resp.Errors)
		assert.True(t, dec("400.00").Equal(resp.TotalAmount), "2 x 200.00, отримано %s", resp.TotalAmount)

		require.Len(t, e.records.records, 2)
		assert.Len(t, e.entries.entries, 2, "одна проводка на кожне нарахування")
		assert.Equal(t, "92", e.entries.entries[0].DebitAccount)
		assert.Equal(t, "131", e.entries.entries[0].CreditAccount)

		a := e.assets.assets["a-1"]
		assert.True(t, dec("11800").Equal(a.CurrentBookValue), "вартість об'єкта зменшено")
		assert.True(t, dec("200").Equal(a.AccumulatedDepreciation))
	})

	t.Run("повторне нарахування того ж періоду — помилка за об'єктом", func(t *testing.T) {
		e := newEnv()
		e.assets.assets["a-1"] = newActiveAsset("a-1", "104-0001")

		_, err := e.uc.AccruePeriod(ctx, "u-1", dto.AccruePeriodRequest{Year: 2024, Month: 3})
		require.NoError(t, err)

		resp, err := e.uc.AccruePeriod(ctx, "u-1", dto.AccruePeriodRequest{Year: 2024, Month: 3})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.AccruedCount)
		assert.Equal(t, 0, resp.SkippedCount)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "a-1", resp.Errors[0].AssetID)
		assert.Equal(t, "104-0001", resp.Errors[0].InventoryNumber)
		assert.Contains(t, resp.Errors[0].Error, "вже нараховано")
		assert.Len(t, e.records.records, 1, "другого запису немає")

		a := e.assets.assets["a-1"]
		assert.True(t, dec("11800").Equal(a.CurrentBookValue), "вартість не змінилася вдруге")
	})

	t.Run("фільтр за переліком об'єктів", func(t *testing.T) {
		e := newEnv()
		e.assets.assets["a-1"] = newActiveAsset("a-1", "104-0001")
		e.assets.assets["a-2"] = newActiveAsset("a-2", "104-0002")

		resp, err := e.uc.AccruePeriod(ctx, "u-1", dto.AccruePeriodRequest{
			Year: 2024, Month: 3, AssetIDs: []string{"a-2"},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, resp.AccruedCount)
		assert.Equal(t, 0, resp.SkippedCount)
		assert.Empty(t, resp.Errors)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "a-2", resp.Items[0].AssetID)
		require.Len(t, e.records.records, 1)
		assert.Equal(t, "a-2", e.records.records[0].AssetID)

		untouched := e.assets.assets["a-1"]
		assert.True(t, dec("12000").Equal(untouched.CurrentBookValue), "необраний об'єкт без змін")
	})

	t.Run("списані об'єкти не беруть участі", func(t *testing.T) {
		e := newEnv()
		disposed := newActiveAsset("a-1", "104-0001")
		disposed.Status = entity.AssetStatusDisposed
		e.assets.assets["a-1"] = disposed

		resp, err := e.uc.AccruePeriod(ctx, "u-1", dto.AccruePeriodRequest{Year: 2024, Month: 3})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.AccruedCount)
		assert.Empty(t, e.records.records)
	})

	t.Run("помилка за одним об'єктом не зупиняє батч", func(t *testing.T) {
		e := newEnv()
		e.assets.assets["a-1"] = newActiveAsset("a-1", "104-0001")
		orphan := newActiveAsset("a-2", "104-0002")
		orphan.GroupID = "missing"
		e.assets.assets["a-2"] = orphan

		resp, err := e.uc.AccruePeriod(ctx, "u-1", dto.AccruePeriodRequest{Year: 2024, Month: 3})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.AccruedCount)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "a-2", resp.Errors[0].AssetID)
	})

	t.Run("сповіщення та аудит після батчу", func(t *testing.T) {
		e := newEnv()
		e.assets.assets["a-1"] = newActiveAsset("a-1", "104-0001")

		_, err := e.uc.AccruePeriod(ctx, "u-1", dto.AccruePeriodRequest{Year: 2024, Month: 3})
		require.NoError(t, err)

		require.Len(t, e.notifs.notifications, 1, "сповіщення лише бухгалтеру, не глядачу")
		assert.Equal(t, "u-acc", e.notifs.notifications[0].RecipientID)
		assert.Equal(t, entity.NotificationDepreciationDone, e.notifs.notifications[0].Type)

		require.Len(t, e.audits.logs, 1)
		assert.Equal(t, entity.AuditActionDepreciation, e.audits.logs[0].Action)
	})

	t.Run("останнє нарахування обмежене ліквідаційною вартістю", func(t *testing.T) {
		e := newEnv()
		a := newActiveAsset("a-1", "104-0001")
		a.CurrentBookValue = dec("150.00")
		a.AccumulatedDepreciation = dec("11850.00")
		e.assets.assets["a-1"] = a

		resp, err := e.uc.AccruePeriod(ctx, "u-1", dto.AccruePeriodRequest{Year: 2028, Month: 12})
		require.NoError(t, err)
		require.Equal(t, 1, resp.AccruedCount)
		assert.True(t, dec("150.00").Equal(resp.Items[0].Amount))

		updated := e.assets.assets["a-1"]
		assert.True(t, updated.CurrentBookValue.IsZero())

		// повністю замортизований об'єкт породжує сповіщення
		var found bool
		for _, n := range e.notifs.notifications {
			if n.Type == entity.NotificationFullDepreciation {
				found = true
			}
		}
		assert.True(t, found, "очікували сповіщення про повну амортизацію")
	})
}

func TestAccrueAsset(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	e.assets.assets["a-1"] = newActiveAsset("a-1", "104-0001")

	rec, err := e.uc.AccrueAsset(ctx, "u-1", "a-1", dto.AccrueAssetRequest{Year: 2024, Month: 3})
	require.NoError(t, err)
	assert.True(t, dec("200.00").Equal(rec.Amount))
	assert.True(t, dec("12000").Equal(rec.BookValueBefore))
	assert.True(t, dec("11800.00").Equal(rec.BookValueAfter))

	_, err = e.uc.AccrueAsset(ctx, "u-1", "a-1", dto.AccrueAssetRequest{Year: 2024, Month: 3})
	assert.ErrorIs(t, err, domain.ErrPeriodAlreadyAccrued)
}

func TestCalculatePreview(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	e.assets.assets["a-1"] = newActiveAsset("a-1", "104-0001")

	resp, err := e.uc.Calculate(ctx, dto.CalculateRequest{AssetID: "a-1"})
	require.NoError(t, err)
	assert.True(t, dec("200.00").Equal(resp.Amount))
	assert.Equal(t, string(entity.MethodStraightLine), resp.AppliedMethod)

	assert.Empty(t, e.records.records, "попередній розрахунок нічого не зберігає")
}
