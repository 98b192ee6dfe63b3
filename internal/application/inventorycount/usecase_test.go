package inventorycount

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

type fakeInvRepo struct {
	inventories map[string]*entity.Inventory
	items       map[string][]*entity.InventoryItem
}

func (r *fakeInvRepo) Create(_ context.Context, inv *entity.Inventory) error {
	cp := *inv
	r.inventories[inv.ID] = &cp
	return nil
}
func (r *fakeInvRepo) GetByID(_ context.Context, id string) (*entity.Inventory, error) {
	inv, ok := r.inventories[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}
func (r *fakeInvRepo) GetByNumber(_ context.Context, number string) (*entity.Inventory, error) {
	for _, inv := range r.inventories {
		if inv.Number == number {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeInvRepo) Update(_ context.Context, inv *entity.Inventory) error {
	cp := *inv
	r.inventories[inv.ID] = &cp
	return nil
}
func (r *fakeInvRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Inventory, error) {
	return nil, nil
}
func (r *fakeInvRepo) AddItem(_ context.Context, item *entity.InventoryItem) error {
	cp := *item
	r.items[item.InventoryID] = append(r.items[item.InventoryID], &cp)
	return nil
}
func (r *fakeInvRepo) AddItems(ctx context.Context, items []entity.InventoryItem) error {
	for i := range items {
		if err := r.AddItem(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}
func (r *fakeInvRepo) GetItem(_ context.Context, inventoryID, assetID string) (*entity.InventoryItem, error) {
	for _, it := range r.items[inventoryID] {
		if it.AssetID == assetID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeInvRepo) UpdateItem(_ context.Context, item *entity.InventoryItem) error {
	for i, it := range r.items[item.InventoryID] {
		if it.AssetID == item.AssetID {
			cp := *item
			r.items[item.InventoryID][i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}
func (r *fakeInvRepo) ListItems(_ context.Context, inventoryID string) ([]*entity.InventoryItem, error) {
	return r.items[inventoryID], nil
}

type fakeAssetRepo struct{ active []*entity.Asset }

func (r *fakeAssetRepo) Create(_ context.Context, _ *entity.Asset) error { return nil }
func (r *fakeAssetRepo) GetByID(_ context.Context, _ string) (*entity.Asset, error) {
	return nil, nil
}
func (r *fakeAssetRepo) GetByIDForUpdate(_ context.Context, _ string) (*entity.Asset, error) {
	return nil, nil
}
func (r *fakeAssetRepo) GetByInventoryNumber(_ context.Context, _ string) (*entity.Asset, error) {
	return nil, nil
}
func (r *fakeAssetRepo) Update(_ context.Context, _ *entity.Asset) error { return nil }
func (r *fakeAssetRepo) List(_ context.Context, _ repository.AssetFilter) ([]*entity.Asset, int, error) {
	return nil, 0, nil
}
func (r *fakeAssetRepo) ListActive(_ context.Context, locationID string) ([]*entity.Asset, error) {
	if locationID == "" {
		return r.active, nil
	}
	var out []*entity.Asset
	for _, a := range r.active {
		if a.LocationID == locationID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAssetRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeUserRepo struct{ users []*entity.User }

func (r *fakeUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }
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

type fakeNotifRepo struct{ notifications []entity.Notification }

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

type fakeAuditRepo struct{ logs []entity.AuditLog }

func (r *fakeAuditRepo) Create(_ context.Context, l *entity.AuditLog) error {
	r.logs = append(r.logs, *l)
	return nil
}
func (r *fakeAuditRepo) List(_ context.Context, _ repository.AuditFilter) ([]*entity.AuditLog, int, error) {
	return nil, 0, nil
}

type env struct {
	uc     *InventoryUseCase
	inv    *fakeInvRepo
	notifs *fakeNotifRepo
}

func newEnv(active ...*entity.Asset) *env {
	inv := &fakeInvRepo{
		inventories: map[string]*entity.Inventory{},
		items:       map[string][]*entity.InventoryItem{},
	}
	notifs := &fakeNotifRepo{}
	users := &fakeUserRepo{users: []*entity.User{{ID: "u-acc", Role: entity.RoleAccountant}}}
	log := logger.New(logger.Config{Level: "error"})

	return &env{
		uc:     NewInventoryUseCase(inv, &fakeAssetRepo{active: active}, users, notifs, &fakeAuditRepo{}, log),
		inv:    inv,
		notifs: notifs,
	}
}

func activeAsset(book string) *entity.Asset {
	return &entity.Asset{
		ID:               uuid.New().String(),
		Status:           entity.AssetStatusActive,
		CurrentBookValue: dec(book),
	}
}

func createRequest(number string) dto.CreateInventoryRequest {
	return dto.CreateInventoryRequest{
		Number:      number,
		Date:        time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
		OrderNumber: "НАК-5",
		OrderDate:   time.Date(2024, 10, 25, 0, 0, 0, 0, time.UTC),
	}
}

func TestInventoryFlow(t *testing.T) {
	ctx := context.Background()
	a1 := activeAsset("12000")
	a2 := activeAsset("5000")
	e := newEnv(a1, a2)

	created, err := e.uc.Create(ctx, "u-1", createRequest("ІНВ-1"))
	require.NoError(t, err)
	assert.Equal(t, entity.InventoryStatusDraft, created.Status)

	t.Run("дублікат номера", func(t *testing.T) {
		_, err := e.uc.Create(ctx, "u-1", createRequest("ІНВ-1"))
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	populated, err := e.uc.Populate(ctx, "u-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InventoryStatusInProgress, populated.Status)
	require.Len(t, populated.Items, 2, "опис — знімок активної картотеки")
	for _, it := range populated.Items {
		assert.True(t, it.IsFound, "за замовчуванням об'єкт вважається знайденим")
	}

	t.Run("повторне наповнення", func(t *testing.T) {
		_, err := e.uc.Populate(ctx, "u-1", created.ID)
		assert.ErrorIs(t, err, domain.ErrInventoryNotDraft)
	})

	// об'єкт a1 не знайдено
	item, err := e.uc.UpdateItem(ctx, "u-1", created.ID, a1.ID, dto.UpdateInventoryItemRequest{
		IsFound: false,
	})
	require.NoError(t, err)
	assert.True(t, dec("-12000").Equal(item.Difference),
		"різниця для незнайденого — мінус облікова вартість")

	// об'єкт a2 знайдено з дооцінкою фактичної вартості
	actual := dec("5500")
	item2, err := e.uc.UpdateItem(ctx, "u-1", created.ID, a2.ID, dto.UpdateInventoryItemRequest{
		IsFound:     true,
		Condition:   entity.ConditionNeedsRepair,
		ActualValue: &actual,
	})
	require.NoError(t, err)
	assert.True(t, dec("500").Equal(item2.Difference))

	result, err := e.uc.Complete(ctx, "u-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalItems)
	assert.Equal(t, 1, result.FoundCount)
	assert.Equal(t, 1, result.MissingCount)
	assert.True(t, dec("12000").Equal(result.ShortageAmount))
	assert.True(t, dec("500").Equal(result.SurplusAmount))
	assert.True(t, dec("-11500").Equal(result.TotalDifference))

	t.Run("сповіщення про нестачу", func(t *testing.T) {
		var shortage, completion int
		for _, n := range e.notifs.notifications {
			switch n.Type {
			case entity.NotificationShortageFound:
				shortage++
				assert.Equal(t, a1.ID, n.AssetID)
			case entity.NotificationInventoryDue:
				completion++
			}
		}
		assert.Equal(t, 1, shortage)
		assert.Equal(t, 1, completion)
	})

	t.Run("повторне завершення", func(t *testing.T) {
		_, err := e.uc.Complete(ctx, "u-1", created.ID)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}
