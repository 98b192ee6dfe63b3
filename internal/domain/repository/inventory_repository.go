package repository

import (
	"context"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

// InventoryRepository порт персистентності для інвентаризацій та рядків опису.
// Пара (inventory_id, asset_id) унікальна; AddItem повертає
// domain.ErrDuplicate при порушенні.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByID(ctx context.Context, id string) (*entity.Inventory, error)
	GetByNumber(ctx context.Context, number string) (*entity.Inventory, error)
	Update(ctx context.Context, inv *entity.Inventory) error
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Inventory, error)

	AddItem(ctx context.Context, item *entity.InventoryItem) error
	AddItems(ctx context.Context, items []entity.InventoryItem) error
	GetItem(ctx context.Context, inventoryID, assetID string) (*entity.InventoryItem, error)
	UpdateItem(ctx context.Context, item *entity.InventoryItem) error
	ListItems(ctx context.Context, inventoryID string) ([]*entity.InventoryItem, error)
}
