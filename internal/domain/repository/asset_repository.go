package repository

import (
	"context"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

// AssetFilter критерії вибірки основних засобів.
type AssetFilter struct {
	Status              string
	GroupID             string
	LocationID          string
	ResponsiblePersonID string
	Method              entity.DepreciationMethod
	Search              string // пошук за назвою або інвентарним номером
	Limit               int
	Offset              int
}

// AssetRepository порт персистентності для Asset (DIP).
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, id string) (*entity.Asset, error)
	// GetByIDForUpdate читає об'єкт із блокуванням рядка (SELECT ... FOR UPDATE);
	// викликається всередині транзакції.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Asset, error)
	GetByInventoryNumber(ctx context.Context, number string) (*entity.Asset, error)
	Update(ctx context.Context, asset *entity.Asset) error
	List(ctx context.Context, filter AssetFilter) ([]*entity.Asset, int, error)
	// ListActive всі об'єкти в експлуатації — для масового нарахування
	// амортизації та інвентаризаційного опису.
	ListActive(ctx context.Context, locationID string) ([]*entity.Asset, error)
	Delete(ctx context.Context, id string) error
}
