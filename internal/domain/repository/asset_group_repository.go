package repository

import (
	"context"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

// AssetGroupRepository порт персистентності для AssetGroup.
type AssetGroupRepository interface {
	Create(ctx context.Context, g *entity.AssetGroup) error
	GetByID(ctx context.Context, id string) (*entity.AssetGroup, error)
	GetByCode(ctx context.Context, code string) (*entity.AssetGroup, error)
	Update(ctx context.Context, g *entity.AssetGroup) error
	List(ctx context.Context) ([]*entity.AssetGroup, error)
	Delete(ctx context.Context, id string) error
}
