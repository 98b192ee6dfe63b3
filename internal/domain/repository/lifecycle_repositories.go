package repository

import (
	"context"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

// AssetReceiptRepository порт персистентності для AssetReceipt.
// Не більше одного надходження на об'єкт; Create повертає
// domain.ErrReceiptExists при порушенні.
type AssetReceiptRepository interface {
	Create(ctx context.Context, r *entity.AssetReceipt) error
	GetByAssetID(ctx context.Context, assetID string) (*entity.AssetReceipt, error)
	List(ctx context.Context, limit, offset int) ([]*entity.AssetReceipt, error)
}

// AssetDisposalRepository порт персистентності для AssetDisposal.
// Не більше одного вибуття на об'єкт; Create повертає
// domain.ErrDisposalExists при порушенні.
type AssetDisposalRepository interface {
	Create(ctx context.Context, d *entity.AssetDisposal) error
	GetByAssetID(ctx context.Context, assetID string) (*entity.AssetDisposal, error)
	List(ctx context.Context, limit, offset int) ([]*entity.AssetDisposal, error)
}

// AssetRevaluationRepository порт персистентності для AssetRevaluation.
type AssetRevaluationRepository interface {
	Create(ctx context.Context, rv *entity.AssetRevaluation) error
	ListByAsset(ctx context.Context, assetID string) ([]*entity.AssetRevaluation, error)
	List(ctx context.Context, limit, offset int) ([]*entity.AssetRevaluation, error)
}

// AssetImprovementRepository порт персистентності для AssetImprovement.
type AssetImprovementRepository interface {
	Create(ctx context.Context, imp *entity.AssetImprovement) error
	ListByAsset(ctx context.Context, assetID string) ([]*entity.AssetImprovement, error)
	List(ctx context.Context, limit, offset int) ([]*entity.AssetImprovement, error)
}

// AssetTransferRepository порт персистентності для AssetTransfer з рядками.
type AssetTransferRepository interface {
	// Create зберігає документ разом з усіма рядками.
	Create(ctx context.Context, t *entity.AssetTransfer) error
	GetByID(ctx context.Context, id string) (*entity.AssetTransfer, error)
	List(ctx context.Context, limit, offset int) ([]*entity.AssetTransfer, error)
	ListByAsset(ctx context.Context, assetID string) ([]*entity.AssetTransfer, error)
}
