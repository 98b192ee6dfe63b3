package assets

import (
	"context"

	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

// TxRepos репозиторії, прив'язані до однієї транзакції БД.
type TxRepos struct {
	Assets       repository.AssetRepository
	Receipts     repository.AssetReceiptRepository
	Disposals    repository.AssetDisposalRepository
	Revaluations repository.AssetRevaluationRepository
	Improvements repository.AssetImprovementRepository
	Transfers    repository.AssetTransferRepository
	Entries      repository.AccountEntryRepository
}

// TxRunner виконує функцію в межах транзакції БД. Commit при nil,
// Rollback при помилці.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx TxRepos) error) error
}
