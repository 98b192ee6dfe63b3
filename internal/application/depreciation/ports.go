package depreciation

import (
	"context"

	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

// TxRepos репозиторії, прив'язані до однієї транзакції БД.
type TxRepos struct {
	Assets  repository.AssetRepository
	Records repository.DepreciationRecordRepository
	Entries repository.AccountEntryRepository
}

// TxRunner виконує функцію в межах транзакції БД, передаючи репозиторії,
// прив'язані до цієї транзакції. Commit при nil, Rollback при помилці.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx TxRepos) error) error
}
