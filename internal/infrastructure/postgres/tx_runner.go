package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oz-oblik/assets-backend/internal/application/assets"
	"github.com/oz-oblik/assets-backend/internal/application/depreciation"
)

var _ assets.TxRunner = (*AssetTxRunner)(nil)
var _ depreciation.TxRunner = (*DepreciationTxRunner)(nil)

// AssetTxRunner виконує операції життєвого циклу ОЗ в одній транзакції.
type AssetTxRunner struct {
	pool *pgxpool.Pool
}

// NewAssetTxRunner конструює раннер поверх пулу.
func NewAssetTxRunner(pool *pgxpool.Pool) *AssetTxRunner {
	return &AssetTxRunner{pool: pool}
}

// Run відкриває транзакцію, викликає fn з репозиторіями, прив'язаними до
// неї, і робить Commit або Rollback.
func (r *AssetTxRunner) Run(ctx context.Context, fn func(tx assets.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := assets.TxRepos{
		Assets:       NewAssetRepository(tx),
		Receipts:     NewAssetReceiptRepository(tx),
		Disposals:    NewAssetDisposalRepository(tx),
		Revaluations: NewAssetRevaluationRepository(tx),
		Improvements: NewAssetImprovementRepository(tx),
		Transfers:    NewAssetTransferRepository(tx),
		Entries:      NewAccountEntryRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// DepreciationTxRunner виконує нарахування амортизації в одній транзакції:
// блокування об'єкта, запис нарахування, оновлення агрегата, проводки.
type DepreciationTxRunner struct {
	pool *pgxpool.Pool
}

// NewDepreciationTxRunner конструює раннер поверх пулу.
func NewDepreciationTxRunner(pool *pgxpool.Pool) *DepreciationTxRunner {
	return &DepreciationTxRunner{pool: pool}
}

// Run відкриває транзакцію, викликає fn і робить Commit або Rollback.
func (r *DepreciationTxRunner) Run(ctx context.Context, fn func(tx depreciation.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := depreciation.TxRepos{
		Assets:  NewAssetRepository(tx),
		Records: NewDepreciationRecordRepository(tx),
		Entries: NewAccountEntryRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
