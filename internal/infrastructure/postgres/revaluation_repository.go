package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

var _ repository.AssetRevaluationRepository = (*AssetRevaluationRepo)(nil)

// AssetRevaluationRepo переоцінки ОЗ поверх PostgreSQL (append-only).
type AssetRevaluationRepo struct {
	q Querier
}

// NewAssetRevaluationRepository конструює адаптер.
func NewAssetRevaluationRepository(q Querier) *AssetRevaluationRepo {
	return &AssetRevaluationRepo{q: q}
}

const revaluationColumns = `
	id, asset_id, revaluation_type, date, document_number,
	old_initial_cost, old_depreciation, old_book_value, fair_value,
	new_initial_cost, new_depreciation, new_book_value,
	revaluation_amount, notes, COALESCE(created_by::text, ''), created_at`

func scanRevaluation(row pgx.Row) (*entity.AssetRevaluation, error) {
	var rv entity.AssetRevaluation
	err := row.Scan(
		&rv.ID, &rv.AssetID, &rv.RevaluationType, &rv.Date, &rv.DocumentNumber,
		&rv.OldInitialCost, &rv.OldDepreciation, &rv.OldBookValue, &rv.FairValue,
		&rv.NewInitialCost, &rv.NewDepreciation, &rv.NewBookValue,
		&rv.RevaluationAmount, &rv.Notes, &rv.CreatedBy, &rv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

// Create зберігає знімок переоцінки.
func (r *AssetRevaluationRepo) Create(ctx context.Context, rv *entity.AssetRevaluation) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO asset_revaluations (
			id, asset_id, revaluation_type, date, document_number,
			old_initial_cost, old_depreciation, old_book_value, fair_value,
			new_initial_cost, new_depreciation, new_book_value,
			revaluation_amount, notes, created_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NULLIF($15, '')::uuid, $16)`,
		rv.ID, rv.AssetID, rv.RevaluationType, rv.Date, rv.DocumentNumber,
		rv.OldInitialCost, rv.OldDepreciation, rv.OldBookValue, rv.FairValue,
		rv.NewInitialCost, rv.NewDepreciation, rv.NewBookValue,
		rv.RevaluationAmount, rv.Notes, rv.CreatedBy, rv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert asset revaluation: %w", err)
	}
	return nil
}

// ListByAsset історія переоцінок об'єкта, нові першими.
func (r *AssetRevaluationRepo) ListByAsset(ctx context.Context, assetID string) ([]*entity.AssetRevaluation, error) {
	rows, err := r.q.Query(ctx,
		`SELECT`+revaluationColumns+` FROM asset_revaluations WHERE asset_id = $1 ORDER BY date DESC, created_at DESC`,
		assetID)
	if err != nil {
		return nil, fmt.Errorf("list asset revaluations: %w", err)
	}
	defer rows.Close()

	var list []*entity.AssetRevaluation
	for rows.Next() {
		rv, err := scanRevaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset revaluation: %w", err)
		}
		list = append(list, rv)
	}
	return list, rows.Err()
}

// List переоцінки з пагінацією, нові першими.
func (r *AssetRevaluationRepo) List(ctx context.Context, limit, offset int) ([]*entity.AssetRevaluation, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.q.Query(ctx,
		`SELECT`+revaluationColumns+` FROM asset_revaluations ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list asset revaluations: %w", err)
	}
	defer rows.Close()

	var list []*entity.AssetRevaluation
	for rows.Next() {
		rv, err := scanRevaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset revaluation: %w", err)
		}
		list = append(list, rv)
	}
	return list, rows.Err()
}
