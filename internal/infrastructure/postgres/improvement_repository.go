package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

var _ repository.AssetImprovementRepository = (*AssetImprovementRepo)(nil)

// AssetImprovementRepo поліпшення та ремонти ОЗ поверх PostgreSQL (append-only).
type AssetImprovementRepo struct {
	q Querier
}

// NewAssetImprovementRepository конструює адаптер.
func NewAssetImprovementRepository(q Querier) *AssetImprovementRepo {
	return &AssetImprovementRepo{q: q}
}

const improvementColumns = `
	id, asset_id, improvement_type, date, document_number, description,
	amount, contractor, increases_value, expense_account, notes,
	COALESCE(created_by::text, ''), created_at`

func scanImprovement(row pgx.Row) (*entity.AssetImprovement, error) {
	var imp entity.AssetImprovement
	err := row.Scan(
		&imp.ID, &imp.AssetID, &imp.ImprovementType, &imp.Date, &imp.DocumentNumber, &imp.Description,
		&imp.Amount, &imp.Contractor, &imp.IncreasesValue, &imp.ExpenseAccount, &imp.Notes,
		&imp.CreatedBy, &imp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &imp, nil
}

// Create зберігає поліпшення/ремонт.
func (r *AssetImprovementRepo) Create(ctx context.Context, imp *entity.AssetImprovement) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO asset_improvements (
			id, asset_id, improvement_type, date, document_number, description,
			amount, contractor, increases_value, expense_account, notes, created_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, '')::uuid, $13)`,
		imp.ID, imp.AssetID, imp.ImprovementType, imp.Date, imp.DocumentNumber, imp.Description,
		imp.Amount, imp.Contractor, imp.IncreasesValue, imp.ExpenseAccount, imp.Notes,
		imp.CreatedBy, imp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert asset improvement: %w", err)
	}
	return nil
}

// ListByAsset історія поліпшень об'єкта, нові першими.
func (r *AssetImprovementRepo) ListByAsset(ctx context.Context, assetID string) ([]*entity.AssetImprovement, error) {
	rows, err := r.q.Query(ctx,
		`SELECT`+improvementColumns+` FROM asset_improvements WHERE asset_id = $1 ORDER BY date DESC, created_at DESC`,
		assetID)
	if err != nil {
		return nil, fmt.Errorf("list asset improvements: %w", err)
	}
	defer rows.Close()

	var list []*entity.AssetImprovement
	for rows.Next() {
		imp, err := scanImprovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset improvement: %w", err)
		}
		list = append(list, imp)
	}
	return list, rows.Err()
}

// List поліпшення з пагінацією, нові першими.
func (r *AssetImprovementRepo) List(ctx context.Context, limit, offset int) ([]*entity.AssetImprovement, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.q.Query(ctx,
		`SELECT`+improvementColumns+` FROM asset_improvements ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list asset improvements: %w", err)
	}
	defer rows.Close()

	var list []*entity.AssetImprovement
	for rows.Next() {
		imp, err := scanImprovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset improvement: %w", err)
		}
		list = append(list, imp)
	}
	return list, rows.Err()
}
