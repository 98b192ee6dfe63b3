package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

var _ repository.AssetDisposalRepository = (*AssetDisposalRepo)(nil)

// AssetDisposalRepo вибуття ОЗ поверх PostgreSQL. Унікальне обмеження на
// asset_id гарантує не більше одного вибуття на об'єкт.
type AssetDisposalRepo struct {
	q Querier
}

// NewAssetDisposalRepository конструює адаптер.
func NewAssetDisposalRepository(q Querier) *AssetDisposalRepo {
	return &AssetDisposalRepo{q: q}
}

const disposalColumns = `
	id, asset_id, disposal_type, document_number, document_date, reason,
	sale_amount, book_value_at_disposal, accumulated_depreciation_at_disposal,
	notes, COALESCE(created_by::text, ''), created_at`

func scanDisposal(row pgx.Row) (*entity.AssetDisposal, error) {
	var d entity.AssetDisposal
	err := row.Scan(
		&d.ID, &d.AssetID, &d.DisposalType, &d.DocumentNumber, &d.DocumentDate, &d.Reason,
		&d.SaleAmount, &d.BookValueAtDisposal, &d.AccumulatedDepreciationAtDisposal,
		&d.Notes, &d.CreatedBy, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create зберігає вибуття; domain.ErrDisposalExists при повторі.
func (r *AssetDisposalRepo) Create(ctx context.Context, d *entity.AssetDisposal) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO asset_disposals (
			id, asset_id, disposal_type, document_number, document_date, reason,
			sale_amount, book_value_at_disposal, accumulated_depreciation_at_disposal,
			notes, created_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, '')::uuid, $12)`,
		d.ID, d.AssetID, d.DisposalType, d.DocumentNumber, d.DocumentDate, d.Reason,
		d.SaleAmount, d.BookValueAtDisposal, d.AccumulatedDepreciationAtDisposal,
		d.Notes, d.CreatedBy, d.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueViolationError(err)
		}
		return fmt.Errorf("insert asset disposal: %w", err)
	}
	return nil
}

// GetByAssetID вибуття об'єкта; (nil, nil) якщо об'єкт не вибував.
func (r *AssetDisposalRepo) GetByAssetID(ctx context.Context, assetID string) (*entity.AssetDisposal, error) {
	d, err := scanDisposal(r.q.QueryRow(ctx,
		`SELECT`+disposalColumns+` FROM asset_disposals WHERE asset_id = $1`, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset disposal: %w", err)
	}
	return d, nil
}

// List вибуття з пагінацією, нові першими.
func (r *AssetDisposalRepo) List(ctx context.Context, limit, offset int) ([]*entity.AssetDisposal, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.q.Query(ctx,
		`SELECT`+disposalColumns+` FROM asset_disposals ORDER BY document_date DESC, created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list asset disposals: %w", err)
	}
	defer rows.Close()

	var list []*entity.AssetDisposal
	for rows.Next() {
		d, err := scanDisposal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset disposal: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
