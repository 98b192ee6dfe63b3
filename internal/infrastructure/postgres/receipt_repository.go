package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

var _ repository.AssetReceiptRepository = (*AssetReceiptRepo)(nil)

// AssetReceiptRepo надходження ОЗ поверх PostgreSQL. Унікальне обмеження
// на asset_id гарантує не більше одного надходження на об'єкт.
type AssetReceiptRepo struct {
	q Querier
}

// NewAssetReceiptRepository конструює адаптер.
func NewAssetReceiptRepository(q Querier) *AssetReceiptRepo {
	return &AssetReceiptRepo{q: q}
}

const receiptColumns = `
	id, asset_id, receipt_type, document_number, document_date, supplier,
	COALESCE(supplier_organization_id::text, ''), amount, notes,
	COALESCE(created_by::text, ''), created_at`

func scanReceipt(row pgx.Row) (*entity.AssetReceipt, error) {
	var rec entity.AssetReceipt
	err := row.Scan(
		&rec.ID, &rec.AssetID, &rec.ReceiptType, &rec.DocumentNumber, &rec.DocumentDate, &rec.Supplier,
		&rec.SupplierOrganizationID, &rec.Amount, &rec.Notes,
		&rec.CreatedBy, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create зберігає надходження; domain.ErrReceiptExists при повторі для того
// самого ОЗ.
func (r *AssetReceiptRepo) Create(ctx context.Context, rec *entity.AssetReceipt) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO asset_receipts (
			id, asset_id, receipt_type, document_number, document_date, supplier,
			supplier_organization_id, amount, notes, created_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8, $9, NULLIF($10, '')::uuid, $11)`,
		rec.ID, rec.AssetID, rec.ReceiptType, rec.DocumentNumber, rec.DocumentDate, rec.Supplier,
		rec.SupplierOrganizationID, rec.Amount, rec.Notes, rec.CreatedBy, rec.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueViolationError(err)
		}
		return fmt.Errorf("insert asset receipt: %w", err)
	}
	return nil
}

// GetByAssetID надходження об'єкта; (nil, nil) якщо ще не оприбутковано.
func (r *AssetReceiptRepo) GetByAssetID(ctx context.Context, assetID string) (*entity.AssetReceipt, error) {
	rec, err := scanReceipt(r.q.QueryRow(ctx,
		`SELECT`+receiptColumns+` FROM asset_receipts WHERE asset_id = $1`, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset receipt: %w", err)
	}
	return rec, nil
}

// List надходження з пагінацією, нові першими.
func (r *AssetReceiptRepo) List(ctx context.Context, limit, offset int) ([]*entity.AssetReceipt, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.q.Query(ctx,
		`SELECT`+receiptColumns+` FROM asset_receipts ORDER BY document_date DESC, created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list asset receipts: %w", err)
	}
	defer rows.Close()

	var list []*entity.AssetReceipt
	for rows.Next() {
		rec, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset receipt: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
