package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

var _ repository.AssetTransferRepository = (*AssetTransferRepo)(nil)

// AssetTransferRepo внутрішні переміщення ОЗ поверх PostgreSQL.
// Документ зберігається разом з рядками; атомарність гарантує транзакція,
// в якій працює репозиторій.
type AssetTransferRepo struct {
	q Querier
}

// NewAssetTransferRepository конструює адаптер.
func NewAssetTransferRepository(q Querier) *AssetTransferRepo {
	return &AssetTransferRepo{q: q}
}

const transferColumns = `
	id, document_number, document_date, COALESCE(from_location_id::text, ''), to_location_id::text,
	COALESCE(to_responsible_person_id::text, ''), notes, COALESCE(created_by::text, ''), created_at`

func scanTransfer(row pgx.Row) (*entity.AssetTransfer, error) {
	var t entity.AssetTransfer
	err := row.Scan(
		&t.ID, &t.DocumentNumber, &t.DocumentDate, &t.FromLocationID, &t.ToLocationID,
		&t.ToResponsiblePersonID, &t.Notes, &t.CreatedBy, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create зберігає документ переміщення разом з усіма рядками.
func (r *AssetTransferRepo) Create(ctx context.Context, t *entity.AssetTransfer) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO asset_transfers (
			id, document_number, document_date, from_location_id, to_location_id,
			to_responsible_person_id, notes, created_by, created_at
		) VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, NULLIF($6, '')::uuid, $7, NULLIF($8, '')::uuid, $9)`,
		t.ID, t.DocumentNumber, t.DocumentDate, t.FromLocationID, t.ToLocationID,
		t.ToResponsiblePersonID, t.Notes, t.CreatedBy, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert asset transfer: %w", err)
	}
	for i := range t.Items {
		it := &t.Items[i]
		_, err := r.q.Exec(ctx, `
			INSERT INTO asset_transfer_items (id, transfer_id, asset_id, book_value)
			VALUES ($1, $2, $3, $4)`,
			it.ID, it.TransferID, it.AssetID, it.BookValue,
		)
		if err != nil {
			return fmt.Errorf("insert asset transfer item: %w", err)
		}
	}
	return nil
}

func (r *AssetTransferRepo) loadItems(ctx context.Context, t *entity.AssetTransfer) error {
	rows, err := r.q.Query(ctx,
		`SELECT id, transfer_id, asset_id, book_value FROM asset_transfer_items WHERE transfer_id = $1`,
		t.ID)
	if err != nil {
		return fmt.Errorf("list transfer items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it entity.AssetTransferItem
		if err := rows.Scan(&it.ID, &it.TransferID, &it.AssetID, &it.BookValue); err != nil {
			return fmt.Errorf("scan transfer item: %w", err)
		}
		t.Items = append(t.Items, it)
	}
	return rows.Err()
}

// GetByID документ переміщення з рядками; (nil, nil) якщо не знайдено.
func (r *AssetTransferRepo) GetByID(ctx context.Context, id string) (*entity.AssetTransfer, error) {
	t, err := scanTransfer(r.q.QueryRow(ctx,
		`SELECT`+transferColumns+` FROM asset_transfers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset transfer: %w", err)
	}
	if err := r.loadItems(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List документи переміщення з рядками, нові першими.
func (r *AssetTransferRepo) List(ctx context.Context, limit, offset int) ([]*entity.AssetTransfer, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.q.Query(ctx,
		`SELECT`+transferColumns+` FROM asset_transfers ORDER BY document_date DESC, created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list asset transfers: %w", err)
	}
	defer rows.Close()

	var list []*entity.AssetTransfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset transfer: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, t := range list {
		if err := r.loadItems(ctx, t); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// ListByAsset документи, в яких фігурує об'єкт, нові першими.
func (r *AssetTransferRepo) ListByAsset(ctx context.Context, assetID string) ([]*entity.AssetTransfer, error) {
	rows, err := r.q.Query(ctx, `
		SELECT`+transferColumns+`
		FROM asset_transfers
		WHERE id IN (SELECT transfer_id FROM asset_transfer_items WHERE asset_id = $1)
		ORDER BY document_date DESC, created_at DESC`, assetID)
	if err != nil {
		return nil, fmt.Errorf("list asset transfers by asset: %w", err)
	}
	defer rows.Close()

	var list []*entity.AssetTransfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset transfer: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, t := range list {
		if err := r.loadItems(ctx, t); err != nil {
			return nil, err
		}
	}
	return list, nil
}
