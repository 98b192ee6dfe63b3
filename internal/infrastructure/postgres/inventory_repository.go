package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oz-oblik/assets-backend/internal/domain"
	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo інвентаризації та рядки опису поверх PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository конструює адаптер.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `
	id, number, date, order_number, order_date, status,
	COALESCE(location_id::text, ''), COALESCE(responsible_person_id::text, ''),
	COALESCE(commission_head_id::text, ''), notes, COALESCE(created_by::text, ''),
	created_at, updated_at`

func scanInventory(row pgx.Row) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.Date, &inv.OrderNumber, &inv.OrderDate, &inv.Status,
		&inv.LocationID, &inv.ResponsiblePersonID,
		&inv.CommissionHeadID, &inv.Notes, &inv.CreatedBy,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create зберігає інвентаризацію. Номер унікальний.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventories (
			id, number, date, order_number, order_date, status,
			location_id, responsible_person_id, commission_head_id, notes, created_by,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			NULLIF($7, '')::uuid, NULLIF($8, '')::uuid, NULLIF($9, '')::uuid, $10, NULLIF($11, '')::uuid,
			$12, $13
		)`,
		inv.ID, inv.Number, inv.Date, inv.OrderNumber, inv.OrderDate, inv.Status,
		inv.LocationID, inv.ResponsiblePersonID, inv.CommissionHeadID, inv.Notes, inv.CreatedBy,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID інвентаризація за ідентифікатором; (nil, nil) якщо не знайдено.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.Inventory, error) {
	inv, err := scanInventory(r.q.QueryRow(ctx,
		`SELECT`+inventoryColumns+` FROM inventories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return inv, nil
}

// GetByNumber інвентаризація за номером; (nil, nil) якщо не знайдено.
func (r *InventoryRepo) GetByNumber(ctx context.Context, number string) (*entity.Inventory, error) {
	inv, err := scanInventory(r.q.QueryRow(ctx,
		`SELECT`+inventoryColumns+` FROM inventories WHERE number = $1`, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory by number: %w", err)
	}
	return inv, nil
}

// Update зберігає зміни інвентаризації (статус, примітки).
func (r *InventoryRepo) Update(ctx context.Context, inv *entity.Inventory) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE inventories
		SET number = $2, date = $3, order_number = $4, order_date = $5, status = $6,
		    location_id = NULLIF($7, '')::uuid, responsible_person_id = NULLIF($8, '')::uuid,
		    commission_head_id = NULLIF($9, '')::uuid, notes = $10, updated_at = $11
		WHERE id = $1`,
		inv.ID, inv.Number, inv.Date, inv.OrderNumber, inv.OrderDate, inv.Status,
		inv.LocationID, inv.ResponsiblePersonID, inv.CommissionHeadID, inv.Notes, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List інвентаризації, нові першими; опційно за статусом.
func (r *InventoryRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Inventory, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT` + inventoryColumns + ` FROM inventories`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Inventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// AddItem додає рядок опису; domain.ErrDuplicate якщо об'єкт уже в описі.
func (r *InventoryRepo) AddItem(ctx context.Context, item *entity.InventoryItem) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_items (id, inventory_id, asset_id, is_found, condition, book_value, actual_value, difference, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.InventoryID, item.AssetID, item.IsFound, item.Condition,
		item.BookValue, item.ActualValue, item.Difference, item.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// AddItems додає знімок картотеки в опис.
func (r *InventoryRepo) AddItems(ctx context.Context, items []entity.InventoryItem) error {
	for i := range items {
		if err := r.AddItem(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetItem рядок опису за парою (інвентаризація, ОЗ); (nil, nil) якщо відсутній.
func (r *InventoryRepo) GetItem(ctx context.Context, inventoryID, assetID string) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := r.q.QueryRow(ctx, `
		SELECT id, inventory_id, asset_id, is_found, condition, book_value, actual_value, difference, notes
		FROM inventory_items WHERE inventory_id = $1 AND asset_id = $2`, inventoryID, assetID).
		Scan(&it.ID, &it.InventoryID, &it.AssetID, &it.IsFound, &it.Condition,
			&it.BookValue, &it.ActualValue, &it.Difference, &it.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// UpdateItem зберігає результат огляду об'єкта.
func (r *InventoryRepo) UpdateItem(ctx context.Context, item *entity.InventoryItem) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE inventory_items
		SET is_found = $2, condition = $3, actual_value = $4, difference = $5, notes = $6
		WHERE id = $1`,
		item.ID, item.IsFound, item.Condition, item.ActualValue, item.Difference, item.Notes,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListItems рядки опису інвентаризації.
func (r *InventoryRepo) ListItems(ctx context.Context, inventoryID string) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, inventory_id, asset_id, is_found, condition, book_value, actual_value, difference, notes
		FROM inventory_items WHERE inventory_id = $1 ORDER BY id`, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.InventoryID, &it.AssetID, &it.IsFound, &it.Condition,
			&it.BookValue, &it.ActualValue, &it.Difference, &it.Notes); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
