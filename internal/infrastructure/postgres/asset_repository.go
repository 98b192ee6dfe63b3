package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/oz-oblik/assets-backend/internal/domain"
	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

const assetColumns = `
	id, COALESCE(organization_id::text, ''), inventory_number, name, group_id::text, status,
	initial_cost, residual_value, incoming_depreciation, current_book_value, accumulated_depreciation,
	depreciation_method, useful_life_months, total_production_capacity, depreciation_rate,
	commissioning_date, depreciation_start_date, disposal_date,
	quantity, factory_number, passport_number, manufacture_year, unit_of_measure,
	COALESCE(responsible_person_id::text, ''), COALESCE(location_id::text, ''), description,
	COALESCE(created_by::text, ''), created_at, updated_at`

// AssetRepo реалізація порту AssetRepository поверх PostgreSQL.
// Працює з пулом або транзакцією (Querier).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository конструює адаптер. Передавати пул або tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

func scanAsset(row pgx.Row) (*entity.Asset, error) {
	var a entity.Asset
	err := row.Scan(
		&a.ID, &a.OrganizationID, &a.InventoryNumber, &a.Name, &a.GroupID, &a.Status,
		&a.InitialCost, &a.ResidualValue, &a.IncomingDepreciation, &a.CurrentBookValue, &a.AccumulatedDepreciation,
		&a.DepreciationMethod, &a.UsefulLifeMonths, &a.TotalProductionCapacity, &a.DepreciationRate,
		&a.CommissioningDate, &a.DepreciationStartDate, &a.DisposalDate,
		&a.Quantity, &a.FactoryNumber, &a.PassportNumber, &a.ManufactureYear, &a.UnitOfMeasure,
		&a.ResponsiblePersonID, &a.LocationID, &a.Description,
		&a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create зберігає новий основний засіб. Інвентарний номер унікальний.
func (r *AssetRepo) Create(ctx context.Context, a *entity.Asset) error {
	query := `
		INSERT INTO assets (
			id, organization_id, inventory_number, name, group_id, status,
			initial_cost, residual_value, incoming_depreciation, current_book_value, accumulated_depreciation,
			depreciation_method, useful_life_months, total_production_capacity, depreciation_rate,
			commissioning_date, depreciation_start_date, disposal_date,
			quantity, factory_number, passport_number, manufacture_year, unit_of_measure,
			responsible_person_id, location_id, description, created_by, created_at, updated_at
		) VALUES (
			$1, NULLIF($2, '')::uuid, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15,
			$16, $17, $18,
			$19, $20, $21, $22, $23,
			NULLIF($24, '')::uuid, NULLIF($25, '')::uuid, $26, NULLIF($27, '')::uuid, $28, $29
		)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.OrganizationID, a.InventoryNumber, a.Name, a.GroupID, a.Status,
		a.InitialCost, a.ResidualValue, a.IncomingDepreciation, a.CurrentBookValue, a.AccumulatedDepreciation,
		string(a.DepreciationMethod), a.UsefulLifeMonths, a.TotalProductionCapacity, a.DepreciationRate,
		a.CommissioningDate, a.DepreciationStartDate, a.DisposalDate,
		a.Quantity, a.FactoryNumber, a.PassportNumber, a.ManufactureYear, a.UnitOfMeasure,
		a.ResponsiblePersonID, a.LocationID, a.Description, a.CreatedBy, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueViolationError(err)
		}
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID читає ОЗ за ідентифікатором; (nil, nil) якщо не знайдено.
func (r *AssetRepo) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	a, err := scanAsset(r.q.QueryRow(ctx, `SELECT`+assetColumns+` FROM assets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return a, nil
}

// GetByIDForUpdate читає ОЗ із блокуванням рядка. Викликати всередині
// транзакції; блокування тримається до Commit/Rollback.
func (r *AssetRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Asset, error) {
	a, err := scanAsset(r.q.QueryRow(ctx, `SELECT`+assetColumns+` FROM assets WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset for update: %w", err)
	}
	return a, nil
}

// GetByInventoryNumber читає ОЗ за інвентарним номером; (nil, nil) якщо не знайдено.
func (r *AssetRepo) GetByInventoryNumber(ctx context.Context, number string) (*entity.Asset, error) {
	a, err := scanAsset(r.q.QueryRow(ctx, `SELECT`+assetColumns+` FROM assets WHERE inventory_number = $1`, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset by inventory number: %w", err)
	}
	return a, nil
}

// Update зберігає поточний стан агрегата.
func (r *AssetRepo) Update(ctx context.Context, a *entity.Asset) error {
	query := `
		UPDATE assets SET
			name = $2, group_id = $3, status = $4,
			initial_cost = $5, residual_value = $6, incoming_depreciation = $7,
			current_book_value = $8, accumulated_depreciation = $9,
			depreciation_method = $10, useful_life_months = $11,
			total_production_capacity = $12, depreciation_rate = $13,
			commissioning_date = $14, depreciation_start_date = $15, disposal_date = $16,
			quantity = $17, factory_number = $18, passport_number = $19,
			manufacture_year = $20, unit_of_measure = $21,
			responsible_person_id = NULLIF($22, '')::uuid, location_id = NULLIF($23, '')::uuid,
			description = $24, updated_at = $25
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		a.ID, a.Name, a.GroupID, a.Status,
		a.InitialCost, a.ResidualValue, a.IncomingDepreciation,
		a.CurrentBookValue, a.AccumulatedDepreciation,
		string(a.DepreciationMethod), a.UsefulLifeMonths,
		a.TotalProductionCapacity, a.DepreciationRate,
		a.CommissioningDate, a.DepreciationStartDate, a.DisposalDate,
		a.Quantity, a.FactoryNumber, a.PassportNumber,
		a.ManufactureYear, a.UnitOfMeasure,
		a.ResponsiblePersonID, a.LocationID,
		a.Description, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List вибірка ОЗ за фільтром з пагінацією; повертає сторінку і загальну кількість.
func (r *AssetRepo) List(ctx context.Context, f repository.AssetFilter) ([]*entity.Asset, int, error) {
	var conds []string
	var args []any

	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.GroupID != "" {
		add("group_id = $%d", f.GroupID)
	}
	if f.LocationID != "" {
		add("location_id = $%d::uuid", f.LocationID)
	}
	if f.ResponsiblePersonID != "" {
		add("responsible_person_id = $%d::uuid", f.ResponsiblePersonID)
	}
	if f.Method != "" {
		add("depreciation_method = $%d", string(f.Method))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR inventory_number ILIKE $%d)", len(args), len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM assets`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count assets: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit, f.Offset)
	query := fmt.Sprintf(`SELECT%s FROM assets%s ORDER BY inventory_number LIMIT $%d OFFSET $%d`,
		assetColumns, where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var list []*entity.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, a)
	}
	return list, total, rows.Err()
}

// ListActive всі ОЗ в експлуатації, опційно в межах одного місця зберігання.
func (r *AssetRepo) ListActive(ctx context.Context, locationID string) ([]*entity.Asset, error) {
	query := `SELECT` + assetColumns + ` FROM assets WHERE status = $1`
	args := []any{entity.AssetStatusActive}
	if locationID != "" {
		query += ` AND location_id = $2::uuid`
		args = append(args, locationID)
	}
	query += ` ORDER BY inventory_number`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list active assets: %w", err)
	}
	defer rows.Close()

	var list []*entity.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Delete видаляє ОЗ. Історичні записи захищені зовнішніми ключами ON DELETE RESTRICT.
func (r *AssetRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
