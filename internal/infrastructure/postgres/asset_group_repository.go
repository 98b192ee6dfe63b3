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

var _ repository.AssetGroupRepository = (*AssetGroupRepo)(nil)

// AssetGroupRepo реалізація порту AssetGroupRepository поверх PostgreSQL.
type AssetGroupRepo struct {
	q Querier
}

// NewAssetGroupRepository конструює адаптер. Передавати пул або tx (Querier).
func NewAssetGroupRepository(q Querier) *AssetGroupRepo {
	return &AssetGroupRepo{q: q}
}

// Create зберігає групу ОЗ. Код унікальний.
func (r *AssetGroupRepo) Create(ctx context.Context, g *entity.AssetGroup) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO asset_groups (id, code, name, min_useful_life_months, account_number, depreciation_account)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		g.ID, g.Code, g.Name, g.MinUsefulLifeMonths, g.AccountNumber, g.DepreciationAccount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert asset group: %w", err)
	}
	return nil
}

// GetByID читає групу за ідентифікатором; (nil, nil) якщо не знайдено.
func (r *AssetGroupRepo) GetByID(ctx context.Context, id string) (*entity.AssetGroup, error) {
	var g entity.AssetGroup
	err := r.q.QueryRow(ctx, `
		SELECT id, code, name, min_useful_life_months, account_number, depreciation_account
		FROM asset_groups WHERE id = $1`, id).
		Scan(&g.ID, &g.Code, &g.Name, &g.MinUsefulLifeMonths, &g.AccountNumber, &g.DepreciationAccount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset group: %w", err)
	}
	return &g, nil
}

// GetByCode читає групу за кодом; (nil, nil) якщо не знайдено.
func (r *AssetGroupRepo) GetByCode(ctx context.Context, code string) (*entity.AssetGroup, error) {
	var g entity.AssetGroup
	err := r.q.QueryRow(ctx, `
		SELECT id, code, name, min_useful_life_months, account_number, depreciation_account
		FROM asset_groups WHERE code = $1`, code).
		Scan(&g.ID, &g.Code, &g.Name, &g.MinUsefulLifeMonths, &g.AccountNumber, &g.DepreciationAccount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset group by code: %w", err)
	}
	return &g, nil
}

// Update оновлює групу.
func (r *AssetGroupRepo) Update(ctx context.Context, g *entity.AssetGroup) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE asset_groups
		SET code = $2, name = $3, min_useful_life_months = $4, account_number = $5, depreciation_account = $6
		WHERE id = $1`,
		g.ID, g.Code, g.Name, g.MinUsefulLifeMonths, g.AccountNumber, g.DepreciationAccount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update asset group: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List усі групи, відсортовані за кодом.
func (r *AssetGroupRepo) List(ctx context.Context) ([]*entity.AssetGroup, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, code, name, min_useful_life_months, account_number, depreciation_account
		FROM asset_groups ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list asset groups: %w", err)
	}
	defer rows.Close()

	var list []*entity.AssetGroup
	for rows.Next() {
		var g entity.AssetGroup
		if err := rows.Scan(&g.ID, &g.Code, &g.Name, &g.MinUsefulLifeMonths, &g.AccountNumber, &g.DepreciationAccount); err != nil {
			return nil, fmt.Errorf("scan asset group: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Delete видаляє групу; ON DELETE RESTRICT на assets.group_id захищає
// групи з об'єктами (повертаємо ErrConflict).
func (r *AssetGroupRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM asset_groups WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete asset group: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
