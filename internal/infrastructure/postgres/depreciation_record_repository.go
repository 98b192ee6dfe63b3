package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

var _ repository.DepreciationRecordRepository = (*DepreciationRecordRepo)(nil)

// DepreciationRecordRepo реалізація порту DepreciationRecordRepository.
// Унікальне обмеження (asset_id, period_year, period_month) — джерело істини
// для ідемпотентності нарахування.
type DepreciationRecordRepo struct {
	q Querier
}

// NewDepreciationRecordRepository конструює адаптер.
func NewDepreciationRecordRepository(q Querier) *DepreciationRecordRepo {
	return &DepreciationRecordRepo{q: q}
}

const depreciationRecordColumns = `
	id, asset_id, period_year, period_month, method, amount,
	book_value_before, book_value_after, production_volume, is_posted,
	COALESCE(created_by::text, ''), created_at`

func scanDepreciationRecord(row pgx.Row) (*entity.DepreciationRecord, error) {
	var rec entity.DepreciationRecord
	err := row.Scan(
		&rec.ID, &rec.AssetID, &rec.PeriodYear, &rec.PeriodMonth, &rec.Method, &rec.Amount,
		&rec.BookValueBefore, &rec.BookValueAfter, &rec.ProductionVolume, &rec.IsPosted,
		&rec.CreatedBy, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create додає запис нарахування; domain.ErrPeriodAlreadyAccrued при
// повторі періоду для того самого ОЗ.
func (r *DepreciationRecordRepo) Create(ctx context.Context, rec *entity.DepreciationRecord) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO depreciation_records (
			id, asset_id, period_year, period_month, method, amount,
			book_value_before, book_value_after, production_volume, is_posted, created_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, '')::uuid, $12)`,
		rec.ID, rec.AssetID, rec.PeriodYear, rec.PeriodMonth, string(rec.Method), rec.Amount,
		rec.BookValueBefore, rec.BookValueAfter, rec.ProductionVolume, rec.IsPosted, rec.CreatedBy, rec.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueViolationError(err)
		}
		return fmt.Errorf("insert depreciation record: %w", err)
	}
	return nil
}

// Exists перевіряє наявність нарахування за період.
func (r *DepreciationRecordRepo) Exists(ctx context.Context, assetID string, year, month int) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM depreciation_records
			WHERE asset_id = $1 AND period_year = $2 AND period_month = $3
		)`, assetID, year, month).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check depreciation record: %w", err)
	}
	return exists, nil
}

// ListByAsset історія нарахувань об'єкта, нові періоди першими.
func (r *DepreciationRecordRepo) ListByAsset(ctx context.Context, assetID string, limit, offset int) ([]*entity.DepreciationRecord, error) {
	if limit <= 0 {
		limit = 60
	}
	rows, err := r.q.Query(ctx, `
		SELECT`+depreciationRecordColumns+`
		FROM depreciation_records
		WHERE asset_id = $1
		ORDER BY period_year DESC, period_month DESC
		LIMIT $2 OFFSET $3`, assetID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list depreciation records: %w", err)
	}
	defer rows.Close()

	var list []*entity.DepreciationRecord
	for rows.Next() {
		rec, err := scanDepreciationRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan depreciation record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// ListByPeriod усі нарахування за період.
func (r *DepreciationRecordRepo) ListByPeriod(ctx context.Context, year, month int) ([]*entity.DepreciationRecord, error) {
	rows, err := r.q.Query(ctx, `
		SELECT`+depreciationRecordColumns+`
		FROM depreciation_records
		WHERE period_year = $1 AND period_month = $2
		ORDER BY created_at`, year, month)
	if err != nil {
		return nil, fmt.Errorf("list depreciation records by period: %w", err)
	}
	defer rows.Close()

	var list []*entity.DepreciationRecord
	for rows.Next() {
		rec, err := scanDepreciationRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan depreciation record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// PeriodTotals підсумки за періодами у зворотному хронологічному порядку.
func (r *DepreciationRecordRepo) PeriodTotals(ctx context.Context, limit int) ([]repository.PeriodTotal, error) {
	if limit <= 0 {
		limit = 24
	}
	rows, err := r.q.Query(ctx, `
		SELECT period_year, period_month, count(*), COALESCE(sum(amount), 0)
		FROM depreciation_records
		GROUP BY period_year, period_month
		ORDER BY period_year DESC, period_month DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("period totals: %w", err)
	}
	defer rows.Close()

	var totals []repository.PeriodTotal
	for rows.Next() {
		var t repository.PeriodTotal
		if err := rows.Scan(&t.PeriodYear, &t.PeriodMonth, &t.RecordCount, &t.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan period total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
