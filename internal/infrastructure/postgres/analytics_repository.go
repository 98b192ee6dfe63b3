package postgres

import (
	"context"
	"fmt"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo агрегатні запити для дашборда. Читає напряму з таблиць,
// минаючи доменні агрегати.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository конструює адаптер.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// AssetStatistics зведена статистика парку ОЗ: кількості за статусами,
// вартісні підсумки, розрізи за групами та методами амортизації.
func (r *AnalyticsRepo) AssetStatistics(ctx context.Context) (*repository.AssetStatistics, error) {
	stats := &repository.AssetStatistics{}

	err := r.q.QueryRow(ctx, `
		SELECT
			count(*),
			count(*) FILTER (WHERE status = $1),
			count(*) FILTER (WHERE status = $2),
			count(*) FILTER (WHERE status = $3),
			COALESCE(sum(initial_cost) FILTER (WHERE status <> $2), 0),
			COALESCE(sum(current_book_value) FILTER (WHERE status <> $2), 0),
			COALESCE(sum(accumulated_depreciation) FILTER (WHERE status <> $2), 0),
			count(*) FILTER (WHERE status = $1 AND current_book_value <= residual_value),
			count(*) FILTER (WHERE status = $1 AND initial_cost > 0
				AND accumulated_depreciation / initial_cost >= 0.9)
		FROM assets`,
		entity.AssetStatusActive, entity.AssetStatusDisposed, entity.AssetStatusConserved).
		Scan(
			&stats.TotalCount, &stats.ActiveCount, &stats.DisposedCount, &stats.ConservedCount,
			&stats.TotalInitialCost, &stats.TotalBookValue, &stats.TotalDepreciation,
			&stats.FullyDepreciatedCount, &stats.HighWearCount,
		)
	if err != nil {
		return nil, fmt.Errorf("asset statistics: %w", err)
	}

	groupRows, err := r.q.Query(ctx, `
		SELECT g.id, g.name, count(a.id),
			COALESCE(sum(a.initial_cost), 0),
			COALESCE(sum(a.current_book_value), 0),
			COALESCE(sum(a.accumulated_depreciation), 0)
		FROM asset_groups g
		LEFT JOIN assets a ON a.group_id = g.id AND a.status <> $1
		GROUP BY g.id, g.name, g.code
		ORDER BY g.code`, entity.AssetStatusDisposed)
	if err != nil {
		return nil, fmt.Errorf("statistics by group: %w", err)
	}
	defer groupRows.Close()

	for groupRows.Next() {
		var g repository.GroupStat
		if err := groupRows.Scan(&g.GroupID, &g.GroupName, &g.Count,
			&g.InitialCost, &g.BookValue, &g.Depreciation); err != nil {
			return nil, fmt.Errorf("scan group stat: %w", err)
		}
		stats.ByGroup = append(stats.ByGroup, g)
	}
	if err := groupRows.Err(); err != nil {
		return nil, err
	}

	methodRows, err := r.q.Query(ctx, `
		SELECT depreciation_method, count(*)
		FROM assets
		WHERE status = $1
		GROUP BY depreciation_method
		ORDER BY depreciation_method`, entity.AssetStatusActive)
	if err != nil {
		return nil, fmt.Errorf("statistics by method: %w", err)
	}
	defer methodRows.Close()

	for methodRows.Next() {
		var m repository.MethodStat
		if err := methodRows.Scan(&m.Method, &m.Count); err != nil {
			return nil, fmt.Errorf("scan method stat: %w", err)
		}
		stats.ByMethod = append(stats.ByMethod, m)
	}
	return stats, methodRows.Err()
}
