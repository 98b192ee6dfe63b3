package dto

import (
	"github.com/shopspring/decimal"

	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

// GroupStatDTO агрегат по групі ОЗ.
type GroupStatDTO struct {
	GroupID      string          `json:"group_id"`
	GroupName    string          `json:"group_name"`
	Count        int             `json:"count"`
	InitialCost  decimal.Decimal `json:"initial_cost"`
	BookValue    decimal.Decimal `json:"book_value"`
	Depreciation decimal.Decimal `json:"depreciation"`
}

// MethodStatDTO кількість об'єктів за методом амортизації.
type MethodStatDTO struct {
	Method string `json:"method"`
	Count  int    `json:"count"`
}

// StatisticsResponse зведена статистика парку ОЗ для дашборда.
type StatisticsResponse struct {
	TotalCount     int `json:"total_count"`
	ActiveCount    int `json:"active_count"`
	DisposedCount  int `json:"disposed_count"`
	ConservedCount int `json:"conserved_count"`

	TotalInitialCost  decimal.Decimal `json:"total_initial_cost"`
	TotalBookValue    decimal.Decimal `json:"total_book_value"`
	TotalDepreciation decimal.Decimal `json:"total_depreciation"`

	FullyDepreciatedCount int `json:"fully_depreciated_count"`
	HighWearCount         int `json:"high_wear_count"`

	ByGroup  []GroupStatDTO  `json:"by_group"`
	ByMethod []MethodStatDTO `json:"by_method"`
}

// FromStatistics мапінг агрегату сховища у подання.
func FromStatistics(s *repository.AssetStatistics) StatisticsResponse {
	byGroup := make([]GroupStatDTO, 0, len(s.ByGroup))
	for _, g := range s.ByGroup {
		byGroup = append(byGroup, GroupStatDTO{
			GroupID:      g.GroupID,
			GroupName:    g.GroupName,
			Count:        g.Count,
			InitialCost:  g.InitialCost,
			BookValue:    g.BookValue,
			Depreciation: g.Depreciation,
		})
	}
	byMethod := make([]MethodStatDTO, 0, len(s.ByMethod))
	for _, m := range s.ByMethod {
		byMethod = append(byMethod, MethodStatDTO{Method: m.Method, Count: m.Count})
	}
	return StatisticsResponse{
		TotalCount:            s.TotalCount,
		ActiveCount:           s.ActiveCount,
		DisposedCount:         s.DisposedCount,
		ConservedCount:        s.ConservedCount,
		TotalInitialCost:      s.TotalInitialCost,
		TotalBookValue:        s.TotalBookValue,
		TotalDepreciation:     s.TotalDepreciation,
		FullyDepreciatedCount: s.FullyDepreciatedCount,
		HighWearCount:         s.HighWearCount,
		ByGroup:               byGroup,
		ByMethod:              byMethod,
	}
}
