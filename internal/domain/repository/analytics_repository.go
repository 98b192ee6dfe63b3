package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// GroupStat агрегат по групі основних засобів.
type GroupStat struct {
	GroupID      string
	GroupName    string
	Count        int
	InitialCost  decimal.Decimal
	BookValue    decimal.Decimal
	Depreciation decimal.Decimal
}

// MethodStat кількість об'єктів за методом амортизації.
type MethodStat struct {
	Method string
	Count  int
}

// AssetStatistics зведена статистика парку основних засобів.
type AssetStatistics struct {
	TotalCount     int
	ActiveCount    int
	DisposedCount  int
	ConservedCount int

	TotalInitialCost  decimal.Decimal
	TotalBookValue    decimal.Decimal
	TotalDepreciation decimal.Decimal

	FullyDepreciatedCount int
	HighWearCount         int // знос понад 90%

	ByGroup  []GroupStat
	ByMethod []MethodStat
}

// AnalyticsRepository агрегатні запити для дашборда та звітів.
type AnalyticsRepository interface {
	AssetStatistics(ctx context.Context) (*AssetStatistics, error)
}
