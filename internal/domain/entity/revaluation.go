package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetRevaluation переоцінка основного засобу згідно з НП(С)БО 7 п. 16-21.
// Повторювана операція; кожен запис — незмінний знімок до/після.
type AssetRevaluation struct {
	ID             string
	AssetID        string
	RevaluationType string // upward | downward
	Date           time.Time
	DocumentNumber string

	OldInitialCost  decimal.Decimal
	OldDepreciation decimal.Decimal
	OldBookValue    decimal.Decimal

	FairValue decimal.Decimal // справедлива вартість

	NewInitialCost  decimal.Decimal
	NewDepreciation decimal.Decimal
	NewBookValue    decimal.Decimal

	RevaluationAmount decimal.Decimal
	Notes             string
	CreatedBy         string
	CreatedAt         time.Time
}
