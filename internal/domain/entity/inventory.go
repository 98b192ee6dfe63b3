package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статуси інвентаризації.
const (
	InventoryStatusDraft      = "draft"
	InventoryStatusInProgress = "in_progress"
	InventoryStatusCompleted  = "completed"
)

// Стан об'єкта за результатами огляду.
const (
	ConditionGood        = "good"
	ConditionNeedsRepair = "needs_repair"
	ConditionUnusable    = "unusable"
)

// Inventory інвентаризація основних засобів (сесія перерахунку).
type Inventory struct {
	ID                  string
	Number              string // унікальний
	Date                time.Time
	OrderNumber         string
	OrderDate           time.Time
	Status              string
	LocationID          string // місце проведення; порожнє = всі
	ResponsiblePersonID string
	CommissionHeadID    string
	Notes               string
	CreatedBy           string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// InventoryItem рядок інвентаризаційного опису. Пара (інвентаризація, ОЗ)
// унікальна. Різниця фіксується на момент запису і далі не перераховується.
type InventoryItem struct {
	ID          string
	InventoryID string
	AssetID     string
	IsFound     bool
	Condition   string
	BookValue   decimal.Decimal  // облікова вартість на момент опису
	ActualValue *decimal.Decimal // фактична вартість; nil якщо не оцінювалась
	Difference  decimal.Decimal
	Notes       string
}

// ComputeDifference обчислює різницю на момент запису:
// фактична мінус облікова; для незнайденого об'єкта — мінус облікова.
func (it *InventoryItem) ComputeDifference() {
	switch {
	case it.ActualValue != nil:
		it.Difference = it.ActualValue.Sub(it.BookValue)
	case !it.IsFound:
		it.Difference = it.BookValue.Neg()
	default:
		it.Difference = decimal.Zero
	}
}
