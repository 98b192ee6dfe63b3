package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типи поліпшення / ремонту.
const (
	ImprovementTypeCapital        = "capital"        // капітальний ремонт (поліпшення)
	ImprovementTypeCurrent        = "current"        // поточний ремонт (витрати періоду)
	ImprovementTypeModernization  = "modernization"  // модернізація
	ImprovementTypeReconstruction = "reconstruction" // реконструкція
)

// ValidImprovementType перевіряє тип поліпшення.
func ValidImprovementType(t string) bool {
	switch t {
	case ImprovementTypeCapital, ImprovementTypeCurrent,
		ImprovementTypeModernization, ImprovementTypeReconstruction:
		return true
	}
	return false
}

// AssetImprovement поліпшення або ремонт основного засобу.
// IncreasesValue = true капіталізує суму в первісну вартість;
// інакше сума відноситься на рахунок витрат ExpenseAccount.
type AssetImprovement struct {
	ID              string
	AssetID         string
	ImprovementType string
	Date            time.Time
	DocumentNumber  string
	Description     string
	Amount          decimal.Decimal
	Contractor      string
	IncreasesValue  bool
	ExpenseAccount  string // 91, 92, 93, 23
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
}
