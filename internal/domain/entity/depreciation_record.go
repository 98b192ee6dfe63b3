package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationRecord запис нарахування амортизації за місяць.
// Один на (ОЗ, рік, місяць) — ключ ідемпотентності; після створення не змінюється.
// Method — метод, фактично застосований у розрахунку (може відрізнятися від
// налаштованого: зменшення залишкової вартості з нульовою ліквідаційною
// деградує до прямолінійного).
type DepreciationRecord struct {
	ID          string
	AssetID     string
	PeriodYear  int
	PeriodMonth int
	Method      DepreciationMethod

	Amount          decimal.Decimal
	BookValueBefore decimal.Decimal
	BookValueAfter  decimal.Decimal // BookValueBefore - Amount

	ProductionVolume *decimal.Decimal // тільки для виробничого методу

	IsPosted  bool
	CreatedBy string
	CreatedAt time.Time
}
