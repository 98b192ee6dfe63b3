// Package depreciation реалізує розрахунок місячної амортизації за п'ятьма
// методами НП(С)БО 7 п. 26. Усі функції чисті: жодних звернень до сховища,
// результат округлюється до копійок (2 знаки, половина вгору).
package depreciation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

var twelve = decimal.NewFromInt(12)

// Result результат розрахунку: сума за місяць і метод, який фактично
// застосовано. Method може відрізнятися від налаштованого на об'єкті:
// зменшення залишкової вартості з нульовою ліквідаційною деградує до
// прямолінійного.
type Result struct {
	Amount decimal.Decimal
	Method entity.DepreciationMethod
}

// StraightLine прямолінійний метод:
// (первісна - ліквідаційна - вхідна амортизація) / строк у місяцях.
// При вхідній амортизації строк трактується як залишковий (НП(С)БО 7 п. 23).
func StraightLine(initialCost, residualValue, incoming decimal.Decimal, usefulLifeMonths int) decimal.Decimal {
	if usefulLifeMonths <= 0 {
		return decimal.Zero
	}
	depreciable := initialCost.Sub(residualValue).Sub(incoming)
	if !depreciable.IsPositive() {
		return decimal.Zero
	}
	return depreciable.Div(decimal.NewFromInt(int64(usefulLifeMonths))).Round(2)
}

// ReducingBalance метод зменшення залишкової вартості:
// річна норма = 1 - (ліквідаційна / первісна) ^ (1 / строк у роках),
// місячна сума = залишкова вартість * норма / 12.
// Нульова ліквідаційна вартість дає норму 100%, тому в цьому разі
// розрахунок ведеться прямолінійним методом.
func ReducingBalance(initialCost, residualValue, bookValue decimal.Decimal, usefulLifeMonths int) (decimal.Decimal, entity.DepreciationMethod) {
	if usefulLifeMonths <= 0 || !initialCost.IsPositive() {
		return decimal.Zero, entity.MethodReducingBalance
	}
	if !residualValue.IsPositive() {
		return StraightLine(initialCost, residualValue, decimal.Zero, usefulLifeMonths),
			entity.MethodStraightLine
	}

	years := float64(usefulLifeMonths) / 12.0
	ratio, _ := residualValue.Div(initialCost).Float64()
	annualRate := decimal.NewFromFloat(1 - math.Pow(ratio, 1.0/years))

	monthly := bookValue.Mul(annualRate).Div(twelve)
	return monthly.Round(2), entity.MethodReducingBalance
}

// AcceleratedReducing метод прискореного зменшення залишкової вартості:
// річна норма = 2 / строк у роках, місячна сума = залишкова * норма / 12.
// Ліквідаційна вартість у нормі участі не бере.
func AcceleratedReducing(bookValue decimal.Decimal, usefulLifeMonths int) decimal.Decimal {
	if usefulLifeMonths <= 0 {
		return decimal.Zero
	}
	years := decimal.NewFromInt(int64(usefulLifeMonths)).Div(twelve)
	annualRate := decimal.NewFromInt(2).Div(years)
	return bookValue.Mul(annualRate).Div(twelve).Round(2)
}

// Cumulative кумулятивний метод (сума чисел років):
// коефіцієнт = роки, що залишаються / сума чисел років (n*(n+1)/2),
// річна сума = (первісна - ліквідаційна - вхідна) * коефіцієнт, місячна = річна / 12.
// monthsUsed — повні місяці з дати початку амортизації; строк коротший за рік
// трактується як один рік.
func Cumulative(initialCost, residualValue, incoming decimal.Decimal, usefulLifeMonths, monthsUsed int) decimal.Decimal {
	if usefulLifeMonths <= 0 {
		return decimal.Zero
	}

	years := usefulLifeMonths / 12
	if years <= 0 {
		years = 1
	}
	currentYear := monthsUsed/12 + 1
	remaining := years - currentYear + 1
	if remaining <= 0 {
		return decimal.Zero
	}
	sumOfYears := years * (years + 1) / 2

	depreciable := initialCost.Sub(residualValue).Sub(incoming)
	if !depreciable.IsPositive() {
		return decimal.Zero
	}
	coeff := decimal.NewFromInt(int64(remaining)).Div(decimal.NewFromInt(int64(sumOfYears)))
	return depreciable.Mul(coeff).Div(twelve).Round(2)
}

// Production виробничий метод:
// (первісна - ліквідаційна - вхідна) / загальний обсяг * обсяг за місяць.
func Production(initialCost, residualValue, incoming decimal.Decimal, totalCapacity *decimal.Decimal, monthlyVolume decimal.Decimal) decimal.Decimal {
	if totalCapacity == nil || !totalCapacity.IsPositive() || !monthlyVolume.IsPositive() {
		return decimal.Zero
	}
	depreciable := initialCost.Sub(residualValue).Sub(incoming)
	if !depreciable.IsPositive() {
		return decimal.Zero
	}
	return depreciable.Div(*totalCapacity).Mul(monthlyVolume).Round(2)
}

// Calculate місячна амортизація об'єкта за його методом.
// monthsUsed потрібен лише кумулятивному методу, productionVolume — виробничому.
// Результат ніколи не опускає залишкову вартість нижче ліквідаційної:
// сума обмежується доступним залишком.
func Calculate(a *entity.Asset, monthsUsed int, productionVolume decimal.Decimal) Result {
	res := Result{Method: a.DepreciationMethod}

	ceiling := a.CurrentBookValue.Sub(a.ResidualValue)
	if !ceiling.IsPositive() {
		res.Amount = decimal.Zero
		return res
	}

	var amount decimal.Decimal
	switch a.DepreciationMethod {
	case entity.MethodStraightLine:
		amount = StraightLine(a.InitialCost, a.ResidualValue, a.IncomingDepreciation, a.UsefulLifeMonths)
	case entity.MethodReducingBalance:
		amount, res.Method = ReducingBalance(a.InitialCost, a.ResidualValue, a.CurrentBookValue, a.UsefulLifeMonths)
	case entity.MethodAcceleratedReducing:
		amount = AcceleratedReducing(a.CurrentBookValue, a.UsefulLifeMonths)
	case entity.MethodCumulative:
		amount = Cumulative(a.InitialCost, a.ResidualValue, a.IncomingDepreciation, a.UsefulLifeMonths, monthsUsed)
	case entity.MethodProduction:
		amount = Production(a.InitialCost, a.ResidualValue, a.IncomingDepreciation, a.TotalProductionCapacity, productionVolume)
	default:
		amount = decimal.Zero
	}

	if amount.GreaterThan(ceiling) {
		amount = ceiling
	}
	res.Amount = amount.Round(2)
	return res
}
