package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Методи амортизації згідно з НП(С)БО 7 п. 26.
type DepreciationMethod string

const (
	MethodStraightLine        DepreciationMethod = "straight_line"        // прямолінійний
	MethodReducingBalance     DepreciationMethod = "reducing_balance"     // зменшення залишкової вартості
	MethodAcceleratedReducing DepreciationMethod = "accelerated_reducing" // прискореного зменшення
	MethodCumulative          DepreciationMethod = "cumulative"           // кумулятивний
	MethodProduction          DepreciationMethod = "production"           // виробничий
)

// Valid повертає true для відомого методу амортизації.
func (m DepreciationMethod) Valid() bool {
	switch m {
	case MethodStraightLine, MethodReducingBalance, MethodAcceleratedReducing,
		MethodCumulative, MethodProduction:
		return true
	}
	return false
}

// Статуси основного засобу.
const (
	AssetStatusActive    = "active"    // в експлуатації
	AssetStatusDisposed  = "disposed"  // списаний
	AssetStatusConserved = "conserved" // на консервації
)

// Asset — основний засіб, інвентарний об'єкт. Єдиний агрегат із вартісними
// характеристиками, що змінюються на місці; уся історія (нарахування, вибуття,
// переоцінки) — append-only і посилається на нього.
type Asset struct {
	ID              string
	OrganizationID  string // може бути порожнім
	InventoryNumber string // унікальний
	Name            string
	GroupID         string
	Status          string

	// Вартісні характеристики, грн
	InitialCost             decimal.Decimal // первісна вартість
	ResidualValue           decimal.Decimal // ліквідаційна вартість
	IncomingDepreciation    decimal.Decimal // знос, нарахований до отримання ОЗ
	CurrentBookValue        decimal.Decimal // залишкова (балансова) вартість
	AccumulatedDepreciation decimal.Decimal // накопичений знос

	// Амортизація
	DepreciationMethod      DepreciationMethod
	UsefulLifeMonths        int
	TotalProductionCapacity *decimal.Decimal // тільки для виробничого методу
	DepreciationRate        *decimal.Decimal // довідкова річна норма, %

	// Дати
	CommissioningDate     time.Time // введення в експлуатацію
	DepreciationStartDate time.Time // місяць, наступний за введенням в експлуатацію
	DisposalDate          *time.Time

	// Ідентифікаційні поля
	Quantity        int
	FactoryNumber   string
	PassportNumber  string
	ManufactureYear *int
	UnitOfMeasure   string

	ResponsiblePersonID string
	LocationID          string
	Description         string

	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InitBookValue ініціалізує балансову вартість при створенні:
// первісна мінус вхідна амортизація; накопичений знос стартує з нуля.
func (a *Asset) InitBookValue() {
	a.CurrentBookValue = a.InitialCost.Sub(a.IncomingDepreciation)
	a.AccumulatedDepreciation = decimal.Zero
}

// Validate перевіряє інваріанти агрегата. Викликається при створенні та
// після кожної мутації вартісних полів.
func (a *Asset) Validate() error {
	if !a.InitialCost.IsPositive() {
		return fmt.Errorf("первісна вартість має бути більшою за нуль")
	}
	if a.ResidualValue.IsNegative() {
		return fmt.Errorf("ліквідаційна вартість не може бути від'ємною")
	}
	if a.ResidualValue.GreaterThanOrEqual(a.InitialCost) {
		return fmt.Errorf("ліквідаційна вартість не може перевищувати первісну вартість")
	}
	if a.IncomingDepreciation.IsNegative() {
		return fmt.Errorf("вхідна амортизація не може бути від'ємною")
	}
	if a.IncomingDepreciation.GreaterThan(a.InitialCost) {
		return fmt.Errorf("вхідна амортизація не може перевищувати первісну вартість")
	}
	if a.UsefulLifeMonths <= 0 {
		return fmt.Errorf("строк корисного використання має бути більшим за нуль")
	}
	if !a.DepreciationMethod.Valid() {
		return fmt.Errorf("невідомий метод амортизації: %s", a.DepreciationMethod)
	}
	if a.DepreciationMethod == MethodProduction &&
		(a.TotalProductionCapacity == nil || !a.TotalProductionCapacity.IsPositive()) {
		return fmt.Errorf("для виробничого методу потрібен загальний обсяг продукції")
	}
	if a.DepreciationStartDate.Before(a.CommissioningDate) {
		return fmt.Errorf("дата початку амортизації не може бути раніше дати введення в експлуатацію")
	}
	if a.DisposalDate != nil && a.DisposalDate.Before(a.CommissioningDate) {
		return fmt.Errorf("дата вибуття не може бути раніше дати введення в експлуатацію")
	}
	return nil
}

// Accrue проводить місячне нарахування: зменшує залишкову вартість і збільшує
// накопичений знос на ту саму суму. Передумова: сума не опускає залишкову
// вартість нижче ліквідаційної.
func (a *Asset) Accrue(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("сума нарахування не може бути від'ємною")
	}
	ceiling := a.CurrentBookValue.Sub(a.ResidualValue)
	if amount.GreaterThan(ceiling) {
		return fmt.Errorf("нарахування %s перевищує доступний залишок %s", amount, ceiling)
	}
	a.CurrentBookValue = a.CurrentBookValue.Sub(amount)
	a.AccumulatedDepreciation = a.AccumulatedDepreciation.Add(amount)
	return nil
}

// RevaluationResult результат перерахунку вартості за справедливою вартістю
// (НП(С)БО 7 п. 17): індекс = справедлива / залишкова.
type RevaluationResult struct {
	Type              string // upward | downward
	Index             decimal.Decimal
	OldInitialCost    decimal.Decimal
	OldDepreciation   decimal.Decimal
	OldBookValue      decimal.Decimal
	NewInitialCost    decimal.Decimal
	NewDepreciation   decimal.Decimal
	NewBookValue      decimal.Decimal
	RevaluationAmount decimal.Decimal // нова залишкова мінус стара (зі знаком)
}

// Типи переоцінки.
const (
	RevaluationUpward   = "upward"   // дооцінка
	RevaluationDownward = "downward" // уцінка
)

// ApplyRevaluation перераховує первісну вартість і знос за індексом переоцінки
// та застосовує нові значення до агрегата. При нульовій залишковій вартості
// індекс дорівнює одиниці.
func (a *Asset) ApplyRevaluation(fairValue decimal.Decimal) RevaluationResult {
	res := RevaluationResult{
		OldInitialCost:  a.InitialCost,
		OldDepreciation: a.AccumulatedDepreciation,
		OldBookValue:    a.CurrentBookValue,
	}

	index := decimal.NewFromInt(1)
	if a.CurrentBookValue.IsPositive() {
		index = fairValue.Div(a.CurrentBookValue)
	}
	res.Index = index

	res.NewInitialCost = a.InitialCost.Mul(index).Round(2)
	res.NewDepreciation = a.AccumulatedDepreciation.Mul(index).Round(2)
	res.NewBookValue = res.NewInitialCost.Sub(res.NewDepreciation)
	res.RevaluationAmount = res.NewBookValue.Sub(res.OldBookValue)

	if fairValue.GreaterThan(res.OldBookValue) {
		res.Type = RevaluationUpward
	} else {
		res.Type = RevaluationDownward
	}

	a.InitialCost = res.NewInitialCost
	a.AccumulatedDepreciation = res.NewDepreciation
	a.CurrentBookValue = res.NewBookValue
	return res
}

// CapitalizeImprovement збільшує первісну та залишкову вартість на суму
// капіталізованого поліпшення. Ремонти, що не збільшують вартість,
// агрегат не зачіпають.
func (a *Asset) CapitalizeImprovement(amount decimal.Decimal) {
	a.InitialCost = a.InitialCost.Add(amount)
	a.CurrentBookValue = a.CurrentBookValue.Add(amount)
}

// MarkDisposed фіксує вибуття: статус стає термінальним, вартісні показники
// заморожуються у знімку на записі вибуття.
func (a *Asset) MarkDisposed(date time.Time) {
	a.Status = AssetStatusDisposed
	d := date
	a.DisposalDate = &d
}

// IsFullyDepreciated true, коли залишкова вартість досягла ліквідаційної.
func (a *Asset) IsFullyDepreciated() bool {
	return a.CurrentBookValue.LessThanOrEqual(a.ResidualValue)
}

// WearRatio частка зносу (накопичений знос / первісна вартість), 0 при нульовій вартості.
func (a *Asset) WearRatio() decimal.Decimal {
	if !a.InitialCost.IsPositive() {
		return decimal.Zero
	}
	return a.AccumulatedDepreciation.Div(a.InitialCost)
}

// MonthsUsed кількість повних місяців від дати початку амортизації до asOf.
func (a *Asset) MonthsUsed(asOf time.Time) int {
	months := (asOf.Year()-a.DepreciationStartDate.Year())*12 +
		int(asOf.Month()) - int(a.DepreciationStartDate.Month())
	if months < 0 {
		return 0
	}
	return months
}
