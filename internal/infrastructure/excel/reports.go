// Package excel будує звіти XLSX: інвентаризаційний опис (за мотивами форми
// № інв-1) та відомість нарахування амортизації за місяць.
package excel

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

var monthNames = [...]string{
	"січень", "лютий", "березень", "квітень", "травень", "червень",
	"липень", "серпень", "вересень", "жовтень", "листопад", "грудень",
}

// MonthName українська назва місяця (1..12).
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("місяць %d", month)
	}
	return monthNames[month-1]
}

func conditionLabel(condition string) string {
	switch condition {
	case entity.ConditionGood:
		return "придатний"
	case entity.ConditionNeedsRepair:
		return "потребує ремонту"
	case entity.ConditionUnusable:
		return "непридатний"
	}
	return condition
}

func methodLabel(m entity.DepreciationMethod) string {
	switch m {
	case entity.MethodStraightLine:
		return "прямолінійний"
	case entity.MethodReducingBalance:
		return "зменшення залишкової вартості"
	case entity.MethodAcceleratedReducing:
		return "прискореного зменшення"
	case entity.MethodCumulative:
		return "кумулятивний"
	case entity.MethodProduction:
		return "виробничий"
	}
	return string(m)
}

// InventorySheetRow рядок інвентаризаційного опису з уже підтягнутими
// реквізитами об'єкта.
type InventorySheetRow struct {
	InventoryNumber string
	Name            string
	UnitOfMeasure   string
	Quantity        int
	BookValue       decimal.Decimal
	IsFound         bool
	Condition       string
	ActualValue     *decimal.Decimal
	Difference      decimal.Decimal
	Notes           string
}

// InventorySheet формує інвентаризаційний опис.
func InventorySheet(inv *entity.Inventory, rows []InventorySheetRow) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Опис"
	f.SetSheetName(f.GetSheetName(0), sheet)

	f.SetCellValue(sheet, "A1", "ІНВЕНТАРИЗАЦІЙНИЙ ОПИС ОСНОВНИХ ЗАСОБІВ")
	f.SetCellValue(sheet, "A2", fmt.Sprintf("№ %s від %s", inv.Number, inv.Date.Format("02.01.2006")))
	if inv.OrderNumber != "" {
		f.SetCellValue(sheet, "A3", fmt.Sprintf("Підстава: наказ № %s від %s", inv.OrderNumber, inv.OrderDate.Format("02.01.2006")))
	}

	headers := []string{
		"Інвентарний номер", "Назва", "Од. вим.", "Кількість",
		"Облікова вартість, грн", "Наявність", "Стан",
		"Фактична вартість, грн", "Різниця, грн", "Примітки",
	}
	const headerRow = 5
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("excel: адреса комірки: %w", err)
		}
		f.SetCellValue(sheet, cell, h)
	}

	totalBook := decimal.Zero
	totalDiff := decimal.Zero
	for i, r := range rows {
		n := headerRow + 1 + i
		found := "виявлено"
		if !r.IsFound {
			found = "не виявлено"
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", n), r.InventoryNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", n), r.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", n), r.UnitOfMeasure)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", n), r.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", n), r.BookValue.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", n), found)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", n), conditionLabel(r.Condition))
		if r.ActualValue != nil {
			f.SetCellValue(sheet, fmt.Sprintf("H%d", n), r.ActualValue.InexactFloat64())
		}
		f.SetCellValue(sheet, fmt.Sprintf("I%d", n), r.Difference.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("J%d", n), r.Notes)

		totalBook = totalBook.Add(r.BookValue)
		totalDiff = totalDiff.Add(r.Difference)
	}

	totalRow := headerRow + 1 + len(rows)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "РАЗОМ")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), len(rows))
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), totalBook.InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("I%d", totalRow), totalDiff.InexactFloat64())

	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "E", "E", 20)
	f.SetColWidth(sheet, "H", "J", 20)

	return f, nil
}

// StatementRow рядок відомості нарахування амортизації.
type StatementRow struct {
	InventoryNumber string
	AssetName       string
	Method          entity.DepreciationMethod
	BookValueBefore decimal.Decimal
	Amount          decimal.Decimal
	BookValueAfter  decimal.Decimal
}

// DepreciationStatement формує відомість нарахування амортизації за період.
func DepreciationStatement(year, month int, rows []StatementRow) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Відомість"
	f.SetSheetName(f.GetSheetName(0), sheet)

	f.SetCellValue(sheet, "A1", "ВІДОМІСТЬ НАРАХУВАННЯ АМОРТИЗАЦІЇ ОСНОВНИХ ЗАСОБІВ")
	f.SetCellValue(sheet, "A2", fmt.Sprintf("за %s %d р.", MonthName(month), year))

	headers := []string{
		"Інвентарний номер", "Назва", "Метод",
		"Залишкова вартість до, грн", "Сума амортизації, грн", "Залишкова вартість після, грн",
	}
	const headerRow = 4
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("excel: адреса комірки: %w", err)
		}
		f.SetCellValue(sheet, cell, h)
	}

	total := decimal.Zero
	for i, r := range rows {
		n := headerRow + 1 + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", n), r.InventoryNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", n), r.AssetName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", n), methodLabel(r.Method))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", n), r.BookValueBefore.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", n), r.Amount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", n), r.BookValueAfter.InexactFloat64())
		total = total.Add(r.Amount)
	}

	totalRow := headerRow + 1 + len(rows)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "РАЗОМ")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), total.InexactFloat64())

	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "C", 30)
	f.SetColWidth(sheet, "D", "F", 24)

	return f, nil
}
