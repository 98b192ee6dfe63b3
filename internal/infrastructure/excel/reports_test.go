package excel

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestInventorySheet(t *testing.T) {
	inv := &entity.Inventory{
		Number:      "ІНВ-2025-01",
		Date:        time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
		OrderNumber: "14",
		OrderDate:   time.Date(2025, time.October, 25, 0, 0, 0, 0, time.UTC),
	}
	actual := dec("11000.00")
	rows := []InventorySheetRow{
		{
			InventoryNumber: "ОЗ-0001",
			Name:            "Ноутбук",
			UnitOfMeasure:   "шт",
			Quantity:        1,
			BookValue:       dec("12000.00"),
			IsFound:         true,
			Condition:       entity.ConditionGood,
			ActualValue:     &actual,
			Difference:      dec("-1000.00"),
		},
		{
			InventoryNumber: "ОЗ-0002",
			Name:            "Принтер",
			Quantity:        1,
			BookValue:       dec("3000.00"),
			IsFound:         false,
			Condition:       entity.ConditionUnusable,
			Difference:      dec("-3000.00"),
		},
	}

	f, err := InventorySheet(inv, rows)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Опис", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ІНВЕНТАРИЗАЦІЙНИЙ ОПИС ОСНОВНИХ ЗАСОБІВ", title)

	name, err := f.GetCellValue("Опис", "B6")
	require.NoError(t, err)
	assert.Equal(t, "Ноутбук", name)

	found, err := f.GetCellValue("Опис", "F7")
	require.NoError(t, err)
	assert.Equal(t, "не виявлено", found)

	// підсумковий рядок: 2 об'єкти, сумарна облікова вартість 15000
	totalBook, err := f.GetCellValue("Опис", "E8")
	require.NoError(t, err)
	assert.Equal(t, "15000", totalBook)
}

func TestDepreciationStatement(t *testing.T) {
	rows := []StatementRow{
		{
			InventoryNumber: "ОЗ-0001",
			AssetName:       "Верстат",
			Method:          entity.MethodStraightLine,
			BookValueBefore: dec("50000.00"),
			Amount:          dec("1000.00"),
			BookValueAfter:  dec("49000.00"),
		},
		{
			InventoryNumber: "ОЗ-0002",
			AssetName:       "Автомобіль",
			Method:          entity.MethodAcceleratedReducing,
			BookValueBefore: dec("200000.00"),
			Amount:          dec("8333.33"),
			BookValueAfter:  dec("191666.67"),
		},
	}

	f, err := DepreciationStatement(2025, 10, rows)
	require.NoError(t, err)
	defer f.Close()

	period, err := f.GetCellValue("Відомість", "A2")
	require.NoError(t, err)
	assert.Equal(t, "за жовтень 2025 р.", period)

	method, err := f.GetCellValue("Відомість", "C5")
	require.NoError(t, err)
	assert.Equal(t, "прямолінійний", method)

	total, err := f.GetCellValue("Відомість", "E7")
	require.NoError(t, err)
	assert.Equal(t, "9333.33", total)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "січень", MonthName(1))
	assert.Equal(t, "грудень", MonthName(12))
	assert.Equal(t, "місяць 13", MonthName(13))
}
