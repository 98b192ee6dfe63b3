package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

func testAsset() *entity.Asset {
	return &entity.Asset{
		ID:              "a-1",
		InventoryNumber: "104-0001",
		Name:            "Верстат токарний",
	}
}

func testGroup() *entity.AssetGroup {
	return &entity.AssetGroup{
		ID:                  "g-1",
		Code:                "4",
		Name:                "Машини та обладнання",
		AccountNumber:       "104",
		DepreciationAccount: "131",
	}
}

func TestReceiptEntries(t *testing.T) {
	r := &entity.AssetReceipt{
		ReceiptType:    entity.ReceiptTypePurchase,
		DocumentNumber: "ПН-12",
		DocumentDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.RequireFromString("12000.00"),
	}

	entries := ReceiptEntries(testAsset(), testGroup(), r)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "104", e.DebitAccount)
	assert.Equal(t, AccountCapitalInvestments, e.CreditAccount)
	assert.True(t, r.Amount.Equal(e.Amount))
	assert.True(t, e.IsPosted)
	assert.Contains(t, e.Description, "Придбання")
}

func TestDepreciationEntries(t *testing.T) {
	rec := &entity.DepreciationRecord{
		PeriodYear:  2024,
		PeriodMonth: 4,
		Method:      entity.MethodStraightLine,
		Amount:      decimal.RequireFromString("200.00"),
	}

	t.Run("рахунок витрат за замовчуванням", func(t *testing.T) {
		entries := DepreciationEntries(testAsset(), testGroup(), rec, "")
		require.Len(t, entries, 1)
		assert.Equal(t, DefaultDepreciationExpenseAccount, entries[0].DebitAccount)
		assert.Equal(t, "131", entries[0].CreditAccount)
		assert.Contains(t, entries[0].Description, "за 04.2024")
	})

	t.Run("явний рахунок витрат", func(t *testing.T) {
		entries := DepreciationEntries(testAsset(), testGroup(), rec, "23")
		require.Len(t, entries, 1)
		assert.Equal(t, "23", entries[0].DebitAccount)
	})
}

func TestDisposalEntries(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("продаж із зносом і залишковою вартістю — три проводки", func(t *testing.T) {
		d := &entity.AssetDisposal{
			DisposalType:                      entity.DisposalTypeSale,
			DocumentDate:                      date,
			Reason:                            "ТОВ «Покупець»",
			SaleAmount:                        decimal.RequireFromString("5000.00"),
			BookValueAtDisposal:               decimal.RequireFromString("4000.00"),
			AccumulatedDepreciationAtDisposal: decimal.RequireFromString("8000.00"),
		}

		entries := DisposalEntries(testAsset(), testGroup(), d)
		require.Len(t, entries, 3)

		assert.Equal(t, "131", entries[0].DebitAccount, "списання зносу")
		assert.Equal(t, "104", entries[0].CreditAccount)

		assert.Equal(t, AccountWriteoff, entries[1].DebitAccount, "списання залишкової вартості")
		assert.Equal(t, "104", entries[1].CreditAccount)

		assert.Equal(t, AccountOtherDebtors, entries[2].DebitAccount, "дохід від продажу")
		assert.Equal(t, AccountOtherIncome, entries[2].CreditAccount)
		assert.True(t, d.SaleAmount.Equal(entries[2].Amount))
	})

	t.Run("ліквідація повністю замортизованого — одна проводка", func(t *testing.T) {
		d := &entity.AssetDisposal{
			DisposalType:                      entity.DisposalTypeLiquidation,
			DocumentDate:                      date,
			BookValueAtDisposal:               decimal.Zero,
			AccumulatedDepreciationAtDisposal: decimal.RequireFromString("12000.00"),
		}

		entries := DisposalEntries(testAsset(), testGroup(), d)
		require.Len(t, entries, 1)
		assert.Equal(t, "131", entries[0].DebitAccount)
		assert.Equal(t, "104", entries[0].CreditAccount)
	})
}

func TestRevaluationEntries(t *testing.T) {
	date := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("дооцінка", func(t *testing.T) {
		rv := &entity.AssetRevaluation{
			RevaluationType:   entity.RevaluationUpward,
			Date:              date,
			FairValue:         decimal.RequireFromString("11000.00"),
			RevaluationAmount: decimal.RequireFromString("1000.00"),
		}
		entries := RevaluationEntries(testAsset(), testGroup(), rv)
		require.Len(t, entries, 1)
		assert.Equal(t, "104", entries[0].DebitAccount)
		assert.Equal(t, AccountRevaluationCapital, entries[0].CreditAccount)
	})

	t.Run("уцінка проводиться за модулем суми", func(t *testing.T) {
		rv := &entity.AssetRevaluation{
			RevaluationType:   entity.RevaluationDownward,
			Date:              date,
			FairValue:         decimal.RequireFromString("9000.00"),
			RevaluationAmount: decimal.RequireFromString("-1000.00"),
		}
		entries := RevaluationEntries(testAsset(), testGroup(), rv)
		require.Len(t, entries, 1)
		assert.Equal(t, AccountWritedown, entries[0].DebitAccount)
		assert.Equal(t, "104", entries[0].CreditAccount)
		assert.True(t, decimal.RequireFromString("1000.00").Equal(entries[0].Amount))
	})
}

func TestImprovementEntries(t *testing.T) {
	date := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)

	t.Run("капіталізація", func(t *testing.T) {
		imp := &entity.AssetImprovement{
			ImprovementType: entity.ImprovementTypeModernization,
			Date:            date,
			Description:     "заміна ЧПК",
			Amount:          decimal.RequireFromString("3000.00"),
			IncreasesValue:  true,
		}
		entries := ImprovementEntries(testAsset(), testGroup(), imp)
		require.Len(t, entries, 1)
		assert.Equal(t, "104", entries[0].DebitAccount)
		assert.Equal(t, AccountCapitalInvestments, entries[0].CreditAccount)
	})

	t.Run("ремонт на витрати періоду", func(t *testing.T) {
		imp := &entity.AssetImprovement{
			ImprovementType: entity.ImprovementTypeCurrent,
			Date:            date,
			Description:     "заміна пасів",
			Amount:          decimal.RequireFromString("500.00"),
			IncreasesValue:  false,
		}
		entries := ImprovementEntries(testAsset(), testGroup(), imp)
		require.Len(t, entries, 1)
		assert.Equal(t, DefaultRepairExpenseAccount, entries[0].DebitAccount)
		assert.Equal(t, AccountSuppliers, entries[0].CreditAccount)
	})
}

func TestTransferEntries(t *testing.T) {
	tr := &entity.AssetTransfer{
		DocumentNumber: "ВП-3",
		DocumentDate:   time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	item := &entity.AssetTransferItem{
		AssetID:   "a-1",
		BookValue: decimal.RequireFromString("7000.00"),
	}

	entries := TransferEntries(testAsset(), testGroup(), tr, item, "Цех №1", "Цех №2")
	require.Len(t, entries, 1)
	assert.Equal(t, entries[0].DebitAccount, entries[0].CreditAccount,
		"переміщення має довідковий характер")
	assert.Contains(t, entries[0].Description, "Цех №1")
	assert.Contains(t, entries[0].Description, "Цех №2")
}
