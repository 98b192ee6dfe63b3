package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validAsset() *Asset {
	commissioned := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return &Asset{
		InventoryNumber:       "104-0001",
		Name:                  "Верстат токарний",
		Status:                AssetStatusActive,
		InitialCost:           dec("12000"),
		ResidualValue:         dec("0"),
		IncomingDepreciation:  dec("0"),
		DepreciationMethod:    MethodStraightLine,
		UsefulLifeMonths:      60,
		CommissioningDate:     commissioned,
		DepreciationStartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAssetValidate(t *testing.T) {
	t.Run("коректний об'єкт", func(t *testing.T) {
		assert.NoError(t, validAsset().Validate())
	})

	t.Run("нульова первісна вартість", func(t *testing.T) {
		a := validAsset()
		a.InitialCost = dec("0")
		assert.Error(t, a.Validate())
	})

	t.Run("ліквідаційна не менша за первісну", func(t *testing.T) {
		a := validAsset()
		a.ResidualValue = dec("12000")
		assert.Error(t, a.Validate())
	})

	t.Run("вхідна амортизація більша за первісну", func(t *testing.T) {
		a := validAsset()
		a.IncomingDepreciation = dec("13000")
		assert.Error(t, a.Validate())
	})

	t.Run("виробничий метод без обсягу", func(t *testing.T) {
		a := validAsset()
		a.DepreciationMethod = MethodProduction
		assert.Error(t, a.Validate())

		capacity := dec("50000")
		a.TotalProductionCapacity = &capacity
		assert.NoError(t, a.Validate())
	})

	t.Run("амортизація раніше введення в експлуатацію", func(t *testing.T) {
		a := validAsset()
		a.DepreciationStartDate = a.CommissioningDate.AddDate(0, -1, 0)
		assert.Error(t, a.Validate())
	})
}

func TestAssetInitBookValue(t *testing.T) {
	a := validAsset()
	a.IncomingDepreciation = dec("2000")
	a.InitBookValue()

	assert.True(t, dec("10000").Equal(a.CurrentBookValue),
		"залишкова = первісна мінус вхідна амортизація")
	assert.True(t, a.AccumulatedDepreciation.IsZero(),
		"накопичений знос стартує з нуля незалежно від вхідної амортизації")
}

func TestAssetAccrue(t *testing.T) {
	a := validAsset()
	a.InitBookValue()

	t.Run("синхронна зміна вартості та зносу", func(t *testing.T) {
		require.NoError(t, a.Accrue(dec("200")))
		assert.True(t, dec("11800").Equal(a.CurrentBookValue))
		assert.True(t, dec("200").Equal(a.AccumulatedDepreciation))
	})

	t.Run("нарахування понад доступний залишок", func(t *testing.T) {
		err := a.Accrue(dec("999999"))
		assert.Error(t, err)
	})

	t.Run("від'ємна сума", func(t *testing.T) {
		assert.Error(t, a.Accrue(dec("-1")))
	})
}

func TestAssetApplyRevaluation(t *testing.T) {
	t.Run("дооцінка перераховує первісну і знос за індексом", func(t *testing.T) {
		a := validAsset()
		a.InitBookValue()
		require.NoError(t, a.Accrue(dec("2000")))
		// первісна 12000, знос 2000, залишкова 10000; справедлива 12500 -> індекс 1.25

		res := a.ApplyRevaluation(dec("12500"))
		assert.Equal(t, RevaluationUpward, res.Type)
		assert.True(t, dec("15000").Equal(a.InitialCost))
		assert.True(t, dec("2500").Equal(a.AccumulatedDepreciation))
		assert.True(t, dec("12500").Equal(a.CurrentBookValue))
		assert.True(t, dec("2500").Equal(res.RevaluationAmount))
	})

	t.Run("справедлива дорівнює залишковій — показники без змін", func(t *testing.T) {
		a := validAsset()
		a.InitBookValue()
		require.NoError(t, a.Accrue(dec("2000")))

		res := a.ApplyRevaluation(dec("10000"))
		assert.True(t, res.Index.Equal(dec("1")))
		assert.True(t, dec("12000").Equal(a.InitialCost))
		assert.True(t, dec("10000").Equal(a.CurrentBookValue))
		assert.True(t, res.RevaluationAmount.IsZero())
	})

	t.Run("нульова залишкова дає індекс одиниця", func(t *testing.T) {
		a := validAsset()
		a.CurrentBookValue = dec("0")
		a.AccumulatedDepreciation = dec("12000")

		res := a.ApplyRevaluation(dec("5000"))
		assert.True(t, res.Index.Equal(dec("1")))
		assert.True(t, dec("12000").Equal(a.InitialCost))
	})
}

func TestAssetLifecycleHelpers(t *testing.T) {
	a := validAsset()
	a.InitBookValue()

	t.Run("капіталізація поліпшення", func(t *testing.T) {
		a.CapitalizeImprovement(dec("3000"))
		assert.True(t, dec("15000").Equal(a.InitialCost))
		assert.True(t, dec("15000").Equal(a.CurrentBookValue))
	})

	t.Run("вибуття термінальне", func(t *testing.T) {
		date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		a.MarkDisposed(date)
		assert.Equal(t, AssetStatusDisposed, a.Status)
		require.NotNil(t, a.DisposalDate)
		assert.True(t, a.DisposalDate.Equal(date))
	})

	t.Run("місяці використання", func(t *testing.T) {
		b := validAsset()
		assert.Equal(t, 0, b.MonthsUsed(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)),
			"до початку амортизації нуль місяців")
		assert.Equal(t, 13, b.MonthsUsed(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("частка зносу", func(t *testing.T) {
		b := validAsset()
		b.InitBookValue()
		require.NoError(t, b.Accrue(dec("11000")))
		assert.True(t, b.WearRatio().GreaterThan(dec("0.9")))
		assert.False(t, b.IsFullyDepreciated())
		require.NoError(t, b.Accrue(dec("1000")))
		assert.True(t, b.IsFullyDepreciated())
	})
}
