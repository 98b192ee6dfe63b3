package depreciation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestStraightLine(t *testing.T) {
	t.Run("базовий розрахунок", func(t *testing.T) {
		got := StraightLine(dec("12000"), dec("0"), dec("0"), 60)
		assert.True(t, dec("200.00").Equal(got), "12000 / 60 місяців = 200.00, отримано %s", got)
	})

	t.Run("з ліквідаційною вартістю та вхідною амортизацією", func(t *testing.T) {
		got := StraightLine(dec("12000"), dec("1000"), dec("2000"), 60)
		assert.True(t, dec("150.00").Equal(got), "(12000-1000-2000)/60 = 150.00, отримано %s", got)
	})

	t.Run("нульовий строк", func(t *testing.T) {
		assert.True(t, StraightLine(dec("12000"), dec("0"), dec("0"), 0).IsZero())
	})

	t.Run("вартість до амортизації вичерпана", func(t *testing.T) {
		assert.True(t, StraightLine(dec("1000"), dec("500"), dec("500"), 60).IsZero())
	})
}

func TestReducingBalance(t *testing.T) {
	t.Run("норма за коренем n-го степеня", func(t *testing.T) {
		// 1 - (1000/10000)^(1/5) = 0.369043; 10000 * 0.369043 / 12
		got, method := ReducingBalance(dec("10000"), dec("1000"), dec("10000"), 60)
		assert.Equal(t, entity.MethodReducingBalance, method)
		assert.True(t, dec("307.54").Equal(got), "очікували 307.54, отримано %s", got)
	})

	t.Run("нульова ліквідаційна деградує до прямолінійного", func(t *testing.T) {
		got, method := ReducingBalance(dec("12000"), dec("0"), dec("12000"), 60)
		assert.Equal(t, entity.MethodStraightLine, method,
			"при нульовій ліквідаційній вартості норма була б 100%")
		assert.True(t, dec("200.00").Equal(got), "очікували 200.00, отримано %s", got)
	})
}

func TestAcceleratedReducing(t *testing.T) {
	// норма = 2 / 5 років = 0.4; 9000 * 0.4 / 12 = 300.00
	got := AcceleratedReducing(dec("9000"), 60)
	assert.True(t, dec("300.00").Equal(got), "очікували 300.00, отримано %s", got)
}

func TestCumulative(t *testing.T) {
	t.Run("перший рік використання", func(t *testing.T) {
		// 5 років, що залишаються / 15 = 1/3; 15000 / 3 / 12 = 416.67
		got := Cumulative(dec("15000"), dec("0"), dec("0"), 60, 0)
		assert.True(t, dec("416.67").Equal(got), "очікували 416.67, отримано %s", got)
	})

	t.Run("останній рік використання", func(t *testing.T) {
		// 1 рік / 15; 15000 / 15 / 12 = 83.33
		got := Cumulative(dec("15000"), dec("0"), dec("0"), 60, 48)
		assert.True(t, dec("83.33").Equal(got), "очікували 83.33, отримано %s", got)
	})

	t.Run("строк вичерпано", func(t *testing.T) {
		assert.True(t, Cumulative(dec("15000"), dec("0"), dec("0"), 60, 60).IsZero())
	})

	t.Run("строк коротший за рік рахується як один рік", func(t *testing.T) {
		got := Cumulative(dec("1200"), dec("0"), dec("0"), 6, 0)
		assert.True(t, dec("100.00").Equal(got), "1200 * 1/1 / 12 = 100.00, отримано %s", got)
	})
}

func TestProduction(t *testing.T) {
	capacity := dec("50000")

	t.Run("пропорційно обсягу", func(t *testing.T) {
		got := Production(dec("10500"), dec("500"), dec("0"), &capacity, dec("1000"))
		assert.True(t, dec("200.00").Equal(got), "10000/50000 * 1000 = 200.00, отримано %s", got)
	})

	t.Run("без обсягу за місяць", func(t *testing.T) {
		assert.True(t, Production(dec("10500"), dec("500"), dec("0"), &capacity, dec("0")).IsZero())
	})

	t.Run("без загального обсягу", func(t *testing.T) {
		assert.True(t, Production(dec("10500"), dec("500"), dec("0"), nil, dec("1000")).IsZero())
	})
}

func TestCalculate(t *testing.T) {
	newAsset := func() *entity.Asset {
		return &entity.Asset{
			InitialCost:        dec("12000"),
			ResidualValue:      dec("0"),
			CurrentBookValue:   dec("12000"),
			DepreciationMethod: entity.MethodStraightLine,
			UsefulLifeMonths:   60,
		}
	}

	t.Run("диспетчеризація за методом", func(t *testing.T) {
		res := Calculate(newAsset(), 0, decimal.Zero)
		assert.Equal(t, entity.MethodStraightLine, res.Method)
		assert.True(t, dec("200.00").Equal(res.Amount))
	})

	t.Run("фіксується фактично застосований метод", func(t *testing.T) {
		a := newAsset()
		a.DepreciationMethod = entity.MethodReducingBalance
		res := Calculate(a, 0, decimal.Zero)
		assert.Equal(t, entity.MethodStraightLine, res.Method,
			"деградація методу має бути видима у результаті")
	})

	t.Run("сума обмежується доступним залишком", func(t *testing.T) {
		a := newAsset()
		a.CurrentBookValue = dec("100.50")
		res := Calculate(a, 0, decimal.Zero)
		assert.True(t, dec("100.50").Equal(res.Amount),
			"останнє нарахування не може опустити залишкову вартість нижче ліквідаційної")
	})

	t.Run("повністю замортизований об'єкт", func(t *testing.T) {
		a := newAsset()
		a.CurrentBookValue = dec("0")
		res := Calculate(a, 0, decimal.Zero)
		assert.True(t, res.Amount.IsZero())
	})

	t.Run("залишкова на рівні ліквідаційної", func(t *testing.T) {
		a := newAsset()
		a.ResidualValue = dec("1000")
		a.CurrentBookValue = dec("1000")
		res := Calculate(a, 0, decimal.Zero)
		assert.True(t, res.Amount.IsZero())
	})
}
