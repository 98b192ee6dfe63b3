// Package ledger формує бухгалтерські проводки для операцій з основними
// засобами за Планом рахунків та НП(С)БО 7. Функції чисті: повертають
// готові проводки, збереження — справа викликача.
//
// Рахунки:
//
//	10x — Основні засоби (за групами)
//	13x — Знос (амортизація) необоротних активів
//	152 — Придбання (виготовлення) основних засобів
//	23  — Виробництво
//	91  — Загальновиробничі витрати
//	92  — Адміністративні витрати
//	93  — Витрати на збут
//	377 — Розрахунки з іншими дебіторами
//	411 — Дооцінка (уцінка) основних засобів
//	631 — Розрахунки з вітчизняними постачальниками
//	746 — Інші доходи від звичайної діяльності
//	975 — Уцінка необоротних активів і фінансових інвестицій
//	976 — Списання необоротних активів
package ledger

import (
	"fmt"
	"time"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

const (
	AccountCapitalInvestments = "152"
	AccountOtherDebtors       = "377"
	AccountRevaluationCapital = "411"
	AccountSuppliers          = "631"
	AccountOtherIncome        = "746"
	AccountWritedown          = "975"
	AccountWriteoff           = "976"

	// Рахунок витрат для амортизації за замовчуванням — адміністративні витрати.
	DefaultDepreciationExpenseAccount = "92"
	// Рахунок витрат для ремонту за замовчуванням — загальновиробничі витрати.
	DefaultRepairExpenseAccount = "91"
)

var receiptTypeLabels = map[string]string{
	entity.ReceiptTypePurchase:     "Придбання",
	entity.ReceiptTypeFreeReceipt:  "Безоплатне отримання",
	entity.ReceiptTypeContribution: "Внесок до статутного капіталу",
	entity.ReceiptTypeExchange:     "Обмін",
	entity.ReceiptTypeSelfMade:     "Виготовлення власними силами",
	entity.ReceiptTypeOther:        "Інше",
}

var disposalTypeLabels = map[string]string{
	entity.DisposalTypeSale:         "Продаж",
	entity.DisposalTypeLiquidation:  "Ліквідація",
	entity.DisposalTypeFreeTransfer: "Безоплатна передача",
	entity.DisposalTypeShortage:     "Нестача",
	entity.DisposalTypeOther:        "Інше",
}

var improvementTypeLabels = map[string]string{
	entity.ImprovementTypeCapital:        "Капітальний ремонт",
	entity.ImprovementTypeCurrent:        "Поточний ремонт",
	entity.ImprovementTypeModernization:  "Модернізація",
	entity.ImprovementTypeReconstruction: "Реконструкція",
}

var methodLabels = map[entity.DepreciationMethod]string{
	entity.MethodStraightLine:        "Прямолінійний",
	entity.MethodReducingBalance:     "Зменшення залишкової вартості",
	entity.MethodAcceleratedReducing: "Прискореного зменшення залишкової вартості",
	entity.MethodCumulative:          "Кумулятивний",
	entity.MethodProduction:          "Виробничий",
}

func label(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return key
}

func newEntry(entryType string, date time.Time, debit, credit string, a *entity.Asset) entity.AccountEntry {
	d := date
	return entity.AccountEntry{
		EntryType:     entryType,
		Date:          date,
		DebitAccount:  debit,
		CreditAccount: credit,
		AssetID:       a.ID,
		DocumentDate:  &d,
		IsPosted:      true,
	}
}

// ReceiptEntries проводки оприбуткування:
// Дт <рахунок групи ОЗ> Кт 152 на суму оприбуткування.
func ReceiptEntries(a *entity.Asset, g *entity.AssetGroup, r *entity.AssetReceipt) []entity.AccountEntry {
	e := newEntry(entity.EntryTypeReceipt, r.DocumentDate, g.AccountNumber, AccountCapitalInvestments, a)
	e.Amount = r.Amount
	e.DocumentNumber = r.DocumentNumber
	e.Description = fmt.Sprintf("Оприбуткування ОЗ %s «%s». Тип надходження: %s.",
		a.InventoryNumber, a.Name, label(receiptTypeLabels, r.ReceiptType))
	return []entity.AccountEntry{e}
}

// DepreciationEntries проводки нарахування амортизації:
// Дт <рахунок витрат> Кт <рахунок зносу групи>.
func DepreciationEntries(a *entity.Asset, g *entity.AssetGroup, rec *entity.DepreciationRecord, expenseAccount string) []entity.AccountEntry {
	if expenseAccount == "" {
		expenseAccount = DefaultDepreciationExpenseAccount
	}
	periodDate := time.Date(rec.PeriodYear, time.Month(rec.PeriodMonth), 1, 0, 0, 0, 0, time.UTC)

	e := newEntry(entity.EntryTypeDepreciation, periodDate, expenseAccount, g.DepreciationAccount, a)
	e.Amount = rec.Amount
	e.Description = fmt.Sprintf("Нарахування амортизації ОЗ %s «%s» за %02d.%d. Метод: %s.",
		a.InventoryNumber, a.Name, rec.PeriodMonth, rec.PeriodYear, methodLabels[rec.Method])
	return []entity.AccountEntry{e}
}

// DisposalEntries проводки вибуття, від нуля до трьох:
//  1. списання зносу: Дт <13x> Кт <10x> (якщо знос > 0);
//  2. списання залишкової вартості: Дт 976 Кт <10x> (якщо залишкова > 0);
//  3. при продажу — дохід: Дт 377 Кт 746 (якщо сума продажу > 0).
func DisposalEntries(a *entity.Asset, g *entity.AssetGroup, d *entity.AssetDisposal) []entity.AccountEntry {
	var entries []entity.AccountEntry
	typeLabel := label(disposalTypeLabels, d.DisposalType)

	if d.AccumulatedDepreciationAtDisposal.IsPositive() {
		e := newEntry(entity.EntryTypeDisposal, d.DocumentDate, g.DepreciationAccount, g.AccountNumber, a)
		e.Amount = d.AccumulatedDepreciationAtDisposal
		e.DocumentNumber = d.DocumentNumber
		e.Description = fmt.Sprintf("Списання зносу при вибутті ОЗ %s «%s». %s.",
			a.InventoryNumber, a.Name, typeLabel)
		entries = append(entries, e)
	}

	if d.BookValueAtDisposal.IsPositive() {
		e := newEntry(entity.EntryTypeDisposal, d.DocumentDate, AccountWriteoff, g.AccountNumber, a)
		e.Amount = d.BookValueAtDisposal
		e.DocumentNumber = d.DocumentNumber
		e.Description = fmt.Sprintf("Списання залишкової вартості при вибутті ОЗ %s «%s». %s.",
			a.InventoryNumber, a.Name, typeLabel)
		entries = append(entries, e)
	}

	if d.DisposalType == entity.DisposalTypeSale && d.SaleAmount.IsPositive() {
		e := newEntry(entity.EntryTypeDisposal, d.DocumentDate, AccountOtherDebtors, AccountOtherIncome, a)
		e.Amount = d.SaleAmount
		e.DocumentNumber = d.DocumentNumber
		e.Description = fmt.Sprintf("Дохід від продажу ОЗ %s «%s». Покупець: %s.",
			a.InventoryNumber, a.Name, d.Reason)
		entries = append(entries, e)
	}

	return entries
}

// RevaluationEntries проводки переоцінки:
// дооцінка — Дт <10x> Кт 411, уцінка — Дт 975 Кт <10x>,
// на абсолютну величину зміни залишкової вартості.
func RevaluationEntries(a *entity.Asset, g *entity.AssetGroup, rv *entity.AssetRevaluation) []entity.AccountEntry {
	amount := rv.RevaluationAmount.Abs()

	var e entity.AccountEntry
	switch rv.RevaluationType {
	case entity.RevaluationUpward:
		e = newEntry(entity.EntryTypeRevaluation, rv.Date, g.AccountNumber, AccountRevaluationCapital, a)
		e.Description = fmt.Sprintf("Дооцінка ОЗ %s «%s». Справедлива вартість: %s грн.",
			a.InventoryNumber, a.Name, rv.FairValue)
	case entity.RevaluationDownward:
		e = newEntry(entity.EntryTypeRevaluation, rv.Date, AccountWritedown, g.AccountNumber, a)
		e.Description = fmt.Sprintf("Уцінка ОЗ %s «%s». Справедлива вартість: %s грн.",
			a.InventoryNumber, a.Name, rv.FairValue)
	default:
		return nil
	}
	e.Amount = amount
	e.DocumentNumber = rv.DocumentNumber
	return []entity.AccountEntry{e}
}

// ImprovementEntries проводки поліпшення або ремонту:
// капіталізація — Дт <10x> Кт 152; витрати періоду — Дт <рахунок витрат> Кт 631.
func ImprovementEntries(a *entity.Asset, g *entity.AssetGroup, imp *entity.AssetImprovement) []entity.AccountEntry {
	typeLabel := label(improvementTypeLabels, imp.ImprovementType)

	var e entity.AccountEntry
	if imp.IncreasesValue {
		e = newEntry(entity.EntryTypeImprovement, imp.Date, g.AccountNumber, AccountCapitalInvestments, a)
		e.Description = fmt.Sprintf("Поліпшення ОЗ %s «%s». %s: %s.",
			a.InventoryNumber, a.Name, typeLabel, imp.Description)
	} else {
		expense := imp.ExpenseAccount
		if expense == "" {
			expense = DefaultRepairExpenseAccount
		}
		e = newEntry(entity.EntryTypeImprovement, imp.Date, expense, AccountSuppliers, a)
		e.Description = fmt.Sprintf("Ремонт ОЗ %s «%s». %s: %s.",
			a.InventoryNumber, a.Name, typeLabel, imp.Description)
	}
	e.Amount = imp.Amount
	e.DocumentNumber = imp.DocumentNumber
	return []entity.AccountEntry{e}
}

// TransferEntries довідкова проводка переміщення: Дт і Кт — той самий рахунок
// групи, вартість ОЗ не змінюється.
func TransferEntries(a *entity.Asset, g *entity.AssetGroup, t *entity.AssetTransfer, item *entity.AssetTransferItem, fromName, toName string) []entity.AccountEntry {
	if fromName == "" {
		fromName = "—"
	}
	if toName == "" {
		toName = "—"
	}

	e := newEntry(entity.EntryTypeTransfer, t.DocumentDate, g.AccountNumber, g.AccountNumber, a)
	e.Amount = item.BookValue
	e.DocumentNumber = t.DocumentNumber
	e.Description = fmt.Sprintf("Переміщення ОЗ %s «%s» з «%s» до «%s».",
		a.InventoryNumber, a.Name, fromName, toName)
	return []entity.AccountEntry{e}
}
