// Package pdf будує інвентарну картку обліку основних засобів
// (за мотивами типової форми № ОЗ-6) у форматі PDF.
//
// Розкладка сторінки A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Організація │ "Інвентарна картка" + інв. номер      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ОБ'ЄКТ: назва, група, заводський/паспортний номери          │
//	│  ВАРТІСТЬ: первісна / ліквідаційна / залишкова / знос        │
//	│  АМОРТИЗАЦІЯ: метод, строк, дата початку                     │
//	│  ВІДПОВІДАЛЬНІСТЬ: МВО, місцезнаходження                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ТАБЛИЦЯ: останні нарахування амортизації                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// AssetCardData дані для побудови інвентарної картки. Довідкові поля
// необов'язкові: nil просто опускає відповідний рядок.
type AssetCardData struct {
	Asset        *entity.Asset
	Group        *entity.AssetGroup
	Person       *entity.ResponsiblePerson
	Location     *entity.Location
	Organization *entity.Organization
	Records      []*entity.DepreciationRecord
}

// AssetCard генерує PDF і повертає його байти.
func AssetCard(data AssetCardData) ([]byte, error) {
	orgName := ""
	if data.Organization != nil {
		orgName = data.Organization.Name
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Інвентарна картка обліку основних засобів", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Asset, orgName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(objectRows(data)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(costRow(data.Asset))
	m.AddRows(depreciationRow(data.Asset))
	m.AddRows(responsibilityRow(data))

	if len(data.Records) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(recordsHeaderRow())
		m.AddRows(recordRows(data.Records)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(qrRow(data.Asset))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: генерація документа: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(a *entity.Asset, orgName string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(orgName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
			}),
			text.New("Інвентарна картка обліку основних засобів", props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Інв. №", props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(a.InventoryNumber, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right, Top: 6,
			}),
		),
	)
}

func objectRows(data AssetCardData) []core.Row {
	a := data.Asset
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("ОБ'ЄКТ", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(a.Name, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)),
	}

	groupLine := "—"
	if data.Group != nil {
		groupLine = fmt.Sprintf("%s %s (рахунок %s)", data.Group.Code, data.Group.Name, data.Group.AccountNumber)
	}
	details := fmt.Sprintf("Група: %s   |   Заводський №: %s   |   Паспорт №: %s",
		groupLine, nonEmpty(a.FactoryNumber, "—"), nonEmpty(a.PassportNumber, "—"))
	rows = append(rows, row.New(6).Add(col.New(12).Add(
		text.New(details, props.Text{Size: 8, Color: colorGray, Top: 1}),
	)))

	year := "—"
	if a.ManufactureYear != nil {
		year = fmt.Sprintf("%d", *a.ManufactureYear)
	}
	rows = append(rows, row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Рік випуску: %s   |   Введено в експлуатацію: %s   |   Кількість: %d %s",
			year, a.CommissioningDate.Format("02.01.2006"), a.Quantity, nonEmpty(a.UnitOfMeasure, "шт")),
			props.Text{Size: 8, Color: colorGray, Top: 1}),
	)))
	return rows
}

func costRow(a *entity.Asset) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value+" грн", props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
		)
	}
	return row.New(12).Add(
		cell("Первісна вартість", a.InitialCost.StringFixed(2)),
		cell("Ліквідаційна вартість", a.ResidualValue.StringFixed(2)),
		cell("Накопичений знос", a.AccumulatedDepreciation.StringFixed(2)),
		cell("Залишкова вартість", a.CurrentBookValue.StringFixed(2)),
	)
}

func depreciationRow(a *entity.Asset) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("АМОРТИЗАЦІЯ", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(fmt.Sprintf("Метод: %s   |   Строк корисного використання: %d міс.   |   Початок нарахування: %s",
			methodLabel(a.DepreciationMethod), a.UsefulLifeMonths, a.DepreciationStartDate.Format("01.2006")),
			props.Text{Size: 8, Top: 6}),
	))
}

func responsibilityRow(data AssetCardData) core.Row {
	person := "—"
	if data.Person != nil {
		person = data.Person.FullName
	}
	location := "—"
	if data.Location != nil {
		location = data.Location.Name
	}
	return row.New(10).Add(col.New(12).Add(
		text.New("ВІДПОВІДАЛЬНІСТЬ", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(fmt.Sprintf("МВО: %s   |   Місцезнаходження: %s", person, location),
			props.Text{Size: 8, Top: 6}),
	))
}

func recordsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Період", 2, align.Left),
		h("Метод", 4, align.Left),
		h("Сума, грн", 2, align.Right),
		h("Залишкова до, грн", 2, align.Right),
		h("Залишкова після, грн", 2, align.Right),
	)
}

func recordRows(records []*entity.DepreciationRecord) []core.Row {
	result := make([]core.Row, 0, len(records))
	for _, r := range records {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%02d.%d", r.PeriodMonth, r.PeriodYear),
				props.Text{Size: 8, Top: 1},
			)),
			col.New(4).Add(text.New(
				methodLabel(r.Method),
				props.Text{Size: 8, Top: 1},
			)),
			col.New(2).Add(text.New(
				r.Amount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(2).Add(text.New(
				r.BookValueBefore.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(2).Add(text.New(
				r.BookValueAfter.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

// qrRow етикетка для наклейки на об'єкт: QR кодує інвентарний номер та ID.
func qrRow(a *entity.Asset) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(
			fmt.Sprintf("asset:%s;inv:%s", a.ID, a.InventoryNumber),
			props.Rect{Percent: 90, Center: true},
		)),
		col.New(9).Add(
			text.New("Етикетка об'єкта", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 4, Left: 2,
			}),
			text.New("Скануйте QR-код під час інвентаризації для швидкого пошуку картки.", props.Text{
				Size: 8, Top: 10, Left: 2, Color: colorGray,
			}),
		),
	)
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

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
