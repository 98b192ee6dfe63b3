package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/oz-oblik/assets-backend/internal/application/dto"
	"github.com/oz-oblik/assets-backend/internal/domain"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
	"github.com/oz-oblik/assets-backend/internal/infrastructure/excel"
	"github.com/oz-oblik/assets-backend/internal/infrastructure/pdf"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler друковані форми: інвентаризаційний опис, відомість
// амортизації (XLSX) та інвентарна картка (PDF).
type ReportHandler struct {
	assets      repository.AssetRepository
	groups      repository.AssetGroupRepository
	persons     repository.ResponsiblePersonRepository
	locations   repository.LocationRepository
	orgs        repository.OrganizationRepository
	inventories repository.InventoryRepository
	records     repository.DepreciationRecordRepository
}

// NewReportHandler конструює обробник.
func NewReportHandler(
	assets repository.AssetRepository,
	groups repository.AssetGroupRepository,
	persons repository.ResponsiblePersonRepository,
	locations repository.LocationRepository,
	orgs repository.OrganizationRepository,
	inventories repository.InventoryRepository,
	records repository.DepreciationRecordRepository,
) *ReportHandler {
	return &ReportHandler{
		assets:      assets,
		groups:      groups,
		persons:     persons,
		locations:   locations,
		orgs:        orgs,
		inventories: inventories,
		records:     records,
	}
}

// ExportInventory godoc
// @Summary      Інвентаризаційний опис у форматі XLSX
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path  string  true  "ID інвентаризації"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/export [get]
func (h *ReportHandler) ExportInventory(c *fiber.Ctx) error {
	inv, err := h.inventories.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if inv == nil {
		return respondError(c, domain.ErrNotFound)
	}
	items, err := h.inventories.ListItems(c.Context(), inv.ID)
	if err != nil {
		return respondError(c, err)
	}

	rows := make([]excel.InventorySheetRow, 0, len(items))
	for _, it := range items {
		asset, err := h.assets.GetByID(c.Context(), it.AssetID)
		if err != nil {
			return respondError(c, err)
		}
		if asset == nil {
			continue
		}
		rows = append(rows, excel.InventorySheetRow{
			InventoryNumber: asset.InventoryNumber,
			Name:            asset.Name,
			UnitOfMeasure:   asset.UnitOfMeasure,
			Quantity:        asset.Quantity,
			BookValue:       it.BookValue,
			IsFound:         it.IsFound,
			Condition:       it.Condition,
			ActualValue:     it.ActualValue,
			Difference:      it.Difference,
			Notes:           it.Notes,
		})
	}

	f, err := excel.InventorySheet(inv, rows)
	if err != nil {
		return respondError(c, err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=inventory_%s.xlsx", inv.Number))
	return c.Send(buf.Bytes())
}

// DepreciationStatement godoc
// @Summary      Відомість нарахування амортизації за період у форматі XLSX
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        year   query  int  true  "Рік"
// @Param        month  query  int  true  "Місяць (1-12)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/depreciation/statement [get]
func (h *ReportHandler) DepreciationStatement(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	if year < 2000 || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "очікуються параметри year та month (1-12)"})
	}

	records, err := h.records.ListByPeriod(c.Context(), year, month)
	if err != nil {
		return respondError(c, err)
	}

	rows := make([]excel.StatementRow, 0, len(records))
	for _, r := range records {
		asset, err := h.assets.GetByID(c.Context(), r.AssetID)
		if err != nil {
			return respondError(c, err)
		}
		row := excel.StatementRow{
			Method:          r.Method,
			BookValueBefore: r.BookValueBefore,
			Amount:          r.Amount,
			BookValueAfter:  r.BookValueAfter,
		}
		if asset != nil {
			row.InventoryNumber = asset.InventoryNumber
			row.AssetName = asset.Name
		}
		rows = append(rows, row)
	}

	f, err := excel.DepreciationStatement(year, month, rows)
	if err != nil {
		return respondError(c, err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=depreciation_%d_%02d.xlsx", year, month))
	return c.Send(buf.Bytes())
}

// AssetCard godoc
// @Summary      Інвентарна картка обліку ОЗ у форматі PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID об'єкта"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/card [get]
func (h *ReportHandler) AssetCard(c *fiber.Ctx) error {
	asset, err := h.assets.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if asset == nil {
		return respondError(c, domain.ErrNotFound)
	}

	data := pdf.AssetCardData{Asset: asset}
	if data.Group, err = h.groups.GetByID(c.Context(), asset.GroupID); err != nil {
		return respondError(c, err)
	}
	if asset.ResponsiblePersonID != "" {
		if data.Person, err = h.persons.GetByID(c.Context(), asset.ResponsiblePersonID); err != nil {
			return respondError(c, err)
		}
	}
	if asset.LocationID != "" {
		if data.Location, err = h.locations.GetByID(c.Context(), asset.LocationID); err != nil {
			return respondError(c, err)
		}
	}
	if data.Organization, err = h.orgs.GetOwn(c.Context()); err != nil {
		return respondError(c, err)
	}
	if data.Records, err = h.records.ListByAsset(c.Context(), asset.ID, 36, 0); err != nil {
		return respondError(c, err)
	}

	out, err := pdf.AssetCard(data)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=card_%s.pdf", asset.InventoryNumber))
	return c.Send(out)
}
