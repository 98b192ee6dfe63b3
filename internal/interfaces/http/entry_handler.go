package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/oz-oblik/assets-backend/internal/application/dto"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

// EntryHandler HTTP-обробники журналу бухгалтерських проводок.
// Журнал read-only: проводки породжуються лише операціями з ОЗ.
type EntryHandler struct {
	entryRepo repository.AccountEntryRepository
}

// NewEntryHandler конструює обробник.
func NewEntryHandler(entryRepo repository.AccountEntryRepository) *EntryHandler {
	return &EntryHandler{entryRepo: entryRepo}
}

func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List godoc
// @Summary      Журнал проводок
// @Tags         entries
// @Security     Bearer
// @Produce      json
// @Param        entry_type  query  string  false  "Тип проводки"
// @Param        asset_id    query  string  false  "ID об'єкта"
// @Param        from        query  string  false  "Дата з (YYYY-MM-DD)"
// @Param        to          query  string  false  "Дата по (YYYY-MM-DD)"
// @Param        limit       query  int     false  "Ліміт"  default(50)
// @Param        offset      query  int     false  "Зсув"   default(0)
// @Success      200  {object}  dto.EntryListResponse
// @Router       /api/entries [get]
func (h *EntryHandler) List(c *fiber.Ctx) error {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "очікується дата у форматі YYYY-MM-DD"})
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "очікується дата у форматі YYYY-MM-DD"})
	}

	filter := repository.EntryFilter{
		EntryType: c.Query("entry_type"),
		AssetID:   c.Query("asset_id"),
		DateFrom:  from,
		DateTo:    to,
		Limit:     c.QueryInt("limit", 50),
		Offset:    c.QueryInt("offset", 0),
	}
	entries, total, err := h.entryRepo.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}

	items := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.FromEntry(e))
	}
	return c.JSON(dto.EntryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset, Total: total},
	})
}

// ListByAsset godoc
// @Summary      Проводки одного об'єкта
// @Tags         entries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID об'єкта"
// @Success      200  {array}  dto.EntryResponse
// @Router       /api/assets/{id}/entries [get]
func (h *EntryHandler) ListByAsset(c *fiber.Ctx) error {
	entries, err := h.entryRepo.ListByAsset(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.FromEntry(e))
	}
	return c.JSON(items)
}

// Journal godoc
// @Summary      Обороти за рахунками за період
// @Tags         entries
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Дата з (YYYY-MM-DD)"
// @Param        to    query  string  false  "Дата по (YYYY-MM-DD)"
// @Success      200  {object}  dto.JournalResponse
// @Router       /api/entries/journal [get]
func (h *EntryHandler) Journal(c *fiber.Ctx) error {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "очікується дата у форматі YYYY-MM-DD"})
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "очікується дата у форматі YYYY-MM-DD"})
	}

	turnovers, err := h.entryRepo.Turnovers(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	resp := dto.JournalResponse{From: from, To: to, Turnovers: make([]dto.TurnoverResponse, 0, len(turnovers))}
	for _, t := range turnovers {
		resp.Turnovers = append(resp.Turnovers, dto.FromTurnover(t))
	}
	return c.JSON(resp)
}
