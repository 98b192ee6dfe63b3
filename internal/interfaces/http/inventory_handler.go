package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oz-oblik/assets-backend/internal/application/dto"
	"github.com/oz-oblik/assets-backend/internal/application/inventorycount"
)

// InventoryHandler HTTP-обробники інвентаризацій.
type InventoryHandler struct {
	uc *inventorycount.InventoryUseCase
}

// NewInventoryHandler конструює обробник.
func NewInventoryHandler(uc *inventorycount.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Створити інвентаризацію (чернетку)
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Дані інвентаризації"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventories [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Populate godoc
// @Summary      Наповнити опис знімком активної картотеки
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID інвентаризації"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/populate [post]
func (h *InventoryHandler) Populate(c *fiber.Ctx) error {
	out, err := h.uc.Populate(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Зафіксувати результат огляду об'єкта
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id        path  string  true  "ID інвентаризації"
// @Param        asset_id  path  string  true  "ID об'єкта"
// @Param        body      body  dto.UpdateInventoryItemRequest  true  "Результат огляду"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/items/{asset_id} [put]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.UpdateItem(c.Context(), GetUserID(c), c.Params("id"), c.Params("asset_id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Завершити інвентаризацію
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID інвентаризації"
// @Success      200  {object}  dto.InventoryResultResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/complete [post]
func (h *InventoryHandler) Complete(c *fiber.Ctx) error {
	out, err := h.uc.Complete(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Інвентаризація з описом
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID інвентаризації"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Інвентаризації
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Статус"
// @Param        limit   query  int     false  "Ліміт"  default(20)
// @Param        offset  query  int     false  "Зсув"   default(0)
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventories [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("status"), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Result godoc
// @Summary      Підсумок інвентаризації
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID інвентаризації"
// @Success      200  {object}  dto.InventoryResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/result [get]
func (h *InventoryHandler) Result(c *fiber.Ctx) error {
	out, err := h.uc.Result(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
