package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oz-oblik/assets-backend/internal/application/assets"
	"github.com/oz-oblik/assets-backend/internal/application/dto"
	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

// AssetHandler HTTP-обробники картотеки основних засобів (захищено).
type AssetHandler struct {
	uc *assets.AssetUseCase
}

// NewAssetHandler конструює обробник.
func NewAssetHandler(uc *assets.AssetUseCase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

// Create godoc
// @Summary      Створити основний засіб
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "Дані об'єкта"
// @Success      201   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Отримати основний засіб
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID об'єкта"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Картотека основних засобів
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "Статус"
// @Param        group_id     query  string  false  "Група"
// @Param        location_id  query  string  false  "Місцезнаходження"
// @Param        method       query  string  false  "Метод амортизації"
// @Param        search       query  string  false  "Пошук за назвою чи інвентарним номером"
// @Param        limit        query  int     false  "Ліміт"   default(20)
// @Param        offset       query  int     false  "Зсув"    default(0)
// @Success      200  {object}  dto.AssetListResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	filter := repository.AssetFilter{
		Status:              c.Query("status"),
		GroupID:             c.Query("group_id"),
		LocationID:          c.Query("location_id"),
		ResponsiblePersonID: c.Query("responsible_person_id"),
		Method:              entity.DepreciationMethod(c.Query("method")),
		Search:              c.Query("search"),
		Limit:               limit,
		Offset:              offset,
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Оновити основний засіб
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID об'єкта"
// @Param        body  body  dto.UpdateAssetRequest  true  "Поля для оновлення"
// @Success      200   {object}  dto.AssetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Видалити основний засіб без історії нарахувань
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID об'єкта"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "об'єкт видалено"})
}

// Statistics godoc
// @Summary      Зведена статистика парку ОЗ
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatisticsResponse
// @Router       /api/assets/statistics [get]
func (h *AssetHandler) Statistics(c *fiber.Ctx) error {
	out, err := h.uc.Statistics(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
