package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oz-oblik/assets-backend/internal/application/depreciation"
	"github.com/oz-oblik/assets-backend/internal/application/dto"
)

// DepreciationHandler HTTP-обробники нарахування амортизації.
type DepreciationHandler struct {
	uc *depreciation.AccrualUseCase
}

// NewDepreciationHandler конструює обробник.
func NewDepreciationHandler(uc *depreciation.AccrualUseCase) *DepreciationHandler {
	return &DepreciationHandler{uc: uc}
}

// AccruePeriod godoc
// @Summary      Масове нарахування амортизації за період
// @Description  Обходить усі об'єкти в експлуатації; кожен нараховується у
// @Description  власній транзакції, помилки окремих об'єктів не зупиняють батч.
// @Tags         depreciation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AccruePeriodRequest  true  "Період нарахування"
// @Success      200   {object}  dto.AccruePeriodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/depreciation/accrue [post]
func (h *DepreciationHandler) AccruePeriod(c *fiber.Ctx) error {
	var in dto.AccruePeriodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.AccruePeriod(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AccrueAsset godoc
// @Summary      Нарахувати амортизацію за один об'єкт
// @Tags         depreciation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID об'єкта"
// @Param        body  body  dto.AccrueAssetRequest  true  "Період нарахування"
// @Success      201   {object}  dto.DepreciationRecordResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/depreciation [post]
func (h *DepreciationHandler) AccrueAsset(c *fiber.Ctx) error {
	var in dto.AccrueAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.AccrueAsset(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Calculate godoc
// @Summary      Попередній розрахунок місячної амортизації без збереження
// @Tags         depreciation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateRequest  true  "Параметри розрахунку"
// @Success      200   {object}  dto.CalculateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/depreciation/calculate [post]
func (h *DepreciationHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.Calculate(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByAsset godoc
// @Summary      Історія нарахувань об'єкта
// @Tags         depreciation
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID об'єкта"
// @Param        limit   query  int     false  "Ліміт"  default(60)
// @Param        offset  query  int     false  "Зсув"   default(0)
// @Success      200  {array}  dto.DepreciationRecordResponse
// @Router       /api/assets/{id}/depreciation [get]
func (h *DepreciationHandler) ListByAsset(c *fiber.Ctx) error {
	out, err := h.uc.ListByAsset(c.Context(), c.Params("id"), c.QueryInt("limit", 60), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Підсумки нарахувань за періодами
// @Tags         depreciation
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Кількість періодів"  default(24)
// @Success      200  {array}  dto.PeriodTotalResponse
// @Router       /api/depreciation/summary [get]
func (h *DepreciationHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.PeriodTotals(c.Context(), c.QueryInt("limit", 24))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
