package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oz-oblik/assets-backend/internal/application/assets"
	"github.com/oz-oblik/assets-backend/internal/application/dto"
)

// LifecycleHandler HTTP-обробники операцій життєвого циклу ОЗ:
// надходження, вибуття, переоцінка, поліпшення, переміщення.
type LifecycleHandler struct {
	uc *assets.LifecycleUseCase
}

// NewLifecycleHandler конструює обробник.
func NewLifecycleHandler(uc *assets.LifecycleUseCase) *LifecycleHandler {
	return &LifecycleHandler{uc: uc}
}

// Receipt godoc
// @Summary      Оформити надходження ОЗ
// @Tags         lifecycle
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID об'єкта"
// @Param        body  body  dto.ReceiptRequest  true  "Документ надходження"
// @Success      201   {object}  dto.ReceiptResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/receipt [post]
func (h *LifecycleHandler) Receipt(c *fiber.Ctx) error {
	var in dto.ReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.Receipt(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetReceipt godoc
// @Summary      Надходження об'єкта
// @Tags         lifecycle
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID об'єкта"
// @Success      200  {object}  dto.ReceiptResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/receipt [get]
func (h *LifecycleHandler) GetReceipt(c *fiber.Ctx) error {
	out, err := h.uc.GetReceipt(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Disposal godoc
// @Summary      Оформити вибуття ОЗ
// @Tags         lifecycle
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID об'єкта"
// @Param        body  body  dto.DisposalRequest  true  "Документ вибуття"
// @Success      201   {object}  dto.DisposalResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/disposal [post]
func (h *LifecycleHandler) Disposal(c *fiber.Ctx) error {
	var in dto.DisposalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.Disposal(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetDisposal godoc
// @Summary      Вибуття об'єкта
// @Tags         lifecycle
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID об'єкта"
// @Success      200  {object}  dto.DisposalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/disposal [get]
func (h *LifecycleHandler) GetDisposal(c *fiber.Ctx) error {
	out, err := h.uc.GetDisposal(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Revaluate godoc
// @Summary      Переоцінити ОЗ за справедливою вартістю
// @Tags         lifecycle
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID об'єкта"
// @Param        body  body  dto.RevaluationRequest  true  "Переоцінка"
// @Success      201   {object}  dto.RevaluationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/revaluations [post]
func (h *LifecycleHandler) Revaluate(c *fiber.Ctx) error {
	var in dto.RevaluationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.Revaluate(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRevaluations godoc
// @Summary      Історія переоцінок об'єкта
// @Tags         lifecycle
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID об'єкта"
// @Success      200  {array}  dto.RevaluationResponse
// @Router       /api/assets/{id}/revaluations [get]
func (h *LifecycleHandler) ListRevaluations(c *fiber.Ctx) error {
	out, err := h.uc.ListRevaluations(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Improve godoc
// @Summary      Оформити поліпшення або ремонт ОЗ
// @Tags         lifecycle
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID об'єкта"
// @Param        body  body  dto.ImprovementRequest  true  "Поліпшення"
// @Success      201   {object}  dto.ImprovementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/improvements [post]
func (h *LifecycleHandler) Improve(c *fiber.Ctx) error {
	var in dto.ImprovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.Improve(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListImprovements godoc
// @Summary      Історія поліпшень об'єкта
// @Tags         lifecycle
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID об'єкта"
// @Success      200  {array}  dto.ImprovementResponse
// @Router       /api/assets/{id}/improvements [get]
func (h *LifecycleHandler) ListImprovements(c *fiber.Ctx) error {
	out, err := h.uc.ListImprovements(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transfer godoc
// @Summary      Внутрішнє переміщення ОЗ
// @Tags         lifecycle
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "Документ переміщення"
// @Success      201   {object}  dto.TransferResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *LifecycleHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.Transfer(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTransfers godoc
// @Summary      Документи переміщення
// @Tags         lifecycle
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Ліміт"  default(20)
// @Param        offset  query  int  false  "Зсув"   default(0)
// @Success      200  {array}  dto.TransferResponse
// @Router       /api/transfers [get]
func (h *LifecycleHandler) ListTransfers(c *fiber.Ctx) error {
	out, err := h.uc.ListTransfers(c.Context(), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
