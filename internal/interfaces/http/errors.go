package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/oz-oblik/assets-backend/internal/application/dto"
	"github.com/oz-oblik/assets-backend/internal/domain"
)

// respondError мапить доменні помилки на HTTP-статуси. Невідомі помилки
// стають 500 без деталей внутрішнього стану.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "невірні облікові дані"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "недостатньо прав"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "email вже використовується"})
	case errors.Is(err, domain.ErrPeriodAlreadyAccrued):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PERIOD_ACCRUED", Message: "амортизацію за цей період уже нараховано"})
	case errors.Is(err, domain.ErrReceiptExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RECEIPT_EXISTS", Message: "надходження для об'єкта вже оформлено"})
	case errors.Is(err, domain.ErrDisposalExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DISPOSAL_EXISTS", Message: "вибуття для об'єкта вже оформлено"})
	case errors.Is(err, domain.ErrAssetDisposed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ASSET_DISPOSED", Message: "операції зі списаним об'єктом неможливі"})
	case errors.Is(err, domain.ErrInventoryNotDraft):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVENTORY_NOT_DRAFT", Message: "інвентаризація вже наповнена"})
	case errors.Is(err, domain.ErrBelowResidualValue):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "BELOW_RESIDUAL", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "внутрішня помилка сервера"})
}
