package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oz-oblik/assets-backend/internal/application/dto"
	"github.com/oz-oblik/assets-backend/internal/application/references"
)

// ReferenceHandler HTTP-обробники довідників: групи ОЗ, місцезнаходження,
// посади, матеріально відповідальні особи, організації.
type ReferenceHandler struct {
	uc *references.UseCase
}

// NewReferenceHandler конструює обробник.
func NewReferenceHandler(uc *references.UseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// CreateGroup godoc
// @Summary      Створити групу ОЗ
// @Tags         references
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssetGroupRequest  true  "Група"
// @Success      201   {object}  dto.AssetGroupResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/groups [post]
func (h *ReferenceHandler) CreateGroup(c *fiber.Ctx) error {
	var in dto.AssetGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.CreateGroup(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateGroup godoc
// @Summary      Оновити групу ОЗ
// @Tags         references
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID групи"
// @Param        body  body  dto.AssetGroupRequest  true  "Група"
// @Success      200   {object}  dto.AssetGroupResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [put]
func (h *ReferenceHandler) UpdateGroup(c *fiber.Ctx) error {
	var in dto.AssetGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.UpdateGroup(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListGroups godoc
// @Summary      Групи ОЗ
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AssetGroupResponse
// @Router       /api/groups [get]
func (h *ReferenceHandler) ListGroups(c *fiber.Ctx) error {
	out, err := h.uc.ListGroups(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteGroup godoc
// @Summary      Видалити групу ОЗ
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID групи"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [delete]
func (h *ReferenceHandler) DeleteGroup(c *fiber.Ctx) error {
	if err := h.uc.DeleteGroup(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "групу видалено"})
}

// CreateLocation godoc
// @Summary      Створити місцезнаходження
// @Tags         references
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NamedReferenceRequest  true  "Місцезнаходження"
// @Success      201   {object}  dto.NamedReferenceResponse
// @Router       /api/locations [post]
func (h *ReferenceHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.NamedReferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.CreateLocation(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateLocation godoc
// @Summary      Оновити місцезнаходження
// @Tags         references
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID місцезнаходження"
// @Param        body  body  dto.NamedReferenceRequest  true  "Місцезнаходження"
// @Success      200   {object}  dto.NamedReferenceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [put]
func (h *ReferenceHandler) UpdateLocation(c *fiber.Ctx) error {
	var in dto.NamedReferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.UpdateLocation(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListLocations godoc
// @Summary      Місцезнаходження
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Лише активні"  default(true)
// @Success      200  {array}  dto.NamedReferenceResponse
// @Router       /api/locations [get]
func (h *ReferenceHandler) ListLocations(c *fiber.Ctx) error {
	out, err := h.uc.ListLocations(c.Context(), c.QueryBool("active", true))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreatePosition godoc
// @Summary      Створити посаду
// @Tags         references
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NamedReferenceRequest  true  "Посада"
// @Success      201   {object}  dto.NamedReferenceResponse
// @Router       /api/positions [post]
func (h *ReferenceHandler) CreatePosition(c *fiber.Ctx) error {
	var in dto.NamedReferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.CreatePosition(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPositions godoc
// @Summary      Посади
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Лише активні"  default(true)
// @Success      200  {array}  dto.NamedReferenceResponse
// @Router       /api/positions [get]
func (h *ReferenceHandler) ListPositions(c *fiber.Ctx) error {
	out, err := h.uc.ListPositions(c.Context(), c.QueryBool("active", true))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreatePerson godoc
// @Summary      Створити матеріально відповідальну особу
// @Tags         references
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResponsiblePersonRequest  true  "МВО"
// @Success      201   {object}  dto.ResponsiblePersonResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/persons [post]
func (h *ReferenceHandler) CreatePerson(c *fiber.Ctx) error {
	var in dto.ResponsiblePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.CreatePerson(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdatePerson godoc
// @Summary      Оновити матеріально відповідальну особу
// @Tags         references
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID особи"
// @Param        body  body  dto.ResponsiblePersonRequest  true  "МВО"
// @Success      200   {object}  dto.ResponsiblePersonResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/persons/{id} [put]
func (h *ReferenceHandler) UpdatePerson(c *fiber.Ctx) error {
	var in dto.ResponsiblePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.UpdatePerson(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListPersons godoc
// @Summary      Матеріально відповідальні особи
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Лише активні"  default(true)
// @Success      200  {array}  dto.ResponsiblePersonResponse
// @Router       /api/persons [get]
func (h *ReferenceHandler) ListPersons(c *fiber.Ctx) error {
	out, err := h.uc.ListPersons(c.Context(), c.QueryBool("active", true))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateOrganization godoc
// @Summary      Створити організацію (контрагента або власну)
// @Tags         references
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrganizationRequest  true  "Організація"
// @Success      201   {object}  dto.OrganizationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/organizations [post]
func (h *ReferenceHandler) CreateOrganization(c *fiber.Ctx) error {
	var in dto.OrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	out, err := h.uc.CreateOrganization(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListOrganizations godoc
// @Summary      Організації
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Лише активні"  default(true)
// @Success      200  {array}  dto.OrganizationResponse
// @Router       /api/organizations [get]
func (h *ReferenceHandler) ListOrganizations(c *fiber.Ctx) error {
	out, err := h.uc.ListOrganizations(c.Context(), c.QueryBool("active", true))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetOwnOrganization godoc
// @Summary      Власна організація
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrganizationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/organizations/own [get]
func (h *ReferenceHandler) GetOwnOrganization(c *fiber.Ctx) error {
	out, err := h.uc.GetOwnOrganization(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
