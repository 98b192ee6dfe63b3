package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/oz-oblik/assets-backend/internal/application/dto"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

// NotificationHandler сповіщення користувача та журнал аудиту.
type NotificationHandler struct {
	notifications repository.NotificationRepository
	audit         repository.AuditLogRepository
}

// NewNotificationHandler конструює обробник.
func NewNotificationHandler(notifications repository.NotificationRepository, audit repository.AuditLogRepository) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, audit: audit}
}

// List godoc
// @Summary      Сповіщення поточного користувача
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        unread  query  bool  false  "Лише непрочитані"
// @Param        limit   query  int   false  "Ліміт"  default(20)
// @Param        offset  query  int   false  "Зсув"   default(0)
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	ns, err := h.notifications.ListByRecipient(c.Context(), GetUserID(c), c.QueryBool("unread", false), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.NotificationResponse, 0, len(ns))
	for _, n := range ns {
		items = append(items, dto.FromNotification(n))
	}
	return c.JSON(items)
}

// UnreadCount godoc
// @Summary      Кількість непрочитаних сповіщень
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	n, err := h.notifications.CountUnread(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": n})
}

// MarkRead godoc
// @Summary      Позначити сповіщення прочитаним
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID сповіщення"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.notifications.MarkRead(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "прочитано"})
}

// MarkAllRead godoc
// @Summary      Позначити всі сповіщення прочитаними
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.notifications.MarkAllRead(c.Context(), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "усі сповіщення прочитано"})
}

// AuditLog godoc
// @Summary      Журнал аудиту (лише адміністратор)
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        user_id      query  string  false  "Користувач"
// @Param        action       query  string  false  "Дія"
// @Param        entity_type  query  string  false  "Тип сутності"
// @Param        entity_id    query  string  false  "ID сутності"
// @Param        from         query  string  false  "Дата з (YYYY-MM-DD)"
// @Param        to           query  string  false  "Дата по (YYYY-MM-DD)"
// @Param        limit        query  int     false  "Ліміт"  default(50)
// @Param        offset       query  int     false  "Зсув"   default(0)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/audit [get]
func (h *NotificationHandler) AuditLog(c *fiber.Ctx) error {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "очікується дата у форматі YYYY-MM-DD"})
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "очікується дата у форматі YYYY-MM-DD"})
		}
		to = &t
	}

	filter := repository.AuditFilter{
		UserID:     c.Query("user_id"),
		Action:     c.Query("action"),
		EntityType: c.Query("entity_type"),
		EntityID:   c.Query("entity_id"),
		From:       from,
		To:         to,
		Limit:      c.QueryInt("limit", 50),
		Offset:     c.QueryInt("offset", 0),
	}
	logs, total, err := h.audit.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, dto.FromAuditLog(l))
	}
	return c.JSON(fiber.Map{
		"items": items,
		"page":  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset, Total: total},
	})
}
