package repository

import (
	"context"
	"time"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

// AuditFilter критерії вибірки журналу аудиту.
type AuditFilter struct {
	UserID     string
	Action     string
	EntityType string
	EntityID   string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// AuditLogRepository порт персистентності для журналу аудиту (append-only).
type AuditLogRepository interface {
	Create(ctx context.Context, l *entity.AuditLog) error
	List(ctx context.Context, filter AuditFilter) ([]*entity.AuditLog, int, error)
}
