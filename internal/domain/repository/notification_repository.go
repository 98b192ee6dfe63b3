package repository

import (
	"context"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

// NotificationRepository порт персистентності для сповіщень.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	CreateBatch(ctx context.Context, ns []entity.Notification) error
	ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
	MarkRead(ctx context.Context, id, recipientID string) error
	MarkAllRead(ctx context.Context, recipientID string) error
}
