package postgres

import (
	"context"
	"fmt"

	"github.com/oz-oblik/assets-backend/internal/domain"
	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo реалізація порту NotificationRepository поверх PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository конструює адаптер.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

const notificationInsert = `
	INSERT INTO notifications (id, recipient_id, type, title, message, asset_id, is_read, created_at)
	VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7, $8)`

// Create зберігає одне сповіщення.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	_, err := r.q.Exec(ctx, notificationInsert,
		n.ID, n.RecipientID, n.Type, n.Title, n.Message, n.AssetID, n.IsRead, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// CreateBatch зберігає пачку сповіщень (розсилка за ролями).
func (r *NotificationRepo) CreateBatch(ctx context.Context, ns []entity.Notification) error {
	for i := range ns {
		if err := r.Create(ctx, &ns[i]); err != nil {
			return err
		}
	}
	return nil
}

// ListByRecipient сповіщення користувача, нові першими.
func (r *NotificationRepo) ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT id, recipient_id, type, title, message, COALESCE(asset_id::text, ''), is_read, created_at
		FROM notifications WHERE recipient_id = $1`
	if unreadOnly {
		query += ` AND NOT is_read`
	}
	if limit <= 0 {
		limit = 50
	}
	query += ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.q.Query(ctx, query, recipientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Type, &n.Title, &n.Message, &n.AssetID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// CountUnread кількість непрочитаних сповіщень користувача.
func (r *NotificationRepo) CountUnread(ctx context.Context, recipientID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM notifications WHERE recipient_id = $1 AND NOT is_read`, recipientID).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead позначає сповіщення прочитаним. Одержувач у предикаті — чуже
// сповіщення позначити не можна.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, recipientID string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE id = $1 AND recipient_id = $2`, id, recipientID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkAllRead позначає всі сповіщення користувача прочитаними.
func (r *NotificationRepo) MarkAllRead(ctx context.Context, recipientID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE recipient_id = $1 AND NOT is_read`, recipientID)
	if err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}
