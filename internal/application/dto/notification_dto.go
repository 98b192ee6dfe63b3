package dto

import (
	"encoding/json"
	"time"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

// NotificationResponse подання сповіщення.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	AssetID   string    `json:"asset_id,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// FromNotification мапінг сутності у подання.
func FromNotification(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		AssetID:   n.AssetID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// AuditLogResponse подання запису журналу аудиту.
type AuditLogResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	ObjectRepr string          `json:"object_repr,omitempty"`
	Changes    json.RawMessage `json:"changes,omitempty"`
	IPAddress  string          `json:"ip_address,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// FromAuditLog мапінг сутності у подання.
func FromAuditLog(l *entity.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:         l.ID,
		UserID:     l.UserID,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		ObjectRepr: l.ObjectRepr,
		Changes:    l.Changes,
		IPAddress:  l.IPAddress,
		Timestamp:  l.Timestamp,
	}
}
