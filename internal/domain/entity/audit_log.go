package entity

import (
	"encoding/json"
	"time"
)

// Дії, що фіксуються в журналі аудиту.
const (
	AuditActionCreate       = "create"
	AuditActionUpdate       = "update"
	AuditActionDelete       = "delete"
	AuditActionReceipt      = "receipt"
	AuditActionDisposal     = "disposal"
	AuditActionDepreciation = "depreciation"
	AuditActionRevaluation  = "revaluation"
	AuditActionImprovement  = "improvement"
	AuditActionInventory    = "inventory"
)

// AuditLog запис журналу аудиту — append-only.
type AuditLog struct {
	ID         string
	UserID     string
	Action     string
	EntityType string // назва сутності: asset, asset_disposal, depreciation_record...
	EntityID   string
	ObjectRepr string
	Changes    json.RawMessage // довільний diff ключ -> значення
	IPAddress  string
	Timestamp  time.Time
}
