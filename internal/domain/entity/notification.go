package entity

import "time"

// Типи сповіщень.
const (
	NotificationDepreciationDone = "depreciation_done" // амортизація нарахована
	NotificationDepreciationDue  = "depreciation_due"  // час нараховувати амортизацію
	NotificationFullDepreciation = "full_depreciation" // ОЗ повністю амортизовано
	NotificationInventoryDue     = "inventory_due"     // інвентаризація завершена / планова
	NotificationShortageFound    = "shortage_found"    // виявлено нестачу
	NotificationHighWear         = "high_wear"         // знос понад 90%
)

// Notification сповіщення користувачу.
type Notification struct {
	ID          string
	RecipientID string
	Type        string
	Title       string
	Message     string
	AssetID     string // може бути порожнім
	IsRead      bool
	CreatedAt   time.Time
}
