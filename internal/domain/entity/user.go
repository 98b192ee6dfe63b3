package entity

import "time"

// Ролі користувачів.
const (
	RoleAdmin            = "admin"
	RoleAccountant       = "accountant"        // бухгалтер
	RoleInventoryManager = "inventory_manager" // завідувач інвентаризації
	RoleViewer           = "viewer"
)

// User користувач системи.
type User struct {
	ID           string
	Email        string // унікальний
	PasswordHash string
	FullName     string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
