package repository

import (
	"context"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

// UserRepository порт персистентності для User (DIP).
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	// ListByRoles одержувачі сповіщень за ролями.
	ListByRoles(ctx context.Context, roles ...string) ([]*entity.User, error)
}
