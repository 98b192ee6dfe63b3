package repository

import (
	"context"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
)

// LocationRepository порт персистентності для довідника місцезнаходжень.
type LocationRepository interface {
	Create(ctx context.Context, l *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	Update(ctx context.Context, l *entity.Location) error
	List(ctx context.Context, activeOnly bool) ([]*entity.Location, error)
	Delete(ctx context.Context, id string) error
}

// PositionRepository порт персистентності для довідника посад.
type PositionRepository interface {
	Create(ctx context.Context, p *entity.Position) error
	GetByID(ctx context.Context, id string) (*entity.Position, error)
	Update(ctx context.Context, p *entity.Position) error
	List(ctx context.Context, activeOnly bool) ([]*entity.Position, error)
	Delete(ctx context.Context, id string) error
}

// ResponsiblePersonRepository порт персистентності для МВО.
type ResponsiblePersonRepository interface {
	Create(ctx context.Context, p *entity.ResponsiblePerson) error
	GetByID(ctx context.Context, id string) (*entity.ResponsiblePerson, error)
	GetByIPN(ctx context.Context, ipn string) (*entity.ResponsiblePerson, error)
	Update(ctx context.Context, p *entity.ResponsiblePerson) error
	List(ctx context.Context, activeOnly bool) ([]*entity.ResponsiblePerson, error)
	Delete(ctx context.Context, id string) error
}

// OrganizationRepository порт персистентності для організацій.
type OrganizationRepository interface {
	Create(ctx context.Context, o *entity.Organization) error
	GetByID(ctx context.Context, id string) (*entity.Organization, error)
	GetByEDRPOU(ctx context.Context, edrpou string) (*entity.Organization, error)
	// GetOwn власна організація (is_own = true); (nil, nil) якщо не налаштована.
	GetOwn(ctx context.Context) (*entity.Organization, error)
	Update(ctx context.Context, o *entity.Organization) error
	List(ctx context.Context, activeOnly bool) ([]*entity.Organization, error)
	Delete(ctx context.Context, id string) error
}
