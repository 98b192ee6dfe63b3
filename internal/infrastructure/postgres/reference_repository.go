package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oz-oblik/assets-backend/internal/domain"
	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)
var _ repository.PositionRepository = (*PositionRepo)(nil)
var _ repository.ResponsiblePersonRepository = (*ResponsiblePersonRepo)(nil)
var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// LocationRepo довідник місцезнаходжень поверх PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository конструює адаптер.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

func (r *LocationRepo) Create(ctx context.Context, l *entity.Location) error {
	_, err := r.q.Exec(ctx, `INSERT INTO locations (id, name, is_active) VALUES ($1, $2, $3)`,
		l.ID, l.Name, l.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	var l entity.Location
	err := r.q.QueryRow(ctx, `SELECT id, name, is_active FROM locations WHERE id = $1`, id).
		Scan(&l.ID, &l.Name, &l.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

func (r *LocationRepo) Update(ctx context.Context, l *entity.Location) error {
	cmd, err := r.q.Exec(ctx, `UPDATE locations SET name = $2, is_active = $3 WHERE id = $1`,
		l.ID, l.Name, l.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LocationRepo) List(ctx context.Context, activeOnly bool) ([]*entity.Location, error) {
	query := `SELECT id, name, is_active FROM locations`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.IsActive); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *LocationRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// PositionRepo довідник посад поверх PostgreSQL.
type PositionRepo struct {
	q Querier
}

// NewPositionRepository конструює адаптер.
func NewPositionRepository(q Querier) *PositionRepo {
	return &PositionRepo{q: q}
}

func (r *PositionRepo) Create(ctx context.Context, p *entity.Position) error {
	_, err := r.q.Exec(ctx, `INSERT INTO positions (id, name, is_active) VALUES ($1, $2, $3)`,
		p.ID, p.Name, p.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert position: %w", err)
	}
	return nil
}

func (r *PositionRepo) GetByID(ctx context.Context, id string) (*entity.Position, error) {
	var p entity.Position
	err := r.q.QueryRow(ctx, `SELECT id, name, is_active FROM positions WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get position: %w", err)
	}
	return &p, nil
}

func (r *PositionRepo) Update(ctx context.Context, p *entity.Position) error {
	cmd, err := r.q.Exec(ctx, `UPDATE positions SET name = $2, is_active = $3 WHERE id = $1`,
		p.ID, p.Name, p.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update position: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PositionRepo) List(ctx context.Context, activeOnly bool) ([]*entity.Position, error) {
	query := `SELECT id, name, is_active FROM positions`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Position
	for rows.Next() {
		var p entity.Position
		if err := rows.Scan(&p.ID, &p.Name, &p.IsActive); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PositionRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete position: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ResponsiblePersonRepo довідник МВО поверх PostgreSQL.
type ResponsiblePersonRepo struct {
	q Querier
}

// NewResponsiblePersonRepository конструює адаптер.
func NewResponsiblePersonRepository(q Querier) *ResponsiblePersonRepo {
	return &ResponsiblePersonRepo{q: q}
}

const personColumns = `
	id, ipn, full_name, COALESCE(position_id::text, ''), COALESCE(location_id::text, ''), is_employee, is_active`

func scanPerson(row pgx.Row) (*entity.ResponsiblePerson, error) {
	var p entity.ResponsiblePerson
	err := row.Scan(&p.ID, &p.IPN, &p.FullName, &p.PositionID, &p.LocationID, &p.IsEmployee, &p.IsActive)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ResponsiblePersonRepo) Create(ctx context.Context, p *entity.ResponsiblePerson) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO responsible_persons (id, ipn, full_name, position_id, location_id, is_employee, is_active)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, NULLIF($5, '')::uuid, $6, $7)`,
		p.ID, p.IPN, p.FullName, p.PositionID, p.LocationID, p.IsEmployee, p.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert responsible person: %w", err)
	}
	return nil
}

func (r *ResponsiblePersonRepo) GetByID(ctx context.Context, id string) (*entity.ResponsiblePerson, error) {
	p, err := scanPerson(r.q.QueryRow(ctx,
		`SELECT`+personColumns+` FROM responsible_persons WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get responsible person: %w", err)
	}
	return p, nil
}

func (r *ResponsiblePersonRepo) GetByIPN(ctx context.Context, ipn string) (*entity.ResponsiblePerson, error) {
	p, err := scanPerson(r.q.QueryRow(ctx,
		`SELECT`+personColumns+` FROM responsible_persons WHERE ipn = $1`, ipn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get responsible person by ipn: %w", err)
	}
	return p, nil
}

func (r *ResponsiblePersonRepo) Update(ctx context.Context, p *entity.ResponsiblePerson) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE responsible_persons
		SET ipn = $2, full_name = $3, position_id = NULLIF($4, '')::uuid,
		    location_id = NULLIF($5, '')::uuid, is_employee = $6, is_active = $7
		WHERE id = $1`,
		p.ID, p.IPN, p.FullName, p.PositionID, p.LocationID, p.IsEmployee, p.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update responsible person: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ResponsiblePersonRepo) List(ctx context.Context, activeOnly bool) ([]*entity.ResponsiblePerson, error) {
	query := `SELECT` + personColumns + ` FROM responsible_persons`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY full_name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list responsible persons: %w", err)
	}
	defer rows.Close()

	var list []*entity.ResponsiblePerson
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan responsible person: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ResponsiblePersonRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM responsible_persons WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete responsible person: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// OrganizationRepo довідник організацій поверх PostgreSQL.
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository конструює адаптер.
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

const orgColumns = `
	id, name, short_name, edrpou, address, director, accountant, is_active, is_own`

func scanOrganization(row pgx.Row) (*entity.Organization, error) {
	var o entity.Organization
	err := row.Scan(&o.ID, &o.Name, &o.ShortName, &o.EDRPOU, &o.Address,
		&o.Director, &o.Accountant, &o.IsActive, &o.IsOwn)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrganizationRepo) Create(ctx context.Context, o *entity.Organization) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO organizations (id, name, short_name, edrpou, address, director, accountant, is_active, is_own)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		o.ID, o.Name, o.ShortName, o.EDRPOU, o.Address, o.Director, o.Accountant, o.IsActive, o.IsOwn)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepo) GetByID(ctx context.Context, id string) (*entity.Organization, error) {
	o, err := scanOrganization(r.q.QueryRow(ctx,
		`SELECT`+orgColumns+` FROM organizations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return o, nil
}

func (r *OrganizationRepo) GetByEDRPOU(ctx context.Context, edrpou string) (*entity.Organization, error) {
	o, err := scanOrganization(r.q.QueryRow(ctx,
		`SELECT`+orgColumns+` FROM organizations WHERE edrpou = $1`, edrpou))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization by edrpou: %w", err)
	}
	return o, nil
}

// GetOwn власна організація; (nil, nil) якщо не налаштована.
func (r *OrganizationRepo) GetOwn(ctx context.Context) (*entity.Organization, error) {
	o, err := scanOrganization(r.q.QueryRow(ctx,
		`SELECT`+orgColumns+` FROM organizations WHERE is_own LIMIT 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get own organization: %w", err)
	}
	return o, nil
}

func (r *OrganizationRepo) Update(ctx context.Context, o *entity.Organization) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE organizations
		SET name = $2, short_name = $3, edrpou = $4, address = $5,
		    director = $6, accountant = $7, is_active = $8, is_own = $9
		WHERE id = $1`,
		o.ID, o.Name, o.ShortName, o.EDRPOU, o.Address, o.Director, o.Accountant, o.IsActive, o.IsOwn)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update organization: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrganizationRepo) List(ctx context.Context, activeOnly bool) ([]*entity.Organization, error) {
	query := `SELECT` + orgColumns + ` FROM organizations`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Organization
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func (r *OrganizationRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete organization: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
