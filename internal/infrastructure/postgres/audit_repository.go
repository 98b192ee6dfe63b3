package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo журнал аудиту поверх PostgreSQL (append-only).
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository конструює адаптер.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create додає запис журналу.
func (r *AuditLogRepo) Create(ctx context.Context, l *entity.AuditLog) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO audit_logs (id, user_id, action, entity_type, entity_id, object_repr, changes, ip_address, timestamp)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9)`,
		l.ID, l.UserID, l.Action, l.EntityType, l.EntityID, l.ObjectRepr, l.Changes, l.IPAddress, l.Timestamp)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List вибірка журналу за фільтром, нові записи першими.
func (r *AuditLogRepo) List(ctx context.Context, f repository.AuditFilter) ([]*entity.AuditLog, int, error) {
	var conds []string
	var args []any

	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.UserID != "" {
		add("user_id = $%d", f.UserID)
	}
	if f.Action != "" {
		add("action = $%d", f.Action)
	}
	if f.EntityType != "" {
		add("entity_type = $%d", f.EntityType)
	}
	if f.EntityID != "" {
		add("entity_id = $%d", f.EntityID)
	}
	if f.From != nil {
		add("timestamp >= $%d", *f.From)
	}
	if f.To != nil {
		add("timestamp <= $%d", *f.To)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM audit_logs`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit, f.Offset)
	query := fmt.Sprintf(`
		SELECT id, COALESCE(user_id::text, ''), action, entity_type, entity_id, object_repr, changes, ip_address, timestamp
		FROM audit_logs%s ORDER BY timestamp DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.EntityType, &l.EntityID,
			&l.ObjectRepr, &l.Changes, &l.IPAddress, &l.Timestamp); err != nil {
			return nil, 0, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &l)
	}
	return list, total, rows.Err()
}
