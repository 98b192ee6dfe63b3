package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

var _ repository.AccountEntryRepository = (*AccountEntryRepo)(nil)

// AccountEntryRepo журнал бухгалтерських проводок поверх PostgreSQL
// (append-only, без оновлень і видалень).
type AccountEntryRepo struct {
	q Querier
}

// NewAccountEntryRepository конструює адаптер.
func NewAccountEntryRepository(q Querier) *AccountEntryRepo {
	return &AccountEntryRepo{q: q}
}

const accountEntryColumns = `
	id, entry_type, date, debit_account, credit_account, amount, description,
	COALESCE(asset_id::text, ''), document_number, document_date, is_posted,
	COALESCE(created_by::text, ''), created_at`

func scanAccountEntry(row pgx.Row) (*entity.AccountEntry, error) {
	var e entity.AccountEntry
	err := row.Scan(
		&e.ID, &e.EntryType, &e.Date, &e.DebitAccount, &e.CreditAccount, &e.Amount, &e.Description,
		&e.AssetID, &e.DocumentNumber, &e.DocumentDate, &e.IsPosted,
		&e.CreatedBy, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create додає одну проводку.
func (r *AccountEntryRepo) Create(ctx context.Context, e *entity.AccountEntry) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO account_entries (
			id, entry_type, date, debit_account, credit_account, amount, description,
			asset_id, document_number, document_date, is_posted, created_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::uuid, $9, $10, $11, NULLIF($12, '')::uuid, $13)`,
		e.ID, e.EntryType, e.Date, e.DebitAccount, e.CreditAccount, e.Amount, e.Description,
		e.AssetID, e.DocumentNumber, e.DocumentDate, e.IsPosted, e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account entry: %w", err)
	}
	return nil
}

// CreateBatch додає проводки однієї операції.
func (r *AccountEntryRepo) CreateBatch(ctx context.Context, entries []entity.AccountEntry) error {
	for i := range entries {
		if err := r.Create(ctx, &entries[i]); err != nil {
			return err
		}
	}
	return nil
}

// List вибірка проводок за фільтром з пагінацією.
func (r *AccountEntryRepo) List(ctx context.Context, f repository.EntryFilter) ([]*entity.AccountEntry, int, error) {
	var conds []string
	var args []any

	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.EntryType != "" {
		add("entry_type = $%d", f.EntryType)
	}
	if f.AssetID != "" {
		add("asset_id = $%d::uuid", f.AssetID)
	}
	if f.DateFrom != nil {
		add("date >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		add("date <= $%d", *f.DateTo)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM account_entries`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count account entries: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit, f.Offset)
	query := fmt.Sprintf(`SELECT%s FROM account_entries%s ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		accountEntryColumns, where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list account entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.AccountEntry
	for rows.Next() {
		e, err := scanAccountEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan account entry: %w", err)
		}
		list = append(list, e)
	}
	return list, total, rows.Err()
}

// ListByAsset усі проводки одного ОЗ у хронологічному порядку.
func (r *AccountEntryRepo) ListByAsset(ctx context.Context, assetID string) ([]*entity.AccountEntry, error) {
	rows, err := r.q.Query(ctx,
		`SELECT`+accountEntryColumns+` FROM account_entries WHERE asset_id = $1 ORDER BY date, created_at`,
		assetID)
	if err != nil {
		return nil, fmt.Errorf("list account entries by asset: %w", err)
	}
	defer rows.Close()

	var list []*entity.AccountEntry
	for rows.Next() {
		e, err := scanAccountEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Turnovers обороти за рахунками за період: сума дебету та кредиту по
// кожному рахунку, що зустрічається в журналі.
func (r *AccountEntryRepo) Turnovers(ctx context.Context, from, to *time.Time) ([]repository.AccountTurnover, error) {
	var conds []string
	var args []any
	if from != nil {
		args = append(args, *from)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, fmt.Sprintf("date <= $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT account, COALESCE(sum(debit), 0), COALESCE(sum(credit), 0)
		FROM (
			SELECT debit_account AS account, amount AS debit, NULL::numeric AS credit
			FROM account_entries%s
			UNION ALL
			SELECT credit_account AS account, NULL::numeric AS debit, amount AS credit
			FROM account_entries%s
		) t
		GROUP BY account
		ORDER BY account`, where, where)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("account turnovers: %w", err)
	}
	defer rows.Close()

	var turnovers []repository.AccountTurnover
	for rows.Next() {
		var t repository.AccountTurnover
		if err := rows.Scan(&t.Account, &t.Debit, &t.Credit); err != nil {
			return nil, fmt.Errorf("scan account turnover: %w", err)
		}
		turnovers = append(turnovers, t)
	}
	return turnovers, rows.Err()
}
