package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oz-oblik/assets-backend/internal/domain"
)

// isUniqueViolation перевіряє, чи є помилка порушенням унікального
// обмеження (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation перевіряє, чи є помилка порушенням зовнішнього
// ключа (23503) — спроба видалити запис, на який посилаються.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return false
}

// uniqueViolationError мапить порушення 23505 на доменну помилку за назвою
// обмеження. Обмеження сховища — джерело істини для ідемпотентності:
// попередні перевірки в юзкейсах лише покращують повідомлення.
func uniqueViolationError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return domain.ErrDuplicate
	}
	switch pgErr.ConstraintName {
	case "depreciation_records_asset_period_key":
		return domain.ErrPeriodAlreadyAccrued
	case "asset_receipts_asset_id_key":
		return domain.ErrReceiptExists
	case "asset_disposals_asset_id_key":
		return domain.ErrDisposalExists
	case "users_email_key":
		return domain.ErrEmailAlreadyExists
	}
	return domain.ErrDuplicate
}
