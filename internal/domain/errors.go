package domain

import "errors"

// Доменні помилки (без зовнішніх залежностей).
var (
	ErrNotFound           = errors.New("ресурс не знайдено")
	ErrUserNotFound       = errors.New("користувача не знайдено")
	ErrEmailAlreadyExists = errors.New("email вже зареєстровано")
	ErrValidation         = errors.New("некоректні дані")
	ErrDuplicate          = errors.New("дублікат ресурсу")
	ErrUnauthorized       = errors.New("не авторизовано")
	ErrForbidden          = errors.New("доступ заборонено")
	ErrConflict           = errors.New("конфлікт із поточним станом")

	// Життєвий цикл основних засобів.
	ErrAssetDisposed        = errors.New("основний засіб вже списано")
	ErrReceiptExists        = errors.New("оприбуткування для цього ОЗ вже існує")
	ErrDisposalExists       = errors.New("вибуття для цього ОЗ вже оформлено")
	ErrPeriodAlreadyAccrued = errors.New("амортизацію за цей період вже нараховано")
	ErrBelowResidualValue   = errors.New("нарахування нижче ліквідаційної вартості")
	ErrInventoryNotDraft    = errors.New("інвентаризація не в статусі чернетки")
)
