package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate перевіряє структуру за тегами validate.
func Validate(v any) error {
	return validate.Struct(v)
}

// PageRequest пагінація для списків.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage застосовує типові значення, якщо Limit/Offset порожні.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse метадані сторінки у відповідях.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse тіло помилки HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse просте підтвердження операції.
type MessageResponse struct {
	Message string `json:"message"`
}
