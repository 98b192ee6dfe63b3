package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

// EntryResponse подання бухгалтерської проводки.
type EntryResponse struct {
	ID             string          `json:"id"`
	EntryType      string          `json:"entry_type"`
	Date           time.Time       `json:"date"`
	DebitAccount   string          `json:"debit_account"`
	CreditAccount  string          `json:"credit_account"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	AssetID        string          `json:"asset_id,omitempty"`
	DocumentNumber string          `json:"document_number,omitempty"`
	DocumentDate   *time.Time      `json:"document_date,omitempty"`
	IsPosted       bool            `json:"is_posted"`
	CreatedAt      time.Time       `json:"created_at"`
}

// FromEntry мапінг сутності у подання.
func FromEntry(e *entity.AccountEntry) EntryResponse {
	return EntryResponse{
		ID:             e.ID,
		EntryType:      e.EntryType,
		Date:           e.Date,
		DebitAccount:   e.DebitAccount,
		CreditAccount:  e.CreditAccount,
		Amount:         e.Amount,
		Description:    e.Description,
		AssetID:        e.AssetID,
		DocumentNumber: e.DocumentNumber,
		DocumentDate:   e.DocumentDate,
		IsPosted:       e.IsPosted,
		CreatedAt:      e.CreatedAt,
	}
}

// EntryListResponse сторінка журналу проводок.
type EntryListResponse struct {
	Items []EntryResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// TurnoverResponse оборот за рахунком.
type TurnoverResponse struct {
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// FromTurnover мапінг агрегату сховища у подання.
func FromTurnover(t repository.AccountTurnover) TurnoverResponse {
	return TurnoverResponse{Account: t.Account, Debit: t.Debit, Credit: t.Credit}
}

// JournalResponse журнал оборотів за рахунками за період.
type JournalResponse struct {
	From      *time.Time         `json:"from,omitempty"`
	To        *time.Time         `json:"to,omitempty"`
	Turnovers []TurnoverResponse `json:"turnovers"`
}
