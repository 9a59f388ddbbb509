package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

type (
	// TransactionType marks a transaction as money coming in or going out.
	TransactionType string

	// Transaction is one recorded monetary event. Records are immutable once
	// created; the only mutation the ledger supports is deletion by ID.
	Transaction struct {
		ID       string          `json:"id"`
		Amount   int64           `json:"amount"` // whole rupiah, no subdivision
		Type     TransactionType `json:"type"`
		Category string          `json:"category"`
		Note     string          `json:"note"`
		Date     int64           `json:"date"` // milliseconds since epoch
	}

	// Category is static reference data used to group and visually
	// distinguish transactions. Defined once at startup, never mutated.
	Category struct {
		ID    string
		Name  string
		Icon  string
		Color string
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidDate   = errors.New("invalid date")
)

// Validate reports whether the type is one of the two known values.
func (t TransactionType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	}
	return ErrInvalidType
}

// Label returns the localized display label for the type.
func (t TransactionType) Label() string {
	if t == Income {
		return "Pemasukan"
	}
	return "Pengeluaran"
}

func (t Transaction) Validate() error {
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if len(t.Note) > 200 {
		return errors.New("note too long (max 200 characters)")
	}
	if t.Date <= 0 {
		return ErrInvalidDate
	}
	return nil
}

// Time returns the transaction timestamp as a local time.Time.
func (t Transaction) Time() time.Time {
	return time.UnixMilli(t.Date)
}
