package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction classifies a transaction as money in or money out.
type Direction string

const (
	Income  Direction = "income"
	Expense Direction = "expense"
)

// ParsedTransaction is one statement line after extraction and normalization.
// Amount is always non-negative; the sign of the original amount token is
// captured in Direction, never as a negative amount.
type ParsedTransaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Direction   Direction
}

// CategorizedTransaction is a ParsedTransaction with a category assigned from
// the closed vocabulary. The category's direction always matches Direction.
type CategorizedTransaction struct {
	ParsedTransaction
	Category string
}

// Transaction is a persisted record. ID and UserID are assigned at merge
// time, after the user confirms the import.
type Transaction struct {
	ID            string
	UserID        string
	Type          Direction
	Amount        decimal.Decimal
	Description   string
	Category      string
	PaymentMethod string
	Date          time.Time
}
