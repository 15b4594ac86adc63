package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is one normalized statement row. It is immutable once built:
// CategoryID is assigned at ingestion time and never recomputed.
type Transaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"` // calendar date, midnight UTC
	Description string    `json:"description"`
	Amount      float64   `json:"amount"` // positive = credit, negative = debit
	Balance     float64   `json:"balance"`
	CategoryID  string    `json:"categoryId"`
	Memo        string    `json:"memo,omitempty"`
}

// NewTransaction builds a transaction with a generated unique ID.
func NewTransaction(date time.Time, description string, amount, balance float64, categoryID string) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Balance:     balance,
		CategoryID:  categoryID,
	}
}

// IsCredit reports whether the transaction is an inflow. The amount sign is
// authoritative for income/expense classification.
func (t Transaction) IsCredit() bool {
	return t.Amount > 0
}
