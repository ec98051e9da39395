package model

import "github.com/shopspring/decimal"

type TransactionType string

const (
	TxIncome   TransactionType = "INCOME"
	TxExpense  TransactionType = "EXPENSE"
	TxTransfer TransactionType = "TRANSFER"
)

var TransactionTypes = []TransactionType{TxIncome, TxExpense, TxTransfer}

// Transaction records a single ledger event. Amount is always a
// positive magnitude; the direction comes from Type. For TRANSFER,
// AccountID is the debited source and TransferToAccountID the credited
// destination.
type Transaction struct {
	ID                  string          `json:"id"`
	AccountID           string          `json:"accountId"`
	Amount              decimal.Decimal `json:"amount"`
	Type                TransactionType `json:"type"`
	TransferToAccountID string          `json:"transferToAccountId,omitempty"`
	Category            string          `json:"category"`
	Description         string          `json:"description"`
	Tags                []string        `json:"tags"`
	Date                int64           `json:"date"`
	CreatedAt           int64           `json:"createdAt"`
}

// TransactionChanges is a partial update. Nil fields inherit the old value.
type TransactionChanges struct {
	AccountID           *string
	Amount              *decimal.Decimal
	Type                *TransactionType
	TransferToAccountID *string
	Category            *string
	Description         *string
	Tags                *[]string
	Date                *int64
}

// WithChanges returns a copy of the transaction with the changes
// applied, keeping the same ID. The receiver is never mutated.
func (t *Transaction) WithChanges(c TransactionChanges) *Transaction {
	merged := *t
	if c.AccountID != nil {
		merged.AccountID = *c.AccountID
	}
	if c.Amount != nil {
		merged.Amount = *c.Amount
	}
	if c.Type != nil {
		merged.Type = *c.Type
	}
	if c.TransferToAccountID != nil {
		merged.TransferToAccountID = *c.TransferToAccountID
	}
	if c.Category != nil {
		merged.Category = *c.Category
	}
	if c.Description != nil {
		merged.Description = *c.Description
	}
	if c.Tags != nil {
		merged.Tags = append([]string(nil), (*c.Tags)...)
	}
	if c.Date != nil {
		merged.Date = *c.Date
	}
	return &merged
}

func ValidTransactionType(t TransactionType) bool {
	for _, known := range TransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}
