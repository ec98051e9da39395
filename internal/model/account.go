package model

import "github.com/shopspring/decimal"

type AccountType string

const (
	AccountSavings    AccountType = "SAVINGS"
	AccountChecking   AccountType = "CHECKING"
	AccountCreditCard AccountType = "CREDIT_CARD"
	AccountWallet     AccountType = "WALLET"
	AccountCash       AccountType = "CASH"
)

// AccountTypes lists every valid account type, in display order.
var AccountTypes = []AccountType{
	AccountSavings,
	AccountChecking,
	AccountCreditCard,
	AccountWallet,
	AccountCash,
}

// CreditCardDetails is present only on CREDIT_CARD accounts.
// BillingDay and DueDay are days of the month (1-31).
type CreditCardDetails struct {
	Limit      decimal.Decimal `json:"limit"`
	BillingDay int             `json:"billingDay"`
	DueDay     int             `json:"dueDay"`
}

// Account holds a cached balance: the seed balance given at creation
// plus the effect of every transaction recorded against it since.
type Account struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Type       AccountType        `json:"type"`
	Balance    decimal.Decimal    `json:"balance"`
	Currency   string             `json:"currency"`
	CreditCard *CreditCardDetails `json:"creditCardDetails,omitempty"`
	CreatedAt  int64              `json:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt"`
}

// AccountChanges is a partial update. Nil fields inherit the old value.
// Balance is deliberately absent: balances change only through the
// transaction lifecycle, never by direct edit.
type AccountChanges struct {
	Name       *string
	Type       *AccountType
	Currency   *string
	CreditCard *CreditCardDetails
}

// WithChanges returns a copy of the account with the changes applied.
// The receiver is never mutated. Credit card details are dropped when
// the merged type is no longer CREDIT_CARD.
func (a *Account) WithChanges(c AccountChanges) *Account {
	merged := *a
	if c.Name != nil {
		merged.Name = *c.Name
	}
	if c.Type != nil {
		merged.Type = *c.Type
	}
	if c.Currency != nil {
		merged.Currency = *c.Currency
	}
	if c.CreditCard != nil {
		cc := *c.CreditCard
		merged.CreditCard = &cc
	}
	if merged.Type != AccountCreditCard {
		merged.CreditCard = nil
	}
	return &merged
}

func ValidAccountType(t AccountType) bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}
