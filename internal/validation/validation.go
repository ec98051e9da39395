// Package validation checks caller input before it reaches the store.
// A failed validation never leaves a partial effect behind.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgt/budgt/internal/constants"
	"github.com/budgt/budgt/internal/model"
)

// Error marks malformed input, as opposed to storage failures or
// missing records.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func errf(field, format string, args ...any) *Error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err (or anything it wraps) is an input
// validation failure.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return errf("account name", "can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return errf("account name", "too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

func ValidateAccountType(t model.AccountType) error {
	if !model.ValidAccountType(t) {
		return errf("account type", "unknown type '%s'", t)
	}
	return nil
}

// ValidateCreditCard checks the optional credit card block: it may
// only appear on CREDIT_CARD accounts, with cycle days inside a month.
func ValidateCreditCard(accType model.AccountType, cc *model.CreditCardDetails) error {
	if cc == nil {
		return nil
	}
	if accType != model.AccountCreditCard {
		return errf("credit card details", "only allowed on CREDIT_CARD accounts")
	}
	if cc.BillingDay < constants.MinCycleDay || cc.BillingDay > constants.MaxCycleDay {
		return errf("billing day", "must be between %d and %d", constants.MinCycleDay, constants.MaxCycleDay)
	}
	if cc.DueDay < constants.MinCycleDay || cc.DueDay > constants.MaxCycleDay {
		return errf("due day", "must be between %d and %d", constants.MinCycleDay, constants.MaxCycleDay)
	}
	if cc.Limit.IsNegative() {
		return errf("credit limit", "can't be negative")
	}
	return nil
}

// ValidateTransaction checks a full transaction record, either fresh
// input or the merged candidate of an update.
func ValidateTransaction(tx *model.Transaction) error {
	if tx.AccountID == "" {
		return errf("transaction", "account id is required")
	}
	if !model.ValidTransactionType(tx.Type) {
		return errf("transaction type", "unknown type '%s'", tx.Type)
	}
	if !tx.Amount.IsPositive() {
		return errf("amount", "must be greater than zero")
	}
	if tx.Type == model.TxTransfer {
		if tx.TransferToAccountID == "" {
			return errf("transfer destination", "required for TRANSFER transactions")
		}
		if tx.TransferToAccountID == tx.AccountID {
			return errf("transfer destination", "must differ from the source account")
		}
	}
	return nil
}

// ValidateCurrency validates a currency code format.
func ValidateCurrency(code string) error {
	code = strings.TrimSpace(strings.ToUpper(code))

	if code == "" {
		return nil // Empty is allowed (will use default)
	}

	if len(code) != 3 {
		return errf("currency", "code must be 3 characters (e.g. USD)")
	}

	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return errf("currency", "code must contain only letters")
		}
	}

	return nil
}

// ValidateAmountInput validates a raw amount string from a prompt or
// flag, before decimal parsing.
func ValidateAmountInput(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return errf("amount", "is required")
	}

	amount, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return errf("amount", "invalid number format")
	}
	if amount <= 0 {
		return errf("amount", "must be greater than zero")
	}
	return nil
}

// ValidateBalanceInput validates a raw starting-balance string. Unlike
// transaction amounts, a starting balance may be zero or negative
// (credit card debt carried in from outside).
func ValidateBalanceInput(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	if _, err := decimal.NewFromString(input); err != nil {
		return errf("balance", "invalid number format")
	}
	return nil
}
