package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgt/budgt/internal/config"
	"github.com/budgt/budgt/internal/model"
	"github.com/budgt/budgt/internal/store"
	"github.com/budgt/budgt/internal/validation"
)

type AccountService struct {
	repo   store.Repository
	config *config.Config
}

func NewAccountService(repo store.Repository, cfg *config.Config) *AccountService {
	return &AccountService{repo: repo, config: cfg}
}

// AccountInput represents caller input for creating an account. The
// starting balance seeds the running balance; from then on it only
// moves through the transaction lifecycle.
type AccountInput struct {
	Name       string
	Type       model.AccountType
	Balance    decimal.Decimal
	Currency   string
	CreditCard *model.CreditCardDetails
}

func (as *AccountService) CreateAccount(input AccountInput) (*model.Account, error) {
	if err := validation.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidateAccountType(input.Type); err != nil {
		return nil, err
	}
	if err := validation.ValidateCreditCard(input.Type, input.CreditCard); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = as.config.Defaults.Currency
	}
	if err := validation.ValidateCurrency(currency); err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	acc := &model.Account{
		Name:       input.Name,
		Type:       input.Type,
		Balance:    input.Balance,
		Currency:   currency,
		CreditCard: input.CreditCard,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	newID, err := as.repo.CreateAccount(acc)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	acc.ID = newID

	return acc, nil
}

// UpdateAccount merges the changes onto the stored account and
// persists the result. The balance is not touchable through here.
func (as *AccountService) UpdateAccount(id string, changes model.AccountChanges) (*model.Account, error) {
	var merged *model.Account

	err := as.repo.ExecTx(func(repo store.Repository) error {
		old, err := repo.GetAccountByID(id)
		if err != nil {
			return err
		}

		merged = old.WithChanges(changes)
		if err := validation.ValidateAccountName(merged.Name); err != nil {
			return err
		}
		if err := validation.ValidateAccountType(merged.Type); err != nil {
			return err
		}
		if err := validation.ValidateCreditCard(merged.Type, merged.CreditCard); err != nil {
			return err
		}
		if err := validation.ValidateCurrency(merged.Currency); err != nil {
			return err
		}
		merged.UpdatedAt = time.Now().UnixMilli()

		return repo.UpdateAccount(merged)
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}

// DeleteAccount removes the account and every transaction it owns, in
// one unit of work. No balances are reverted: the books being removed
// are the account's own. Transactions elsewhere that point at it as a
// transfer destination are left dangling on purpose.
func (as *AccountService) DeleteAccount(id string) error {
	return as.repo.ExecTx(func(repo store.Repository) error {
		if _, err := repo.GetAccountByID(id); err != nil {
			return err
		}
		if err := repo.DeleteTransactionsByAccount(id); err != nil {
			return err
		}
		return repo.DeleteAccount(id)
	})
}

// DefaultCurrency is the configured currency for new accounts.
func (as *AccountService) DefaultCurrency() string {
	return as.config.Defaults.Currency
}

func (as *AccountService) GetAccountByID(id string) (*model.Account, error) {
	return as.repo.GetAccountByID(id)
}

func (as *AccountService) GetAllAccounts() ([]*model.Account, error) {
	return as.repo.GetAllAccounts()
}

// TotalBalance sums the balances of all accounts. Amounts are summed
// nominally; the currency label carries no conversion semantics.
func (as *AccountService) TotalBalance() (decimal.Decimal, error) {
	accounts, err := as.repo.GetAllAccounts()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load accounts: %w", err)
	}

	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(acc.Balance)
	}
	return total, nil
}
