package store

import (
	"github.com/shopspring/decimal"

	"github.com/budgt/budgt/internal/model"
)

type Repository interface {
	// Account Operations
	CreateAccount(acc *model.Account) (string, error)
	GetAccountByID(id string) (*model.Account, error)
	GetAllAccounts() ([]*model.Account, error)
	UpdateAccount(acc *model.Account) error
	SetAccountBalance(id string, balance decimal.Decimal) error
	DeleteAccount(id string) error
	UpsertAccount(acc *model.Account) error

	// Transaction Operations
	CreateTransaction(tx *model.Transaction) (string, error)
	GetTransactionByID(id string) (*model.Transaction, error)
	GetAllTransactions() ([]*model.Transaction, error)
	GetTransactionsByAccount(accountID string) ([]*model.Transaction, error)
	UpdateTransaction(tx *model.Transaction) error
	DeleteTransaction(id string) error
	DeleteTransactionsByAccount(accountID string) error
	UpsertTransaction(tx *model.Transaction) error

	// Tag Operations
	CreateTag(tag *model.Tag) (string, error)
	GetAllTags() ([]*model.Tag, error)
	UpsertTag(tag *model.Tag) error

	// ExecTx runs fn inside a single unit of work: every store
	// operation it performs commits together or not at all.
	ExecTx(fn func(Repository) error) error

	Close() error
}
