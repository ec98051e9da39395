package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgt/budgt/internal/config"
	"github.com/budgt/budgt/internal/model"
	"github.com/budgt/budgt/internal/store"
	"github.com/budgt/budgt/internal/validation"
)

// TransactionService owns the transaction lifecycle. Account balances
// change only as a side effect of the operations here, each inside a
// single unit of work, so every committed state satisfies
// balance == seed + sum of stored transaction effects.
type TransactionService struct {
	repo   store.Repository
	config *config.Config
}

func NewTransactionService(repo store.Repository, cfg *config.Config) *TransactionService {
	return &TransactionService{repo: repo, config: cfg}
}

// TransactionInput represents caller input for creating a transaction.
type TransactionInput struct {
	AccountID           string
	Amount              decimal.Decimal
	Type                model.TransactionType
	TransferToAccountID string
	Category            string
	Description         string
	Tags                []string
	Date                int64
}

// CreateTransaction records a transaction and applies its balance
// effect to the source account, and to the destination for transfers.
// Returns the id of the new record.
func (ts *TransactionService) CreateTransaction(input TransactionInput) (string, error) {
	now := time.Now().UnixMilli()

	tx := &model.Transaction{
		AccountID:           input.AccountID,
		Amount:              input.Amount,
		Type:                input.Type,
		TransferToAccountID: input.TransferToAccountID,
		Category:            input.Category,
		Description:         input.Description,
		Tags:                input.Tags,
		Date:                input.Date,
		CreatedAt:           now,
	}
	if tx.Date == 0 {
		tx.Date = now
	}
	if tx.Type != model.TxTransfer {
		tx.TransferToAccountID = ""
	}

	if err := validation.ValidateTransaction(tx); err != nil {
		return "", err
	}

	err := ts.repo.ExecTx(func(repo store.Repository) error {
		newID, err := repo.CreateTransaction(tx)
		if err != nil {
			return err
		}
		tx.ID = newID

		return applyEffects(repo, tx)
	})
	if err != nil {
		return "", err
	}

	return tx.ID, nil
}

// UpdateTransaction reverts the old record's effect, merges the
// changes onto it and applies the result, keeping the same id. The
// whole sequence runs in one unit of work; any failure leaves the
// prior state intact.
func (ts *TransactionService) UpdateTransaction(id string, changes model.TransactionChanges) (*model.Transaction, error) {
	var merged *model.Transaction

	err := ts.repo.ExecTx(func(repo store.Repository) error {
		old, err := repo.GetTransactionByID(id)
		if err != nil {
			return err
		}

		if err := revertEffects(repo, old); err != nil {
			return err
		}

		merged = old.WithChanges(changes)
		if merged.Type != model.TxTransfer {
			merged.TransferToAccountID = ""
		}
		if err := validation.ValidateTransaction(merged); err != nil {
			return err
		}

		if err := applyEffects(repo, merged); err != nil {
			return err
		}

		return repo.UpdateTransaction(merged)
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}

// DeleteTransaction reverts the record's balance effect and removes
// it. Deleting an id that does not exist is a successful no-op.
func (ts *TransactionService) DeleteTransaction(id string) error {
	return ts.repo.ExecTx(func(repo store.Repository) error {
		tx, err := repo.GetTransactionByID(id)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := revertEffects(repo, tx); err != nil {
			return err
		}

		return repo.DeleteTransaction(id)
	})
}

func (ts *TransactionService) GetTransactionByID(id string) (*model.Transaction, error) {
	return ts.repo.GetTransactionByID(id)
}

// ListTransactions returns transactions newest first, filtered to the
// given account when accountID is non-empty.
func (ts *TransactionService) ListTransactions(accountID string) ([]*model.Transaction, error) {
	if accountID != "" {
		return ts.repo.GetTransactionsByAccount(accountID)
	}
	return ts.repo.GetAllTransactions()
}

// Totals sums income and expenses across all stored transactions.
// Transfers move money between accounts and count as neither.
func (ts *TransactionService) Totals() (income, expense decimal.Decimal, err error) {
	transactions, err := ts.repo.GetAllTransactions()
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to load transactions: %w", err)
	}

	for _, tx := range transactions {
		switch tx.Type {
		case model.TxIncome:
			income = income.Add(tx.Amount)
		case model.TxExpense:
			expense = expense.Add(tx.Amount)
		}
	}
	return income, expense, nil
}
