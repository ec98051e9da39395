package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budgt/budgt/internal/model"
	"github.com/budgt/budgt/internal/store"
)

// effect is the signed balance delta tx contributes to the given
// account: income credits its account, an expense debits it, and a
// transfer debits the source while crediting the destination.
func effect(tx *model.Transaction, accountID string) decimal.Decimal {
	var delta decimal.Decimal
	if tx.AccountID == accountID {
		switch tx.Type {
		case model.TxIncome:
			delta = delta.Add(tx.Amount)
		case model.TxExpense, model.TxTransfer:
			delta = delta.Sub(tx.Amount)
		}
	}
	if tx.Type == model.TxTransfer && tx.TransferToAccountID == accountID {
		delta = delta.Add(tx.Amount)
	}
	return delta
}

// applyEffects adds tx's balance effect to every account it touches.
// The source account must exist. A transfer whose destination is gone
// is accepted with no destination-side write: the source account's
// books stay balanceable from its own transaction list, and the
// dangling destination is a tolerated state, not an error.
func applyEffects(repo store.Repository, tx *model.Transaction) error {
	src, err := repo.GetAccountByID(tx.AccountID)
	if err != nil {
		return fmt.Errorf("source account: %w", err)
	}
	if err := repo.SetAccountBalance(src.ID, src.Balance.Add(effect(tx, src.ID))); err != nil {
		return err
	}

	if tx.Type != model.TxTransfer {
		return nil
	}

	dest, err := repo.GetAccountByID(tx.TransferToAccountID)
	if errors.Is(err, store.ErrNotFound) {
		// dangling transfer destination: skip
		return nil
	}
	if err != nil {
		return fmt.Errorf("destination account: %w", err)
	}
	return repo.SetAccountBalance(dest.ID, dest.Balance.Add(effect(tx, dest.ID)))
}

// revertEffects subtracts tx's balance effect from every account it
// touches. Accounts that no longer exist are skipped on both sides:
// a missing source can only mean the record arrived through a raw
// import, and its books are not ours to rebuild here.
func revertEffects(repo store.Repository, tx *model.Transaction) error {
	accountIDs := []string{tx.AccountID}
	if tx.Type == model.TxTransfer {
		accountIDs = append(accountIDs, tx.TransferToAccountID)
	}

	for _, id := range accountIDs {
		acc, err := repo.GetAccountByID(id)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := repo.SetAccountBalance(acc.ID, acc.Balance.Sub(effect(tx, acc.ID))); err != nil {
			return err
		}
	}
	return nil
}
