package service

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgt/budgt/internal/config"
	"github.com/budgt/budgt/internal/model"
	"github.com/budgt/budgt/internal/store"
	"github.com/budgt/budgt/internal/validation"
	"github.com/budgt/budgt/migrations"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	s, err := store.NewStore(filepath.Join(t.TempDir(), "budgt.db"), migrations.FS)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return NewService(s, config.NewDefault())
}

func createAccount(t *testing.T, svc *Service, name string, balance int64) *model.Account {
	t.Helper()

	acc, err := svc.Account.CreateAccount(AccountInput{
		Name:    name,
		Type:    model.AccountChecking,
		Balance: decimal.NewFromInt(balance),
	})
	require.NoError(t, err)
	return acc
}

func requireBalance(t *testing.T, svc *Service, accountID string, want int64) {
	t.Helper()

	acc, err := svc.Account.GetAccountByID(accountID)
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.NewFromInt(want)),
		"account %s: balance %s, want %d", accountID, acc.Balance, want)
}

func TestCreateTransactionIncomeAndExpense(t *testing.T) {
	svc := newTestService(t)
	acc := createAccount(t, svc, "Main", 1000)

	_, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID: acc.ID,
		Amount:    decimal.NewFromInt(500),
		Type:      model.TxIncome,
		Category:  "Salary",
	})
	require.NoError(t, err)
	requireBalance(t, svc, acc.ID, 1500)

	_, err = svc.Transaction.CreateTransaction(TransactionInput{
		AccountID: acc.ID,
		Amount:    decimal.NewFromInt(200),
		Type:      model.TxExpense,
		Category:  "Food",
	})
	require.NoError(t, err)
	requireBalance(t, svc, acc.ID, 1300)
}

func TestTransferSymmetry(t *testing.T) {
	svc := newTestService(t)
	src := createAccount(t, svc, "Checking", 1000)
	dst := createAccount(t, svc, "Savings", 50)

	_, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID:           src.ID,
		Amount:              decimal.NewFromInt(300),
		Type:                model.TxTransfer,
		TransferToAccountID: dst.ID,
	})
	require.NoError(t, err)

	requireBalance(t, svc, src.ID, 700)
	requireBalance(t, svc, dst.ID, 350)
}

func TestTransferToMissingDestinationIsAccepted(t *testing.T) {
	svc := newTestService(t)
	src := createAccount(t, svc, "Checking", 1000)

	id, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID:           src.ID,
		Amount:              decimal.NewFromInt(400),
		Type:                model.TxTransfer,
		TransferToAccountID: "gone",
	})
	require.NoError(t, err, "dangling destination is tolerated, not rejected")

	requireBalance(t, svc, src.ID, 600)

	tx, err := svc.Transaction.GetTransactionByID(id)
	require.NoError(t, err)
	assert.Equal(t, "gone", tx.TransferToAccountID, "record is stored verbatim")
}

func TestCreateTransactionMissingSourceRollsBack(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID: "missing",
		Amount:    decimal.NewFromInt(10),
		Type:      model.TxExpense,
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	all, err := svc.Transaction.ListTransactions("")
	require.NoError(t, err)
	assert.Empty(t, all, "the inserted record must roll back with the failed unit")
}

func TestCreateTransactionValidation(t *testing.T) {
	svc := newTestService(t)
	acc := createAccount(t, svc, "Main", 1000)

	_, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID: acc.ID,
		Amount:    decimal.Zero,
		Type:      model.TxExpense,
	})
	assert.True(t, validation.IsValidation(err), "zero amount: got %v", err)

	_, err = svc.Transaction.CreateTransaction(TransactionInput{
		AccountID: acc.ID,
		Amount:    decimal.NewFromInt(10),
		Type:      model.TxTransfer,
	})
	assert.True(t, validation.IsValidation(err), "transfer without destination: got %v", err)

	_, err = svc.Transaction.CreateTransaction(TransactionInput{
		AccountID:           acc.ID,
		Amount:              decimal.NewFromInt(10),
		Type:                model.TxTransfer,
		TransferToAccountID: acc.ID,
	})
	assert.True(t, validation.IsValidation(err), "self transfer: got %v", err)

	requireBalance(t, svc, acc.ID, 1000)
}

// The walkthrough from the product notes: every step re-derives the
// balance from the revert-then-apply rule.
func TestUpdateTransactionScenario(t *testing.T) {
	svc := newTestService(t)
	acc := createAccount(t, svc, "Main", 1000)

	incomeID, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID: acc.ID,
		Amount:    decimal.NewFromInt(500),
		Type:      model.TxIncome,
	})
	require.NoError(t, err)
	requireBalance(t, svc, acc.ID, 1500)

	expenseID, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID: acc.ID,
		Amount:    decimal.NewFromInt(200),
		Type:      model.TxExpense,
	})
	require.NoError(t, err)
	requireBalance(t, svc, acc.ID, 1300)

	newAmount := decimal.NewFromInt(300)
	_, err = svc.Transaction.UpdateTransaction(expenseID, model.TransactionChanges{Amount: &newAmount})
	require.NoError(t, err)
	requireBalance(t, svc, acc.ID, 1200)

	income := model.TxIncome
	_, err = svc.Transaction.UpdateTransaction(expenseID, model.TransactionChanges{Type: &income})
	require.NoError(t, err)
	requireBalance(t, svc, acc.ID, 1800)

	require.NoError(t, svc.Transaction.DeleteTransaction(incomeID))
	requireBalance(t, svc, acc.ID, 1500)
}

func TestUpdateTransactionRoundTripRestoresBalance(t *testing.T) {
	svc := newTestService(t)
	acc := createAccount(t, svc, "Main", 1000)

	txID, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID: acc.ID,
		Amount:    decimal.NewFromInt(200),
		Type:      model.TxExpense,
	})
	require.NoError(t, err)
	requireBalance(t, svc, acc.ID, 800)

	bigger := decimal.NewFromInt(350)
	_, err = svc.Transaction.UpdateTransaction(txID, model.TransactionChanges{Amount: &bigger})
	require.NoError(t, err)
	requireBalance(t, svc, acc.ID, 650)

	original := decimal.NewFromInt(200)
	_, err = svc.Transaction.UpdateTransaction(txID, model.TransactionChanges{Amount: &original})
	require.NoError(t, err)
	requireBalance(t, svc, acc.ID, 800)
}

func TestUpdateTransactionMovesBetweenAccounts(t *testing.T) {
	svc := newTestService(t)
	first := createAccount(t, svc, "First", 1000)
	second := createAccount(t, svc, "Second", 1000)

	txID, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID: first.ID,
		Amount:    decimal.NewFromInt(100),
		Type:      model.TxExpense,
	})
	require.NoError(t, err)
	requireBalance(t, svc, first.ID, 900)

	_, err = svc.Transaction.UpdateTransaction(txID, model.TransactionChanges{AccountID: &second.ID})
	require.NoError(t, err)

	requireBalance(t, svc, first.ID, 1000)
	requireBalance(t, svc, second.ID, 900)
}

func TestUpdateTransactionToMissingSourceRollsBack(t *testing.T) {
	svc := newTestService(t)
	acc := createAccount(t, svc, "Main", 1000)

	txID, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID: acc.ID,
		Amount:    decimal.NewFromInt(100),
		Type:      model.TxExpense,
	})
	require.NoError(t, err)
	requireBalance(t, svc, acc.ID, 900)

	missing := "missing"
	_, err = svc.Transaction.UpdateTransaction(txID, model.TransactionChanges{AccountID: &missing})
	require.ErrorIs(t, err, store.ErrNotFound)

	// The failed update must leave everything as it was, including the
	// revert step that ran before the failure.
	requireBalance(t, svc, acc.ID, 900)
	tx, err := svc.Transaction.GetTransactionByID(txID)
	require.NoError(t, err)
	assert.Equal(t, acc.ID, tx.AccountID)
}

func TestUpdateTransactionTransferRetargetsDestination(t *testing.T) {
	svc := newTestService(t)
	src := createAccount(t, svc, "Source", 1000)
	oldDst := createAccount(t, svc, "Old Destination", 0)
	newDst := createAccount(t, svc, "New Destination", 0)

	txID, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID:           src.ID,
		Amount:              decimal.NewFromInt(250),
		Type:                model.TxTransfer,
		TransferToAccountID: oldDst.ID,
	})
	require.NoError(t, err)
	requireBalance(t, svc, oldDst.ID, 250)

	_, err = svc.Transaction.UpdateTransaction(txID, model.TransactionChanges{TransferToAccountID: &newDst.ID})
	require.NoError(t, err)

	requireBalance(t, svc, src.ID, 750)
	requireBalance(t, svc, oldDst.ID, 0)
	requireBalance(t, svc, newDst.ID, 250)
}

func TestUpdateTransactionNotFound(t *testing.T) {
	svc := newTestService(t)

	amount := decimal.NewFromInt(10)
	_, err := svc.Transaction.UpdateTransaction("missing", model.TransactionChanges{Amount: &amount})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteTransactionIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	acc := createAccount(t, svc, "Main", 1000)

	txID, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID: acc.ID,
		Amount:    decimal.NewFromInt(100),
		Type:      model.TxExpense,
	})
	require.NoError(t, err)
	requireBalance(t, svc, acc.ID, 900)

	require.NoError(t, svc.Transaction.DeleteTransaction(txID))
	requireBalance(t, svc, acc.ID, 1000)

	require.NoError(t, svc.Transaction.DeleteTransaction(txID), "second delete is a no-op")
	requireBalance(t, svc, acc.ID, 1000)
}

func TestDeleteTransferRevertsBothSides(t *testing.T) {
	svc := newTestService(t)
	src := createAccount(t, svc, "Source", 1000)
	dst := createAccount(t, svc, "Destination", 0)

	txID, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID:           src.ID,
		Amount:              decimal.NewFromInt(300),
		Type:                model.TxTransfer,
		TransferToAccountID: dst.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Transaction.DeleteTransaction(txID))
	requireBalance(t, svc, src.ID, 1000)
	requireBalance(t, svc, dst.ID, 0)
}

func TestDeleteDanglingTransferRevertsSourceOnly(t *testing.T) {
	svc := newTestService(t)
	src := createAccount(t, svc, "Source", 1000)
	dst := createAccount(t, svc, "Doomed", 0)

	txID, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID:           src.ID,
		Amount:              decimal.NewFromInt(300),
		Type:                model.TxTransfer,
		TransferToAccountID: dst.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Account.DeleteAccount(dst.ID))

	require.NoError(t, svc.Transaction.DeleteTransaction(txID))
	requireBalance(t, svc, src.ID, 1000)
}

func TestListTransactionsFiltersAndSorts(t *testing.T) {
	svc := newTestService(t)
	first := createAccount(t, svc, "First", 1000)
	second := createAccount(t, svc, "Second", 1000)

	mkTx := func(accID string, date int64) {
		t.Helper()
		_, err := svc.Transaction.CreateTransaction(TransactionInput{
			AccountID: accID,
			Amount:    decimal.NewFromInt(10),
			Type:      model.TxExpense,
			Date:      date,
		})
		require.NoError(t, err)
	}

	mkTx(first.ID, 100)
	mkTx(first.ID, 300)
	mkTx(second.ID, 200)

	all, err := svc.Transaction.ListTransactions("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(300), all[0].Date)

	firstOnly, err := svc.Transaction.ListTransactions(first.ID)
	require.NoError(t, err)
	require.Len(t, firstOnly, 2)
	for _, tx := range firstOnly {
		assert.Equal(t, first.ID, tx.AccountID)
	}
}

// Balance must equal seed + sum of stored effects after any sequence
// of successful lifecycle calls.
func TestLedgerInvariantAfterMixedOperations(t *testing.T) {
	svc := newTestService(t)
	a := createAccount(t, svc, "A", 500)
	b := createAccount(t, svc, "B", 0)

	_, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID: a.ID, Amount: decimal.NewFromInt(120), Type: model.TxIncome,
	})
	require.NoError(t, err)

	trID, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID: a.ID, Amount: decimal.NewFromInt(80), Type: model.TxTransfer, TransferToAccountID: b.ID,
	})
	require.NoError(t, err)

	exID, err := svc.Transaction.CreateTransaction(TransactionInput{
		AccountID: b.ID, Amount: decimal.NewFromInt(30), Type: model.TxExpense,
	})
	require.NoError(t, err)

	bigger := decimal.NewFromInt(45)
	_, err = svc.Transaction.UpdateTransaction(exID, model.TransactionChanges{Amount: &bigger})
	require.NoError(t, err)

	require.NoError(t, svc.Transaction.DeleteTransaction(trID))

	for _, accID := range []string{a.ID, b.ID} {
		acc, err := svc.Account.GetAccountByID(accID)
		require.NoError(t, err)

		seed := decimal.NewFromInt(500)
		if accID == b.ID {
			seed = decimal.Zero
		}

		transactions, err := svc.Transaction.ListTransactions("")
		require.NoError(t, err)

		derived := seed
		for _, tx := range transactions {
			derived = derived.Add(effect(tx, accID))
		}

		assert.True(t, acc.Balance.Equal(derived),
			"account %s: cached %s, derived %s", accID, acc.Balance, derived)
	}
}
