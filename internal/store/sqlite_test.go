package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgt/budgt/internal/model"
	"github.com/budgt/budgt/migrations"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "budgt.db"), migrations.FS)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func testAccount(name string) *model.Account {
	return &model.Account{
		Name:      name,
		Type:      model.AccountChecking,
		Balance:   decimal.NewFromInt(100),
		Currency:  "USD",
		CreatedAt: 1700000000000,
		UpdatedAt: 1700000000000,
	}
}

func testTransaction(accountID string, date int64) *model.Transaction {
	return &model.Transaction{
		AccountID: accountID,
		Amount:    decimal.NewFromInt(25),
		Type:      model.TxExpense,
		Category:  "Groceries",
		Tags:      []string{"food"},
		Date:      date,
		CreatedAt: 1700000000000,
	}
}

func TestAccountRoundTrip(t *testing.T) {
	s := newTestStore(t)

	acc := testAccount("Main Checking")
	id, err := s.CreateAccount(acc)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.GetAccountByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Main Checking", got.Name)
	assert.Equal(t, model.AccountChecking, got.Type)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(100)))
	assert.Nil(t, got.CreditCard)
}

func TestAccountCreditCardDetails(t *testing.T) {
	s := newTestStore(t)

	acc := testAccount("Visa")
	acc.Type = model.AccountCreditCard
	acc.CreditCard = &model.CreditCardDetails{
		Limit:      decimal.NewFromInt(5000),
		BillingDay: 5,
		DueDay:     25,
	}

	id, err := s.CreateAccount(acc)
	require.NoError(t, err)

	got, err := s.GetAccountByID(id)
	require.NoError(t, err)
	require.NotNil(t, got.CreditCard)
	assert.True(t, got.CreditCard.Limit.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, 5, got.CreditCard.BillingDay)
	assert.Equal(t, 25, got.CreditCard.DueDay)
}

func TestGetAccountNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetAccountByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetAccountBalanceNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.SetAccountBalance("missing", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAccountNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.DeleteAccount("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransactionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	accID, err := s.CreateAccount(testAccount("Wallet"))
	require.NoError(t, err)

	txID, err := s.CreateTransaction(testTransaction(accID, 1700000001000))
	require.NoError(t, err)

	got, err := s.GetTransactionByID(txID)
	require.NoError(t, err)
	assert.Equal(t, accID, got.AccountID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, model.TxExpense, got.Type)
	assert.Equal(t, []string{"food"}, got.Tags)
}

func TestTransactionsOrderedByDateDesc(t *testing.T) {
	s := newTestStore(t)

	accID, err := s.CreateAccount(testAccount("Wallet"))
	require.NoError(t, err)
	otherID, err := s.CreateAccount(testAccount("Savings"))
	require.NoError(t, err)

	_, err = s.CreateTransaction(testTransaction(accID, 100))
	require.NoError(t, err)
	_, err = s.CreateTransaction(testTransaction(accID, 300))
	require.NoError(t, err)
	_, err = s.CreateTransaction(testTransaction(otherID, 200))
	require.NoError(t, err)

	all, err := s.GetAllTransactions()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(300), all[0].Date)
	assert.Equal(t, int64(200), all[1].Date)
	assert.Equal(t, int64(100), all[2].Date)

	mine, err := s.GetTransactionsByAccount(accID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, int64(300), mine[0].Date)
	assert.Equal(t, int64(100), mine[1].Date)
}

func TestDeleteTransactionsByAccount(t *testing.T) {
	s := newTestStore(t)

	accID, err := s.CreateAccount(testAccount("Wallet"))
	require.NoError(t, err)
	otherID, err := s.CreateAccount(testAccount("Savings"))
	require.NoError(t, err)

	_, err = s.CreateTransaction(testTransaction(accID, 100))
	require.NoError(t, err)
	keepID, err := s.CreateTransaction(testTransaction(otherID, 200))
	require.NoError(t, err)

	require.NoError(t, s.DeleteTransactionsByAccount(accID))

	all, err := s.GetAllTransactions()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keepID, all[0].ID)
}

func TestExecTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)

	accID, err := s.CreateAccount(testAccount("Wallet"))
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.ExecTx(func(repo Repository) error {
		if err := repo.SetAccountBalance(accID, decimal.NewFromInt(999)); err != nil {
			return err
		}
		if _, err := repo.CreateTransaction(testTransaction(accID, 100)); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	acc, err := s.GetAccountByID(accID)
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.NewFromInt(100)), "balance write must be rolled back")

	all, err := s.GetAllTransactions()
	require.NoError(t, err)
	assert.Empty(t, all, "transaction insert must be rolled back")
}

func TestExecTxNestedJoinsOuterUnit(t *testing.T) {
	s := newTestStore(t)

	accID, err := s.CreateAccount(testAccount("Wallet"))
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.ExecTx(func(repo Repository) error {
		return repo.ExecTx(func(inner Repository) error {
			if err := inner.SetAccountBalance(accID, decimal.NewFromInt(999)); err != nil {
				return err
			}
			return boom
		})
	})
	require.ErrorIs(t, err, boom)

	acc, err := s.GetAccountByID(accID)
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.NewFromInt(100)), "nested unit must roll back with the outer one")
}

func TestUpsertAccountReplacesByID(t *testing.T) {
	s := newTestStore(t)

	accID, err := s.CreateAccount(testAccount("Wallet"))
	require.NoError(t, err)

	replacement := testAccount("Renamed Wallet")
	replacement.ID = accID
	replacement.Balance = decimal.NewFromInt(777)
	require.NoError(t, s.UpsertAccount(replacement))

	got, err := s.GetAccountByID(accID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Wallet", got.Name)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(777)))

	accounts, err := s.GetAllAccounts()
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestTagRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateTag(&model.Tag{Name: "food", Color: "#ff0000"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = s.CreateTag(&model.Tag{Name: "food", Color: "#00ff00"})
	assert.ErrorIs(t, err, ErrTagExists)

	tags, err := s.GetAllTags()
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "food", tags[0].Name)
}
