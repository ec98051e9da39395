package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budgt/budgt/internal/ids"
	"github.com/budgt/budgt/internal/model"
)

const accountColumns = "id, name, type, balance, currency, cc_limit, cc_billing_day, cc_due_day, created_at, updated_at"

func (s *Store) CreateAccount(acc *model.Account) (string, error) {
	newID := ids.New()

	_, err := s.db.Exec(`
        INSERT INTO accounts (id, name, type, balance, currency, cc_limit, cc_billing_day, cc_due_day, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
    `, append([]any{newID}, accountValues(acc)...)...)
	if err != nil {
		return "", fmt.Errorf("failed to insert account : %w", err)
	}

	return newID, nil
}

func (s *Store) GetAccountByID(id string) (*model.Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query account %s: %w", id, err)
	}

	return acc, nil
}

func (s *Store) GetAllAccounts() ([]*model.Account, error) {
	rows, err := s.db.Query("SELECT " + accountColumns + " FROM accounts ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var accounts []*model.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (s *Store) UpdateAccount(acc *model.Account) error {
	result, err := s.db.Exec(`
        UPDATE accounts
        SET name = ?, type = ?, balance = ?, currency = ?, cc_limit = ?, cc_billing_day = ?, cc_due_day = ?, created_at = ?, updated_at = ?
        WHERE id = ?
    `, append(accountValues(acc), acc.ID)...)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	return requireAffected(result, acc.ID)
}

func (s *Store) SetAccountBalance(id string, balance decimal.Decimal) error {
	result, err := s.db.Exec(`
        UPDATE accounts
        SET balance = ?
        WHERE id = ?
    `, balance.String(), id)
	if err != nil {
		return fmt.Errorf("failed to update account balance: %w", err)
	}

	return requireAffected(result, id)
}

func (s *Store) DeleteAccount(id string) error {
	result, err := s.db.Exec("DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return requireAffected(result, id)
}

func (s *Store) UpsertAccount(acc *model.Account) error {
	_, err := s.db.Exec(`
        INSERT OR REPLACE INTO accounts (id, name, type, balance, currency, cc_limit, cc_billing_day, cc_due_day, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
    `, append([]any{acc.ID}, accountValues(acc)...)...)
	if err != nil {
		return fmt.Errorf("failed to upsert account %s: %w", acc.ID, err)
	}
	return nil
}

// accountValues flattens every non-id column, in schema order. The
// credit card columns are NULL for non-card accounts.
func accountValues(acc *model.Account) []any {
	vals := []any{acc.Name, string(acc.Type), acc.Balance.String(), acc.Currency}
	if acc.CreditCard != nil {
		vals = append(vals, acc.CreditCard.Limit.String(), acc.CreditCard.BillingDay, acc.CreditCard.DueDay)
	} else {
		vals = append(vals, nil, nil, nil)
	}
	return append(vals, acc.CreatedAt, acc.UpdatedAt)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	acc := &model.Account{}

	var accType string
	var balance string
	var ccLimit sql.NullString
	var ccBillingDay, ccDueDay sql.NullInt64

	err := row.Scan(
		&acc.ID, &acc.Name, &accType,
		&balance, &acc.Currency,
		&ccLimit, &ccBillingDay, &ccDueDay,
		&acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	acc.Type = model.AccountType(accType)

	acc.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("invalid balance %q for account %s: %w", balance, acc.ID, err)
	}

	if ccLimit.Valid {
		limit, err := decimal.NewFromString(ccLimit.String)
		if err != nil {
			return nil, fmt.Errorf("invalid credit limit %q for account %s: %w", ccLimit.String, acc.ID, err)
		}
		acc.CreditCard = &model.CreditCardDetails{
			Limit:      limit,
			BillingDay: int(ccBillingDay.Int64),
			DueDay:     int(ccDueDay.Int64),
		}
	}

	return acc, nil
}

func requireAffected(result sql.Result, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("record %s: %w", id, ErrNotFound)
	}

	return nil
}
