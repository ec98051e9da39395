package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budgt/budgt/internal/ids"
	"github.com/budgt/budgt/internal/model"
)

const transactionColumns = "id, account_id, amount, type, transfer_to_account_id, category, description, tags, date, created_at"

func (s *Store) CreateTransaction(tx *model.Transaction) (string, error) {
	newID := ids.New()

	vals, err := transactionValues(tx)
	if err != nil {
		return "", err
	}

	_, err = s.db.Exec(`
        INSERT INTO transactions (id, account_id, amount, type, transfer_to_account_id, category, description, tags, date, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
    `, append([]any{newID}, vals...)...)
	if err != nil {
		return "", fmt.Errorf("failed to insert transaction : %w", err)
	}

	return newID, nil
}

func (s *Store) GetTransactionByID(id string) (*model.Transaction, error) {
	row := s.db.QueryRow("SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction %s: %w", id, err)
	}

	return tx, nil
}

// GetAllTransactions returns every transaction, newest economic date
// first. The order of equal dates is not guaranteed.
func (s *Store) GetAllTransactions() ([]*model.Transaction, error) {
	rows, err := s.db.Query("SELECT " + transactionColumns + " FROM transactions ORDER BY date DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTransactions(rows)
}

// GetTransactionsByAccount returns the transactions owned by the given
// account (as accountId, not as transfer destination), newest economic
// date first.
func (s *Store) GetTransactionsByAccount(accountID string) ([]*model.Transaction, error) {
	rows, err := s.db.Query(`
        SELECT `+transactionColumns+`
        FROM transactions
        WHERE account_id = ?
        ORDER BY date DESC
    `, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTransactions(rows)
}

func (s *Store) UpdateTransaction(tx *model.Transaction) error {
	vals, err := transactionValues(tx)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(`
        UPDATE transactions
        SET account_id = ?, amount = ?, type = ?, transfer_to_account_id = ?, category = ?, description = ?, tags = ?, date = ?, created_at = ?
        WHERE id = ?
    `, append(vals, tx.ID)...)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return requireAffected(result, tx.ID)
}

func (s *Store) DeleteTransaction(id string) error {
	result, err := s.db.Exec("DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return requireAffected(result, id)
}

func (s *Store) DeleteTransactionsByAccount(accountID string) error {
	_, err := s.db.Exec("DELETE FROM transactions WHERE account_id = ?", accountID)
	if err != nil {
		return fmt.Errorf("failed to delete transactions of account %s: %w", accountID, err)
	}
	return nil
}

func (s *Store) UpsertTransaction(tx *model.Transaction) error {
	vals, err := transactionValues(tx)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
        INSERT OR REPLACE INTO transactions (id, account_id, amount, type, transfer_to_account_id, category, description, tags, date, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
    `, append([]any{tx.ID}, vals...)...)
	if err != nil {
		return fmt.Errorf("failed to upsert transaction %s: %w", tx.ID, err)
	}
	return nil
}

// transactionValues flattens every non-id column, in schema order.
// Tags are stored as a JSON array.
func transactionValues(tx *model.Transaction) ([]any, error) {
	tags := tx.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tags: %w", err)
	}

	return []any{
		tx.AccountID, tx.Amount.String(), string(tx.Type), tx.TransferToAccountID,
		tx.Category, tx.Description, string(tagsJSON), tx.Date, tx.CreatedAt,
	}, nil
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	tx := &model.Transaction{}

	var txType string
	var amount string
	var tagsJSON string

	err := row.Scan(
		&tx.ID, &tx.AccountID, &amount, &txType,
		&tx.TransferToAccountID, &tx.Category, &tx.Description,
		&tagsJSON, &tx.Date, &tx.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	tx.Type = model.TransactionType(txType)

	tx.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q for transaction %s: %w", amount, tx.ID, err)
	}

	if err := json.Unmarshal([]byte(tagsJSON), &tx.Tags); err != nil {
		return nil, fmt.Errorf("invalid tags for transaction %s: %w", tx.ID, err)
	}

	return tx, nil
}

func scanTransactions(rows *sql.Rows) ([]*model.Transaction, error) {
	var transactions []*model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}
