// Package backup moves the full record set in and out of a single
// portable JSON document. It works on raw records and deliberately
// bypasses the ledger engine: an imported document's account balances
// are trusted as authoritative, even when they disagree with the sum
// of its transactions.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/budgt/budgt/internal/constants"
	"github.com/budgt/budgt/internal/model"
	"github.com/budgt/budgt/internal/store"
)

// Document is the backup format: three named collections with full
// records, matching the on-disk schemas verbatim.
type Document struct {
	Accounts     []*model.Account     `json:"accounts"`
	Transactions []*model.Transaction `json:"transactions"`
	Tags         []*model.Tag         `json:"tags"`
}

type Adapter struct {
	repo store.Repository
}

func NewAdapter(repo store.Repository) *Adapter {
	return &Adapter{repo: repo}
}

// Filename is the conventional backup file name for the given day,
// e.g. budgt-backup-2026-08-30.json.
func Filename(t time.Time) string {
	return fmt.Sprintf("%s-%s.json", constants.BackupFilePrefix, t.Format(constants.DateFormat))
}

// Export writes every account, transaction and tag to w as one
// indented JSON document. No recomputation happens on the way out.
func (a *Adapter) Export(w io.Writer) error {
	accounts, err := a.repo.GetAllAccounts()
	if err != nil {
		return fmt.Errorf("failed to read accounts: %w", err)
	}
	transactions, err := a.repo.GetAllTransactions()
	if err != nil {
		return fmt.Errorf("failed to read transactions: %w", err)
	}
	tags, err := a.repo.GetAllTags()
	if err != nil {
		return fmt.Errorf("failed to read tags: %w", err)
	}

	doc := Document{
		Accounts:     accounts,
		Transactions: transactions,
		Tags:         tags,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode backup document: %w", err)
	}
	return nil
}

// Import upserts every record from the document by id, in one unit of
// work. Balances arrive as written; nothing is validated or repaired
// against the imported transactions.
func (a *Adapter) Import(r io.Reader) error {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("failed to parse backup document: %w", err)
	}

	return a.repo.ExecTx(func(repo store.Repository) error {
		for _, acc := range doc.Accounts {
			if err := repo.UpsertAccount(acc); err != nil {
				return err
			}
		}
		for _, tx := range doc.Transactions {
			if err := repo.UpsertTransaction(tx); err != nil {
				return err
			}
		}
		for _, tag := range doc.Tags {
			if err := repo.UpsertTag(tag); err != nil {
				return err
			}
		}
		return nil
	})
}
