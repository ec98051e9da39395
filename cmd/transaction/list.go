package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/budgt/budgt/internal/constants"
	"github.com/budgt/budgt/internal/model"
	"github.com/budgt/budgt/internal/service"
	"github.com/budgt/budgt/internal/ui"
	"github.com/budgt/budgt/internal/utils"
)

func NewListCmd(svc *service.Service) *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			transactions, err := svc.Transaction.ListTransactions(accountID)
			if err != nil {
				return fmt.Errorf("failed to get transactions: %w", err)
			}

			displayTransactionList(transactions)
			return nil
		},
	}

	cmd.Flags().StringVarP(&accountID, "account", "a", "", "Only transactions owned by this account id")

	return cmd
}

func displayTransactionList(transactions []*model.Transaction) {
	headers := []string{"ID", "Date", "Type", "Amount", "Category", "Description"}
	tableData := pterm.TableData{headers}

	for _, tx := range transactions {
		date := time.UnixMilli(tx.Date).Format(constants.DateFormat)

		amount := utils.FormatAmount(tx.Amount)
		switch tx.Type {
		case model.TxIncome:
			amount = pterm.Green("+" + amount)
		case model.TxExpense:
			amount = pterm.Red("-" + amount)
		case model.TxTransfer:
			amount = pterm.Yellow("-" + amount)
		}

		description := tx.Description
		if len(tx.Tags) > 0 {
			description = strings.TrimSpace(description + " [" + strings.Join(tx.Tags, ", ") + "]")
		}

		tableData = append(tableData, []string{tx.ID, date, string(tx.Type), amount, tx.Category, description})
	}

	ui.PrintL1Title("Transactions")
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	pterm.Info.Printf("Total: %d transactions\n", len(transactions))
}
