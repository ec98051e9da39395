package account

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/budgt/budgt/internal/model"
	"github.com/budgt/budgt/internal/service"
	"github.com/budgt/budgt/internal/ui"
	"github.com/budgt/budgt/internal/utils"
)

func NewListCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts with their balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := svc.Account.GetAllAccounts()
			if err != nil {
				return fmt.Errorf("failed to get accounts: %w", err)
			}

			displayAccountsList(accounts)
			return nil
		},
	}

	return cmd
}

func displayAccountsList(accounts []*model.Account) {
	headers := []string{"ID", "Name", "Type", "Balance"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		balance := utils.FormatAmountWithCurrency(acc.Balance, acc.Currency)
		if acc.Balance.IsNegative() {
			balance = pterm.Red(balance)
		} else {
			balance = pterm.Green(balance)
		}

		tableData = append(tableData, []string{acc.ID, acc.Name, string(acc.Type), balance})
	}

	ui.PrintL1Title("Accounts")
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
}
