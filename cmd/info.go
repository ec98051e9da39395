package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/budgt/budgt/internal/service"
	"github.com/budgt/budgt/internal/utils"
)

// NewInfoCmd shows the dashboard overview: total balance across all
// accounts plus income and expense sums.
func NewInfoCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show total balance and income/expense overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := svc.Account.TotalBalance()
			if err != nil {
				return err
			}

			income, expense, err := svc.Transaction.Totals()
			if err != nil {
				return err
			}

			tableData := pterm.TableData{
				{pterm.Blue("Total Balance"), utils.FormatAmount(total)},
				{pterm.Green("Total Income"), utils.FormatAmount(income)},
				{pterm.Red("Total Expenses"), utils.FormatAmount(expense)},
			}

			pterm.DefaultSection.Printf("Overview")
			pterm.DefaultTable.WithData(tableData).Render()
			return nil
		},
	}

	return cmd
}
