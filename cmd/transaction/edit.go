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
	"github.com/budgt/budgt/internal/utils"
)

type editFlags struct {
	Account     string
	Amount      string
	Type        string
	To          string
	Category    string
	Description string
	Tags        []string
	Date        string
}

// NewEditCmd changes fields of an existing transaction. The old
// balance effect is reverted and the new one applied in one step.
func NewEditCmd(svc *service.Service) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:          "edit <transaction-id>",
		Short:        "Edit a transaction; balances are re-derived",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changes := model.TransactionChanges{}

			if cmd.Flags().Changed("account") {
				changes.AccountID = &flags.Account
			}
			if cmd.Flags().Changed("amount") {
				amount, err := utils.ParseAmount(flags.Amount)
				if err != nil {
					return err
				}
				changes.Amount = &amount
			}
			if cmd.Flags().Changed("type") {
				txType := model.TransactionType(strings.ToUpper(flags.Type))
				changes.Type = &txType
			}
			if cmd.Flags().Changed("to") {
				changes.TransferToAccountID = &flags.To
			}
			if cmd.Flags().Changed("category") {
				changes.Category = &flags.Category
			}
			if cmd.Flags().Changed("description") {
				changes.Description = &flags.Description
			}
			if cmd.Flags().Changed("tag") {
				changes.Tags = &flags.Tags
			}
			if cmd.Flags().Changed("date") {
				parsed, err := time.ParseInLocation(constants.DateFormat, flags.Date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", flags.Date)
				}
				date := parsed.UnixMilli()
				changes.Date = &date
			}

			if changes == (model.TransactionChanges{}) {
				return fmt.Errorf("nothing to change: pass at least one field flag")
			}

			tx, err := svc.Transaction.UpdateTransaction(args[0], changes)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Transaction %s updated\n", tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "New owning account id")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "m", "", "New amount")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "New type: INCOME, EXPENSE, TRANSFER")
	cmd.Flags().StringVar(&flags.To, "to", "", "New destination account id (TRANSFER only)")
	cmd.Flags().StringVar(&flags.Category, "category", "", "New category")
	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "New description")
	cmd.Flags().StringSliceVar(&flags.Tags, "tag", nil, "Replacement tag list (repeatable)")
	cmd.Flags().StringVar(&flags.Date, "date", "", "New economic date, YYYY-MM-DD")

	return cmd
}
