package account

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/budgt/budgt/internal/model"
	"github.com/budgt/budgt/internal/service"
)

type editFlags struct {
	Name     string
	Type     string
	Currency string
}

func NewEditCmd(svc *service.Service) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:          "edit <account-id>",
		Short:        "Edit an account's name, type or currency",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changes := model.AccountChanges{}
			if cmd.Flags().Changed("name") {
				changes.Name = &flags.Name
			}
			if cmd.Flags().Changed("type") {
				accType := model.AccountType(strings.ToUpper(flags.Type))
				changes.Type = &accType
			}
			if cmd.Flags().Changed("currency") {
				currency := strings.ToUpper(flags.Currency)
				changes.Currency = &currency
			}

			if changes == (model.AccountChanges{}) {
				return fmt.Errorf("nothing to change: pass at least one of --name, --type, --currency")
			}

			acc, err := svc.Account.UpdateAccount(args[0], changes)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Account '%s' updated\n", acc.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "New account name")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "New account type")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "New currency code")

	return cmd
}
