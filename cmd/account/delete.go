package account

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/budgt/budgt/internal/service"
	"github.com/budgt/budgt/internal/ui/prompts"
)

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:          "delete <account-id>",
		Short:        "Delete an account and every transaction it owns",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := svc.Account.GetAccountByID(args[0])
			if err != nil {
				return err
			}

			if !force {
				confirm, err := prompts.PromptConfirm(
					fmt.Sprintf("Delete account '%s' and all of its transactions?", acc.Name), false)
				if err != nil {
					return err
				}
				if !confirm {
					return fmt.Errorf("account deletion cancelled")
				}
			}

			if err := svc.Account.DeleteAccount(acc.ID); err != nil {
				return err
			}

			pterm.Success.Printf("Account '%s' deleted\n", acc.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
