package transaction

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/budgt/budgt/internal/service"
)

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "delete <transaction-id>",
		Short:        "Delete a transaction and undo its balance effect",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Transaction.DeleteTransaction(args[0]); err != nil {
				return err
			}

			pterm.Success.Printf("Transaction %s deleted\n", args[0])
			return nil
		},
	}

	return cmd
}
