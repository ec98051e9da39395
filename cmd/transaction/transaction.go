package transaction

import (
	"github.com/spf13/cobra"

	"github.com/budgt/budgt/internal/service"
)

func NewTransactionCmd(svc *service.Service) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Record, edit, delete and list transactions.",
		Long:    `Record, edit, delete and list transactions. Account balances follow automatically.`,
	}

	transactionCmd.AddCommand(NewAddCmd(svc))
	transactionCmd.AddCommand(NewListCmd(svc))
	transactionCmd.AddCommand(NewEditCmd(svc))
	transactionCmd.AddCommand(NewDeleteCmd(svc))

	return transactionCmd
}
