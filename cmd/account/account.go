package account

import (
	"github.com/spf13/cobra"

	"github.com/budgt/budgt/internal/service"
)

func NewAccountCmd(svc *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create, edit, delete accounts and list them with their balances.",
		Long:  `Create, edit, delete accounts and list them with their balances.`,
	}

	accountCmd.AddCommand(NewCreateCmd(svc))
	accountCmd.AddCommand(NewListCmd(svc))
	accountCmd.AddCommand(NewEditCmd(svc))
	accountCmd.AddCommand(NewDeleteCmd(svc))

	return accountCmd
}
