package account

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/budgt/budgt/internal/model"
	"github.com/budgt/budgt/internal/service"
	"github.com/budgt/budgt/internal/ui"
	"github.com/budgt/budgt/internal/ui/prompts"
	"github.com/budgt/budgt/internal/utils"
)

type createFlags struct {
	Name     string
	Type     string
	Balance  string
	Currency string
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account.",
		Long: `Create a new account with a starting balance. From that point on
the balance only changes through transactions.

Example: budgt account create -n "Main Checking" -t CHECKING -b 1500.00`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			hasFlags := cmd.Flags().Changed("name") || cmd.Flags().Changed("type")
			if hasFlags {
				return runCreateFromFlags(svc, flags)
			}
			return runCreateInteractive(svc)
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account name")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Account type: SAVINGS, CHECKING, CREDIT_CARD, WALLET, CASH")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "0", "Starting balance")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency code (defaults to config default)")

	return cmd
}

func runCreateFromFlags(svc *service.Service, flags *createFlags) error {
	if flags.Name == "" || flags.Type == "" {
		return fmt.Errorf("both --name and --type are required in flag mode")
	}

	balance, err := utils.ParseAmount(flags.Balance)
	if err != nil {
		return err
	}

	input := service.AccountInput{
		Name:     flags.Name,
		Type:     model.AccountType(strings.ToUpper(flags.Type)),
		Balance:  balance,
		Currency: strings.ToUpper(flags.Currency),
	}

	acc, err := svc.Account.CreateAccount(input)
	if err != nil {
		return err
	}

	displaySuccess(acc)
	return nil
}

func runCreateInteractive(svc *service.Service) error {
	name, err := prompts.PromptAccountName()
	if err != nil {
		return err
	}

	accType, err := prompts.PromptAccountType()
	if err != nil {
		return err
	}

	var creditCard *model.CreditCardDetails
	if accType == model.AccountCreditCard {
		creditCard, err = prompts.PromptCreditCardDetails()
		if err != nil {
			return err
		}
	}

	currency, err := prompts.PromptCurrency(svc.Account.DefaultCurrency())
	if err != nil {
		return err
	}

	balanceStr, err := prompts.PromptInitialBalance()
	if err != nil {
		return err
	}

	balance := decimal.Zero
	if balanceStr != "" {
		balance, err = utils.ParseAmount(balanceStr)
		if err != nil {
			return err
		}
	}

	confirm, err := prompts.PromptConfirm("Proceed with account creation?", true)
	if err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("account creation cancelled")
	}

	acc, err := svc.Account.CreateAccount(service.AccountInput{
		Name:       name,
		Type:       accType,
		Balance:    balance,
		Currency:   currency,
		CreditCard: creditCard,
	})
	if err != nil {
		return err
	}

	displaySuccess(acc)
	return nil
}

func displaySuccess(acc *model.Account) {
	ui.Separator()
	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), acc.ID},
		{pterm.Blue("Name"), acc.Name},
		{pterm.Blue("Type"), string(acc.Type)},
		{pterm.Blue("Balance"), utils.FormatAmountWithCurrency(acc.Balance, acc.Currency)},
	}
	pterm.DefaultTable.WithData(tableData).Render()
	pterm.Success.Println("Account created successfully!")
}
