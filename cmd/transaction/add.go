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
	"github.com/budgt/budgt/internal/ui/prompts"
	"github.com/budgt/budgt/internal/utils"
)

type addFlags struct {
	Account     string
	Amount      string
	Type        string
	To          string
	Category    string
	Description string
	Tags        []string
	Date        string
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction.",
		Long: `Record an income, expense or transfer. The owning account's balance
is adjusted in the same step; a transfer also credits the destination.

Example: budgt transaction add -a <account-id> -m 42.50 -t EXPENSE --category Groceries`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			hasFlags := cmd.Flags().Changed("account") || cmd.Flags().Changed("amount")
			if hasFlags {
				return runAddFromFlags(svc, flags)
			}
			return runAddInteractive(svc)
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Owning account id")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "m", "", "Amount (positive number)")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "EXPENSE", "Transaction type: INCOME, EXPENSE, TRANSFER")
	cmd.Flags().StringVar(&flags.To, "to", "", "Destination account id (TRANSFER only)")
	cmd.Flags().StringVar(&flags.Category, "category", "", "Category label")
	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "Description")
	cmd.Flags().StringSliceVar(&flags.Tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Economic date, YYYY-MM-DD (defaults to today)")

	return cmd
}

func runAddFromFlags(svc *service.Service, flags *addFlags) error {
	if flags.Account == "" || flags.Amount == "" {
		return fmt.Errorf("both --account and --amount are required in flag mode")
	}

	amount, err := utils.ParseAmount(flags.Amount)
	if err != nil {
		return err
	}

	var date int64
	if flags.Date != "" {
		parsed, err := time.ParseInLocation(constants.DateFormat, flags.Date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", flags.Date)
		}
		date = parsed.UnixMilli()
	}

	id, err := svc.Transaction.CreateTransaction(service.TransactionInput{
		AccountID:           flags.Account,
		Amount:              amount,
		Type:                model.TransactionType(strings.ToUpper(flags.Type)),
		TransferToAccountID: flags.To,
		Category:            flags.Category,
		Description:         flags.Description,
		Tags:                flags.Tags,
		Date:                date,
	})
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction %s recorded\n", id)
	return nil
}

func runAddInteractive(svc *service.Service) error {
	accounts, err := svc.Account.GetAllAccounts()
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		return fmt.Errorf("no accounts yet: create one first with 'budgt account create'")
	}

	txType, err := prompts.PromptTransactionType()
	if err != nil {
		return err
	}

	accountID, err := prompts.PromptAccountSelect("Account:", accounts)
	if err != nil {
		return err
	}

	var transferTo string
	if txType == model.TxTransfer {
		var candidates []*model.Account
		for _, acc := range accounts {
			if acc.ID != accountID {
				candidates = append(candidates, acc)
			}
		}
		if len(candidates) == 0 {
			return fmt.Errorf("a transfer needs a second account")
		}
		transferTo, err = prompts.PromptAccountSelect("Transfer to:", candidates)
		if err != nil {
			return err
		}
	}

	amountStr, err := prompts.PromptTransactionAmount()
	if err != nil {
		return err
	}
	amount, err := utils.ParseAmount(strings.TrimSpace(amountStr))
	if err != nil {
		return err
	}

	category, err := prompts.PromptCategory()
	if err != nil {
		return err
	}

	description, err := prompts.PromptDescription("Description (optional):", false)
	if err != nil {
		return err
	}

	tags, err := prompts.PromptTags()
	if err != nil {
		return err
	}

	date, err := prompts.PromptDate("Date:")
	if err != nil {
		return err
	}

	id, err := svc.Transaction.CreateTransaction(service.TransactionInput{
		AccountID:           accountID,
		Amount:              amount,
		Type:                txType,
		TransferToAccountID: transferTo,
		Category:            category,
		Description:         description,
		Tags:                tags,
		Date:                date.UnixMilli(),
	})
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction %s recorded\n", id)
	return nil
}
