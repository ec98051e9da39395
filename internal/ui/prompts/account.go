package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/budgt/budgt/internal/constants"
	"github.com/budgt/budgt/internal/model"
	"github.com/budgt/budgt/internal/utils"
	"github.com/budgt/budgt/internal/validation"
)

func PromptAccountName() (string, error) {
	var name string

	err := huh.NewInput().
		Title("Account name:").
		Validate(validation.ValidateAccountName).
		Value(&name).
		Run()

	return strings.TrimSpace(name), err
}

func PromptAccountType() (model.AccountType, error) {
	var opts []huh.Option[string]
	for _, t := range model.AccountTypes {
		opts = append(opts, huh.NewOption(string(t), string(t)))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title("Account type:").
		Options(opts...).
		Value(&selected).
		Run()

	return model.AccountType(selected), err
}

func PromptCurrency(defaultCurrency string) (string, error) {
	var currency string

	err := huh.NewInput().
		Title("Currency:").
		Placeholder(defaultCurrency).
		Validate(validation.ValidateCurrency).
		Value(&currency).
		Run()
	if err != nil {
		return "", err
	}

	currency = strings.TrimSpace(strings.ToUpper(currency))
	if currency == "" {
		currency = defaultCurrency
	}

	return currency, nil
}

func PromptInitialBalance() (string, error) {
	var balance string

	err := huh.NewInput().
		Title("Starting balance:").
		Placeholder("0").
		Validate(validation.ValidateBalanceInput).
		Value(&balance).
		Run()

	return strings.TrimSpace(balance), err
}

// PromptCreditCardDetails collects the credit card block for
// CREDIT_CARD accounts.
func PromptCreditCardDetails() (*model.CreditCardDetails, error) {
	limitStr, err := PromptAmount("Credit limit:", "", validation.ValidateBalanceInput)
	if err != nil {
		return nil, err
	}

	billingDay, err := promptCycleDay("Billing day (1-31):")
	if err != nil {
		return nil, err
	}

	dueDay, err := promptCycleDay("Due day (1-31):")
	if err != nil {
		return nil, err
	}

	limit, err := utils.ParseAmount(strings.TrimSpace(limitStr))
	if err != nil {
		return nil, err
	}

	return &model.CreditCardDetails{
		Limit:      limit,
		BillingDay: billingDay,
		DueDay:     dueDay,
	}, nil
}

func promptCycleDay(message string) (int, error) {
	var dayStr string

	err := huh.NewInput().
		Title(message).
		Validate(func(s string) error {
			day, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("must be a number")
			}
			if day < constants.MinCycleDay || day > constants.MaxCycleDay {
				return fmt.Errorf("must be between %d and %d", constants.MinCycleDay, constants.MaxCycleDay)
			}
			return nil
		}).
		Value(&dayStr).
		Run()
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(dayStr))
}

// PromptAccountSelect lets the user pick one of the given accounts and
// returns its id.
func PromptAccountSelect(message string, accounts []*model.Account) (string, error) {
	var opts []huh.Option[string]
	for _, acc := range accounts {
		label := fmt.Sprintf("%s (%s)", acc.Name, utils.FormatAmountWithCurrency(acc.Balance, acc.Currency))
		opts = append(opts, huh.NewOption(label, acc.ID))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}
