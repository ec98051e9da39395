package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/budgt/budgt/internal/model"
	"github.com/budgt/budgt/internal/validation"
)

func PromptTransactionType() (model.TransactionType, error) {
	var opts []huh.Option[string]
	for _, t := range model.TransactionTypes {
		opts = append(opts, huh.NewOption(string(t), string(t)))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title("Transaction type:").
		Options(opts...).
		Value(&selected).
		Run()

	return model.TransactionType(selected), err
}

func PromptTransactionAmount() (string, error) {
	return PromptAmount("Amount:", "Positive number; the type decides the direction", validation.ValidateAmountInput)
}

func PromptCategory() (string, error) {
	var category string

	err := huh.NewInput().
		Title("Category:").
		Placeholder("e.g. Groceries").
		Value(&category).
		Run()

	return strings.TrimSpace(category), err
}

// PromptTags reads a comma separated tag list.
func PromptTags() ([]string, error) {
	var raw string

	err := huh.NewInput().
		Title("Tags (comma separated, optional):").
		Value(&raw).
		Run()
	if err != nil {
		return nil, err
	}

	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}
