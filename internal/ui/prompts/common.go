package prompts

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/budgt/budgt/internal/constants"
)

// PromptDescription prompts for a description text
// Can be used for transactions, accounts, or any other entity
func PromptDescription(message string, required bool) (string, error) {
	var desc string

	input := huh.NewInput().
		Title(message).
		Value(&desc)

	if required {
		input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("description is required")
			}
			return nil
		})
	}

	err := input.Run()
	return desc, err
}

// PromptAmount prompts for an amount with custom validation
func PromptAmount(message string, helpText string, validator func(string) error) (string, error) {
	var amount string

	input := huh.NewInput().
		Title(message).
		Description(helpText).
		Value(&amount)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return amount, err
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()

	return confirm, err
}

// PromptDate prompts for a date in YYYY-MM-DD format, defaulting to
// today when left empty.
func PromptDate(message string) (time.Time, error) {
	today := time.Now().Format(constants.DateFormat)

	var dateStr string
	err := huh.NewInput().
		Title(message).
		Placeholder(today).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			if _, err := time.Parse(constants.DateFormat, strings.TrimSpace(s)); err != nil {
				return fmt.Errorf("date must look like %s", today)
			}
			return nil
		}).
		Value(&dateStr).
		Run()
	if err != nil {
		return time.Time{}, err
	}

	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		dateStr = today
	}

	return time.ParseInLocation(constants.DateFormat, dateStr, time.Local)
}
