package prompts

import "github.com/charmbracelet/huh"

// PromptInitCurrency runs once on first start to pick the default
// currency for new accounts.
func PromptInitCurrency(currentDefault string) (string, error) {
	selected := currentDefault

	err := huh.NewSelect[string]().
		Title("Choose your default currency").
		Options(
			huh.NewOption("USD", "USD"),
			huh.NewOption("EUR", "EUR"),
			huh.NewOption("GBP", "GBP"),
			huh.NewOption("INR", "INR"),
			huh.NewOption("JPY", "JPY"),
			huh.NewOption("CNY", "CNY"),
		).
		Value(&selected).
		Run()

	return selected, err
}
