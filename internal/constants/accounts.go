package constants

const (
	MaxNameLen = 100
)

const (
	DefaultCurrency = "USD"
)

const (
	// Billing/due days of a credit card statement cycle
	MinCycleDay = 1
	MaxCycleDay = 31
)
