package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionWithChanges(t *testing.T) {
	orig := &Transaction{
		ID:        "tx-1",
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(100),
		Type:      TxExpense,
		Category:  "Food",
		Tags:      []string{"lunch"},
		Date:      1000,
	}

	newAmount := decimal.NewFromInt(250)
	newTags := []string{"dinner", "work"}
	merged := orig.WithChanges(TransactionChanges{
		Amount: &newAmount,
		Tags:   &newTags,
	})

	assert.Equal(t, "tx-1", merged.ID, "id survives the merge")
	assert.True(t, merged.Amount.Equal(newAmount))
	assert.Equal(t, "Food", merged.Category, "nil change inherits the old value")
	assert.Equal(t, []string{"dinner", "work"}, merged.Tags)

	// The receiver and the tag slice it was merged from stay untouched.
	assert.True(t, orig.Amount.Equal(decimal.NewFromInt(100)))
	newTags[0] = "mutated"
	assert.Equal(t, []string{"dinner", "work"}, merged.Tags)
}

func TestAccountWithChangesDropsCardDetails(t *testing.T) {
	card := &Account{
		ID:   "acc-1",
		Name: "Visa",
		Type: AccountCreditCard,
		CreditCard: &CreditCardDetails{
			Limit:      decimal.NewFromInt(5000),
			BillingDay: 5,
			DueDay:     20,
		},
	}

	checking := AccountChecking
	merged := card.WithChanges(AccountChanges{Type: &checking})

	assert.Nil(t, merged.CreditCard, "details belong to CREDIT_CARD accounts only")
	assert.NotNil(t, card.CreditCard, "receiver is untouched")
}

func TestValidTypes(t *testing.T) {
	assert.True(t, ValidAccountType(AccountWallet))
	assert.False(t, ValidAccountType("PIGGY_BANK"))
	assert.True(t, ValidTransactionType(TxTransfer))
	assert.False(t, ValidTransactionType("REFUND"))
}
