package dto

import (
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/shopspring/decimal"
)

// AccountView is the read-side projection of an account returned by the
// account and user services.
type AccountView struct {
	ID     int             `json:"id"`     // Store-assigned identity
	Label  string          `json:"label"`  // Free-form label
	Amount decimal.Decimal `json:"amount"` // Current balance
}

// NewAccountView projects an account entity.
func NewAccountView(a *account.Account) *AccountView {
	if a == nil {
		return nil
	}
	return &AccountView{
		ID:     a.ID,
		Label:  a.Label,
		Amount: a.Amount.Decimal,
	}
}

// AccountViews projects a list of accounts. The result is never nil.
func AccountViews(accounts []account.Account) []AccountView {
	views := make([]AccountView, 0, len(accounts))
	for i := range accounts {
		views = append(views, *NewAccountView(&accounts[i]))
	}
	return views
}
