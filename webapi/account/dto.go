package account

import "github.com/shopspring/decimal"

// CreateAccountRequest is the body of POST /account.
type CreateAccountRequest struct {
	Label  string `json:"label" validate:"max=255"`
	UserID int    `json:"userId" validate:"required,gt=0"`
}

// TransactionRequest is the body of the deposit and withdraw endpoints.
// Amount accepts a JSON number or a decimal string.
type TransactionRequest struct {
	AccountID int             `json:"accountId" validate:"required,gt=0"`
	Amount    decimal.Decimal `json:"amount"`
}
