package account

import (
	"fmt"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = fmt.Errorf("account does not exist: %w", domain.ErrNotFound)

	// ErrUserNotFound is returned when the owner of a new account cannot be found.
	ErrUserNotFound = fmt.Errorf("user does not exist: %w", domain.ErrNotFound)

	// ErrAmountNotPositive is returned when a deposit or withdrawal amount is zero or negative.
	ErrAmountNotPositive = fmt.Errorf("%w: amount must be positive", domain.ErrOutOfRange)

	// ErrAmountTooPrecise is returned when an amount has more fractional digits
	// than a balance can store.
	ErrAmountTooPrecise = fmt.Errorf("%w: amount has too many decimal places", domain.ErrOutOfRange)

	// ErrDepositLimitExceeded is returned when a single deposit is above the configured ceiling.
	ErrDepositLimitExceeded = fmt.Errorf("%w: deposit exceeds the maximum amount", domain.ErrOutOfRange)

	// ErrWithdrawPercentageExceeded is returned when a withdrawal takes more than
	// the configured share of the current balance.
	ErrWithdrawPercentageExceeded = fmt.Errorf("%w: withdrawal exceeds the allowed share of the balance", domain.ErrOutOfRange)

	// ErrBelowMinimumBalance is returned when a withdrawal would leave the balance under the floor.
	ErrBelowMinimumBalance = fmt.Errorf("%w: remaining balance would drop below the minimum", domain.ErrOutOfRange)
)

// TableName is the table holding accounts. It also keys the account
// repository inside a unit of work.
const TableName = "accounts"

// Account is a single mutable balance owned by exactly one user.
//
// Invariants:
//   - UserID references an existing user and never changes after creation.
//   - Amount never drops below the configured minimum through a withdrawal.
type Account struct {
	ID     int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Label  string  `gorm:"size:255;not null" json:"label"`
	Amount Balance `gorm:"not null" json:"amount"`
	UserID int     `gorm:"not null;index" json:"userId"`
}

// TableName implements repository.Entity.
func (Account) TableName() string {
	return TableName
}

// New returns an account for the given owner opened at the initial balance.
func New(label string, userID int, initial decimal.Decimal) *Account {
	return &Account{
		Label:  label,
		Amount: NewBalance(initial),
		UserID: userID,
	}
}

// Deposit adds amount to the balance. Callers validate the amount first.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.Amount = NewBalance(a.Amount.Add(amount))
}

// Withdraw subtracts amount from the balance. Callers validate the amount first.
func (a *Account) Withdraw(amount decimal.Decimal) {
	a.Amount = NewBalance(a.Amount.Sub(amount))
}
