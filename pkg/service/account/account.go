// Package account provides the business logic for opening, funding,
// debiting and closing accounts. Every operation runs against the unit of
// work it was constructed with and commits at most once.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/user"
	"github.com/amirasaad/banking/pkg/dto"
	"github.com/amirasaad/banking/pkg/lock"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Limits are the bounds every deposit and withdrawal is checked against.
type Limits struct {
	MaxDepositAmount      decimal.Decimal
	MinAccountAmount      decimal.Decimal
	MaxWithdrawPercentage int
}

// LimitsFromConfig copies the limits out of the loaded configuration.
func LimitsFromConfig(cfg *config.Account) Limits {
	return Limits{
		MaxDepositAmount:      cfg.MaxDepositAmount,
		MinAccountAmount:      cfg.MinAccountAmount,
		MaxWithdrawPercentage: cfg.MaxWithdrawPercentage,
	}
}

// Option configures a Service.
type Option func(*Service)

// WithLocker serializes Deposit, Withdraw and DeleteAccount per account.
func WithLocker(l lock.Locker) Option {
	return func(s *Service) {
		s.locker = l
	}
}

// Service provides account operations on top of a unit of work.
type Service struct {
	uow    repository.UnitOfWork
	limits Limits
	locker lock.Locker
	logger *slog.Logger
}

// New creates a Service. Without WithLocker no locking takes place.
func New(
	uow repository.UnitOfWork,
	limits Limits,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		uow:    uow,
		limits: limits,
		locker: lock.Noop{},
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateAccount opens an account for userID at the minimum balance.
func (s *Service) CreateAccount(
	ctx context.Context,
	label string,
	userID int,
) (*dto.AccountView, error) {
	logger := s.logger.With("op", "create_account", "user_id", userID)

	users, err := repository.GetRepository[user.User, int](s.uow)
	if err != nil {
		return nil, err
	}
	if _, err := users.Get(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Warn("owner not found")
			return nil, account.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	accounts, err := repository.GetRepository[account.Account, int](s.uow)
	if err != nil {
		return nil, err
	}
	acc, err := accounts.Insert(account.New(label, userID, s.limits.MinAccountAmount))
	if err != nil {
		return nil, err
	}
	if err := s.uow.SaveChanges(ctx); err != nil {
		logger.Error("create account failed", "error", err)
		return nil, err
	}

	logger.Info("account created", "account_id", acc.ID)
	return dto.NewAccountView(acc), nil
}

// Deposit adds amount to the account balance.
func (s *Service) Deposit(
	ctx context.Context,
	accountID int,
	amount decimal.Decimal,
) (*dto.AccountView, error) {
	logger := s.logger.With("op", "deposit", "account_id", accountID, "amount", amount.String())

	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	if amount.GreaterThan(s.limits.MaxDepositAmount) {
		logger.Warn("deposit rejected", "max", s.limits.MaxDepositAmount.String())
		return nil, fmt.Errorf("%w: max %s", account.ErrDepositLimitExceeded, s.limits.MaxDepositAmount)
	}

	unlock, err := s.locker.Lock(ctx, lock.AccountKey(accountID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	accounts, acc, err := s.lookup(ctx, accountID)
	if err != nil {
		return nil, err
	}
	acc.Deposit(amount)
	if err := accounts.Update(acc); err != nil {
		return nil, err
	}
	if err := s.uow.SaveChanges(ctx); err != nil {
		logger.Error("deposit failed", "error", err)
		return nil, err
	}

	logger.Info("deposit successful", "balance", acc.Amount.String())
	return dto.NewAccountView(acc), nil
}

// Withdraw removes amount from the account balance. The withdrawal may not
// exceed MaxWithdrawPercentage of the current balance, and the remaining
// balance may not fall below MinAccountAmount. A zero balance rejects every
// withdrawal.
func (s *Service) Withdraw(
	ctx context.Context,
	accountID int,
	amount decimal.Decimal,
) (*dto.AccountView, error) {
	logger := s.logger.With("op", "withdraw", "account_id", accountID, "amount", amount.String())

	if err := checkAmount(amount); err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, lock.AccountKey(accountID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	accounts, acc, err := s.lookup(ctx, accountID)
	if err != nil {
		return nil, err
	}

	pct := decimal.NewFromInt(int64(s.limits.MaxWithdrawPercentage))
	if amount.Mul(hundred).GreaterThan(acc.Amount.Mul(pct)) {
		logger.Warn("withdrawal rejected", "balance", acc.Amount.String(), "max_pct", s.limits.MaxWithdrawPercentage)
		return nil, fmt.Errorf("%w: max %d%% of %s", account.ErrWithdrawPercentageExceeded, s.limits.MaxWithdrawPercentage, acc.Amount)
	}
	if acc.Amount.Sub(amount).LessThan(s.limits.MinAccountAmount) {
		logger.Warn("withdrawal rejected", "balance", acc.Amount.String(), "min", s.limits.MinAccountAmount.String())
		return nil, fmt.Errorf("%w: min %s", account.ErrBelowMinimumBalance, s.limits.MinAccountAmount)
	}

	acc.Withdraw(amount)
	if err := accounts.Update(acc); err != nil {
		return nil, err
	}
	if err := s.uow.SaveChanges(ctx); err != nil {
		logger.Error("withdraw failed", "error", err)
		return nil, err
	}

	logger.Info("withdraw successful", "balance", acc.Amount.String())
	return dto.NewAccountView(acc), nil
}

// DeleteAccount removes the account.
func (s *Service) DeleteAccount(ctx context.Context, accountID int) error {
	unlock, err := s.locker.Lock(ctx, lock.AccountKey(accountID))
	if err != nil {
		return err
	}
	defer unlock()

	accounts, acc, err := s.lookup(ctx, accountID)
	if err != nil {
		return err
	}
	if err := accounts.Delete(acc); err != nil {
		return err
	}
	if err := s.uow.SaveChanges(ctx); err != nil {
		s.logger.Error("delete account failed", "account_id", accountID, "error", err)
		return err
	}

	s.logger.Info("account deleted", "account_id", accountID)
	return nil
}

// checkAmount rejects amounts that are not positive, since a negative
// deposit would pass the ceiling and act as a withdrawal. It also rejects
// amounts with more fractional digits than a balance stores.
func checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return account.ErrAmountNotPositive
	}
	if !account.FitsScale(amount) {
		return fmt.Errorf("%w: max %d", account.ErrAmountTooPrecise, account.Scale)
	}
	return nil
}

func (s *Service) lookup(
	ctx context.Context,
	accountID int,
) (repository.Repository[account.Account, int], *account.Account, error) {
	accounts, err := repository.GetRepository[account.Account, int](s.uow)
	if err != nil {
		return nil, nil, err
	}
	acc, err := accounts.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, account.ErrAccountNotFound
		}
		return nil, nil, fmt.Errorf("get account %d: %w", accountID, err)
	}
	return accounts, acc, nil
}
