// Package user provides business logic for user management.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/user"
	"github.com/amirasaad/banking/pkg/dto"
	"github.com/amirasaad/banking/pkg/repository"
)

// Service provides user operations on top of a unit of work.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// UpsertUser creates a user when in.ID is zero and otherwise overwrites
// both names of the existing user.
func (s *Service) UpsertUser(ctx context.Context, in dto.UserUpsert) (*dto.UserView, error) {
	logger := s.logger.With("op", "upsert_user", "user_id", in.ID)

	users, err := repository.GetRepository[user.User, int](s.uow)
	if err != nil {
		return nil, err
	}

	var u *user.User
	if in.ID == 0 {
		if u, err = users.Insert(user.New(in.GivenName, in.FamilyName)); err != nil {
			return nil, err
		}
	} else {
		u, err = users.Get(ctx, in.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, user.ErrUserNotFound
			}
			return nil, fmt.Errorf("get user %d: %w", in.ID, err)
		}
		u.Rename(in.GivenName, in.FamilyName)
		if err := users.Update(u); err != nil {
			return nil, err
		}
	}

	if err := s.uow.SaveChanges(ctx); err != nil {
		logger.Error("upsert user failed", "error", err)
		return nil, err
	}
	logger.Info("user saved", "id", u.ID)
	return dto.NewUserView(u), nil
}

// GetUser returns the user with its accounts, or nil when there is no such
// user.
func (s *Service) GetUser(ctx context.Context, userID int) (*dto.UserDetail, error) {
	u, err := s.findWithAccounts(ctx, userID)
	if err != nil || u == nil {
		return nil, err
	}
	return dto.NewUserDetail(u), nil
}

// DeleteUser removes the user together with every account it owns in one
// commit.
func (s *Service) DeleteUser(ctx context.Context, userID int) error {
	logger := s.logger.With("op", "delete_user", "user_id", userID)

	u, err := s.findWithAccounts(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return user.ErrUserNotFound
	}

	if len(u.Accounts) > 0 {
		accounts, err := repository.GetRepository[account.Account, int](s.uow)
		if err != nil {
			return err
		}
		owned := make([]*account.Account, 0, len(u.Accounts))
		for i := range u.Accounts {
			owned = append(owned, &u.Accounts[i])
		}
		if err := accounts.DeleteRange(owned); err != nil {
			return err
		}
	}

	users, err := repository.GetRepository[user.User, int](s.uow)
	if err != nil {
		return err
	}
	if err := users.Delete(u); err != nil {
		return err
	}
	if err := s.uow.SaveChanges(ctx); err != nil {
		logger.Error("delete user failed", "error", err)
		return err
	}

	logger.Info("user deleted", "accounts", len(u.Accounts))
	return nil
}

func (s *Service) findWithAccounts(ctx context.Context, userID int) (*user.User, error) {
	users, err := repository.GetRepository[user.User, int](s.uow)
	if err != nil {
		return nil, err
	}
	found, err := users.Find(ctx,
		repository.WithID(userID),
		repository.Include(user.AccountsRelation),
	)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", userID, err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}
