package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/lock"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/amirasaad/banking/pkg/service/account"
	"github.com/amirasaad/banking/pkg/service/user"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	UowFactory repository.UnitOfWorkFactory
	Locker     lock.Locker
	Logger     *slog.Logger
}

// App builds request-scoped services. Services are bound to one unit of
// work, so they are created per operation rather than once at startup.
type App struct {
	Deps   *Deps
	Config *config.App
	limits account.Limits
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Locker == nil {
		deps.Locker = lock.Noop{}
	}
	return &App{
		Deps:   deps,
		Config: cfg,
		limits: account.LimitsFromConfig(cfg.Account),
	}
}

// Services are the services bound to a single unit of work.
type Services struct {
	Account *account.Service
	User    *user.Service
}

// Services returns the account and user services for uow.
func (a *App) Services(uow repository.UnitOfWork) *Services {
	return &Services{
		Account: account.New(uow, a.limits, a.Deps.Logger, account.WithLocker(a.Deps.Locker)),
		User:    user.New(uow, a.Deps.Logger),
	}
}

// Do opens a unit of work, runs fn with services bound to it and closes it.
func (a *App) Do(ctx context.Context, fn func(ctx context.Context, svc *Services) error) (err error) {
	uow, err := a.Deps.UowFactory()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, uow.Close())
	}()
	return fn(ctx, a.Services(uow))
}
