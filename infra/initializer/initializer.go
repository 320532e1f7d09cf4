package initializer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/banking/infra"
	infralock "github.com/amirasaad/banking/infra/lock"
	infrarepository "github.com/amirasaad/banking/infra/repository"
	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/lock"
	"github.com/amirasaad/banking/pkg/repository"
)

// InitializeDependencies sets up logging, the database and the account
// locker. The returned cleanup closes what was opened.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	cleanup func(),
	err error,
) {
	logger := setupLogger(cfg.Log)
	closers := make([]func() error, 0, 2)
	cleanup = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("cleanup failed", "error", err)
			}
		}
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, sqlDB.Close)

	locker, closeLocker, err := newLocker(cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if closeLocker != nil {
		closers = append(closers, closeLocker)
	}

	factory := infrarepository.NewFactory(db, logger)
	// fail fast on schema problems instead of on the first request
	if err := prepareSchema(factory.New); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to prepare schema: %w", err)
	}

	deps = &app.Deps{
		UowFactory: factory.New,
		Locker:     locker,
		Logger:     logger,
	}
	return deps, cleanup, nil
}

// prepareSchema opens and closes one unit of work so the factory migrates.
func prepareSchema(newUoW repository.UnitOfWorkFactory) error {
	uow, err := newUoW()
	if err != nil {
		return err
	}
	return uow.Close()
}

func newLocker(cfg *config.App, logger *slog.Logger) (lock.Locker, func() error, error) {
	switch cfg.Account.LockBackend {
	case config.LockMemory:
		logger.Info("Using in-memory account lock")
		return infralock.NewMemory(), nil, nil
	case config.LockRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		r, err := infralock.NewRedisFromURL(ctx, cfg.Redis.URL, cfg.Account.LockTTL, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis account lock: %w", err)
		}
		logger.Info("Using redis account lock", "ttl", cfg.Account.LockTTL)
		return r, r.Close, nil
	default:
		return lock.Noop{}, nil, nil
	}
}
