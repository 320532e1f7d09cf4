package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrInvalidConfig is returned when a loaded value is out of its allowed range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads the first environment file found among envFilePath (searching
// parent directories), then populates App from the environment.
// Without paths the nearest .env is used when present.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	if len(envFilePath) == 0 {
		envFilePath = []string{".env"}
	}
	for _, path := range envFilePath {
		foundPath, err := FindEnvTest(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path)
			continue
		}
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		logger.Info("Environment loaded from file", "path", foundPath)
		break
	}
	return loadFromEnv(logger)
}

func loadFromEnv(logger *slog.Logger) (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"db_driver", cfg.DB.Driver,
		"db", maskURL(cfg.DB.Url),
		"redis", maskURL(cfg.Redis.URL),
		"max_deposit", cfg.Account.MaxDepositAmount.String(),
		"min_balance", cfg.Account.MinAccountAmount.String(),
		"max_withdraw_pct", cfg.Account.MaxWithdrawPercentage,
		"lock_backend", cfg.Account.LockBackend,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

// Validate checks value ranges envconfig cannot express.
func (cfg *App) Validate() error {
	var errs []error
	switch cfg.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER %q is not one of sqlite, postgres", cfg.DB.Driver))
	}
	if cfg.DB.Url == "" {
		errs = append(errs, errors.New("DATABASE_URL is not set"))
	}

	acc := cfg.Account
	if acc.MaxWithdrawPercentage < 0 || acc.MaxWithdrawPercentage > 100 {
		errs = append(errs, fmt.Errorf("ACCOUNT_MAX_WITHDRAW_PERCENTAGE %d is outside 0..100", acc.MaxWithdrawPercentage))
	}
	if acc.MinAccountAmount.IsNegative() {
		errs = append(errs, fmt.Errorf("ACCOUNT_MIN_ACCOUNT_AMOUNT %s is negative", acc.MinAccountAmount))
	}
	if !acc.MaxDepositAmount.IsPositive() {
		errs = append(errs, fmt.Errorf("ACCOUNT_MAX_DEPOSIT_AMOUNT %s must be positive", acc.MaxDepositAmount))
	}
	switch acc.LockBackend {
	case LockNone, LockMemory, LockRedis:
	default:
		errs = append(errs, fmt.Errorf("ACCOUNT_LOCK_BACKEND %q is not one of none, memory, redis", acc.LockBackend))
	}
	if acc.LockBackend != LockNone && acc.LockTTL <= 0 {
		errs = append(errs, fmt.Errorf("ACCOUNT_LOCK_TTL %s must be positive", acc.LockTTL))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// maskURL hides the password of a connection URL. Values that do not parse
// as URLs are masked with maskValue.
func maskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return maskValue(raw)
	}
	return u.Redacted()
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
