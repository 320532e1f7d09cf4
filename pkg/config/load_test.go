package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Contains(t, cfg.DB.Url, "mode=memory")
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
	assert.True(t, decimal.NewFromInt(10000).Equal(cfg.Account.MaxDepositAmount))
	assert.True(t, decimal.NewFromInt(100).Equal(cfg.Account.MinAccountAmount))
	assert.Equal(t, 90, cfg.Account.MaxWithdrawPercentage)
	assert.Equal(t, LockNone, cfg.Account.LockBackend)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, "[banking]", cfg.Log.Prefix)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ACCOUNT_MAX_DEPOSIT_AMOUNT", "2500.50")
	t.Setenv("ACCOUNT_MIN_ACCOUNT_AMOUNT", "80")
	t.Setenv("ACCOUNT_MAX_WITHDRAW_PERCENTAGE", "75")
	t.Setenv("ACCOUNT_LOCK_BACKEND", "memory")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/banking?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("2500.50").Equal(cfg.Account.MaxDepositAmount))
	assert.True(t, decimal.NewFromInt(80).Equal(cfg.Account.MinAccountAmount))
	assert.Equal(t, 75, cfg.Account.MaxWithdrawPercentage)
	assert.Equal(t, LockMemory, cfg.Account.LockBackend)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("ACCOUNT_MAX_WITHDRAW_PERCENTAGE=42\n"), 0o600))
	t.Chdir(nested)
	// godotenv does not override variables that are already set
	t.Setenv("ACCOUNT_MAX_WITHDRAW_PERCENTAGE", "")
	require.NoError(t, os.Unsetenv("ACCOUNT_MAX_WITHDRAW_PERCENTAGE"))

	cfg, err := Load(".env.missing", ".env.test")
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Account.MaxWithdrawPercentage)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"percentage above 100", "ACCOUNT_MAX_WITHDRAW_PERCENTAGE", "101"},
		{"negative percentage", "ACCOUNT_MAX_WITHDRAW_PERCENTAGE", "-1"},
		{"negative minimum", "ACCOUNT_MIN_ACCOUNT_AMOUNT", "-5"},
		{"zero deposit ceiling", "ACCOUNT_MAX_DEPOSIT_AMOUNT", "0"},
		{"unknown driver", "DATABASE_DRIVER", "mysql"},
		{"unknown lock backend", "ACCOUNT_LOCK_BACKEND", "etcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_MalformedDecimal(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ACCOUNT_MAX_DEPOSIT_AMOUNT", "ten thousand")

	_, err := Load()
	assert.Error(t, err)
}

func TestMaskURL(t *testing.T) {
	assert.Equal(t, "postgres://app:xxxxx@db:5432/banking", maskURL("postgres://app:secret@db:5432/banking"))
	assert.Equal(t, "redis://localhost:6379/0", maskURL("redis://localhost:6379/0"))
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "ab****ghij", maskValue("abcdefghij"))
}

func TestFindEnvTest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), nil, 0o600))
	nested := filepath.Join(dir, "x")
	require.NoError(t, os.Mkdir(nested, 0o755))
	t.Chdir(nested)

	found, err := FindEnvTest("")
	require.NoError(t, err)
	assert.Equal(t, ".env", filepath.Base(found))

	_, err = FindEnvTest("nope.env")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
