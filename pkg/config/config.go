package config

import (
	"time"

	"github.com/shopspring/decimal"
)

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Account lock backends.
const (
	LockNone   = "none"
	LockMemory = "memory"
	LockRedis  = "redis"
)

type DB struct {
	Driver          string        `envconfig:"DRIVER" default:"sqlite"`
	Url             string        `envconfig:"URL" default:"file:banking?mode=memory&cache=shared&_foreign_keys=on"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h"`
}

// Account holds the process-wide limits applied to every deposit and
// withdrawal. It is read-only after startup.
type Account struct {
	MaxDepositAmount      decimal.Decimal `envconfig:"MAX_DEPOSIT_AMOUNT" default:"10000"`
	MinAccountAmount      decimal.Decimal `envconfig:"MIN_ACCOUNT_AMOUNT" default:"100"`
	MaxWithdrawPercentage int             `envconfig:"MAX_WITHDRAW_PERCENTAGE" default:"90"`
	LockBackend           string          `envconfig:"LOCK_BACKEND" default:"none"`
	LockTTL               time.Duration   `envconfig:"LOCK_TTL" default:"10s"`
}

type Redis struct {
	URL string `envconfig:"URL" default:"redis://localhost:6379/0"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[banking]"`
}

type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Account   *Account   `envconfig:"ACCOUNT"`
	Redis     *Redis     `envconfig:"REDIS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
