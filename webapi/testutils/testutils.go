package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/amirasaad/banking/infra"
	infralock "github.com/amirasaad/banking/infra/lock"
	infrarepo "github.com/amirasaad/banking/infra/repository"
	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/dto"
	"github.com/amirasaad/banking/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TestConfig returns the configuration the HTTP tests run with: a private
// in-memory sqlite database and the default account limits.
func TestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Host: "localhost", Port: 3000},
		Log:    &config.Log{Format: "text"},
		DB: &config.DB{
			Driver: config.DriverSQLite,
			Url:    fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString()),
		},
		Account: &config.Account{
			MaxDepositAmount:      decimal.NewFromInt(10000),
			MinAccountAmount:      decimal.NewFromInt(100),
			MaxWithdrawPercentage: 90,
			LockBackend:           config.LockMemory,
			LockTTL:               10 * time.Second,
		},
		Redis:     &config.Redis{},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
	}
}

// NewApp builds the HTTP app on top of cfg.
func NewApp(cfg *config.App) (*fiber.App, *gorm.DB, error) {
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.Default()
	factory := infrarepo.NewFactory(db, logger)
	a := app.New(&app.Deps{
		UowFactory: factory.New,
		Locker:     infralock.NewMemory(),
		Logger:     logger,
	}, cfg)
	return webapi.SetupApp(a), db, nil
}

// MakeRequestWithApp sends a JSON request through app.Test.
func MakeRequestWithApp(app *fiber.App, method, path, body string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}
	return resp
}

// Envelope is the decoded success response with typed data.
type Envelope[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Problem is the decoded problem details response.
type Problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// E2ETestSuite runs HTTP requests against a fresh app and database per test.
type E2ETestSuite struct {
	suite.Suite
	App *fiber.App
	DB  *gorm.DB
	Cfg *config.App
}

func (s *E2ETestSuite) SetupTest() {
	s.Cfg = TestConfig()
	fiberApp, db, err := NewApp(s.Cfg)
	s.Require().NoError(err)
	s.App, s.DB = fiberApp, db
}

func (s *E2ETestSuite) TearDownTest() {
	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// MakeRequest sends a request to the suite's app.
func (s *E2ETestSuite) MakeRequest(method, path, body string) *http.Response {
	return MakeRequestWithApp(s.App, method, path, body)
}

// Decode reads resp's body into out and closes it.
func (s *E2ETestSuite) Decode(resp *http.Response, out any) {
	defer resp.Body.Close() //nolint:errcheck
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}

// CreateTestUser creates a user through the API.
func (s *E2ETestSuite) CreateTestUser(given, family string) dto.UserView {
	body := fmt.Sprintf(`{"givenName":%q,"familyName":%q}`, given, family)
	resp := s.MakeRequest(http.MethodPut, "/user", body)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var env Envelope[dto.UserView]
	s.Decode(resp, &env)
	s.Require().NotZero(env.Data.ID)
	return env.Data
}

// CreateTestAccount opens an account through the API.
func (s *E2ETestSuite) CreateTestAccount(userID int, label string) dto.AccountView {
	body := fmt.Sprintf(`{"label":%q,"userId":%d}`, label, userID)
	resp := s.MakeRequest(http.MethodPost, "/account", body)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	var env Envelope[dto.AccountView]
	s.Decode(resp, &env)
	s.Require().NotZero(env.Data.ID)
	return env.Data
}
