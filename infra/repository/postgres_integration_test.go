//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/user"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresRepositoryTestSuite runs the repository suite against a real
// postgres, where foreign keys are enforced.
type PostgresRepositoryTestSuite struct {
	RepositoryTestSuite
	pg     *tcpostgres.PostgresContainer
	shared *gorm.DB
}

func TestPostgresRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositoryTestSuite))
}

func (s *PostgresRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()
	pg, err := tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.pg = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	s.Require().NoError(err)
	s.Require().NoError(Migrate(db))
	// running it twice must not try to recreate the constraint
	s.Require().NoError(Migrate(db))
	s.shared = db
}

func (s *PostgresRepositoryTestSuite) TearDownSuite() {
	if sqlDB, err := s.shared.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if s.pg != nil {
		_ = testcontainers.TerminateContainer(s.pg)
	}
}

func (s *PostgresRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = s.shared
	s.Require().NoError(s.db.Exec("TRUNCATE accounts, users RESTART IDENTITY CASCADE").Error)
}

func (s *PostgresRepositoryTestSuite) TestInsertWithUnknownOwnerIsInvalidReference() {
	uow := NewUoW(s.db, testLogger())
	defer uow.Close()
	accs, err := repository.GetRepository[account.Account, int](uow)
	s.Require().NoError(err)

	_, err = accs.Insert(account.New("orphan", 999, decimal.NewFromInt(100)))
	s.Require().NoError(err)
	err = uow.SaveChanges(s.ctx)
	s.ErrorIs(err, domain.ErrInvalidReference)
}

func (s *PostgresRepositoryTestSuite) TestDeleteUserWithAccountsLeftIsRestricted() {
	u := s.seedUser(1)

	uow := NewUoW(s.db, testLogger())
	defer uow.Close()
	users, err := repository.GetRepository[user.User, int](uow)
	s.Require().NoError(err)
	s.Require().NoError(users.Delete(u))

	err = uow.SaveChanges(s.ctx)
	s.ErrorIs(err, domain.ErrInvalidReference)

	_, err = users.Get(s.ctx, u.ID)
	s.NoError(err, "the user survives the rejected delete")
}

func (s *PostgresRepositoryTestSuite) TestAmountsKeepFourDecimals() {
	u := s.seedUser(0)

	uow := NewUoW(s.db, testLogger())
	defer uow.Close()
	accs, err := repository.GetRepository[account.Account, int](uow)
	s.Require().NoError(err)
	a, err := accs.Insert(account.New("precise", u.ID, decimal.RequireFromString("0.1")))
	s.Require().NoError(err)
	s.Require().NoError(uow.SaveChanges(s.ctx))

	a.Deposit(decimal.RequireFromString("0.2"))
	s.Require().NoError(accs.Update(a))
	s.Require().NoError(uow.SaveChanges(s.ctx))

	got, err := accs.Get(s.ctx, a.ID)
	s.Require().NoError(err)
	s.True(got.Amount.Equal(decimal.RequireFromString("0.3")), "got %s", got.Amount)
}
