package account_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/amirasaad/banking/pkg/dto"
	"github.com/amirasaad/banking/webapi/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountTestSuite struct {
	testutils.E2ETestSuite
	owner dto.UserView
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}

func (s *AccountTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.owner = s.CreateTestUser("Ada", "Lovelace")
}

func (s *AccountTestSuite) transact(path string, accountID int, amount string) *http.Response {
	return s.MakeRequest(http.MethodPost, path, fmt.Sprintf(`{"accountId":%d,"amount":%s}`, accountID, amount))
}

func (s *AccountTestSuite) TestCreateAccount() {
	acc := s.CreateTestAccount(s.owner.ID, "savings")
	s.Equal("savings", acc.Label)
	s.True(decimal.NewFromInt(100).Equal(acc.Amount))
}

func (s *AccountTestSuite) TestCreateAccountVariants() {
	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{"unknown user", `{"label":"x","userId":999}`, http.StatusNotFound},
		{"missing user id", `{"label":"x"}`, http.StatusBadRequest},
		{"invalid body", `{"label":`, http.StatusBadRequest},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(http.MethodPost, "/account", tc.body)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
			s.Equal("application/problem+json", resp.Header.Get("Content-Type"))
		})
	}
}

func (s *AccountTestSuite) TestDepositAndWithdraw() {
	acc := s.CreateTestAccount(s.owner.ID, "main")

	resp := s.transact("/account/deposit", acc.ID, `"400.25"`)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var env testutils.Envelope[dto.AccountView]
	s.Decode(resp, &env)
	s.True(decimal.RequireFromString("500.25").Equal(env.Data.Amount))

	resp = s.transact("/account/withdraw", acc.ID, `100`)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Decode(resp, &env)
	s.True(decimal.RequireFromString("400.25").Equal(env.Data.Amount))
	s.Equal(acc.ID, env.Data.ID)
}

func (s *AccountTestSuite) TestDepositRejected() {
	acc := s.CreateTestAccount(s.owner.ID, "main")
	testCases := []struct {
		desc       string
		accountID  int
		amount     string
		wantStatus int
	}{
		{"above maximum", acc.ID, `10001`, http.StatusBadRequest},
		{"negative", acc.ID, `-1`, http.StatusBadRequest},
		{"unknown account", 999, `1`, http.StatusNotFound},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.transact("/account/deposit", tc.accountID, tc.amount)
			s.Equal(tc.wantStatus, resp.StatusCode)
			var pd testutils.Problem
			s.Decode(resp, &pd)
			s.NotEmpty(pd.Detail, "client errors carry the message")
		})
	}
}

func (s *AccountTestSuite) TestWithdrawRejected() {
	acc := s.CreateTestAccount(s.owner.ID, "main") // balance 100, floor 100

	resp := s.transact("/account/withdraw", acc.ID, `91`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	var pd testutils.Problem
	s.Decode(resp, &pd)
	s.Contains(pd.Detail, "90%")

	resp = s.transact("/account/withdraw", acc.ID, `1`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Decode(resp, &pd)
	s.Contains(pd.Detail, "minimum")

	// balance unchanged
	resp = s.MakeRequest(http.MethodGet, fmt.Sprintf("/user/%d", s.owner.ID), "")
	var env testutils.Envelope[dto.UserDetail]
	s.Decode(resp, &env)
	s.Require().Len(env.Data.Accounts, 1)
	s.True(decimal.NewFromInt(100).Equal(env.Data.Accounts[0].Amount))
}

func (s *AccountTestSuite) TestDeleteAccount() {
	acc := s.CreateTestAccount(s.owner.ID, "main")

	resp := s.MakeRequest(http.MethodDelete, fmt.Sprintf("/account/%d", acc.ID), "")
	s.Equal(http.StatusNoContent, resp.StatusCode)

	resp = s.MakeRequest(http.MethodDelete, fmt.Sprintf("/account/%d", acc.ID), "")
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp = s.MakeRequest(http.MethodDelete, "/account/abc", "")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *AccountTestSuite) TestBalanceIsExactAfterCommit() {
	cfg := testutils.TestConfig()
	cfg.Account.MaxDepositAmount = decimal.RequireFromString("100000000000000")
	app, db, err := testutils.NewApp(cfg)
	s.Require().NoError(err)
	s.TearDownTest()
	s.App, s.DB = app, db

	owner := s.CreateTestUser("Big", "Saver")
	acc := s.CreateTestAccount(owner.ID, "vault")

	resp := s.transact("/account/deposit", acc.ID, `"12345678901234"`)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	resp = s.transact("/account/deposit", acc.ID, `"0.0001"`)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var env testutils.Envelope[dto.AccountView]
	s.Decode(resp, &env)
	want := decimal.RequireFromString("12345678901334.0001")
	s.True(want.Equal(env.Data.Amount), "got %s", env.Data.Amount)

	resp = s.MakeRequest(http.MethodGet, fmt.Sprintf("/user/%d", owner.ID), "")
	var detail testutils.Envelope[dto.UserDetail]
	s.Decode(resp, &detail)
	s.Require().Len(detail.Data.Accounts, 1)
	s.True(want.Equal(detail.Data.Accounts[0].Amount), "stored %s", detail.Data.Accounts[0].Amount)

	resp = s.transact("/account/deposit", acc.ID, `"0.00001"`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck
}
