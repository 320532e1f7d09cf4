package account

import (
	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the account endpoints.
func Routes(r fiber.Router, a *app.App) {
	g := r.Group("/account", common.UnitOfWork(a))
	g.Post("/", CreateAccount())
	g.Post("/deposit", Deposit())
	g.Post("/withdraw", Withdraw())
	g.Delete("/:accountId", DeleteAccount())
}

// CreateAccount opens an account for an existing user.
// @Summary Create a new account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /account [post]
func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		acc, err := common.Services(c).Account.CreateAccount(c.UserContext(), input.Label, input.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", acc)
	}
}

// Deposit adds funds to an account.
// @Summary Deposit funds
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "Deposit data"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /account/deposit [post]
func Deposit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransactionRequest](c)
		if input == nil {
			return err
		}
		acc, err := common.Services(c).Account.Deposit(c.UserContext(), input.AccountID, input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to deposit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", acc)
	}
}

// Withdraw removes funds from an account.
// @Summary Withdraw funds
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "Withdrawal data"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /account/withdraw [post]
func Withdraw() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransactionRequest](c)
		if input == nil {
			return err
		}
		acc, err := common.Services(c).Account.Withdraw(c.UserContext(), input.AccountID, input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to withdraw", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful", acc)
	}
}

// DeleteAccount closes an account.
// @Summary Delete an account
// @Tags accounts
// @Param accountId path int true "Account ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /account/{accountId} [delete]
func DeleteAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "accountId")
		if id == 0 {
			return err
		}
		if err := common.Services(c).Account.DeleteAccount(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
