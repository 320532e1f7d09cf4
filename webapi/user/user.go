package user

import (
	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/domain/user"
	"github.com/amirasaad/banking/pkg/dto"
	"github.com/amirasaad/banking/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the user endpoints.
func Routes(r fiber.Router, a *app.App) {
	g := r.Group("/user", common.UnitOfWork(a))
	g.Get("/:userId", GetUser())
	g.Put("/", UpsertUser())
	g.Delete("/:userId", DeleteUser())
}

// GetUser returns a user with its accounts.
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /user/{userId} [get]
func GetUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "userId")
		if id == 0 {
			return err
		}
		u, err := common.Services(c).User.GetUser(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get user", err)
		}
		if u == nil {
			return common.ProblemDetailsJSON(c, "User not found", user.ErrUserNotFound)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", u)
	}
}

// UpsertUser creates or renames a user.
// @Summary Create or update a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpsertUserRequest true "User data"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /user [put]
func UpsertUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpsertUserRequest](c)
		if input == nil {
			return err // error response already written
		}
		u, err := common.Services(c).User.UpsertUser(c.UserContext(), dto.UserUpsert{
			ID:         input.UserID,
			GivenName:  input.GivenName,
			FamilyName: input.FamilyName,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to save user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User saved", u)
	}
}

// DeleteUser removes a user and all of its accounts.
// @Summary Delete a user
// @Tags users
// @Param userId path int true "User ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /user/{userId} [delete]
func DeleteUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "userId")
		if id == 0 {
			return err
		}
		if err := common.Services(c).User.DeleteUser(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete user", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
