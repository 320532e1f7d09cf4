package common

import (
	"github.com/amirasaad/banking/pkg/app"
	"github.com/gofiber/fiber/v2"
)

const servicesKey = "services"

// UnitOfWork opens one unit of work per request, binds the services to it
// and closes it once the handler returns.
func UnitOfWork(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uow, err := a.Deps.UowFactory()
		if err != nil {
			return ProblemDetailsJSON(c, "Service unavailable", err, fiber.StatusServiceUnavailable)
		}
		defer func() {
			if err := uow.Close(); err != nil {
				a.Deps.Logger.Warn("failed to close unit of work", "path", c.Path(), "error", err)
			}
		}()
		c.Locals(servicesKey, a.Services(uow))
		return c.Next()
	}
}

// Services returns the request's services. It panics when the UnitOfWork
// middleware is not installed on the route.
func Services(c *fiber.Ctx) *app.Services {
	return c.Locals(servicesKey).(*app.Services)
}
