// Package webapi exposes the banking services over HTTP.
// Sub-packages hold the handlers per resource:
// - account: account lifecycle, deposits and withdrawals
// - user: user upsert, lookup and deletion
// - common: response envelopes, error mapping and the unit of work middleware
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/banking/pkg/app"
	accountweb "github.com/amirasaad/banking/webapi/account"
	"github.com/amirasaad/banking/webapi/common"
	userweb "github.com/amirasaad/banking/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp initializes Fiber with middleware and every route.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return common.ProblemDetailsJSON(c, fe.Message, err, fe.Code, fe.Message)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	// Uses X-Forwarded-For when behind a proxy, then X-Real-IP, then the peer IP.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				first, _, _ := strings.Cut(forwardedFor, ",")
				return strings.TrimSpace(first)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
				"rate limit exceeded",
			)
		},
	}))
	fiberApp.Use(recover.New())

	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "ok", nil)
	})

	accountweb.Routes(fiberApp, a)
	userweb.Routes(fiberApp, a)
	return fiberApp
}
