// Package webapi provides the HTTP surface of the AutoConnect backend.
// It is organized into sub-packages per area:
// - account: bank account CRUD
// - category: category CRUD
// - auth: registration and login
// - checkout: hosted payment sessions and the payment webhook
// - receipt: OCR receipt scanning
// - mail: transactional email
// - dashboard: dashboard statistics
package webapi

import (
	"errors"
	"strings"

	"github.com/autoconnect/backend/pkg/app"
	accountweb "github.com/autoconnect/backend/webapi/account"
	authweb "github.com/autoconnect/backend/webapi/auth"
	categoryweb "github.com/autoconnect/backend/webapi/category"
	checkoutweb "github.com/autoconnect/backend/webapi/checkout"
	"github.com/autoconnect/backend/webapi/common"
	dashboardweb "github.com/autoconnect/backend/webapi/dashboard"
	mailweb "github.com/autoconnect/backend/webapi/mail"
	receiptweb "github.com/autoconnect/backend/webapi/receipt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	cfg := a.Config

	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := common.ErrorToStatusCode(err)
			msg := "Request failed"
			if status == fiber.StatusInternalServerError {
				msg = common.MsgUnknownServerError
			}
			return common.ErrorResponseJSON(c, status, msg, err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		WithCredentials:      true,
		PersistAuthorization: true,
	}))

	// Uses X-Forwarded-For when behind a proxy, then X-Real-IP, then the peer address.
	// Counters live in Redis when configured so every instance shares them.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		Storage:    a.Deps.RateLimitStorage,
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
			return common.ErrorResponseJSON(
				c,
				fiber.StatusTooManyRequests,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("AutoConnect API is running! 🚀")
		},
	)

	accountweb.Routes(fiberApp, a.AccountService, a.AuthService, cfg)
	categoryweb.Routes(fiberApp, a.CategoryService, cfg)
	authweb.Routes(fiberApp, a.AuthService, a.UserService)
	checkoutweb.Routes(fiberApp, a.CheckoutService, cfg)
	receiptweb.Routes(fiberApp, a.ReceiptService, cfg)
	mailweb.Routes(fiberApp, a.MailService, cfg)
	dashboardweb.Routes(fiberApp, a.DashboardService)
	return fiberApp
}
