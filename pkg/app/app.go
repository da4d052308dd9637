// Package app assembles the services from their injected dependencies.
package app

import (
	"log/slog"

	"github.com/autoconnect/backend/pkg/config"
	"github.com/autoconnect/backend/pkg/provider/llm"
	"github.com/autoconnect/backend/pkg/provider/mail"
	"github.com/autoconnect/backend/pkg/provider/ocr"
	"github.com/autoconnect/backend/pkg/provider/payment"
	repoaccount "github.com/autoconnect/backend/pkg/repository/account"
	repocategory "github.com/autoconnect/backend/pkg/repository/category"
	repouser "github.com/autoconnect/backend/pkg/repository/user"
	"github.com/autoconnect/backend/pkg/service/account"
	"github.com/autoconnect/backend/pkg/service/auth"
	"github.com/autoconnect/backend/pkg/service/category"
	"github.com/autoconnect/backend/pkg/service/checkout"
	"github.com/autoconnect/backend/pkg/service/dashboard"
	mailsvc "github.com/autoconnect/backend/pkg/service/mail"
	"github.com/autoconnect/backend/pkg/service/receipt"
	"github.com/autoconnect/backend/pkg/service/user"
	"github.com/gofiber/fiber/v2"
)

// Deps contains the clients and repositories built at startup.
// LLM, Mailer and RateLimitStorage are optional.
type Deps struct {
	AccountRepo      repoaccount.Repository
	CategoryRepo     repocategory.Repository
	UserRepo         repouser.Repository
	PaymentProvider  payment.Payment
	OCR              ocr.Reader
	LLM              llm.Completer
	Mailer           mail.Sender
	RateLimitStorage fiber.Storage
	Logger           *slog.Logger
}

type App struct {
	Deps             *Deps
	Config           *config.App
	AuthService      *auth.Service
	UserService      *user.Service
	AccountService   *account.Service
	CategoryService  *category.Service
	CheckoutService  *checkout.Service
	ReceiptService   *receipt.Service
	MailService      *mailsvc.Service
	DashboardService *dashboard.Service
}

func New(deps *Deps, cfg *config.App) *App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.AuthService = auth.New(deps.UserRepo, cfg.Auth.Jwt, logger.With("service", "auth"))
	app.UserService = user.New(deps.UserRepo, logger.With("service", "user"))
	app.AccountService = account.New(deps.AccountRepo, logger.With("service", "account"))
	app.CategoryService = category.New(deps.CategoryRepo, logger.With("service", "category"))

	from := ""
	if cfg.SMTP != nil {
		from = cfg.SMTP.From
		if from == "" {
			from = cfg.SMTP.Username
		}
	}
	app.MailService = mailsvc.New(deps.Mailer, from, logger.With("service", "mail"))

	var notifier checkout.Notifier
	if deps.Mailer != nil {
		notifier = app.MailService
	}
	app.CheckoutService = checkout.New(deps.PaymentProvider, notifier, logger.With("service", "checkout"))
	app.ReceiptService = receipt.New(deps.OCR, deps.LLM, logger.With("service", "receipt"))
	app.DashboardService = dashboard.New()
	return app
}
