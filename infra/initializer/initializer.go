package initializer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/autoconnect/backend/infra"
	"github.com/autoconnect/backend/infra/cache"
	"github.com/autoconnect/backend/infra/provider/azurevision"
	"github.com/autoconnect/backend/infra/provider/mockpayment"
	"github.com/autoconnect/backend/infra/provider/openaillm"
	"github.com/autoconnect/backend/infra/provider/smtpmail"
	"github.com/autoconnect/backend/infra/provider/stripepayment"
	infraaccount "github.com/autoconnect/backend/infra/repository/account"
	infracategory "github.com/autoconnect/backend/infra/repository/category"
	"github.com/autoconnect/backend/infra/repository/mongostore"
	infrauser "github.com/autoconnect/backend/infra/repository/user"
	"github.com/autoconnect/backend/pkg/app"
	"github.com/autoconnect/backend/pkg/config"
)

// ErrStripeNotConfigured is returned in production when no Stripe key is set.
var ErrStripeNotConfigured = errors.New("PAYMENT_PROVIDER_STRIPE_API_KEY is required in production")

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	if err = initRepositories(context.Background(), cfg, deps); err != nil {
		logger.Error("Failed to initialize database", "driver", cfg.DB.Driver, "error", err)
		return nil, err
	}

	if err = initProviders(cfg, deps, logger); err != nil {
		return nil, err
	}

	// Rate limit counters are shared through Redis when configured,
	// otherwise the limiter keeps them in process memory.
	if cfg.Redis != nil && cfg.Redis.URL != "" {
		storage, err := cache.NewRedisStorage(cfg.Redis.URL, cfg.Redis.KeyPrefix, cfg.Redis.DialTimeout, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis rate limit storage: %w", err)
		}
		deps.RateLimitStorage = storage
	}
	return deps, nil
}

func initRepositories(ctx context.Context, cfg *config.App, deps *app.Deps) error {
	if cfg.DB.Driver == "mongo" {
		db, err := infra.NewMongoDatabase(ctx, cfg.DB)
		if err != nil {
			return err
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			return fmt.Errorf("failed to create mongo indexes: %w", err)
		}
		deps.AccountRepo = mongostore.NewAccountRepository(db)
		deps.CategoryRepo = mongostore.NewCategoryRepository(db)
		deps.UserRepo = mongostore.NewUserRepository(db)
		return nil
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return err
	}
	// Postgres schemas are owned by the SQL migrations.
	if cfg.DB.Driver == "sqlite" {
		if err := infra.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate sqlite schema: %w", err)
		}
	}
	deps.AccountRepo = infraaccount.New(db)
	deps.CategoryRepo = infracategory.New(db)
	deps.UserRepo = infrauser.New(db)
	return nil
}

// initProviders builds the third-party adapters. Optional adapters stay nil
// when their settings are absent so the services can report them disabled.
func initProviders(cfg *config.App, deps *app.Deps, logger *slog.Logger) error {
	stripeCfg := cfg.PaymentProviders.Stripe
	switch {
	case stripeCfg != nil && stripeCfg.ApiKey != "":
		deps.PaymentProvider = stripepayment.New(stripeCfg, cfg.FrontendURL, logger.With("provider", "stripe"))
	case cfg.Env == "production":
		return ErrStripeNotConfigured
	default:
		logger.Warn("Stripe is not configured; using the mock payment provider")
		deps.PaymentProvider = mockpayment.NewMockPaymentProvider(cfg.FrontendURL)
	}

	if cfg.Vision != nil && cfg.Vision.Endpoint != "" {
		deps.OCR = azurevision.New(cfg.Vision, nil, logger.With("provider", "azurevision"))
	} else {
		logger.Warn("Vision endpoint is not configured; receipt scanning is disabled")
	}

	if cfg.LLM != nil && cfg.LLM.ApiKey != "" {
		deps.LLM = openaillm.New(cfg.LLM, logger.With("provider", "openai"))
	}

	if cfg.SMTP != nil && cfg.SMTP.Host != "" {
		sender, err := smtpmail.New(cfg.SMTP, logger.With("provider", "smtp"))
		if err != nil {
			return fmt.Errorf("failed to create SMTP sender: %w", err)
		}
		deps.Mailer = sender
	} else {
		logger.Warn("SMTP is not configured; emails will not be sent")
	}
	return nil
}
