package main

import (
	"fmt"
	"log/slog"

	_ "github.com/autoconnect/backend/docs"
	"github.com/autoconnect/backend/infra/initializer"
	"github.com/autoconnect/backend/pkg/app"
	"github.com/autoconnect/backend/pkg/config"
	"github.com/autoconnect/backend/webapi"
	log "github.com/charmbracelet/log"
)

// @title AutoConnect API
// @version 1.0.0
// @description AutoConnect marketplace backend API
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@autoconnect.dev
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:5000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
		"db", cfg.DB.Driver,
	)

	return fiberApp.Listen(addr)
}
