package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/autoconnect/backend/infra"
	"github.com/autoconnect/backend/infra/initializer"
	"github.com/autoconnect/backend/internal/migrations"
	"github.com/autoconnect/backend/pkg/app"
	"github.com/autoconnect/backend/pkg/config"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  migrate up|down [steps]                 apply or roll back Postgres migrations
  create-user <username> <email> [names]  register a user (password is prompted)
  accounts [user_id]                      list bank accounts
  categories                              list categories
  scan <image> [--extract]                OCR a receipt image`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}
	if err := run(os.Args[1:]); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	if args[0] == "migrate" {
		return migrateCmd(cfg, args[1:])
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	c := &cli{
		app:          app.New(deps, cfg),
		out:          os.Stdout,
		readPassword: promptPassword,
	}
	return c.dispatch(context.Background(), args)
}

func migrateCmd(cfg *config.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: migrate up|down [steps]")
	}
	if cfg.DB.Driver != "" && cfg.DB.Driver != "postgres" {
		return fmt.Errorf("migrations target postgres, DATABASE_DRIVER is %q", cfg.DB.Driver)
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close() //nolint: errcheck

	switch args[0] {
	case "up":
		err = migrations.Up(sqlDB)
	case "down":
		steps := 0
		if len(args) > 1 {
			if steps, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid steps %q", args[1])
			}
		}
		err = migrations.Down(sqlDB, steps)
	default:
		return fmt.Errorf("unknown migrate direction %q", args[0])
	}
	if err != nil {
		return err
	}
	color.Green("Migrations %s complete", args[0])
	return nil
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
