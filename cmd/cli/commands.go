package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/autoconnect/backend/pkg/app"
	"github.com/autoconnect/backend/pkg/domain"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	headColor = color.New(color.FgCyan, color.Bold)
	dimColor  = color.New(color.Faint)
)

type cli struct {
	app          *app.App
	out          io.Writer
	readPassword func() (string, error)
}

func (c *cli) dispatch(ctx context.Context, args []string) error {
	switch args[0] {
	case "create-user":
		return c.createUser(ctx, args[1:])
	case "accounts":
		return c.listAccounts(ctx, args[1:])
	case "categories":
		return c.listCategories(ctx)
	case "scan":
		return c.scan(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func (c *cli) createUser(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: create-user <username> <email> [names]")
	}
	names := ""
	if len(args) > 2 {
		names = args[2]
	}
	password, err := c.readPassword()
	if err != nil {
		return err
	}
	if len(password) < 6 {
		return domain.NewValidationError("password must be at least 6 characters")
	}
	u, err := c.app.UserService.CreateUser(ctx, args[0], args[1], password, names)
	if err != nil {
		return err
	}
	okColor.Fprintf(c.out, "User created: ")
	fmt.Fprintf(c.out, "ID=%s Username=%s Email=%s\n", u.ID, u.Username, u.Email)
	return nil
}

func (c *cli) listAccounts(ctx context.Context, args []string) error {
	var owner *uuid.UUID
	if len(args) > 0 {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		owner = &id
	}
	accounts, err := c.app.AccountService.List(ctx, owner)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		dimColor.Fprintln(c.out, "No bank accounts")
		return nil
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	headColor.Fprintln(w, "ID\tBANK\tTYPE\tSTATUS\tBALANCE")
	for _, a := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.BankName, a.AccountType, a.Status, a.Balance.StringFixed(2))
	}
	return w.Flush()
}

func (c *cli) listCategories(ctx context.Context) error {
	categories, err := c.app.CategoryService.List(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		dimColor.Fprintln(c.out, "No categories")
		return nil
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	headColor.Fprintln(w, "KEY\tNAME\tTYPE\tCOLOR")
	for _, cat := range categories {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cat.CategoryID, cat.Name, cat.Type, cat.Color)
	}
	return w.Flush()
}

func (c *cli) scan(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: scan <image> [--extract]")
	}
	image, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	extract := slices.Contains(args[1:], "--extract")
	res, err := c.app.ReceiptService.Scan(ctx, image, extract)
	if err != nil {
		return err
	}
	headColor.Fprintf(c.out, "%d lines\n", len(res.Lines))
	for _, line := range res.Lines {
		fmt.Fprintln(c.out, line)
	}
	if res.Receipt != nil {
		headColor.Fprintln(c.out, "Receipt:")
		fmt.Fprintln(c.out, string(res.Receipt))
	}
	return nil
}
