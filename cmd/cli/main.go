package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/amirasaad/banking/infra/initializer"
	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/dto"
	"github.com/shopspring/decimal"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  user upsert [id] <given_name> <family_name>
  user get <id>
  user delete <id>
  account create <user_id> <label>
  account deposit <account_id> <amount>
  account withdraw <account_id> <amount>
  account delete <account_id>`

var errUsage = errors.New("invalid arguments")

func main() {
	if len(os.Args) < 3 {
		fmt.Println(usage)
		return
	}
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Println("Failed to load configuration:", err)
		os.Exit(1)
	}
	deps, cleanup, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		fmt.Println("Failed to initialize dependencies:", err)
		os.Exit(1)
	}
	err = run(context.Background(), app.New(deps, cfg), os.Args[1:], os.Stdout)
	cleanup()
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Println(usage)
		}
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	if len(args) < 2 {
		return errUsage
	}
	switch args[0] {
	case "user":
		return runUser(ctx, a, args[1], args[2:], out)
	case "account":
		return runAccount(ctx, a, args[1], args[2:], out)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func runUser(ctx context.Context, a *app.App, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "upsert":
		in := dto.UserUpsert{}
		switch len(args) {
		case 2:
			in.GivenName, in.FamilyName = args[0], args[1]
		case 3:
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			in.ID, in.GivenName, in.FamilyName = id, args[1], args[2]
		default:
			return fmt.Errorf("%w: user upsert [id] <given_name> <family_name>", errUsage)
		}
		return a.Do(ctx, func(ctx context.Context, svc *app.Services) error {
			u, err := svc.User.UpsertUser(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "User saved: ID=%d, Name=%s %s\n", u.ID, u.GivenName, u.FamilyName)
			return nil
		})
	case "get":
		id, err := singleID(args)
		if err != nil {
			return err
		}
		return a.Do(ctx, func(ctx context.Context, svc *app.Services) error {
			u, err := svc.User.GetUser(ctx, id)
			if err != nil {
				return err
			}
			if u == nil {
				fmt.Fprintf(out, "User %d not found\n", id)
				return nil
			}
			fmt.Fprintf(out, "User: ID=%d, Name=%s %s, Accounts=%d\n", u.ID, u.GivenName, u.FamilyName, len(u.Accounts))
			for _, acc := range u.Accounts {
				fmt.Fprintf(out, "  Account: ID=%d, Label=%s, Balance=%s\n", acc.ID, acc.Label, acc.Amount.StringFixed(2))
			}
			return nil
		})
	case "delete":
		id, err := singleID(args)
		if err != nil {
			return err
		}
		return a.Do(ctx, func(ctx context.Context, svc *app.Services) error {
			if err := svc.User.DeleteUser(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(out, "User %d deleted\n", id)
			return nil
		})
	default:
		return fmt.Errorf("%w: unknown user command %q", errUsage, cmd)
	}
}

func runAccount(ctx context.Context, a *app.App, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "create":
		if len(args) != 2 {
			return fmt.Errorf("%w: account create <user_id> <label>", errUsage)
		}
		userID, err := parseID(args[0])
		if err != nil {
			return err
		}
		return a.Do(ctx, func(ctx context.Context, svc *app.Services) error {
			acc, err := svc.Account.CreateAccount(ctx, args[1], userID)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Account created: ID=%d, Balance=%s\n", acc.ID, acc.Amount.StringFixed(2))
			return nil
		})
	case "deposit", "withdraw":
		if len(args) != 2 {
			return fmt.Errorf("%w: account %s <account_id> <amount>", errUsage, cmd)
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("%w: invalid amount %q", errUsage, args[1])
		}
		return a.Do(ctx, func(ctx context.Context, svc *app.Services) error {
			op := svc.Account.Deposit
			if cmd == "withdraw" {
				op = svc.Account.Withdraw
			}
			acc, err := op(ctx, id, amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Account %d: %s %s. New balance: %s\n", acc.ID, cmd, amount.StringFixed(2), acc.Amount.StringFixed(2))
			return nil
		})
	case "delete":
		id, err := singleID(args)
		if err != nil {
			return err
		}
		return a.Do(ctx, func(ctx context.Context, svc *app.Services) error {
			if err := svc.Account.DeleteAccount(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(out, "Account %d deleted\n", id)
			return nil
		})
	default:
		return fmt.Errorf("%w: unknown account command %q", errUsage, cmd)
	}
}

func singleID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one id", errUsage)
	}
	return parseID(args[0])
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", errUsage, raw)
	}
	return id, nil
}
