// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/carterperez-dev/portfolio-backend/internal/config"
	"github.com/carterperez-dev/portfolio-backend/internal/core"
	"github.com/carterperez-dev/portfolio-backend/internal/seed"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	ownerName := flag.String("owner", "", "username of the owner account to create")
	ownerPassword := flag.String(
		"password",
		"",
		"owner password (defaults to $SEED_OWNER_PASSWORD)",
	)
	ownerEmail := flag.String("email", "", "email of the owner account")
	flag.Parse()

	if *ownerPassword == "" {
		*ownerPassword = os.Getenv("SEED_OWNER_PASSWORD")
	}

	owner := ownerFromFlags(*ownerName, *ownerPassword, *ownerEmail)
	if err := run(*configPath, owner); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func ownerFromFlags(name, password, email string) *seed.Owner {
	if name == "" {
		return nil
	}
	owner := &seed.Owner{Username: name, Password: password}
	if email != "" {
		owner.Email = &email
	}
	return owner
}

func run(configPath string, owner *seed.Owner) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// seeding always needs the schema, whatever the server config says
	cfg.Database.AutoMigrate = true

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("database close error", "error", err)
		}
	}()

	res, err := seed.New(db.DB, core.NewValidator(), logger).Run(ctx, owner)
	if err != nil {
		return err
	}

	logger.Info("seed complete",
		"skipped", res.Skipped,
		"counts", res.Counts,
		"owner_id", res.OwnerID,
	)
	return nil
}
