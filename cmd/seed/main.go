// Command seed loads reservations from a YAML file into the configured
// store, or prints a bcrypt hash for STAFF_PASSWORD_HASH.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/cmd/bootstrap"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/cmd/bootstrap/components"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/password"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/commands"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/shared"

	"go.uber.org/fx"
)

func main() {
	file := flag.String("file", "seed.yaml", "YAML file with a top-level reservations list")
	hash := flag.String("hash-password", "", "print a bcrypt hash of this password and exit")
	flag.Parse()

	if *hash != "" {
		h, err := password.HashPassword(*hash)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(h)
		return
	}

	if err := run(*file); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := parseSeed(f)
	if err != nil {
		return err
	}

	var (
		cmds   commands.ReservationCommands
		logger *slog.Logger
	)
	app := fx.New(
		fx.NopLogger,
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		components.PersistenceModule,
		fx.Provide(
			func() shared.ChangeListener { return shared.NopChangeListener{} },
			commands.NewReservationCommands,
		),
		fx.Populate(&cmds, &logger),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = app.Stop(ctx) }()

	n, err := applySeed(ctx, cmds, entries)
	if err != nil {
		return fmt.Errorf("seeded %d of %d reservations: %w", n, len(entries), err)
	}
	logger.Info("seed complete", "reservations", n, "file", path)
	return nil
}
