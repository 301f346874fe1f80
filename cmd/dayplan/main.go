// Package main implements the entry point of dayplan, an interactive
// personal task scheduler. Tasks live in memory for the life of the process.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/dayplan/internal/config"
	"github.com/phrazzld/dayplan/internal/console"
	"github.com/phrazzld/dayplan/internal/platform/logger"
	"github.com/phrazzld/dayplan/internal/platform/memory"
	"github.com/phrazzld/dayplan/internal/service"
)

func main() {
	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("dayplan: %v", err)
	}
}

// run wires the application together and runs the console until the user
// exits. Logs go to logOut so they never interleave with the menu on out.
func run(ctx context.Context, in io.Reader, out, logOut io.Writer) error {
	cfg, l, err := initializeApp(logOut)
	if err != nil {
		return err
	}

	svc, err := service.NewScheduleService(memory.NewTaskStore(l), l)
	if err != nil {
		return fmt.Errorf("failed to create schedule service: %w", err)
	}

	c, err := console.New(svc, cfg.Console, in, out, l)
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}

	return c.Run(ctx)
}

// initializeApp loads configuration and sets up logging.
func initializeApp(logOut io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.App, logOut)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Debug("configuration loaded",
		"log_level", cfg.App.LogLevel,
		"locale", cfg.Console.Locale,
		"date_layout", cfg.Console.DateLayout,
		"time_layout", cfg.Console.TimeLayout)

	return cfg, l, nil
}
