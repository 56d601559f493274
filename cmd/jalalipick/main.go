package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tartampluch/go-jalalipick/cmd/jalalipick/commands"
	"github.com/tartampluch/go-jalalipick/internal/config"
)

// main delegates to runMain so deferred functions run before the process
// terminates; os.Exit skips defers.
func main() {
	os.Exit(runMain())
}

// runMain manages the lifecycle, signal handling and exit codes. It returns
// config.ExitCodeSuccess, config.ExitCodeError for runtime failures, or
// config.ExitCodeUsage for bad command lines.
func runMain() int {
	// Cancel the root context on SIGINT (Ctrl+C) or SIGTERM so in-flight
	// downloads abort cleanly.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := commands.Execute(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		fmt.Fprintln(os.Stderr, "Error:", err)

		if errors.Is(err, commands.ErrUsage) {
			return config.ExitCodeUsage
		}
		return config.ExitCodeError
	}

	slog.Debug(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}
