package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/joltage/internal/app"
	"github.com/vk/joltage/internal/cli"
	"github.com/vk/joltage/internal/config"
	"github.com/vk/joltage/internal/hcl"
	"github.com/vk/joltage/internal/registry"
)

// main is the entrypoint for the joltage application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	joltageApp, err := app.NewApp(outW, errW, appConfig, hcl.NewLoader())
	if err != nil {
		return usageOr(err)
	}
	return usageOr(joltageApp.Run(context.Background()))
}

// usageOr turns errors caused by a bad mode or strategy name into usage errors.
func usageOr(err error) error {
	if errors.Is(err, config.ErrUnknownSource) || errors.Is(err, registry.ErrNotRegistered) {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	return err
}
