package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/joltage/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// DefaultMode is the source read when no MODE argument is given.
const DefaultMode = "examples"

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("joltage", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
joltage - Sums the largest joltage each battery bank can produce.

Usage:
  joltage [options] [MODE]

Arguments:
  MODE
    Input source to read: 'examples' (default) or 'input'. Additional
    sources can be declared in the configuration file.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an .hcl file or a directory of .hcl files overriding the built-in configuration.")
	dataDirFlag := flagSet.String("data-dir", "../data", "Directory holding the examples/ and inputs/ data files.")
	dayFlag := flagSet.Int("day", 3, "Puzzle day used to build the default data file names.")
	strategyFlag := flagSet.String("strategy", "recursive", "Selection strategy. Options: 'recursive' or 'greedy'.")
	outputFlag := flagSet.String("output", "text", "Report format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one MODE argument, got %d", flagSet.NArg())}
	}
	mode := DefaultMode
	if flagSet.NArg() == 1 {
		mode = flagSet.Arg(0)
	}
	slog.Debug("Mode determined.", "mode", mode)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		Mode:       mode,
		ConfigPath: *configFlag,
		DataDir:    *dataDirFlag,
		Day:        *dayFlag,
		Strategy:   strings.ToLower(*strategyFlag),
		Output:     strings.ToLower(*outputFlag),
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
