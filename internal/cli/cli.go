package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/condgen/internal/app"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList collects the values of a repeatable flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated app config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	defaults, err := app.Defaults()
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("condgen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
condgen - Conditional source generation driven by build profiles.

Usage:
  condgen [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to a single .hcl definition file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the definition file or directory.")
	cFlag := flagSet.String("c", "", "Path to the definition file or directory (shorthand).")
	outFlag := flagSet.String("out", defaults.OutDir, "Directory generated files are written under.")
	profileFlag := flagSet.String("profile", "", "Name of a defined profile to resolve against.")
	osFlag := flagSet.String("os", "", "Override the target operating system.")
	archFlag := flagSet.String("arch", "", "Override the target architecture.")
	ptrBitsFlag := flagSet.Int("ptr-bits", 0, "Override the target pointer width. 0 keeps the profile's value.")
	var features stringList
	flagSet.Var(&features, "feature", "Enable a feature flag. May be repeated.")
	var setVars stringList
	flagSet.Var(&setVars, "set", "Set a profile variable as NAME=VALUE. May be repeated.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print the selection plan without writing files.")
	workersFlag := flagSet.Int("workers", defaults.WorkerCount, "Number of concurrent render workers.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *versionFlag {
		fmt.Fprintln(output, "condgen", Version)
		return nil, true, nil
	}

	path := ""
	if *configFlag != "" {
		path = *configFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Definition path determined.", "path", path)

	if path == "" {
		slog.Debug("No definition path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

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

	defaults.ConfigPath = path
	defaults.OutDir = *outFlag
	defaults.ProfileName = *profileFlag
	defaults.OS = *osFlag
	defaults.Arch = *archFlag
	defaults.PtrBits = *ptrBitsFlag
	defaults.Features = features
	defaults.SetVars = setVars
	defaults.DryRun = *dryRunFlag
	defaults.LogFormat = logFormat
	defaults.LogLevel = logLevel
	defaults.WorkerCount = *workersFlag

	config, err := app.NewConfig(defaults)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
