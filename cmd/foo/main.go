package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/WingSMC/CPP20-Modules/internal/adapters/config"
	"github.com/WingSMC/CPP20-Modules/internal/adapters/idgen"
	"github.com/WingSMC/CPP20-Modules/internal/adapters/output"
	"github.com/WingSMC/CPP20-Modules/internal/core"
	"github.com/WingSMC/CPP20-Modules/internal/logging"
	"github.com/WingSMC/CPP20-Modules/internal/ports"
	"github.com/WingSMC/CPP20-Modules/pkg/foo"
)

type app struct {
	service core.Service
	printer output.Printer
	logger  *zap.Logger
	quiet   bool
	json    bool
}

// deps are the collaborators built once per invocation.
type deps struct {
	ids       ports.IDGen
	newLogger func(logging.LogConfig) *zap.Logger
}

func defaultDeps() deps {
	return deps{ids: idgen.Generator{}, newLogger: logging.NewLogger}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	return runWith(args, stdout, stderr, defaultDeps())
}

func runWith(args []string, stdout io.Writer, stderr io.Writer, d deps) int {
	root := newRootCommand(stdout, stderr, d)
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		reportError(stderr, err)
	}
	if a := fromContext(root); a != nil {
		_ = a.logger.Sync()
	}
	return core.ExitCode(err)
}

func newRootCommand(stdout io.Writer, stderr io.Writer, d deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "foo",
		Short:         "Print values and square integers",
		Args:          usageArgs(cobra.NoArgs),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(flagError)

	var (
		configPath string
		quiet      bool
		jsonOut    bool
		noColor    bool
		verbose    bool
		logLevel   string
		logFormat  string
	)

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	root.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output json")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console|json)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return core.WrapError(core.ExitUsage, "load config", err)
		}
		flags := cmd.Flags()
		if !flags.Changed("json") {
			jsonOut = cfg.JSON
		}
		if noColor || cfg.NoColor {
			color.NoColor = true
		}
		if logLevel == "" {
			logLevel = cfg.Log.Level
		}
		if verbose {
			logLevel = "debug"
		}
		if logFormat == "" {
			logFormat = cfg.Log.Format
		}

		policy, err := foo.ParsePolicy(cfg.Policy)
		if err != nil {
			return core.ErrorFor(err)
		}

		logger := d.newLogger(logging.LogConfig{
			Level:  logLevel,
			Format: logFormat,
			Output: cfg.Log.Output,
			UTC:    cfg.Log.UTC,
			Color:  cfg.Log.Color && !color.NoColor,
		}).With(zap.String("request_id", d.ids.NewID()))

		service := core.Service{
			Out:    stdout,
			Logger: logger,
			Config: core.Config{Policy: policy},
		}

		var printer output.Printer
		if jsonOut {
			printer = output.JSONPrinter{Out: stdout}
		} else {
			printer = output.HumanPrinter{Out: stdout}
		}

		a := &app{
			service: service,
			printer: printer,
			logger:  logger,
			quiet:   quiet,
			json:    jsonOut,
		}
		cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
		root.SetContext(cmd.Context())
		return nil
	}

	root.AddCommand(printCommand())
	root.AddCommand(squareCommand())

	return root
}

type appKey struct{}

func fromContext(cmd *cobra.Command) *app {
	ctx := cmd.Context()
	if ctx == nil {
		return nil
	}
	val := ctx.Value(appKey{})
	if val == nil {
		return nil
	}
	return val.(*app)
}

func (a *app) info(msg string, fields ...zap.Field) {
	if a.quiet {
		return
	}
	a.logger.Info(msg, fields...)
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return core.WrapError(core.ExitUsage, "invalid arguments", err)
		}
		return nil
	}
}

func flagError(_ *cobra.Command, err error) error {
	// pflag reads "-3" as a shorthand flag.
	rest, ok := strings.CutPrefix(err.Error(), "unknown shorthand flag: '")
	if ok && rest != "" && rest[0] >= '0' && rest[0] <= '9' {
		return core.WrapError(core.ExitUsage, "negative numbers must follow --", err)
	}
	return core.WrapError(core.ExitUsage, "invalid flags", err)
}

func reportError(w io.Writer, err error) {
	red := color.New(color.FgRed)
	_, _ = red.Fprint(w, "error:")
	_, _ = fmt.Fprintf(w, " %v\n", err)
}
