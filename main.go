package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/commands"
	"github.com/colonyops/tick/internal/core/config"
	"github.com/colonyops/tick/internal/core/logging"
	"github.com/colonyops/tick/internal/core/styles"
	"github.com/colonyops/tick/internal/tick"
	"github.com/colonyops/tick/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() falls back
	// to runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

// shutdown closes the app, then the log file. The log file is closed even
// when closing the app fails.
func shutdown(closeApp func() error, closeLog func()) error {
	if closeLog != nil {
		defer closeLog()
	}

	if err := closeApp(); err != nil {
		log.Error().Err(err).Msg("failed to close database")
		return err
	}
	return nil
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		tickApp   = &tick.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:        "tick",
		Usage:       commands.RootUsage,
		UsageText:   commands.RootUsageText,
		Description: commands.RootDescription,
		Version:     build(),
		Flags:       flags.CLIFlags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to <datadir>/tick.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = commands.DefaultLogFile(flags.DataDir)
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			if flags.Storage != "" {
				cfg.Storage.Backend = flags.Storage
				if err := cfg.Validate(); err != nil {
					return ctx, fmt.Errorf("invalid --storage: %w", err)
				}
			}
			flags.Config = cfg

			// Validation guarantees the theme exists.
			styles.SetTheme(cfg.Palette())

			opened, err := tick.Open(cfg, log.Logger)
			if err != nil {
				return ctx, fmt.Errorf("open storage: %w", err)
			}

			// Commands already hold a pointer to tickApp.
			*tickApp = *opened

			return logging.WithSlot(ctx, cfg.Storage.Key), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			return shutdown(tickApp.Close, logCloser)
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, tickApp)

	app = commands.RegisterAll(app, flags, tickApp)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'tick --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
