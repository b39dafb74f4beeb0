package commands

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/core/config"
)

// Root command text shared by the binary and the docs generator.
const (
	RootUsage       = "Keep a small task list in the terminal"
	RootUsageText   = "tick [global options] command [command options]"
	RootDescription = `tick keeps a single list of short tasks, newest first, five to a page.

Run 'tick' with no arguments to open the interactive list.
Run 'tick add <text>' to add a task from the shell.`
)

// Flags holds the global flag values shared by every command.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	Storage    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tick", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tick")
}

// DefaultLogFile returns the log file inside dataDir.
func DefaultLogFile(dataDir string) string {
	return filepath.Join(dataDir, "tick.log")
}

// CLIFlags returns the global flags bound to f.
func (f *Flags) CLIFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("TICK_LOG_LEVEL"),
			Value:       "info",
			Destination: &f.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file (defaults to <data-dir>/tick.log)",
			Sources:     cli.EnvVars("TICK_LOG_FILE"),
			Destination: &f.LogFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("TICK_CONFIG"),
			Value:       DefaultConfigPath(),
			Destination: &f.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "path to data directory",
			Sources:     cli.EnvVars("TICK_DATA_DIR"),
			Value:       DefaultDataDir(),
			Destination: &f.DataDir,
		},
		&cli.StringFlag{
			Name:        "storage",
			Usage:       "storage backend override (sqlite, json, memory)",
			Sources:     cli.EnvVars("TICK_STORAGE"),
			Destination: &f.Storage,
		},
	}
}
