package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tick/internal/core/styles"
	"github.com/colonyops/tick/internal/core/validate"
)

// Validate checks that the configuration is valid. All field errors are
// reported together.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, required),
		criterio.Run("storage.backend", c.Storage.Backend, oneOf(Backends)),
		validate.SlotKeyField("storage.key", c.Storage.Key),
		criterio.Run("time_format", c.TimeFormat, required),
		criterio.Run("tui.theme", c.TUI.Theme, oneOf(styles.ThemeNames())),
		c.validateDatabase(),
	)
}

func (c *Config) validateDatabase() error {
	var errs criterio.FieldErrorsBuilder
	if c.Database.MaxOpenConns < 1 {
		errs = errs.Append("database.max_open_conns", fmt.Errorf("must be at least 1"))
	}
	if c.Database.MaxIdleConns < 0 {
		errs = errs.Append("database.max_idle_conns", fmt.Errorf("cannot be negative"))
	}
	if c.Database.BusyTimeout < 0 {
		errs = errs.Append("database.busy_timeout", fmt.Errorf("cannot be negative"))
	}
	return errs.ToError()
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func oneOf(allowed []string) func(string) error {
	return func(s string) error {
		if !slices.Contains(allowed, s) {
			return fmt.Errorf("must be one of %s, got %q", strings.Join(allowed, ", "), s)
		}
		return nil
	}
}
