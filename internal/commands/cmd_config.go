package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/tick"
)

type ConfigCmd struct {
	flags *Flags
	app   *tick.App
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags, app *tick.App) *ConfigCmd {
	return &ConfigCmd{flags: flags, app: app}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Print the effective configuration",
				UsageText: "tick config show",
				Description: `Prints the configuration after defaults, the config file and flag
overrides are applied. With the sqlite backend the applied schema version
is printed as a comment.`,
				Action: cmd.runShow,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runShow(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer

	data, err := cmd.flags.Config.YAML()
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	_, _ = fmt.Fprintf(out, "# config: %s\n# data dir: %s\n", cmd.flags.ConfigPath, cmd.flags.Config.DataDir)

	if cmd.app.DB != nil {
		version, err := cmd.app.DB.SchemaVersion(ctx)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "# schema: version %d\n", version)
	}

	_, err = out.Write(data)
	return err
}
