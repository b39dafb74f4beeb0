package commands

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/core/logging"
	"github.com/colonyops/tick/internal/core/task"
	"github.com/colonyops/tick/internal/tick"
	"github.com/colonyops/tick/internal/tui"
	"github.com/colonyops/tick/pkg/logutils"
)

type TuiCmd struct {
	flags *Flags
	app   *tick.App
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *tick.App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithOperation(ctx, "tui")

	// The TUI owns the terminal, so warnings are held and printed after exit.
	warnings := logutils.NewDeferred(zerolog.WarnLevel)
	ctrl := cmd.app.NewController(ctx, task.WithLogger(cmd.app.Log.Hook(warnings)))

	m := tui.New(ctx, ctrl, cmd.app.Bus)
	_, err := tea.NewProgram(m).Run()

	if flushErr := warnings.Flush(os.Stderr); flushErr != nil {
		cmd.app.Log.Debug().Err(flushErr).Msg("flush deferred warnings")
	}

	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
