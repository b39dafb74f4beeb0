package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/core/logging"
	"github.com/colonyops/tick/internal/core/validate"
	"github.com/colonyops/tick/internal/tick"
)

// TaskCmd implements the toggle and rm commands, which act on one task id.
type TaskCmd struct {
	flags *Flags
	app   *tick.App
}

// NewTaskCmd creates the toggle and rm commands.
func NewTaskCmd(flags *Flags, app *tick.App) *TaskCmd {
	return &TaskCmd{flags: flags, app: app}
}

// Register adds the toggle and rm commands to the application.
func (cmd *TaskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "toggle",
			Aliases:   []string{"done"},
			Usage:     "Flip a task between pending and done",
			UsageText: "tick toggle <id>",
			Description: `Flips the done flag of the task with the given id.

Unknown ids are ignored.

Examples:
  tick toggle 1767346200000`,
			Action: cmd.runToggle,
		},
		&cli.Command{
			Name:      "rm",
			Aliases:   []string{"delete"},
			Usage:     "Delete a task",
			UsageText: "tick rm <id>",
			Description: `Removes the task with the given id.

Unknown ids are ignored.

Examples:
  tick rm 1767346200000`,
			Action: cmd.runRm,
		},
	)

	return app
}

func (cmd *TaskCmd) runToggle(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithOperation(ctx, "toggle")
	id, err := taskIDArg(c, "tick toggle <id>")
	if err != nil {
		return err
	}

	ctrl := cmd.app.NewController(ctx)
	ctrl.ToggleTask(ctx, id)

	if t, ok := ctrl.Find(id); ok {
		_, _ = fmt.Fprintf(c.Root().Writer, "%d %s\n", t.ID, t.Status())
	}
	return nil
}

func (cmd *TaskCmd) runRm(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithOperation(ctx, "rm")
	id, err := taskIDArg(c, "tick rm <id>")
	if err != nil {
		return err
	}

	ctrl := cmd.app.NewController(ctx)
	before := len(ctrl.Tasks())
	ctrl.DeleteTask(ctx, id)

	if len(ctrl.Tasks()) < before {
		_, _ = fmt.Fprintf(c.Root().Writer, "%d deleted\n", id)
	}
	return nil
}

func taskIDArg(c *cli.Command, usage string) (int64, error) {
	if c.NArg() < 1 {
		return 0, fmt.Errorf("usage: %s", usage)
	}

	id, err := validate.TaskID(c.Args().Get(0))
	if err != nil {
		return 0, fmt.Errorf("usage: %s: %w", usage, err)
	}
	return id, nil
}
