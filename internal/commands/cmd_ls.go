package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/core/logging"
	"github.com/colonyops/tick/internal/tick"
	"github.com/colonyops/tick/pkg/iojson"
)

type LsCmd struct {
	flags *Flags
	app   *tick.App

	// flags
	page       int
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *tick.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List tasks",
		UsageText: "tick ls [--page N] [--json]",
		Description: `Displays one page of tasks, newest first.

Pages hold five tasks. Out of range pages are clamped to the nearest page.
Use --json for one JSON object per task.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "page",
				Aliases:     []string{"p"},
				Usage:       "page to show",
				Value:       1,
				Destination: &cmd.page,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithOperation(ctx, "ls")
	ctrl := cmd.app.NewController(ctx)
	ctrl.GoToPage(cmd.page)

	tasks := ctrl.VisibleTasks()
	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, t := range tasks {
			if err := iojson.WriteLine(out, t); err != nil {
				return fmt.Errorf("encode task: %w", err)
			}
		}
		return nil
	}

	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(out, "No tasks available.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tSTATUS\tCREATED\tTEXT")
	for _, t := range tasks {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.Status(), t.Time, t.Text)
	}
	_ = w.Flush()

	_, _ = fmt.Fprintf(out, "\nPage %d of %d\n", ctrl.CurrentPage(), ctrl.TotalPages())
	return nil
}
