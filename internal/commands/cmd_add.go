package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/tick/internal/core/logging"
	"github.com/colonyops/tick/internal/core/validate"
	"github.com/colonyops/tick/internal/tick"
	"github.com/colonyops/tick/pkg/iojson"
)

// stdinIsTerminal gates the interactive prompt. Replaced in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

type AddCmd struct {
	flags *Flags
	app   *tick.App
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags, app *tick.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a task",
		UsageText: "tick add [text...]",
		Description: `Adds a task to the top of the list and prints it as JSON.

Arguments are joined with spaces. With no arguments on a terminal, prompts
for the text. Blank text adds nothing.

Examples:
  tick add Buy milk
  tick add "Call the dentist"`,
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithOperation(ctx, "add")
	text := strings.Join(c.Args().Slice(), " ")

	if text == "" && stdinIsTerminal() {
		if err := cmd.prompt(&text); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("prompt: %w", err)
		}
	}

	ctrl := cmd.app.NewController(ctx)
	ctrl.SetInputBuffer(text)
	if !ctrl.AddTask(ctx) {
		logging.Component("cli").Debug().Ctx(ctx).Msg("blank text, nothing added")
		return nil
	}

	return iojson.WriteWith(c.Root().Writer, os.Stderr, ctrl.Tasks()[0])
}

func (cmd *AddCmd) prompt(text *string) error {
	return huh.NewInput().
		Title("New task").
		Placeholder("Enter a task").
		Validate(validate.TaskText).
		Value(text).
		Run()
}
