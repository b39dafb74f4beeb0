package commands

import (
	"fmt"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/tick"
)

// RegisterAll adds every subcommand to root. The TUI is wired separately as
// the root action.
func RegisterAll(root *cli.Command, flags *Flags, app *tick.App) *cli.Command {
	root = NewAddCmd(flags, app).Register(root)
	root = NewLsCmd(flags, app).Register(root)
	root = NewTaskCmd(flags, app).Register(root)
	root = NewConfigCmd(flags, app).Register(root)
	return root
}

// Markdown renders the CLI reference for root.
func Markdown(root *cli.Command) (string, error) {
	md, err := docs.ToMarkdown(root)
	if err != nil {
		return "", fmt.Errorf("render cli reference: %w", err)
	}
	return md, nil
}
