// Command docgen generates CLI reference documentation from the tick command
// definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/commands"
	"github.com/colonyops/tick/internal/tick"
)

func main() {
	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	md, err := commands.Markdown(rootCommand())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating %s: %v\n", filepath.Dir(outPath), err)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}

func rootCommand() *cli.Command {
	flags := &commands.Flags{}
	app := &tick.App{}

	root := &cli.Command{
		Name:        "tick",
		Usage:       commands.RootUsage,
		UsageText:   commands.RootUsageText,
		Description: commands.RootDescription,
		Flags:       flags.CLIFlags(),
	}

	return commands.RegisterAll(root, flags, app)
}
