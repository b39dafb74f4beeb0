package tui

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/tick/internal/core/styles"
	"github.com/colonyops/tick/internal/core/task"
)

// helpMarkdown documents every binding of km.
func helpMarkdown(km keyMap) string {
	var b strings.Builder

	b.WriteString("# Keyboard shortcuts\n\n")
	b.WriteString("## Entry\n\n")
	writeBindingTable(&b, [][2]string{
		{"enter", "add the typed task"},
		{"tab / esc", "move focus to the task table"},
	})

	b.WriteString("\n## Tasks\n\n")
	rows := make([][2]string, 0, 8)
	for _, binding := range []struct {
		keys []string
		desc string
	}{
		{km.Up.Keys(), "move up"},
		{km.Down.Keys(), "move down"},
		{km.Toggle.Keys(), "toggle done"},
		{km.Delete.Keys(), "delete task"},
		{km.PrevPage.Keys(), "previous page"},
		{km.NextPage.Keys(), "next page"},
		{km.Tab.Keys(), "focus the entry"},
		{km.Quit.Keys(), "quit"},
	} {
		rows = append(rows, [2]string{strings.Join(binding.keys, " / "), binding.desc})
	}
	writeBindingTable(&b, rows)

	fmt.Fprintf(&b, "\nTasks are shown %d per page, newest first.\n", task.PageSize)
	return b.String()
}

func writeBindingTable(b *strings.Builder, rows [][2]string) {
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(b, "| `%s` | %s |\n", r[0], r[1])
	}
}

// renderHelp renders the help markdown for the given width, falling back to
// the raw markdown when glamour fails.
func renderHelp(km keyMap, width int) string {
	md := helpMarkdown(km)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw help")
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render help markdown, showing raw help")
		return md
	}

	return strings.TrimSpace(rendered)
}

// helpOverlay renders the help modal centered over background.
func helpOverlay(km keyMap, background string, width, height int) string {
	modalWidth := min(max(width-4, 40), 72)
	body := renderHelp(km, modalWidth-6)
	footer := styles.ModalHelpStyle.Render("esc/?/q close")

	modal := styles.ModalStyle.
		Width(modalWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, body, footer))

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	centerX := max((width-lipgloss.Width(modal))/2, 0)
	centerY := max((height-lipgloss.Height(modal))/2, 0)
	modalLayer.X(centerX).Y(centerY).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}
