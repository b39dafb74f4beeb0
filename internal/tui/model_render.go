package tui

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/tick/internal/core/styles"
	"github.com/colonyops/tick/internal/core/task"
)

const (
	textColWidth   = 36
	timeColWidth   = 24
	statusColWidth = 11
	emptyRowText   = "No tasks available."
)

func (m Model) render() string {
	sections := []string{
		m.renderHeader(),
		m.renderInput(),
		"",
		m.renderTable(),
	}

	if m.ctrl.Paginated() {
		sections = append(sections, "", m.renderPagination())
	}

	sections = append(sections, "", m.renderHelpLine())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	tasks := m.ctrl.Tasks()
	done := 0
	for _, t := range tasks {
		if t.Done {
			done++
		}
	}

	title := styles.CommandHeaderStyle.Render("tick")
	summary := styles.DividerStyle.Render(fmt.Sprintf("%d tasks, %d done", len(tasks), done))
	return title + "  " + summary
}

func (m Model) renderInput() string {
	style := styles.InputBlurredStyle
	if m.focus == focusInput {
		style = styles.InputFocusedStyle
	}
	return style.Render(m.input.View())
}

func (m Model) renderTable() string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		"  ",
		cell(textColWidth, styles.TableHeaderStyle.Render("Task")),
		" ",
		cell(timeColWidth, styles.TableHeaderStyle.Render("Created")),
		" ",
		cell(statusColWidth, styles.TableHeaderStyle.Render("Status")),
	)

	visible := m.ctrl.VisibleTasks()
	if len(visible) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "  "+styles.EmptyRowStyle.Render(emptyRowText))
	}

	rows := make([]string, 0, len(visible)+1)
	rows = append(rows, header)
	for i, t := range visible {
		rows = append(rows, m.renderRow(i, t))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderRow(i int, t task.Task) string {
	cursor := "  "
	if m.focus == focusTable && i == m.cursor {
		cursor = styles.TaskCursorStyle.Render("› ")
	}

	textStyle := styles.TaskTextStyle
	if t.Done {
		textStyle = styles.TaskDoneTextStyle
	}
	text := textStyle.Render(ansi.Truncate(t.Text, textColWidth-1, "…"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		cursor,
		cell(textColWidth, text),
		" ",
		cell(timeColWidth, styles.TaskTimeStyle.Render(t.Time)),
		" ",
		cell(statusColWidth, styles.StatusBadge(t.Done)),
		" ",
		styles.DeleteStyle.Render("✕"),
	)
}

func (m Model) renderPagination() string {
	prev := styles.PageButtonStyle
	if !m.ctrl.HasPrevious() {
		prev = styles.PageButtonOffStyle
	}
	next := styles.PageButtonStyle
	if !m.ctrl.HasNext() {
		next = styles.PageButtonOffStyle
	}

	label := styles.PageLabelStyle.Render(fmt.Sprintf("Page %d of %d", m.ctrl.CurrentPage(), m.ctrl.TotalPages()))
	return lipgloss.JoinHorizontal(lipgloss.Center,
		"  ",
		prev.Render("‹ Previous"),
		"  ",
		label,
		"  ",
		next.Render("Next ›"),
	)
}

func (m Model) renderHelpLine() string {
	bindings := m.keys.tableHelp()
	if m.focus == focusInput {
		bindings = m.keys.inputHelp()
	}
	return styles.FooterHelpStyle.Render(m.help.ShortHelpView(bindings))
}

// cell pads s to a fixed column width.
func cell(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
