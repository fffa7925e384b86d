package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todolist-sync/internal/model"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	titleStyle     = lipgloss.NewStyle().Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	doneStyle      = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("244"))
	progressStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	emptyStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244"))
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	checkboxOpen   = "[ ]"
	checkboxClosed = "[x]"
)

// renderCollection writes the overview of every list with its
// completed/total counter.
func renderCollection(w io.Writer, lists []model.TodoList) {
	fmt.Fprintln(w, headerStyle.Render("To-do lists"))
	if len(lists) == 0 {
		fmt.Fprintln(w, emptyStyle.Render("  no lists yet"))
		return
	}

	width := 0
	for _, l := range lists {
		if n := lipgloss.Width(l.Title); n > width {
			width = n
		}
	}

	for _, l := range lists {
		pad := strings.Repeat(" ", width-lipgloss.Width(l.Title))
		fmt.Fprintf(w, "  %s%s  %s  %s\n",
			titleStyle.Render(l.Title),
			pad,
			progressStyle.Render(fmt.Sprintf("%d/%d", l.CompletedCount(), len(l.Tasks))),
			mutedStyle.Render(l.ID),
		)
	}
}

// renderDetail writes one list with its tasks. Completed tasks are struck through.
func renderDetail(w io.Writer, list model.TodoList) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(list.Title))
	b.WriteString("  ")
	b.WriteString(progressStyle.Render(fmt.Sprintf("%d/%d done", list.CompletedCount(), len(list.Tasks))))

	if len(list.Tasks) == 0 {
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render("no tasks yet"))
	}
	for _, t := range list.Tasks {
		b.WriteString("\n")
		box, text := checkboxOpen, t.Title
		if t.Completed {
			box = checkboxClosed
			text = doneStyle.Render(t.Title)
		}
		b.WriteString(fmt.Sprintf("%s %s %s", box, text, mutedStyle.Render(fmt.Sprintf("#%d", t.ID))))
		if t.Description != "" {
			b.WriteString("\n    ")
			b.WriteString(mutedStyle.Render(t.Description))
		}
	}

	fmt.Fprintln(w, boxStyle.Render(b.String()))
}
