package cli

import (
	"fmt"
	"io"

	"tutorstate/backend/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	seenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FBBF24"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))

	lightThemeStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#0F172A")).
			Background(lipgloss.Color("#F1F5F9"))
	darkThemeStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#F1F5F9")).
			Background(lipgloss.Color("#0F172A"))
)

func renderModules(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("Modules"))
	for i, m := range models.Modules() {
		fmt.Fprintf(w, "%2d. %-16s %s\n", i+1, m.ID, mutedStyle.Render(m.Title))
	}
}

func renderProgress(w io.Writer, state models.ProgressState, overview models.ProgressOverview) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf(
		"Progress %d/%d completed (%.0f%%)", overview.Completed, overview.Total, overview.PercentComplete,
	)))

	for _, m := range models.Modules() {
		entry := state[m.ID]

		var mark string
		switch {
		case entry.Completed:
			mark = doneStyle.Render("[x]")
		case entry.LastVisited != "":
			mark = seenStyle.Render("[~]")
		default:
			mark = mutedStyle.Render("[ ]")
		}

		visited := entry.LastVisited
		if visited == "" {
			visited = "never"
		}
		fmt.Fprintf(w, "%s %-16s %s\n", mark, m.ID, mutedStyle.Render(visited))
	}
}

func renderTheme(w io.Writer, theme models.Theme) {
	style := lightThemeStyle
	if theme.IsDark() {
		style = darkThemeStyle
	}
	fmt.Fprintf(w, "theme: %s\n", style.Render(theme.String()))
}
