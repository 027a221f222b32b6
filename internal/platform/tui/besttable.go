package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term2048/internal/storage"
)

// BestTable renders stored best scores as a static table.
func BestTable(entries []storage.BestEntry) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("BEST SCORES"))
	b.WriteString("\n")

	if len(entries) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		b.WriteString(emptyStyle.Render("No scores yet. Play a game first!"))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{e.Board(), strconv.Itoa(e.Score)})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Board", Width: 8},
			{Title: "Best", Width: 12},
		}),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable in a printed table.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	b.WriteString(t.View())
	b.WriteString("\n")
	return b.String()
}
