package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gt4500/internal/bridge"
)

// newSalvoTable creates the salvo log table sized for the terminal.
func newSalvoTable(height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Time", Width: 9},
		{Title: "Mode", Width: 7},
		{Title: "Stores", Width: 10},
		{Title: "Result", Width: 7},
		{Title: "Left", Width: 7},
	}

	rows := height - 12 // Leave room for title, stores panel and help
	if rows < 3 {
		rows = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(rows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// salvoRows converts history to table rows, newest first.
func salvoRows(history []bridge.Salvo) []table.Row {
	rows := make([]table.Row, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		s := history[i]

		stores := "-"
		switch {
		case s.PrimaryFired && s.SecondaryFired:
			stores = "both"
		case s.PrimaryFired:
			stores = "primary"
		case s.SecondaryFired:
			stores = "secondary"
		}

		result := "miss"
		if s.Success {
			result = "hit"
		}

		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			s.FiredAt.Format("15:04:05"),
			s.Mode.String(),
			stores,
			result,
			fmt.Sprintf("%d/%d", s.PrimaryLeft, s.SecondaryLeft),
		})
	}
	return rows
}
