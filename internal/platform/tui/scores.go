package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/duosnake/internal/registry"
	"github.com/vovakirdan/duosnake/internal/storage"
)

// ScoreRow is one line of the high-score table.
type ScoreRow struct {
	GameID string
	Title  string
	Best   int
}

// LoadScoreRows reads the best score of each game.
func LoadScoreRows(store storage.Store, games []registry.GameInfo) ([]ScoreRow, error) {
	rows := make([]ScoreRow, 0, len(games))
	for _, g := range games {
		best, err := store.HighScore(g.ID)
		if err != nil {
			return nil, fmt.Errorf("load score for %s: %w", g.ID, err)
		}
		rows = append(rows, ScoreRow{GameID: g.ID, Title: g.Title, Best: best})
	}
	return rows, nil
}

// RenderScoreTable formats rows as a static table.
func RenderScoreTable(rows []ScoreRow) string {
	columns := []table.Column{
		{Title: "Game", Width: 8},
		{Title: "Title", Width: 14},
		{Title: "Best length", Width: 12},
	}

	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row{r.GameID, r.Title, strconv.Itoa(r.Best)}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), // Rows plus the bordered header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle() // Nothing is highlighted in a static table
	t.SetStyles(s)

	return t.View()
}
