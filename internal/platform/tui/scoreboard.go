package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brick-duel/internal/core"
	"github.com/vovakirdan/brick-duel/internal/storage"
)

// tableStyles are shared by every table the front end draws.
func tableStyles() table.Styles {
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
	return s
}

// rankOf returns the first row holding score, or -1 when the score did not
// make the table.
func rankOf(scores []int, score int) int {
	if score <= 0 {
		return -1
	}
	for i, s := range scores {
		if s == score {
			return i
		}
	}
	return -1
}

// scoreTable builds the high-score table. highlight selects a row; -1
// leaves the table unfocused.
func scoreTable(scores []int, highlight int) table.Model {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{fmt.Sprintf("#%d", i+1), strconv.Itoa(s)}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "High score", Width: 12},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	styles := tableStyles()
	if highlight < 0 {
		styles.Selected = lipgloss.NewStyle()
	} else {
		t.Focus()
		t.SetCursor(highlight)
	}
	t.SetStyles(styles)
	return t
}

// RenderHighScores draws the high-score table on its own.
func RenderHighScores(scores []int) string {
	return titleStyle.Render("HIGH SCORES") + "\n" + scoreTable(scores, -1).View()
}

// RenderMatches draws recent match history, newest first.
func RenderMatches(matches []storage.MatchRecord) string {
	if len(matches) == 0 {
		return subtleStyle.Italic(true).Render("No matches recorded yet.")
	}

	rows := make([]table.Row, len(matches))
	for i, m := range matches {
		winner := "draw"
		if m.Winner.Valid() {
			winner = m.Winner.String()
		}
		rows[i] = table.Row{
			m.CreatedAt.Local().Format("Jan 02 15:04"),
			strconv.Itoa(m.Score1),
			strconv.Itoa(m.Score2),
			winner,
			strconv.Itoa(m.Layout),
			strconv.Itoa(m.Ticks),
		}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Played", Width: 14},
			{Title: core.Player1.String(), Width: 9},
			{Title: core.Player2.String(), Width: 9},
			{Title: "Winner", Width: 9},
			{Title: "Layout", Width: 7},
			{Title: "Ticks", Width: 7},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	styles := tableStyles()
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)

	return titleStyle.Render("RECENT MATCHES") + "\n" + t.View()
}

// RenderStats summarizes match history in a few lines.
func RenderStats(st storage.MatchStats) string {
	if st.Matches == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d matches · %s %d wins · %s %d wins · %d draws\n",
		st.Matches, core.Player1, st.Wins[0], core.Player2, st.Wins[1], st.Draws)
	fmt.Fprintf(&b, "best %d · average %.1f · last played %s",
		st.BestScore, st.AvgScore, st.LastPlayed.Local().Format("Jan 02 15:04"))
	return subtleStyle.Render(b.String())
}
