package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brick-duel/internal/core"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)
	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))
	onStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))
	offStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
)

// option renders one "key  label" line.
func option(k, label string) string {
	return keyStyle.Render(fmt.Sprintf("%-6s", k)) + optionStyle.Render(label)
}

func onOff(on bool) string {
	if on {
		return onStyle.Render("ON")
	}
	return offStyle.Render("OFF")
}

// place centers a block in the terminal.
func place(width, height int, body string) string {
	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func viewMenu(width, height int, scores []int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("B R I C K   D U E L"),
		subtleStyle.Render("two players, one keyboard"),
		"",
		option("enter", "start"),
		option("s", "settings"),
		option("q", "quit"),
		"",
		scoreTable(scores, -1).View(),
	)
	return place(width, height, panelStyle.Render(body))
}

func viewSettings(width, height int, sound, music bool) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("SETTINGS"),
		option("1", "sound effects  ")+onOff(sound),
		option("2", "music          ")+onOff(music),
		"",
		subtleStyle.Render("esc back"),
	)
	return place(width, height, panelStyle.Render(body))
}

func viewGameOver(width, height int, st core.GameState, scores []int) string {
	headline := "DRAW"
	if st.Winner.Valid() {
		headline = strings.ToUpper(st.Winner.String()) + " WINS"
	}

	results := make([]string, 0, len(core.Players))
	for i, id := range core.Players {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(playerANSI[i]))
		results = append(results, style.Render(fmt.Sprintf("%s  %d", id, st.Scores[i])))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("GAME OVER · "+headline),
		lipgloss.JoinHorizontal(lipgloss.Top, results[0], "     ", results[1]),
		subtleStyle.Render(fmt.Sprintf("reached layout %d", st.Layout)),
		"",
		scoreTable(scores, rankOf(scores, st.BestScore())).View(),
		"",
		option("enter", "play again"),
		option("m", "main menu"),
		option("q", "quit"),
	)
	return place(width, height, panelStyle.Render(body))
}

// playerANSI mirrors playerColors for lipgloss text.
var playerANSI = [2]string{"14", "13"}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
