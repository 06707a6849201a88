package views

import (
	"coinwatch/ui/tui/state"
	"coinwatch/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type SearchView struct{}

// Render draws the coin-search box centered over a blank buffer. While this
// view is up every key except Enter/Esc belongs to the text input.
func (v SearchView) Render(s state.AppState, props ViewProps) string {
	box := styles.SearchBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.SearchTitleStyle.Render("Coin Search - Enter to search"),
		"",
		props.SearchView,
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).
			Render("one coin at a time, e.g. BTC / ETH / AKT"),
	))

	if props.Width == 0 || props.Height == 0 {
		return box
	}
	return lipgloss.Place(props.Width, props.Height, lipgloss.Center, lipgloss.Center, box)
}
