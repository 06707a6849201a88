package views

import (
	"coinwatch/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// RenderDashboard draws the price table plus footer for one frame.
func RenderDashboard(s state.AppState, props ViewProps) string {
	footer := FooterView{}.Render(s, props)

	tableProps := props
	tableProps.Height = props.Height - lipgloss.Height(footer)
	table := TableView{}.Render(s, tableProps)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, table, footer))
}

// RenderSearch draws the search-edit overlay.
func RenderSearch(s state.AppState, props ViewProps) string {
	return SearchView{}.Render(s, props)
}
