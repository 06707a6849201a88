package views

import (
	"fmt"
	"strings"

	"coinwatch/ui/tui/state"
	"coinwatch/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const infoText = "(Esc) quit | (↑/k) up | (↓/j) down | (→/l) next color | (←/h) previous color | (s) search coin | (r) refresh"

type FooterView struct{}

func (v FooterView) Render(s state.AppState, props ViewProps) string {
	var status []string

	status = append(status, fmt.Sprintf("%d pairs", len(s.Rows)))
	if s.Filter != "" {
		status = append(status, "filter: "+s.Filter)
	}
	if !s.LastUpdate.IsZero() {
		status = append(status, "updated "+humanize.Time(s.LastUpdate))
	}
	if s.Refreshing {
		status = append(status, props.SpinnerView+" refreshing")
	}

	statusLine := strings.Join(status, " | ")
	if s.Err != nil {
		statusLine = styles.ErrorStyle.Render("refresh failed: "+s.Err.Error()) + "  " + statusLine
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		infoText,
		statusLine,
	)

	return lipgloss.NewStyle().
		Foreground(props.Colors.RowFG).
		Background(props.Colors.BufferBG).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(props.Colors.FooterBorder).
		Width(max(props.Width-2, 0)).
		Align(lipgloss.Center).
		Render(body)
}
