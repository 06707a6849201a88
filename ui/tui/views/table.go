package views

import (
	"fmt"
	"math"
	"strings"

	"coinwatch/ui/tui/state"
	"coinwatch/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	headerSymbol = "Symbol"
	headerPrice  = "Price"
	highlightBar = " █ "
	cellPad      = 1
)

type TableView struct{}

func (v TableView) Render(s state.AppState, props ViewProps) string {
	if len(s.Rows) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(styles.Slate200).
			Padding(1, 2).
			Render("No pairs matched the current filter. Press 's' to search again, 'r' to refresh.")
		return lipgloss.NewStyle().Background(props.Colors.BufferBG).Render(empty)
	}

	symWidth := max(s.SymbolWidth, lipgloss.Width(headerSymbol)) + cellPad
	priceWidth := max(s.PriceWidth, lipgloss.Width(headerPrice)) + cellPad

	var b strings.Builder
	b.WriteString(v.renderHeader(props, symWidth, priceWidth))
	b.WriteString("\n")

	rowHeight := max(s.RowHeight, 1)
	first, last := VisibleRange(s, props.Height, props.ScrollOffset)

	track := v.scrollbar(s, (last-first)*rowHeight, rowHeight)
	line := 0

	for i := first; i < last; i++ {
		b.WriteString(v.renderRow(s, props, i, symWidth, priceWidth, rowHeight, track, &line))
	}

	return b.String()
}

func (v TableView) renderHeader(props ViewProps, symWidth, priceWidth int) string {
	headerStyle := lipgloss.NewStyle().
		Foreground(props.Colors.HeaderFG).
		Background(props.Colors.HeaderBG).
		Bold(true)

	cells := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Width(lipgloss.Width(highlightBar)).Render(""),
		headerStyle.Width(symWidth).Render(headerSymbol),
		headerStyle.Width(priceWidth).Render(headerPrice),
	)
	return cells
}

// renderRow renders one entry as a rowHeight-tall block, marked as a mouse
// zone keyed by its absolute row index.
func (v TableView) renderRow(s state.AppState, props ViewProps, i, symWidth, priceWidth, rowHeight int, track []rune, line *int) string {
	rowBG := props.Colors.NormalRowBG
	if i%2 == 1 {
		rowBG = props.Colors.AltRowBG
	}

	selected := i == s.Selected
	contentLine := rowHeight / 2

	cellStyle := lipgloss.NewStyle().Foreground(props.Colors.RowFG).Background(rowBG)
	symStyle := cellStyle
	priceStyle := cellStyle.Foreground(styles.ColorForDirection(s.Directions[s.Rows[i].Symbol]).GetForeground())
	barStyle := cellStyle
	if selected {
		symStyle = symStyle.Reverse(true).Foreground(props.Colors.SelectedFG)
		priceStyle = priceStyle.Reverse(true).Foreground(props.Colors.SelectedFG)
		barStyle = barStyle.Foreground(props.Colors.SelectedFG)
	}

	var lines []string
	for l := 0; l < rowHeight; l++ {
		symbol, price, bar := "", "", "   "
		if l == contentLine {
			symbol = s.Rows[i].Symbol
			price = s.Rows[i].Price
		}
		if selected && (rowHeight <= 2 && l == contentLine || l > 0 && l < rowHeight-1) {
			bar = highlightBar
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			barStyle.Render(bar),
			symStyle.Width(symWidth).Render(symbol),
			priceStyle.Width(priceWidth).Render(price),
		)

		// Scrollbar column rides along the right edge of the body.
		if *line < len(track) {
			row = lipgloss.JoinHorizontal(lipgloss.Top, row, " ", string(track[*line]))
		}
		*line++
		lines = append(lines, row)
	}

	return zone.Mark(fmt.Sprintf("row_%d", i), strings.Join(lines, "\n")) + "\n"
}

// VisibleRange reports the half-open entry range [first, last) the table
// draws for the given total height and spring-animated scroll offset. The
// window is centered on the animated row and clamped to the set. Callers
// hit-testing mouse zones use the same range, so no zone outside it is
// ever consulted.
func VisibleRange(s state.AppState, height int, scrollOffset float64) (first, last int) {
	rowHeight := max(s.RowHeight, 1)
	visible := visibleRows(height, rowHeight)

	animRow := int(math.Round(scrollOffset)) / rowHeight
	first = animRow - visible/2
	if maxFirst := len(s.Rows) - visible; first > maxFirst {
		first = maxFirst
	}
	if first < 0 {
		first = 0
	}

	last = first + visible
	if last > len(s.Rows) {
		last = len(s.Rows)
	}
	return first, last
}

// visibleRows derives how many full entries fit under the header.
func visibleRows(height, rowHeight int) int {
	body := height - 1
	if body < rowHeight {
		return 1
	}
	return body / rowHeight
}

// scrollbar renders the thumb track for the visible body height.
func (v TableView) scrollbar(s state.AppState, bodyLines, rowHeight int) []rune {
	track := make([]rune, bodyLines)
	for i := range track {
		track[i] = '░'
	}
	if s.ScrollExtent <= 0 {
		return track
	}

	thumb := bodyLines * bodyLines / (s.ScrollExtent + bodyLines)
	if thumb < 1 {
		thumb = 1
	}
	pos := (bodyLines - thumb) * s.ScrollPos / s.ScrollExtent
	for i := pos; i < pos+thumb && i < bodyLines; i++ {
		track[i] = '█'
	}
	return track
}
