package state

import (
	"time"

	"coinwatch/internal/market"
	"coinwatch/internal/trend"

	"github.com/mattn/go-runewidth"
)

// Mode gates which handler sees raw key input.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
)

// AppState holds the current snapshot of the dashboard. The row set is
// replaced wholesale on every refresh; everything derived from it
// (selection, scroll geometry, column widths, directions) is recomputed at
// that point.
type AppState struct {
	Rows         []market.PriceRow
	Selected     int // index into Rows; -1 when Rows is empty
	RowHeight    int
	ScrollPos    int // Selected * RowHeight
	ScrollExtent int // (len(Rows)-1) * RowHeight
	SymbolWidth  int // max display width over symbols
	PriceWidth   int // max display width over price strings
	ThemeIndex   int
	Filter       string // empty means no filter
	Mode         Mode
	Directions   map[string]string // symbol -> trend direction vs previous refresh
	LastUpdate   time.Time
	Err          error // last refresh failure; cleared on success
	Refreshing   bool
}

// New returns an AppState with no rows and an absent selection.
func New(rowHeight int) AppState {
	return AppState{
		Selected:  -1,
		RowHeight: rowHeight,
	}
}

// Next advances the selection with wraparound. No-op on an empty row set.
func (s *AppState) Next() {
	if len(s.Rows) == 0 {
		return
	}
	i := s.Selected
	if i < 0 || i >= len(s.Rows)-1 {
		i = 0
	} else {
		i++
	}
	s.moveTo(i)
}

// Previous retreats the selection with wraparound. No-op on an empty row set.
func (s *AppState) Previous() {
	if len(s.Rows) == 0 {
		return
	}
	i := s.Selected
	switch {
	case i < 0:
		i = 0
	case i == 0:
		i = len(s.Rows) - 1
	default:
		i--
	}
	s.moveTo(i)
}

// Select moves the selection to row i if it exists.
func (s *AppState) Select(i int) {
	if i < 0 || i >= len(s.Rows) {
		return
	}
	s.moveTo(i)
}

func (s *AppState) moveTo(i int) {
	s.Selected = i
	s.ScrollPos = i * s.RowHeight
}

// NextTheme advances the theme index with wraparound over count palettes.
func (s *AppState) NextTheme(count int) {
	s.ThemeIndex = (s.ThemeIndex + 1) % count
}

// PreviousTheme retreats the theme index with wraparound over count palettes.
func (s *AppState) PreviousTheme(count int) {
	s.ThemeIndex = (s.ThemeIndex + count - 1) % count
}

// ApplyRows replaces the row set wholesale and recomputes everything derived
// from it. The selection resets to the first row, or absent when the new set
// is empty.
func (s *AppState) ApplyRows(rows []market.PriceRow) {
	s.Directions = trend.Evaluate(s.Rows, rows)
	s.Rows = rows

	if len(rows) == 0 {
		s.Selected = -1
		s.ScrollExtent = 0
	} else {
		s.Selected = 0
		s.ScrollExtent = (len(rows) - 1) * s.RowHeight
	}
	s.ScrollPos = 0
	s.SymbolWidth, s.PriceWidth = ColumnWidths(rows)
	s.LastUpdate = time.Now()
	s.Err = nil
}

// SetError records a failed refresh. The previous rows stay on screen.
func (s *AppState) SetError(err error) {
	s.Err = err
}

// ColumnWidths returns the maximum display width of the symbol and price
// strings. Display width, not byte length: some pairs carry wide runes.
func ColumnWidths(rows []market.PriceRow) (symbol, price int) {
	for _, r := range rows {
		if w := runewidth.StringWidth(r.Symbol); w > symbol {
			symbol = w
		}
		if w := runewidth.StringWidth(r.Price); w > price {
			price = w
		}
	}
	return symbol, price
}
