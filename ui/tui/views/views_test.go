package views

import (
	"fmt"
	"strings"
	"testing"

	"coinwatch/internal/market"
	"coinwatch/ui/tui/state"
	"coinwatch/ui/tui/styles"

	zone "github.com/lrstanley/bubblezone"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	m.Run()
}

func testProps() ViewProps {
	return ViewProps{
		Width:  80,
		Height: 24,
		Colors: styles.NewTableColors(styles.Palettes[0]),
	}
}

func TestRenderDashboardShowsRows(t *testing.T) {
	s := state.New(4)
	s.ApplyRows([]market.PriceRow{
		{Symbol: "BTCUSDT", Price: "64123.45"},
		{Symbol: "ETHUSDT", Price: "3412.10"},
	})

	out := RenderDashboard(s, testProps())

	for _, want := range []string{"BTCUSDT", "ETHUSDT", "Symbol", "Price", "(s) search coin"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dashboard output missing %q", want)
		}
	}
}

func TestRenderDashboardEmpty(t *testing.T) {
	s := state.New(4)

	out := RenderDashboard(s, testProps())
	if !strings.Contains(out, "No pairs matched") {
		t.Error("Empty dashboard should explain itself")
	}
}

func TestRenderDashboardShowsError(t *testing.T) {
	s := state.New(4)
	s.ApplyRows([]market.PriceRow{{Symbol: "BTCUSDT", Price: "1"}})
	s.SetError(errTest{})

	out := RenderDashboard(s, testProps())
	if !strings.Contains(out, "refresh failed") {
		t.Error("Dashboard should surface the refresh failure")
	}
}

type errTest struct{}

func (errTest) Error() string { return "exchange down" }

func TestRenderSearchCentersBox(t *testing.T) {
	s := state.New(4)
	s.Mode = state.ModeSearch

	props := testProps()
	props.SearchView = "> BTC"

	out := RenderSearch(s, props)
	if !strings.Contains(out, "Coin Search") {
		t.Error("Search view missing its title")
	}
	if !strings.Contains(out, "> BTC") {
		t.Error("Search view missing the text input")
	}
}

func TestTableVisibleWindowFollowsScroll(t *testing.T) {
	s := state.New(4)
	rows := make([]market.PriceRow, 40)
	for i := range rows {
		rows[i] = market.PriceRow{Symbol: "SYM" + string(rune('A'+i%26)) + "USDT", Price: "1"}
	}
	s.ApplyRows(rows)
	s.Select(39)

	props := testProps()
	props.ScrollOffset = float64(s.ScrollPos)

	out := TableView{}.Render(s, props)
	if !strings.Contains(out, rows[39].Symbol) {
		t.Error("Selected row fell outside the visible window")
	}
}

func TestVisibleRangeStaysWindowSized(t *testing.T) {
	s := state.New(4)
	rows := make([]market.PriceRow, 500)
	for i := range rows {
		rows[i] = market.PriceRow{Symbol: fmt.Sprintf("C%03dUSDT", i), Price: "1"}
	}
	s.ApplyRows(rows)

	first, last := VisibleRange(s, 24, 0)
	if first != 0 {
		t.Errorf("Expected window anchored at 0, got first %d", first)
	}
	if got := last - first; got > 24/4 {
		t.Errorf("Window of %d entries exceeds a 24-line body", got)
	}

	// At the bottom the window clamps inside the set.
	s.Select(499)
	first, last = VisibleRange(s, 24, float64(s.ScrollPos))
	if last != 500 {
		t.Errorf("Expected window clamped to the end, got last %d", last)
	}
	if first < 0 || first >= last {
		t.Errorf("Degenerate window [%d, %d)", first, last)
	}
	if got := last - first; got > 24/4 {
		t.Errorf("Clamped window of %d entries exceeds a 24-line body", got)
	}
}

func TestVisibleRangeEmptySet(t *testing.T) {
	s := state.New(4)
	if first, last := VisibleRange(s, 24, 0); first != 0 || last != 0 {
		t.Errorf("Expected an empty window, got [%d, %d)", first, last)
	}
}
