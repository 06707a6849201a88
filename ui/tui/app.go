package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"coinwatch/internal/config"
	"coinwatch/internal/market"
	"coinwatch/ui/tui/state"
	"coinwatch/ui/tui/styles"
	"coinwatch/ui/tui/views"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// MainModel is the Bubble Tea Model acting as the Controller. Events from
// the keyboard, the logic clock and the render clock arrive as one ordered
// message stream; each is translated into zero or one Actions, queued, and
// the queue is drained fully before the next event is awaited.
type MainModel struct {
	provider market.PriceProvider
	cfg      config.Config
	state    state.AppState

	queue []Action // FIFO; strict arrival order

	search  textinput.Model
	spinner spinner.Model

	// Spring physics keep the viewport gliding toward the selected row.
	spring    harmonica.Spring
	scrollPos float64
	scrollVel float64

	frame    string // last laid-out frame; redrawn only on render actions
	fetchSeq int    // generation counter; stale fetch completions are dropped
	width    int
	height   int
	quitting bool
}

// Messages
type TickMsg time.Time
type FrameMsg time.Time

// PricesMsg is the completion of an async refresh.
type PricesMsg struct {
	Seq  int
	Rows []market.PriceRow
	Err  error
}

func InitialModel(provider market.PriceProvider, cfg config.Config, rows []market.PriceRow) MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.Placeholder = "BTC"
	ti.CharLimit = 16
	ti.Width = 24

	st := state.New(cfg.UI.RowHeight)
	st.ApplyRows(rows)

	// The spring step is the frame period itself; deriving an FPS count
	// would truncate to zero for periods of a second or more.
	spring := harmonica.NewSpring(cfg.UI.FrameInterval.Std().Seconds(), 10.0, 0.9)

	return MainModel{
		provider: provider,
		cfg:      cfg,
		state:    st,
		search:   ti,
		spinner:  s,
		spring:   spring,
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(
		m.spinner.Tick,
		m.tickCmd(),
		m.frameCmd(),
	)
}

// Commands

// tickCmd schedules the next logic clock event. Each fired event reschedules
// itself, so the cadence holds regardless of input volume.
func (m *MainModel) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.UI.TickInterval.Std(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameCmd schedules the next render clock event.
func (m *MainModel) frameCmd() tea.Cmd {
	return tea.Tick(m.cfg.UI.FrameInterval.Std(), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// fetchCmd runs the provider call off the update loop. The deadline covers
// all retry attempts; a hung exchange can never stall the UI.
func (m *MainModel) fetchCmd(filter string, seq int) tea.Cmd {
	provider := m.provider
	budget := m.cfg.Exchange.RequestTimeout.Std() * time.Duration(m.cfg.Exchange.RetryAttempts+1)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), budget)
		defer cancel()
		rows, err := provider.Prices(ctx, filter)
		return PricesMsg{Seq: seq, Rows: rows, Err: err}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.routeKey(msg)...)

	case TickMsg:
		m.enqueue(Action{Kind: ActionTick})
		cmds = append(cmds, m.tickCmd())

	case FrameMsg:
		m.enqueue(Action{Kind: ActionRender})
		cmds = append(cmds, m.frameCmd())

	case PricesMsg:
		m.handlePrices(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The redraw itself goes through the queue like any other render.
		m.enqueue(Action{Kind: ActionRender})

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	cmds = append(cmds, m.drain()...)

	// Termination is checked only after the queue has fully drained.
	if m.quitting {
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

// routeKey is the two-state mode machine. In search mode every key belongs
// to the text input except Enter/Esc, which commit the buffer; in normal
// mode keys go through the action mapper.
func (m *MainModel) routeKey(msg tea.KeyMsg) []tea.Cmd {
	if m.state.Mode == state.ModeSearch {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			query := strings.ToUpper(strings.TrimSpace(m.search.Value()))
			m.state.Mode = state.ModeNormal
			m.search.Blur()
			m.enqueue(Action{Kind: ActionCommitSearch, Query: query})
			return nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return []tea.Cmd{cmd}
		}
	}

	m.enqueue(mapKey(msg))
	return nil
}

func (m *MainModel) enqueue(a Action) {
	if a.Kind == ActionNone {
		return
	}
	m.queue = append(m.queue, a)
}

// drain applies every pending action in FIFO order.
func (m *MainModel) drain() []tea.Cmd {
	var cmds []tea.Cmd
	for len(m.queue) > 0 {
		a := m.queue[0]
		m.queue = m.queue[1:]
		cmds = append(cmds, m.apply(a)...)
	}
	return cmds
}

// apply is the updater: one action, one state transition.
func (m *MainModel) apply(a Action) []tea.Cmd {
	switch a.Kind {
	case ActionNext:
		m.state.Next()

	case ActionPrevious:
		m.state.Previous()

	case ActionNextColor:
		m.state.NextTheme(len(styles.Palettes))

	case ActionPreviousColor:
		m.state.PreviousTheme(len(styles.Palettes))

	case ActionEnterSearch:
		m.state.Mode = state.ModeSearch
		m.search.SetValue("")
		return []tea.Cmd{m.search.Focus()}

	case ActionCommitSearch:
		m.state.Filter = a.Query
		return m.startRefresh()

	case ActionRefresh:
		return m.startRefresh()

	case ActionTick:
		// The logic clock's only standing job: kick a refetch once the
		// data is older than the configured auto-refresh interval.
		if ar := m.cfg.UI.AutoRefresh.Std(); ar > 0 && !m.state.Refreshing && time.Since(m.state.LastUpdate) >= ar {
			return m.startRefresh()
		}

	case ActionRender:
		m.animate()
		m.frame = m.layout()

	case ActionQuit:
		m.quitting = true
	}
	return nil
}

// startRefresh issues an async fetch carrying the current filter. A newer
// request supersedes any still in flight.
func (m *MainModel) startRefresh() []tea.Cmd {
	m.fetchSeq++
	m.state.Refreshing = true
	slog.Debug("refresh issued", "seq", m.fetchSeq, "filter", m.state.Filter)
	return []tea.Cmd{m.fetchCmd(m.state.Filter, m.fetchSeq)}
}

func (m *MainModel) handlePrices(msg PricesMsg) {
	if msg.Seq != m.fetchSeq {
		// Superseded by a newer refresh.
		return
	}
	m.state.Refreshing = false

	if msg.Err != nil {
		// Keep the previous rows on screen; the footer shows the failure.
		m.state.SetError(msg.Err)
		slog.Error("refresh failed", "error", msg.Err)
		return
	}

	m.state.ApplyRows(msg.Rows)
	m.scrollPos = 0
	m.scrollVel = 0
}

func (m *MainModel) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionRelease || m.state.Mode != state.ModeNormal {
		return
	}
	// Only the drawn window carries mouse zones, so the hit test stays
	// bounded no matter how large the row set is.
	first, last := views.VisibleRange(m.state, m.height, m.scrollPos)
	for i := first; i < last; i++ {
		if zone.Get(fmt.Sprintf("row_%d", i)).InBounds(msg) {
			m.state.Select(i)
			return
		}
	}
}

// animate advances the viewport spring one frame toward the selected row.
func (m *MainModel) animate() {
	m.scrollPos, m.scrollVel = m.spring.Update(m.scrollPos, m.scrollVel, float64(m.state.ScrollPos))
}

func (m *MainModel) layout() string {
	props := views.ViewProps{
		Width:        m.width,
		Height:       m.height,
		Colors:       styles.NewTableColors(styles.Palettes[m.state.ThemeIndex]),
		SpinnerView:  m.spinner.View(),
		SearchView:   m.search.View(),
		ScrollOffset: m.scrollPos,
	}

	if m.state.Mode == state.ModeSearch {
		return views.RenderSearch(m.state, props)
	}
	return views.RenderDashboard(m.state, props)
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}
	if m.width == 0 {
		return fmt.Sprintf("\n  %s starting...\n", m.spinner.View())
	}
	return m.frame
}

// Start runs the dashboard until the operator quits or the input layer
// fails. rows is the startup fetch result; the table is never born empty-
// handed unless the exchange really has nothing to show.
func Start(provider market.PriceProvider, cfg config.Config, rows []market.PriceRow) error {
	m := InitialModel(provider, cfg, rows)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
