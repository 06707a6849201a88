package views

import (
	"coinwatch/ui/tui/state"
	"coinwatch/ui/tui/styles"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Resolved theme colors for the current frame.
	Colors styles.TableColors

	// Component States
	SpinnerView  string
	SearchView   string
	ScrollOffset float64 // spring-animated scroll position, in row-height units
}

// View defines the contract for any renderable screen in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
