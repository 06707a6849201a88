package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ActionKind enumerates the closed set of intents the control loop applies.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionNext
	ActionPrevious
	ActionNextColor
	ActionPreviousColor
	ActionEnterSearch
	ActionCommitSearch
	ActionRefresh
	ActionTick
	ActionRender
	ActionQuit
)

// Action is one requested state transition. Query carries the committed
// search text for ActionCommitSearch; it is empty for every other kind.
type Action struct {
	Kind  ActionKind
	Query string
}

// mapKey translates a key press into an Action. It is only consulted in
// normal mode; while the search box has focus keys go to the text input
// instead.
func mapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return Action{Kind: ActionQuit}
	case "j", "down":
		return Action{Kind: ActionNext}
	case "k", "up":
		return Action{Kind: ActionPrevious}
	case "l", "right":
		return Action{Kind: ActionNextColor}
	case "h", "left":
		return Action{Kind: ActionPreviousColor}
	case "s":
		return Action{Kind: ActionEnterSearch}
	case "r":
		return Action{Kind: ActionRefresh}
	}
	return Action{Kind: ActionNone}
}
