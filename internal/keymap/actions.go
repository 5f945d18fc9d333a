// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Sheet actions
	ActionOpen   Action = "open"   // o - open or reopen the sheet
	ActionClose  Action = "close"  // c
	ActionExpand Action = "expand" // e

	// List navigation
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionSelect   Action = "select" // enter - show detail

	// Map markers
	ActionNextMarker Action = "next_marker"
	ActionPrevMarker Action = "prev_marker"

	// Detail overlay
	ActionDismiss Action = "dismiss" // esc
)
