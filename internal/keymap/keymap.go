package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // one of the Context* constants
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Toggle help", ContextGlobal},

	// Sheet
	{ActionOpen, []string{"o"}, "Open sheet", ContextSheet},
	{ActionClose, []string{"c"}, "Close sheet", ContextSheet},
	{ActionExpand, []string{"e"}, "Expand sheet", ContextSheet},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextSheet},
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextSheet},
	{ActionSelect, []string{"enter"}, "Show place", ContextSheet},

	// Map
	{ActionNextMarker, []string{"n"}, "Next marker", ContextMap},
	{ActionPrevMarker, []string{"p"}, "Previous marker", ContextMap},

	// Detail
	{ActionDismiss, []string{"esc"}, "Dismiss place", ContextDetail},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Help converts bindings into bubbles key bindings for a help line. The
// first key is shown as the hint.
func Help(bindings []Binding) []key.Binding {
	result := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		result = append(result, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(b.Keys[0], b.Description),
		))
	}
	return result
}
