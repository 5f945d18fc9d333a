package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ModelHarness drives a tea.Model the way the program loop would, collecting
// the commands it returns.
type ModelHarness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewModelHarness wraps m and records its Init command.
func NewModelHarness(m tea.Model) *ModelHarness {
	h := &ModelHarness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertion.
func (h *ModelHarness) Model() tea.Model {
	return h.model
}

// View returns the rendered model.
func (h *ModelHarness) View() string {
	return h.model.View()
}

// SendMsg sends any message and returns the resulting command.
func (h *ModelHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Resize sends a window size message.
func (h *ModelHarness) Resize(width, height int) tea.Cmd {
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// SendKey sends a rune key press.
func (h *ModelHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, arrows).
func (h *ModelHarness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Press sends a left button press at (x, y).
func (h *ModelHarness) Press(x, y int) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// Motion sends a drag motion at (x, y) with the left button held.
func (h *ModelHarness) Motion(x, y int) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

// Release sends a button release at (x, y).
func (h *ModelHarness) Release(x, y int) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *ModelHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil if none.
func (h *ModelHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands clears the collected commands.
func (h *ModelHarness) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// ViewContains checks if the rendered view contains substr, ignoring styles.
func (h *ModelHarness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}
