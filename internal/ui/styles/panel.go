package styles

import "github.com/charmbracelet/lipgloss"

// CardStyle returns the bordered style of the detail card.
func CardStyle(width int) lipgloss.Style {
	t := T()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true, true, false, true).
		BorderForeground(t.BorderFocus).
		Background(t.BgSheet).
		Foreground(t.FgBase).
		Padding(0, 1).
		Width(max(width-2, 0))
}

