// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/platemap/internal/catalog"
)

// FrameCmd returns a command that sends FrameMsg after one frame interval.
func FrameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// LoadPlacesCmd reads all places from the catalog.
func LoadPlacesCmd(c catalog.Interface) tea.Cmd {
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		places, err := c.List()
		return PlacesLoadedMsg{Places: places, Err: err}
	}
}
