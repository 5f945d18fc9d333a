// internal/app/mouse.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/platemap/internal/coordinator"
	"github.com/llehouerou/platemap/internal/gesture"
)

// handleMouse turns presses on the grab areas into gesture sessions and
// clicks elsewhere into selections. Drags are routed through the
// coordinator, which forwards them to the frontmost component.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.tooSmall != nil {
		return
	}
	now := m.now()
	y := m.geom.PointerY(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if m.tracker.Active() {
			// A second press without a release: the first drag is lost.
			if ev, ok := m.tracker.Cancel(now); ok {
				gesture.Dispatch(m.coord, ev)
			}
		}
		if m.grabbed(msg.Y) {
			gesture.Dispatch(m.coord, m.tracker.Begin(y, now))
			return
		}
		m.click(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if ev, ok := m.tracker.Move(y, now); ok {
			gesture.Dispatch(m.coord, ev)
		}

	case tea.MouseActionRelease:
		if ev, ok := m.tracker.End(y, now); ok {
			gesture.Dispatch(m.coord, ev)
		}
	}
}

// grabbed reports whether row is on the grab area of the frontmost component.
func (m Model) grabbed(row int) bool {
	if m.coord.Mode() == coordinator.DetailOnly {
		return m.card.Visible() && !m.card.Exiting() && m.geom.InGrab(row, m.card.VisibleHeight())
	}
	return m.geom.InGrab(row, m.panel.Height())
}

func (m *Model) click(x, y int) {
	if m.coord.Mode() == coordinator.DetailOnly {
		if y >= m.geom.TopRow(m.card.VisibleHeight()) {
			return
		}
		// Picking another marker swaps the card's place.
		if idx, ok := m.mapView.MarkerAt(x, y); ok {
			m.selectPlace(idx)
		}
		return
	}

	if m.pillVisible() && m.geom.InPill(x, y, pillWidth(len(m.places))) {
		m.log.Info("reopen requested")
		m.panel.Reopen()
		return
	}
	rows := m.sheetRows()
	if listRow, ok := m.geom.BodyRow(y, m.panel.Height()); ok {
		if idx, ok := m.list.IndexAt(listRow, rows); ok {
			m.selectPlace(idx)
		}
		return
	}
	if y < m.geom.TopRow(m.panel.Height()) {
		if idx, ok := m.mapView.MarkerAt(x, y); ok {
			m.selectPlace(idx)
		}
	}
}

// pillVisible reports whether the reopen pill is on screen: the sheet is
// closed and has finished closing.
func (m Model) pillVisible() bool {
	return m.panel.IsClosed() && !m.panel.Animating() && !m.panel.IsDragging() &&
		m.coord.Mode() == coordinator.PanelOnly
}
