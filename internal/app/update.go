// internal/app/update.go
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/platemap/internal/errmsg"
	"github.com/llehouerou/platemap/internal/gesture"
	"github.com/llehouerou/platemap/internal/ui"
	"github.com/llehouerou/platemap/internal/ui/layout"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)

	case PlacesLoadedMsg:
		m.handlePlacesLoaded(msg)

	case FrameMsg:
		m.ticking = false
		m.panel.Step()
		m.card.Step()

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}
	}

	m.list.Sync(m.sheetRows())
	return m, m.scheduleFrame()
}

// scheduleFrame starts the frame loop when something is moving. At most one
// frame is in flight.
func (m *Model) scheduleFrame() tea.Cmd {
	if m.ticking || !m.animating() {
		return nil
	}
	m.ticking = true
	return FrameCmd(m.panel.Config().Spring.FrameInterval())
}

func (m Model) animating() bool {
	return (m.panel.Animating() && !m.panel.Suspended()) || m.card.Animating()
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.geom = layout.New(msg.Width, msg.Height, m.geom.PointsPerRow)
	m.mapView.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if msg.Width < ui.MinWidth || msg.Height < ui.MinHeight {
		m.tooSmall = fmt.Errorf("terminal too small: need at least %dx%d", ui.MinWidth, ui.MinHeight)
		m.cancelDrag()
		return
	}
	if err := m.panel.SetViewport(m.geom.Viewport()); err != nil {
		m.tooSmall = err
		m.cancelDrag()
		m.log.Warn("viewport rejected", "width", msg.Width, "height", msg.Height, "err", err)
		return
	}
	m.tooSmall = nil

	// The card never covers the map title row.
	maxCard := m.geom.Viewport() - m.geom.Points(ui.MapHeaderRows)
	m.card.SetHeight(min(m.detailH, maxCard))
	m.log.Debug("resized", "width", msg.Width, "height", msg.Height,
		"viewport", m.geom.Viewport(), "expanded", m.panel.Points().Expanded.Height)
}

// cancelDrag terminates an in-flight drag. Mouse input is ignored while the
// terminal is too small, so its release would never arrive.
func (m *Model) cancelDrag() {
	if ev, ok := m.tracker.Cancel(m.now()); ok {
		m.log.Debug("drag terminated by resize")
		gesture.Dispatch(m.coord, ev)
	}
}

func (m *Model) handlePlacesLoaded(msg PlacesLoadedMsg) {
	if msg.Err != nil {
		m.errMsg = errmsg.Format(errmsg.OpPlacesLoad, msg.Err)
		m.log.Error("load places", "err", msg.Err)
		return
	}
	m.places = msg.Places
	m.mapView.SetPlaces(msg.Places)
	m.list.SetPlaces(msg.Places)
	m.log.Info("places loaded", "count", len(msg.Places))
}

// selectPlace highlights place idx everywhere and brings up its detail card.
// The place is re-read from the catalog so the card shows current data.
func (m *Model) selectPlace(idx int) {
	if idx < 0 || idx >= len(m.places) {
		return
	}
	p := m.places[idx]
	if m.catalog != nil {
		fresh, err := m.catalog.Get(p.ID)
		if err != nil {
			m.errMsg = errmsg.FormatWith(errmsg.OpPlaceLoad, p.Name, err)
			m.log.Warn("reload place", "id", p.ID, "err", err)
		} else {
			p = fresh
			m.places[idx] = fresh
		}
	}
	m.mapView.Select(idx)
	m.list.Jump(idx, m.sheetRows())
	m.coord.ItemSelected(p)
}

// focusPlace highlights place idx on the map and in the list without
// opening its card.
func (m *Model) focusPlace(idx int) {
	if idx < 0 {
		return
	}
	m.mapView.Select(idx)
	m.list.Jump(idx, m.sheetRows())
}

func (m Model) sheetRows() int {
	return m.geom.Rows(m.panel.Height())
}

// markerIndex returns the list index of the place shown in the card.
func (m Model) markerIndex() int {
	p, ok := m.card.Item()
	if !ok {
		return -1
	}
	for i, q := range m.places {
		if q.ID == p.ID {
			return i
		}
	}
	return -1
}
