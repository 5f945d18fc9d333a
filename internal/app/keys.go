// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/platemap/internal/coordinator"
	"github.com/llehouerou/platemap/internal/errmsg"
	"github.com/llehouerou/platemap/internal/keymap"
	"github.com/llehouerou/platemap/internal/sheet"
)

// handleKey dispatches a key press. While the detail card is up the sheet
// bindings are not active.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	detailUp := m.coord.Mode() == coordinator.DetailOnly
	action := m.keys.Resolve(msg.String(), keymap.Active(detailUp)...)
	if action == "" {
		return nil
	}
	m.errMsg = ""

	switch action {
	case keymap.ActionQuit:
		m.log.Info("quit")
		return tea.Quit
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
		return nil
	}

	if detailUp {
		m.handleDetailKey(action)
		return nil
	}
	m.handlePanelKey(action)
	return nil
}

func (m *Model) handleDetailKey(action keymap.Action) {
	switch action {
	case keymap.ActionDismiss:
		m.coord.DismissDetail()
	case keymap.ActionNextMarker:
		m.selectPlace(m.mapView.Cycle(1))
	case keymap.ActionPrevMarker:
		m.selectPlace(m.mapView.Cycle(-1))
	}
}

func (m *Model) handlePanelKey(action keymap.Action) {
	rows := m.sheetRows()
	switch action {
	case keymap.ActionOpen:
		if m.panel.IsClosed() {
			m.panel.Reopen()
		} else {
			m.panel.Open()
		}
	case keymap.ActionClose:
		m.panel.Close()
	case keymap.ActionExpand:
		if err := m.panel.SnapTo(sheet.Expanded); err != nil {
			m.errMsg = errmsg.FormatWith(errmsg.OpSheetSnap, string(sheet.Expanded), err)
		}
	case keymap.ActionMoveDown:
		m.list.Move(1, rows)
		m.mapView.Select(m.list.Cursor())
	case keymap.ActionMoveUp:
		m.list.Move(-1, rows)
		m.mapView.Select(m.list.Cursor())
	case keymap.ActionSelect:
		if len(m.places) > 0 {
			m.selectPlace(m.list.Cursor())
		}
	case keymap.ActionNextMarker:
		m.focusPlace(m.mapView.Cycle(1))
	case keymap.ActionPrevMarker:
		m.focusPlace(m.mapView.Cycle(-1))
	}
}
