// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/platemap/internal/coordinator"
	"github.com/llehouerou/platemap/internal/errmsg"
	"github.com/llehouerou/platemap/internal/keymap"
	"github.com/llehouerou/platemap/internal/ui/detailview"
	"github.com/llehouerou/platemap/internal/ui/overlay"
	"github.com/llehouerou/platemap/internal/ui/render"
	"github.com/llehouerou/platemap/internal/ui/styles"
)

// View renders the map with the sheet, the reopen pill and the detail card
// stacked over it.
func (m Model) View() string {
	w, h := m.geom.Width, m.geom.Height
	if w <= 0 || h <= 0 {
		return ""
	}
	if m.tooSmall != nil {
		return m.renderTooSmall()
	}

	view := m.mapView.View()

	if rows := m.sheetRows(); rows > 0 {
		view = overlay.Bottom(view, m.list.View(w, rows), w)
	}
	if m.pillVisible() {
		col, row := m.geom.PillRect(pillWidth(len(m.places)))
		view = overlay.Place(view, renderPill(len(m.places)), col, row, w)
	}
	if p, ok := m.card.Item(); ok {
		full := m.geom.Rows(m.card.Height())
		visible := m.geom.Rows(m.card.VisibleHeight())
		card := detailview.Render(p, m.markerIndex(), w, full)
		view = overlay.Bottom(view, detailview.Slice(card, visible), w)
	}

	if status := m.statusLine(); status != "" {
		lines := strings.SplitN(view, "\n", 2)
		lines[0] = status
		view = strings.Join(lines, "\n")
	}
	return view
}

// statusLine replaces the map title row with an error or the help line.
func (m Model) statusLine() string {
	s := styles.T().S()
	w := m.geom.Width
	switch {
	case m.errMsg != "":
		return s.Error.Render(render.TruncateAndPad(" "+m.errMsg, w))
	case m.showHelp:
		var bindings []keymap.Binding
		for _, ctx := range keymap.Active(m.coord.Mode() == coordinator.DetailOnly) {
			bindings = append(bindings, keymap.ByContext(ctx)...)
		}
		line := " " + m.help.ShortHelpView(keymap.Help(bindings))
		return lipgloss.NewStyle().MaxWidth(w).Render(render.Pad(line, w))
	}
	return ""
}

func (m Model) renderTooSmall() string {
	s := styles.T().S()
	body := lipgloss.JoinVertical(lipgloss.Center,
		s.Error.Bold(true).Render("terminal too small"),
		s.Muted.Width(m.geom.Width).Align(lipgloss.Center).
			Render(errmsg.Format(errmsg.OpSheetResize, m.tooSmall)),
	)
	return lipgloss.Place(m.geom.Width, m.geom.Height, lipgloss.Center, lipgloss.Center, body)
}

func pillText(count int) string {
	return fmt.Sprintf("▲ %d places", count)
}

// pillWidth includes the pill's horizontal padding.
func pillWidth(count int) int {
	return lipgloss.Width(pillText(count)) + 2
}

func renderPill(count int) string {
	return styles.T().S().Pill.Render(pillText(count))
}
