// Package mapview renders places as numbered markers on a dotted canvas.
package mapview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/platemap/internal/catalog"
	"github.com/llehouerou/platemap/internal/ui"
	"github.com/llehouerou/platemap/internal/ui/overlay"
	"github.com/llehouerou/platemap/internal/ui/render"
	"github.com/llehouerou/platemap/internal/ui/styles"
)

const (
	gridStepX = 4
	gridStepY = 2
	gridDot   = "·"
)

type cell struct{ col, row int }

// Model is the map canvas. The first row is a title bar.
type Model struct {
	ui.Base
	places   []catalog.Place
	selected int
}

// New returns an empty map.
func New() Model {
	return Model{selected: -1}
}

// SetPlaces replaces the markers. The selection is cleared if it no longer
// points at a place.
func (m *Model) SetPlaces(places []catalog.Place) {
	m.places = places
	if m.selected >= len(places) {
		m.selected = -1
	}
}

// Places returns the markers.
func (m Model) Places() []catalog.Place {
	return m.places
}

// Select highlights the marker at idx; -1 clears the highlight.
func (m *Model) Select(idx int) {
	if idx < -1 || idx >= len(m.places) {
		return
	}
	m.selected = idx
}

// Selected returns the highlighted marker index, or -1.
func (m Model) Selected() int {
	return m.selected
}

// Cycle moves the highlight by delta, wrapping around. With no highlight it
// starts from the first or last marker.
func (m *Model) Cycle(delta int) int {
	n := len(m.places)
	if n == 0 {
		return -1
	}
	switch {
	case m.selected < 0 && delta >= 0:
		m.selected = 0
	case m.selected < 0:
		m.selected = n - 1
	default:
		m.selected = ((m.selected+delta)%n + n) % n
	}
	return m.selected
}

// Position returns the screen cell of marker idx.
func (m Model) Position(idx int) (col, row int) {
	p := m.places[idx]
	w, h := m.Size()
	canvasH := max(h-ui.MapHeaderRows, 1)
	col = int(math.Round(unit(p.X) * float64(max(w-1, 0))))
	row = ui.MapHeaderRows + int(math.Round(unit(p.Y)*float64(canvasH-1)))
	return col, row
}

// MarkerAt returns the marker under (x, y). A click one column off still
// hits; an exact hit wins over a near one and later markers win ties.
func (m Model) MarkerAt(x, y int) (int, bool) {
	near := -1
	for i := len(m.places) - 1; i >= 0; i-- {
		col, row := m.Position(i)
		if row != y {
			continue
		}
		if col == x {
			return i, true
		}
		if near < 0 && (col == x-1 || col == x+1) {
			near = i
		}
	}
	return near, near >= 0
}

// Label returns the one-character marker label for idx.
func Label(idx int) string {
	switch {
	case idx < 9:
		return string(rune('1' + idx))
	case idx < 9+26:
		return string(rune('a' + idx - 9))
	}
	return "•"
}

// View renders the map at its current size.
func (m Model) View() string {
	w, h := m.Size()
	if w <= 0 || h <= 0 {
		return ""
	}
	s := styles.T().S()

	markers := make(map[cell]int, len(m.places))
	for i := range m.places {
		col, row := m.Position(i)
		markers[cell{col, row}] = i
	}

	lines := make([]string, 0, h)
	lines = append(lines, m.header(w))
	for row := ui.MapHeaderRows; row < h; row++ {
		var b, run strings.Builder
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(s.Grid.Render(run.String()))
				run.Reset()
			}
		}
		for col := range w {
			if idx, ok := markers[cell{col, row}]; ok {
				flush()
				style := s.Marker
				if idx == m.selected {
					style = s.MarkerSelected
				}
				b.WriteString(style.Render(Label(idx)))
				continue
			}
			if col%gridStepX == 0 && row%gridStepY == 0 {
				run.WriteString(gridDot)
			} else {
				run.WriteByte(' ')
			}
		}
		flush()
		lines = append(lines, b.String())
	}

	view := strings.Join(lines, "\n")
	if m.selected >= 0 {
		view = m.callout(view, w)
	}
	return view
}

func (m Model) header(width int) string {
	t := styles.T()
	title := t.TitleGradient().RenderBold("platemap")
	count := t.S().Muted.Render(fmt.Sprintf("%d places", len(m.places)))
	return render.Row(" "+title, count+" ", width)
}

// callout writes the selected place's name beside its marker, on whichever
// side has room.
func (m Model) callout(view string, width int) string {
	col, row := m.Position(m.selected)
	name := " " + render.Truncate(m.places[m.selected].Name, max(width/2, 4)) + " "
	label := styles.T().S().Title.Render(name)
	nameW := lipgloss.Width(label)

	start := col + 2
	if start+nameW > width {
		start = max(col-1-nameW, 0)
	}
	return overlay.Place(view, label, start, row, width)
}

func unit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(v, 1))
}
