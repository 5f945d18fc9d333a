// Package sheetview renders the bottom sheet: a grab handle, a title row and
// the scrollable list of places.
package sheetview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/platemap/internal/catalog"
	"github.com/llehouerou/platemap/internal/ui"
	"github.com/llehouerou/platemap/internal/ui/cursor"
	"github.com/llehouerou/platemap/internal/ui/mapview"
	"github.com/llehouerou/platemap/internal/ui/render"
	"github.com/llehouerou/platemap/internal/ui/styles"
)

const handleGlyph = "━━━━━━"

// Model holds the list state. Its height changes every frame while the
// sheet animates, so it is passed to View rather than stored.
type Model struct {
	places []catalog.Place
	cursor cursor.Cursor
}

// New returns an empty list.
func New() Model {
	return Model{cursor: cursor.New(ui.ScrollMargin)}
}

// ListRows returns how many list rows fit in a sheet of the given rows.
func ListRows(rows int) int {
	return max(rows-ui.SheetHeaderRows, 0)
}

// SetPlaces replaces the list.
func (m *Model) SetPlaces(places []catalog.Place) {
	m.places = places
	m.cursor.ClampToBounds(len(places))
}

// Places returns the listed places.
func (m Model) Places() []catalog.Place {
	return m.places
}

// Cursor returns the highlighted index.
func (m Model) Cursor() int {
	return m.cursor.Pos()
}

// Move moves the cursor by delta within a sheet of the given rows.
func (m *Model) Move(delta, rows int) {
	m.cursor.Move(delta, len(m.places), ListRows(rows))
}

// Sync stores the scroll offset for a sheet of the given rows.
func (m *Model) Sync(rows int) {
	m.cursor.EnsureVisible(len(m.places), ListRows(rows))
}

// Jump moves the cursor to idx.
func (m *Model) Jump(idx, rows int) {
	m.cursor.Jump(idx, len(m.places), ListRows(rows))
}

// Current returns the place under the cursor.
func (m Model) Current() (catalog.Place, bool) {
	if len(m.places) == 0 {
		return catalog.Place{}, false
	}
	return m.places[m.cursor.Pos()], true
}

// IndexAt maps a list row (0 = first row below the title) to a place index.
func (m Model) IndexAt(listRow, rows int) (int, bool) {
	return m.cursor.IndexAt(listRow, len(m.places), ListRows(rows))
}

// View renders exactly rows lines of the given width. The scroll offset is
// derived for this height, so rows line up with IndexAt.
func (m Model) View(width, rows int) string {
	if rows <= 0 || width <= 0 {
		return ""
	}
	s := styles.T().S()
	listRows := ListRows(rows)

	lines := make([]string, 0, rows)
	lines = append(lines, s.Handle.Inherit(s.Sheet).Render(render.Center(handleGlyph, width)))
	if rows > 1 {
		lines = append(lines, m.title(width))
	}

	start, end := m.cursor.VisibleRange(len(m.places), listRows)
	for i := start; i < end; i++ {
		style := s.Sheet
		if i == m.cursor.Pos() {
			style = s.Cursor
		}
		lines = append(lines, style.Render(m.item(i, width)))
	}
	for len(lines) < rows {
		lines = append(lines, s.Sheet.Render(render.EmptyLine(width)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) title(width int) string {
	s := styles.T().S()
	left := " Nearby places"
	right := fmt.Sprintf("%d ", len(m.places))
	if len(m.places) == 0 {
		right = "none found "
	}
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	line := left + strings.Repeat(" ", gap) + right
	return s.Sheet.Bold(true).Render(render.TruncateAndPad(line, width))
}

// item renders one list line: marker label, name and cuisine on the left,
// rating and review count on the right.
func (m Model) item(i, width int) string {
	p := m.places[i]
	right := fmt.Sprintf("★ %.1f  %s ", p.Rating, humanize.Comma(int64(p.Reviews)))
	leftWidth := width - lipgloss.Width(right)
	if leftWidth < 8 {
		return render.TruncateAndPad(" "+mapview.Label(i)+" "+p.Name, width)
	}
	left := fmt.Sprintf(" %s  %s · %s", mapview.Label(i), p.Name, p.Cuisine)
	return render.TruncateAndPad(left, leftWidth) + right
}
