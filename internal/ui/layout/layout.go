// Package layout provides pure functions that map between terminal cells and
// the height units used by the sheet and the detail overlay.
package layout

import "math"

// DefaultPointsPerRow is how many height units one terminal row spans.
const DefaultPointsPerRow = 32

// GrabRows is the number of rows at the top of the sheet and of the detail
// card that start a drag when pressed.
const GrabRows = 2

// Geometry describes the terminal and its row scale.
type Geometry struct {
	Width        int
	Height       int
	PointsPerRow float64
}

// New returns a Geometry, falling back to DefaultPointsPerRow.
func New(width, height int, pointsPerRow float64) Geometry {
	if pointsPerRow <= 0 {
		pointsPerRow = DefaultPointsPerRow
	}
	return Geometry{Width: width, Height: height, PointsPerRow: pointsPerRow}
}

// Viewport returns the terminal height in height units.
func (g Geometry) Viewport() float64 {
	return float64(g.Height) * g.PointsPerRow
}

// Rows converts a height to a whole number of rows, clamped to the terminal.
func (g Geometry) Rows(points float64) int {
	if g.PointsPerRow <= 0 || math.IsNaN(points) || points <= 0 {
		return 0
	}
	return min(int(math.Round(points/g.PointsPerRow)), g.Height)
}

// Points converts rows to height units.
func (g Geometry) Points(rows int) float64 {
	return float64(rows) * g.PointsPerRow
}

// PointerY converts a 0-based screen row to a pointer position in height
// units. Rows grow downward, so a positive translation is a downward drag.
func (g Geometry) PointerY(row int) float64 {
	return float64(row) * g.PointsPerRow
}

// TopRow returns the first screen row of a bottom-anchored block of the
// given height. A hidden block has TopRow == Height.
func (g Geometry) TopRow(points float64) int {
	return g.Height - g.Rows(points)
}

// InGrab reports whether row falls on the grab area of a bottom-anchored
// block of the given height.
func (g Geometry) InGrab(row int, points float64) bool {
	rows := g.Rows(points)
	if rows == 0 {
		return false
	}
	top := g.Height - rows
	return row >= top && row < top+min(GrabRows, rows)
}

// BodyRow maps a screen row to a row inside the block body below the grab
// area. Returns false when row is outside the body.
func (g Geometry) BodyRow(row int, points float64) (int, bool) {
	rows := g.Rows(points)
	top := g.Height - rows
	body := row - top - GrabRows
	if rows <= GrabRows || body < 0 || row >= g.Height {
		return 0, false
	}
	return body, true
}

// PillRect returns the column and row of a one-line pill of the given width,
// centered on the bottom row.
func (g Geometry) PillRect(pillWidth int) (col, row int) {
	return max((g.Width-pillWidth)/2, 0), g.Height - 1
}

// InPill reports whether (x, y) falls on the pill.
func (g Geometry) InPill(x, y, pillWidth int) bool {
	col, row := g.PillRect(pillWidth)
	return y == row && x >= col && x < col+pillWidth
}
