package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultsScale(t *testing.T) {
	g := New(80, 24, 0)
	assert.InDelta(t, DefaultPointsPerRow, g.PointsPerRow, 0)
	assert.InDelta(t, 768, g.Viewport(), 0)
}

func TestRows(t *testing.T) {
	g := New(80, 24, 32)
	tests := []struct {
		points float64
		want   int
	}{
		{0, 0},
		{-10, 0},
		{15, 0},
		{16, 1},
		{320, 10},
		{335, 10},
		{600, 19},
		{5000, 24},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.Rows(tt.points), "points %v", tt.points)
	}
}

func TestPointsAndPointerY(t *testing.T) {
	g := New(80, 24, 16)
	assert.InDelta(t, 160, g.Points(10), 0)
	assert.InDelta(t, 48, g.PointerY(3), 0)
	assert.Greater(t, g.PointerY(10), g.PointerY(9), "lower rows are larger y")
}

func TestTopRow(t *testing.T) {
	g := New(80, 24, 32)
	assert.Equal(t, 14, g.TopRow(320))
	assert.Equal(t, 24, g.TopRow(0))
}

func TestInGrab(t *testing.T) {
	g := New(80, 24, 32) // 320 -> rows 14..23
	tests := []struct {
		name   string
		row    int
		points float64
		want   bool
	}{
		{"handle row", 14, 320, true},
		{"title row", 15, 320, true},
		{"list row", 16, 320, false},
		{"above sheet", 13, 320, false},
		{"closed sheet", 23, 0, false},
		{"one row sheet", 23, 32, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.InGrab(tt.row, tt.points))
		})
	}
}

func TestBodyRow(t *testing.T) {
	g := New(80, 24, 32)

	row, ok := g.BodyRow(16, 320)
	assert.True(t, ok)
	assert.Equal(t, 0, row)

	row, ok = g.BodyRow(23, 320)
	assert.True(t, ok)
	assert.Equal(t, 7, row)

	_, ok = g.BodyRow(15, 320)
	assert.False(t, ok)

	_, ok = g.BodyRow(23, 64)
	assert.False(t, ok, "sheet with no body")
}

func TestPill(t *testing.T) {
	g := New(80, 24, 32)
	col, row := g.PillRect(20)
	assert.Equal(t, 30, col)
	assert.Equal(t, 23, row)

	assert.True(t, g.InPill(30, 23, 20))
	assert.True(t, g.InPill(49, 23, 20))
	assert.False(t, g.InPill(50, 23, 20))
	assert.False(t, g.InPill(35, 22, 20))

	narrow := New(10, 5, 32)
	col, _ = narrow.PillRect(20)
	assert.Equal(t, 0, col)
}
