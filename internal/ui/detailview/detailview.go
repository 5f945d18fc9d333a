// Package detailview renders the card shown for a selected place.
package detailview

import (
	"fmt"
	"strings"

	"github.com/llehouerou/platemap/internal/catalog"
	"github.com/llehouerou/platemap/internal/ui/mapview"
	"github.com/llehouerou/platemap/internal/ui/render"
	"github.com/llehouerou/platemap/internal/ui/styles"
)

// chrome is the border plus horizontal padding of the card.
const chrome = 4

// Render draws the full card for p, exactly rows lines tall. idx is the
// place's marker index, or -1 when it has none.
func Render(p catalog.Place, idx, width, rows int) string {
	if rows <= 0 || width <= chrome {
		return ""
	}
	t := styles.T()
	s := t.S()
	inner := width - chrome

	body := []string{
		s.Handle.Render(render.Center("━━━━━━", inner)),
		render.Row(
			t.TitleGradient().RenderBold(render.Truncate(p.Name, max(inner-8, 1))),
			s.Subtle.Render("esc ✕"),
			inner,
		),
		s.Muted.Render(render.Truncate(p.Cuisine+" · "+p.Address, inner)),
		"",
		s.Rating.Foreground(styles.RatingColor(p.Rating)).Render(fmt.Sprintf("%s %.1f", render.Stars(p.Rating), p.Rating)) +
			s.Muted.Render("  "+render.Reviews(p.Reviews)),
	}
	if idx >= 0 {
		body = append(body, s.Subtle.Render("Marker "+mapview.Label(idx)+" on the map"))
	}

	card := styles.CardStyle(width).Height(max(rows-1, 1)).Render(strings.Join(body, "\n"))
	lines := strings.Split(card, "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	return strings.Join(lines, "\n")
}

// Slice returns the top visible lines of a rendered card, for a card that
// is partly slid off the bottom of the screen.
func Slice(card string, visible int) string {
	if visible <= 0 {
		return ""
	}
	lines := strings.Split(card, "\n")
	if visible < len(lines) {
		lines = lines[:visible]
	}
	return strings.Join(lines, "\n")
}
