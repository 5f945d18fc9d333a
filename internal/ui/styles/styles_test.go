package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestGradient_Render(t *testing.T) {
	g := T().TitleGradient()

	assert.Empty(t, g.Render(""))
	assert.Equal(t, "platemap", ansi.Strip(g.RenderBold("platemap")))
	assert.Equal(t, "é", ansi.Strip(g.Render("é")))
}

func TestGradient_At(t *testing.T) {
	g := Gradient{From: "#000000", To: "#ffffff"}
	assert.Equal(t, lipgloss.Color("#000000"), g.At(0))
	assert.Equal(t, lipgloss.Color("#000000"), g.At(-3), "clamped below")
	assert.NotEqual(t, g.At(0.2), g.At(0.8))
}

func TestGradient_ANSIFallsBackToGray(t *testing.T) {
	g := Gradient{From: "240", To: "240"}
	assert.Equal(t, lipgloss.Color("#808080"), g.At(0.5))
}

func TestRatingColor(t *testing.T) {
	theme := T()
	assert.Equal(t, theme.RatingGradient().At(0), RatingColor(0.5))
	assert.Equal(t, theme.RatingGradient().At(1), RatingColor(5))
	assert.NotEqual(t, RatingColor(2), RatingColor(4.5))
}

func TestThemeStylesCached(t *testing.T) {
	s1 := T().S()
	s2 := T().S()
	assert.Same(t, s1, s2)
}

func TestCardStyle_Width(t *testing.T) {
	out := CardStyle(30).Render("Sushi Go")
	assert.Equal(t, 30, lipgloss.Width(out))
}
