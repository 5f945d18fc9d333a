package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient is a two-stop color ramp blended in HCL space.
type Gradient struct {
	From, To lipgloss.Color
}

// TitleGradient is used for the map title and place names.
func (t *Theme) TitleGradient() Gradient {
	return Gradient{From: t.Primary, To: t.Secondary}
}

// RatingGradient runs from a dim tone for poor places to gold.
func (t *Theme) RatingGradient() Gradient {
	return Gradient{From: t.FgMuted, To: t.Secondary}
}

// At returns the color at position f in [0,1]. ANSI palette colors cannot
// be blended; they fall back to mid gray.
func (g Gradient) At(f float64) lipgloss.Color {
	f = min(max(f, 0), 1)
	a := parseHex(g.From)
	b := parseHex(g.To)
	return lipgloss.Color(a.BlendHcl(b, f).Clamped().Hex())
}

// Render colors each grapheme of text along the gradient.
func (g Gradient) Render(text string) string {
	return g.render(text, lipgloss.NewStyle())
}

// RenderBold is Render with bold text.
func (g Gradient) RenderBold(text string) string {
	return g.render(text, lipgloss.NewStyle().Bold(true))
}

func (g Gradient) render(text string, base lipgloss.Style) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return base.Foreground(g.From).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, c := range clusters {
		b.WriteString(base.Foreground(g.At(float64(i) / last)).Render(c))
	}
	return b.String()
}

// RatingColor maps a 0-5 star rating onto the rating gradient. Ratings
// below one star share the dimmest tone.
func RatingColor(rating float64) lipgloss.Color {
	return T().RatingGradient().At((rating - 1) / 4)
}

func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return col
}
