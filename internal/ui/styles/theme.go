package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Coral - markers, handle, focused items
	Secondary lipgloss.Color // Gold - ratings, selected marker

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgMap    lipgloss.Color // Map canvas
	BgSheet  lipgloss.Color // Sheet and detail card
	BgCursor lipgloss.Color // List cursor

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Error lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base           lipgloss.Style // Default text
	Muted          lipgloss.Style // Dimmed text
	Subtle         lipgloss.Style // Very dim text
	Title          lipgloss.Style // Bold, bright
	Grid           lipgloss.Style // Map background dots
	Marker         lipgloss.Style
	MarkerSelected lipgloss.Style
	Handle         lipgloss.Style // Grab handle on sheet and card
	Sheet          lipgloss.Style // Opaque sheet rows
	Cursor         lipgloss.Style // List cursor row
	Rating         lipgloss.Style
	Pill           lipgloss.Style
	Error          lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#ff7a59"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#4e4e4e"),

	BgMap:    lipgloss.Color("#121212"),
	BgSheet:  lipgloss.Color("#1f1f1f"),
	BgCursor: lipgloss.Color("#353535"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#ff7a59"),

	Error: lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Grid:   lipgloss.NewStyle().Foreground(t.FgSubtle),
		Marker: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		MarkerSelected: lipgloss.NewStyle().
			Foreground(t.BgMap).
			Background(t.Secondary).
			Bold(true),
		Handle: lipgloss.NewStyle().Foreground(t.FgMuted),
		Sheet: lipgloss.NewStyle().
			Background(t.BgSheet).
			Foreground(t.FgBase),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase).
			Bold(true),
		Rating: lipgloss.NewStyle().Foreground(t.Secondary),
		Pill: lipgloss.NewStyle().
			Foreground(t.BgMap).
			Background(t.Primary).
			Bold(true).
			Padding(0, 1),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
