// Package overlay stacks rendered blocks over a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view.
// Non-space characters in overlay replace the base at the same position.
// This function is ANSI-aware and handles styled text correctly.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue
		}

		startCol := 0
		for _, r := range plainOverlay {
			if r != ' ' {
				break
			}
			startCol++
		}
		trimmed := strings.TrimRight(plainOverlay, " ")
		endCol := startCol + ansi.StringWidth(trimmed[startCol:])

		baseLines[i] = splice(baseLines[i], ansi.Cut(overlayLine, startCol, endCol), startCol, endCol, width)
	}

	return strings.Join(baseLines, "\n")
}

// Place draws a single-line block at (col, row), replacing the cells it
// covers, spaces included.
func Place(base, block string, col, row, width int) string {
	lines := strings.Split(base, "\n")
	if row < 0 || row >= len(lines) {
		return base
	}
	end := min(col+ansi.StringWidth(block), width)
	lines[row] = splice(lines[row], ansi.Truncate(block, end-col, ""), col, end, width)
	return strings.Join(lines, "\n")
}

// Bottom replaces the last lines of base with the lines of block. The block
// is opaque: each of its lines is padded or cut to width. Extra block lines
// that do not fit are dropped from the top.
func Bottom(base, block string, width int) string {
	if block == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	blockLines := strings.Split(block, "\n")
	if len(blockLines) > len(baseLines) {
		blockLines = blockLines[len(blockLines)-len(baseLines):]
	}

	top := len(baseLines) - len(blockLines)
	for i, line := range blockLines {
		baseLines[top+i] = fit(line, width)
	}
	return strings.Join(baseLines, "\n")
}

// splice writes content over base columns [startCol, endCol).
func splice(baseLine, content string, startCol, endCol, width int) string {
	if w := ansi.StringWidth(baseLine); w < width {
		baseLine += strings.Repeat(" ", width-w)
	}
	result := ansi.Cut(baseLine, 0, startCol) + content
	if endCol < width {
		result += ansi.Cut(baseLine, endCol, width)
	}
	return result
}

func fit(line string, width int) string {
	w := ansi.StringWidth(line)
	switch {
	case w > width:
		return ansi.Truncate(line, width, "")
	case w < width:
		return line + strings.Repeat(" ", width-w)
	}
	return line
}
