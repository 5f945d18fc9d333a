// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of places kept visible above/below the
	// list cursor.
	ScrollMargin = 1

	// SheetHeaderRows is the handle row plus the title row of the sheet.
	SheetHeaderRows = 2

	// MapHeaderRows is the title bar at the top of the map.
	MapHeaderRows = 1

	// MinWidth and MinHeight are the smallest terminal the layout supports.
	MinWidth  = 32
	MinHeight = 10
)
