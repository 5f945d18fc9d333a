// internal/app/messages.go
package app

import (
	"time"

	"github.com/llehouerou/platemap/internal/catalog"
)

// FrameMsg advances the sheet and detail springs by one frame.
type FrameMsg time.Time

// PlacesLoadedMsg carries the result of reading the catalog.
type PlacesLoadedMsg struct {
	Places []catalog.Place
	Err    error
}
