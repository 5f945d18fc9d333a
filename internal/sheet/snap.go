// Package sheet implements a draggable bottom sheet that snaps between
// discrete heights.
//
// The Controller tracks a continuous height 1:1 with the user's drag and, on
// release, resolves one snap point from position and velocity and springs
// toward it. It depends only on the abstract gesture contract, so it can be
// driven by any input source.
package sheet

import (
	"errors"
	"fmt"
)

// Name identifies a snap point.
type Name string

const (
	Closed   Name = "closed"
	Default  Name = "default"
	Expanded Name = "expanded"
)

// Point is a resting height the sheet can snap to.
type Point struct {
	Name   Name
	Height float64
}

// Points is the ordered set of snap points.
type Points struct {
	Closed   Point
	Default  Point
	Expanded Point
}

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid sheet configuration")

// ConfigError describes a configuration mistake detected at construction.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// NewPoints builds the snap points for a viewport. Expanded is the viewport
// height minus the reserved margin.
func NewPoints(defaultHeight, viewport, reservedMargin float64) (Points, error) {
	if reservedMargin < 0 {
		return Points{}, &ConfigError{Field: "reserved_margin", Reason: "must not be negative"}
	}
	p := Points{
		Closed:   Point{Name: Closed, Height: 0},
		Default:  Point{Name: Default, Height: defaultHeight},
		Expanded: Point{Name: Expanded, Height: viewport - reservedMargin},
	}
	if err := p.Validate(); err != nil {
		return Points{}, err
	}
	return p, nil
}

// Validate checks that heights are strictly increasing from Closed at zero.
func (p Points) Validate() error {
	if p.Closed.Height != 0 {
		return &ConfigError{Field: "closed", Reason: fmt.Sprintf("height must be 0, got %g", p.Closed.Height)}
	}
	if !(p.Expanded.Height > 0) {
		return &ConfigError{
			Field:  "expanded",
			Reason: fmt.Sprintf("height must be positive, got %g (viewport too small for reserved margin)", p.Expanded.Height),
		}
	}
	if !(p.Default.Height > p.Closed.Height) {
		return &ConfigError{Field: "default_height", Reason: fmt.Sprintf("must be greater than 0, got %g", p.Default.Height)}
	}
	if !(p.Expanded.Height > p.Default.Height) {
		return &ConfigError{
			Field:  "expanded",
			Reason: fmt.Sprintf("height %g must exceed default height %g", p.Expanded.Height, p.Default.Height),
		}
	}
	return nil
}

// Get returns the point with the given name.
func (p Points) Get(name Name) (Point, bool) {
	switch name {
	case Closed:
		return p.Closed, true
	case Default:
		return p.Default, true
	case Expanded:
		return p.Expanded, true
	}
	return Point{}, false
}

// Midpoint is the boundary between Default and Expanded used when a release
// carries no meaningful velocity.
func (p Points) Midpoint() float64 {
	return (p.Default.Height + p.Expanded.Height) / 2
}

// Max returns the tallest allowed height.
func (p Points) Max() float64 {
	return p.Expanded.Height
}
