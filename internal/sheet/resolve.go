package sheet

import (
	"fmt"

	"github.com/llehouerou/platemap/internal/gesture"
)

// Thresholds are the product-feel constants of the release decision.
// Velocities are in height units per millisecond, distances in height units.
type Thresholds struct {
	FastCloseVelocity float64
	ModerateVelocity  float64
	CollapseVelocity  float64
	SmallVelocity     float64
	CloseHeight       float64
	LargeMovement     float64
	ModerateMovement  float64
}

// DefaultThresholds returns the tuned defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FastCloseVelocity: 1.2,
		ModerateVelocity:  0.5,
		CollapseVelocity:  0.8,
		SmallVelocity:     0.3,
		CloseHeight:       100,
		LargeMovement:     150,
		ModerateMovement:  50,
	}
}

// Validate checks that every threshold is positive and that the relative
// ordering the rules rely on holds.
func (t Thresholds) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"fast_close_velocity", t.FastCloseVelocity},
		{"moderate_velocity", t.ModerateVelocity},
		{"collapse_velocity", t.CollapseVelocity},
		{"small_velocity", t.SmallVelocity},
		{"close_height", t.CloseHeight},
		{"large_movement", t.LargeMovement},
		{"moderate_movement", t.ModerateMovement},
	}
	for _, f := range fields {
		if !(f.v > 0) {
			return &ConfigError{Field: f.name, Reason: fmt.Sprintf("must be positive, got %g", f.v)}
		}
	}
	if t.SmallVelocity > t.ModerateVelocity || t.ModerateVelocity > t.FastCloseVelocity {
		return &ConfigError{Field: "thresholds", Reason: "require small_velocity <= moderate_velocity <= fast_close_velocity"}
	}
	if t.SmallVelocity > t.CollapseVelocity {
		return &ConfigError{Field: "thresholds", Reason: "require small_velocity <= collapse_velocity"}
	}
	if t.ModerateMovement > t.LargeMovement {
		return &ConfigError{Field: "thresholds", Reason: "require moderate_movement <= large_movement"}
	}
	return nil
}

// Rule identifies which branch of the release decision fired.
type Rule int

const (
	RuleFastClose Rule = iota
	RuleCollapse
	RuleExpand
	RulePosition
)

func (r Rule) String() string {
	switch r {
	case RuleFastClose:
		return "fast-close"
	case RuleCollapse:
		return "collapse"
	case RuleExpand:
		return "expand"
	case RulePosition:
		return "position"
	}
	return "unknown"
}

// Release describes the end of a drag.
type Release struct {
	FinalHeight  float64
	VelocityY    float64 // positive is downward, toward closing
	TranslationY float64 // net displacement since begin, positive is downward
}

// Resolve picks the snap point a release settles on. Rules are evaluated in
// order and the first match wins. Non-finite velocity or translation count
// as zero.
func Resolve(points Points, th Thresholds, rel Release) (Name, Rule) {
	h := rel.FinalHeight
	v := gesture.Finite(rel.VelocityY)
	dy := gesture.Finite(rel.TranslationY)

	switch {
	case v > th.FastCloseVelocity ||
		h < th.CloseHeight ||
		(v > th.ModerateVelocity && dy > th.LargeMovement):
		return Closed, RuleFastClose
	case v > th.CollapseVelocity ||
		(v > th.SmallVelocity && dy > th.ModerateMovement):
		return Default, RuleCollapse
	case v < -th.CollapseVelocity ||
		(v < -th.SmallVelocity && dy < -th.ModerateMovement):
		return Expanded, RuleExpand
	}

	if h > points.Midpoint() {
		return Expanded, RulePosition
	}
	return Default, RulePosition
}
