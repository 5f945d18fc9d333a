// Package gesture defines the drag event contract consumed by draggable panels.
//
// A physical interaction produces exactly one Begin, zero or more Move events
// and exactly one terminal event (End or Terminate). Translations are
// cumulative since Begin and positive downward. Velocities are expressed in
// height units per millisecond, positive downward.
package gesture

import (
	"math"
	"time"
)

// Phase identifies where an event sits in a drag interaction.
type Phase int

const (
	PhaseBegin Phase = iota
	PhaseMove
	PhaseEnd
	PhaseTerminate
)

func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	case PhaseTerminate:
		return "terminate"
	}
	return "unknown"
}

// Event is a single drag event.
type Event struct {
	Phase        Phase
	TranslationY float64 // cumulative since begin
	VelocityY    float64 // only meaningful on PhaseEnd
	At           time.Time
}

// Handler consumes drag events. Implementations must never panic on
// malformed input.
type Handler interface {
	OnDragBegin()
	OnDragMove(translationY float64)
	OnDragEnd(translationY, velocityY float64)
	OnDragTerminate()
}

// Dispatch delivers ev to h.
func Dispatch(h Handler, ev Event) {
	switch ev.Phase {
	case PhaseBegin:
		h.OnDragBegin()
	case PhaseMove:
		h.OnDragMove(ev.TranslationY)
	case PhaseEnd:
		h.OnDragEnd(ev.TranslationY, ev.VelocityY)
	case PhaseTerminate:
		h.OnDragTerminate()
	}
}

// Session is the bookkeeping record of one drag, from begin to release.
type Session struct {
	StartHeight  float64
	TranslationY float64
	VelocityY    float64
}

// Height returns the height tracked by the session, clamped to [lo, hi].
// Dragging upward (negative translation) increases the height.
func (s Session) Height(lo, hi float64) float64 {
	return Clamp(s.StartHeight-s.TranslationY, lo, hi)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Finite returns v, or 0 when v is NaN or infinite.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
