package gesture

import "time"

// DefaultVelocityWindow is the trailing window used to estimate release velocity.
const DefaultVelocityWindow = 100 * time.Millisecond

// maxSamples bounds the sample buffer regardless of event rate.
const maxSamples = 32

type sample struct {
	y  float64
	at time.Time
}

// Tracker turns absolute pointer positions into contract-conforming events.
// It is meant for input sources that do not report velocity themselves.
type Tracker struct {
	window  time.Duration
	active  bool
	originY float64
	lastY   float64
	samples []sample
}

// NewTracker creates a tracker estimating velocity over window.
// A non-positive window falls back to DefaultVelocityWindow.
func NewTracker(window time.Duration) *Tracker {
	if window <= 0 {
		window = DefaultVelocityWindow
	}
	return &Tracker{
		window:  window,
		samples: make([]sample, 0, maxSamples),
	}
}

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool {
	return t.active
}

// Begin starts a drag at y. A begin while active restarts the drag; the
// consumer is responsible for terminating its previous session.
func (t *Tracker) Begin(y float64, at time.Time) Event {
	y = Finite(y)
	t.active = true
	t.originY = y
	t.lastY = y
	t.samples = t.samples[:0]
	t.record(y, at)
	return Event{Phase: PhaseBegin, At: at}
}

// Move records a pointer position. ok is false when no drag is active.
func (t *Tracker) Move(y float64, at time.Time) (Event, bool) {
	if !t.active {
		return Event{}, false
	}
	y = Finite(y)
	t.lastY = y
	t.record(y, at)
	return Event{Phase: PhaseMove, TranslationY: y - t.originY, At: at}, true
}

// End releases the drag at y. ok is false when no drag is active.
func (t *Tracker) End(y float64, at time.Time) (Event, bool) {
	if !t.active {
		return Event{}, false
	}
	y = Finite(y)
	t.record(y, at)
	ev := Event{
		Phase:        PhaseEnd,
		TranslationY: y - t.originY,
		VelocityY:    t.velocity(),
		At:           at,
	}
	t.reset()
	return ev, true
}

// Cancel aborts the drag. ok is false when no drag is active.
func (t *Tracker) Cancel(at time.Time) (Event, bool) {
	if !t.active {
		return Event{}, false
	}
	ev := Event{Phase: PhaseTerminate, TranslationY: t.lastY - t.originY, At: at}
	t.reset()
	return ev, true
}

// Velocity returns the current velocity estimate in units per millisecond.
func (t *Tracker) Velocity() float64 {
	return t.velocity()
}

func (t *Tracker) reset() {
	t.active = false
	t.samples = t.samples[:0]
}

func (t *Tracker) record(y float64, at time.Time) {
	if len(t.samples) == maxSamples {
		copy(t.samples, t.samples[1:])
		t.samples = t.samples[:maxSamples-1]
	}
	t.samples = append(t.samples, sample{y: y, at: at})
}

// velocity is the finite difference between the oldest and newest samples
// inside the trailing window.
func (t *Tracker) velocity() float64 {
	n := len(t.samples)
	if n < 2 {
		return 0
	}
	last := t.samples[n-1]
	cutoff := last.at.Add(-t.window)

	first := last
	for i := n - 2; i >= 0; i-- {
		if t.samples[i].at.Before(cutoff) {
			break
		}
		first = t.samples[i]
	}

	elapsed := last.at.Sub(first.at)
	if elapsed <= 0 {
		return 0
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	return Finite((last.y - first.y) / ms)
}
