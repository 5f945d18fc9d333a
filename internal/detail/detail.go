// Package detail implements the transient overlay shown for a single
// selected item.
//
// The overlay slides in from the bottom, can be dragged down to dismiss and
// slides out before being torn down. Unlike the sheet, dismissal is a binary
// decision: past a fixed distance or velocity it closes, otherwise it springs
// back.
package detail

import (
	"io"
	"log/slog"

	"github.com/llehouerou/platemap/internal/gesture"
	"github.com/llehouerou/platemap/internal/spring"
)

// Config configures an Overlay.
type Config struct {
	Height          float64 // full height of the overlay
	DismissDistance float64 // downward drag that dismisses
	DismissVelocity float64 // downward release velocity that dismisses
	Spring          spring.Config
}

// DefaultConfig returns the default overlay configuration.
func DefaultConfig() Config {
	return Config{
		Height:          300,
		DismissDistance: 90,
		DismissVelocity: 0.6,
		Spring:          spring.DefaultConfig(),
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.DismissDistance <= 0 {
		c.DismissDistance = d.DismissDistance
	}
	if c.DismissVelocity <= 0 {
		c.DismissVelocity = d.DismissVelocity
	}
	return c
}

type phase int

const (
	hidden phase = iota
	shown
	exiting
)

// Overlay holds the selected item and its slide offset. Offset 0 is fully
// shown; offset Height is fully off screen.
type Overlay[T any] struct {
	cfg      Config
	phase    phase
	item     T
	offset   float64
	anim     *spring.Animation
	dragging bool
	start    float64
	onClosed func()
	log      *slog.Logger
}

var _ gesture.Handler = (*Overlay[int])(nil)

// New creates a hidden overlay.
func New[T any](cfg Config, log *slog.Logger) *Overlay[T] {
	cfg = cfg.withDefaults()
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Overlay[T]{
		cfg:    cfg,
		offset: cfg.Height,
		anim:   spring.New(cfg.Spring, cfg.Height),
		log:    log,
	}
}

// SetClosedHandler registers fn to run once the overlay has been torn down
// after its exit animation.
func (o *Overlay[T]) SetClosedHandler(fn func()) {
	o.onClosed = fn
}

// Show presents item. A visible overlay swaps its item in place; an exiting
// overlay is brought back.
func (o *Overlay[T]) Show(item T) {
	o.item = item
	switch o.phase {
	case hidden:
		o.phase = shown
		o.offset = o.cfg.Height
		o.anim.Start(o.offset, 0)
		o.log.Debug("detail shown")
	case exiting:
		o.phase = shown
		o.offset = o.freeze()
		o.anim.Start(o.offset, 0)
		o.log.Debug("detail exit cancelled by new selection")
	case shown:
		o.log.Debug("detail item replaced")
	}
}

// Dismiss starts the exit animation. Dismissing a hidden or exiting overlay
// does nothing.
func (o *Overlay[T]) Dismiss() {
	if o.phase != shown {
		return
	}
	o.dragging = false
	o.phase = exiting
	if o.anim.Active() {
		o.offset = o.freeze()
	}
	o.anim.Start(o.offset, o.cfg.Height)
	o.log.Debug("detail dismissing", "offset", o.offset)
	if !o.anim.Active() {
		o.teardown()
	}
}

// Close tears the overlay down immediately, skipping the exit animation.
func (o *Overlay[T]) Close() {
	if o.phase == hidden {
		return
	}
	o.anim.Jump(o.cfg.Height)
	o.teardown()
}

// OnDragBegin starts a drag of the overlay.
func (o *Overlay[T]) OnDragBegin() {
	if o.phase != shown {
		return
	}
	if o.anim.Active() {
		o.offset = o.freeze()
	}
	o.dragging = true
	o.start = o.offset
}

// OnDragMove follows the finger; dragging down pushes the overlay away.
func (o *Overlay[T]) OnDragMove(translationY float64) {
	if !o.dragging {
		return
	}
	o.offset = gesture.Clamp(o.start+gesture.Finite(translationY), 0, o.cfg.Height)
}

// OnDragEnd dismisses or springs back.
func (o *Overlay[T]) OnDragEnd(translationY, velocityY float64) {
	if !o.dragging {
		return
	}
	o.OnDragMove(translationY)
	o.dragging = false

	ty := gesture.Finite(translationY)
	vy := gesture.Finite(velocityY)
	if ShouldDismiss(o.cfg, ty, vy) {
		o.Dismiss()
		return
	}
	o.anim.Start(o.offset, 0)
}

// OnDragTerminate releases with zero velocity.
func (o *Overlay[T]) OnDragTerminate() {
	if !o.dragging {
		return
	}
	o.OnDragEnd(o.offset-o.start, 0)
}

// ShouldDismiss is the binary release decision.
func ShouldDismiss(cfg Config, translationY, velocityY float64) bool {
	return translationY > cfg.DismissDistance || velocityY > cfg.DismissVelocity
}

// Step advances the enter/exit animation one frame and reports whether the
// overlay is still moving.
func (o *Overlay[T]) Step() bool {
	if !o.anim.Active() {
		return false
	}
	pos, done := o.anim.Step()
	o.offset = gesture.Clamp(pos, 0, o.cfg.Height)
	if !done {
		return true
	}
	if o.phase == exiting {
		o.teardown()
	}
	return false
}

// Visible reports whether the overlay is on screen, including while exiting.
func (o *Overlay[T]) Visible() bool { return o.phase != hidden }

// Exiting reports whether the exit animation is running.
func (o *Overlay[T]) Exiting() bool { return o.phase == exiting }

// Dragging reports whether the overlay is being dragged.
func (o *Overlay[T]) Dragging() bool { return o.dragging }

// Animating reports whether a spring is in flight.
func (o *Overlay[T]) Animating() bool { return o.anim.Active() }

// Item returns the shown item.
func (o *Overlay[T]) Item() (T, bool) {
	if o.phase == hidden {
		var zero T
		return zero, false
	}
	return o.item, true
}

// Offset returns how far the overlay is pushed below its resting position.
func (o *Overlay[T]) Offset() float64 { return o.offset }

// Height returns the overlay's full height.
func (o *Overlay[T]) Height() float64 { return o.cfg.Height }

// VisibleHeight returns the on-screen part of the overlay.
func (o *Overlay[T]) VisibleHeight() float64 {
	if o.phase == hidden {
		return 0
	}
	return o.cfg.Height - o.offset
}

// SetHeight resizes the overlay, keeping a resting overlay fully shown.
func (o *Overlay[T]) SetHeight(h float64) {
	if h <= 0 {
		return
	}
	o.cfg.Height = h
	o.offset = gesture.Clamp(o.offset, 0, h)
	if o.phase == hidden {
		o.offset = h
		o.anim.Jump(h)
		return
	}
	if o.phase == exiting && o.anim.Active() {
		o.anim.Retarget(h)
	}
}

// freeze stops the spring and returns its offset clamped like a rendered
// frame.
func (o *Overlay[T]) freeze() float64 {
	return gesture.Clamp(o.anim.Cancel(), 0, o.cfg.Height)
}

func (o *Overlay[T]) teardown() {
	var zero T
	o.item = zero
	o.phase = hidden
	o.dragging = false
	o.offset = o.cfg.Height
	o.log.Debug("detail closed")
	if o.onClosed != nil {
		o.onClosed()
	}
}
