package sheet

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/llehouerou/platemap/internal/gesture"
	"github.com/llehouerou/platemap/internal/spring"
)

// Config configures a Controller.
type Config struct {
	DefaultHeight  float64
	ReservedMargin float64 // Expanded = viewport - ReservedMargin
	Thresholds     Thresholds
	Spring         spring.Config
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		DefaultHeight:  320,
		ReservedMargin: 120,
		Thresholds:     DefaultThresholds(),
		Spring:         spring.DefaultConfig(),
	}
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for drag and snap decisions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSettleHandler registers fn to be called each time the sheet comes to
// rest on a snap point.
func WithSettleHandler(fn func(Point)) Option {
	return func(c *Controller) {
		c.onSettle = fn
	}
}

// Controller owns the sheet height and turns drag events into snap decisions.
// It is not safe for concurrent use; all calls are expected from the UI loop.
type Controller struct {
	cfg       Config
	points    Points
	anim      *spring.Animation
	height    float64
	closed    bool
	target    Name
	session   *gesture.Session
	suspended bool
	onSettle  func(Point)
	log       *slog.Logger
}

var _ gesture.Handler = (*Controller)(nil)

// New creates a controller resting at the Default snap point for a viewport
// of the given height. Invalid geometry or thresholds return a *ConfigError.
func New(cfg Config, viewport float64, opts ...Option) (*Controller, error) {
	if err := cfg.Thresholds.Validate(); err != nil {
		return nil, err
	}
	points, err := NewPoints(cfg.DefaultHeight, viewport, cfg.ReservedMargin)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:    cfg,
		points: points,
		anim:   spring.New(cfg.Spring, points.Default.Height),
		height: points.Default.Height,
		target: Default,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Height returns the current rendered height.
func (c *Controller) Height() float64 { return c.height }

// IsDragging reports whether a drag session is active.
func (c *Controller) IsDragging() bool { return c.session != nil }

// IsClosed reports whether the sheet is committed to the Closed snap point.
func (c *Controller) IsClosed() bool { return c.closed }

// Target returns the snap point the sheet rests on or is moving toward.
func (c *Controller) Target() Name { return c.target }

// Animating reports whether a spring animation is in flight.
func (c *Controller) Animating() bool { return c.anim.Active() }

// Suspended reports whether gesture handling is paused.
func (c *Controller) Suspended() bool { return c.suspended }

// Points returns the current snap points.
func (c *Controller) Points() Points { return c.points }

// Config returns the controller configuration.
func (c *Controller) Config() Config { return c.cfg }

// Session returns a copy of the active drag session.
func (c *Controller) Session() (gesture.Session, bool) {
	if c.session == nil {
		return gesture.Session{}, false
	}
	return *c.session, true
}

// OnDragBegin starts a drag session anchored at the current height. A running
// animation is frozen in place; an already active session is terminated first.
func (c *Controller) OnDragBegin() {
	if c.suspended {
		return
	}
	if c.session != nil {
		c.log.Debug("sheet drag restarted while active")
		c.OnDragTerminate()
	}
	if c.anim.Active() {
		c.height = c.freeze()
	}
	c.session = &gesture.Session{StartHeight: c.height}
	c.log.Debug("sheet drag begin", "height", c.height)
}

// OnDragMove tracks the finger 1:1.
func (c *Controller) OnDragMove(translationY float64) {
	if c.suspended || c.session == nil {
		return
	}
	c.session.TranslationY = gesture.Finite(translationY)
	c.height = c.session.Height(0, c.points.Max())
}

// OnDragEnd resolves the release and springs toward the chosen snap point.
func (c *Controller) OnDragEnd(translationY, velocityY float64) {
	if c.suspended || c.session == nil {
		return
	}
	c.OnDragMove(translationY)
	c.session.VelocityY = gesture.Finite(velocityY)

	rel := Release{
		FinalHeight:  c.height,
		VelocityY:    c.session.VelocityY,
		TranslationY: c.session.TranslationY,
	}
	c.session = nil

	name, rule := Resolve(c.points, c.cfg.Thresholds, rel)
	c.log.Debug("sheet release",
		"height", rel.FinalHeight,
		"velocity", rel.VelocityY,
		"translation", rel.TranslationY,
		"rule", rule.String(),
		"target", string(name),
	)
	c.animateTo(name)
}

// OnDragTerminate handles a drag interrupted by the input source. It is a
// release with zero velocity at the last known translation.
func (c *Controller) OnDragTerminate() {
	if c.session == nil {
		return
	}
	c.OnDragEnd(c.session.TranslationY, 0)
}

// Open springs to the Default snap point.
func (c *Controller) Open() {
	c.request(Default)
}

// Close springs to the Closed snap point.
func (c *Controller) Close() {
	c.request(Closed)
}

// Expand springs to the Expanded snap point.
func (c *Controller) Expand() {
	c.request(Expanded)
}

// Reopen opens a closed sheet. It does nothing when the sheet is not closed.
func (c *Controller) Reopen() {
	if !c.closed {
		return
	}
	c.request(Default)
}

// SnapTo springs to the named snap point.
func (c *Controller) SnapTo(name Name) error {
	if _, ok := c.points.Get(name); !ok {
		return fmt.Errorf("unknown snap point %q", name)
	}
	c.request(name)
	return nil
}

// Step advances the spring by one frame. It returns true while the sheet is
// still moving. A suspended sheet does not move.
func (c *Controller) Step() bool {
	if c.suspended || !c.anim.Active() {
		return false
	}
	pos, done := c.anim.Step()
	c.height = gesture.Clamp(pos, 0, c.points.Max())
	if done {
		c.settled()
		return false
	}
	return true
}

// SetViewport recomputes the Expanded snap point for a new viewport height.
// On error the previous geometry is kept.
func (c *Controller) SetViewport(viewport float64) error {
	points, err := NewPoints(c.cfg.DefaultHeight, viewport, c.cfg.ReservedMargin)
	if err != nil {
		return err
	}
	c.points = points
	c.height = gesture.Clamp(c.height, 0, points.Max())

	if c.target == Expanded && c.session == nil {
		if c.anim.Active() {
			c.anim.Retarget(points.Expanded.Height)
		} else {
			c.anim.Jump(points.Expanded.Height)
			c.height = points.Expanded.Height
		}
	}
	return nil
}

// Suspend pauses gesture handling. An active drag is released with zero
// velocity and its animation is held until Resume.
func (c *Controller) Suspend() {
	if c.suspended {
		return
	}
	if c.session != nil {
		c.OnDragTerminate()
	}
	c.suspended = true
	c.log.Debug("sheet suspended", "height", c.height)
}

// Resume re-enables gesture handling and any held animation.
func (c *Controller) Resume() {
	if !c.suspended {
		return
	}
	c.suspended = false
	c.log.Debug("sheet resumed", "height", c.height, "animating", c.anim.Active())
}

// request handles programmatic snap requests. Any request discards an
// active drag. Repeating the current request is then a no-op; anything else
// cancels and replaces the running animation.
func (c *Controller) request(name Name) {
	if c.session != nil {
		c.log.Debug("sheet drag discarded by programmatic request", "target", string(name))
		c.session = nil
	}
	point, _ := c.points.Get(name)
	if c.target == name && (c.anim.Active() || c.height == point.Height) {
		return
	}
	if c.anim.Active() {
		c.height = c.freeze()
	}
	c.animateTo(name)
}

// freeze stops the spring and returns its position clamped to the snap
// range, as Step does.
func (c *Controller) freeze() float64 {
	return gesture.Clamp(c.anim.Cancel(), 0, c.points.Max())
}

func (c *Controller) animateTo(name Name) {
	point, _ := c.points.Get(name)
	c.target = name
	c.closed = name == Closed
	c.anim.Start(c.height, point.Height)
	if !c.anim.Active() {
		c.height = point.Height
		c.settled()
	}
}

func (c *Controller) settled() {
	point, _ := c.points.Get(c.target)
	c.log.Debug("sheet settled", "target", string(point.Name), "height", point.Height)
	if c.onSettle != nil {
		c.onSettle(point)
	}
}
