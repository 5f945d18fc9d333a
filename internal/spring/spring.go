// Package spring animates a single value toward a target with a damped spring.
//
// Animations are stepped one frame at a time by the host's frame loop.
// Starting a new animation always cancels the previous one.
package spring

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Config holds spring tuning.
type Config struct {
	AngularFrequency float64 // stiffness, higher is faster
	DampingRatio     float64 // 1 is critically damped, below 1 bounces
	FPS              int     // frames per second of the host loop
	Epsilon          float64 // distance and speed under which the spring is settled
}

// DefaultConfig returns the default spring tuning.
func DefaultConfig() Config {
	return Config{
		AngularFrequency: 7.0,
		DampingRatio:     0.85,
		FPS:              60,
		Epsilon:          0.5,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.AngularFrequency <= 0 {
		c.AngularFrequency = d.AngularFrequency
	}
	if c.DampingRatio <= 0 {
		c.DampingRatio = d.DampingRatio
	}
	if c.FPS <= 0 {
		c.FPS = d.FPS
	}
	if c.Epsilon <= 0 {
		c.Epsilon = d.Epsilon
	}
	return c
}

// FrameInterval returns the tick period matching the configured FPS.
func (c Config) FrameInterval() time.Duration {
	c = c.withDefaults()
	return time.Second / time.Duration(c.FPS)
}

// Animation is a cancellable spring animation of one value.
type Animation struct {
	cfg    Config
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

// New creates an idle animation resting at pos.
func New(cfg Config, pos float64) *Animation {
	cfg = cfg.withDefaults()
	return &Animation{
		cfg:    cfg,
		spring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.AngularFrequency, cfg.DampingRatio),
		pos:    pos,
		target: pos,
	}
}

// Start animates from `from` to `to`, replacing any running animation.
func (a *Animation) Start(from, to float64) {
	a.pos = from
	a.vel = 0
	a.target = to
	a.active = true
	if a.settled() {
		a.finish()
	}
}

// Cancel stops the animation and returns the frozen position.
func (a *Animation) Cancel() float64 {
	a.active = false
	a.vel = 0
	a.target = a.pos
	return a.pos
}

// Jump moves to pos immediately with no animation.
func (a *Animation) Jump(pos float64) {
	a.pos = pos
	a.vel = 0
	a.target = pos
	a.active = false
}

// Retarget changes the destination of a running animation, keeping its
// current velocity. It starts a new animation when idle.
func (a *Animation) Retarget(to float64) {
	if !a.active {
		a.Start(a.pos, to)
		return
	}
	a.target = to
}

// Step advances one frame and returns the new position. done is true once
// the spring has settled; the position is then exactly the target.
func (a *Animation) Step() (pos float64, done bool) {
	if !a.active {
		return a.pos, true
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if math.IsNaN(a.pos) || math.IsNaN(a.vel) || a.settled() {
		a.finish()
		return a.pos, true
	}
	return a.pos, false
}

// Active reports whether the animation is running.
func (a *Animation) Active() bool { return a.active }

// Position returns the current value.
func (a *Animation) Position() float64 { return a.pos }

// Target returns the value the animation converges to.
func (a *Animation) Target() float64 { return a.target }

// Config returns the spring tuning.
func (a *Animation) Config() Config { return a.cfg }

func (a *Animation) settled() bool {
	return math.Abs(a.pos-a.target) < a.cfg.Epsilon && math.Abs(a.vel) < a.cfg.Epsilon
}

func (a *Animation) finish() {
	a.pos = a.target
	a.vel = 0
	a.active = false
}
