// Package coordinator arbitrates between the persistent sheet and the
// detail overlay so that only one of them is interactive at a time.
package coordinator

import (
	"io"
	"log/slog"

	"github.com/llehouerou/platemap/internal/detail"
	"github.com/llehouerou/platemap/internal/gesture"
)

// Mode is the frontmost component.
type Mode int

const (
	PanelOnly Mode = iota
	DetailOnly
)

func (m Mode) String() string {
	if m == DetailOnly {
		return "detail"
	}
	return "panel"
}

// Panel is the low-priority component that gets suspended while the detail
// overlay is up.
type Panel interface {
	gesture.Handler
	Suspend()
	Resume()
}

// Coordinator routes gestures to the frontmost component and switches
// between them on selection and close events. It has no queue: a new
// selection replaces the current one.
type Coordinator[T any] struct {
	panel  Panel
	detail *detail.Overlay[T]
	mode   Mode
	log    *slog.Logger
}

var _ gesture.Handler = (*Coordinator[int])(nil)

// New wires panel and overlay together. The coordinator becomes the
// overlay's closed handler.
func New[T any](panel Panel, overlay *detail.Overlay[T], log *slog.Logger) *Coordinator[T] {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := &Coordinator[T]{
		panel:  panel,
		detail: overlay,
		mode:   PanelOnly,
		log:    log,
	}
	overlay.SetClosedHandler(c.DetailClosed)
	return c
}

// Mode returns the frontmost component.
func (c *Coordinator[T]) Mode() Mode { return c.mode }

// Selected returns the item shown in the overlay.
func (c *Coordinator[T]) Selected() (T, bool) {
	if c.mode != DetailOnly {
		var zero T
		return zero, false
	}
	return c.detail.Item()
}

// ItemSelected brings the overlay up for item, or swaps its item when it is
// already up.
func (c *Coordinator[T]) ItemSelected(item T) {
	if c.mode == PanelOnly {
		c.panel.Suspend()
		c.mode = DetailOnly
		c.log.Info("detail opened", "mode", c.mode.String())
	} else {
		c.log.Info("detail item replaced")
	}
	c.detail.Show(item)
}

// DismissDetail asks the overlay to animate out. DetailClosed follows once
// the exit animation completes.
func (c *Coordinator[T]) DismissDetail() {
	if c.mode != DetailOnly {
		return
	}
	c.detail.Dismiss()
}

// DetailClosed returns control to the panel. The panel resumes exactly as it
// was left; it is neither reopened nor closed.
func (c *Coordinator[T]) DetailClosed() {
	if c.mode != DetailOnly {
		return
	}
	c.mode = PanelOnly
	if c.detail.Visible() {
		c.detail.Close()
	}
	c.panel.Resume()
	c.log.Info("detail closed", "mode", c.mode.String())
}

// OnDragBegin routes to the frontmost component.
func (c *Coordinator[T]) OnDragBegin() { c.front().OnDragBegin() }

// OnDragMove routes to the frontmost component.
func (c *Coordinator[T]) OnDragMove(translationY float64) { c.front().OnDragMove(translationY) }

// OnDragEnd routes to the frontmost component.
func (c *Coordinator[T]) OnDragEnd(translationY, velocityY float64) {
	c.front().OnDragEnd(translationY, velocityY)
}

// OnDragTerminate routes to the frontmost component.
func (c *Coordinator[T]) OnDragTerminate() { c.front().OnDragTerminate() }

func (c *Coordinator[T]) front() gesture.Handler {
	if c.mode == DetailOnly {
		return c.detail
	}
	return c.panel
}
