// SPDX-License-Identifier: EPL-2.0

package selection

import "sync"

const (
	// DefaultMinRange is the smallest selectable span in seconds. The
	// invariant End-Start >= MinRange holds after every mutation.
	DefaultMinRange = 0.1

	// DefaultTolerance is the handle hit-test radius in pixels.
	DefaultTolerance = 10.0
)

// Controller owns the trim-range state for one loaded buffer. It maps
// pointer coordinates to time, hit-tests the boundary handles, and keeps
// the range invariant through drags and direct numeric entry. A single
// clamp routine backs both mutation paths.
//
// Subscribers are notified after every observable state change; the
// returned unsubscribe function must be called when the owning component
// is torn down.
type Controller struct {
	duration  float64
	width     int
	minRange  float64
	tolerance float64

	rng     Range
	active  Handle
	hovered Handle

	mtx       sync.Mutex
	listeners map[int]func()
	nextID    int
}

// NewController creates a controller for a buffer of the given duration
// (seconds) rendered at the given pixel width. The selection starts as the
// full range [0, duration].
func NewController(duration float64, width int) *Controller {
	return &Controller{
		duration:  duration,
		width:     width,
		minRange:  DefaultMinRange,
		tolerance: DefaultTolerance,
		rng:       Range{Start: 0, End: duration},
		listeners: make(map[int]func()),
	}
}

// Subscribe registers fn to run after every state change and returns its
// unsubscribe function. Unsubscribing more than once is harmless.
func (c *Controller) Subscribe(fn func()) (unsubscribe func()) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners[id] = fn

	return func() {
		c.mtx.Lock()
		defer c.mtx.Unlock()

		delete(c.listeners, id)
	}
}

func (c *Controller) notify() {
	c.mtx.Lock()
	fns := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mtx.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Selection returns the current trim range.
func (c *Controller) Selection() Range { return c.rng }

// Active returns the handle currently being dragged, or HandleNone.
func (c *Controller) Active() Handle { return c.active }

// Hovered returns the handle under the pointer, or HandleNone.
func (c *Controller) Hovered() Handle { return c.hovered }

// Duration returns the buffer duration the controller maps against.
func (c *Controller) Duration() float64 { return c.duration }

// Width returns the pixel width of the mapped view.
func (c *Controller) Width() int { return c.width }

// Resize re-measures the view width. Selection times are unchanged; only
// the coordinate mapping shifts.
func (c *Controller) Resize(width int) {
	if width == c.width {
		return
	}
	c.width = width
	c.notify()
}

// Reset reinstalls the full range for a freshly loaded buffer and clears
// any handle and hover state.
func (c *Controller) Reset(duration float64) {
	c.duration = duration
	c.rng = Range{Start: 0, End: duration}
	c.active = HandleNone
	c.hovered = HandleNone
	c.notify()
}

// TimeToX maps a time in seconds to a pixel x-coordinate.
func (c *Controller) TimeToX(t float64) float64 {
	return TimeToX(t, c.duration, c.width)
}

// XToTime maps a pixel x-coordinate to a time in seconds.
func (c *Controller) XToTime(x float64) float64 {
	return XToTime(x, c.duration, c.width)
}

// clampStart bounds a candidate start time to [0, End-minRange]. Shared by
// drags, fresh clicks and numeric entry so the invariant cannot diverge
// between paths.
func (c *Controller) clampStart(t float64) float64 {
	hi := c.rng.End - c.minRange
	if t > hi {
		t = hi
	}
	if t < 0 {
		t = 0
	}
	return t
}

// clampEnd bounds a candidate end time to [Start+minRange, duration].
func (c *Controller) clampEnd(t float64) float64 {
	lo := c.rng.Start + c.minRange
	if t < lo {
		t = lo
	}
	if t > c.duration {
		t = c.duration
	}
	return t
}

// hitTest returns the handle within tolerance of x, start taking priority.
func (c *Controller) hitTest(x float64) Handle {
	startX := c.TimeToX(c.rng.Start)
	endX := c.TimeToX(c.rng.End)

	if abs(x-startX) <= c.tolerance {
		return HandleStart
	}
	if abs(x-endX) <= c.tolerance {
		return HandleEnd
	}
	return HandleNone
}

// PointerDown begins an interaction at pixel x. Near a handle it activates
// that handle for dragging; elsewhere it starts a fresh selection from the
// clicked time to the end of the buffer and activates the end handle so the
// new boundary can be dragged immediately.
func (c *Controller) PointerDown(x float64) {
	h := c.hitTest(x)
	if h == HandleNone {
		c.rng.End = c.duration
		c.rng.Start = c.clampStart(c.XToTime(x))
		h = HandleEnd
	}

	c.active = h
	c.notify()
}

// PointerMove updates hover state and, while a handle is active, drags it.
func (c *Controller) PointerMove(x float64) {
	hovered := c.hitTest(x)
	changed := hovered != c.hovered
	c.hovered = hovered

	switch c.active {
	case HandleStart:
		start := c.clampStart(c.XToTime(x))
		changed = changed || start != c.rng.Start
		c.rng.Start = start
	case HandleEnd:
		end := c.clampEnd(c.XToTime(x))
		changed = changed || end != c.rng.End
		c.rng.End = end
	}

	if changed {
		c.notify()
	}
}

// PointerUp releases the active handle. No-op when nothing is active.
func (c *Controller) PointerUp() {
	if c.active == HandleNone {
		return
	}
	c.active = HandleNone
	c.notify()
}

// SetStart sets the selection start from direct numeric entry, clamped the
// same way a drag is.
func (c *Controller) SetStart(t float64) {
	start := c.clampStart(t)
	if start == c.rng.Start {
		return
	}
	c.rng.Start = start
	c.notify()
}

// SetEnd sets the selection end from direct numeric entry.
func (c *Controller) SetEnd(t float64) {
	end := c.clampEnd(t)
	if end == c.rng.End {
		return
	}
	c.rng.End = end
	c.notify()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
