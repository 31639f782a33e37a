// Package ring owns the panel state of the octagonal control: the eight
// segments, the focused segment and the drag-to-paint gesture that mutates
// them. It performs no I/O; every state change returns the device writes the
// caller must dispatch.
package ring

import (
	"github.com/garrettladley/lumi/internal/color"
	"github.com/garrettladley/lumi/internal/geometry"
)

// NoFocus is the Focus value when no segment is focused.
const NoFocus = -1

type State uint8

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// gesture lives between a pointer-down on a segment and the next
// up, cancel or leave.
type gesture struct {
	paint   bool
	visited [geometry.Segments]bool
}

type Controller struct {
	geometry geometry.Geometry
	store    *Store
	color    color.RGB
	focus    int
	state    State
	gesture  gesture
	pressed  bool
}

// NewController builds a controller for a square surface of the given size
// with every segment off in c.
func NewController(size float64, c color.RGB) *Controller {
	return &Controller{
		geometry: geometry.New(size),
		store:    NewStore(c),
		color:    c,
		focus:    NoFocus,
	}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Focus() int { return c.focus }

func (c *Controller) Color() color.RGB { return c.color }

func (c *Controller) Geometry() geometry.Geometry { return c.geometry }

// SetColor changes the colour used by subsequent paints.
func (c *Controller) SetColor(rgb color.RGB) { c.color = rgb }

// Resize recomputes the geometry. An active gesture keeps its bookkeeping.
func (c *Controller) Resize(size float64) { c.geometry = geometry.New(size) }

// PointerDown starts a gesture at p.
//
// On the center button the focused segment is toggled; without a focus the
// whole ring is toggled, turning everything on unless it already is.
// On a segment the segment takes focus, flips, and a drag begins that paints
// later segments with the same value.
func (c *Controller) PointerDown(p geometry.Point) []Effect {
	hit := c.geometry.Classify(p)
	switch hit.Kind {
	case geometry.HitCenter:
		c.pressed = true
		return c.toggleCenter()
	case geometry.HitSegment:
		i := hit.Segment
		seg, _ := c.store.Get(i)
		c.focus = i
		c.state = Dragging
		c.gesture = gesture{paint: !seg.On}
		return c.paint(i)
	default:
		return nil
	}
}

// PointerMove paints the segment under p if a drag is active and the segment
// has not been painted by this drag yet.
func (c *Controller) PointerMove(p geometry.Point) []Effect {
	if c.state != Dragging {
		return nil
	}
	hit := c.geometry.Classify(p)
	if !hit.IsSegment() || c.gesture.visited[hit.Segment] {
		return nil
	}
	return c.paint(hit.Segment)
}

// PointerUp ends any gesture. Segments painted so far keep their state.
func (c *Controller) PointerUp() { c.release() }

func (c *Controller) PointerCancel() { c.release() }

func (c *Controller) PointerLeave() { c.release() }

func (c *Controller) ClearFocus() { c.focus = NoFocus }

// StepFocus moves focus delta segments clockwise without touching segment
// state. Without a focus, stepping forward lands on segment 0 and stepping
// back on the last segment.
func (c *Controller) StepFocus(delta int) {
	switch {
	case delta == 0:
		return
	case c.focus == NoFocus && delta > 0:
		c.focus = 0
	case c.focus == NoFocus:
		c.focus = geometry.Segments - 1
	default:
		n := geometry.Segments
		c.focus = ((c.focus+delta)%n + n) % n
	}
}

// Tap behaves like a pointer-down and pointer-up at the middle of segment i.
func (c *Controller) Tap(i int) []Effect {
	if !validIndex(i) || !c.geometry.Valid() {
		return nil
	}
	effects := c.PointerDown(c.geometry.SegmentPoint(i))
	c.PointerUp()
	return effects
}

// PressCenter behaves like a pointer-down and pointer-up on the center.
func (c *Controller) PressCenter() []Effect {
	if !c.geometry.Valid() {
		return nil
	}
	effects := c.PointerDown(c.geometry.Center)
	c.PointerUp()
	return effects
}

// SetAll turns every segment on in the session colour, or every segment off.
func (c *Controller) SetAll(on bool) []Effect {
	c.store.SetAll(on, &c.color)
	return []Effect{setAll(on, c.color)}
}

// ApplyColor makes rgb the session colour and, when a segment is focused,
// lights it in that colour.
func (c *Controller) ApplyColor(rgb color.RGB) []Effect {
	c.color = rgb
	if c.focus == NoFocus {
		return nil
	}
	c.store.Set(c.focus, true, &c.color)
	seg, _ := c.store.Get(c.focus)
	return []Effect{setFace(c.focus, seg)}
}

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	Segments      Segments
	Focus         int
	CenterPressed bool
	Color         color.RGB
	Geometry      geometry.Geometry
}

func (c *Controller) View() Snapshot {
	return Snapshot{
		Segments:      c.store.Snapshot(),
		Focus:         c.focus,
		CenterPressed: c.pressed,
		Color:         c.color,
		Geometry:      c.geometry,
	}
}

func (c *Controller) toggleCenter() []Effect {
	if c.focus != NoFocus {
		seg, _ := c.store.Get(c.focus)
		c.store.Set(c.focus, !seg.On, &c.color)
		seg, _ = c.store.Get(c.focus)
		return []Effect{setFace(c.focus, seg)}
	}
	return c.SetAll(!c.store.AllOn())
}

func (c *Controller) paint(i int) []Effect {
	c.gesture.visited[i] = true
	c.store.Set(i, c.gesture.paint, &c.color)
	seg, _ := c.store.Get(i)
	return []Effect{setFace(i, seg)}
}

func (c *Controller) release() {
	c.state = Idle
	c.gesture = gesture{}
	c.pressed = false
}
