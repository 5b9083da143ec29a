// Package loop drives a single animated triangle from window events.
//
// The package holds no window or GL state. A windowing collaborator feeds
// Events to a Driver and applies the returned Effects; all animation logic
// runs inside Transition so it can be exercised without a display.
package loop

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// State of a Driver.
type State int

const (
	Running State = iota
	Exiting       // terminal
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Exiting:
		return "Exiting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Event is delivered from the windowing collaborator. Types other than those
// declared here are accepted and ignored.
type Event interface{ Event() }

type (
	// CloseRequested is sent when the user closes the window.
	CloseRequested struct{}

	// Resized carries the new framebuffer size in pixels.
	Resized struct{ Width, Height int }

	// RedrawRequested asks for one frame cycle.
	RedrawRequested struct{}

	// AboutToWait is sent after each batch of events, before the
	// collaborator blocks waiting for the next.
	AboutToWait struct{}
)

func (CloseRequested) Event()  {}
func (Resized) Event()         {}
func (RedrawRequested) Event() {}
func (AboutToWait) Event()     {}

func (ev Resized) String() string { return fmt.Sprintf("Resized(%vx%v)", ev.Width, ev.Height) }

// Effect is work the collaborator performs on behalf of a Driver.
type Effect interface{ Effect() }

type (
	// Exit terminates the event loop.
	Exit struct{}

	// ResizeSurface resizes the rendering surface.
	ResizeSurface struct{ Width, Height int }

	// DrawFrame clears the frame target to Clear, draws Triangle once
	// and presents.
	DrawFrame struct {
		Triangle Triangle
		Clear    f32.Vec4
	}

	// RequestRedraw schedules a RedrawRequested.
	RequestRedraw struct{}
)

func (Exit) Effect()          {}
func (ResizeSurface) Effect() {}
func (DrawFrame) Effect()     {}
func (RequestRedraw) Effect() {}

// Transition returns the state, clock and effects that follow ev.
// Once Exiting, every event is ignored.
func Transition(s State, c Clock, ev Event) (State, Clock, []Effect) {
	if s == Exiting {
		return s, c, nil
	}
	switch ev := ev.(type) {
	case CloseRequested:
		return Exiting, c, []Effect{Exit{}}
	case Resized:
		return s, c, []Effect{ResizeSurface{Width: ev.Width, Height: ev.Height}}
	case RedrawRequested:
		c.Advance()
		return s, c, []Effect{DrawFrame{Triangle: Shape(Offset(c.DeltaT)), Clear: ClearColor}}
	case AboutToWait:
		return s, c, []Effect{RequestRedraw{}}
	}
	return s, c, nil
}

// Driver owns the loop state and clock. The zero value is Running at DeltaT 0.
type Driver struct {
	state State
	clock Clock
}

// Update applies ev and returns effects to perform, in order.
func (d *Driver) Update(ev Event) (effects []Effect) {
	d.state, d.clock, effects = Transition(d.state, d.clock, ev)
	return effects
}

func (d *Driver) State() State { return d.state }
func (d *Driver) Clock() Clock { return d.clock }

// Done reports whether the driver has reached Exiting.
func (d *Driver) Done() bool { return d.state == Exiting }
