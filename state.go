package cyclemenu

import "fmt"

// State is the logical state of the menu.
type State int

const (
	// Closed shows only the trigger.
	Closed State = iota
	// Open shows the expanded circle and the item arc.
	Open
	// Opening is the animated transition from Closed to Open.
	Opening
	// Closing is the animated transition from Open to Closed.
	Closing
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Opening:
		return "opening"
	case Closing:
		return "closing"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// animating reports whether a transition is in flight.
func (s State) animating() bool {
	return s == Opening || s == Closing
}

// StateListener observes state transitions.
type StateListener interface {
	// OnStateChanged is called after every state change.
	OnStateChanged(State)
	// OnOpenComplete is called once an animated open has rolled in all items.
	OnOpenComplete()
	// OnCloseComplete is called once an animated close has collapsed the circle.
	OnCloseComplete()
}

// StateListenerFuncs adapts plain functions to StateListener.
// Nil fields are skipped.
type StateListenerFuncs struct {
	StateChanged  func(State)
	OpenComplete  func()
	CloseComplete func()
}

// OnStateChanged calls f.StateChanged.
func (f StateListenerFuncs) OnStateChanged(s State) {
	if f.StateChanged != nil {
		f.StateChanged(s)
	}
}

// OnOpenComplete calls f.OpenComplete.
func (f StateListenerFuncs) OnOpenComplete() {
	if f.OpenComplete != nil {
		f.OpenComplete()
	}
}

// OnCloseComplete calls f.CloseComplete.
func (f StateListenerFuncs) OnCloseComplete() {
	if f.CloseComplete != nil {
		f.CloseComplete()
	}
}

// StateSaveListener receives the arc position when the widget is detached.
type StateSaveListener interface {
	SaveState(position int, angleOffset float64)
}

// StateSaveFunc adapts a function to StateSaveListener.
type StateSaveFunc func(position int, angleOffset float64)

// SaveState calls f.
func (f StateSaveFunc) SaveState(position int, angleOffset float64) {
	f(position, angleOffset)
}

// NoPosition marks a PersistedPosition without a stored scroll position.
const NoPosition = -1

// PersistedPosition is the scroll state kept across detach and attach.
type PersistedPosition struct {
	// Position is the raw position of the first item, or NoPosition.
	Position int
	// AngleOffset is the angular phase of the first item in degrees.
	AngleOffset float64
}

// RippleState is the press feedback drawn over the circle.
type RippleState struct {
	Radius int
	// Alpha is the ripple opacity in [0, 255].
	Alpha int
}
