package anim

import "slices"

// Timeline advances started animations each time the event loop ticks.
// A Timeline is not safe for concurrent use: start, cancel and tick must all
// happen on the loop that owns it.
type Timeline struct {
	clock  Clock
	active []*Animation
}

// NewTimeline returns a timeline reading time from clock.
// A nil clock means SystemClock.
func NewTimeline(clock Clock) *Timeline {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timeline{clock: clock}
}

// Clock returns the timeline's time source.
func (tl *Timeline) Clock() Clock {
	return tl.clock
}

// Start begins a at the current clock time and applies its start value.
// Restarting a running animation restarts it from the beginning.
// An animation with a non-positive duration ends immediately.
func (tl *Timeline) Start(a *Animation) {
	if a == nil {
		return
	}
	if a.running {
		a.Cancel()
	}
	a.timeline = tl
	a.start = tl.clock.Now()
	a.running = true
	if a.duration <= 0 {
		a.finish()
		return
	}
	a.step(0)
	tl.active = append(tl.active, a)
}

// Tick applies the current progress of every running animation and ends the
// ones that reached their duration. Animations started by end callbacks
// during a tick are first advanced on the next tick.
// It reports whether any animation is still running afterwards.
func (tl *Timeline) Tick() bool {
	if len(tl.active) == 0 {
		return false
	}
	now := tl.clock.Now()
	for _, a := range slices.Clone(tl.active) {
		if !a.running || a.timeline != tl {
			continue
		}
		f := float64(now.Sub(a.start)) / float64(a.duration)
		if f >= 1 {
			a.finish()
			continue
		}
		if f < 0 {
			f = 0
		}
		a.step(f)
	}
	return len(tl.active) > 0
}

// Len returns the number of running animations.
func (tl *Timeline) Len() int {
	return len(tl.active)
}

func (tl *Timeline) remove(a *Animation) {
	tl.active = slices.DeleteFunc(tl.active, func(x *Animation) bool { return x == a })
}
