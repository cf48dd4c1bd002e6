// Package anim provides the small tick-driven animation toolkit used by the
// cycle menu widget and its ring.
//
// # Overview
//
// Animations are typed handles rather than string-keyed field setters. A
// [Property] pairs a getter and a setter for one value; [Tween] interpolates
// that property between two endpoints over a duration; [Together] plays
// several animations in lockstep and ends when all of them end.
//
// Nothing here owns a goroutine. A [Timeline] advances every started
// animation when the host's event loop calls [Timeline.Tick], reading time
// from an injected [Clock]. Tests use [ManualClock] to step time explicitly:
//
//	clock := anim.NewManualClock(time.Unix(0, 0))
//	tl := anim.NewTimeline(clock)
//
//	var radius int
//	a := anim.Tween(anim.Var(&radius), 0, 100, 300*time.Millisecond)
//	tl.Start(a)
//
//	clock.Advance(150 * time.Millisecond)
//	tl.Tick() // radius == 50
//
// # Cancellation
//
// [Animation.Cancel] stops an animation without running its end callback.
// It is safe on a nil handle and on an animation that is not running, so a
// caller can always cancel "whatever is in flight" before starting anew.
package anim
