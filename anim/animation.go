package anim

import "time"

// Animation is a single handle that a Timeline advances.
// Build one with Tween or Together, configure it, then pass it to
// Timeline.Start. An Animation can be restarted after it ends or is canceled.
type Animation struct {
	duration time.Duration
	interp   Interpolator
	update   func(f float64)
	onEnd    func()

	timeline *Timeline
	start    time.Time
	running  bool
}

// Tween animates p from from to to over d using AccelerateDecelerate.
func Tween[T Number](p Property[T], from, to T, d time.Duration) *Animation {
	return &Animation{
		duration: d,
		interp:   AccelerateDecelerate,
		update: func(f float64) {
			p.Set(Lerp(from, to, f))
		},
	}
}

// Func returns an animation calling fn with eased progress over d.
func Func(d time.Duration, fn func(f float64)) *Animation {
	return &Animation{
		duration: d,
		interp:   AccelerateDecelerate,
		update:   fn,
	}
}

// Together plays children in lockstep over a shared duration d, each with
// its own interpolator. Children must not be started individually.
// When the group ends, each child's end callback runs in order, then the
// group's own.
func Together(d time.Duration, children ...*Animation) *Animation {
	g := &Animation{
		duration: d,
		interp:   Linear,
	}
	g.update = func(f float64) {
		for _, c := range children {
			c.step(f)
		}
	}
	g.onEnd = func() {
		for _, c := range children {
			if c.onEnd != nil {
				c.onEnd()
			}
		}
	}
	return g
}

// WithInterpolator replaces the easing curve and returns a.
func (a *Animation) WithInterpolator(i Interpolator) *Animation {
	if i == nil {
		i = Linear
	}
	a.interp = i
	return a
}

// OnEnd registers fn to run once the animation reaches its end value.
// For groups built with Together, fn runs after the children's callbacks.
func (a *Animation) OnEnd(fn func()) *Animation {
	prev := a.onEnd
	if prev == nil {
		a.onEnd = fn
		return a
	}
	a.onEnd = func() {
		prev()
		fn()
	}
	return a
}

// Duration returns the configured duration.
func (a *Animation) Duration() time.Duration {
	return a.duration
}

// Running reports whether the animation is started and not yet ended.
func (a *Animation) Running() bool {
	return a != nil && a.running
}

// Cancel stops the animation where it is. The end callback does not run.
// Cancel on a nil or idle animation does nothing.
func (a *Animation) Cancel() {
	if a == nil || !a.running {
		return
	}
	a.running = false
	if a.timeline != nil {
		a.timeline.remove(a)
	}
}

// step applies linear progress f through the interpolator.
func (a *Animation) step(f float64) {
	if a.update != nil {
		a.update(a.interp(f))
	}
}

// finish applies the end value and runs callbacks.
func (a *Animation) finish() {
	a.step(1)
	a.running = false
	if a.timeline != nil {
		a.timeline.remove(a)
	}
	if a.onEnd != nil {
		a.onEnd()
	}
}
