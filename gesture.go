package cyclemenu

import (
	"image"
	"time"

	"github.com/gogpu/cyclemenu/anim"
)

const (
	rippleRevealDuration = 300 * time.Millisecond
	rippleAlphaDuration  = 450 * time.Millisecond
)

// gesture interprets presses on the trigger. A press grows the ripple
// toward the current circle radius; releasing decides between commit,
// early commit, plain click and abandon.
type gesture struct {
	w *Widget

	bounds     image.Rectangle
	wasOutside bool
	// shouldOpen arms the deferred open fired by setRippleRadius.
	shouldOpen bool

	radius *anim.Animation
	alpha  *anim.Animation
}

// handle reports whether ev was consumed.
func (g *gesture) handle(ev PointerEvent) bool {
	w := g.w
	if w.disableOpening {
		return false
	}
	g.shouldOpen = false
	if w.state.animating() {
		return false
	}

	switch ev.Action {
	case PointerDown:
		g.cancel()
		g.bounds = w.triggerBounds
		g.wasOutside = false
		base := w.rippleBaseAlpha()
		w.setRippleAlpha(base)
		g.startRadius(0, w.visual.circleRadius)
		g.startAlpha(base, base)
	case PointerMove:
		if !ev.In(g.bounds) {
			g.wasOutside = true
		}
	case PointerCancel, PointerUp:
		if ev.Action == PointerCancel {
			g.wasOutside = true
		}
		g.cancel()
		switch {
		case g.wasOutside:
			w.debug("press abandoned")
			g.startRadius(w.visual.circleRadius, 0)
		case w.ripple.Radius == w.visual.circleRadius:
			w.debug("press committed")
			w.ripple.Radius = w.geo.OuterRadius
			w.toggle()
		case w.state == Closed:
			w.debug("early commit armed", "ripple", w.ripple.Radius)
			g.startRadius(w.ripple.Radius, w.geo.OuterRadius)
			g.shouldOpen = true
		default:
			w.performTriggerClick()
		}
		g.startAlpha(w.rippleBaseAlpha(), 0)
	}
	return true
}

// cancel stops in-flight ripple animations. Safe with none running.
func (g *gesture) cancel() {
	g.radius.Cancel()
	g.alpha.Cancel()
}

func (g *gesture) startRadius(from, to int) {
	w := g.w
	g.radius = anim.Tween(anim.Property[int]{
		Get: func() int { return w.ripple.Radius },
		Set: w.setRippleRadius,
	}, from, to, rippleRevealDuration)
	w.timeline.Start(g.radius)
}

func (g *gesture) startAlpha(from, to int) {
	w := g.w
	g.alpha = anim.Tween(anim.Property[int]{
		Get: func() int { return w.ripple.Alpha },
		Set: w.setRippleAlpha,
	}, from, to, rippleAlphaDuration)
	w.timeline.Start(g.alpha)
}
