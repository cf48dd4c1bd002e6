package cyclemenu

import (
	"time"

	"github.com/gogpu/cyclemenu/anim"
)

const (
	revealDuration     = 200 * time.Millisecond
	iconRotateDuration = 300 * time.Millisecond
	openedIconRotation = -45.0
	iconOvershoot      = 2.0
)

// transition tracks the animations of the current open or close sequence.
// Every new sequence bumps gen; callbacks captured with an older gen are
// ignored.
type transition struct {
	gen    uint64
	reveal *anim.Animation
	icon   *anim.Animation
}

// supersede cancels the in-flight sequence and returns the new generation.
func (t *transition) supersede() uint64 {
	t.gen++
	t.reveal.Cancel()
	t.icon.Cancel()
	t.reveal, t.icon = nil, nil
	return t.gen
}

// Open expands the menu. Animated, it grows the circle and shadow, then
// rolls the items in; the state is Opening until the arc reports the
// roll-in complete. Immediate, it applies the open geometry at once.
//
// Animated requests are ignored unless the menu is Closed. Both forms are
// ignored while opening is disabled.
func (w *Widget) Open(animated bool) {
	if w.disableOpening {
		return
	}
	if !animated {
		w.openNow()
		w.visual.tint = w.opts.triggerOpened
		w.invalidate()
		return
	}
	if w.state != Closed {
		return
	}

	gen := w.trans.supersede()
	w.setScrollEnabled(false)
	w.setState(Opening)
	w.visual.tint = w.opts.triggerOpened
	w.animateIcon(true)

	w.trans.reveal = anim.Together(revealDuration,
		anim.Tween(w.circleRadiusProperty(), w.opts.circleMinRadius, w.geo.OuterRadius, revealDuration),
		anim.Tween(w.shadowProperty(), w.geo.CollapsedShadowSize, w.geo.ShadowSize, revealDuration),
	).OnEnd(func() {
		if gen != w.trans.gen {
			return
		}
		w.trans.reveal = nil
		w.visual.arcShown = true
		w.invalidate()
		w.arc.RollInItemsWithAnimation(func() {
			if gen != w.trans.gen || w.state != Opening {
				return
			}
			w.setState(Open)
			w.setScrollEnabled(true)
			if w.stateListener != nil {
				w.stateListener.OnOpenComplete()
			}
		})
	})
	w.timeline.Start(w.trans.reveal)
	w.invalidate()
}

// Close collapses the menu. Animated, it rolls the items out first and
// then shrinks the circle and shadow; the state is Closing until the
// circle has collapsed. Immediate, it applies the closed geometry at once.
//
// Animated requests are ignored unless the menu is Open. Both forms are
// ignored while opening is disabled.
func (w *Widget) Close(animated bool) {
	if w.disableOpening {
		return
	}
	if !animated {
		w.closeNow()
		w.visual.tint = w.opts.triggerClosed
		w.invalidate()
		return
	}
	if w.state != Open {
		return
	}

	gen := w.trans.supersede()
	w.setScrollEnabled(false)
	w.setState(Closing)
	w.visual.tint = w.opts.triggerClosed
	w.animateIcon(false)

	w.arc.RollOutItemsWithAnimation(func() {
		if gen != w.trans.gen || w.state != Closing {
			return
		}
		w.trans.reveal = anim.Together(revealDuration,
			anim.Tween(w.circleRadiusProperty(), w.geo.OuterRadius, w.opts.circleMinRadius, revealDuration),
			anim.Tween(w.shadowProperty(), w.geo.ShadowSize, w.geo.CollapsedShadowSize, revealDuration),
		).OnEnd(func() {
			if gen != w.trans.gen {
				return
			}
			w.trans.reveal = nil
			w.setState(Closed)
			if w.stateListener != nil {
				w.stateListener.OnCloseComplete()
			}
			w.visual.arcShown = false
			w.setScrollEnabled(true)
			w.invalidate()
		})
		w.timeline.Start(w.trans.reveal)
	})
	w.invalidate()
}

// toggle opens a closed menu and closes an open one. It does nothing
// while a transition is running.
func (w *Widget) toggle() {
	switch w.state {
	case Open:
		w.Close(true)
	case Closed:
		w.Open(true)
	}
}

// openNow applies the open terminal values without the disabled check.
func (w *Widget) openNow() {
	w.trans.supersede()
	w.visual.shadow = w.geo.ShadowSize
	w.setIcon(true)
	w.visual.circleRadius = w.geo.OuterRadius
	w.visual.arcShown = true
	if r, ok := w.arc.(Revealer); ok {
		r.SetItemsRevealed(true)
	}
	w.setScrollEnabled(true)
	w.setState(Open)
}

// closeNow applies the closed terminal values without the disabled check.
func (w *Widget) closeNow() {
	w.trans.supersede()
	w.setScrollEnabled(true)
	w.setState(Closed)
	w.visual.shadow = w.geo.CollapsedShadowSize
	w.setIcon(false)
	w.visual.circleRadius = w.opts.circleMinRadius
	w.visual.arcShown = false
	if r, ok := w.arc.(Revealer); ok {
		r.SetItemsRevealed(false)
	}
}

// setIcon shows the opened or closed trigger icon immediately.
func (w *Widget) setIcon(opened bool) {
	if w.opts.iconOpened != nil {
		w.visual.openedIcon = opened
		return
	}
	if opened {
		w.visual.rotation = openedIconRotation
	} else {
		w.visual.rotation = 0
	}
}

// animateIcon swaps the trigger icon or rotates the closed one with an
// overshoot.
func (w *Widget) animateIcon(opened bool) {
	if w.opts.iconOpened != nil {
		w.visual.openedIcon = opened
		return
	}
	target := 0.0
	if opened {
		target = openedIconRotation
	}
	w.trans.icon = anim.Tween(tracked(&w.visual.rotation, w.invalidate),
		w.visual.rotation, target, iconRotateDuration).
		WithInterpolator(anim.Overshoot(iconOvershoot))
	w.timeline.Start(w.trans.icon)
}

func (w *Widget) setState(s State) {
	if s == w.state {
		return
	}
	w.debug("state changed", "to", s.String())
	w.state = s
	if w.stateListener != nil {
		w.stateListener.OnStateChanged(s)
	}
}

func (w *Widget) setScrollEnabled(enabled bool) {
	w.scrollEnabled = enabled
	w.arc.SetScrollEnabled(enabled)
}

func (w *Widget) circleRadiusProperty() anim.Property[int] {
	return tracked(&w.visual.circleRadius, w.invalidate)
}

func (w *Widget) shadowProperty() anim.Property[float64] {
	return tracked(&w.visual.shadow, w.invalidate)
}

// tracked is anim.Var with a redraw request on every write.
func tracked[T anim.Number](p *T, invalidate func()) anim.Property[T] {
	return anim.Property[T]{
		Get: func() T { return *p },
		Set: func(v T) {
			*p = v
			invalidate()
		},
	}
}
