package cyclemenu

import (
	"testing"
	"time"
)

func TestGestureCommitOpens(t *testing.T) {
	h := newHarness(t)
	if !h.press(PointerDown) {
		t.Fatal("trigger press not consumed")
	}
	if got := h.w.Ripple(); got.Radius != 0 || got.Alpha != 102 {
		t.Errorf("ripple after down = %+v, want {0 102}", got)
	}
	h.step(300 * time.Millisecond)
	if got := h.w.Ripple().Radius; got != 80 {
		t.Fatalf("ripple radius = %d, want collapsed radius 80", got)
	}

	h.press(PointerUp)
	if h.w.State() != Opening {
		t.Fatalf("State() = %v, want opening", h.w.State())
	}
	if got := h.w.Ripple().Radius; got != 234 {
		t.Errorf("ripple radius after commit = %d, want outer 234", got)
	}
	h.settle(t)
	if h.w.State() != Open || h.w.Ripple().Alpha != 0 {
		t.Errorf("state=%v alpha=%d, want open 0", h.w.State(), h.w.Ripple().Alpha)
	}
}

func TestGestureEarlyCommit(t *testing.T) {
	h := newHarness(t)
	h.press(PointerDown)
	h.step(100 * time.Millisecond)
	if r := h.w.Ripple().Radius; r <= 0 || r >= 80 {
		t.Fatalf("ripple radius = %d, want mid-way", r)
	}

	h.press(PointerUp)
	if h.w.State() != Closed {
		t.Fatalf("State() right after release = %v, want closed", h.w.State())
	}
	h.step(50 * time.Millisecond)
	if h.w.Ripple().Radius >= 80 || h.w.State() != Closed {
		t.Fatalf("ripple=%d state=%v, want below threshold and closed",
			h.w.Ripple().Radius, h.w.State())
	}
	h.step(250 * time.Millisecond)
	if h.w.State() != Opening {
		t.Errorf("State() = %v, want opening once the ripple passed the threshold", h.w.State())
	}
}

func TestGestureNextEventDisarmsDeferredOpen(t *testing.T) {
	h := newHarness(t)
	h.press(PointerDown)
	h.step(100 * time.Millisecond)
	h.press(PointerUp)
	h.press(PointerDown)
	h.step(400 * time.Millisecond)
	if h.w.State() != Closed {
		t.Errorf("State() = %v, want closed", h.w.State())
	}
	if len(h.rec.states) != 0 {
		t.Errorf("listener fired: %v", h.rec.states)
	}
}

func TestGestureAbandon(t *testing.T) {
	tests := []struct {
		name    string
		release func(h *harness)
	}{
		{"moved-out", func(h *harness) {
			h.w.HandlePointer(PointerEvent{Action: PointerMove, X: 10, Y: 10})
			h.w.HandlePointer(PointerEvent{Action: PointerMove, X: 556, Y: 756})
			h.press(PointerUp)
		}},
		{"canceled", func(h *harness) {
			h.press(PointerCancel)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.press(PointerDown)
			h.step(300 * time.Millisecond)
			tt.release(h)
			h.settle(t)
			if h.w.State() != Closed {
				t.Errorf("State() = %v, want closed", h.w.State())
			}
			if got := h.w.Ripple(); got.Radius != 0 || got.Alpha != 0 {
				t.Errorf("ripple = %+v, want {0 0}", got)
			}
		})
	}
}

func TestGestureMoveInsideKeepsPress(t *testing.T) {
	h := newHarness(t)
	h.press(PointerDown)
	h.w.HandlePointer(PointerEvent{Action: PointerMove, X: 530, Y: 730})
	h.step(300 * time.Millisecond)
	h.press(PointerUp)
	if h.w.State() != Opening {
		t.Errorf("State() = %v, want opening", h.w.State())
	}
}

func TestGestureShortPressWhileOpenClicks(t *testing.T) {
	h := newHarness(t)
	clicks := 0
	h.w.SetTriggerClickHandler(func() { clicks++ })
	h.w.Open(false)

	h.press(PointerDown)
	h.step(100 * time.Millisecond)
	h.press(PointerUp)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if h.w.State() != Open {
		t.Errorf("State() = %v, want open", h.w.State())
	}
}

func TestGestureHoldWhileOpenCloses(t *testing.T) {
	h := newHarness(t)
	h.w.Open(false)
	h.press(PointerDown)
	h.step(300 * time.Millisecond)
	if got := h.w.Ripple().Radius; got != 234 {
		t.Fatalf("ripple radius = %d, want outer 234", got)
	}
	h.press(PointerUp)
	if h.w.State() != Closing {
		t.Errorf("State() = %v, want closing", h.w.State())
	}
}

func TestGestureIgnoredWhileAnimating(t *testing.T) {
	h := newHarness(t)
	h.w.Open(true)
	if h.press(PointerDown) {
		t.Error("trigger press consumed while opening")
	}
	if h.w.Ripple().Radius != 0 {
		t.Error("ripple started while opening")
	}
}

func TestOutsideTapThroughWidget(t *testing.T) {
	h := newHarness(t)
	h.w.Open(false)

	if h.w.HandlePointer(PointerEvent{Action: PointerUp, X: 500, Y: 700}) {
		t.Error("release inside the circle was consumed")
	}
	if h.w.State() != Open {
		t.Fatalf("State() = %v, want open", h.w.State())
	}

	h.arc.consume = true
	h.w.HandlePointer(PointerEvent{Action: PointerUp, X: 10, Y: 10})
	if h.w.State() != Open {
		t.Fatalf("arc-consumed release closed the menu")
	}

	h.arc.consume = false
	if !h.w.HandlePointer(PointerEvent{Action: PointerUp, X: 10, Y: 10}) {
		t.Error("outside release not consumed")
	}
	if h.w.State() != Closing {
		t.Errorf("State() = %v, want closing", h.w.State())
	}
	if len(h.arc.events) != 3 {
		t.Errorf("arc saw %d events, want 3", len(h.arc.events))
	}
}
