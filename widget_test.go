package cyclemenu

import (
	"errors"
	"image"
	"slices"
	"testing"
	"time"

	"github.com/gogpu/gg"
)

func TestNewWidgetDefaults(t *testing.T) {
	h := newHarness(t)
	w := h.w
	if w.State() != Closed {
		t.Errorf("State() = %v, want closed", w.State())
	}
	if w.CircleRadius() != 80 {
		t.Errorf("CircleRadius() = %d, want 80", w.CircleRadius())
	}
	if w.ShadowSize() != 10 {
		t.Errorf("ShadowSize() = %v, want 10", w.ShadowSize())
	}
	if w.TriggerTint() != defaultOptions().triggerClosed {
		t.Errorf("TriggerTint() = %v, want closed tint", w.TriggerTint())
	}
	g := w.Geometry()
	if g.RingRadius != 274 || g.OuterRadius != 234 || g.VisibleItems != 8 {
		t.Errorf("geometry ring/outer/visible = %d/%d/%d, want 274/234/8",
			g.RingRadius, g.OuterRadius, g.VisibleItems)
	}
	if got, want := w.TriggerBounds(), image.Rect(528, 728, 584, 784); got != want {
		t.Errorf("TriggerBounds() = %v, want %v", got, want)
	}
	if got, want := w.ArcBounds(), image.Rect(326, 526, 600, 800); got != want {
		t.Errorf("ArcBounds() = %v, want %v", got, want)
	}
	if len(h.arc.layouts) == 0 {
		t.Fatal("arc was not configured")
	}
	l := h.arc.layouts[len(h.arc.layouts)-1]
	if l.Anchor != image.Pt(600, 800) || l.RingRadius != 274 || l.RealItems != 8 {
		t.Errorf("arc layout = %+v", l)
	}
}

func TestAnimatedRoundTrip(t *testing.T) {
	h := newHarness(t)
	w := h.w
	startRadius, startShadow := w.CircleRadius(), w.ShadowSize()

	w.Open(true)
	if w.State() != Opening {
		t.Fatalf("State() after Open(true) = %v, want opening", w.State())
	}
	if h.arc.scrollEnabled || w.ScrollEnabled() {
		t.Error("scrolling enabled while opening")
	}
	if w.TriggerTint() != defaultOptions().triggerOpened {
		t.Error("opened tint not applied when the open began")
	}

	h.step(100 * time.Millisecond)
	if r := w.CircleRadius(); r <= 80 || r >= 234 {
		t.Errorf("mid-open radius = %d, want in (80, 234)", r)
	}
	if h.arc.rollIns != 0 {
		t.Error("items rolled in before the circle finished expanding")
	}

	h.step(100 * time.Millisecond)
	if w.State() != Open {
		t.Fatalf("State() after reveal = %v, want open", w.State())
	}
	if h.arc.rollIns != 1 || !w.ArcShown() {
		t.Errorf("rollIns = %d arcShown = %v, want 1 true", h.arc.rollIns, w.ArcShown())
	}
	if w.CircleRadius() != 234 || w.ShadowSize() != 40 {
		t.Errorf("open radius/shadow = %d/%v, want 234/40", w.CircleRadius(), w.ShadowSize())
	}
	if !h.arc.scrollEnabled {
		t.Error("scrolling not re-enabled after open")
	}
	h.settle(t)
	if w.IconRotation() != -45 {
		t.Errorf("IconRotation() = %v, want -45", w.IconRotation())
	}

	w.Close(true)
	if w.State() != Closing {
		t.Fatalf("State() after Close(true) = %v, want closing", w.State())
	}
	if w.TriggerTint() != defaultOptions().triggerClosed {
		t.Error("closed tint not applied when the close began")
	}
	h.settle(t)

	if w.State() != Closed {
		t.Fatalf("State() after close = %v, want closed", w.State())
	}
	if w.CircleRadius() != startRadius || w.ShadowSize() != startShadow {
		t.Errorf("radius/shadow = %d/%v, want %d/%v",
			w.CircleRadius(), w.ShadowSize(), startRadius, startShadow)
	}
	if w.IconRotation() != 0 || w.ArcShown() || !w.ScrollEnabled() {
		t.Errorf("rotation=%v arcShown=%v scroll=%v after close",
			w.IconRotation(), w.ArcShown(), w.ScrollEnabled())
	}
	want := []State{Opening, Open, Closing, Closed}
	if !slices.Equal(h.rec.states, want) {
		t.Errorf("states = %v, want %v", h.rec.states, want)
	}
	if h.rec.opened != 1 || h.rec.closed != 1 {
		t.Errorf("completions open/close = %d/%d, want 1/1", h.rec.opened, h.rec.closed)
	}
}

func TestCloseWaitsForRollOut(t *testing.T) {
	h := newHarness(t)
	h.w.Open(false)
	h.arc.hold = true

	h.w.Close(true)
	h.step(time.Second)
	if h.w.State() != Closing || h.w.CircleRadius() != 234 {
		t.Fatalf("state/radius = %v/%d before roll-out finished, want closing/234",
			h.w.State(), h.w.CircleRadius())
	}
	h.arc.finishRoll()
	h.settle(t)
	if h.w.State() != Closed {
		t.Errorf("State() = %v, want closed", h.w.State())
	}
}

func TestScrollDisabledThroughoutClose(t *testing.T) {
	h := newHarness(t)
	h.w.Open(false)
	h.arc.hold = true

	h.w.Close(true)
	for i := range 4 {
		h.step(100 * time.Millisecond)
		if h.arc.scrollEnabled || h.w.ScrollEnabled() {
			t.Fatalf("scrolling enabled during roll-out (step %d)", i)
		}
	}

	h.arc.finishRoll()
	if h.arc.scrollEnabled || h.w.ScrollEnabled() {
		t.Fatal("scrolling enabled when the collapse began")
	}
	h.step(100 * time.Millisecond)
	if r := h.w.CircleRadius(); r <= 80 || r >= 234 {
		t.Errorf("mid-collapse radius = %d, want in (80, 234)", r)
	}
	if h.arc.scrollEnabled || h.w.ScrollEnabled() {
		t.Error("scrolling enabled during collapse")
	}
	if h.w.State() != Closing {
		t.Errorf("State() mid-collapse = %v, want closing", h.w.State())
	}

	h.step(100 * time.Millisecond)
	if h.w.State() != Closed {
		t.Fatalf("State() after collapse = %v, want closed", h.w.State())
	}
	if !h.arc.scrollEnabled || !h.w.ScrollEnabled() {
		t.Error("scrolling not re-enabled once closed")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.arc.hold = true

	h.w.Open(true)
	h.w.Open(true)
	h.step(300 * time.Millisecond)
	h.w.Open(true)
	h.w.Close(true)
	if h.w.State() != Opening {
		t.Fatalf("State() = %v, want opening", h.w.State())
	}
	h.arc.finishRoll()
	h.w.Open(true)
	h.settle(t)

	if want := []State{Opening, Open}; !slices.Equal(h.rec.states, want) {
		t.Errorf("states = %v, want %v", h.rec.states, want)
	}
	if h.rec.opened != 1 || h.arc.rollIns != 1 {
		t.Errorf("opened = %d rollIns = %d, want 1 1", h.rec.opened, h.arc.rollIns)
	}
}

func TestImmediateTransitions(t *testing.T) {
	h := newHarness(t)
	w := h.w

	w.Open(false)
	w.Open(false)
	if w.State() != Open || w.CircleRadius() != 234 || w.ShadowSize() != 40 || !w.ArcShown() {
		t.Errorf("after Open(false): state=%v radius=%d shadow=%v arc=%v",
			w.State(), w.CircleRadius(), w.ShadowSize(), w.ArcShown())
	}
	if w.IconRotation() != -45 || !h.arc.revealed {
		t.Errorf("rotation=%v revealed=%v, want -45 true", w.IconRotation(), h.arc.revealed)
	}

	w.Close(false)
	if w.State() != Closed || w.CircleRadius() != 80 || w.ShadowSize() != 10 || w.ArcShown() {
		t.Errorf("after Close(false): state=%v radius=%d shadow=%v arc=%v",
			w.State(), w.CircleRadius(), w.ShadowSize(), w.ArcShown())
	}
	if want := []State{Open, Closed}; !slices.Equal(h.rec.states, want) {
		t.Errorf("states = %v, want %v", h.rec.states, want)
	}
	if h.rec.opened != 0 || h.rec.closed != 0 {
		t.Error("immediate transitions fired completion callbacks")
	}
}

func TestDisabledOpening(t *testing.T) {
	h := newHarness(t)
	h.w.SetDisableOpening(true)

	h.w.Open(true)
	h.w.Open(false)
	h.w.Close(true)
	h.w.Close(false)
	if h.press(PointerDown) {
		t.Error("trigger press consumed while opening is disabled")
	}
	h.step(time.Second)
	h.press(PointerUp)
	h.step(time.Second)

	if h.w.State() != Closed {
		t.Errorf("State() = %v, want closed", h.w.State())
	}
	if len(h.rec.states) != 0 {
		t.Errorf("listener fired: %v", h.rec.states)
	}
}

func TestDetachDegradesTransitions(t *testing.T) {
	t.Run("opening", func(t *testing.T) {
		h := newHarness(t)
		h.arc.hold = true
		h.w.Open(true)
		h.step(300 * time.Millisecond)

		h.w.Detach()
		if h.w.State() != Open || h.w.CircleRadius() != 234 || !h.w.ScrollEnabled() {
			t.Fatalf("after detach: state=%v radius=%d scroll=%v",
				h.w.State(), h.w.CircleRadius(), h.w.ScrollEnabled())
		}
		h.arc.finishRoll()
		if h.rec.opened != 0 {
			t.Error("stale roll-in callback fired OnOpenComplete")
		}
		if want := []State{Opening, Open}; !slices.Equal(h.rec.states, want) {
			t.Errorf("states = %v, want %v", h.rec.states, want)
		}
	})

	t.Run("closing", func(t *testing.T) {
		h := newHarness(t)
		h.w.Open(false)
		h.w.Close(true)
		h.step(50 * time.Millisecond)

		h.w.Detach()
		if h.w.State() != Closed || h.w.CircleRadius() != 80 {
			t.Fatalf("after detach: state=%v radius=%d", h.w.State(), h.w.CircleRadius())
		}
		h.settle(t)
		if h.rec.closed != 0 {
			t.Error("stale collapse fired OnCloseComplete")
		}
		if h.w.CircleRadius() != 80 {
			t.Errorf("stale collapse moved radius to %d", h.w.CircleRadius())
		}
	})
}

func TestDetachSavesState(t *testing.T) {
	h := newHarness(t)
	var saved []PersistedPosition
	h.w.SetStateSaveListener(StateSaveFunc(func(p int, off float64) {
		saved = append(saved, PersistedPosition{p, off})
	}))
	h.arc.position = 3
	h.arc.offset = 7.5

	h.w.Detach()
	if len(saved) != 1 || saved[0] != (PersistedPosition{3, 7.5}) {
		t.Fatalf("saved = %v, want [{3 7.5}]", saved)
	}

	h.arc.position, h.arc.offset = 0, 0
	h.arc.scrolls = nil
	h.w.Attach()
	h.w.Layout(600, 800)
	if !slices.Equal(h.arc.scrolls, []int{3}) || h.arc.offset != 7.5 {
		t.Errorf("restore scrolls=%v offset=%v, want [3] 7.5", h.arc.scrolls, h.arc.offset)
	}

	h.arc.scrolls = nil
	h.w.Layout(600, 800)
	if len(h.arc.scrolls) != 0 {
		t.Errorf("second layout scrolled again: %v", h.arc.scrolls)
	}
}

func TestCurrentPositionSetters(t *testing.T) {
	h := newHarness(t)
	h.w.SetCurrentPosition(5)
	h.w.SetCurrentPosition(NoPosition)
	h.w.SetCurrentItemsAngleOffset(12.5)
	if h.arc.offset != 12.5 {
		t.Errorf("arc offset = %v, want 12.5", h.arc.offset)
	}
	if got := h.w.Persisted(); got != (PersistedPosition{5, 12.5}) {
		t.Errorf("Persisted() = %+v, want {5 12.5}", got)
	}
	h.w.Attach()
	h.w.Layout(600, 800)
	if h.arc.position != 5 {
		t.Errorf("arc position = %d, want 5", h.arc.position)
	}
}

func TestEndlessPolicy(t *testing.T) {
	t.Run("downgraded", func(t *testing.T) {
		h := newHarness(t, WithScrollPolicy(Endless))
		if h.items.ScrollPolicy() != Basic {
			t.Errorf("adapter policy = %v, want basic", h.items.ScrollPolicy())
		}
		if n, ok := h.items.ItemCount().Len(); !ok || n != h.items.RealItemCount() {
			t.Errorf("ItemCount() = (%d, %v), want real count", n, ok)
		}
		if len(h.arc.scrolls) != 0 {
			t.Errorf("arc scrolled without stored position: %v", h.arc.scrolls)
		}
	})

	t.Run("honored", func(t *testing.T) {
		h := newHarness(t, WithScrollPolicy(Endless))
		for i := range 30 {
			h.items.Add(100 + i)
		}
		h.w.Attach()
		h.w.Layout(600, 800)
		if h.items.ScrollPolicy() != Endless {
			t.Fatalf("adapter policy = %v, want endless", h.items.ScrollPolicy())
		}
		want := EndlessAnchor(38)
		if !slices.Equal(h.arc.scrolls, []int{want}) {
			t.Errorf("scrolls = %v, want [%d]", h.arc.scrolls, want)
		}
		l := h.arc.layouts[len(h.arc.layouts)-1]
		if !l.Items.IsUnbounded() || l.RealItems != 38 {
			t.Errorf("arc layout items = %v real = %d", l.Items, l.RealItems)
		}
	})
}

func TestLayoutReappliesOpenGeometry(t *testing.T) {
	h := newHarness(t)
	h.w.Open(false)
	h.w.Layout(300, 300)
	g := h.w.Geometry()
	if h.w.CircleRadius() != g.OuterRadius {
		t.Errorf("CircleRadius() = %d, want new outer %d", h.w.CircleRadius(), g.OuterRadius)
	}
	if len(h.rec.states) != 1 {
		t.Errorf("relayout notified listeners: %v", h.rec.states)
	}
}

func TestSettersRejectUnset(t *testing.T) {
	w := New(newFakeArc())
	tests := []struct {
		name  string
		err   error
		param string
	}{
		{"corner", w.SetCorner(0), "corner"},
		{"scaling", w.SetScalingPolicy(ScalingPolicy(9)), "scalingPolicy"},
		{"scroll", w.SetScrollPolicy(0), "scrollPolicy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", tt.err)
			}
			var iae *InvalidArgumentError
			if !errors.As(tt.err, &iae) || iae.Param != tt.param {
				t.Errorf("param = %v, want %q", iae, tt.param)
			}
		})
	}
	if err := w.SetCorner(LeftTop); err != nil {
		t.Errorf("SetCorner(LeftTop) = %v", err)
	}
	if w.Corner() != LeftTop {
		t.Errorf("Corner() = %v, want left-top", w.Corner())
	}
}

func TestCornerChangeMovesTrigger(t *testing.T) {
	h := newHarness(t)
	if err := h.w.SetCorner(LeftTop); err != nil {
		t.Fatal(err)
	}
	h.w.Layout(600, 800)
	if got, want := h.w.TriggerBounds(), image.Rect(16, 16, 72, 72); got != want {
		t.Errorf("TriggerBounds() = %v, want %v", got, want)
	}
	if got, want := h.w.ArcBounds(), image.Rect(0, 0, 274, 274); got != want {
		t.Errorf("ArcBounds() = %v, want %v", got, want)
	}
}

func TestItemClickClosesMenu(t *testing.T) {
	h := newHarness(t)
	var clicks, longs []int
	h.w.SetItemClickListener(ItemClickFuncs{
		Click:     func(p int) { clicks = append(clicks, p) },
		LongClick: func(p int) { longs = append(longs, p) },
	})
	h.w.Open(false)

	h.items.OnItemLongClick(9)
	if h.w.State() != Open {
		t.Errorf("long click changed state to %v", h.w.State())
	}
	h.items.OnItemClick(10)
	if h.w.State() != Closing {
		t.Errorf("State() after click = %v, want closing", h.w.State())
	}
	if !slices.Equal(clicks, []int{2}) || !slices.Equal(longs, []int{1}) {
		t.Errorf("clicks = %v longs = %v, want [2] [1]", clicks, longs)
	}
}

func TestRedrawHandler(t *testing.T) {
	redraws := 0
	h := newHarness(t, WithRedrawHandler(func() { redraws++ }))
	redraws = 0
	h.w.Open(true)
	h.step(50 * time.Millisecond)
	if redraws == 0 {
		t.Error("no redraw requested while animating")
	}
	if !h.w.Advance() {
		t.Error("Advance() = false while animating")
	}
	h.settle(t)
	h.w.Advance()
	if h.w.Advance() {
		t.Error("Advance() = true with nothing to draw")
	}
}

func TestSetRippleColorResetsAlpha(t *testing.T) {
	h := newHarness(t)
	h.w.SetRippleColor(gg.RGBA{R: 1, A: 0.2})
	if got := h.w.Ripple().Alpha; got != 51 {
		t.Errorf("Ripple().Alpha = %d, want 51", got)
	}
}
