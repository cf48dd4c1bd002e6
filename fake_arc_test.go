package cyclemenu

import (
	"testing"
	"time"

	"github.com/gogpu/cyclemenu/anim"
)

// fakeArc records what the widget asks of the arc. Roll callbacks run at
// once unless hold is set, in which case they wait for finishRoll.
type fakeArc struct {
	hold    bool
	pending func()

	position      int
	offset        float64
	scrollEnabled bool
	scrollable    bool
	revealed      bool

	rollIns, rollOuts int
	scrolls           []int
	layouts           []ArcLayout
	events            []PointerEvent
	consume           bool
}

func newFakeArc() *fakeArc {
	return &fakeArc{scrollEnabled: true}
}

func (a *fakeArc) RollInItemsWithAnimation(done func()) {
	a.rollIns++
	a.revealed = true
	a.roll(done)
}

func (a *fakeArc) RollOutItemsWithAnimation(done func()) {
	a.rollOuts++
	a.revealed = false
	a.roll(done)
}

func (a *fakeArc) roll(done func()) {
	if a.hold {
		a.pending = done
		return
	}
	done()
}

func (a *fakeArc) finishRoll() {
	done := a.pending
	a.pending = nil
	if done != nil {
		done()
	}
}

func (a *fakeArc) ScrollToPosition(raw int) {
	a.position = raw
	a.scrolls = append(a.scrolls, raw)
}

func (a *fakeArc) SetAdditionalAngleOffset(deg float64) { a.offset = deg }
func (a *fakeArc) CurrentPosition() int                 { return a.position }
func (a *fakeArc) CurrentItemsAngleOffset() float64     { return a.offset }
func (a *fakeArc) IsCountOfItemsAvailableToScroll() bool {
	return a.scrollable
}
func (a *fakeArc) SetScrollEnabled(enabled bool)   { a.scrollEnabled = enabled }
func (a *fakeArc) SetItemsRevealed(revealed bool) { a.revealed = revealed }
func (a *fakeArc) Configure(l ArcLayout)          { a.layouts = append(a.layouts, l) }

func (a *fakeArc) HandlePointer(ev PointerEvent, _ bool) bool {
	a.events = append(a.events, ev)
	return a.consume
}

// recorder is a StateListener counting notifications.
type recorder struct {
	states         []State
	opened, closed int
}

func (r *recorder) OnStateChanged(s State) { r.states = append(r.states, s) }
func (r *recorder) OnOpenComplete()        { r.opened++ }
func (r *recorder) OnCloseComplete()       { r.closed++ }

type harness struct {
	w     *Widget
	arc   *fakeArc
	clock *anim.ManualClock
	rec   *recorder
	items *ItemAdapter[int]
}

// newHarness lays out a 600×800 widget with eight items. With the default
// sizes the ring radius is 274 and the outer radius 234.
func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		arc:   newFakeArc(),
		clock: anim.NewManualClock(time.Unix(0, 0)),
		rec:   &recorder{},
		items: NewItemAdapter(0, 1, 2, 3, 4, 5, 6, 7),
	}
	h.w = New(h.arc, append([]Option{WithClock(h.clock)}, opts...)...)
	h.w.SetAdapter(h.items)
	h.w.SetStateListener(h.rec)
	h.w.Layout(600, 800)
	return h
}

func (h *harness) step(d time.Duration) {
	h.clock.Advance(d)
	h.w.Advance()
}

// settle advances until every animation has finished.
func (h *harness) settle(t *testing.T) {
	t.Helper()
	for i := 0; h.w.Animating(); i++ {
		if i > 100 {
			t.Fatal("animations did not settle")
		}
		h.step(50 * time.Millisecond)
	}
}

func (h *harness) press(action PointerAction) bool {
	b := h.w.TriggerBounds()
	return h.w.HandlePointer(PointerEvent{
		Action: action,
		X:      float64(b.Min.X + b.Dx()/2),
		Y:      float64(b.Min.Y + b.Dy()/2),
	})
}
