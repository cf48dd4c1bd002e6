package cyclemenu

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/cyclemenu/anim"
)

// Widget is a corner-anchored cycle menu: a trigger button that expands
// into a quarter ring of items.
//
// A Widget is not safe for concurrent use. The host's event loop calls
// Layout, HandlePointer, Advance and Draw from a single goroutine.
type Widget struct {
	opts     options
	arc      Arc
	adapter  Adapter
	timeline *anim.Timeline

	width, height int
	geo           Geometry
	anchor        image.Point
	triggerBounds image.Rectangle
	arcBounds     image.Rectangle

	state   State
	visual  visual
	ripple  RippleState
	gesture gesture
	closer  outsideTapCloser
	trans   transition

	persisted      PersistedPosition
	initialized    bool
	scrollEnabled  bool
	disableOpening bool
	capturing      bool
	dirty          bool

	itemListener  ItemClickListener
	triggerClick  func()
	stateListener StateListener
	saveListener  StateSaveListener
}

// visual holds the animated drawing parameters.
type visual struct {
	circleRadius int
	shadow       float64
	// rotation of the trigger icon in degrees.
	rotation   float64
	openedIcon bool
	tint       gg.RGBA
	arcShown   bool
}

// New creates a closed widget driving arc.
func New(arc Arc, opts ...Option) *Widget {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &Widget{
		opts:          o,
		arc:           arc,
		timeline:      anim.NewTimeline(o.clock),
		persisted:     PersistedPosition{Position: NoPosition},
		scrollEnabled: true,
	}
	w.gesture.w = w
	w.closer.target = w
	w.geo = Resolve(w.geometryInput())
	w.visual = visual{
		circleRadius: o.circleMinRadius,
		shadow:       w.geo.CollapsedShadowSize,
		tint:         o.triggerClosed,
	}
	w.ripple.Alpha = w.rippleBaseAlpha()
	return w
}

// SetAdapter sets the item source. Item clicks are forwarded to the
// listener set with SetItemClickListener and then close the menu.
func (w *Widget) SetAdapter(a Adapter) {
	w.adapter = a
	if a != nil {
		a.SetItemClickListener(itemClickRelay{w})
	}
	w.initialized = false
}

// Adapter returns the current adapter, or nil.
func (w *Widget) Adapter() Adapter {
	return w.adapter
}

// SetItemClickListener sets the listener for item clicks. The menu
// closes after each click is delivered.
func (w *Widget) SetItemClickListener(l ItemClickListener) {
	w.itemListener = l
}

// itemClickRelay is installed on the adapter by SetAdapter.
type itemClickRelay struct {
	w *Widget
}

func (r itemClickRelay) OnItemClick(position int) {
	if r.w.itemListener != nil {
		r.w.itemListener.OnItemClick(position)
	}
	r.w.Close(true)
}

func (r itemClickRelay) OnItemLongClick(position int) {
	if r.w.itemListener != nil {
		r.w.itemListener.OnItemLongClick(position)
	}
}

func (w *Widget) geometryInput() GeometryInput {
	n := 0
	if w.adapter != nil {
		n = w.adapter.RealItemCount()
	}
	return GeometryInput{
		Width:           w.width,
		Height:          w.height,
		Scaling:         w.opts.scaling,
		ItemCount:       n,
		ItemSize:        w.opts.itemSize,
		ShadowSize:      w.opts.shadowSize,
		CircleMinRadius: w.opts.circleMinRadius,
		AutoMinRadius:   w.opts.autoMinRadius,
		AutoMaxRadius:   w.opts.autoMaxRadius,
		FixedRadius:     w.opts.fixedRadius,
	}
}

// Layout resolves the geometry for a width×height container and places
// the trigger and the arc. The first layout after New, Attach or a
// configuration change also restores the arc's scroll position.
func (w *Widget) Layout(width, height int) {
	w.width, w.height = width, height
	w.geo = Resolve(w.geometryInput())
	c := w.opts.corner
	w.anchor = c.Point(width, height)
	w.triggerBounds = c.inset(width, height, w.opts.triggerSize, w.opts.triggerMargin)
	w.arcBounds = c.square(width, height, w.geo.RingRadius)

	w.debug("geometry resolved",
		"width", width, "height", height,
		"ring", w.geo.RingRadius, "outer", w.geo.OuterRadius,
		"min", w.geo.AutoMinRadius, "max", w.geo.AutoMaxRadius,
		"visible", w.geo.VisibleItems)

	restore := !w.initialized && width > 0 && height > 0
	if restore {
		w.applyScrollPolicy()
	}
	w.configureArc()
	if restore {
		if w.persisted.Position != NoPosition {
			w.arc.ScrollToPosition(w.persisted.Position)
		}
		w.arc.SetAdditionalAngleOffset(w.persisted.AngleOffset)
		w.initialized = true
	}

	switch w.state {
	case Open:
		w.openNow()
	case Closed:
		w.visual.circleRadius = w.opts.circleMinRadius
		w.visual.shadow = w.geo.CollapsedShadowSize
	}
	w.invalidate()
}

// applyScrollPolicy downgrades Endless to Basic when every item already
// fits on the arc, and picks the Endless anchor when no position is stored.
func (w *Widget) applyScrollPolicy() {
	if w.adapter == nil {
		return
	}
	n := w.adapter.RealItemCount()
	if w.opts.scroll == Endless && n > w.geo.VisibleItems {
		w.adapter.SetScrollPolicy(Endless)
		if w.persisted.Position == NoPosition {
			w.persisted.Position = EndlessAnchor(n)
		}
		return
	}
	w.adapter.SetScrollPolicy(Basic)
}

func (w *Widget) configureArc() {
	cfg, ok := w.arc.(Configurer)
	if !ok {
		return
	}
	l := ArcLayout{
		Corner:          w.opts.corner,
		Bounds:          w.arcBounds,
		Anchor:          w.anchor,
		RingRadius:      w.geo.RingRadius,
		OuterRadius:     w.geo.OuterRadius,
		ItemSize:        w.geo.ItemSize,
		CircleMinRadius: w.opts.circleMinRadius,
		VisibleItems:    w.geo.VisibleItems,
		Items:           Bounded(0),
		Adapter:         w.adapter,
		Timeline:        w.timeline,
		Invalidate:      w.invalidate,
	}
	if w.adapter != nil {
		l.Items = w.adapter.ItemCount()
		l.RealItems = w.adapter.RealItemCount()
	}
	cfg.Configure(l)
}

// Attach marks the widget as newly attached; the next Layout restores the
// stored scroll position.
func (w *Widget) Attach() {
	w.initialized = false
}

// Detach stores the arc position, reports it to the state-save listener
// and finishes any running transition immediately.
func (w *Widget) Detach() {
	w.persisted = PersistedPosition{
		Position:    w.arc.CurrentPosition(),
		AngleOffset: w.arc.CurrentItemsAngleOffset(),
	}
	if w.saveListener != nil {
		w.saveListener.SaveState(w.persisted.Position, w.persisted.AngleOffset)
	}
	switch w.state {
	case Closing:
		w.closeNow()
		w.visual.tint = w.opts.triggerClosed
	case Opening:
		w.openNow()
		w.visual.tint = w.opts.triggerOpened
	}
	w.capturing = false
}

// HandlePointer dispatches a pointer event and reports whether it was
// consumed. A press that starts on the trigger is owned by the trigger
// gesture until it is released; other events go to the arc and then to
// the outside-tap check.
func (w *Widget) HandlePointer(ev PointerEvent) bool {
	if w.capturing {
		if ev.Action == PointerUp || ev.Action == PointerCancel {
			w.capturing = false
		}
		return w.gesture.handle(ev)
	}
	if ev.Action == PointerDown && ev.In(w.triggerBounds) && w.gesture.handle(ev) {
		w.capturing = true
		return true
	}
	if w.visual.arcShown {
		if ph, ok := w.arc.(PointerHandler); ok && ph.HandlePointer(ev, w.arc.IsCountOfItemsAvailableToScroll()) {
			return true
		}
	}
	cx, cy := w.triggerCenter()
	if w.closer.handle(ev, cx, cy, w.geo.OuterRadius) {
		w.debug("outside tap", "x", ev.X, "y", ev.Y, "outer", w.geo.OuterRadius)
		return true
	}
	return false
}

// Advance ticks the animations against the widget's clock and reports
// whether the widget needs to be redrawn.
func (w *Widget) Advance() bool {
	running := w.timeline.Tick()
	dirty := w.dirty
	w.dirty = false
	return running || dirty
}

// Animating reports whether any animation is in flight.
func (w *Widget) Animating() bool {
	return w.timeline.Len() > 0
}

func (w *Widget) invalidate() {
	w.dirty = true
	if w.opts.redraw != nil {
		w.opts.redraw()
	}
}

func (w *Widget) performTriggerClick() {
	w.debug("trigger click")
	if w.triggerClick != nil {
		w.triggerClick()
	}
}

// triggerCenter uses integer halving of the trigger size.
func (w *Widget) triggerCenter() (float64, float64) {
	b := w.triggerBounds
	return float64(b.Min.X + b.Dx()/2), float64(b.Min.Y + b.Dy()/2)
}

func (w *Widget) rippleBaseAlpha() int {
	return int(w.opts.rippleColor.A*255 + 0.5)
}

// setRippleRadius fires the armed deferred open once the ripple reaches
// the collapsed circle radius.
func (w *Widget) setRippleRadius(r int) {
	w.ripple.Radius = r
	if w.gesture.shouldOpen && r >= w.opts.circleMinRadius {
		w.gesture.shouldOpen = false
		w.toggle()
	}
	w.invalidate()
}

func (w *Widget) setRippleAlpha(a int) {
	w.ripple.Alpha = a
	w.invalidate()
}

// State returns the current state.
func (w *Widget) State() State { return w.state }

// Geometry returns the geometry of the last layout pass.
func (w *Widget) Geometry() Geometry { return w.geo }

// TriggerBounds returns the trigger rectangle in widget coordinates.
func (w *Widget) TriggerBounds() image.Rectangle { return w.triggerBounds }

// ArcBounds returns the square the arc is laid out in.
func (w *Widget) ArcBounds() image.Rectangle { return w.arcBounds }

// ArcShown reports whether the arc surface is on screen.
func (w *Widget) ArcShown() bool { return w.visual.arcShown }

// CircleRadius returns the current radius of the drawn circle.
func (w *Widget) CircleRadius() int { return w.visual.circleRadius }

// ShadowSize returns the current shadow thickness.
func (w *Widget) ShadowSize() float64 { return w.visual.shadow }

// IconRotation returns the trigger icon rotation in degrees.
func (w *Widget) IconRotation() float64 { return w.visual.rotation }

// TriggerTint returns the current trigger background.
func (w *Widget) TriggerTint() gg.RGBA { return w.visual.tint }

// Ripple returns the current press ripple.
func (w *Widget) Ripple() RippleState { return w.ripple }

// ScrollEnabled reports whether the arc may scroll.
func (w *Widget) ScrollEnabled() bool { return w.scrollEnabled }

// Timeline returns the timeline the widget and its arc animate on.
func (w *Widget) Timeline() *anim.Timeline { return w.timeline }

// Persisted returns the scroll state restored on the next layout.
func (w *Widget) Persisted() PersistedPosition { return w.persisted }

// Corner returns the anchoring corner.
func (w *Widget) Corner() Corner { return w.opts.corner }

// SetCorner changes the anchoring corner.
func (w *Widget) SetCorner(c Corner) error {
	if !c.Valid() {
		return &InvalidArgumentError{Param: paramCorner}
	}
	w.opts.corner = c
	w.initialized = false
	return nil
}

// SetScalingPolicy changes the radius scaling policy.
func (w *Widget) SetScalingPolicy(p ScalingPolicy) error {
	if !p.Valid() {
		return &InvalidArgumentError{Param: paramScalingPolicy}
	}
	w.opts.scaling = p
	w.initialized = false
	return nil
}

// SetScrollPolicy changes the scroll policy. Endless takes effect on the
// next layout if the items do not fit on the arc.
func (w *Widget) SetScrollPolicy(p ScrollPolicy) error {
	if !p.Valid() {
		return &InvalidArgumentError{Param: paramScrollPolicy}
	}
	w.opts.scroll = p
	w.initialized = false
	return nil
}

// SetAutoMinRadius sets the lower ring bound used from the next layout.
func (w *Widget) SetAutoMinRadius(r int) {
	w.opts.autoMinRadius = r
	w.initialized = false
}

// SetAutoMaxRadius sets the upper ring bound used from the next layout.
func (w *Widget) SetAutoMaxRadius(r int) {
	w.opts.autoMaxRadius = r
	w.initialized = false
}

// SetFixedRadius sets the Fixed scaling radius used from the next layout.
func (w *Widget) SetFixedRadius(r int) {
	w.opts.fixedRadius = r
	w.initialized = false
}

// SetCurrentPosition sets the raw position restored on the next
// initializing layout. NoPosition is ignored.
func (w *Widget) SetCurrentPosition(position int) {
	if position != NoPosition {
		w.persisted.Position = position
	}
}

// SetCurrentItemsAngleOffset sets the first item's angular phase.
func (w *Widget) SetCurrentItemsAngleOffset(deg float64) {
	w.persisted.AngleOffset = deg
	w.arc.SetAdditionalAngleOffset(deg)
}

// SetDisableOpening turns Open, Close and the trigger gesture into no-ops.
func (w *Widget) SetDisableOpening(disabled bool) {
	w.disableOpening = disabled
}

// OpeningDisabled reports whether opening is disabled.
func (w *Widget) OpeningDisabled() bool { return w.disableOpening }

// SetRippleColor changes the ripple color and resets its opacity.
func (w *Widget) SetRippleColor(c gg.RGBA) {
	w.opts.rippleColor = c
	w.setRippleAlpha(w.rippleBaseAlpha())
}

// SetTriggerClickHandler sets the callback for a short press on the
// trigger while the menu is open.
func (w *Widget) SetTriggerClickHandler(fn func()) {
	w.triggerClick = fn
}

// SetStateListener sets the state listener. Last registration wins;
// nil removes it.
func (w *Widget) SetStateListener(l StateListener) {
	w.stateListener = l
}

// SetStateSaveListener sets the listener called once per Detach.
// Last registration wins; nil removes it.
func (w *Widget) SetStateSaveListener(l StateSaveListener) {
	w.saveListener = l
}
