// Package cyclemenu implements a corner-anchored circular menu widget.
//
// # Overview
//
// A cycle menu is a floating trigger button in one corner of a container.
// Pressing and holding it grows a ripple; once committed, a circle expands
// from the corner and a quarter ring of scrollable items rolls in. Tapping
// outside the circle, clicking an item or holding the trigger again
// collapses it.
//
// The package owns the interaction state machine and the geometry:
//   - Resolve computes ring, outer circle and shadow sizes per corner
//   - the trigger gesture turns pointer events into commit or cancel
//   - Open and Close sequence the circle, shadow, icon and item animations
//   - an outside-tap check closes an open menu
//
// Item layout and scrolling live behind the Arc interface. Package ring
// provides the stock implementation.
//
// # Quick Start
//
//	clock := anim.NewManualClock(time.Now())
//	items := cyclemenu.NewItemAdapter("mail", "call", "map")
//	r := ring.New()
//	w := cyclemenu.New(r, cyclemenu.WithCorner(cyclemenu.RightBottom), cyclemenu.WithClock(clock))
//	w.SetAdapter(items)
//	w.Layout(800, 600)
//
//	w.HandlePointer(cyclemenu.PointerEvent{Action: cyclemenu.PointerDown, X: 750, Y: 550})
//	clock.Advance(300 * time.Millisecond)
//	w.Advance()
//	w.HandlePointer(cyclemenu.PointerEvent{Action: cyclemenu.PointerUp, X: 750, Y: 550})
//
//	dc := gg.NewContext(800, 600)
//	_ = w.Draw(dc)
//
// # Event Loop
//
// A Widget is single-threaded. The host delivers pointer events, calls
// Advance on every frame and redraws when Advance reports a change. All
// animations, including the arc's, run on the widget's anim.Timeline.
//
// # States
//
//	Closed --Open(true)-->  Opening --circle expanded, items rolled in--> Open
//	Open   --Close(true)--> Closing --items rolled out, circle collapsed--> Closed
//	Closed --Open(false)--> Open
//	Open   --Close(false)--> Closed
//
// While Opening or Closing the arc cannot scroll and trigger presses are
// ignored.
package cyclemenu
