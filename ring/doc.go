// Package ring is the stock arc subsystem for cyclemenu widgets.
//
// A Ring places items on a quarter circle around the widget's corner,
// scrolls them by dragging along the arc (bounded, or wrapping around when
// the adapter is unbounded), reveals and hides them with a staggered roll
// animation and forwards taps and long presses to the adapter.
//
//	r := ring.New(ring.WithItemDrawer(drawIcon))
//	w := cyclemenu.New(r)
//
// All of Ring's animations run on the timeline handed over by the widget in
// Configure, so Ring shares the widget's single-threaded event loop.
package ring
