// Package tcellview hosts a cyclemenu widget in a terminal.
//
// The widget is drawn with gg into an off-screen context sized in virtual
// pixels (CellWidth×CellHeight per terminal cell), downsampled with
// golang.org/x/image/draw to two samples per cell and shown as upper
// half-block characters whose foreground is the top sample and whose
// background is the bottom one. Mouse events are mapped back to the
// center of the cell they hit.
//
//	screen, _ := tcell.NewScreen()
//	v, _ := tcellview.New(screen, widget)
//	err := v.Run(ctx)
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. View polls the screen on its own
// goroutine and handles every event on the goroutine calling Run, which
// also owns the widget.
package tcellview
