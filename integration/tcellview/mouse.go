package tcellview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/cyclemenu"
)

// mouse turns tcell's button-state events into pointer actions.
// Only the primary button presses.
type mouse struct {
	down bool
	col  int
	row  int
}

// translate returns the pointer action for ev, or false when ev carries no
// change for the widget.
func (m *mouse) translate(ev *tcell.EventMouse) (cyclemenu.PointerAction, int, int, bool) {
	col, row := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !m.down:
		m.down, m.col, m.row = true, col, row
		return cyclemenu.PointerDown, col, row, true
	case pressed && (col != m.col || row != m.row):
		m.col, m.row = col, row
		return cyclemenu.PointerMove, col, row, true
	case !pressed && m.down:
		m.down = false
		return cyclemenu.PointerUp, col, row, true
	}
	return 0, col, row, false
}

// cancel aborts a press, for example when the terminal is resized.
func (m *mouse) cancel() (cyclemenu.PointerAction, int, int, bool) {
	if !m.down {
		return 0, 0, 0, false
	}
	m.down = false
	return cyclemenu.PointerCancel, m.col, m.row, true
}
