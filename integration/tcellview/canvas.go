package tcellview

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// Virtual pixels per terminal cell.
const (
	CellWidth  = 8
	CellHeight = 16
)

// halfBlock draws the top half of a cell in the foreground color.
const halfBlock = '▀'

// halfCell averages the virtual pixels of one half cell and nothing else.
var halfCell = &xdraw.Kernel{
	Support: 0.5,
	At:      func(float64) float64 { return 1 },
}

var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("tcellview: canvas is closed")

	// ErrInvalidDimensions is returned when the cell grid is empty.
	ErrInvalidDimensions = errors.New("tcellview: invalid dimensions")
)

// Canvas renders a gg context onto a grid of terminal cells.
type Canvas struct {
	ctx        *gg.Context
	cells      *image.RGBA // cols × 2·rows samples
	background gg.RGBA
	cols, rows int
	dirty      bool
	closed     bool
}

// NewCanvas creates a canvas covering cols×rows cells.
func NewCanvas(cols, rows int) (*Canvas, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: cols=%d, rows=%d", ErrInvalidDimensions, cols, rows)
	}
	return &Canvas{
		ctx:        gg.NewContext(cols*CellWidth, rows*CellHeight),
		cells:      image.NewRGBA(image.Rect(0, 0, cols, rows*2)),
		background: gg.Black,
		cols:       cols,
		rows:       rows,
		dirty:      true,
	}, nil
}

// SetBackground sets the color the context is cleared to before drawing.
func (c *Canvas) SetBackground(bg gg.RGBA) {
	c.background = bg
	c.dirty = true
}

// Context returns the gg drawing context, or nil once closed.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// PixelSize returns the size of the drawing context in virtual pixels.
func (c *Canvas) PixelSize() (width, height int) {
	return c.cols * CellWidth, c.rows * CellHeight
}

// Cells returns the size of the grid in cells.
func (c *Canvas) Cells() (cols, rows int) {
	return c.cols, c.rows
}

// IsDirty reports whether Flush has something new to show.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Draw clears the context, calls fn and averages each half cell of the
// result into cells.
func (c *Canvas) Draw(fn func(*gg.Context) error) error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.ctx.ClearWithColor(c.background)
	if err := fn(c.ctx); err != nil {
		return err
	}
	img := c.ctx.Image()
	halfCell.Scale(c.cells, c.cells.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	c.dirty = true
	return nil
}

// Resize changes the grid size. The next Draw repaints everything.
func (c *Canvas) Resize(cols, rows int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: cols=%d, rows=%d", ErrInvalidDimensions, cols, rows)
	}
	if c.cols == cols && c.rows == rows {
		return nil
	}
	if err := c.ctx.Resize(cols*CellWidth, rows*CellHeight); err != nil {
		return fmt.Errorf("tcellview: context resize failed: %w", err)
	}
	c.cells = image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	c.cols, c.rows = cols, rows
	c.dirty = true
	return nil
}

// CellColors returns the top and bottom sample of a cell.
func (c *Canvas) CellColors(col, row int) (top, bottom color.RGBA) {
	return c.cells.RGBAAt(col, row*2), c.cells.RGBAAt(col, row*2+1)
}

// Flush writes every cell to screen as a half block. It does not call
// screen.Show.
func (c *Canvas) Flush(screen tcell.Screen) error {
	if c.closed {
		return ErrCanvasClosed
	}
	for row := range c.rows {
		for col := range c.cols {
			top, bottom := c.CellColors(col, row)
			style := tcell.StyleDefault.
				Foreground(tcellColor(top)).
				Background(tcellColor(bottom))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	c.dirty = false
	return nil
}

// PointAt maps a cell to the virtual pixel at its center.
func (c *Canvas) PointAt(col, row int) (x, y float64) {
	return float64(col*CellWidth + CellWidth/2), float64(row*CellHeight + CellHeight/2)
}

// Close releases the drawing context. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.ctx != nil {
		_ = c.ctx.Close()
		c.ctx = nil
	}
	return nil
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
