package cyclemenu

import (
	"fmt"
	"image"
)

// Corner is the container corner the menu is anchored to.
// The zero value is unset and is rejected by SetCorner.
type Corner int

const (
	// LeftTop anchors the menu to the top-left corner.
	LeftTop Corner = iota + 1
	// RightTop anchors the menu to the top-right corner.
	RightTop
	// LeftBottom anchors the menu to the bottom-left corner.
	LeftBottom
	// RightBottom anchors the menu to the bottom-right corner.
	RightBottom
)

var cornerNames = map[Corner]string{
	LeftTop:     "left-top",
	RightTop:    "right-top",
	LeftBottom:  "left-bottom",
	RightBottom: "right-bottom",
}

// Valid reports whether c is one of the four corners.
func (c Corner) Valid() bool {
	return c >= LeftTop && c <= RightBottom
}

// IsLeftSide reports whether the corner touches the left edge.
func (c Corner) IsLeftSide() bool { return c == LeftTop || c == LeftBottom }

// IsRightSide reports whether the corner touches the right edge.
func (c Corner) IsRightSide() bool { return c == RightTop || c == RightBottom }

// IsUpSide reports whether the corner touches the top edge.
func (c Corner) IsUpSide() bool { return c == LeftTop || c == RightTop }

// IsBottomSide reports whether the corner touches the bottom edge.
func (c Corner) IsBottomSide() bool { return c == LeftBottom || c == RightBottom }

// String returns the kebab-case corner name used in configuration files.
func (c Corner) String() string {
	if name, ok := cornerNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Corner(%d)", int(c))
}

// ParseCorner parses a name produced by Corner.String.
func ParseCorner(s string) (Corner, error) {
	for c, name := range cornerNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("cyclemenu: unknown corner %q", s)
}

// Point returns the corner's position in a width×height container.
func (c Corner) Point(width, height int) image.Point {
	var p image.Point
	if c.IsRightSide() {
		p.X = width
	}
	if c.IsBottomSide() {
		p.Y = height
	}
	return p
}

// BaseAngle returns the direction, in degrees clockwise from +X in screen
// space, where the quarter arc of items starts for this corner. The arc
// spans BaseAngle to BaseAngle+90 and always points into the container.
func (c Corner) BaseAngle() float64 {
	switch c {
	case LeftTop:
		return 0
	case RightTop:
		return 90
	case RightBottom:
		return 180
	case LeftBottom:
		return 270
	}
	return 0
}

// square returns the side×side square sharing the corner with a
// width×height container.
func (c Corner) square(width, height, side int) image.Rectangle {
	x0, y0 := 0, 0
	if c.IsRightSide() {
		x0 = width - side
	}
	if c.IsBottomSide() {
		y0 = height - side
	}
	return image.Rect(x0, y0, x0+side, y0+side)
}

// inset returns the size×size square placed margin pixels inside the
// container from the corner on both axes.
func (c Corner) inset(width, height, size, margin int) image.Rectangle {
	x0, y0 := margin, margin
	if c.IsRightSide() {
		x0 = width - size - margin
	}
	if c.IsBottomSide() {
		y0 = height - size - margin
	}
	return image.Rect(x0, y0, x0+size, y0+size)
}
