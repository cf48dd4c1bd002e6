package cyclemenu

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

// ScalingPolicy selects how the ring radius is derived.
// The zero value is unset and is rejected by SetScalingPolicy.
type ScalingPolicy int

const (
	// Auto sizes the ring from the item count, clamped to the auto bounds.
	Auto ScalingPolicy = iota + 1
	// Fixed uses the configured fixed radius, clamped to the same bounds.
	Fixed
)

// Valid reports whether p is Auto or Fixed.
func (p ScalingPolicy) Valid() bool { return p == Auto || p == Fixed }

func (p ScalingPolicy) String() string {
	switch p {
	case Auto:
		return "auto"
	case Fixed:
		return "fixed"
	}
	return fmt.Sprintf("ScalingPolicy(%d)", int(p))
}

// ParseScalingPolicy parses "auto" or "fixed".
func ParseScalingPolicy(s string) (ScalingPolicy, error) {
	switch s {
	case "auto":
		return Auto, nil
	case "fixed":
		return Fixed, nil
	}
	return 0, fmt.Errorf("cyclemenu: unknown scaling policy %q", s)
}

// ScrollPolicy selects bounded or wrap-around item scrolling.
// The zero value is unset and is rejected by SetScrollPolicy.
type ScrollPolicy int

const (
	// Basic scrolls between the first and the last item.
	Basic ScrollPolicy = iota + 1
	// Endless wraps around. It is honored only when there are more items
	// than fit on the quarter arc; otherwise the widget falls back to Basic.
	Endless
)

// Valid reports whether p is Basic or Endless.
func (p ScrollPolicy) Valid() bool { return p == Basic || p == Endless }

func (p ScrollPolicy) String() string {
	switch p {
	case Basic:
		return "basic"
	case Endless:
		return "endless"
	}
	return fmt.Sprintf("ScrollPolicy(%d)", int(p))
}

// ParseScrollPolicy parses "basic" or "endless".
func ParseScrollPolicy(s string) (ScrollPolicy, error) {
	switch s {
	case "basic":
		return Basic, nil
	case "endless":
		return Endless, nil
	}
	return 0, fmt.Errorf("cyclemenu: unknown scroll policy %q", s)
}

// ItemCount is the number of raw positions an adapter exposes: either a
// finite bound or unbounded (Endless scrolling).
type ItemCount struct {
	n         int
	unbounded bool
}

// Bounded returns a finite item count. Negative n is treated as 0.
func Bounded(n int) ItemCount {
	return ItemCount{n: max(n, 0)}
}

// Unbounded returns the item count of an endlessly scrolling adapter.
func Unbounded() ItemCount {
	return ItemCount{unbounded: true}
}

// IsUnbounded reports whether the count has no upper bound.
func (c ItemCount) IsUnbounded() bool { return c.unbounded }

// Len returns the finite count and true, or 0 and false when unbounded.
func (c ItemCount) Len() (int, bool) {
	if c.unbounded {
		return 0, false
	}
	return c.n, true
}

// Contains reports whether raw is a valid raw position.
func (c ItemCount) Contains(raw int) bool {
	if c.unbounded {
		return true
	}
	return raw >= 0 && raw < c.n
}

func (c ItemCount) String() string {
	if c.unbounded {
		return "unbounded"
	}
	return strconv.Itoa(c.n)
}

// RealPosition maps a raw adapter position to an index into the real
// items. The result is always in [0, realCount) for realCount > 0;
// with no items raw is returned unchanged.
func RealPosition(raw, realCount int) int {
	if realCount <= 0 {
		return raw
	}
	p := raw % realCount
	if p < 0 {
		p += realCount
	}
	return p
}

const (
	// anchorCycles is the preferred number of full item cycles in front of
	// the endless anchor position.
	anchorCycles = 1 << 20
	// anchorLimit keeps the anchor far enough from the int range ends that
	// scrolling in either direction cannot overflow.
	anchorLimit = math.MaxInt / 4
)

// EndlessAnchor returns the initial raw position for Endless scrolling:
// k·realCount for the largest k ≤ 2^20 that keeps the product under a
// safe limit. The result is always a multiple of realCount, so its real
// position is 0. It returns 0 when realCount ≤ 0.
func EndlessAnchor(realCount int) int {
	if realCount <= 0 {
		return 0
	}
	for k := anchorCycles; k > 1; k /= 2 {
		if p, ok := mulChecked(k, realCount); ok && p <= anchorLimit {
			return p
		}
	}
	return realCount
}

// mulChecked multiplies two non-negative ints and reports overflow.
func mulChecked(a, b int) (int, bool) {
	hi, lo := bits.Mul(uint(a), uint(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}
