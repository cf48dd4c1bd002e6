package cyclemenu

import (
	"math"
	"testing"
)

func TestItemCount(t *testing.T) {
	b := Bounded(5)
	if n, ok := b.Len(); !ok || n != 5 {
		t.Errorf("Bounded(5).Len() = (%d, %v), want (5, true)", n, ok)
	}
	if b.IsUnbounded() {
		t.Error("Bounded(5).IsUnbounded() = true")
	}
	if !b.Contains(4) || b.Contains(5) || b.Contains(-1) {
		t.Error("Bounded(5).Contains misreports bounds")
	}
	if n, _ := Bounded(-3).Len(); n != 0 {
		t.Errorf("Bounded(-3).Len() = %d, want 0", n)
	}

	u := Unbounded()
	if _, ok := u.Len(); ok {
		t.Error("Unbounded().Len() ok = true")
	}
	if !u.Contains(math.MaxInt) {
		t.Error("Unbounded().Contains(MaxInt) = false")
	}
	if u.String() != "unbounded" || b.String() != "5" {
		t.Errorf("String() = %q / %q", u.String(), b.String())
	}
}

func TestRealPosition(t *testing.T) {
	tests := []struct {
		raw, real, want int
	}{
		{0, 5, 0},
		{7, 5, 2},
		{-1, 5, 4},
		{10, 5, 0},
		{3, 0, 3},
	}
	for _, tt := range tests {
		if got := RealPosition(tt.raw, tt.real); got != tt.want {
			t.Errorf("RealPosition(%d, %d) = %d, want %d", tt.raw, tt.real, got, tt.want)
		}
	}
}

func TestEndlessAnchor(t *testing.T) {
	tests := []struct {
		name string
		real int
	}{
		{"small", 7},
		{"one", 1},
		{"large", 1 << 40},
		{"huge", math.MaxInt / 8},
		{"max", math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EndlessAnchor(tt.real)
			if got <= 0 {
				t.Fatalf("EndlessAnchor(%d) = %d, want > 0", tt.real, got)
			}
			if got%tt.real != 0 {
				t.Errorf("EndlessAnchor(%d) = %d, not a multiple", tt.real, got)
			}
			if got > anchorLimit && got != tt.real {
				t.Errorf("EndlessAnchor(%d) = %d exceeds limit", tt.real, got)
			}
		})
	}
	if got := EndlessAnchor(7); got != 7*anchorCycles {
		t.Errorf("EndlessAnchor(7) = %d, want %d", got, 7*anchorCycles)
	}
	if got := EndlessAnchor(0); got != 0 {
		t.Errorf("EndlessAnchor(0) = %d, want 0", got)
	}
}

func TestParsePolicies(t *testing.T) {
	for _, p := range []ScalingPolicy{Auto, Fixed} {
		if got, err := ParseScalingPolicy(p.String()); err != nil || got != p {
			t.Errorf("ParseScalingPolicy(%q) = (%v, %v)", p.String(), got, err)
		}
	}
	for _, p := range []ScrollPolicy{Basic, Endless} {
		if got, err := ParseScrollPolicy(p.String()); err != nil || got != p {
			t.Errorf("ParseScrollPolicy(%q) = (%v, %v)", p.String(), got, err)
		}
	}
	if _, err := ParseScalingPolicy(""); err == nil {
		t.Error("ParseScalingPolicy(\"\") succeeded")
	}
	if _, err := ParseScrollPolicy("loop"); err == nil {
		t.Error("ParseScrollPolicy(\"loop\") succeeded")
	}
	var zero ScrollPolicy
	if zero.Valid() {
		t.Error("zero ScrollPolicy reported valid")
	}
}
