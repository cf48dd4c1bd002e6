package anim

import "math"

// Interpolator maps the linear progress of an animation in [0, 1] to the
// eased progress applied to its property. Results may leave [0, 1]
// (see Overshoot).
type Interpolator func(t float64) float64

// Linear applies progress unchanged.
func Linear(t float64) float64 {
	return t
}

// AccelerateDecelerate starts and ends slowly, fastest in the middle.
// It is the default interpolator for tweens.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// Overshoot flings past the end value and settles back. Larger tension
// overshoots further; tension 0 degenerates to a decelerating curve.
func Overshoot(tension float64) Interpolator {
	return func(t float64) float64 {
		t--
		return t*t*((tension+1)*t+tension) + 1
	}
}
