package anim

// Number is the set of value types a Tween can interpolate.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Property is a typed handle on one animatable value.
// Set is required; Get is optional and only used by callers that need to
// read the current value back (for example to start a tween from it).
type Property[T Number] struct {
	Get func() T
	Set func(T)
}

// Var returns a Property reading and writing *p directly.
func Var[T Number](p *T) Property[T] {
	return Property[T]{
		Get: func() T { return *p },
		Set: func(v T) { *p = v },
	}
}

// Lerp interpolates between from and to. Integer results truncate toward
// zero after interpolation, so a tween over ints reaches to exactly at f == 1.
func Lerp[T Number](from, to T, f float64) T {
	if f == 1 {
		return to
	}
	return T(float64(from) + f*(float64(to)-float64(from)))
}
