package animation

// Tween maps the 0-1 progress of an animation to any value range or type.
//
// The numeric [Animation] interpolates float64 values directly; Tween is
// the typed companion for hosts that animate colors, offsets, or other
// composite values. Create a unit-range animation (0 to 1) and feed its
// value through the tween:
//
//	fade := animation.NewAnimation(0, 1, 300*time.Millisecond, animation.EaseOutCubic)
//	opacity := animation.TweenFloat64(0.2, 1.0)
//	fade.Start()
//	// each tick:
//	v := opacity.Transform(fade)
//
// See ExampleTween_customType for tweening caller-defined types.
type Tween[T any] struct {
	// Begin is the value at progress 0.
	Begin T
	// End is the value at progress 1.
	End T
	// Lerp interpolates between Begin and End at progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value for the animation's current
// value. The animation is expected to span the unit range.
func (tw *Tween[T]) Transform(a *Animation) T {
	return tw.Evaluate(a.Value())
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}
