package animation

import (
	"fmt"
	"math"
)

// Easing selects one of the named easing formulas that shape how a value
// accelerates and decelerates over the course of an animation.
//
// Each variant maps normalized time t in [0, 1] to normalized progress in
// the same range, with Apply(0) == 0 and Apply(1) == 1. The catalog covers
// the standard power curves (quad through quint) plus sinusoidal,
// exponential, circular, back-overshoot, elastic, and bounce shapes, each
// in In, Out, and InOut flavors.
//
// Easing values are plain tags dispatched by a single switch in [Easing.Apply],
// so they are cheap to store and copy and carry no function pointers.
type Easing int

const (
	// EaseLinear applies no easing: progress equals time.
	EaseLinear Easing = iota

	EaseInSine
	EaseOutSine
	EaseInOutSine

	EaseInQuad
	EaseOutQuad
	EaseInOutQuad

	EaseInCubic
	EaseOutCubic
	EaseInOutCubic

	EaseInQuart
	EaseOutQuart
	EaseInOutQuart

	EaseInQuint
	EaseOutQuint
	EaseInOutQuint

	EaseInExpo
	EaseOutExpo
	EaseInOutExpo

	EaseInCirc
	EaseOutCirc
	EaseInOutCirc

	EaseInBack
	EaseOutBack
	EaseInOutBack

	EaseInElastic
	EaseOutElastic
	EaseInOutElastic

	EaseInBounce
	EaseOutBounce
	EaseInOutBounce
)

// Back-overshoot and elastic constants from the standard easing catalog.
const (
	backC1 = 1.70158
	backC2 = backC1 * 1.525
	backC3 = backC1 + 1

	elasticC4 = (2 * math.Pi) / 3
	elasticC5 = (2 * math.Pi) / 4.5
)

// Apply evaluates the easing formula at t. The input is clamped to [0, 1]
// before evaluation, so out-of-range progress never extrapolates.
func (e Easing) Apply(t float64) float64 {
	t = clampUnit(t)
	switch e {
	case EaseLinear:
		return t

	case EaseInSine:
		return 1 - math.Cos((t*math.Pi)/2)
	case EaseOutSine:
		return math.Sin((t * math.Pi) / 2)
	case EaseInOutSine:
		return -(math.Cos(math.Pi*t) - 1) / 2

	case EaseInQuad:
		return t * t
	case EaseOutQuad:
		return 1 - (1-t)*(1-t)
	case EaseInOutQuad:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - (-2*t+2)*(-2*t+2)/2

	case EaseInCubic:
		return t * t * t
	case EaseOutCubic:
		return 1 - (1-t)*(1-t)*(1-t)
	case EaseInOutCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - (-2*t+2)*(-2*t+2)*(-2*t+2)/2

	case EaseInQuart:
		return t * t * t * t
	case EaseOutQuart:
		return 1 - (1-t)*(1-t)*(1-t)*(1-t)
	case EaseInOutQuart:
		if t < 0.5 {
			return 8 * t * t * t * t
		}
		return 1 - (-2*t+2)*(-2*t+2)*(-2*t+2)*(-2*t+2)/2

	case EaseInQuint:
		return t * t * t * t * t
	case EaseOutQuint:
		return 1 - (1-t)*(1-t)*(1-t)*(1-t)*(1-t)
	case EaseInOutQuint:
		if t < 0.5 {
			return 16 * t * t * t * t * t
		}
		return 1 - (-2*t+2)*(-2*t+2)*(-2*t+2)*(-2*t+2)*(-2*t+2)/2

	case EaseInExpo:
		if t == 0 {
			return 0
		}
		return math.Pow(2, 10*t-10)
	case EaseOutExpo:
		if t == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*t)
	case EaseInOutExpo:
		switch {
		case t == 0:
			return 0
		case t == 1:
			return 1
		case t < 0.5:
			return math.Pow(2, 20*t-10) / 2
		default:
			return (2 - math.Pow(2, -20*t+10)) / 2
		}

	case EaseInCirc:
		return 1 - math.Sqrt(1-t*t)
	case EaseOutCirc:
		return math.Sqrt(1 - (t-1)*(t-1))
	case EaseInOutCirc:
		if t < 0.5 {
			return (1 - math.Sqrt(1-(2*t)*(2*t))) / 2
		}
		return (math.Sqrt(1-(-2*t+2)*(-2*t+2)) + 1) / 2

	case EaseInBack:
		return backC3*t*t*t - backC1*t*t
	case EaseOutBack:
		return 1 + backC3*(t-1)*(t-1)*(t-1) + backC1*(t-1)*(t-1)
	case EaseInOutBack:
		if t < 0.5 {
			return ((2 * t) * (2 * t) * ((backC2+1)*2*t - backC2)) / 2
		}
		return ((2*t-2)*(2*t-2)*((backC2+1)*(t*2-2)+backC2) + 2) / 2

	case EaseInElastic:
		switch t {
		case 0:
			return 0
		case 1:
			return 1
		default:
			return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*elasticC4)
		}
	case EaseOutElastic:
		switch t {
		case 0:
			return 0
		case 1:
			return 1
		default:
			return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*elasticC4) + 1
		}
	case EaseInOutElastic:
		switch {
		case t == 0:
			return 0
		case t == 1:
			return 1
		case t < 0.5:
			return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*elasticC5)) / 2
		default:
			return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*elasticC5))/2 + 1
		}

	case EaseInBounce:
		return 1 - bounceOut(1-t)
	case EaseOutBounce:
		return bounceOut(t)
	case EaseInOutBounce:
		if t < 0.5 {
			return (1 - bounceOut(1-2*t)) / 2
		}
		return (1 + bounceOut(2*t-1)) / 2

	default:
		return t
	}
}

// bounceOut is the 4-segment piecewise quadratic behind the bounce family.
// The 7.5625 / 2.75 constants encode a restitution of roughly 0.7225.
func bounceOut(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75

	switch {
	case t < 1.0/d1:
		return n1 * t * t
	case t < 2.0/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// easingNames is ordered to match the Easing constants.
var easingNames = [...]string{
	"linear",
	"easeInSine", "easeOutSine", "easeInOutSine",
	"easeInQuad", "easeOutQuad", "easeInOutQuad",
	"easeInCubic", "easeOutCubic", "easeInOutCubic",
	"easeInQuart", "easeOutQuart", "easeInOutQuart",
	"easeInQuint", "easeOutQuint", "easeInOutQuint",
	"easeInExpo", "easeOutExpo", "easeInOutExpo",
	"easeInCirc", "easeOutCirc", "easeInOutCirc",
	"easeInBack", "easeOutBack", "easeInOutBack",
	"easeInElastic", "easeOutElastic", "easeInOutElastic",
	"easeInBounce", "easeOutBounce", "easeInOutBounce",
}

// EasingCount is the number of named easing variants.
const EasingCount = len(easingNames)

// String returns the easing's name, e.g. "easeOutCubic".
func (e Easing) String() string {
	if e < 0 || int(e) >= len(easingNames) {
		return fmt.Sprintf("Easing(%d)", int(e))
	}
	return easingNames[e]
}

// ParseEasing returns the easing named by s, as produced by [Easing.String].
func ParseEasing(s string) (Easing, error) {
	for i, name := range easingNames {
		if name == s {
			return Easing(i), nil
		}
	}
	return EaseLinear, fmt.Errorf("unknown easing %q", s)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
