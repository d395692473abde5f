package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/home-lang/craft/pkg/animation"
)

func TestKeyframeAnimation_ValuesAtKeyframes(t *testing.T) {
	clk := withFakeClock(t)
	frames := []animation.Keyframe{
		{Time: 0, Value: 0, Easing: animation.EaseLinear},
		{Time: 0.25, Value: 40, Easing: animation.EaseLinear},
		{Time: 0.5, Value: 10, Easing: animation.EaseLinear},
		{Time: 1, Value: 100, Easing: animation.EaseLinear},
	}
	k := animation.NewKeyframeAnimation(frames, time.Second)
	start := clk.Now()
	k.Start()

	for _, f := range frames {
		clk.Set(start.Add(time.Duration(f.Time * float64(time.Second))))
		if got := k.Value(); got != f.Value {
			t.Errorf("value at t=%v = %v, want %v", f.Time, got, f.Value)
		}
	}
}

func TestKeyframeAnimation_SegmentInterpolation(t *testing.T) {
	clk := withFakeClock(t)
	k := animation.NewKeyframeAnimation([]animation.Keyframe{
		{Time: 0, Value: 0, Easing: animation.EaseLinear},
		{Time: 0.5, Value: 10, Easing: animation.EaseLinear},
		{Time: 1, Value: 0, Easing: animation.EaseLinear},
	}, time.Second)
	k.Start()

	clk.Advance(250 * time.Millisecond)
	if got := k.Update(); got != 5 {
		t.Errorf("value at t=0.25 = %v, want 5", got)
	}
	clk.Advance(500 * time.Millisecond)
	if got := k.Update(); got != 5 {
		t.Errorf("value at t=0.75 = %v, want 5", got)
	}
}

func TestKeyframeAnimation_SegmentEasing(t *testing.T) {
	clk := withFakeClock(t)
	k := animation.NewKeyframeAnimation([]animation.Keyframe{
		{Time: 0, Value: 0, Easing: animation.EaseInQuad},
		{Time: 1, Value: 100, Easing: animation.EaseLinear},
	}, time.Second)
	k.Start()

	// Segment progress 0.5 through easeInQuad gives 0.25.
	clk.Advance(500 * time.Millisecond)
	if got := k.Update(); math.Abs(got-25) > 1e-9 {
		t.Errorf("eased segment value = %v, want 25", got)
	}
}

func TestKeyframeAnimation_ZeroWidthSegment(t *testing.T) {
	clk := withFakeClock(t)
	k := animation.NewKeyframeAnimation([]animation.Keyframe{
		{Time: 0, Value: 0, Easing: animation.EaseLinear},
		{Time: 0.5, Value: 10, Easing: animation.EaseLinear},
		{Time: 0.5, Value: 20, Easing: animation.EaseLinear},
		{Time: 1, Value: 30, Easing: animation.EaseLinear},
	}, time.Second)
	k.Start()

	// Landing exactly on the zero-width pair must not divide by zero.
	clk.Advance(500 * time.Millisecond)
	if got := k.Value(); got != 20 {
		t.Errorf("value at zero-width segment = %v, want 20", got)
	}
}

func TestKeyframeAnimation_CompletesPastFinalKeyframe(t *testing.T) {
	clk := withFakeClock(t)
	k := animation.NewKeyframeAnimation([]animation.Keyframe{
		{Time: 0, Value: 0, Easing: animation.EaseLinear},
		{Time: 0.8, Value: 50, Easing: animation.EaseLinear},
	}, time.Second)

	completions := 0
	k.AddCompleteListener(func() { completions++ })

	k.Start()
	clk.Advance(900 * time.Millisecond)
	if got := k.Update(); got != 50 {
		t.Errorf("value past final keyframe = %v, want 50", got)
	}
	if k.State() != animation.StateCompleted {
		t.Errorf("state past final keyframe = %v, want completed", k.State())
	}
	if completions != 1 {
		t.Errorf("complete listener fired %d times, want 1", completions)
	}
}

func TestKeyframeAnimation_NoFrames(t *testing.T) {
	clk := withFakeClock(t)
	k := animation.NewKeyframeAnimation(nil, time.Second)
	k.Start()

	clk.Advance(2 * time.Second)
	if got := k.Update(); got != 0 {
		t.Errorf("value with no frames = %v, want 0", got)
	}
	if k.State() != animation.StateCompleted {
		t.Errorf("state with no frames = %v, want completed", k.State())
	}
}

func TestKeyframeAnimation_PauseExcludesPausedInterval(t *testing.T) {
	clk := withFakeClock(t)
	k := animation.NewKeyframeAnimation([]animation.Keyframe{
		{Time: 0, Value: 0, Easing: animation.EaseLinear},
		{Time: 1, Value: 100, Easing: animation.EaseLinear},
	}, time.Second)
	k.Start()

	clk.Advance(400 * time.Millisecond)
	k.Pause()
	clk.Advance(time.Hour)
	if got := k.Value(); got != 40 {
		t.Errorf("paused value = %v, want 40", got)
	}
	k.Unpause()
	clk.Advance(100 * time.Millisecond)
	if got := k.Update(); got != 50 {
		t.Errorf("value after resume = %v, want 50", got)
	}
}
