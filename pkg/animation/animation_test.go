package animation_test

import (
	"testing"
	"time"

	"github.com/home-lang/craft/pkg/animation"
	crafttest "github.com/home-lang/craft/pkg/testing"
)

// withFakeClock installs a FakeClock for the duration of the test.
func withFakeClock(t *testing.T) *crafttest.FakeClock {
	t.Helper()
	clk := crafttest.NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

func TestAnimation_Lifecycle(t *testing.T) {
	clk := withFakeClock(t)
	a := animation.NewAnimation(0, 100, time.Second, animation.EaseLinear)

	if a.State() != animation.StateIdle {
		t.Fatalf("initial state = %v, want idle", a.State())
	}
	if got := a.Value(); got != 0 {
		t.Errorf("idle value = %v, want 0", got)
	}

	a.Start()
	if a.State() != animation.StateRunning {
		t.Fatalf("state after Start = %v, want running", a.State())
	}

	clk.Advance(500 * time.Millisecond)
	if got := a.Update(); got != 50 {
		t.Errorf("value at half duration = %v, want 50", got)
	}
	if got := a.Progress(); got != 0.5 {
		t.Errorf("progress at half duration = %v, want 0.5", got)
	}

	clk.Advance(600 * time.Millisecond)
	if got := a.Update(); got != 100 {
		t.Errorf("value past duration = %v, want 100", got)
	}
	if a.State() != animation.StateCompleted {
		t.Errorf("state past duration = %v, want completed", a.State())
	}
}

func TestAnimation_EasingApplied(t *testing.T) {
	clk := withFakeClock(t)
	a := animation.NewAnimation(0, 100, time.Second, animation.EaseInQuad)
	a.Start()

	clk.Advance(500 * time.Millisecond)
	if got := a.Update(); got != 25 {
		t.Errorf("easeInQuad value at half duration = %v, want 25", got)
	}
}

func TestAnimation_CompleteFiresOnce(t *testing.T) {
	clk := withFakeClock(t)
	a := animation.NewAnimation(0, 1, 100*time.Millisecond, animation.EaseLinear)

	completions := 0
	a.AddCompleteListener(func() { completions++ })

	a.Start()
	clk.Advance(200 * time.Millisecond)
	a.Update()
	a.Update()
	a.Update()

	if completions != 1 {
		t.Errorf("complete listener fired %d times, want 1", completions)
	}
}

func TestAnimation_UpdateListener(t *testing.T) {
	clk := withFakeClock(t)
	a := animation.NewAnimation(0, 100, time.Second, animation.EaseLinear)

	var values []float64
	unsubscribe := a.AddUpdateListener(func(v float64) {
		values = append(values, v)
	})

	a.Start()
	clk.Advance(250 * time.Millisecond)
	a.Update()
	clk.Advance(250 * time.Millisecond)
	a.Update()

	if len(values) != 2 || values[0] != 25 || values[1] != 50 {
		t.Fatalf("listener values = %v, want [25 50]", values)
	}

	unsubscribe()
	clk.Advance(100 * time.Millisecond)
	a.Update()
	if len(values) != 2 {
		t.Errorf("listener fired after unsubscribe, values = %v", values)
	}
}

func TestAnimation_PauseExcludesPausedInterval(t *testing.T) {
	clk := withFakeClock(t)
	a := animation.NewAnimation(0, 100, time.Second, animation.EaseLinear)
	a.Start()

	clk.Advance(250 * time.Millisecond)
	a.Pause()
	if a.State() != animation.StatePaused {
		t.Fatalf("state after Pause = %v, want paused", a.State())
	}

	// A long stall while paused must not advance the value.
	clk.Advance(10 * time.Second)
	if got := a.Value(); got != 25 {
		t.Errorf("paused value = %v, want 25", got)
	}

	a.Unpause()
	if got := a.Value(); got != 25 {
		t.Errorf("value immediately after Unpause = %v, want 25", got)
	}

	clk.Advance(250 * time.Millisecond)
	if got := a.Update(); got != 50 {
		t.Errorf("value after resume = %v, want 50", got)
	}
}

func TestAnimation_ValueIsSideEffectFree(t *testing.T) {
	clk := withFakeClock(t)
	a := animation.NewAnimation(0, 100, 100*time.Millisecond, animation.EaseLinear)

	completions := 0
	a.AddCompleteListener(func() { completions++ })

	a.Start()
	clk.Advance(time.Second)

	// Repeated reads past the end neither transition state nor fire
	// listeners; only Update does.
	for range 3 {
		if got := a.Value(); got != 100 {
			t.Errorf("Value past end = %v, want 100", got)
		}
	}
	if a.State() != animation.StateRunning {
		t.Errorf("Value changed state to %v", a.State())
	}
	if completions != 0 {
		t.Errorf("Value fired complete listener %d times", completions)
	}

	a.Update()
	if a.State() != animation.StateCompleted || completions != 1 {
		t.Errorf("Update did not complete: state=%v completions=%d", a.State(), completions)
	}
}

func TestAnimation_ProgressNonDecreasing(t *testing.T) {
	clk := withFakeClock(t)
	a := animation.NewAnimation(10, 20, time.Second, animation.EaseOutCubic)
	a.Start()

	prev := a.Progress()
	for range 50 {
		clk.Advance(30 * time.Millisecond)
		a.Update()
		cur := a.Progress()
		if cur < prev {
			t.Fatalf("progress decreased: %v -> %v", prev, cur)
		}
		prev = cur
	}
}

func TestAnimation_CancelAndReset(t *testing.T) {
	clk := withFakeClock(t)
	a := animation.NewAnimation(0, 100, time.Second, animation.EaseLinear)
	a.Start()
	clk.Advance(300 * time.Millisecond)

	a.Cancel()
	if a.State() != animation.StateCanceled {
		t.Fatalf("state after Cancel = %v, want canceled", a.State())
	}

	a.Reset()
	if a.State() != animation.StateIdle {
		t.Fatalf("state after Reset = %v, want idle", a.State())
	}
	if got := a.Progress(); got != 0 {
		t.Errorf("progress after Reset = %v, want 0", got)
	}
}

func TestAnimation_ZeroDurationCompletesImmediately(t *testing.T) {
	withFakeClock(t)
	a := animation.NewAnimation(0, 100, 0, animation.EaseLinear)
	a.Start()

	if got := a.Update(); got != 100 {
		t.Errorf("zero-duration value = %v, want 100", got)
	}
	if a.State() != animation.StateCompleted {
		t.Errorf("zero-duration state = %v, want completed", a.State())
	}
}

func TestTween_CustomLerp(t *testing.T) {
	clk := withFakeClock(t)
	a := animation.NewAnimation(0, 1, time.Second, animation.EaseLinear)
	width := animation.TweenFloat64(100, 300)

	a.Start()
	clk.Advance(500 * time.Millisecond)
	a.Update()

	if got := width.Transform(a); got != 200 {
		t.Errorf("tween at half progress = %v, want 200", got)
	}
}
