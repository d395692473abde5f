package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/home-lang/craft/pkg/animation"
)

// springStepValue replicates one semi-implicit Euler step for verification.
func springStepValue(s *animation.SpringAnimation, pos, vel, dt float64) (float64, float64) {
	force := -s.Stiffness*(pos-s.Target()) - s.Damping*vel
	vel += force / s.Mass * dt
	pos += vel * dt
	return pos, vel
}

func TestAnimationController_FirstUpdateUsesDefaultStep(t *testing.T) {
	withFakeClock(t)
	c := animation.NewAnimationController()
	s := animation.NewSpringAnimation(0, 100)
	s.Start()
	c.AddSpring(s)

	wantPos, wantVel := springStepValue(s, 0, 0, 1.0/60)
	c.Update()

	if math.Abs(s.Position()-wantPos) > 1e-9 {
		t.Errorf("position after first update = %v, want %v (1/60s step)", s.Position(), wantPos)
	}
	if math.Abs(s.Velocity()-wantVel) > 1e-9 {
		t.Errorf("velocity after first update = %v, want %v", s.Velocity(), wantVel)
	}
}

func TestAnimationController_CapsFrameDelta(t *testing.T) {
	clk := withFakeClock(t)
	c := animation.NewAnimationController()
	s := animation.NewSpringAnimation(0, 100)
	s.Start()
	c.AddSpring(s)

	c.Update()
	pos, vel := s.Position(), s.Velocity()

	// A five-second stall must integrate as a single capped 32 ms step,
	// not one huge jump.
	clk.Advance(5 * time.Second)
	wantPos, wantVel := springStepValue(s, pos, vel, 0.032)
	c.Update()

	if math.Abs(s.Position()-wantPos) > 1e-9 {
		t.Errorf("position after stalled frame = %v, want %v", s.Position(), wantPos)
	}
	if math.Abs(s.Velocity()-wantVel) > 1e-9 {
		t.Errorf("velocity after stalled frame = %v, want %v", s.Velocity(), wantVel)
	}
}

func TestAnimationController_DrivesAllCollections(t *testing.T) {
	clk := withFakeClock(t)
	c := animation.NewAnimationController()

	tween := animation.NewAnimation(0, 100, 100*time.Millisecond, animation.EaseLinear)
	frames := animation.NewKeyframeAnimation([]animation.Keyframe{
		{Time: 0, Value: 0, Easing: animation.EaseLinear},
		{Time: 1, Value: 10, Easing: animation.EaseLinear},
	}, 100*time.Millisecond)
	seqMember := animation.NewAnimation(0, 1, 100*time.Millisecond, animation.EaseLinear)
	seq := animation.NewAnimationSequence(seqMember)
	groupMember := animation.NewAnimation(0, 1, 100*time.Millisecond, animation.EaseLinear)
	group := animation.NewAnimationGroup(groupMember)
	spring := animation.NewSpringAnimation(0, 1)

	c.AddAnimation(tween)
	c.AddKeyframeAnimation(frames)
	c.AddSequence(seq)
	c.AddGroup(group)
	c.AddSpring(spring)

	tween.Start()
	frames.Start()
	seq.Start()
	group.Start()
	spring.Start()

	if !c.IsAnimating() {
		t.Fatal("expected IsAnimating after starting everything")
	}

	clk.Advance(150 * time.Millisecond)
	c.Update()
	c.Update()

	if tween.State() != animation.StateCompleted {
		t.Errorf("tween state = %v, want completed", tween.State())
	}
	if frames.State() != animation.StateCompleted {
		t.Errorf("keyframe state = %v, want completed", frames.State())
	}
	if seq.State() != animation.StateCompleted {
		t.Errorf("sequence state = %v, want completed", seq.State())
	}
	if group.State() != animation.StateCompleted {
		t.Errorf("group state = %v, want completed", group.State())
	}
	if spring.Position() == 0 {
		t.Error("spring did not integrate")
	}
}

func TestAnimationController_BroadcastsCoverEveryCollection(t *testing.T) {
	clk := withFakeClock(t)
	c := animation.NewAnimationController()

	tween := animation.NewAnimation(0, 100, time.Second, animation.EaseLinear)
	frames := animation.NewKeyframeAnimation([]animation.Keyframe{
		{Time: 0, Value: 0, Easing: animation.EaseLinear},
		{Time: 1, Value: 1, Easing: animation.EaseLinear},
	}, time.Second)
	seqMember := animation.NewAnimation(0, 1, time.Second, animation.EaseLinear)
	seq := animation.NewAnimationSequence(seqMember)
	groupMember := animation.NewAnimation(0, 1, time.Second, animation.EaseLinear)
	group := animation.NewAnimationGroup(groupMember)
	spring := animation.NewSpringAnimation(0, 1)

	c.AddAnimation(tween)
	c.AddKeyframeAnimation(frames)
	c.AddSequence(seq)
	c.AddGroup(group)
	c.AddSpring(spring)

	tween.Start()
	frames.Start()
	seq.Start()
	group.Start()
	spring.Start()

	c.PauseAll()
	for name, state := range map[string]animation.AnimationState{
		"tween":    tween.State(),
		"keyframe": frames.State(),
		"sequence": seq.State(),
		"group":    group.State(),
		"spring":   spring.State(),
	} {
		if state != animation.StatePaused {
			t.Errorf("%s state after PauseAll = %v, want paused", name, state)
		}
	}
	if c.IsAnimating() {
		t.Error("IsAnimating true while everything paused")
	}

	c.UnpauseAll()
	if tween.State() != animation.StateRunning || spring.State() != animation.StateRunning {
		t.Error("UnpauseAll did not resume")
	}

	clk.Advance(10 * time.Millisecond)
	c.CancelAll()
	for name, state := range map[string]animation.AnimationState{
		"tween":    tween.State(),
		"keyframe": frames.State(),
		"sequence": seq.State(),
		"group":    group.State(),
		"spring":   spring.State(),
	} {
		if state != animation.StateCanceled {
			t.Errorf("%s state after CancelAll = %v, want canceled", name, state)
		}
	}
}
