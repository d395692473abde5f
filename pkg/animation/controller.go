package animation

import "time"

const (
	// defaultFrameStep is the delta assumed on the controller's very first
	// Update, before a previous clock sample exists.
	defaultFrameStep = time.Second / 60

	// maxFrameStep caps the computed delta so a stalled host frame does
	// not make spring integration jump.
	maxFrameStep = 32 * time.Millisecond
)

// AnimationController aggregates animations, sequences, groups, and
// springs and drives all of them from a single Update call.
//
// The controller samples the package clock once per Update and computes
// the delta against its previous sample. Tween and keyframe animations
// derive their values from their own captured start times; the delta is
// consumed only by spring integration.
//
// Every handle the controller holds is borrowed. The caller creates and
// owns the animations; the controller never frees them.
type AnimationController struct {
	animations []*Animation
	keyframes  []*KeyframeAnimation
	sequences  []*AnimationSequence
	groups     []*AnimationGroup
	springs    []*SpringAnimation

	lastUpdate time.Time
}

// NewAnimationController creates an empty controller.
func NewAnimationController() *AnimationController {
	return &AnimationController{}
}

// AddAnimation registers a tween animation with the controller.
func (c *AnimationController) AddAnimation(a *Animation) {
	c.animations = append(c.animations, a)
}

// AddKeyframeAnimation registers a keyframe animation with the controller.
func (c *AnimationController) AddKeyframeAnimation(k *KeyframeAnimation) {
	c.keyframes = append(c.keyframes, k)
}

// AddSequence registers a sequence with the controller.
func (c *AnimationController) AddSequence(q *AnimationSequence) {
	c.sequences = append(c.sequences, q)
}

// AddGroup registers a group with the controller.
func (c *AnimationController) AddGroup(g *AnimationGroup) {
	c.groups = append(c.groups, g)
}

// AddSpring registers a spring with the controller.
func (c *AnimationController) AddSpring(s *SpringAnimation) {
	c.springs = append(c.springs, s)
}

// Update samples the clock once, computes the frame delta, and drives
// every owned animation. The first call assumes a 60 fps frame; later
// calls use the measured delta, capped at maxFrameStep.
func (c *AnimationController) Update() {
	now := Now()
	dt := defaultFrameStep
	if !c.lastUpdate.IsZero() {
		dt = now.Sub(c.lastUpdate)
		if dt < 0 {
			dt = 0
		}
		if dt > maxFrameStep {
			dt = maxFrameStep
		}
	}
	c.lastUpdate = now

	for _, a := range c.animations {
		a.Update()
	}
	for _, k := range c.keyframes {
		k.Update()
	}
	for _, q := range c.sequences {
		q.Update()
	}
	for _, g := range c.groups {
		g.Update()
	}
	seconds := dt.Seconds()
	for _, s := range c.springs {
		s.Update(seconds)
	}
}

// Broadcast operations cover every owned collection. Springs pause and
// cancel like everything else; a paused spring simply skips integration
// until unpaused.

// PauseAll pauses every owned animation, sequence, group, and spring.
func (c *AnimationController) PauseAll() {
	for _, a := range c.animations {
		a.Pause()
	}
	for _, k := range c.keyframes {
		k.Pause()
	}
	for _, q := range c.sequences {
		q.Pause()
	}
	for _, g := range c.groups {
		g.Pause()
	}
	for _, s := range c.springs {
		s.Pause()
	}
}

// UnpauseAll resumes every owned animation, sequence, group, and spring.
func (c *AnimationController) UnpauseAll() {
	for _, a := range c.animations {
		a.Unpause()
	}
	for _, k := range c.keyframes {
		k.Unpause()
	}
	for _, q := range c.sequences {
		q.Unpause()
	}
	for _, g := range c.groups {
		g.Unpause()
	}
	for _, s := range c.springs {
		s.Unpause()
	}
}

// CancelAll cancels every owned animation, sequence, group, and spring.
func (c *AnimationController) CancelAll() {
	for _, a := range c.animations {
		a.Cancel()
	}
	for _, k := range c.keyframes {
		k.Cancel()
	}
	for _, q := range c.sequences {
		q.Cancel()
	}
	for _, g := range c.groups {
		g.Cancel()
	}
	for _, s := range c.springs {
		s.Cancel()
	}
}

// IsAnimating reports whether any owned animation is still running.
func (c *AnimationController) IsAnimating() bool {
	for _, a := range c.animations {
		if a.State() == StateRunning {
			return true
		}
	}
	for _, k := range c.keyframes {
		if k.State() == StateRunning {
			return true
		}
	}
	for _, q := range c.sequences {
		if q.State() == StateRunning {
			return true
		}
	}
	for _, g := range c.groups {
		if g.State() == StateRunning {
			return true
		}
	}
	for _, s := range c.springs {
		if s.State() == StateRunning {
			return true
		}
	}
	return false
}
