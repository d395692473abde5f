package animation

import "math"

// Default spring parameters, matching the widely used "default" spring
// preset (stiffness 170, damping 26, unit mass).
const (
	defaultStiffness = 170.0
	defaultDamping   = 26.0
	defaultMass      = 1.0
	defaultThreshold = 0.001
)

// SpringAnimation simulates a damped harmonic oscillator pulling a position
// toward a target.
//
// Unlike [Animation] it holds no start timestamp: the caller supplies the
// integration step on every [SpringAnimation.Update] call, so springs
// compose naturally with variable frame rates when driven by an
// [AnimationController]. Each step is a semi-implicit Euler integration:
// velocity absorbs the spring and damping forces first, then position
// absorbs velocity.
//
// The spring settles when both the displacement from the target and the
// velocity fall under Threshold; the position then snaps to the target
// exactly and the state becomes Completed.
type SpringAnimation struct {
	// Stiffness is the spring constant pulling position toward the target.
	Stiffness float64
	// Damping resists velocity, removing energy from the oscillation.
	Damping float64
	// Mass scales the acceleration produced by the net force.
	Mass float64
	// Threshold is the settling tolerance on displacement and velocity.
	Threshold float64

	initial  float64
	position float64
	velocity float64
	target   float64
	state    AnimationState
}

// NewSpringAnimation creates a spring at the initial position pulling
// toward target, with default stiffness, damping, mass, and threshold.
func NewSpringAnimation(initial, target float64) *SpringAnimation {
	return &SpringAnimation{
		Stiffness: defaultStiffness,
		Damping:   defaultDamping,
		Mass:      defaultMass,
		Threshold: defaultThreshold,
		initial:   initial,
		position:  initial,
		target:    target,
	}
}

// GentleSpring creates a soft, slow spring (stiffness 120, damping 14).
func GentleSpring(initial, target float64) *SpringAnimation {
	s := NewSpringAnimation(initial, target)
	s.Stiffness = 120
	s.Damping = 14
	return s
}

// WobblySpring creates an underdamped spring that overshoots and
// oscillates (stiffness 180, damping 12).
func WobblySpring(initial, target float64) *SpringAnimation {
	s := NewSpringAnimation(initial, target)
	s.Stiffness = 180
	s.Damping = 12
	return s
}

// StiffSpring creates a fast, tight spring (stiffness 210, damping 20).
func StiffSpring(initial, target float64) *SpringAnimation {
	s := NewSpringAnimation(initial, target)
	s.Stiffness = 210
	s.Damping = 20
	return s
}

// Start arms the spring. An unstarted spring ignores Update calls.
func (s *SpringAnimation) Start() {
	s.state = StateRunning
}

// Pause freezes the simulation; Update becomes a no-op until Unpause.
func (s *SpringAnimation) Pause() {
	if s.state == StateRunning {
		s.state = StatePaused
	}
}

// Unpause resumes a paused simulation. Position and velocity are
// untouched, so motion continues where it stopped.
func (s *SpringAnimation) Unpause() {
	if s.state == StatePaused {
		s.state = StateRunning
	}
}

// Cancel stops the simulation without settling.
func (s *SpringAnimation) Cancel() {
	s.state = StateCanceled
}

// Reset returns the spring to its initial position at rest, in Idle.
func (s *SpringAnimation) Reset() {
	s.position = s.initial
	s.velocity = 0
	s.state = StateIdle
}

// SetTarget retargets the spring and re-arms it into Running. Velocity is
// deliberately preserved so mid-motion retargeting stays smooth.
func (s *SpringAnimation) SetTarget(target float64) {
	s.target = target
	s.state = StateRunning
}

// Update advances the simulation by dt seconds and returns the new
// position. Non-positive steps and non-running states leave the
// simulation untouched.
func (s *SpringAnimation) Update(dt float64) float64 {
	if s.state != StateRunning || dt <= 0 {
		return s.position
	}

	force := -s.Stiffness*(s.position-s.target) - s.Damping*s.velocity
	acceleration := force / s.Mass
	s.velocity += acceleration * dt
	s.position += s.velocity * dt

	if math.Abs(s.position-s.target) < s.Threshold && math.Abs(s.velocity) < s.Threshold {
		s.position = s.target
		s.velocity = 0
		s.state = StateCompleted
	}
	return s.position
}

// Position returns the current position.
func (s *SpringAnimation) Position() float64 { return s.position }

// Velocity returns the current velocity.
func (s *SpringAnimation) Velocity() float64 { return s.velocity }

// Target returns the current target.
func (s *SpringAnimation) Target() float64 { return s.target }

// State returns the current lifecycle state.
func (s *SpringAnimation) State() AnimationState { return s.state }

// IsDone reports whether the spring has settled.
func (s *SpringAnimation) IsDone() bool { return s.state == StateCompleted }
