// Package animation provides the time-driven value interpolators behind
// Craft's animation engine.
//
// # Core Components
//
// The engine consists of several key components:
//
//   - [Animation]: a tween that interpolates a start value to an end value
//     over a duration, shaped by an [Easing] curve.
//
//   - [KeyframeAnimation]: piecewise interpolation across an ordered list
//     of time/value/easing keyframes.
//
//   - [SpringAnimation]: a physically integrated oscillator driven by
//     explicit per-call time deltas rather than the shared clock.
//
//   - [AnimationSequence] and [AnimationGroup]: composition primitives that
//     run borrowed animations one at a time or concurrently.
//
//   - [AnimationController]: top-level aggregator that computes the frame
//     delta and drives every owned animation from one Update call.
//
// # Driving Model
//
// The engine has no internal thread or timer. A host calls Start once and
// then Update on every frame or timer tick; elapsed time is measured
// against the package [Clock], which tests replace via [SetClock]. Value
// reads ([Animation.Value], [Animation.Progress]) are side-effect free and
// may be called any number of times per tick; Update additionally performs
// state transitions and fires listeners, synchronously on the caller's
// goroutine. Listener callbacks must not re-enter the same animation's
// Update.
package animation

import "time"

// timeline carries the clock-sampled lifecycle shared by Animation and
// KeyframeAnimation: the state machine plus the start and pause timestamps.
type timeline struct {
	state     AnimationState
	duration  time.Duration
	startTime time.Time
	pausedAt  time.Time
}

func (tl *timeline) start() {
	tl.state = StateRunning
	tl.startTime = Now()
	tl.pausedAt = time.Time{}
}

func (tl *timeline) pause() {
	if tl.state != StateRunning {
		return
	}
	tl.state = StatePaused
	tl.pausedAt = Now()
}

// unpause shifts the captured start time forward by the paused interval,
// so elapsed time does not advance while paused.
func (tl *timeline) unpause() {
	if tl.state != StatePaused {
		return
	}
	tl.startTime = tl.startTime.Add(Now().Sub(tl.pausedAt))
	tl.pausedAt = time.Time{}
	tl.state = StateRunning
}

func (tl *timeline) cancel() {
	tl.state = StateCanceled
}

func (tl *timeline) reset() {
	tl.state = StateIdle
	tl.startTime = time.Time{}
	tl.pausedAt = time.Time{}
}

// elapsed returns the time since start, frozen while paused.
func (tl *timeline) elapsed() time.Duration {
	switch tl.state {
	case StateRunning:
		return Now().Sub(tl.startTime)
	case StatePaused:
		return tl.pausedAt.Sub(tl.startTime)
	case StateCompleted:
		return tl.duration
	default:
		return 0
	}
}

// fraction returns elapsed time normalized by duration, clamped to [0, 1].
// Zero and negative durations are treated as already complete.
func (tl *timeline) fraction() float64 {
	if tl.duration <= 0 {
		if tl.state == StateIdle {
			return 0
		}
		return 1
	}
	return clampUnit(float64(tl.elapsed()) / float64(tl.duration))
}

// callbacks holds the listener sets shared by the clock-driven animations.
// Registration returns an unsubscribe closure; the engine never owns the
// state a listener captures.
type callbacks struct {
	update   map[int]func(float64)
	complete map[int]func()
	nextID   int
}

func (cb *callbacks) addUpdate(fn func(float64)) func() {
	if cb.update == nil {
		cb.update = make(map[int]func(float64))
	}
	id := cb.nextID
	cb.nextID++
	cb.update[id] = fn
	return func() {
		delete(cb.update, id)
	}
}

func (cb *callbacks) addComplete(fn func()) func() {
	if cb.complete == nil {
		cb.complete = make(map[int]func())
	}
	id := cb.nextID
	cb.nextID++
	cb.complete[id] = fn
	return func() {
		delete(cb.complete, id)
	}
}

func (cb *callbacks) notifyUpdate(value float64) {
	for _, fn := range cb.update {
		fn(value)
	}
}

func (cb *callbacks) notifyComplete() {
	for _, fn := range cb.complete {
		fn()
	}
}

// Animation interpolates a start value to an end value over a duration,
// shaped by an easing curve.
//
// The current value is always computed from elapsed time against the
// package clock, never accumulated, so reading it multiple times per tick
// is cheap and idempotent. Use [Animation.Update] once per tick to advance
// the state machine and fire listeners, and [Animation.Value] for
// additional side-effect-free reads.
type Animation struct {
	timeline
	callbacks

	startValue float64
	endValue   float64
	easing     Easing
}

// NewAnimation creates an animation from start to end over the given
// duration. The animation is Idle until Start is called.
func NewAnimation(start, end float64, duration time.Duration, easing Easing) *Animation {
	return &Animation{
		timeline:   timeline{duration: duration},
		startValue: start,
		endValue:   end,
		easing:     easing,
	}
}

// Start transitions the animation to Running and captures the clock.
// Calling Start on a running or finished animation restarts it.
func (a *Animation) Start() { a.start() }

// Pause freezes the animation at its current progress. No-op unless Running.
func (a *Animation) Pause() { a.pause() }

// Unpause resumes a paused animation. The paused interval is excluded from
// elapsed time, so the value continues exactly where Pause left it.
func (a *Animation) Unpause() { a.unpause() }

// Cancel stops the animation without completing it.
func (a *Animation) Cancel() { a.cancel() }

// Reset returns the animation to Idle and clears the captured timestamps.
func (a *Animation) Reset() { a.reset() }

// State returns the current lifecycle state.
func (a *Animation) State() AnimationState { return a.state }

// Duration returns the configured duration.
func (a *Animation) Duration() time.Duration { return a.duration }

// Progress returns elapsed time normalized by duration, clamped to [0, 1],
// before easing is applied.
func (a *Animation) Progress() float64 { return a.fraction() }

// Value returns the current interpolated value without mutating state.
// Idle and Canceled animations report the start value; Completed
// animations report the end value.
func (a *Animation) Value() float64 {
	switch a.state {
	case StateIdle, StateCanceled:
		return a.startValue
	case StateCompleted:
		return a.endValue
	}
	p := a.fraction()
	if p >= 1 {
		return a.endValue
	}
	return a.startValue + (a.endValue-a.startValue)*a.easing.Apply(p)
}

// Update advances the state machine and returns the current value. When
// elapsed time reaches the duration the animation transitions to Completed
// and complete listeners fire exactly once; otherwise update listeners
// receive the freshly computed value.
func (a *Animation) Update() float64 {
	if a.state == StateRunning && a.elapsed() >= a.duration {
		a.state = StateCompleted
		a.notifyComplete()
		return a.endValue
	}
	value := a.Value()
	if a.state == StateRunning {
		a.notifyUpdate(value)
	}
	return value
}

// AddUpdateListener registers fn to receive the computed value on every
// Update while the animation is running. Returns an unsubscribe function.
func (a *Animation) AddUpdateListener(fn func(value float64)) func() {
	return a.addUpdate(fn)
}

// AddCompleteListener registers fn to fire once when the animation
// completes. Returns an unsubscribe function.
func (a *Animation) AddCompleteListener(fn func()) func() {
	return a.addComplete(fn)
}
