package animation

import "time"

// Keyframe is an immutable point on a keyframe track: a normalized time in
// [0, 1], the value the track passes through at that time, and the easing
// applied to the segment that starts here.
type Keyframe struct {
	Time   float64
	Value  float64
	Easing Easing
}

// KeyframeAnimation interpolates piecewise across an ordered list of
// keyframes over a total duration.
//
// Keyframes are borrowed as supplied and must be sorted ascending by Time;
// the engine does not reorder them. Within a segment the segment-local
// progress is shaped by the leading keyframe's easing. Past the final
// keyframe's time the animation completes and reports the final value.
type KeyframeAnimation struct {
	timeline
	callbacks

	frames []Keyframe
}

// NewKeyframeAnimation creates a keyframe animation over the given frames,
// which must be sorted ascending by Time.
func NewKeyframeAnimation(frames []Keyframe, duration time.Duration) *KeyframeAnimation {
	return &KeyframeAnimation{
		timeline: timeline{duration: duration},
		frames:   frames,
	}
}

// Start transitions the animation to Running and captures the clock.
func (k *KeyframeAnimation) Start() { k.start() }

// Pause freezes the animation at its current progress.
func (k *KeyframeAnimation) Pause() { k.pause() }

// Unpause resumes a paused animation, excluding the paused interval from
// elapsed time.
func (k *KeyframeAnimation) Unpause() { k.unpause() }

// Cancel stops the animation without completing it.
func (k *KeyframeAnimation) Cancel() { k.cancel() }

// Reset returns the animation to Idle.
func (k *KeyframeAnimation) Reset() { k.reset() }

// State returns the current lifecycle state.
func (k *KeyframeAnimation) State() AnimationState { return k.state }

// Progress returns elapsed time normalized by duration, clamped to [0, 1].
func (k *KeyframeAnimation) Progress() float64 { return k.fraction() }

// Value returns the interpolated value at the current progress without
// mutating state. An animation with no keyframes reports zero.
func (k *KeyframeAnimation) Value() float64 {
	return k.valueAt(k.fraction())
}

// valueAt locates the bracketing keyframe pair by linear scan and
// interpolates within the segment.
func (k *KeyframeAnimation) valueAt(p float64) float64 {
	if len(k.frames) == 0 {
		return 0
	}
	first := k.frames[0]
	last := k.frames[len(k.frames)-1]
	if p >= last.Time {
		return last.Value
	}
	if p <= first.Time {
		return first.Value
	}
	for i := 0; i < len(k.frames)-1; i++ {
		prev, next := k.frames[i], k.frames[i+1]
		if p >= next.Time {
			continue
		}
		width := next.Time - prev.Time
		if width <= 0 {
			// Zero-width segment: treat segment progress as zero.
			return prev.Value
		}
		seg := (p - prev.Time) / width
		eased := prev.Easing.Apply(seg)
		return prev.Value + (next.Value-prev.Value)*eased
	}
	return last.Value
}

// Update advances the state machine and returns the current value. Once
// progress passes the final keyframe's time the animation transitions to
// Completed, fires complete listeners once, and returns the final value
// unconditionally.
func (k *KeyframeAnimation) Update() float64 {
	if k.state == StateRunning {
		lastTime := 1.0
		if len(k.frames) > 0 {
			lastTime = k.frames[len(k.frames)-1].Time
		}
		if k.fraction() >= lastTime || k.elapsed() >= k.duration {
			k.state = StateCompleted
			k.notifyComplete()
			return k.Value()
		}
	}
	value := k.Value()
	if k.state == StateRunning {
		k.notifyUpdate(value)
	}
	return value
}

// AddUpdateListener registers fn to receive the computed value on every
// Update while running. Returns an unsubscribe function.
func (k *KeyframeAnimation) AddUpdateListener(fn func(value float64)) func() {
	return k.addUpdate(fn)
}

// AddCompleteListener registers fn to fire once on completion. Returns an
// unsubscribe function.
func (k *KeyframeAnimation) AddCompleteListener(fn func()) func() {
	return k.addComplete(fn)
}
