package animation

import "fmt"

// AnimationState represents the lifecycle state of an animation.
//
// Every animation follows this state machine:
//
//	           Start()                elapsed >= duration
//	Idle ──────────────────► Running ─────────────────────► Completed
//	  ▲                      │    ▲
//	  │ Reset()      Pause() │    │ Unpause()
//	  └──────────────────────▼────┘
//	                       Paused
//
// Cancel() moves any state to Canceled; Reset() moves any state back to
// Idle. Completed and Canceled are terminal until Start() or Reset().
type AnimationState int

const (
	// StateIdle means the animation has not started yet.
	StateIdle AnimationState = iota
	// StateRunning means the animation is advancing with the clock.
	StateRunning
	// StatePaused means the animation is frozen at its current progress.
	StatePaused
	// StateCompleted means the animation reached its end value.
	StateCompleted
	// StateCanceled means the animation was stopped before completing.
	StateCanceled
)

// String returns a human-readable representation of the animation state.
func (s AnimationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	case StateCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("AnimationState(%d)", int(s))
	}
}

// IsTerminal reports whether the state is Completed or Canceled.
func (s AnimationState) IsTerminal() bool {
	return s == StateCompleted || s == StateCanceled
}
