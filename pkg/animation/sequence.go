package animation

// AnimationSequence runs borrowed animations one at a time, starting each
// member as the previous one completes.
//
// The sequence holds non-owning handles: members are created and owned by
// the caller and are never freed or reset by the sequence. Starting a
// sequence starts only the first member; each Update drives only the
// member at the cursor.
type AnimationSequence struct {
	members []*Animation
	cursor  int
	state   AnimationState
}

// NewAnimationSequence creates a sequence over the given members.
func NewAnimationSequence(members ...*Animation) *AnimationSequence {
	return &AnimationSequence{members: members}
}

// Add appends an animation to the sequence.
func (q *AnimationSequence) Add(a *Animation) {
	q.members = append(q.members, a)
}

// Start begins the sequence at its first member. An empty sequence
// completes immediately.
func (q *AnimationSequence) Start() {
	q.cursor = 0
	if len(q.members) == 0 {
		q.state = StateCompleted
		return
	}
	q.state = StateRunning
	q.members[0].Start()
}

// Update drives the member at the cursor. When that member completes, the
// cursor advances and the next member starts; exhausting the list
// completes the sequence.
func (q *AnimationSequence) Update() {
	if q.state != StateRunning {
		return
	}
	current := q.members[q.cursor]
	current.Update()
	if current.State() != StateCompleted {
		return
	}
	q.cursor++
	if q.cursor >= len(q.members) {
		q.state = StateCompleted
		return
	}
	q.members[q.cursor].Start()
}

// Pause freezes the sequence and the member at the cursor.
func (q *AnimationSequence) Pause() {
	if q.state != StateRunning {
		return
	}
	q.state = StatePaused
	q.members[q.cursor].Pause()
}

// Unpause resumes the sequence and the member at the cursor.
func (q *AnimationSequence) Unpause() {
	if q.state != StatePaused {
		return
	}
	q.state = StateRunning
	q.members[q.cursor].Unpause()
}

// Cancel stops the sequence and cancels every member.
func (q *AnimationSequence) Cancel() {
	q.state = StateCanceled
	for _, m := range q.members {
		m.Cancel()
	}
}

// State returns the current lifecycle state.
func (q *AnimationSequence) State() AnimationState { return q.state }

// Cursor returns the index of the member currently being driven.
func (q *AnimationSequence) Cursor() int { return q.cursor }

// Progress returns completed members plus the current member's progress,
// normalized by the member count.
func (q *AnimationSequence) Progress() float64 {
	if len(q.members) == 0 {
		return 1
	}
	if q.state == StateCompleted {
		return 1
	}
	done := float64(q.cursor)
	if q.cursor < len(q.members) {
		done += q.members[q.cursor].Progress()
	}
	return clampUnit(done / float64(len(q.members)))
}

// AnimationGroup runs borrowed animations concurrently and completes only
// once every member has completed.
//
// Start, Pause, and Unpause broadcast to every member. Members that finish
// early are still updated each tick, which is harmless: updating a
// completed animation neither changes its value nor re-fires listeners.
type AnimationGroup struct {
	members []*Animation
	state   AnimationState
}

// NewAnimationGroup creates a group over the given members.
func NewAnimationGroup(members ...*Animation) *AnimationGroup {
	return &AnimationGroup{members: members}
}

// Add appends an animation to the group.
func (g *AnimationGroup) Add(a *Animation) {
	g.members = append(g.members, a)
}

// Start starts every member. An empty group completes immediately.
func (g *AnimationGroup) Start() {
	if len(g.members) == 0 {
		g.state = StateCompleted
		return
	}
	g.state = StateRunning
	for _, m := range g.members {
		m.Start()
	}
}

// Update drives every member and completes the group once all members
// report completion.
func (g *AnimationGroup) Update() {
	if g.state != StateRunning {
		return
	}
	allDone := true
	for _, m := range g.members {
		m.Update()
		if m.State() != StateCompleted {
			allDone = false
		}
	}
	if allDone {
		g.state = StateCompleted
	}
}

// Pause freezes the group and every member.
func (g *AnimationGroup) Pause() {
	if g.state != StateRunning {
		return
	}
	g.state = StatePaused
	for _, m := range g.members {
		m.Pause()
	}
}

// Unpause resumes the group and every member.
func (g *AnimationGroup) Unpause() {
	if g.state != StatePaused {
		return
	}
	g.state = StateRunning
	for _, m := range g.members {
		m.Unpause()
	}
}

// Cancel stops the group and cancels every member.
func (g *AnimationGroup) Cancel() {
	g.state = StateCanceled
	for _, m := range g.members {
		m.Cancel()
	}
}

// State returns the current lifecycle state.
func (g *AnimationGroup) State() AnimationState { return g.state }
