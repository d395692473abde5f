// Package textreveal implements progressive text reveal: typewriter-style
// animation that exposes a string one character, word, or sentence at a
// time.
//
// # Model
//
// A [TextAnimation] is a poll-driven state machine shaped like the tween
// animations in [github.com/home-lang/craft/pkg/animation]: the host calls
// Start once and Update on every tick, and the engine advances its reveal
// cursors based on elapsed time from the shared animation clock. Word and
// sentence boundaries are parsed once at construction into boundary
// tables; reveal cursors only ever move forward.
//
// Reveal pacing comes from a [Config]: a base inter-unit delay, optional
// uniform jitter, an optional easing curve shaping the cadence, an initial
// delay, looping, and a blinking trailing cursor. [Typewriter] and the
// other preset factories return ready-made configs.
package textreveal

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	"github.com/home-lang/craft/pkg/animation"
)

// RevealMode selects the granularity at which text is revealed.
type RevealMode int

const (
	// RevealCharacter exposes the text one character at a time.
	RevealCharacter RevealMode = iota
	// RevealWord exposes the text one whitespace-delimited word at a time.
	RevealWord
	// RevealSentence exposes the text one sentence at a time, splitting
	// after '.', '!', and '?'.
	RevealSentence
)

// String returns a human-readable representation of the reveal mode.
func (m RevealMode) String() string {
	switch m {
	case RevealCharacter:
		return "character"
	case RevealWord:
		return "word"
	case RevealSentence:
		return "sentence"
	default:
		return fmt.Sprintf("RevealMode(%d)", int(m))
	}
}

// TextAnimation reveals a string incrementally at a configured cadence.
//
// The source text is immutable after construction. The three reveal
// cursors are monotonically non-decreasing within a cycle; looping resets
// them for the next cycle without leaving the Running state.
//
// The optional callbacks fire synchronously from Update on the caller's
// goroutine, and must not re-enter Update.
type TextAnimation struct {
	// OnCharReveal fires when a character is revealed, with the character
	// and its index.
	OnCharReveal func(char string, index int)
	// OnWordReveal fires when a word is revealed, with the word and its
	// index.
	OnWordReveal func(word string, index int)
	// OnSentenceReveal fires when a sentence is revealed, with the
	// sentence (including trailing whitespace) and its index.
	OnSentenceReveal func(sentence string, index int)
	// OnComplete fires once when the final unit has been revealed, or on
	// SkipToEnd. It does not fire between looping cycles.
	OnComplete func()

	text []rune
	mode RevealMode
	cfg  Config

	wordStarts   []int
	wordEnds     []int
	sentenceEnds []int

	state      animation.AnimationState
	startTime  time.Time // blink reference, captured by Start
	cycleStart time.Time // initial-delay reference, reset by looping
	pausedAt   time.Time
	lastUpdate time.Time

	charIndex     int
	wordIndex     int
	sentenceIndex int

	delayAccum   time.Duration
	nextDelay    time.Duration
	initialDelay time.Duration

	rng *rand.Rand
}

// New creates a text animation over text with the given reveal mode and
// configuration. Boundary tables are derived here, in a single scan.
func New(text string, mode RevealMode, cfg Config) *TextAnimation {
	cfg.applyDefaults()

	t := &TextAnimation{
		text: []rune(text),
		mode: mode,
		cfg:  cfg,
	}
	t.wordStarts, t.wordEnds = wordBoundaries(t.text)
	t.sentenceEnds = sentenceBoundaries(t.text)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(animation.Now().UnixNano())
	}
	t.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return t
}

// wordBoundaries returns the start and end rune offsets of each run of
// non-whitespace characters.
func wordBoundaries(text []rune) (starts, ends []int) {
	inWord := false
	for i, r := range text {
		if unicode.IsSpace(r) {
			if inWord {
				ends = append(ends, i)
				inWord = false
			}
			continue
		}
		if !inWord {
			starts = append(starts, i)
			inWord = true
		}
	}
	if inWord {
		ends = append(ends, len(text))
	}
	return starts, ends
}

// sentenceBoundaries returns the rune offset just past each sentence: a
// run of '.', '!', or '?' terminators extended to swallow trailing
// whitespace. Text without any terminator is a single sentence.
func sentenceBoundaries(text []rune) []int {
	var ends []int
	i := 0
	for i < len(text) {
		if !isSentenceTerminator(text[i]) {
			i++
			continue
		}
		for i < len(text) && isSentenceTerminator(text[i]) {
			i++
		}
		for i < len(text) && unicode.IsSpace(text[i]) {
			i++
		}
		ends = append(ends, i)
	}
	if len(text) > 0 && (len(ends) == 0 || ends[len(ends)-1] < len(text)) {
		ends = append(ends, len(text))
	}
	return ends
}

func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Start begins the reveal from the beginning of the text.
func (t *TextAnimation) Start() {
	now := animation.Now()
	t.state = animation.StateRunning
	t.startTime = now
	t.cycleStart = now
	t.lastUpdate = now
	t.pausedAt = time.Time{}
	t.charIndex = 0
	t.wordIndex = 0
	t.sentenceIndex = 0
	t.delayAccum = 0
	t.nextDelay = 0
	t.initialDelay = t.cfg.InitialDelay
}

// Pause freezes the reveal. No-op unless Running.
func (t *TextAnimation) Pause() {
	if t.state != animation.StateRunning {
		return
	}
	t.state = animation.StatePaused
	t.pausedAt = animation.Now()
}

// Unpause resumes a paused reveal. The paused interval is excluded from
// all time references, so no units burst out on resume.
func (t *TextAnimation) Unpause() {
	if t.state != animation.StatePaused {
		return
	}
	paused := animation.Now().Sub(t.pausedAt)
	t.startTime = t.startTime.Add(paused)
	t.cycleStart = t.cycleStart.Add(paused)
	t.lastUpdate = t.lastUpdate.Add(paused)
	t.pausedAt = time.Time{}
	t.state = animation.StateRunning
}

// Cancel stops the reveal without completing it.
func (t *TextAnimation) Cancel() {
	t.state = animation.StateCanceled
}

// Reset returns the animation to Idle with nothing revealed.
func (t *TextAnimation) Reset() {
	t.state = animation.StateIdle
	t.startTime = time.Time{}
	t.cycleStart = time.Time{}
	t.pausedAt = time.Time{}
	t.lastUpdate = time.Time{}
	t.charIndex = 0
	t.wordIndex = 0
	t.sentenceIndex = 0
	t.delayAccum = 0
	t.nextDelay = 0
}

// SkipToEnd reveals the entire text immediately, forces Completed, and
// fires OnComplete.
func (t *TextAnimation) SkipToEnd() {
	t.charIndex = len(t.text)
	t.wordIndex = len(t.wordEnds)
	t.sentenceIndex = len(t.sentenceEnds)
	already := t.state == animation.StateCompleted
	t.state = animation.StateCompleted
	if !already && t.OnComplete != nil {
		t.OnComplete()
	}
}

// Update advances the reveal based on elapsed time. At most one unit is
// revealed per call.
func (t *TextAnimation) Update() {
	if t.state != animation.StateRunning {
		return
	}
	now := animation.Now()

	if t.unitTotal() == 0 {
		// Nothing to reveal: vacuously complete, loop or not.
		t.finishCycle(now)
		return
	}

	if now.Sub(t.cycleStart) < t.initialDelay {
		t.lastUpdate = now
		return
	}
	// Time spent inside the initial-delay window never counts toward the
	// first inter-unit delay.
	if boundary := t.cycleStart.Add(t.initialDelay); t.lastUpdate.Before(boundary) {
		t.lastUpdate = boundary
	}

	t.delayAccum += now.Sub(t.lastUpdate)
	t.lastUpdate = now

	if t.nextDelay <= 0 {
		t.nextDelay = t.resolveDelay()
	}
	if t.nextDelay > 0 && t.delayAccum < t.nextDelay {
		return
	}

	t.delayAccum = 0
	t.nextDelay = 0
	t.advanceUnit()

	if t.unitIndex() >= t.unitTotal() {
		t.finishCycle(now)
	}
}

// finishCycle either restarts the reveal for the next looping cycle or
// transitions to Completed.
func (t *TextAnimation) finishCycle(now time.Time) {
	if t.cfg.Loop && t.unitTotal() > 0 {
		t.charIndex = 0
		t.wordIndex = 0
		t.sentenceIndex = 0
		t.delayAccum = 0
		t.nextDelay = 0
		t.cycleStart = now
		t.initialDelay = t.cfg.LoopDelay
		return
	}
	t.state = animation.StateCompleted
	if t.OnComplete != nil {
		t.OnComplete()
	}
}

// resolveDelay computes the delay before the next unit: the base delay,
// shaped by the configured easing cadence, plus optional uniform jitter.
func (t *TextAnimation) resolveDelay() time.Duration {
	d := float64(t.cfg.Delay)

	// The easing curve shapes the cadence: the delay for unit i is scaled
	// by n*(e((i+1)/n) - e(i/n)), which is exactly 1 for EaseLinear.
	if t.cfg.Easing != animation.EaseLinear {
		n := float64(t.unitTotal())
		i := float64(t.unitIndex())
		e := t.cfg.Easing
		d *= n * (e.Apply((i+1)/n) - e.Apply(i/n))
	}

	if t.cfg.RandomizeTiming && t.cfg.TimingVariation > 0 {
		jitter := (t.rng.Float64()*2 - 1) * float64(t.cfg.TimingVariation)
		d += jitter
	}
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}

// advanceUnit reveals exactly one unit and fires its callback.
func (t *TextAnimation) advanceUnit() {
	switch t.mode {
	case RevealCharacter:
		t.charIndex++
		// Drag the word cursor across any boundary the character cursor
		// has now passed; the word index only moves forward.
		for t.wordIndex < len(t.wordEnds) && t.charIndex >= t.wordEnds[t.wordIndex] {
			t.wordIndex++
		}
		if t.OnCharReveal != nil {
			t.OnCharReveal(string(t.text[t.charIndex-1]), t.charIndex-1)
		}

	case RevealWord:
		index := t.wordIndex
		start := t.wordStarts[index]
		end := t.wordEnds[index]
		t.wordIndex++
		t.charIndex = end
		if t.OnWordReveal != nil {
			t.OnWordReveal(string(t.text[start:end]), index)
		}

	case RevealSentence:
		index := t.sentenceIndex
		start := 0
		if index > 0 {
			start = t.sentenceEnds[index-1]
		}
		end := t.sentenceEnds[index]
		t.sentenceIndex++
		t.charIndex = end
		if t.OnSentenceReveal != nil {
			t.OnSentenceReveal(string(t.text[start:end]), index)
		}
	}
}

// unitIndex returns the cursor for the active reveal mode.
func (t *TextAnimation) unitIndex() int {
	switch t.mode {
	case RevealWord:
		return t.wordIndex
	case RevealSentence:
		return t.sentenceIndex
	default:
		return t.charIndex
	}
}

// unitTotal returns the unit count for the active reveal mode.
func (t *TextAnimation) unitTotal() int {
	switch t.mode {
	case RevealWord:
		return len(t.wordEnds)
	case RevealSentence:
		return len(t.sentenceEnds)
	default:
		return len(t.text)
	}
}

// Progress returns revealed units normalized by the unit total. Empty
// text reports 1.0: there is nothing left to reveal.
func (t *TextAnimation) Progress() float64 {
	total := t.unitTotal()
	if total == 0 {
		return 1
	}
	return float64(t.unitIndex()) / float64(total)
}

// RevealedText returns the portion of the text revealed so far.
func (t *TextAnimation) RevealedText() string {
	return string(t.text[:t.charIndex])
}

// RevealedTextWithCursor returns the revealed text with the configured
// cursor glyph appended while the animation is running. With blinking
// enabled the glyph toggles in stable half-period blocks derived from
// elapsed time since Start.
func (t *TextAnimation) RevealedTextWithCursor() string {
	revealed := t.RevealedText()
	if t.state != animation.StateRunning {
		return revealed
	}
	if !t.cfg.CursorBlink {
		return revealed + t.cfg.CursorChar
	}
	phase := animation.Now().Sub(t.startTime) / t.cfg.CursorBlinkInterval
	if phase%2 == 0 {
		return revealed + t.cfg.CursorChar
	}
	return revealed
}

// Text returns the full source text.
func (t *TextAnimation) Text() string { return string(t.text) }

// Mode returns the reveal mode.
func (t *TextAnimation) Mode() RevealMode { return t.mode }

// State returns the current lifecycle state.
func (t *TextAnimation) State() animation.AnimationState { return t.state }

// CharCount returns the number of characters in the text.
func (t *TextAnimation) CharCount() int { return len(t.text) }

// WordCount returns the number of whitespace-delimited words.
func (t *TextAnimation) WordCount() int { return len(t.wordEnds) }

// SentenceCount returns the number of sentences.
func (t *TextAnimation) SentenceCount() int { return len(t.sentenceEnds) }

// CharIndex returns the character cursor.
func (t *TextAnimation) CharIndex() int { return t.charIndex }

// WordIndex returns the word cursor.
func (t *TextAnimation) WordIndex() int { return t.wordIndex }

// SentenceIndex returns the sentence cursor.
func (t *TextAnimation) SentenceIndex() int { return t.sentenceIndex }

// Words returns the words of the text, in order.
func (t *TextAnimation) Words() []string {
	words := make([]string, len(t.wordEnds))
	for i := range t.wordEnds {
		words[i] = string(t.text[t.wordStarts[i]:t.wordEnds[i]])
	}
	return words
}

// Sentences returns the sentences of the text, in order, with trailing
// whitespace trimmed.
func (t *TextAnimation) Sentences() []string {
	sentences := make([]string, len(t.sentenceEnds))
	start := 0
	for i, end := range t.sentenceEnds {
		sentences[i] = strings.TrimRightFunc(string(t.text[start:end]), unicode.IsSpace)
		start = end
	}
	return sentences
}
