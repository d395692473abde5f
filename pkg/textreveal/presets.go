package textreveal

import (
	"time"

	"github.com/home-lang/craft/pkg/animation"
)

// Preset factories produce ready-made configs for common reveal styles.
// They are pure data; pass them to [New] as-is or tweak fields first.

// Typewriter mimics a human typist: per-character cadence with jitter and
// a blinking bar cursor.
func Typewriter() Config {
	return Config{
		Delay:               60 * time.Millisecond,
		RandomizeTiming:     true,
		TimingVariation:     25 * time.Millisecond,
		CursorChar:          "|",
		CursorBlink:         true,
		CursorBlinkInterval: 500 * time.Millisecond,
	}
}

// Teleprompter reveals at a steady word-friendly pace with no cursor
// glyph, easing in so the first words linger slightly.
func Teleprompter() Config {
	return Config{
		Delay:      220 * time.Millisecond,
		Easing:     animation.EaseOutQuad,
		CursorChar: " ",
	}
}

// Subtitles paces sentence-sized units with a short lead-in delay.
func Subtitles() Config {
	return Config{
		Delay:        1800 * time.Millisecond,
		InitialDelay: 400 * time.Millisecond,
		CursorChar:   " ",
	}
}

// Terminal mimics console output: fast fixed cadence with a blinking
// block cursor.
func Terminal() Config {
	return Config{
		Delay:               15 * time.Millisecond,
		CursorChar:          "█",
		CursorBlink:         true,
		CursorBlinkInterval: 530 * time.Millisecond,
	}
}

// Presets returns the built-in preset configs by name.
func Presets() map[string]Config {
	return map[string]Config{
		"typewriter":   Typewriter(),
		"teleprompter": Teleprompter(),
		"subtitles":    Subtitles(),
		"terminal":     Terminal(),
	}
}
