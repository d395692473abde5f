package textreveal

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/home-lang/craft/pkg/animation"
)

// Default pacing used when a Config leaves fields zero.
const (
	defaultDelay         = 50 * time.Millisecond
	defaultCursorChar    = "|"
	defaultBlinkInterval = 500 * time.Millisecond
)

// Config configures the pacing and presentation of a [TextAnimation].
//
// The zero value is usable: units reveal every 50 ms with no jitter, no
// initial delay, no looping, and no cursor blinking. Configs are plain
// values; copy them freely.
//
// Configs can also be declared in YAML using millisecond-suffixed keys:
//
//	delay_ms: 60
//	easing: easeOutCubic
//	randomize_timing: true
//	timing_variation_ms: 25
//	cursor_char: "█"
//	cursor_blink: true
//	cursor_blink_ms: 530
//	initial_delay_ms: 200
//	loop: true
//	loop_delay_ms: 1500
type Config struct {
	// Delay is the base inter-unit delay.
	Delay time.Duration
	// Easing shapes the reveal cadence across the whole text. EaseLinear
	// keeps the cadence constant.
	Easing animation.Easing
	// RandomizeTiming adds uniform jitter of up to ±TimingVariation to
	// each inter-unit delay.
	RandomizeTiming bool
	// TimingVariation is the jitter amplitude. Ignored unless
	// RandomizeTiming is set.
	TimingVariation time.Duration
	// CursorChar is the trailing indicator glyph shown while running.
	CursorChar string
	// CursorBlink toggles the cursor on and off while running.
	CursorBlink bool
	// CursorBlinkInterval is the blink half-period.
	CursorBlinkInterval time.Duration
	// InitialDelay postpones the first reveal after Start.
	InitialDelay time.Duration
	// Loop restarts the reveal after the final unit instead of completing.
	Loop bool
	// LoopDelay is the initial delay applied to each looped cycle.
	LoopDelay time.Duration
	// Seed seeds the jitter source. Zero seeds from the clock.
	Seed uint64
}

// applyDefaults fills zero-valued pacing fields.
func (c *Config) applyDefaults() {
	if c.Delay == 0 {
		c.Delay = defaultDelay
	}
	if c.CursorChar == "" {
		c.CursorChar = defaultCursorChar
	}
	if c.CursorBlinkInterval == 0 {
		c.CursorBlinkInterval = defaultBlinkInterval
	}
}

// configYAML mirrors Config with the wire-format keys.
type configYAML struct {
	DelayMs           int    `yaml:"delay_ms"`
	Easing            string `yaml:"easing"`
	RandomizeTiming   bool   `yaml:"randomize_timing"`
	TimingVariationMs int    `yaml:"timing_variation_ms"`
	CursorChar        string `yaml:"cursor_char"`
	CursorBlink       bool   `yaml:"cursor_blink"`
	CursorBlinkMs     int    `yaml:"cursor_blink_ms"`
	InitialDelayMs    int    `yaml:"initial_delay_ms"`
	Loop              bool   `yaml:"loop"`
	LoopDelayMs       int    `yaml:"loop_delay_ms"`
	Seed              uint64 `yaml:"seed"`
}

// UnmarshalYAML decodes the millisecond-suffixed wire format.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw configYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}

	easing := animation.EaseLinear
	if raw.Easing != "" {
		var err error
		easing, err = animation.ParseEasing(raw.Easing)
		if err != nil {
			return err
		}
	}

	*c = Config{
		Delay:               time.Duration(raw.DelayMs) * time.Millisecond,
		Easing:              easing,
		RandomizeTiming:     raw.RandomizeTiming,
		TimingVariation:     time.Duration(raw.TimingVariationMs) * time.Millisecond,
		CursorChar:          raw.CursorChar,
		CursorBlink:         raw.CursorBlink,
		CursorBlinkInterval: time.Duration(raw.CursorBlinkMs) * time.Millisecond,
		InitialDelay:        time.Duration(raw.InitialDelayMs) * time.Millisecond,
		Loop:                raw.Loop,
		LoopDelay:           time.Duration(raw.LoopDelayMs) * time.Millisecond,
		Seed:                raw.Seed,
	}
	return nil
}

// LoadPresets reads a YAML file of named configs and merges it over the
// built-in presets. A missing file is not an error: the built-in presets
// are returned unchanged, mirroring how optional project config files are
// treated elsewhere in Craft.
func LoadPresets(path string) (map[string]Config, error) {
	presets := Presets()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return presets, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var loaded map[string]Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for name, cfg := range loaded {
		presets[name] = cfg
	}
	return presets, nil
}
