// Package config loads the optional TOML tuning file. Every key is optional
// and falls back to the compiled-in parameter defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"

	"github.com/lixenwraith/antigravity/core"
	"github.com/lixenwraith/antigravity/field"
	"github.com/lixenwraith/antigravity/parameter"
	"github.com/lixenwraith/antigravity/physics"
	"github.com/lixenwraith/antigravity/typewriter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime tuning set
type Config struct {
	Physics    physics.Constants `toml:"physics"`
	Field      Field             `toml:"field"`
	Typewriter Typewriter        `toml:"typewriter"`
	Terminal   Terminal          `toml:"terminal"`
}

// Field sizes the population
type Field struct {
	Mobile              int     `toml:"mobile"`
	Desktop             int     `toml:"desktop"`
	MobileMaxWidth      float64 `toml:"mobile_max_width"`
	ConnectionsOnMobile bool    `toml:"connections_on_mobile"`
}

// Typewriter configures the word cycler, delays in milliseconds
type Typewriter struct {
	Words    []string `toml:"words"`
	TypeMS   int      `toml:"type_ms"`
	DeleteMS int      `toml:"delete_ms"`
	WaitMS   int      `toml:"wait_ms"`
	PauseMS  int      `toml:"pause_ms"`
}

// Terminal maps cells to logical px
type Terminal struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

// Default returns the compiled-in configuration
func Default() Config {
	return Config{
		Physics: physics.DefaultConstants(),
		Field: Field{
			Mobile:              parameter.ParticleCountMobile,
			Desktop:             parameter.ParticleCountDesktop,
			MobileMaxWidth:      parameter.MobileMaxWidth,
			ConnectionsOnMobile: parameter.ConnectionsOnMobile,
		},
		Typewriter: Typewriter{
			Words:    append([]string(nil), parameter.TypewriterWords...),
			TypeMS:   int(parameter.TypewriterTypeDelay / time.Millisecond),
			DeleteMS: int(parameter.TypewriterDeleteDelay / time.Millisecond),
			WaitMS:   int(parameter.TypewriterWait / time.Millisecond),
			PauseMS:  int(parameter.TypewriterWordPause / time.Millisecond),
		},
		Terminal: Terminal{
			CellWidth:  parameter.CellWidthPx,
			CellHeight: parameter.CellHeightPx,
		},
	}
}

// Load reads path over the defaults and validates the result
// An empty path returns the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	var errs error
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		errs = multierr.Append(errs, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", ")))
	}
	errs = multierr.Append(errs, cfg.Validate())
	if errs != nil {
		return Config{}, errs
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults without validation
func Decode(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate reports every violation at once
func (c Config) Validate() error {
	var errs error
	if err := c.Physics.Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	if c.Field.Mobile <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: field.mobile %d must be positive", ErrInvalid, c.Field.Mobile))
	}
	if c.Field.Desktop <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: field.desktop %d must be positive", ErrInvalid, c.Field.Desktop))
	}
	if c.Field.MobileMaxWidth < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: field.mobile_max_width %v must not be negative", ErrInvalid, c.Field.MobileMaxWidth))
	}
	for i, w := range c.Typewriter.Words {
		if strings.TrimSpace(w) == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: typewriter.words[%d] is blank", ErrInvalid, i))
		}
	}
	for name, ms := range map[string]int{
		"type_ms":   c.Typewriter.TypeMS,
		"delete_ms": c.Typewriter.DeleteMS,
		"wait_ms":   c.Typewriter.WaitMS,
		"pause_ms":  c.Typewriter.PauseMS,
	} {
		if ms <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("%w: typewriter.%s %d must be positive", ErrInvalid, name, ms))
		}
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: terminal cell %vx%v must be positive", ErrInvalid, c.Terminal.CellWidth, c.Terminal.CellHeight))
	}
	return errs
}

// Counts returns the field population
func (c Config) Counts() field.Counts {
	return field.Counts{Mobile: c.Field.Mobile, Desktop: c.Field.Desktop}
}

// Classifier returns the device classifier for the configured cutoff
func (c Config) Classifier() core.DeviceClassifier {
	return core.ThresholdClassifier(c.Field.MobileMaxWidth)
}

// Timing returns the typewriter pacing
func (c Config) Timing() typewriter.Timing {
	return typewriter.Timing{
		Type:   time.Duration(c.Typewriter.TypeMS) * time.Millisecond,
		Delete: time.Duration(c.Typewriter.DeleteMS) * time.Millisecond,
		Wait:   time.Duration(c.Typewriter.WaitMS) * time.Millisecond,
		Pause:  time.Duration(c.Typewriter.PauseMS) * time.Millisecond,
	}
}
