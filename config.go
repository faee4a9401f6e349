package pinchdeck

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of the gesture pipeline, layout, and reveal
// sequence. Zero values are not meaningful; start from DefaultConfig.
type Config struct {
	// Pointer filter blend factor applied once per frame.
	SmoothingFactor float64 `yaml:"smoothing_factor" env:"PINCHDECK_SMOOTHING_FACTOR"`

	// Pinch hysteresis thresholds in normalized camera space. Enter below
	// PinchStart, leave above PinchEnd.
	PinchStart float64 `yaml:"pinch_start" env:"PINCHDECK_PINCH_START"`
	PinchEnd   float64 `yaml:"pinch_end" env:"PINCHDECK_PINCH_END"`

	// Mirror flips the hand x coordinate so the cursor follows a selfie view.
	Mirror bool `yaml:"mirror" env:"PINCHDECK_MIRROR"`

	// Edge pan: zone width as a fraction of the viewport width, and the
	// velocity curve (Base + Gain*f)*f in pixels per second.
	EdgeZone    float64 `yaml:"edge_zone" env:"PINCHDECK_EDGE_ZONE"`
	EdgePanBase float64 `yaml:"edge_pan_base" env:"PINCHDECK_EDGE_PAN_BASE"`
	EdgePanGain float64 `yaml:"edge_pan_gain" env:"PINCHDECK_EDGE_PAN_GAIN"`

	// Hover distance cap = clamp(viewportW*HoverCapFraction, HoverCapMin, HoverCapMax).
	HoverCapFraction float64 `yaml:"hover_cap_fraction" env:"PINCHDECK_HOVER_CAP_FRACTION"`
	HoverCapMin      float64 `yaml:"hover_cap_min" env:"PINCHDECK_HOVER_CAP_MIN"`
	HoverCapMax      float64 `yaml:"hover_cap_max" env:"PINCHDECK_HOVER_CAP_MAX"`

	// Reveal phase durations.
	FlipDelay    time.Duration `yaml:"flip_delay" env:"PINCHDECK_FLIP_DELAY"`
	ReadDuration time.Duration `yaml:"read_duration" env:"PINCHDECK_READ_DURATION"`
	MoveDuration time.Duration `yaml:"move_duration" env:"PINCHDECK_MOVE_DURATION"`
	SummaryDelay time.Duration `yaml:"summary_delay" env:"PINCHDECK_SUMMARY_DELAY"`

	// MaxFrameDelta caps the dt used for scroll integration.
	MaxFrameDelta time.Duration `yaml:"max_frame_delta" env:"PINCHDECK_MAX_FRAME_DELTA"`

	// PickCap is the number of picks per session.
	PickCap int `yaml:"pick_cap" env:"PINCHDECK_PICK_CAP"`

	Layout LayoutConfig `yaml:"layout" envPrefix:"PINCHDECK_LAYOUT_"`
}

// LayoutConfig shapes the fanned, arched row of cards. Fractions are relative
// to the stage size.
type LayoutConfig struct {
	CardW        float64 `yaml:"card_w" env:"CARD_W"`
	CardAspect   float64 `yaml:"card_aspect" env:"CARD_ASPECT"`
	Gap          float64 `yaml:"gap" env:"GAP"`
	CenterX      float64 `yaml:"center_x" env:"CENTER_X"`
	BaseY        float64 `yaml:"base_y" env:"BASE_Y"`
	CurveSpan    float64 `yaml:"curve_span" env:"CURVE_SPAN"`
	CurveMax     float64 `yaml:"curve_max" env:"CURVE_MAX"`
	Arch         float64 `yaml:"arch" env:"ARCH"`
	RotationPerT float64 `yaml:"rotation_per_t" env:"ROTATION_PER_T"` // degrees
	Tilt         float64 `yaml:"tilt" env:"TILT"`                     // degrees
	DepthBase    float64 `yaml:"depth_base" env:"DEPTH_BASE"`
	DepthFalloff float64 `yaml:"depth_falloff" env:"DEPTH_FALLOFF"`
	ZBase        int     `yaml:"z_base" env:"Z_BASE"`
	ZFalloff     float64 `yaml:"z_falloff" env:"Z_FALLOFF"`
	HoverDepth   float64 `yaml:"hover_depth" env:"HOVER_DEPTH"`
	HoverZ       int     `yaml:"hover_z" env:"HOVER_Z"`
	HoverScale   float64 `yaml:"hover_scale" env:"HOVER_SCALE"`
}

// DefaultConfig returns the stock tuning. The pinch thresholds straddle 0.06
// so the two-threshold hysteresis actually has a band to work with.
func DefaultConfig() Config {
	return Config{
		SmoothingFactor:  0.35,
		PinchStart:       0.05,
		PinchEnd:         0.07,
		Mirror:           true,
		EdgeZone:         0.14,
		EdgePanBase:      220,
		EdgePanGain:      520,
		HoverCapFraction: 0.22,
		HoverCapMin:      90,
		HoverCapMax:      160,
		FlipDelay:        140 * time.Millisecond,
		ReadDuration:     3000 * time.Millisecond,
		MoveDuration:     620 * time.Millisecond,
		SummaryDelay:     240 * time.Millisecond,
		MaxFrameDelta:    50 * time.Millisecond,
		PickCap:          3,
		Layout: LayoutConfig{
			CardW:        120,
			CardAspect:   1.55,
			Gap:          90,
			CenterX:      0.54,
			BaseY:        0.38,
			CurveSpan:    0.48,
			CurveMax:     1.8,
			Arch:         0.22,
			RotationPerT: 14,
			Tilt:         -18,
			DepthBase:    20,
			DepthFalloff: 12,
			ZBase:        1000,
			ZFalloff:     200,
			HoverDepth:   58,
			HoverZ:       300,
			HoverScale:   1.18,
		},
	}
}

// LoadConfig builds a Config from defaults, an optional YAML file, and
// PINCHDECK_* environment variables, in that order, then validates it.
// An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.SmoothingFactor <= 0 || c.SmoothingFactor > 1:
		return fmt.Errorf("%w: smoothing_factor %v not in (0,1]", ErrInvalidConfig, c.SmoothingFactor)
	case c.PinchStart <= 0 || c.PinchEnd <= 0:
		return fmt.Errorf("%w: pinch thresholds must be positive", ErrInvalidConfig)
	case c.PinchStart > c.PinchEnd:
		return fmt.Errorf("%w: pinch_start %v above pinch_end %v", ErrInvalidConfig, c.PinchStart, c.PinchEnd)
	case c.EdgeZone < 0 || c.EdgeZone >= 0.5:
		return fmt.Errorf("%w: edge_zone %v not in [0,0.5)", ErrInvalidConfig, c.EdgeZone)
	case c.HoverCapMin > c.HoverCapMax:
		return fmt.Errorf("%w: hover_cap_min %v above hover_cap_max %v", ErrInvalidConfig, c.HoverCapMin, c.HoverCapMax)
	case c.FlipDelay < 0 || c.ReadDuration < 0 || c.MoveDuration < 0 || c.SummaryDelay < 0:
		return fmt.Errorf("%w: reveal durations must not be negative", ErrInvalidConfig)
	case c.MaxFrameDelta <= 0:
		return fmt.Errorf("%w: max_frame_delta must be positive", ErrInvalidConfig)
	case c.PickCap < 1:
		return fmt.Errorf("%w: pick_cap %d below 1", ErrInvalidConfig, c.PickCap)
	case c.Layout.CardW <= 0 || c.Layout.CardAspect <= 0 || c.Layout.Gap <= 0:
		return fmt.Errorf("%w: card metrics must be positive", ErrInvalidConfig)
	case c.Layout.CurveSpan <= 0:
		return fmt.Errorf("%w: layout curve_span must be positive", ErrInvalidConfig)
	}
	return nil
}

// Warnings lists settings that are valid but probably unintended.
func (c Config) Warnings() []string {
	var out []string
	if c.PinchStart == c.PinchEnd {
		out = append(out, fmt.Sprintf("pinch_start == pinch_end (%v): hysteresis degenerates to a single threshold", c.PinchStart))
	}
	if c.EdgeZone == 0 {
		out = append(out, "edge_zone is 0: edge panning disabled")
	}
	return out
}
