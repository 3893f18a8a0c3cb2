// Package config loads and saves wheel settings as TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"wheelview/internal/content"
	"wheelview/internal/engine"
	"wheelview/internal/geometry"
	"wheelview/internal/projection"
	"wheelview/internal/scroller"
)

// Config contains every tunable of a wheel and its host.
// Use Default() to get sensible values, then override as needed.
type Config struct {
	Wheel        WheelConfig        `toml:"wheel"`
	Curve        CurveConfig        `toml:"curve"`
	Divider      DividerConfig      `toml:"divider"`
	SelectedRect SelectedRectConfig `toml:"selected_rect"`
	Sound        SoundConfig        `toml:"sound"`
	Physics      PhysicsConfig      `toml:"physics"`
	Log          LogConfig          `toml:"log"`
	UI           UIConfig           `toml:"ui"`
}

type WheelConfig struct {
	TextSize              float64 `toml:"text_size"`
	LineSpacing           float64 `toml:"line_spacing"`
	VisibleItems          int     `toml:"visible_items"`
	Cyclic                bool    `toml:"cyclic"`
	TextAlign             string  `toml:"text_align"`
	TextBoundaryMargin    float64 `toml:"text_boundary_margin"`
	AutoFitTextSize       bool    `toml:"auto_fit_text_size"`
	IntegerNeedFormat     bool    `toml:"integer_need_format"`
	IntegerFormat         string  `toml:"integer_format"`
	NormalColor           string  `toml:"normal_color"`
	SelectedColor         string  `toml:"selected_color"`
	SelectedPosition      int     `toml:"selected_position"`
	ResetSelectedPosition bool    `toml:"reset_selected_position"`
}

type CurveConfig struct {
	Enabled      bool    `toml:"enabled"`
	ArcDirection string  `toml:"arc_direction"`
	ArcFactor    float64 `toml:"arc_factor"`
	RefractRatio float64 `toml:"refract_ratio"`
}

type DividerConfig struct {
	Show        bool    `toml:"show"`
	Color       string  `toml:"color"`
	Height      float64 `toml:"height"`
	Type        string  `toml:"type"`
	WrapPadding float64 `toml:"wrap_padding"`
	Cap         string  `toml:"cap"`
}

type SelectedRectConfig struct {
	Show        bool    `toml:"show"`
	Color       string  `toml:"color"`
	LeftRadius  float64 `toml:"left_radius"`
	RightRadius float64 `toml:"right_radius"`
}

type SoundConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
	File    string  `toml:"file"`
}

type PhysicsConfig struct {
	FPS              int     `toml:"fps"`
	Deceleration     float64 `toml:"deceleration"`
	MinFlingVelocity float64 `toml:"min_fling_velocity"`
	MaxFlingVelocity float64 `toml:"max_fling_velocity"`
	ScrollDurationMS int     `toml:"scroll_duration_ms"`
	ClickConfirmMS   int     `toml:"click_confirm_ms"`
}

type LogConfig struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`
	Dir     string `toml:"dir"`
}

// UIConfig sizes the terminal host. RowPixels is the virtual pixel height
// of one terminal row.
type UIConfig struct {
	RowPixels int  `toml:"row_pixels"`
	Mouse     bool `toml:"mouse"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Wheel: WheelConfig{
			TextSize:           16,
			LineSpacing:        0,
			VisibleItems:       5,
			TextAlign:          "center",
			TextBoundaryMargin: 2,
			IntegerFormat:      content.DefaultIntegerFormat,
			NormalColor:        "#6C6C6C",
			SelectedColor:      "#FFFFFF",
		},
		Curve: CurveConfig{
			Enabled:      true,
			ArcDirection: "center",
			ArcFactor:    projection.DefaultArcFactor,
			RefractRatio: projection.DefaultRefractRatio,
		},
		Divider: DividerConfig{
			Show:        true,
			Color:       "#7D56F4",
			Height:      1,
			Type:        "fill",
			WrapPadding: 2,
			Cap:         "round",
		},
		SelectedRect: SelectedRectConfig{
			Color: "#3C3C3C",
		},
		Sound: SoundConfig{
			Volume: 0.3,
		},
		Physics: PhysicsConfig{
			FPS:              engine.DefaultFPS,
			Deceleration:     scroller.DefaultDeceleration,
			MinFlingVelocity: engine.DefaultMinFlingVelocity,
			MaxFlingVelocity: engine.DefaultMaxFlingVelocity,
			ScrollDurationMS: int(engine.DefaultScrollDuration / time.Millisecond),
			ClickConfirmMS:   int(engine.DefaultClickConfirm / time.Millisecond),
		},
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			RowPixels: 16,
			Mouse:     true,
		},
	}
}

// WithCyclic returns a copy of the config with cyclic scrolling on or off.
func (c Config) WithCyclic(cyclic bool) Config {
	c.Wheel.Cyclic = cyclic
	return c
}

// WithCurved returns a copy of the config with the 3D effect on or off.
func (c Config) WithCurved(curved bool) Config {
	c.Curve.Enabled = curved
	return c
}

// WithVisibleItems returns a copy of the config showing n items.
func (c Config) WithVisibleItems(n int) Config {
	c.Wheel.VisibleItems = n
	return c
}

// WithSound returns a copy of the config with the item-changed cue set.
func (c Config) WithSound(enabled bool, volume float64) Config {
	c.Sound.Enabled = enabled
	c.Sound.Volume = volume
	return c
}

// WithSelectedPosition returns a copy of the config starting at position.
func (c Config) WithSelectedPosition(position int) Config {
	c.Wheel.SelectedPosition = position
	return c
}

// Normalize clamps numeric fields into range. Out-of-range values are never
// an error.
func (c Config) Normalize() Config {
	d := Default()
	c.Wheel.VisibleItems = geometry.NormalizeVisibleItems(c.Wheel.VisibleItems)
	if c.Wheel.TextSize <= 0 {
		c.Wheel.TextSize = d.Wheel.TextSize
	}
	if c.Wheel.LineSpacing < 0 {
		c.Wheel.LineSpacing = 0
	}
	if c.Wheel.TextBoundaryMargin < 0 {
		c.Wheel.TextBoundaryMargin = 0
	}
	if c.Wheel.IntegerFormat == "" {
		c.Wheel.IntegerFormat = content.DefaultIntegerFormat
	}
	c.Curve.ArcFactor = projection.ClampArcFactor(c.Curve.ArcFactor)
	c.Curve.RefractRatio = projection.ClampRefractRatio(c.Curve.RefractRatio)
	c.Sound.Volume = min(max(c.Sound.Volume, 0), 1)
	if c.Divider.Height < 0 {
		c.Divider.Height = 0
	}
	c.SelectedRect.LeftRadius = max(c.SelectedRect.LeftRadius, 0)
	c.SelectedRect.RightRadius = max(c.SelectedRect.RightRadius, 0)
	if c.UI.RowPixels <= 0 {
		c.UI.RowPixels = d.UI.RowPixels
	}
	return c
}

// Validate checks the enum-valued fields and physics, returning a
// *ConfigError for the first problem.
func (c Config) Validate() error {
	if _, err := geometry.ParseAlign(c.Wheel.TextAlign); err != nil {
		return &ConfigError{Field: "wheel.text_align", Message: err.Error()}
	}
	if _, err := projection.ParseArcDirection(c.Curve.ArcDirection); err != nil {
		return &ConfigError{Field: "curve.arc_direction", Message: err.Error()}
	}
	if _, err := projection.ParseDividerType(c.Divider.Type); err != nil {
		return &ConfigError{Field: "divider.type", Message: err.Error()}
	}
	if _, err := projection.ParseCap(c.Divider.Cap); err != nil {
		return &ConfigError{Field: "divider.cap", Message: err.Error()}
	}
	if c.Physics.FPS <= 0 {
		return &ConfigError{Field: "physics.fps", Message: "must be positive"}
	}
	if c.Physics.MaxFlingVelocity > 0 && c.Physics.MinFlingVelocity > c.Physics.MaxFlingVelocity {
		return &ConfigError{Field: "physics.min_fling_velocity", Message: "must not exceed max_fling_velocity"}
	}
	return nil
}

// Style converts the styling sections. Call Validate first; unparsable
// names fall back to their defaults.
func (c Config) Style() projection.Style {
	align, _ := geometry.ParseAlign(c.Wheel.TextAlign)
	dir, _ := projection.ParseArcDirection(c.Curve.ArcDirection)
	dtype, _ := projection.ParseDividerType(c.Divider.Type)
	dcap, _ := projection.ParseCap(c.Divider.Cap)
	return projection.Style{
		TextColor:      c.Wheel.NormalColor,
		SelectedColor:  c.Wheel.SelectedColor,
		Align:          align,
		BoundaryMargin: c.Wheel.TextBoundaryMargin,
		AutoFit:        c.Wheel.AutoFitTextSize,
		Format: content.Format{
			IntegerEnabled: c.Wheel.IntegerNeedFormat,
			Integer:        c.Wheel.IntegerFormat,
		},
		Curve: projection.Curve{
			Enabled:      c.Curve.Enabled,
			Direction:    dir,
			Factor:       projection.ClampArcFactor(c.Curve.ArcFactor),
			RefractRatio: projection.ClampRefractRatio(c.Curve.RefractRatio),
		},
		Divider: projection.Divider{
			Show:        c.Divider.Show,
			Color:       c.Divider.Color,
			Height:      c.Divider.Height,
			Type:        dtype,
			WrapPadding: c.Divider.WrapPadding,
			Cap:         dcap,
		},
		SelectedRect: projection.SelectedRect{
			Show:        c.SelectedRect.Show,
			Color:       c.SelectedRect.Color,
			LeftRadius:  c.SelectedRect.LeftRadius,
			RightRadius: c.SelectedRect.RightRadius,
		},
	}
}

// EngineOptions converts the physics section.
func (c Config) EngineOptions() engine.Options {
	return engine.Options{
		Cyclic:           c.Wheel.Cyclic,
		Selected:         c.Wheel.SelectedPosition,
		FPS:              c.Physics.FPS,
		Deceleration:     c.Physics.Deceleration,
		MinFlingVelocity: c.Physics.MinFlingVelocity,
		MaxFlingVelocity: c.Physics.MaxFlingVelocity,
		ScrollDuration:   time.Duration(c.Physics.ScrollDurationMS) * time.Millisecond,
		ClickConfirm:     time.Duration(c.Physics.ClickConfirmMS) * time.Millisecond,
	}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

// Dir is $XDG_CONFIG_HOME/wheelview, falling back to ~/.config/wheelview.
func Dir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "wheelview"), nil
}

// Path is the default config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the default config file. A missing file yields the defaults.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults, normalizes and validates it. A
// missing file yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes c to the default config file.
func (c Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes c to path, creating parent directories.
func (c Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config %s: %w", path, err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
