// Package config provides configuration loading and management for goaxis.
//
// The configuration carries the drawing defaults a host would otherwise
// supply: text height and annotation scale (from which bubble sizes are
// derived), default axis settings, plot output and watcher timing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/philipparndt/goaxis/pkg/axis"
	"gopkg.in/yaml.v3"
)

// bubbleSizeFactor relates the bubble diameter to the scaled text height
const bubbleSizeFactor = 1.42

// Config represents the complete goaxis configuration
type Config struct {
	Text  TextConfig  `yaml:"text"`
	Axis  AxisConfig  `yaml:"axis"`
	Plot  PlotConfig  `yaml:"plot"`
	Watch WatchConfig `yaml:"watch"`
}

// TextConfig configures annotation text
type TextConfig struct {
	// Height is the paper text height in mm (default: 3.5)
	Height float64 `yaml:"height"`
	// ScaleMultiplier scales paper sizes to model sizes (default: 100, i.e. 1:100)
	ScaleMultiplier float64 `yaml:"scale_multiplier"`
	// Font is a TrueType/OpenType file used for plotted numbers (optional)
	Font string `yaml:"font"`
}

// AxisConfig holds defaults for axis systems that omit a setting
type AxisConfig struct {
	// Length is the nominal axis length in mm (default: 3000)
	Length float64 `yaml:"length"`
	// Limit draws axes as stubs of this length when positive (default: 0)
	Limit float64 `yaml:"limit"`
	// Numbering is the numbering style, e.g. "1,2,3" or "roman"
	Numbering string `yaml:"numbering"`
	// StartNumber is the number of the first axis (default: 1)
	StartNumber int `yaml:"start_number"`
	// BubblePosition is Start, End, Both, None, Arrow left/right or Bar left/right
	BubblePosition string `yaml:"bubble_position"`
	// DrawStyle is Solid, Dashed, Dotted or Dashdot (default: Dashdot)
	DrawStyle string `yaml:"draw_style"`
	// LineWidth is the plotted line width in pixels (default: 1)
	LineWidth float64 `yaml:"line_width"`
}

// PlotConfig configures PNG output
type PlotConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Margin     int    `yaml:"margin"`
	Background string `yaml:"background"`
	LineColor  string `yaml:"line_color"`
}

// WatchConfig configures the file watcher
type WatchConfig struct {
	// Debounce delays regeneration until writes settle (default: 200ms)
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Text: TextConfig{
			Height:          3.5,
			ScaleMultiplier: 100,
		},
		Axis: AxisConfig{
			Length:         axis.DefaultLength,
			Limit:          0,
			Numbering:      axis.Numeric.String(),
			StartNumber:    1,
			BubblePosition: axis.BubbleStart.String(),
			DrawStyle:      axis.Dashdot.String(),
			LineWidth:      1,
		},
		Plot: PlotConfig{
			Width:      1600,
			Height:     1200,
			Margin:     40,
			Background: "#ffffff",
			LineColor:  "#c0392b",
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}

// FontSize returns the model-space text height in mm
func (c *Config) FontSize() float64 {
	return c.Text.Height * c.Text.ScaleMultiplier
}

// BubbleSize returns the model-space bubble diameter in mm
func (c *Config) BubbleSize() float64 {
	return c.FontSize() * bubbleSizeFactor
}

// Numbering returns the default numbering settings
func (c *Config) Numbering() (axis.Numbering, error) {
	style, err := axis.ParseStyle(c.Axis.Numbering)
	if err != nil {
		return axis.Numbering{}, err
	}
	return axis.Numbering{Style: style, StartNumber: c.Axis.StartNumber}, nil
}

// BubblePosition returns the default bubble position
func (c *Config) BubblePosition() (axis.BubblePosition, error) {
	return axis.ParseBubblePosition(c.Axis.BubblePosition)
}

// DrawStyle returns the default draw style
func (c *Config) DrawStyle() (axis.DrawStyle, error) {
	return axis.ParseDrawStyle(c.Axis.DrawStyle)
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Text.Height <= 0 {
		return fmt.Errorf("text.height must be positive")
	}
	if c.Text.ScaleMultiplier <= 0 {
		return fmt.Errorf("text.scale_multiplier must be positive")
	}
	if c.Axis.Length <= 0 {
		return fmt.Errorf("axis.length must be positive")
	}
	if c.Axis.Limit < 0 {
		return fmt.Errorf("axis.limit must not be negative")
	}
	if _, err := c.Numbering(); err != nil {
		return fmt.Errorf("axis.numbering: %w", err)
	}
	if _, err := c.BubblePosition(); err != nil {
		return fmt.Errorf("axis.bubble_position: %w", err)
	}
	if _, err := c.DrawStyle(); err != nil {
		return fmt.Errorf("axis.draw_style: %w", err)
	}
	if c.Axis.LineWidth <= 0 {
		return fmt.Errorf("axis.line_width must be positive")
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("plot size must be positive, got %dx%d", c.Plot.Width, c.Plot.Height)
	}
	if c.Plot.Margin < 0 || 2*c.Plot.Margin >= min(c.Plot.Width, c.Plot.Height) {
		return fmt.Errorf("plot.margin %d does not fit a %dx%d plot", c.Plot.Margin, c.Plot.Width, c.Plot.Height)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// ApplyFile overlays the YAML file at path onto c. Keys present in the
// file win, zero values included; keys it leaves out keep their current
// value.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file without defaults
func LoadFromFile(path string) (*Config, error) {
	var config Config
	if err := config.ApplyFile(path); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
