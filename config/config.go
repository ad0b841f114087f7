package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FixtureConfig describes the LED array being driven.
type FixtureConfig struct {
	Rows       int     `json:"rows"`
	Cols       int     `json:"cols"`
	Panels     int     `json:"panels,omitempty"` // depth, for stacked panels
	Pitch      float64 `json:"pitch"`            // LED spacing, pattern units
	Serpentine bool    `json:"serpentine,omitempty"`
}

// AxisConfig positions a pattern axis in fixture space.
type AxisConfig struct {
	Origin    [3]float64 `json:"origin"`
	Direction [3]float64 `json:"direction"`
}

// HelixConfig holds the double-helix geometry.
type HelixConfig struct {
	Axis     AxisConfig `json:"axis"`
	Pitch    float64    `json:"pitch"`
	Radius   float64    `json:"radius"`
	Girth    float64    `json:"girth"`
	PeriodMs int        `json:"periodMs"` // ms per full turn, 0 = static
}

// WaveConfig holds the axial sweep settings.
type WaveConfig struct {
	Axis       AxisConfig `json:"axis"`
	Wavelength float64    `json:"wavelength"`
	HueOffset  float64    `json:"hueOffset,omitempty"`
	PeriodMs   int        `json:"periodMs"`
	Enabled    bool       `json:"enabled"`
}

// ControllerConfig defines a saved MIDI controller
type ControllerConfig struct {
	PortName    string `json:"portName"`
	AutoConnect bool   `json:"autoConnect"`
}

// UIConfig stores UI preferences
type UIConfig struct {
	PalettePath string  `json:"palettePath,omitempty"`
	HueDrift    float64 `json:"hueDrift,omitempty"` // degrees per second
	Autoplay    bool    `json:"autoplay,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	Fixture     FixtureConfig      `json:"fixture"`
	Helix       HelixConfig        `json:"helix"`
	Wave        WaveConfig         `json:"wave"`
	Controllers []ControllerConfig `json:"controllers,omitempty"`
	UI          UIConfig           `json:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults: an 8x8 panel
// with a double helix coiling across it, the wave sweep off.
func DefaultConfig() *Config {
	return &Config{
		Fixture: FixtureConfig{
			Rows:   8,
			Cols:   8,
			Panels: 1,
			Pitch:  20,
		},
		Helix: HelixConfig{
			Axis: AxisConfig{
				Origin:    [3]float64{0, 70, 0},
				Direction: [3]float64{1, 0, 0},
			},
			Pitch:    140,
			Radius:   40,
			Girth:    30,
			PeriodMs: 10000,
		},
		Wave: WaveConfig{
			Axis: AxisConfig{
				Origin:    [3]float64{0, 70, 0},
				Direction: [3]float64{1, 0, 0},
			},
			Wavelength: 160,
			PeriodMs:   4000,
			Enabled:    false,
		},
		Controllers: []ControllerConfig{
			{
				PortName:    "Launchpad X LPX MIDI",
				AutoConnect: true,
			},
		},
		UI: UIConfig{
			HueDrift: 6,
			Autoplay: true,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-lumen"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a config from an explicit path, or returns defaults
// if the file does not exist.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to an explicit path, creating directories
// as needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// FindController finds a controller config by port name
func (c *Config) FindController(portName string) *ControllerConfig {
	for i := range c.Controllers {
		if c.Controllers[i].PortName == portName {
			return &c.Controllers[i]
		}
	}
	return nil
}

// AddController adds or updates a controller config
func (c *Config) AddController(ctrl ControllerConfig) {
	for i := range c.Controllers {
		if c.Controllers[i].PortName == ctrl.PortName {
			c.Controllers[i] = ctrl
			return
		}
	}
	c.Controllers = append(c.Controllers, ctrl)
}
