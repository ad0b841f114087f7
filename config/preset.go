package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Preset captures the pattern settings worth recalling between
// sessions, without fixture or controller wiring.
type Preset struct {
	Name     string      `json:"name"`
	Helix    HelixConfig `json:"helix"`
	Wave     WaveConfig  `json:"wave"`
	HueDrift float64     `json:"hueDrift"`
	SavedAt  time.Time   `json:"savedAt"`
}

// PresetsDir returns the presets directory path
func PresetsDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "presets"), nil
}

// SavePreset writes a preset as <name>.json under the presets dir.
func SavePreset(p *Preset) error {
	dir, err := PresetsDir()
	if err != nil {
		return err
	}
	if p.Name == "" {
		p.Name = time.Now().Format("2006-01-02_15-04-05")
	}
	p.SavedAt = time.Now()
	return SavePresetTo(filepath.Join(dir, p.Name+".json"), p)
}

// SavePresetTo writes a preset to an explicit path.
func SavePresetTo(path string, p *Preset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPreset reads a named preset from the presets dir.
func LoadPreset(name string) (*Preset, error) {
	dir, err := PresetsDir()
	if err != nil {
		return nil, err
	}
	return LoadPresetFrom(filepath.Join(dir, name+".json"))
}

// LoadPresetFrom reads a preset from an explicit path.
func LoadPresetFrom(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	return &p, nil
}

// ListPresets returns preset names, newest first.
func ListPresets() ([]string, error) {
	dir, err := PresetsDir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	type entry struct {
		name string
		mod  time.Time
	}
	var found []entry
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		found = append(found, entry{
			name: strings.TrimSuffix(e.Name(), ".json"),
			mod:  info.ModTime(),
		})
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].mod.After(found[j].mod)
	})

	names := make([]string, len(found))
	for i, e := range found {
		names[i] = e.name
	}
	return names, nil
}
