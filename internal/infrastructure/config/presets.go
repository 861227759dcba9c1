package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// PresetsConfig holds named generation presets (read/write).
type PresetsConfig struct {
	Presets map[string]Preset `yaml:"presets,omitempty"`
}

// Preset is a saved set of generation options.
type Preset struct {
	PresetOptions `yaml:",inline"`
	Description   string `yaml:"description,omitempty"`
}

// PresetOptions are the generation settings a preset overrides. A nil field
// is left to the configured default; a set field applies even when zero.
type PresetOptions struct {
	People     *int    `yaml:"people,omitempty"`
	Length     *int    `yaml:"length,omitempty"`
	Seating    *string `yaml:"seating,omitempty"`
	Relations  *string `yaml:"relations,omitempty"`
	Difficulty *string `yaml:"difficulty,omitempty"`
	Dense      *bool   `yaml:"dense,omitempty"`
}

// OptionsFrom returns options that set every field to gen's value.
func OptionsFrom(gen GenerateConfig) PresetOptions {
	return PresetOptions{
		People:     &gen.People,
		Length:     &gen.Length,
		Seating:    &gen.Seating,
		Relations:  &gen.Relations,
		Difficulty: &gen.Difficulty,
		Dense:      &gen.Dense,
	}
}

// LoadPresets loads presets from the .kinpuzzle directory.
func LoadPresets(basePath string) (*PresetsConfig, error) {
	data, err := os.ReadFile(PresetsFilePath(basePath))
	if os.IsNotExist(err) {
		// Return empty config if file doesn't exist
		return &PresetsConfig{
			Presets: make(map[string]Preset),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading presets file: %w", err)
	}

	var cfg PresetsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing presets file: %w", err)
	}

	if cfg.Presets == nil {
		cfg.Presets = make(map[string]Preset)
	}

	return &cfg, nil
}

// Save writes the presets to the presets file.
func (p *PresetsConfig) Save(basePath string) error {
	if err := os.MkdirAll(ConfigDir(basePath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling presets: %w", err)
	}

	if err := os.WriteFile(PresetsFilePath(basePath), data, 0644); err != nil {
		return fmt.Errorf("writing presets file: %w", err)
	}

	return nil
}

// Add stores a preset under its sanitized name and returns that name.
func (p *PresetsConfig) Add(name string, preset Preset) (string, error) {
	key := SanitizePresetName(name)
	if key == "" {
		return "", fmt.Errorf("invalid preset name %q", name)
	}
	if p.Presets == nil {
		p.Presets = make(map[string]Preset)
	}
	p.Presets[key] = preset
	return key, nil
}

// Remove deletes a preset. It reports whether the preset existed.
func (p *PresetsConfig) Remove(name string) bool {
	key := SanitizePresetName(name)
	if _, ok := p.Presets[key]; !ok {
		return false
	}
	delete(p.Presets, key)
	return true
}

// Get returns the preset with the given name.
func (p *PresetsConfig) Get(name string) (*Preset, error) {
	if len(p.Presets) == 0 {
		return nil, errors.New("no presets configured")
	}

	preset, ok := p.Presets[SanitizePresetName(name)]
	if !ok {
		return nil, fmt.Errorf("preset %q not found (available: %s)", name, strings.Join(p.Names(), ", "))
	}

	return &preset, nil
}

// Names returns the preset names in sorted order.
func (p *PresetsConfig) Names() []string {
	names := make([]string, 0, len(p.Presets))
	for name := range p.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply overlays the preset's set fields onto base.
func (p Preset) Apply(base GenerateConfig) GenerateConfig {
	if p.People != nil {
		base.People = *p.People
	}
	if p.Length != nil {
		base.Length = *p.Length
	}
	if p.Seating != nil {
		base.Seating = *p.Seating
	}
	if p.Relations != nil {
		base.Relations = *p.Relations
	}
	if p.Difficulty != nil {
		base.Difficulty = *p.Difficulty
	}
	if p.Dense != nil {
		base.Dense = *p.Dense
	}
	return base
}
