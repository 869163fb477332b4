package pixeldust

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls a ParticleText. Load one from YAML with LoadConfig or start
// from DefaultConfig.
type Config struct {
	// Text is the string rendered as particles.
	Text string `yaml:"text"`
	// Palette is the gradient, as hex stops, the text is filled with.
	Palette []string `yaml:"palette"`
	// Density is the sampling grid step in pixels. Smaller is denser.
	Density int `yaml:"density"`
	// Force is the base pointer repulsion force; each particle gets
	// Force ± 15.
	Force float64 `yaml:"force"`
	// Radius is the particle radius range.
	Radius Range `yaml:"radius"`
	// Scatter starts particles at random canvas positions.
	Scatter bool `yaml:"scatter"`
	// Forming enables the entrance animation. It implies Scatter.
	Forming bool `yaml:"forming"`
	// FormingIncrement is the forming progress added per frame.
	FormingIncrement float64 `yaml:"formingIncrement"`
	// Seed makes particle construction reproducible. Zero picks a random
	// seed.
	Seed uint64 `yaml:"seed"`
	// Font is a registered font name. Empty uses DefaultFont.
	Font string `yaml:"font"`
	// Background is the hex canvas clear color. Empty is transparent.
	Background string `yaml:"background"`
	// Burst configures the press burst.
	Burst BurstConfig `yaml:"burst"`
	// Debug logs per-frame stats to stderr.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Text:             "pixeldust",
		Palette:          []string{"#ff6ec7", "#7873f5", "#4ade80"},
		Density:          4,
		Force:            20,
		Radius:           Range{Min: 1, Max: 5},
		Forming:          true,
		FormingIncrement: DefaultFormingIncrement,
		Font:             DefaultFont,
		Background:       "#0b0b12",
		Burst: BurstConfig{
			Count:    24,
			Speed:    Range{Min: 60, Max: 180},
			Lifetime: Range{Min: 0.4, Max: 0.9},
			Radius:   Range{Min: 2, Max: 5},
		},
	}
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pixeldust: failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("pixeldust: failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("pixeldust: invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Density < 1 {
		return fmt.Errorf("density %d must be at least 1", c.Density)
	}
	if c.Radius.Min < 0 || c.Radius.Min > c.Radius.Max {
		return fmt.Errorf("radius range invalid: min(%.1f) > max(%.1f) or negative", c.Radius.Min, c.Radius.Max)
	}
	if c.FormingIncrement <= 0 || c.FormingIncrement > 1 {
		return fmt.Errorf("formingIncrement %v must be in (0, 1]", c.FormingIncrement)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("palette is empty")
	}
	if _, err := ParseGradient(c.Palette); err != nil {
		return err
	}
	if c.Background != "" {
		if _, err := ParseColor(c.Background); err != nil {
			return err
		}
	}
	if c.Burst.Count < 0 {
		return fmt.Errorf("burst count %d is negative", c.Burst.Count)
	}
	if c.Burst.Lifetime.Min > c.Burst.Lifetime.Max || c.Burst.Speed.Min > c.Burst.Speed.Max {
		return fmt.Errorf("burst ranges invalid")
	}
	return nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("pixeldust: failed to marshal config: %w", err)
	}
	return data, nil
}
