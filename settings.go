package pixeldust

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "settings"
	settingsProperty = "particletext"
)

// Settings are the user choices remembered between runs.
type Settings struct {
	Text    string   `yaml:"text"`
	Palette []string `yaml:"palette"`
	Density int      `yaml:"density"`
}

// SettingsStore loads and saves Settings through gdata. A store without a
// manager keeps settings in memory only.
type SettingsStore struct {
	manager  *gdata.Manager
	settings Settings
}

// OpenSettings opens the platform data directory for appName. On failure the
// returned store is still usable in memory-only mode.
func OpenSettings(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewSettingsStore(nil), fmt.Errorf("pixeldust: open settings: %w", err)
	}
	return NewSettingsStore(m), nil
}

// NewSettingsStore wraps manager, which may be nil, and loads any saved
// settings. Load failures are logged and leave empty settings.
func NewSettingsStore(manager *gdata.Manager) *SettingsStore {
	st := &SettingsStore{manager: manager}
	if err := st.Load(); err != nil {
		log.Printf("pixeldust: failed to load settings: %v (using defaults)", err)
	}
	return st
}

// Load reads saved settings. Missing data is not an error.
func (st *SettingsStore) Load() error {
	st.settings = Settings{}
	if st.manager == nil {
		return nil
	}
	if !st.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := st.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	st.settings = s
	return nil
}

// Save writes the current settings. Without a manager it does nothing.
func (st *SettingsStore) Save() error {
	if st.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(st.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := st.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Settings returns the current settings.
func (st *SettingsStore) Settings() Settings {
	return st.settings
}

// Capture copies the remembered fields out of cfg.
func (st *SettingsStore) Capture(cfg Config) {
	st.settings = Settings{
		Text:    cfg.Text,
		Palette: append([]string(nil), cfg.Palette...),
		Density: cfg.Density,
	}
}

// Apply overlays the remembered fields that are set onto cfg.
func (st *SettingsStore) Apply(cfg *Config) {
	if st.settings.Text != "" {
		cfg.Text = st.settings.Text
	}
	if len(st.settings.Palette) > 0 {
		cfg.Palette = append([]string(nil), st.settings.Palette...)
	}
	if st.settings.Density > 0 {
		cfg.Density = st.settings.Density
	}
}
