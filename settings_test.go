package pixeldust

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// withTempHome points the platform data directory at a temp dir.
func withTempHome(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })
}

func TestSettingsStoreNilManager(t *testing.T) {
	st := NewSettingsStore(nil)
	cfg := DefaultConfig()
	cfg.Text = "memory"
	st.Capture(cfg)
	if err := st.Save(); err != nil {
		t.Errorf("Save without manager: %v", err)
	}
	if st.Settings().Text != "memory" {
		t.Errorf("Text = %q, want memory", st.Settings().Text)
	}
}

func TestSettingsStoreApply(t *testing.T) {
	st := NewSettingsStore(nil)
	cfg := DefaultConfig()
	st.Apply(&cfg)
	if cfg.Text != DefaultConfig().Text {
		t.Error("empty settings should not change the config")
	}

	st.settings = Settings{Text: "saved", Palette: []string{"#000000"}, Density: 7}
	st.Apply(&cfg)
	if cfg.Text != "saved" || len(cfg.Palette) != 1 || cfg.Density != 7 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestSettingsStoreSaveLoad(t *testing.T) {
	withTempHome(t)

	m, err := gdata.Open(gdata.Config{AppName: "pixeldust_test"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	st := NewSettingsStore(m)
	if st.Settings().Text != "" {
		t.Errorf("fresh store Text = %q, want empty", st.Settings().Text)
	}
	cfg := DefaultConfig()
	cfg.Text = "persisted"
	cfg.Density = 3
	st.Capture(cfg)
	if err := st.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened := NewSettingsStore(m)
	got := reopened.Settings()
	if got.Text != "persisted" || got.Density != 3 || len(got.Palette) != len(cfg.Palette) {
		t.Errorf("reloaded settings = %+v", got)
	}
}

func TestOpenSettings(t *testing.T) {
	withTempHome(t)
	st, err := OpenSettings("pixeldust_open_test")
	if err != nil {
		t.Fatalf("OpenSettings: %v", err)
	}
	if st == nil {
		t.Fatal("OpenSettings returned nil")
	}
}
