package pixeldust

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
	if cfg.Density != 4 || cfg.Force != 20 {
		t.Errorf("Density = %d, Force = %v, want 4, 20", cfg.Density, cfg.Force)
	}
	if cfg.Radius != (Range{Min: 1, Max: 5}) {
		t.Errorf("Radius = %v, want [1, 5)", cfg.Radius)
	}
	assertNear(t, "FormingIncrement", cfg.FormingIncrement, 0.015)
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
text: hello
density: 2
palette: ["#112233", "#445566"]
burst:
  count: 5
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Text != "hello" || cfg.Density != 2 || len(cfg.Palette) != 2 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Burst.Count != 5 {
		t.Errorf("Burst.Count = %d, want 5", cfg.Burst.Count)
	}
	// Untouched fields keep their defaults.
	if cfg.Force != 20 || !cfg.Forming || cfg.Burst.Speed != DefaultConfig().Burst.Speed {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name, yaml, want string
	}{
		{"density", "density: 0", "density"},
		{"radius", "radius: {min: 5, max: 1}", "radius"},
		{"increment", "formingIncrement: 2", "formingIncrement"},
		{"palette", "palette: []", "palette"},
		{"stop", `palette: ["#nothex"]`, "gradient stop"},
		{"background", "background: blue", "bad color"},
		{"burst", "burst: {count: -1}", "burst count"},
		{"syntax", "density: [", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixeldust.yaml")
	if err := os.WriteFile(path, []byte("text: file\nseed: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Text != "file" || cfg.Seed != 9 {
		t.Errorf("cfg = %+v", cfg)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfigMarshalLoadsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Text = "again"
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if got.Text != "again" || got.Burst != cfg.Burst {
		t.Errorf("got %+v", got)
	}
}
