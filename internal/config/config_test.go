package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.OutputDir != "../sample_images" {
		t.Errorf("expected ../sample_images, got %s", cfg.OutputDir)
	}
	if cfg.Preview.DPI != 150 {
		t.Errorf("expected dpi 150, got %d", cfg.Preview.DPI)
	}
	if len(cfg.Dirs) != 4 {
		t.Errorf("expected 4 dirs, got %d", len(cfg.Dirs))
	}
}

func TestDefaultConfigDoesNotShareDirs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dirs[0] = "changed"
	if DefaultDirs[0] != "../ics" {
		t.Error("DefaultDirs mutated through config")
	}
}

func TestSize(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name string
		w, h int
	}{
		{"spiral", 100, 100},
		{"collision", 120, 80},
		{"face", 80, 80},
		{"logo", 90, 90},
		{"unknown", 0, 0},
	}

	for _, tt := range tests {
		w, h := cfg.Size(tt.name)
		if w != tt.w || h != tt.h {
			t.Errorf("%s: expected %dx%d, got %dx%d", tt.name, tt.w, tt.h, w, h)
		}
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphkit.yaml")
	data := "output_dir: out\nspiral:\n  width: 64\n  arms: 3\npreview:\n  dpi: 72\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("expected out, got %s", cfg.OutputDir)
	}
	if cfg.Spiral.Width != 64 || cfg.Spiral.Height != 100 {
		t.Errorf("expected 64x100, got %dx%d", cfg.Spiral.Width, cfg.Spiral.Height)
	}
	if cfg.Spiral.Arms != 3 {
		t.Errorf("expected 3 arms, got %d", cfg.Spiral.Arms)
	}
	if cfg.Preview.DPI != 72 {
		t.Errorf("expected dpi 72, got %d", cfg.Preview.DPI)
	}
	if cfg.Logo.Width != 90 {
		t.Errorf("untouched fields should keep defaults, got logo width %d", cfg.Logo.Width)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphkit.toml")
	data := "output_dir = \"toml_out\"\n\n[face]\nwidth = 40\nheight = 40\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.OutputDir != "toml_out" {
		t.Errorf("expected toml_out, got %s", cfg.OutputDir)
	}
	if cfg.Face.Width != 40 {
		t.Errorf("expected face width 40, got %d", cfg.Face.Width)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"cfg.yaml", "cfg.toml"} {
		path := filepath.Join(t.TempDir(), name)
		cfg := DefaultConfig()
		cfg.Collision.Width = 33

		if err := Save(path, cfg); err != nil {
			t.Fatalf("%s: save failed: %v", name, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("%s: load failed: %v", name, err)
		}
		if got.Collision.Width != 33 {
			t.Errorf("%s: expected 33, got %d", name, got.Collision.Width)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetScale(t *testing.T) {
	s, ok := GetScale("kelvin_helmholtz")
	if !ok {
		t.Fatal("expected preset")
	}
	if s.VelocityShear != 2.0 {
		t.Errorf("expected shear 2.0, got %f", s.VelocityShear)
	}

	s.BoxSize[0] = 99
	again, _ := GetScale("kelvin_helmholtz")
	if again.BoxSize[0] != 4.0 {
		t.Error("preset mutated through returned copy")
	}

	if _, ok := GetScale("nonexistent"); ok {
		t.Error("expected miss for nonexistent scale")
	}
}

func TestListScales(t *testing.T) {
	names := ListScales()
	want := []string{"image", "kelvin_helmholtz", "sedov"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
		}
	}
}
