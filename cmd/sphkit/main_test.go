package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/sphkit/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configFile = ""
	cfg = config.DefaultConfig()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEstimateCommand(t *testing.T) {
	out, err := run(t, "estimate", "30000")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	// gravity is on by default: 30000 ln 30000 / 1000 minutes
	if !strings.Contains(out, "Approximately 5.2 hours") {
		t.Errorf("unexpected output: %q", out)
	}

	out, err = run(t, "estimate", "30000", "--gravity=false")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if !strings.Contains(out, "Approximately 30 minutes") {
		t.Errorf("unexpected hydro-only output: %q", out)
	}

	if _, err := run(t, "estimate", "lots"); err == nil {
		t.Error("expected error for non-numeric count")
	}
}

func TestScalesCommand(t *testing.T) {
	out, err := run(t, "scales", "sedov")
	if err != nil {
		t.Fatalf("scales: %v", err)
	}
	if !strings.Contains(out, "explosion energy") || strings.Contains(out, "kelvin_helmholtz") {
		t.Errorf("unexpected output: %q", out)
	}

	if _, err := run(t, "scales", "nope"); err == nil {
		t.Error("expected error for unknown scale")
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "render", "face", "--out", dir, "--width", "40", "--height", "40")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "smiley_face.png")); err != nil {
		t.Errorf("image not written: %v", err)
	}
	if !strings.Contains(out, "40x40") {
		t.Errorf("size not reported: %q", out)
	}

	if _, err := run(t, "render", "square", "--out", dir); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestSetupUsesConfigDirs(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sphkit.yaml")
	content := "dirs:\n  - " + filepath.Join(dir, "ics") + "\n  - " + filepath.Join(dir, "videos") + "\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "--config", cfgPath, "setup")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if strings.Count(out, "Created directory:") != 2 {
		t.Errorf("expected two directories created: %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "videos")); err != nil {
		t.Error("videos dir missing")
	}
}

func TestHistogram(t *testing.T) {
	counts := histogram([]float64{0, 0.1, 0.5, 0.9, 1}, 2)
	if len(counts) != 2 {
		t.Fatalf("expected 2 bins, got %d", len(counts))
	}
	if counts[0] != 2 || counts[1] != 3 {
		t.Errorf("expected [2 3], got %v", counts)
	}

	flat := histogram([]float64{3, 3, 3}, 4)
	var total float64
	for _, c := range flat {
		total += c
	}
	if total != 3 {
		t.Errorf("expected all values counted, got %v", flat)
	}
}
