package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/sphkit/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 2)

	svg := CanvasToSVG(c, 10, "#ffff4c")
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
	if !strings.Contains(svg, `width="40" height="40"`) {
		t.Error("unexpected dimensions")
	}
	if !strings.Contains(svg, `cx="35.0" cy="25.0"`) {
		t.Error("dot at (3, 2) misplaced")
	}

	if CanvasToSVG(nil, 1, "#fff") != "" {
		t.Error("expected empty output for nil canvas")
	}
}

func TestProfileToSVG(t *testing.T) {
	if ProfileToSVG([]float64{1}, 100, 50, "#0cf") != "" {
		t.Error("expected empty output for a single value")
	}

	svg := ProfileToSVG([]float64{0, 1, 0.5}, 100, 50, "#0cf")
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an svg document")
	}
	if strings.Count(svg, " L") != 2 {
		t.Errorf("expected 2 line segments")
	}

	path := filepath.Join(t.TempDir(), "profile.svg")
	if err := WriteFile(path, svg); err != nil {
		t.Fatal(err)
	}
	if data, err := os.ReadFile(path); err != nil || string(data) != svg {
		t.Error("file content mismatch")
	}
}
