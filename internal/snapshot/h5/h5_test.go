//go:build hdf5

package h5

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/sphkit/internal/snapshot"
)

func TestWriteOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap_0000.hdf5")
	in := &snapshot.Snapshot{
		Time:           0.25,
		BoxSize:        []float64{1, 1, 1},
		Positions:      [][]float64{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6}},
		Velocities:     [][]float64{{1, 0, 0}, {0, 1, 0}},
		InternalEnergy: []float64{1.5, 2.5},
		Masses:         []float64{0.01, 0.01},
		Densities:      []float64{1.0, 1.1},
	}

	if err := Write(path, in); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	out, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if out.Time != 0.25 {
		t.Errorf("expected time 0.25, got %f", out.Time)
	}
	if len(out.BoxSize) != 3 {
		t.Errorf("expected 3 box components, got %d", len(out.BoxSize))
	}
	if out.Count() != 2 || out.Dim() != 3 {
		t.Errorf("expected 2 particles in 3d, got %d in %dd", out.Count(), out.Dim())
	}
	if out.Positions[1][2] != 0.6 {
		t.Errorf("expected z=0.6, got %f", out.Positions[1][2])
	}
	if !out.HasDensity() {
		t.Error("expected densities")
	}
	if out.HasSmoothingLength() {
		t.Error("smoothing lengths were not written")
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.hdf5"))
	var le *snapshot.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError, got %v", err)
	}
}

func TestOpenNotHDF5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.hdf5")
	if err := os.WriteFile(path, []byte("not hdf5"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("expected error for malformed file")
	}
}
