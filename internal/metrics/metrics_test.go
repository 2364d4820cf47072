package metrics

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/sphkit/internal/snapshot"
)

func gas(v float64) *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Time:           0.5,
		BoxSize:        []float64{1, 1},
		Positions:      [][]float64{{0.1, 0.2}, {0.3, 0.4}},
		Velocities:     [][]float64{{v, 0}, {0, 2 * v}},
		InternalEnergy: []float64{1.5, 2.5},
		Masses:         []float64{2, 1},
	}
}

func TestEnergies(t *testing.T) {
	s := gas(1)

	// 0.5*2*1 + 0.5*1*4
	if ke := Kinetic(s); math.Abs(ke-3) > 1e-12 {
		t.Errorf("expected kinetic 3, got %f", ke)
	}
	// 2*1.5 + 1*2.5
	if th := Thermal(s); math.Abs(th-5.5) > 1e-12 {
		t.Errorf("expected thermal 5.5, got %f", th)
	}
	if tot := Total(s); math.Abs(tot-8.5) > 1e-12 {
		t.Errorf("expected total 8.5, got %f", tot)
	}
}

func TestEnergyDrift(t *testing.T) {
	d := NewEnergyDrift()
	d.Observe(gas(1))
	if d.Value() != 0 {
		t.Errorf("expected no drift after one sample, got %f", d.Value())
	}

	d.Observe(gas(0))
	d.Observe(gas(1))
	// 8.5 -> 5.5 is the largest change
	if want := 3 / 8.5; math.Abs(d.Value()-want) > 1e-12 {
		t.Errorf("expected drift %f, got %f", want, d.Value())
	}
	if d.Samples() != 3 {
		t.Errorf("expected 3 samples, got %d", d.Samples())
	}

	d.Reset()
	if d.Value() != 0 || d.Samples() != 0 {
		t.Error("expected zero state after reset")
	}
}

func TestSummaryExport(t *testing.T) {
	s := gas(1)
	s.Densities = []float64{1, 3}
	sum := Summarise("snap.hdf5", s)

	if _, ok := sum.Fields[snapshot.SmoothingLength]; ok {
		t.Error("absent field summarised")
	}
	if f := sum.Fields[snapshot.Density]; f.Min != 1 || f.Max != 3 || f.Mean != 2 {
		t.Errorf("unexpected density stats %+v", f)
	}

	path := filepath.Join(t.TempDir(), "summary.json")
	if err := sum.ExportJSON(path); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var back Summary
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if back.Particles != 2 || back.Kinetic != 3 {
		t.Errorf("unexpected round trip %+v", back)
	}

	var buf bytes.Buffer
	if err := sum.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"thermal_energy": 5.5`)) {
		t.Errorf("thermal energy missing: %s", buf.String())
	}
}
