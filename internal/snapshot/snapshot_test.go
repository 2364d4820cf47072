package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type memGroup struct {
	attrs   map[string][]float64
	vectors map[string][][]float64
	scalars map[string][]float64
}

func (g *memGroup) Attr(name string) ([]float64, error) {
	v, ok := g.attrs[name]
	if !ok {
		return nil, fmt.Errorf("no attribute %s", name)
	}
	return v, nil
}

func (g *memGroup) Has(name string) bool {
	_, v := g.vectors[name]
	_, s := g.scalars[name]
	return v || s
}

func (g *memGroup) Vector(name string) ([][]float64, error) { return g.vectors[name], nil }

func (g *memGroup) Scalar(name string) ([]float64, error) { return g.scalars[name], nil }

type memSource struct {
	groups map[string]*memGroup
}

func (s *memSource) Path() string { return "mem.hdf5" }

func (s *memSource) Group(name string) (Group, error) {
	g, ok := s.groups[name]
	if !ok {
		return nil, fmt.Errorf("no group %s", name)
	}
	return g, nil
}

func fixture() *memSource {
	return &memSource{groups: map[string]*memGroup{
		HeaderGroup: {attrs: map[string][]float64{
			AttrTime:    {1.5},
			AttrBoxSize: {2, 2, 2},
		}},
		GasGroup: {
			vectors: map[string][][]float64{
				Coordinates: {{0, 0, 0}, {1, 1, 1}, {2, 2, 2}},
				Velocities:  {{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
			},
			scalars: map[string][]float64{
				InternalEnergy: {1, 2, 3},
				Masses:         {0.1, 0.1, 0.1},
				Density:        {1, 1, 1},
			},
		},
	}}
}

func TestLoad(t *testing.T) {
	snap, err := Load(fixture())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if snap.Time != 1.5 {
		t.Errorf("expected time 1.5, got %f", snap.Time)
	}
	if snap.Count() != 3 {
		t.Errorf("expected 3 particles, got %d", snap.Count())
	}
	if snap.Dim() != 3 {
		t.Errorf("expected 3d positions, got %d", snap.Dim())
	}
	if !snap.HasDensity() {
		t.Error("expected density")
	}
	if snap.HasSmoothingLength() {
		t.Error("smoothing length should be absent")
	}
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*memSource)
		want   error
	}{
		{"no header", func(s *memSource) { delete(s.groups, HeaderGroup) }, ErrMissingGroup},
		{"no gas", func(s *memSource) { delete(s.groups, GasGroup) }, ErrMissingGroup},
		{"no time", func(s *memSource) { delete(s.groups[HeaderGroup].attrs, AttrTime) }, ErrMissingAttribute},
		{"no box", func(s *memSource) { delete(s.groups[HeaderGroup].attrs, AttrBoxSize) }, ErrMissingAttribute},
		{"no coordinates", func(s *memSource) { delete(s.groups[GasGroup].vectors, Coordinates) }, ErrMissingDataset},
		{"no masses", func(s *memSource) { delete(s.groups[GasGroup].scalars, Masses) }, ErrMissingDataset},
		{"short energy", func(s *memSource) { s.groups[GasGroup].scalars[InternalEnergy] = []float64{1} }, ErrShape},
		{"short density", func(s *memSource) { s.groups[GasGroup].scalars[Density] = []float64{1, 2} }, ErrShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fixture()
			tt.mutate(src)

			snap, err := Load(src)
			if snap != nil {
				t.Error("expected nil snapshot on failure")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			var le *LoadError
			if !errors.As(err, &le) || le.Path != "mem.hdf5" {
				t.Errorf("expected LoadError for mem.hdf5, got %v", err)
			}
		})
	}
}

func TestTryLoad(t *testing.T) {
	var out bytes.Buffer

	failing := func(path string) (*Snapshot, error) { return nil, errors.New("unreadable") }
	snap, ok := TryLoad(failing, "bad.hdf5", &out)
	if ok || snap != nil {
		t.Error("expected absent result")
	}
	if !strings.Contains(out.String(), "Error loading snapshot bad.hdf5") {
		t.Errorf("unexpected report: %q", out.String())
	}

	out.Reset()
	working := func(path string) (*Snapshot, error) { return Load(fixture()) }
	snap, ok = TryLoad(working, "good.hdf5", &out)
	if !ok || snap == nil {
		t.Fatal("expected snapshot")
	}
	if out.Len() != 0 {
		t.Errorf("expected no report, got %q", out.String())
	}
}
