package snapshot

import (
	"errors"
	"fmt"
	"io"
)

const (
	HeaderGroup     = "Header"
	GasGroup        = "PartType0"
	AttrTime        = "Time"
	AttrBoxSize     = "BoxSize"
	Coordinates     = "Coordinates"
	Velocities      = "Velocities"
	InternalEnergy  = "InternalEnergy"
	Masses          = "Masses"
	Density         = "Density"
	SmoothingLength = "SmoothingLength"
)

// Snapshot is the gas content of one simulation output. Densities and
// SmoothingLengths are nil when the file does not carry them.
type Snapshot struct {
	Time             float64
	BoxSize          []float64
	Positions        [][]float64
	Velocities       [][]float64
	InternalEnergy   []float64
	Masses           []float64
	Densities        []float64
	SmoothingLengths []float64
}

func (s *Snapshot) Count() int { return len(s.Masses) }

// Dim is the number of coordinate components per particle.
func (s *Snapshot) Dim() int {
	if len(s.Positions) == 0 {
		return 0
	}
	return len(s.Positions[0])
}

func (s *Snapshot) HasDensity() bool { return s.Densities != nil }

func (s *Snapshot) HasSmoothingLength() bool { return s.SmoothingLengths != nil }

// Group is a named container of attributes and datasets.
type Group interface {
	// Attr reads a scalar or vector float attribute.
	Attr(name string) ([]float64, error)
	// Has reports whether a dataset exists.
	Has(name string) bool
	// Vector reads an (N, k) dataset.
	Vector(name string) ([][]float64, error)
	// Scalar reads an (N,) dataset.
	Scalar(name string) ([]float64, error)
}

// Source is an opened snapshot file.
type Source interface {
	Path() string
	Group(name string) (Group, error)
}

// Load reads a Snapshot from src.
func Load(src Source) (*Snapshot, error) {
	snap, err := load(src)
	if err != nil {
		return nil, &LoadError{Path: src.Path(), Wrapped: err}
	}
	return snap, nil
}

func load(src Source) (*Snapshot, error) {
	header, err := src.Group(HeaderGroup)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingGroup, HeaderGroup, err)
	}
	t, err := header.Attr(AttrTime)
	if err != nil || len(t) == 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrMissingAttribute, HeaderGroup, AttrTime)
	}
	box, err := header.Attr(AttrBoxSize)
	if err != nil || len(box) == 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrMissingAttribute, HeaderGroup, AttrBoxSize)
	}

	gas, err := src.Group(GasGroup)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingGroup, GasGroup, err)
	}

	snap := &Snapshot{Time: t[0], BoxSize: box}

	if snap.Positions, err = requireVector(gas, Coordinates); err != nil {
		return nil, err
	}
	if snap.Velocities, err = requireVector(gas, Velocities); err != nil {
		return nil, err
	}
	if snap.InternalEnergy, err = requireScalar(gas, InternalEnergy); err != nil {
		return nil, err
	}
	if snap.Masses, err = requireScalar(gas, Masses); err != nil {
		return nil, err
	}
	if gas.Has(Density) {
		if snap.Densities, err = gas.Scalar(Density); err != nil {
			return nil, fmt.Errorf("%s: %w", Density, err)
		}
	}
	if gas.Has(SmoothingLength) {
		if snap.SmoothingLengths, err = gas.Scalar(SmoothingLength); err != nil {
			return nil, fmt.Errorf("%s: %w", SmoothingLength, err)
		}
	}

	return snap, snap.checkShapes()
}

func requireVector(g Group, name string) ([][]float64, error) {
	if !g.Has(name) {
		return nil, fmt.Errorf("%w: %s/%s", ErrMissingDataset, GasGroup, name)
	}
	v, err := g.Vector(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func requireScalar(g Group, name string) ([]float64, error) {
	if !g.Has(name) {
		return nil, fmt.Errorf("%w: %s/%s", ErrMissingDataset, GasGroup, name)
	}
	v, err := g.Scalar(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func (s *Snapshot) checkShapes() error {
	n := len(s.Masses)
	lengths := map[string]int{
		Coordinates:    len(s.Positions),
		Velocities:     len(s.Velocities),
		InternalEnergy: len(s.InternalEnergy),
	}
	if s.Densities != nil {
		lengths[Density] = len(s.Densities)
	}
	if s.SmoothingLengths != nil {
		lengths[SmoothingLength] = len(s.SmoothingLengths)
	}
	for name, l := range lengths {
		if l != n {
			return fmt.Errorf("%w: %s has %d rows, %s has %d", ErrShape, name, l, Masses, n)
		}
	}
	return nil
}

// Opener loads the snapshot stored at path.
type Opener func(path string) (*Snapshot, error)

// TryLoad reports a failed load on out and returns ok=false, for callers
// that treat a bad snapshot as skippable.
func TryLoad(open Opener, path string, out io.Writer) (*Snapshot, bool) {
	snap, err := open(path)
	if err != nil {
		var le *LoadError
		if !errors.As(err, &le) {
			err = &LoadError{Path: path, Wrapped: err}
		}
		fmt.Fprintf(out, "Error loading snapshot %s: %v\n", path, err)
		return nil, false
	}
	return snap, true
}
