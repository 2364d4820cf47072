//go:build hdf5

// Package h5 reads and writes SWIFT snapshots stored as HDF5 files.
package h5

import (
	"fmt"

	"gonum.org/v1/hdf5"

	"github.com/san-kum/sphkit/internal/snapshot"
)

// Open loads the snapshot at path.
func Open(path string) (*snapshot.Snapshot, error) {
	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, &snapshot.LoadError{Path: path, Wrapped: err}
	}
	defer f.Close()

	src := &fileSource{path: path, file: f}
	defer src.close()
	return snapshot.Load(src)
}

type fileSource struct {
	path   string
	file   *hdf5.File
	groups []*hdf5.Group
}

func (s *fileSource) Path() string { return s.path }

func (s *fileSource) Group(name string) (snapshot.Group, error) {
	if !s.file.LinkExists(name) {
		return nil, fmt.Errorf("no link %q", name)
	}
	g, err := s.file.OpenGroup(name)
	if err != nil {
		return nil, err
	}
	s.groups = append(s.groups, g)
	return &group{g: g}, nil
}

func (s *fileSource) close() {
	for _, g := range s.groups {
		g.Close()
	}
}

type group struct {
	g *hdf5.Group
}

func (g *group) Attr(name string) ([]float64, error) {
	attr, err := g.g.OpenAttribute(name)
	if err != nil {
		return nil, err
	}
	defer attr.Close()

	space := attr.Space()
	defer space.Close()

	n := space.SimpleExtentNPoints()
	if n < 1 {
		n = 1
	}
	buf := make([]float64, n)
	if err := attr.Read(&buf, hdf5.T_NATIVE_DOUBLE); err != nil {
		return nil, err
	}
	return buf, nil
}

func (g *group) Has(name string) bool {
	return g.g.LinkExists(name)
}

// read loads a dataset into a flat buffer and returns its dimensions.
func (g *group) read(name string) ([]float64, []uint, error) {
	ds, err := g.g.OpenDataset(name)
	if err != nil {
		return nil, nil, err
	}
	defer ds.Close()

	space := ds.Space()
	defer space.Close()

	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, nil, err
	}
	buf := make([]float64, space.SimpleExtentNPoints())
	if len(buf) == 0 {
		return buf, dims, nil
	}
	if err := ds.Read(&buf); err != nil {
		return nil, nil, err
	}
	return buf, dims, nil
}

func (g *group) Scalar(name string) ([]float64, error) {
	buf, dims, err := g.read(name)
	if err != nil {
		return nil, err
	}
	if len(dims) != 1 {
		return nil, fmt.Errorf("%w: %s has rank %d, want 1", snapshot.ErrShape, name, len(dims))
	}
	return buf, nil
}

func (g *group) Vector(name string) ([][]float64, error) {
	buf, dims, err := g.read(name)
	if err != nil {
		return nil, err
	}
	if len(dims) != 2 {
		return nil, fmt.Errorf("%w: %s has rank %d, want 2", snapshot.ErrShape, name, len(dims))
	}
	n, k := int(dims[0]), int(dims[1])
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = buf[i*k : (i+1)*k : (i+1)*k]
	}
	return rows, nil
}
