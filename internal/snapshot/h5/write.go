//go:build hdf5

package h5

import (
	"fmt"

	"gonum.org/v1/hdf5"

	"github.com/san-kum/sphkit/internal/snapshot"
)

// Write stores snap at path in the layout Open reads, replacing any
// existing file. Optional datasets are written only when present.
func Write(path string, snap *snapshot.Snapshot) error {
	f, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	header, err := f.CreateGroup(snapshot.HeaderGroup)
	if err != nil {
		return err
	}
	defer header.Close()

	if err := writeAttr(header, snapshot.AttrTime, []float64{snap.Time}); err != nil {
		return err
	}
	if err := writeAttr(header, snapshot.AttrBoxSize, snap.BoxSize); err != nil {
		return err
	}

	gas, err := f.CreateGroup(snapshot.GasGroup)
	if err != nil {
		return err
	}
	defer gas.Close()

	if err := writeVector(gas, snapshot.Coordinates, snap.Positions); err != nil {
		return err
	}
	if err := writeVector(gas, snapshot.Velocities, snap.Velocities); err != nil {
		return err
	}
	scalars := []struct {
		name string
		data []float64
	}{
		{snapshot.InternalEnergy, snap.InternalEnergy},
		{snapshot.Masses, snap.Masses},
		{snapshot.Density, snap.Densities},
		{snapshot.SmoothingLength, snap.SmoothingLengths},
	}
	for _, s := range scalars {
		if s.data == nil {
			continue
		}
		if err := writeScalar(gas, s.name, s.data); err != nil {
			return err
		}
	}
	return nil
}

func writeAttr(g *hdf5.Group, name string, data []float64) error {
	if len(data) == 0 {
		return fmt.Errorf("attribute %s: no values", name)
	}

	var (
		space *hdf5.Dataspace
		err   error
	)
	if len(data) == 1 {
		space, err = hdf5.CreateDataspace(hdf5.S_SCALAR)
	} else {
		space, err = hdf5.CreateSimpleDataspace([]uint{uint(len(data))}, nil)
	}
	if err != nil {
		return err
	}
	defer space.Close()

	attr, err := g.CreateAttribute(name, hdf5.T_NATIVE_DOUBLE, space)
	if err != nil {
		return fmt.Errorf("attribute %s: %w", name, err)
	}
	defer attr.Close()
	return attr.Write(&data, hdf5.T_NATIVE_DOUBLE)
}

func writeDataset(g *hdf5.Group, name string, dims []uint, flat []float64) error {
	space, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return err
	}
	defer space.Close()

	ds, err := g.CreateDataset(name, hdf5.T_NATIVE_DOUBLE, space)
	if err != nil {
		return fmt.Errorf("dataset %s: %w", name, err)
	}
	defer ds.Close()
	if len(flat) == 0 {
		return nil
	}
	return ds.Write(&flat)
}

func writeScalar(g *hdf5.Group, name string, data []float64) error {
	return writeDataset(g, name, []uint{uint(len(data))}, data)
}

func writeVector(g *hdf5.Group, name string, rows [][]float64) error {
	k := 0
	if len(rows) > 0 {
		k = len(rows[0])
	}
	flat := make([]float64, 0, len(rows)*k)
	for _, r := range rows {
		if len(r) != k {
			return fmt.Errorf("%w: %s rows differ in width", snapshot.ErrShape, name)
		}
		flat = append(flat, r...)
	}
	return writeDataset(g, name, []uint{uint(len(rows)), uint(k)}, flat)
}
