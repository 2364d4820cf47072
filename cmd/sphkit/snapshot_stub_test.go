//go:build !hdf5

package main

import (
	"errors"
	"testing"
)

func TestSnapshotCommandsNeedHDF5(t *testing.T) {
	for _, args := range [][]string{
		{"snapshot", "snap_0000.hdf5"},
		{"softening", "snap_0000.hdf5", "--fraction", "0.1"},
		{"movie", "snap_*.hdf5", "out.mp4"},
	} {
		if _, err := run(t, args...); !errors.Is(err, errNoHDF5) {
			t.Errorf("%s: expected errNoHDF5, got %v", args[0], err)
		}
	}
}
