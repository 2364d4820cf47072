//go:build !hdf5

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNoHDF5 = errors.New("sphkit was built without HDF5 support; rebuild with -tags hdf5")

// snapshotCommands keeps the HDF5 commands visible in help but reports
// how to enable them.
func snapshotCommands() []*cobra.Command {
	stub := func(use, short string) *cobra.Command {
		return &cobra.Command{
			Use:                use,
			Short:              short + " (requires -tags hdf5)",
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return errNoHDF5
			},
		}
	}
	return []*cobra.Command{
		stub("snapshot [file]", "summarise a SWIFT snapshot"),
		stub("softening [file]", "suggest a gravitational softening length"),
		stub("movie [glob] [output]", "render snapshots into a movie"),
	}
}
