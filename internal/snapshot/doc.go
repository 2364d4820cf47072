// Package snapshot reads SWIFT simulation snapshots.
//
// A snapshot carries a Header group (attributes Time and BoxSize) and a
// PartType0 group with the gas particle datasets:
//
//	Coordinates, Velocities, InternalEnergy, Masses   required
//	Density, SmoothingLength                          optional
//
// [Load] works against any [Source]; the h5 subpackage provides one backed
// by HDF5 files. Failures come back as a [*LoadError] wrapping one of the
// sentinel errors, so callers must handle the absent case explicitly.
package snapshot
