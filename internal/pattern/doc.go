// Package pattern generates the procedural sample images used by the
// image-to-hydro notebook.
//
// Every generator follows the same shape: build a coordinate [Grid] over a
// fixed rectangle, evaluate a closed-form intensity [Field], clip it to
// [0, 1], and map it to RGB with per-pattern coefficients:
//
//   - [Spiral]: two-armed spiral galaxy with a central bulge
//   - [Collision]: two Gaussian galaxies joined by a tidal bridge
//   - [Face]: ring outline, eyes and a smile arc
//   - [Logo]: Gaussian ink deposited along a parametric curve
//
// Generators are pure and deterministic. Sizes are not validated; a zero
// or negative dimension yields an empty [Raster].
//
// # Orientation
//
// Row 0 of a [Raster] holds the smallest Y of the domain, which is the top
// row of the saved image. Features placed at negative Y therefore appear
// in the upper half of the picture.
package pattern
