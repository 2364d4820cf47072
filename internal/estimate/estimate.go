// Package estimate gives rule-of-thumb simulation parameters.
package estimate

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultSofteningFraction of the mean inter-particle separation.
	DefaultSofteningFraction = 0.05

	// fallbackSeparation is used when the dimensionality is not 2 or 3.
	fallbackSeparation = 0.1

	// referenceMinutes is the runtime of 1000 hydro-only particles.
	referenceMinutes = 1.0
)

var ErrNoParticles = errors.New("estimate: no particles")

// Separation is the typical distance between particles: the square root
// of area per particle in 2D, the cube root of volume per particle in 3D.
// Positions with more than three columns use the first three. ok is false
// when positions have fewer than two columns.
func Separation(positions [][]float64) (sep float64, ok bool, err error) {
	n := len(positions)
	if n == 0 {
		return 0, false, ErrNoParticles
	}
	dim := len(positions[0])
	if dim < 2 {
		return fallbackSeparation, false, nil
	}
	dim = min(dim, 3)

	extent := 1.0
	col := make([]float64, n)
	for d := 0; d < dim; d++ {
		for i, p := range positions {
			if len(p) < dim {
				return fallbackSeparation, false, nil
			}
			col[i] = p[d]
		}
		extent *= floats.Max(col) - floats.Min(col)
	}

	if dim == 2 {
		return math.Sqrt(extent / float64(n)), true, nil
	}
	return math.Cbrt(extent / float64(n)), true, nil
}

// Softening recommends a gravitational softening length as fraction of
// the mean inter-particle separation.
func Softening(positions [][]float64, fraction float64) (float64, error) {
	sep, _, err := Separation(positions)
	if err != nil {
		return 0, err
	}
	return fraction * sep, nil
}

// RuntimeMinutes is a rough wall-clock estimate. Gravity scales as
// N log N, hydro alone as N. boxSize does not enter the estimate.
func RuntimeMinutes(n int, boxSize float64, gravity bool) float64 {
	complexity := float64(n)
	if gravity && n > 0 {
		complexity = float64(n) * math.Log(float64(n))
	}
	return referenceMinutes * complexity / 1000
}

// Runtime describes RuntimeMinutes in words.
func Runtime(n int, boxSize float64, gravity bool) string {
	minutes := RuntimeMinutes(n, boxSize, gravity)
	switch {
	case minutes < 1:
		return "Less than 1 minute"
	case minutes < 60:
		return fmt.Sprintf("Approximately %.0f minutes", minutes)
	default:
		return fmt.Sprintf("Approximately %.1f hours", minutes/60)
	}
}
