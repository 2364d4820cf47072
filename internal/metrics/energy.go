package metrics

import (
	"math"

	"github.com/san-kum/sphkit/internal/snapshot"
)

// Kinetic returns sum(m v²/2) over the gas particles.
func Kinetic(s *snapshot.Snapshot) float64 {
	var ke float64
	for i, v := range s.Velocities {
		var v2 float64
		for _, c := range v {
			v2 += c * c
		}
		ke += 0.5 * s.Masses[i] * v2
	}
	return ke
}

// Thermal returns sum(m u), u being specific internal energy.
func Thermal(s *snapshot.Snapshot) float64 {
	var th float64
	for i, u := range s.InternalEnergy {
		th += s.Masses[i] * u
	}
	return th
}

// Total is kinetic plus thermal energy. Self-gravity is not included.
func Total(s *snapshot.Snapshot) float64 {
	return Kinetic(s) + Thermal(s)
}

// EnergyDrift tracks the largest relative change in total energy over a
// sequence of snapshots.
type EnergyDrift struct {
	initialEnergy float64
	currentEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(s *snapshot.Snapshot) {
	energy := Total(s)

	if e.samples == 0 {
		e.initialEnergy = energy
	}

	e.currentEnergy = energy
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

// Value is the maximum relative drift seen so far.
func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Samples() int { return e.samples }

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}
