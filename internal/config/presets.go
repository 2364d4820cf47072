package config

import "sort"

// Scale holds the typical physical scales of one workshop problem.
type Scale struct {
	BoxSize         []float64 `yaml:"box_size,omitempty"`
	VelocityShear   float64   `yaml:"velocity_shear,omitempty"`
	DensityContrast float64   `yaml:"density_contrast,omitempty"`
	ExplosionEnergy float64   `yaml:"explosion_energy,omitempty"`
	BackgroundRho   float64   `yaml:"background_density,omitempty"`
	ExplosionRadius float64   `yaml:"explosion_radius,omitempty"`
	TargetParticles int       `yaml:"target_particles,omitempty"`
}

var scales = map[string]Scale{
	"kelvin_helmholtz": {
		BoxSize:         []float64{4.0, 2.0},
		VelocityShear:   2.0,
		DensityContrast: 2.0,
	},
	"sedov": {
		ExplosionEnergy: 1.0,
		BackgroundRho:   1.0,
		ExplosionRadius: 0.1,
	},
	"image": {
		BoxSize:         []float64{3.0},
		DensityContrast: 20.0,
		TargetParticles: 3000,
	},
}

// GetScale returns a copy of the named preset.
func GetScale(name string) (Scale, bool) {
	s, ok := scales[name]
	if !ok {
		return Scale{}, false
	}
	box := make([]float64, len(s.BoxSize))
	copy(box, s.BoxSize)
	s.BoxSize = box
	return s, true
}

func ListScales() []string {
	names := make([]string, 0, len(scales))
	for name := range scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
