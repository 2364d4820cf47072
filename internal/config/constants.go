package config

// Workshop metadata and code-unit physical constants. These never change
// at runtime.
const (
	Version = "1.0.0"
	Author  = "ExGal-SPH-workshop"

	// GravityConst is G in code units.
	GravityConst = 1.0
	// AdiabaticIndex for a monatomic ideal gas.
	AdiabaticIndex = 5.0 / 3.0
)
