package pattern

import "math"

const (
	DefaultArms      = 2
	DefaultTightness = 3.0

	spiralScale = 0.8
	bulgeSigma  = 0.3
	bulgeWeight = 0.3
	armBlueTint = 0.2
)

var spiralDomain = Domain{XMin: -2, XMax: 2, YMin: -2, YMax: 2}

// spiralPalette: old stars redden the disk, young stars in the arms add blue.
var spiralPalette = Palette{
	R: Mix{Gain: 0.8},
	G: Mix{Gain: 0.9},
	B: Mix{Gain: 1.0, Aux: armBlueTint},
}

// Spiral renders a spiral galaxy: arms logarithmically wound by tightness
// around a Gaussian bulge.
func Spiral(w, h, arms int, tightness float64) *Raster {
	g := spiralDomain.Grid(w, h)

	spiral := g.Eval(func(x, y float64) float64 {
		r := math.Hypot(x, y)
		theta := math.Atan2(y, x)
		sum := 0.0
		for arm := 0; arm < arms; arm++ {
			offset := float64(arm) * 2 * math.Pi / float64(arms)
			c := math.Max(0, math.Cos(float64(arms)*theta-tightness*r+offset))
			sum += math.Exp(-r/spiralScale) * c * c * c
		}
		return sum
	})

	bulge := g.Eval(func(x, y float64) float64 {
		r2 := x*x + y*y
		return math.Exp(-r2 / (bulgeSigma * bulgeSigma))
	})

	intensity := NewField(w, h).Add(spiral).Add(bulge.Scale(bulgeWeight)).Clip(0, 1)
	return Colorize(intensity, spiral, spiralPalette)
}
