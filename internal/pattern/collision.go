package pattern

import "math"

var collisionDomain = Domain{XMin: -3, XMax: 3, YMin: -2, YMax: 2}

var collisionPalette = Tint(0.9, 0.7, 1.0)

// gaussian is exp(-d2/sigma^2).
func gaussian(d2, sigma float64) float64 {
	return math.Exp(-d2 / (sigma * sigma))
}

// Collision renders two interacting galaxies: a round one at (-1, 0), a
// flattened one at (1, 0), and a faint bridge between them.
func Collision(w, h int) *Raster {
	g := collisionDomain.Grid(w, h)

	intensity := g.Eval(func(x, y float64) float64 {
		left := gaussian((x+1)*(x+1)+y*y, 0.4)

		ys := y * 1.3
		right := gaussian((x-1)*(x-1)+ys*ys, 0.3)

		yb := y * 0.3
		bridge := 0.3 * gaussian(x*x+yb*yb, 0.8)

		return left + right + bridge
	}).Clip(0, 1)

	return Colorize(intensity, nil, collisionPalette)
}
