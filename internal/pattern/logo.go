package pattern

import "math"

var logoDomain = Domain{XMin: -1, XMax: 1, YMin: -1, YMax: 1}

var logoPalette = Tint(0.3, 0.6, 1.0)

const (
	logoSamples = 200
	inkSigma    = 0.1

	borderInner  = 0.8
	borderOuter  = 0.9
	borderWeight = 0.5
)

// logoCurve samples the stylised S: x = 0.5 sin t, y = 0.8 sin 2t sin t
// for t in [-2pi, 2pi].
func logoCurve(n int) (xs, ys []float64) {
	ts := Linspace(-2*math.Pi, 2*math.Pi, n)
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i, t := range ts {
		xs[i] = 0.5 * math.Sin(t)
		ys[i] = 0.8 * math.Sin(2*t) * math.Sin(t)
	}
	return xs, ys
}

// Logo renders Gaussian ink along the logo curve inside a faint ring.
func Logo(w, h int) *Raster {
	g := logoDomain.Grid(w, h)
	sx, sy := logoCurve(logoSamples)

	intensity := NewField(w, h)
	for i := range sx {
		cx, cy := sx[i], sy[i]
		intensity.Add(g.Eval(func(x, y float64) float64 {
			dx, dy := x-cx, y-cy
			return gaussian(dx*dx+dy*dy, inkSigma)
		}))
	}

	border := g.Eval(func(x, y float64) float64 {
		r := math.Hypot(x, y)
		return indicator(r < borderOuter && r > borderInner)
	})
	intensity.Add(border.Scale(borderWeight))

	return Colorize(intensity.Clip(0, 1), nil, logoPalette)
}
