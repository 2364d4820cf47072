package pattern

import "math"

var faceDomain = Domain{XMin: -1.5, XMax: 1.5, YMin: -1.5, YMax: 1.5}

var facePalette = Tint(1.0, 1.0, 0.3)

const (
	faceInner = 1.0
	faceOuter = 1.2

	eyeOffsetX = 0.4
	eyeOffsetY = 0.3
	eyeRadius  = 0.15

	mouthOffsetY = 0.2
	mouthInner   = 0.4
	mouthOuter   = 0.6
)

// Face renders a yellow smiley: a ring outline, two round eyes and the
// arc of a ring cut at y = -0.2.
//
// The eye terms are (x+0.4) and (x-0.4), so the first eye is centred at
// x = -0.4 and the second at x = +0.4.
func Face(w, h int) *Raster {
	g := faceDomain.Grid(w, h)

	intensity := g.Eval(func(x, y float64) float64 {
		r := math.Hypot(x, y)
		outline := indicator(r < faceOuter && r > faceInner)

		ey := y + eyeOffsetY
		eye1 := indicator((x+eyeOffsetX)*(x+eyeOffsetX)+ey*ey < eyeRadius*eyeRadius)
		eye2 := indicator((x-eyeOffsetX)*(x-eyeOffsetX)+ey*ey < eyeRadius*eyeRadius)

		mr := math.Hypot(x, y+mouthOffsetY)
		mouth := indicator(mr < mouthOuter && mr > mouthInner && y < -mouthOffsetY)

		return outline + eye1 + eye2 + mouth
	}).Clip(0, 1)

	return Colorize(intensity, nil, facePalette)
}
