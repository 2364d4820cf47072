package pattern

// Linspace returns n evenly spaced samples over [start, stop]. A single
// sample yields start.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Grid holds the X and Y coordinate of every raster cell. X[row][col]
// varies along columns and Y[row][col] along rows.
type Grid struct {
	X, Y [][]float64
}

// Meshgrid forms the cartesian product of xs and ys.
func Meshgrid(xs, ys []float64) Grid {
	g := Grid{
		X: make([][]float64, len(ys)),
		Y: make([][]float64, len(ys)),
	}
	for j, y := range ys {
		g.X[j] = make([]float64, len(xs))
		g.Y[j] = make([]float64, len(xs))
		copy(g.X[j], xs)
		for i := range xs {
			g.Y[j][i] = y
		}
	}
	return g
}

// Domain is an axis-aligned rectangle in pattern space.
type Domain struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Grid samples the domain with w columns and h rows.
func (d Domain) Grid(w, h int) Grid {
	return Meshgrid(Linspace(d.XMin, d.XMax, w), Linspace(d.YMin, d.YMax, h))
}

func (g Grid) Height() int { return len(g.X) }

func (g Grid) Width() int {
	if len(g.X) == 0 {
		return 0
	}
	return len(g.X[0])
}

// Eval builds a field by calling fn at every cell.
func (g Grid) Eval(fn func(x, y float64) float64) Field {
	f := NewField(g.Width(), g.Height())
	for j := range g.X {
		for i := range g.X[j] {
			f[j][i] = fn(g.X[j][i], g.Y[j][i])
		}
	}
	return f
}
