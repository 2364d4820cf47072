package pattern

// Field is a per-cell intensity before colour mapping, indexed [row][col].
type Field [][]float64

func NewField(w, h int) Field {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f := make(Field, h)
	for j := range f {
		f[j] = make([]float64, w)
	}
	return f
}

// Add accumulates other into f in place. Both fields must share a shape.
func (f Field) Add(other Field) Field {
	for j := range f {
		for i := range f[j] {
			f[j][i] += other[j][i]
		}
	}
	return f
}

// Scale multiplies every cell by k in place.
func (f Field) Scale(k float64) Field {
	for j := range f {
		for i := range f[j] {
			f[j][i] *= k
		}
	}
	return f
}

// Clip returns a copy of f clamped to [lo, hi].
func (f Field) Clip(lo, hi float64) Field {
	out := make(Field, len(f))
	for j := range f {
		out[j] = make([]float64, len(f[j]))
		for i, v := range f[j] {
			out[j][i] = clamp(v, lo, hi)
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// indicator is 1 when cond holds and 0 otherwise.
func indicator(cond bool) float64 {
	if cond {
		return 1
	}
	return 0
}
