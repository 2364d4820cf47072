package pattern

import "math"

// Luminance is the brightest channel of a pixel, scaled to [0, 1].
func (r *Raster) Luminance(x, y int) float64 {
	red, green, blue := r.RGB(x, y)
	m := red
	if green > m {
		m = green
	}
	if blue > m {
		m = blue
	}
	return float64(m) / 255
}

// Mask marks pixels whose brightest channel is at least threshold.
func Mask(r *Raster, threshold uint8) [][]bool {
	mask := make([][]bool, r.Height)
	for y := range mask {
		mask[y] = make([]bool, r.Width)
		for x := range mask[y] {
			red, green, blue := r.RGB(x, y)
			mask[y][x] = red >= threshold || green >= threshold || blue >= threshold
		}
	}
	return mask
}

// LitFraction is the share of pixels with any non-zero channel.
func LitFraction(r *Raster) float64 {
	if r.Width == 0 || r.Height == 0 {
		return 0
	}
	lit := 0
	for _, row := range Mask(r, 1) {
		for _, on := range row {
			if on {
				lit++
			}
		}
	}
	return float64(lit) / float64(r.Width*r.Height)
}

// Components labels 4-connected regions of true cells and returns each
// region as a list of [row, col] pairs, in scan order of their first cell.
func Components(mask [][]bool) [][][2]int {
	h := len(mask)
	if h == 0 {
		return nil
	}
	w := len(mask[0])
	seen := make([]bool, w*h)
	offsets := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	var comps [][][2]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !mask[y][x] || seen[y*w+x] {
				continue
			}
			seen[y*w+x] = true
			queue := [][2]int{{y, x}}
			for qi := 0; qi < len(queue); qi++ {
				cy, cx := queue[qi][0], queue[qi][1]
				for _, d := range offsets {
					nx, ny := cx+d[0], cy+d[1]
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					if !mask[ny][nx] || seen[ny*w+nx] {
						continue
					}
					seen[ny*w+nx] = true
					queue = append(queue, [2]int{ny, nx})
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// RadialProfile averages luminance in bins of distance from the image
// centre, normalised so the corner falls in the last bin.
func RadialProfile(r *Raster, bins int) []float64 {
	if bins <= 0 || r.Width == 0 || r.Height == 0 {
		return nil
	}
	sum := make([]float64, bins)
	count := make([]int, bins)
	cx, cy := float64(r.Width-1)/2, float64(r.Height-1)/2
	rmax := math.Hypot(cx, cy)
	if rmax == 0 {
		rmax = 1
	}
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / rmax
			b := int(d * float64(bins))
			if b >= bins {
				b = bins - 1
			}
			sum[b] += r.Luminance(x, y)
			count[b]++
		}
	}
	for i := range sum {
		if count[i] > 0 {
			sum[i] /= float64(count[i])
		}
	}
	return sum
}
