package pattern

import (
	"image"
	"image/color"
)

// Raster is an 8-bit RGB image stored as (height, width, 3), row-major.
type Raster struct {
	Width, Height int
	Pix           []uint8
}

func NewRaster(w, h int) *Raster {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Raster{Width: w, Height: h, Pix: make([]uint8, w*h*3)}
}

func (r *Raster) offset(x, y int) int { return (y*r.Width + x) * 3 }

// RGB returns the channels at column x, row y.
func (r *Raster) RGB(x, y int) (uint8, uint8, uint8) {
	o := r.offset(x, y)
	return r.Pix[o], r.Pix[o+1], r.Pix[o+2]
}

func (r *Raster) SetRGB(x, y int, red, green, blue uint8) {
	o := r.offset(x, y)
	r.Pix[o], r.Pix[o+1], r.Pix[o+2] = red, green, blue
}

// Shape mirrors the (height, width, channels) layout.
func (r *Raster) Shape() (int, int, int) { return r.Height, r.Width, 3 }

func (r *Raster) ColorModel() color.Model { return color.RGBAModel }

func (r *Raster) Bounds() image.Rectangle { return image.Rect(0, 0, r.Width, r.Height) }

func (r *Raster) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return color.RGBA{}
	}
	red, green, blue := r.RGB(x, y)
	return color.RGBA{R: red, G: green, B: blue, A: 0xff}
}

// Equal reports whether both rasters hold identical pixels.
func (r *Raster) Equal(other *Raster) bool {
	if r.Width != other.Width || r.Height != other.Height || len(r.Pix) != len(other.Pix) {
		return false
	}
	for i := range r.Pix {
		if r.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}

// Mix maps an intensity and an auxiliary term to one channel value:
// Gain*intensity + Aux*aux, before scaling to 8 bits.
type Mix struct {
	Gain, Aux float64
}

// Palette holds the affine mapping of each RGB channel.
type Palette struct {
	R, G, B Mix
}

// Tint is a palette that only scales intensity.
func Tint(r, g, b float64) Palette {
	return Palette{R: Mix{Gain: r}, G: Mix{Gain: g}, B: Mix{Gain: b}}
}

// Colorize maps a clipped intensity field onto a raster. aux may be nil
// when the palette carries no auxiliary terms.
func Colorize(intensity, aux Field, p Palette) *Raster {
	h := len(intensity)
	w := 0
	if h > 0 {
		w = len(intensity[0])
	}
	r := NewRaster(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := intensity[y][x]
			a := 0.0
			if aux != nil {
				a = aux[y][x]
			}
			r.SetRGB(x, y,
				toByte(p.R.Gain*v+p.R.Aux*a),
				toByte(p.G.Gain*v+p.G.Aux*a),
				toByte(p.B.Gain*v+p.B.Aux*a),
			)
		}
	}
	return r
}

// toByte scales a unit value to [0, 255] and truncates.
func toByte(v float64) uint8 {
	return uint8(clamp(255*v, 0, 255))
}
