package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	ErrClosed     = errors.New("preview: figure closed")
	ErrPanelIndex = errors.New("preview: panel index out of range")
)

// PadInches is the margin kept around content when cropping tightly.
const PadInches = 0.1

var (
	regularOnce sync.Once
	regular     *opentype.Font
	regularErr  error
)

func regularFont() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

type panel struct {
	img   image.Image
	title string
}

// Figure is a grid of image panels with an optional overall title. Axes
// are never drawn.
type Figure struct {
	Rows, Cols int
	Style      Style
	DPI        int
	Tight      bool

	suptitle string
	panels   []panel
	canvas   *image.RGBA
	faces    []font.Face
	closed   bool
}

func NewFigure(rows, cols int, style Style, dpi int) *Figure {
	return &Figure{
		Rows:   rows,
		Cols:   cols,
		Style:  style,
		DPI:    dpi,
		panels: make([]panel, rows*cols),
	}
}

// Panel places img at grid index i (row-major) under title.
func (f *Figure) Panel(i int, img image.Image, title string) error {
	if f.closed {
		return ErrClosed
	}
	if i < 0 || i >= len(f.panels) {
		return fmt.Errorf("%w: %d of %d", ErrPanelIndex, i, len(f.panels))
	}
	f.panels[i] = panel{img: img, title: title}
	return nil
}

func (f *Figure) Suptitle(s string) { f.suptitle = s }

func (f *Figure) px(inches float64) int { return int(inches*float64(f.DPI) + 0.5) }

// ptPx converts a font size in points to device pixels.
func (f *Figure) ptPx(pt float64) int { return int(pt*float64(f.DPI)/72 + 0.5) }

func (f *Figure) face(pt float64) (font.Face, error) {
	fnt, err := regularFont()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    pt,
		DPI:     float64(f.DPI),
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	f.faces = append(f.faces, face)
	return face, nil
}

// Render lays out the figure and returns the canvas. With Tight set the
// canvas is cropped to its content plus PadInches.
func (f *Figure) Render() (*image.RGBA, error) {
	if f.closed {
		return nil, ErrClosed
	}
	w, h := f.px(f.Style.FigSize[0]), f.px(f.Style.FigSize[1])
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	margin := f.px(0.2)
	top := margin
	if f.suptitle != "" {
		face, err := f.face(f.Style.FigureTitleSize)
		if err != nil {
			return nil, err
		}
		size := f.ptPx(f.Style.FigureTitleSize)
		drawCentered(canvas, face, f.suptitle, w/2, top+size)
		top += 2 * size
	}

	titleFace, err := f.face(f.Style.AxesTitleSize)
	if err != nil {
		return nil, err
	}
	titleBand := f.ptPx(f.Style.AxesTitleSize) * 2

	cellW := (w - 2*margin) / max(f.Cols, 1)
	cellH := (h - top - margin) / max(f.Rows, 1)
	gap := f.px(0.1)

	for i, p := range f.panels {
		if p.img == nil {
			continue
		}
		row, col := i/f.Cols, i%f.Cols
		x0 := margin + col*cellW
		y0 := top + row*cellH

		if p.title != "" {
			drawCentered(canvas, titleFace, p.title, x0+cellW/2, y0+titleBand*3/4)
		}

		area := image.Rect(x0+gap, y0+titleBand, x0+cellW-gap, y0+cellH-gap)
		placeImage(canvas, p.img, area)
	}

	if f.Tight {
		canvas = Tight(canvas, f.px(PadInches))
	}
	f.canvas = canvas
	return canvas, nil
}

// Save renders the figure if needed and writes it as PNG.
func (f *Figure) Save(path string) error {
	if f.closed {
		return ErrClosed
	}
	if f.canvas == nil {
		if _, err := f.Render(); err != nil {
			return err
		}
	}
	return imgio.Save(path, f.canvas, imgio.PNGEncoder())
}

// Close releases the canvas and font faces. It is safe to call twice.
func (f *Figure) Close() error {
	if f.closed {
		return nil
	}
	var firstErr error
	for _, face := range f.faces {
		if err := face.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	f.faces = nil
	f.canvas = nil
	f.panels = nil
	f.closed = true
	return firstErr
}

// placeImage scales img with nearest-neighbour sampling to fit area,
// keeping its aspect ratio, and centres it.
func placeImage(dst *image.RGBA, img image.Image, area image.Rectangle) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}
	scale := min(float64(area.Dx())/float64(b.Dx()), float64(area.Dy())/float64(b.Dy()))
	sw := max(int(float64(b.Dx())*scale), 1)
	sh := max(int(float64(b.Dy())*scale), 1)

	scaled := transform.Resize(img, sw, sh, transform.NearestNeighbor)
	at := image.Pt(area.Min.X+(area.Dx()-sw)/2, area.Min.Y+(area.Dy()-sh)/2)
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(image.Pt(sw, sh))}, scaled, image.Point{}, draw.Src)
}

func drawCentered(dst draw.Image, face font.Face, s string, cx, baseline int) {
	width := font.MeasureString(face, s).Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(cx-width/2, baseline),
	}
	d.DrawString(s)
}

// Tight crops img to the bounding box of its non-white pixels, grown by
// pad on every side and clamped to the image. A blank image is returned
// unchanged.
func Tight(img *image.RGBA, pad int) *image.RGBA {
	b := img.Bounds()
	box := image.Rectangle{}
	found := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R == 0xff && c.G == 0xff && c.B == 0xff {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if !found {
				box, found = px, true
			} else {
				box = box.Union(px)
			}
		}
	}
	if !found {
		return img
	}
	box = image.Rect(box.Min.X-pad, box.Min.Y-pad, box.Max.X+pad, box.Max.Y+pad).Intersect(b)

	out := image.NewRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	draw.Draw(out, out.Bounds(), img, box.Min, draw.Src)
	return out
}

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func fmtPair(p [2]float64) string { return "[" + fmtFloat(p[0]) + ", " + fmtFloat(p[1]) + "]" }

func fmtBool(b bool) string { return strconv.FormatBool(b) }
