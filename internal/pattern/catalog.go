package pattern

import (
	"errors"
	"fmt"
)

// ErrUnknownPattern is returned by Lookup for names outside the catalogue.
var ErrUnknownPattern = errors.New("pattern: unknown pattern")

// Params carries the knobs a generator understands. Zero fields fall back
// to the pattern's defaults.
type Params struct {
	Width, Height int
	Arms          int
	Tightness     float64
}

// Pattern describes one catalogue entry.
type Pattern struct {
	Name        string
	Title       string
	File        string
	Description string
	Width       int
	Height      int
	generate    func(Params) *Raster
}

// Generate renders the pattern, filling unset params from defaults.
func (p Pattern) Generate(params Params) *Raster {
	return p.generate(p.Defaults(params))
}

// Defaults fills zero fields of params.
func (p Pattern) Defaults(params Params) Params {
	if params.Width == 0 {
		params.Width = p.Width
	}
	if params.Height == 0 {
		params.Height = p.Height
	}
	if params.Arms == 0 {
		params.Arms = DefaultArms
	}
	if params.Tightness == 0 {
		params.Tightness = DefaultTightness
	}
	return params
}

// catalogue order is fixed: the preview grid places panels by index.
var catalogue = []Pattern{
	{
		Name: "spiral", Title: "Spiral Galaxy", File: "spiral_galaxy.png",
		Description: "Classic spiral galaxy", Width: 100, Height: 100,
		generate: func(p Params) *Raster { return Spiral(p.Width, p.Height, p.Arms, p.Tightness) },
	},
	{
		Name: "collision", Title: "Galaxy Collision", File: "galaxy_collision.png",
		Description: "Two interacting galaxies", Width: 120, Height: 80,
		generate: func(p Params) *Raster { return Collision(p.Width, p.Height) },
	},
	{
		Name: "face", Title: "Smiley Face", File: "smiley_face.png",
		Description: "Simple smiley face", Width: 80, Height: 80,
		generate: func(p Params) *Raster { return Face(p.Width, p.Height) },
	},
	{
		Name: "logo", Title: "Logo Pattern", File: "logo_pattern.png",
		Description: "Stylized pattern", Width: 90, Height: 90,
		generate: func(p Params) *Raster { return Logo(p.Width, p.Height) },
	},
}

// All returns the catalogue in display order.
func All() []Pattern {
	out := make([]Pattern, len(catalogue))
	copy(out, catalogue)
	return out
}

func Names() []string {
	names := make([]string, len(catalogue))
	for i, p := range catalogue {
		names[i] = p.Name
	}
	return names
}

func Lookup(name string) (Pattern, error) {
	for _, p := range catalogue {
		if p.Name == name {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPattern, name, Names())
}
