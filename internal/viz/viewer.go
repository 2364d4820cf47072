package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/sphkit/internal/pattern"
)

const brailleThreshold = 64

// chrome is the number of terminal rows used by header and help.
const chrome = 4

type renderKey struct {
	index, w, h int
	braille     bool
}

// Viewer browses the pattern catalogue in the terminal, re-rendering
// each pattern at the terminal's resolution.
type Viewer struct {
	patterns      []pattern.Pattern
	index         int
	braille       bool
	width, height int
	cache         map[renderKey]string
}

func NewViewer(start string) *Viewer {
	v := &Viewer{
		patterns: pattern.All(),
		width:    80,
		height:   24,
		cache:    make(map[renderKey]string),
	}
	for i, p := range v.patterns {
		if p.Name == start {
			v.index = i
		}
	}
	return v
}

func (v *Viewer) Init() tea.Cmd { return nil }

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return v, tea.Quit
		case "right", "l", "n", " ":
			v.index = (v.index + 1) % len(v.patterns)
		case "left", "h", "p":
			v.index = (v.index + len(v.patterns) - 1) % len(v.patterns)
		case "b":
			v.braille = !v.braille
		}
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	}
	return v, nil
}

func (v *Viewer) Current() pattern.Pattern { return v.patterns[v.index] }

func (v *Viewer) View() string {
	p := v.Current()
	cols, rows := v.width, v.height-chrome
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	mode := "colour"
	if v.braille {
		mode = "braille"
	}

	var b strings.Builder
	b.WriteString(Title.Render(p.Title))
	b.WriteString(Subtle.Render(fmt.Sprintf("  %d/%d  %s  %s", v.index+1, len(v.patterns), p.File, mode)))
	b.WriteString("\n\n")
	b.WriteString(v.picture(cols, rows))
	b.WriteString("\n" + KeyHint.Render("←/→ pattern • b braille • q quit"))
	return b.String()
}

// picture fits the pattern's aspect ratio into cols x rows cells.
func (v *Viewer) picture(cols, rows int) string {
	p := v.Current()

	// dots per cell: half blocks are 1x2, braille 2x4
	dx, dy := 1, 2
	if v.braille {
		dx, dy = 2, 4
	}
	maxW, maxH := cols*dx, rows*dy
	w, h := maxW, maxW*p.Height/p.Width
	if h > maxH {
		h, w = maxH, maxH*p.Width/p.Height
	}
	w, h = max(w, 1), max(h, 1)

	key := renderKey{index: v.index, w: w, h: h, braille: v.braille}
	if s, ok := v.cache[key]; ok {
		return s
	}

	img := p.Generate(pattern.Params{Width: w, Height: h})
	var s string
	if v.braille {
		s = Mono.Render(Braille(img, brailleThreshold).String())
	} else {
		s = HalfBlocks(img)
	}
	v.cache[key] = s
	return s
}

// Braille draws the pixels of img brighter than threshold as dots inside
// an outline of the image bounds.
func Braille(img *pattern.Raster, threshold uint8) *Canvas {
	c := FromMask(pattern.Mask(img, threshold))
	c.Frame()
	return c
}

// HalfBlocks renders a raster two pixel rows per terminal line using the
// upper half block, top pixel as foreground and bottom as background.
func HalfBlocks(img *pattern.Raster) string {
	var b strings.Builder
	for y := 0; y < img.Height; y += 2 {
		for x := 0; x < img.Width; x++ {
			style := lipgloss.NewStyle().Foreground(hexAt(img, x, y))
			if y+1 < img.Height {
				style = style.Background(hexAt(img, x, y+1))
			}
			b.WriteString(style.Render("▀"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func hexAt(img *pattern.Raster, x, y int) lipgloss.Color {
	r, g, bl := img.RGB(x, y)
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(bl) / 255}
	return lipgloss.Color(c.Hex())
}

// Run starts the viewer on the given pattern.
func Run(start string) error {
	_, err := tea.NewProgram(NewViewer(start), tea.WithAltScreen()).Run()
	return err
}
