package preview

// Style is the subset of plot settings the figure renderer honours.
// Font sizes are in points; FigSize is in inches.
type Style struct {
	FigSize         [2]float64
	FontSize        float64
	AxesLabelSize   float64
	AxesTitleSize   float64
	TickLabelSize   float64
	LegendFontSize  float64
	FigureTitleSize float64
	LineWidth       float64
	MarkerSize      float64
	Grid            bool
	GridAlpha       float64
}

// DefaultStyle matches a stock plotting setup.
func DefaultStyle() Style {
	return Style{
		FigSize:         [2]float64{6.4, 4.8},
		FontSize:        10,
		AxesLabelSize:   10,
		AxesTitleSize:   12,
		TickLabelSize:   10,
		LegendFontSize:  10,
		FigureTitleSize: 12,
		LineWidth:       1.5,
		MarkerSize:      6,
		GridAlpha:       1.0,
	}
}

// WorkshopStyle is the shared look of every workshop notebook.
func WorkshopStyle() Style {
	return Style{
		FigSize:         [2]float64{12, 8},
		FontSize:        12,
		AxesLabelSize:   12,
		AxesTitleSize:   14,
		TickLabelSize:   11,
		LegendFontSize:  11,
		FigureTitleSize: 16,
		LineWidth:       2,
		MarkerSize:      6,
		Grid:            true,
		GridAlpha:       0.3,
	}
}

// WithFigSize returns a copy of s sized w x h inches.
func (s Style) WithFigSize(w, h float64) Style {
	s.FigSize = [2]float64{w, h}
	return s
}

// Settings lists the style as key/value pairs for display.
func (s Style) Settings() [][2]string {
	return [][2]string{
		{"figure.figsize", fmtPair(s.FigSize)},
		{"font.size", fmtFloat(s.FontSize)},
		{"axes.labelsize", fmtFloat(s.AxesLabelSize)},
		{"axes.titlesize", fmtFloat(s.AxesTitleSize)},
		{"xtick.labelsize", fmtFloat(s.TickLabelSize)},
		{"ytick.labelsize", fmtFloat(s.TickLabelSize)},
		{"legend.fontsize", fmtFloat(s.LegendFontSize)},
		{"figure.titlesize", fmtFloat(s.FigureTitleSize)},
		{"lines.linewidth", fmtFloat(s.LineWidth)},
		{"lines.markersize", fmtFloat(s.MarkerSize)},
		{"axes.grid", fmtBool(s.Grid)},
		{"grid.alpha", fmtFloat(s.GridAlpha)},
	}
}
