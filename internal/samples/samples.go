// Package samples writes the workshop's sample images and their preview.
package samples

import (
	"fmt"
	"io"

	"github.com/san-kum/sphkit/internal/config"
	"github.com/san-kum/sphkit/internal/pattern"
	"github.com/san-kum/sphkit/internal/preview"
	"github.com/san-kum/sphkit/internal/storage"
)

const (
	PreviewFile  = "sample_preview.png"
	PreviewTitle = "Sample Images for Image-to-Hydro Simulations"
)

// Generate renders every catalogue pattern in order, saves each as PNG in
// cfg.OutputDir (created if missing), then saves a 2x2 preview of all of
// them. It returns the written paths, images first and preview last.
func Generate(cfg *config.Config, out io.Writer) ([]string, error) {
	st := storage.New(cfg.OutputDir)
	if err := st.Init(); err != nil {
		return nil, fmt.Errorf("create %s: %w", cfg.OutputDir, err)
	}

	patterns := pattern.All()
	images := make([]*pattern.Raster, len(patterns))
	written := make([]string, 0, len(patterns)+1)

	for i, p := range patterns {
		w, h := cfg.Size(p.Name)
		images[i] = p.Generate(pattern.Params{
			Width:     w,
			Height:    h,
			Arms:      cfg.Spiral.Arms,
			Tightness: cfg.Spiral.Tightness,
		})
		path, err := st.WriteImage(p.File, images[i])
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	fmt.Fprintln(out, "Sample images created:")
	for _, p := range patterns {
		fmt.Fprintf(out, "  • %s - %s\n", p.File, p.Description)
	}

	path, err := savePreview(st, cfg.Preview, patterns, images)
	if err != nil {
		return written, err
	}
	written = append(written, path)
	fmt.Fprintf(out, "  • %s - Preview of all samples\n", PreviewFile)

	return written, nil
}

// savePreview lays the images out on a square 2x2 figure. The figure is
// released whether or not saving succeeds.
func savePreview(st *storage.Store, pc config.PreviewConfig, patterns []pattern.Pattern, images []*pattern.Raster) (string, error) {
	style := preview.WorkshopStyle().WithFigSize(pc.FigSize, pc.FigSize)
	fig := preview.NewFigure(2, 2, style, pc.DPI)
	defer fig.Close()

	fig.Tight = pc.Tight
	fig.Suptitle(PreviewTitle)
	for i, p := range patterns {
		if err := fig.Panel(i, images[i], p.Title); err != nil {
			return "", err
		}
	}

	path := st.Path(PreviewFile)
	if err := fig.Save(path); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
