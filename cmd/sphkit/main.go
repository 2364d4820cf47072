package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/sphkit/internal/config"
	"github.com/san-kum/sphkit/internal/estimate"
	"github.com/san-kum/sphkit/internal/export"
	"github.com/san-kum/sphkit/internal/pattern"
	"github.com/san-kum/sphkit/internal/samples"
	"github.com/san-kum/sphkit/internal/storage"
	"github.com/san-kum/sphkit/internal/viz"
)

var (
	configFile string
	cfg        = config.DefaultConfig()

	outDir    string
	width     int
	height    int
	arms      int
	tightness float64
	dpi       int
	threshold int
	svgOut    string

	profileBins int

	boxSize float64
	gravity bool
)

// main runs the sphkit CLI and exits with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the sphkit commands and flags. With no subcommand
// it prints the toolkit banner.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "sphkit",
		Short:             "SPH workshop helpers",
		SilenceUsage:      true,
		RunE:              showInfo,
		PersistentPreRunE: loadConfig,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")

	samplesCmd := &cobra.Command{
		Use:   "samples",
		Short: "create the sample images and preview",
		Args:  cobra.NoArgs,
		RunE:  createSamples,
	}
	samplesCmd.Flags().StringVar(&outDir, "out", config.DefaultOutputDir, "output directory")
	samplesCmd.Flags().IntVar(&dpi, "dpi", config.DefaultDPI, "preview resolution")

	renderCmd := &cobra.Command{
		Use:   "render [pattern]",
		Short: "render one pattern to PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  renderPattern,
	}
	renderCmd.Flags().StringVar(&outDir, "out", config.DefaultOutputDir, "output directory")
	renderCmd.Flags().IntVar(&width, "width", 0, "image width (pattern default when 0)")
	renderCmd.Flags().IntVar(&height, "height", 0, "image height (pattern default when 0)")
	renderCmd.Flags().IntVar(&arms, "arms", pattern.DefaultArms, "spiral arms")
	renderCmd.Flags().Float64Var(&tightness, "tightness", pattern.DefaultTightness, "spiral winding")
	renderCmd.Flags().IntVar(&threshold, "threshold", 64, "luminance threshold for feature stats")
	renderCmd.Flags().StringVar(&svgOut, "svg", "", "also write the thresholded pattern as braille-dot SVG")

	viewCmd := &cobra.Command{
		Use:   "view [pattern]",
		Short: "browse the patterns in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := "spiral"
			if len(args) == 1 {
				if _, err := pattern.Lookup(args[0]); err != nil {
					return err
				}
				start = args[0]
			}
			return viz.Run(start)
		},
	}

	profileCmd := &cobra.Command{
		Use:   "profile [pattern]",
		Short: "plot a pattern's radial brightness profile",
		Args:  cobra.ExactArgs(1),
		RunE:  plotProfile,
	}
	profileCmd.Flags().IntVar(&profileBins, "bins", 40, "radius bins")
	profileCmd.Flags().StringVar(&svgOut, "svg", "", "also write the profile as SVG")

	setupCmd := &cobra.Command{
		Use:   "setup",
		Short: "create the workshop directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.EnsureDirs(cfg.Dirs, cmd.OutOrStdout())
		},
	}

	estimateCmd := &cobra.Command{
		Use:   "estimate [particles]",
		Short: "estimate simulation runtime",
		Args:  cobra.ExactArgs(1),
		RunE:  estimateRuntime,
	}
	estimateCmd.Flags().Float64Var(&boxSize, "box", 1.0, "box size")
	estimateCmd.Flags().BoolVar(&gravity, "gravity", true, "include self-gravity (--gravity=false for hydro only)")

	scalesCmd := &cobra.Command{
		Use:   "scales [name]",
		Short: "show typical problem scales",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showScales,
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "show toolkit information",
		Args:  cobra.NoArgs,
		RunE:  showInfo,
	}

	rootCmd.AddCommand(samplesCmd, renderCmd, viewCmd, profileCmd, setupCmd, estimateCmd, scalesCmd, infoCmd)
	// snapshot, softening and movie read HDF5 and need the hdf5 build tag
	rootCmd.AddCommand(snapshotCommands()...)

	return rootCmd
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if configFile == "" {
		return nil
	}
	c, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = c
	return nil
}

func createSamples(cmd *cobra.Command, args []string) error {
	// CLI flags override config
	if cmd.Flags().Changed("out") || configFile == "" {
		cfg.OutputDir = outDir
	}
	if cmd.Flags().Changed("dpi") {
		cfg.Preview.DPI = dpi
	}
	_, err := samples.Generate(cfg, cmd.OutOrStdout())
	return err
}

func renderPattern(cmd *cobra.Command, args []string) error {
	p, err := pattern.Lookup(args[0])
	if err != nil {
		return err
	}

	w, h := cfg.Size(p.Name)
	params := pattern.Params{Width: w, Height: h, Arms: cfg.Spiral.Arms, Tightness: cfg.Spiral.Tightness}
	if cmd.Flags().Changed("width") {
		params.Width = width
	}
	if cmd.Flags().Changed("height") {
		params.Height = height
	}
	if cmd.Flags().Changed("arms") {
		params.Arms = arms
	}
	if cmd.Flags().Changed("tightness") {
		params.Tightness = tightness
	}
	dir := cfg.OutputDir
	if cmd.Flags().Changed("out") || configFile == "" {
		dir = outDir
	}

	st := storage.New(dir)
	if err := st.Init(); err != nil {
		return err
	}
	img := p.Generate(params)
	path, err := st.WriteImage(p.File, img)
	if err != nil {
		return err
	}

	mask := pattern.Mask(img, uint8(threshold))
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s written to %s\n", p.Title, path)
	fmt.Fprintln(out, viz.Metric("size", fmt.Sprintf("%dx%d", img.Width, img.Height)))
	fmt.Fprintln(out, viz.Metric("lit fraction", fmt.Sprintf("%.3f", pattern.LitFraction(img))))
	fmt.Fprintln(out, viz.Metric("features", strconv.Itoa(len(pattern.Components(mask)))))
	fmt.Fprintln(out, viz.Metric("profile", viz.SparklineChart(pattern.RadialProfile(img, 24), 24)))

	if svgOut != "" {
		if err := export.WriteFile(svgOut, export.CanvasToSVG(viz.FromMask(mask), 4, "#ffe9a8")); err != nil {
			return err
		}
		fmt.Fprintf(out, "SVG written to %s\n", svgOut)
	}
	return nil
}

func plotProfile(cmd *cobra.Command, args []string) error {
	if profileBins < 1 {
		return fmt.Errorf("bins must be positive, got %d", profileBins)
	}
	p, err := pattern.Lookup(args[0])
	if err != nil {
		return err
	}
	w, h := cfg.Size(p.Name)
	img := p.Generate(pattern.Params{Width: w, Height: h, Arms: cfg.Spiral.Arms, Tightness: cfg.Spiral.Tightness})

	profile := pattern.RadialProfile(img, profileBins)
	graph := asciigraph.Plot(profile,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption(p.Title+": mean luminance vs radius"),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)

	if svgOut != "" {
		return export.WriteFile(svgOut, export.ProfileToSVG(profile, 600, 300, "#00ccff"))
	}
	return nil
}

// histogram counts v into n equal-width bins spanning its range.
func histogram(v []float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	sorted := append([]float64(nil), v...)
	sort.Float64s(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if hi == lo {
		hi = lo + 1
	}
	dividers := floats.Span(make([]float64, n+1), lo, hi)
	// stat.Histogram excludes the upper edge
	dividers[n] = hi + (hi-lo)*1e-9
	return stat.Histogram(nil, dividers, sorted, nil)
}

func estimateRuntime(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("invalid particle count: %s", args[0])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Estimated runtime: %s\n", estimate.Runtime(n, boxSize, gravity))
	return nil
}

func showScales(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	names := config.ListScales()
	if len(args) == 1 {
		if _, ok := config.GetScale(args[0]); !ok {
			return fmt.Errorf("unknown scale: %s (available: %v)", args[0], names)
		}
		names = args[:1]
	}

	for _, name := range names {
		s, _ := config.GetScale(name)
		fmt.Fprintln(out, viz.Title.Render(name))
		if len(s.BoxSize) > 0 {
			fmt.Fprintln(out, "  "+viz.Metric("box size", fmt.Sprint(s.BoxSize)))
		}
		if s.VelocityShear != 0 {
			fmt.Fprintln(out, "  "+viz.Metric("velocity shear", fmt.Sprint(s.VelocityShear)))
		}
		if s.DensityContrast != 0 {
			fmt.Fprintln(out, "  "+viz.Metric("density contrast", fmt.Sprint(s.DensityContrast)))
		}
		if s.ExplosionEnergy != 0 {
			fmt.Fprintln(out, "  "+viz.Metric("explosion energy", fmt.Sprint(s.ExplosionEnergy)))
		}
		if s.BackgroundRho != 0 {
			fmt.Fprintln(out, "  "+viz.Metric("background density", fmt.Sprint(s.BackgroundRho)))
		}
		if s.ExplosionRadius != 0 {
			fmt.Fprintln(out, "  "+viz.Metric("explosion radius", fmt.Sprint(s.ExplosionRadius)))
		}
		if s.TargetParticles != 0 {
			fmt.Fprintln(out, "  "+viz.Metric("target particles", strconv.Itoa(s.TargetParticles)))
		}
	}
	return nil
}

func showInfo(cmd *cobra.Command, args []string) error {
	var b strings.Builder
	b.WriteString(viz.Metric("version", config.Version) + "\n")
	b.WriteString(viz.Metric("author", config.Author) + "\n")
	b.WriteString(viz.Metric("gravity constant", fmt.Sprint(config.GravityConst)) + "\n")
	b.WriteString(viz.Metric("adiabatic index", fmt.Sprintf("%.4f", config.AdiabaticIndex)) + "\n")
	b.WriteString(viz.Metric("patterns", strings.Join(pattern.Names(), ", ")))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.BoxWithTitle(viz.GradientText("sphkit", "#00ccff", "#ff66cc"), b.String(), 56))
	fmt.Fprintln(out, viz.Separator(58))
	fmt.Fprintln(out, viz.KeyHint.Render("run `sphkit samples` to create the workshop images"))
	return nil
}
