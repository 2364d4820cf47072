//go:build hdf5

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sphkit/internal/estimate"
	"github.com/san-kum/sphkit/internal/metrics"
	"github.com/san-kum/sphkit/internal/movie"
	"github.com/san-kum/sphkit/internal/snapshot"
	"github.com/san-kum/sphkit/internal/snapshot/h5"
)

var (
	histBins int
	jsonOut  string
	fraction float64

	framerate  int
	frameDir   string
	frameSize  int
	encoder    string
	framesOnly bool
)

func snapshotCommands() []*cobra.Command {
	snapshotCmd := &cobra.Command{
		Use:   "snapshot [file]",
		Short: "summarise a SWIFT snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  showSnapshot,
	}
	snapshotCmd.Flags().IntVar(&histBins, "bins", 30, "histogram bins")
	snapshotCmd.Flags().StringVar(&jsonOut, "json", "", "write the summary as JSON to a file (- for stdout)")

	softeningCmd := &cobra.Command{
		Use:   "softening [file]",
		Short: "suggest a gravitational softening length",
		Args:  cobra.ExactArgs(1),
		RunE:  suggestSoftening,
	}
	softeningCmd.Flags().Float64Var(&fraction, "fraction", estimate.DefaultSofteningFraction, "fraction of the mean separation")

	movieCmd := &cobra.Command{
		Use:   "movie [glob] [output]",
		Short: "render snapshots into a movie",
		Args:  cobra.ExactArgs(2),
		RunE:  makeMovie,
	}
	movieCmd.Flags().IntVar(&framerate, "framerate", movie.DefaultFramerate, "frames per second")
	movieCmd.Flags().StringVar(&frameDir, "frames", movie.DefaultFrameDir, "frame directory")
	movieCmd.Flags().IntVar(&frameSize, "size", movie.DefaultFrameSize, "frame size in pixels")
	movieCmd.Flags().StringVar(&encoder, "encoder", "ffmpeg", "encoder executable")
	movieCmd.Flags().BoolVar(&framesOnly, "frames-only", false, "render frames without encoding")

	return []*cobra.Command{snapshotCmd, softeningCmd, movieCmd}
}

func showSnapshot(cmd *cobra.Command, args []string) error {
	snap, err := h5.Open(args[0])
	if err != nil {
		return err
	}
	sum := metrics.Summarise(args[0], snap)
	if jsonOut != "" {
		return sum.ExportJSON(jsonOut)
	}
	out := cmd.OutOrStdout()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "file\t%s\n", sum.File)
	fmt.Fprintf(w, "time\t%g\n", sum.Time)
	fmt.Fprintf(w, "box size\t%v\n", sum.BoxSize)
	fmt.Fprintf(w, "particles\t%d\n", sum.Particles)
	fmt.Fprintf(w, "dimensions\t%d\n", sum.Dim)
	fmt.Fprintf(w, "kinetic energy\t%.4g\n", sum.Kinetic)
	fmt.Fprintf(w, "thermal energy\t%.4g\n", sum.Thermal)
	w.Flush()

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tMIN\tMAX\tMEAN\tSTD")
	for _, name := range []string{snapshot.Masses, snapshot.InternalEnergy, snapshot.Density, snapshot.SmoothingLength} {
		f, ok := sum.Fields[name]
		if !ok {
			fmt.Fprintf(w, "%s\t-\t-\t-\t-\n", name)
			continue
		}
		fmt.Fprintf(w, "%s\t%.4g\t%.4g\t%.4g\t%.4g\n", name, f.Min, f.Max, f.Mean, f.Std)
	}
	w.Flush()

	if snap.Count() > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(histogram(snap.InternalEnergy, histBins),
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("internal energy distribution"),
		))
	}
	return nil
}

func suggestSoftening(cmd *cobra.Command, args []string) error {
	snap, ok := snapshot.TryLoad(h5.Open, args[0], cmd.ErrOrStderr())
	if !ok {
		return fmt.Errorf("no softening for %s", args[0])
	}
	eps, err := estimate.Softening(snap.Positions, fraction)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Suggested softening length: %.4g\n", eps)
	return nil
}

func makeMovie(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return movie.Create(ctx, args[0], args[1], movie.Options{
		Framerate:  framerate,
		FrameDir:   frameDir,
		FrameSize:  frameSize,
		Encoder:    encoder,
		FramesOnly: framesOnly,
		Load:       h5.Open,
		Out:        cmd.OutOrStdout(),
	})
}
