// Package movie turns a sequence of snapshots into frames and a video.
package movie

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/san-kum/sphkit/internal/metrics"
	"github.com/san-kum/sphkit/internal/pattern"
	"github.com/san-kum/sphkit/internal/snapshot"
	"github.com/san-kum/sphkit/internal/storage"
)

var (
	// ErrTooFewSnapshots indicates fewer than two files matched the pattern.
	ErrTooFewSnapshots = errors.New("movie: not enough snapshots")

	// ErrEncoder indicates the video encoder failed or is not installed.
	ErrEncoder = errors.New("movie: encoder failed")
)

const (
	DefaultFrameDir  = "../videos/frames"
	DefaultFramerate = 10
	DefaultFrameSize = 512
	FramePattern     = "frame_%04d.png"

	frameGlob = "frame_*.png"
)

type Options struct {
	Framerate int
	FrameDir  string
	FrameSize int
	// Encoder is the ffmpeg executable; empty means "ffmpeg".
	Encoder string
	// FramesOnly stops after rendering frames.
	FramesOnly bool
	Load       snapshot.Opener
	Out        io.Writer
}

func (o Options) withDefaults() Options {
	if o.Framerate <= 0 {
		o.Framerate = DefaultFramerate
	}
	if o.FrameDir == "" {
		o.FrameDir = DefaultFrameDir
	}
	if o.FrameSize <= 0 {
		o.FrameSize = DefaultFrameSize
	}
	if o.Encoder == "" {
		o.Encoder = "ffmpeg"
	}
	if o.Out == nil {
		o.Out = io.Discard
	}
	return o
}

// framePalette renders gas as warm on black.
var framePalette = pattern.Tint(1.0, 0.75, 0.35)

// Create renders one surface-density frame per snapshot matching glob,
// in lexical order, then encodes the frames into output.
func Create(ctx context.Context, glob, output string, opts Options) error {
	opts = opts.withDefaults()
	if opts.Load == nil {
		return errors.New("movie: no snapshot loader configured")
	}

	files, err := filepath.Glob(glob)
	if err != nil {
		return fmt.Errorf("movie: bad pattern %q: %w", glob, err)
	}
	sort.Strings(files)
	if len(files) < 2 {
		return fmt.Errorf("%w: %d match %s", ErrTooFewSnapshots, len(files), glob)
	}
	fmt.Fprintf(opts.Out, "Found %d snapshots\n", len(files))

	frames := storage.New(opts.FrameDir)
	if err := frames.Init(); err != nil {
		return err
	}
	// frames from an earlier, longer run would be picked up by the encoder
	if _, err := frames.Remove(frameGlob); err != nil {
		return err
	}

	drift := metrics.NewEnergyDrift()
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap, err := opts.Load(path)
		if err != nil {
			return err
		}
		drift.Observe(snap)
		if _, err := frames.WriteImage(fmt.Sprintf(FramePattern, i), Frame(snap, opts.FrameSize)); err != nil {
			return err
		}
	}
	fmt.Fprintf(opts.Out, "Wrote %d frames to %s\n", len(files), opts.FrameDir)
	fmt.Fprintf(opts.Out, "Max energy drift: %.2e\n", drift.Value())

	if opts.FramesOnly {
		return nil
	}
	return encode(ctx, opts, output)
}

func encode(ctx context.Context, opts Options, output string) error {
	cmd := exec.CommandContext(ctx, opts.Encoder,
		"-y",
		"-framerate", fmt.Sprint(opts.Framerate),
		"-i", filepath.Join(opts.FrameDir, FramePattern),
		"-pix_fmt", "yuv420p",
		output,
	)
	if msg, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: %v: %s", ErrEncoder, err, msg)
	}
	fmt.Fprintf(opts.Out, "Movie saved: %s\n", output)
	return nil
}

// Frame projects particle masses onto the x-y plane of the box and
// renders log surface density as a size x size raster.
func Frame(snap *snapshot.Snapshot, size int) *pattern.Raster {
	sigma := pattern.NewField(size, size)
	if size <= 0 || snap.Dim() < 2 {
		return pattern.Colorize(sigma, nil, framePalette)
	}

	lx, ly := extent(snap)
	for i, p := range snap.Positions {
		col := int(p[0] / lx * float64(size))
		row := int(p[1] / ly * float64(size))
		if col < 0 || row < 0 || col >= size || row >= size {
			continue
		}
		// image rows grow downwards, y grows upwards
		sigma[size-1-row][col] += snap.Masses[i]
	}

	peak := 0.0
	for _, r := range sigma {
		for _, v := range r {
			peak = math.Max(peak, math.Log1p(v))
		}
	}
	if peak > 0 {
		for _, r := range sigma {
			for i, v := range r {
				r[i] = math.Log1p(v) / peak
			}
		}
	}
	return pattern.Colorize(sigma.Clip(0, 1), nil, framePalette)
}

// extent is the box side along x and y. A scalar BoxSize covers both; a
// missing one falls back to the particle extent.
func extent(snap *snapshot.Snapshot) (float64, float64) {
	switch {
	case len(snap.BoxSize) >= 2:
		return snap.BoxSize[0], snap.BoxSize[1]
	case len(snap.BoxSize) == 1:
		return snap.BoxSize[0], snap.BoxSize[0]
	}
	lx, ly := 0.0, 0.0
	for _, p := range snap.Positions {
		lx, ly = math.Max(lx, p[0]), math.Max(ly, p[1])
	}
	return math.Nextafter(lx, math.Inf(1)), math.Nextafter(ly, math.Inf(1))
}
