package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// MaxFPS is the highest frame rate Timeline honours.
const MaxFPS = 120

// Timeline returns the eased progress of every frame an animation of length
// d produces at fps frames per second. The last value is always 1.
// fps is clamped to MaxFPS.
func Timeline(d time.Duration, fps int) []float64 {
	if fps <= 0 {
		fps = 30
	}
	fps = min(fps, MaxFPS)
	step := time.Second / time.Duration(fps)
	sched := NewStepScheduler(time.Time{})

	var frames []float64
	a := NewAnimator(sched, d, func(p float64) {
		frames = append(frames, p)
	})
	a.Start()
	// The first callback anchors the clock, so it runs at progress 0.
	sched.Advance(0)
	maxFrames := int(d/step) + 2
	sched.RunUntilIdle(step, maxFrames)
	return frames
}

// FrameOptions controls an animation export.
type FrameOptions struct {
	Width, Height float64
	DPR           float64
	Duration      time.Duration
	FPS           int
	Workers       int
}

// ExportFrames renders the animation of r into dir as frame-NNN.png files
// and returns the written paths in frame order.
func ExportFrames(ctx context.Context, dir string, r Report, opts FrameOptions) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frame directory: %w", err)
	}
	timeline := Timeline(opts.Duration, opts.FPS)
	paths := make([]string, len(timeline))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, p := range timeline {
		path := filepath.Join(dir, fmt.Sprintf("frame-%03d.png", i))
		paths[i] = path
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return renderFile(path, r, opts.Width, opts.Height, opts.DPR, p)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// RenderFile draws r at progress onto a fresh surface and writes it as PNG.
func RenderFile(path string, r Report, w, h, dpr, progress float64) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	return renderFile(path, r, w, h, dpr, progress)
}

func renderFile(path string, r Report, w, h, dpr, progress float64) error {
	s, err := NewSurface(nil)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Resize(w, h, dpr); err != nil {
		return err
	}
	if err := s.Render(r, progress); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return s.SavePNG(path)
}
