package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/caloriecalc/internal/render"
)

func (a *App) renderCmd() *cobra.Command {
	var (
		ff       fieldFlags
		output   string
		width    float64
		height   float64
		dpr      float64
		progress float64
		frames   string
		fps      int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the report chart to PNG",
		Long: `Render the report chart for the saved inputs to a PNG file.

With --frames, the eased animation is written as numbered PNG files
into the given directory instead.`,
		Example: `  caloriecalc render -o banana.png --preset banana
  caloriecalc render --width 800 --height 500 --dpr 1
  caloriecalc render --frames ./frames --fps 60`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.loadFields(cmd)
			if err != nil {
				return err
			}
			f, err = ff.apply(cmd, f)
			if err != nil {
				return err
			}
			r := render.NewReport(f)
			w := cmd.OutOrStdout()

			if frames != "" {
				if fps < 1 || fps > render.MaxFPS {
					return fmt.Errorf("fps must be between 1 and %d, got %d", render.MaxFPS, fps)
				}
				paths, err := render.ExportFrames(cmd.Context(), frames, r, render.FrameOptions{
					Width:    width,
					Height:   height,
					DPR:      dpr,
					Duration: a.config.Render.Duration(),
					FPS:      fps,
				})
				if err != nil {
					return fmt.Errorf("exporting frames: %w", err)
				}
				fmt.Fprintf(w, "Wrote %d frames to %s\n", len(paths), frames)
				return nil
			}

			cssW, cssH := render.FitSize(width, height)
			if err := render.RenderFile(output, r, width, height, dpr, progress); err != nil {
				return fmt.Errorf("rendering %s: %w", output, err)
			}
			pw, ph := render.BackingSize(cssW, cssH, dpr)
			fmt.Fprintf(w, "Saved %s (%dx%d px)\n", output, pw, ph)
			return nil
		},
	}

	ff.register(cmd)
	cfg := a.config.Render
	cmd.Flags().StringVarP(&output, "output", "o", cfg.Output, "Output PNG file")
	cmd.Flags().Float64Var(&width, "width", cfg.Width, "Width in CSS pixels (min 320)")
	cmd.Flags().Float64Var(&height, "height", cfg.Height, "Height in CSS pixels (min 280)")
	cmd.Flags().Float64Var(&dpr, "dpr", cfg.DPR, "Device pixel ratio")
	cmd.Flags().Float64Var(&progress, "progress", 1, "Animation progress to draw, 0 to 1")
	cmd.Flags().StringVar(&frames, "frames", "", "Write the animation frames into this directory")
	cmd.Flags().IntVar(&fps, "fps", a.config.UI.FPS, "Frames per second for --frames")

	return cmd
}
