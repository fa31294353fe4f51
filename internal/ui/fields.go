package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/caloriecalc/internal/nutrition"
)

// fieldFlags are the input overrides shared by calc and render.
type fieldFlags struct {
	values [5]string
	preset string
}

func (ff *fieldFlags) register(cmd *cobra.Command) {
	for i, id := range nutrition.AllFields {
		cmd.Flags().StringVar(&ff.values[i], id.Key(), "", id.Label())
	}
	cmd.Flags().StringVar(&ff.preset, "preset", "", "Apply a preset by name or slug (see `caloriecalc presets`)")
}

// apply layers the preset and then the explicit flags over f.
func (ff *fieldFlags) apply(cmd *cobra.Command, f nutrition.Fields) (nutrition.Fields, error) {
	if ff.preset != "" {
		p, ok := nutrition.FindPreset(ff.preset)
		if !ok {
			return f, fmt.Errorf("unknown preset %q: must be one of %s", ff.preset, presetSlugs())
		}
		f = f.ApplyPreset(p)
	}
	for i, id := range nutrition.AllFields {
		if cmd.Flags().Changed(id.Key()) {
			f = f.Set(id, nutrition.ParseNumber(ff.values[i]))
		}
	}
	return f, nil
}

// loadFields reads the saved inputs. A store failure is reported on stderr
// and the defaults are used.
func (a *App) loadFields(cmd *cobra.Command) (nutrition.Fields, error) {
	if err := a.ensureStore(); err != nil {
		return nutrition.Fields{}, err
	}
	f, err := nutrition.LoadSnapshot(context.Background(), a.store)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v (using defaults)\n", err)
	}
	return f, nil
}

func presetSlugs() string {
	ps := nutrition.Presets()
	slugs := make([]string, len(ps))
	for i, p := range ps {
		slugs[i] = p.Slug()
	}
	return strings.Join(slugs, ", ")
}
