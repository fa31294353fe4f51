package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/caloriecalc/internal/nutrition"
)

func (a *App) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the food presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, formatHeader(fmt.Sprintf("%-18s %8s %6s %6s %8s  %s", "Preset", "kcal", "fat", "carbs", "protein", "slug")))
			for _, p := range nutrition.Presets() {
				fmt.Fprintf(w, "%-18s %8s %6s %6s %8s  %s\n",
					p.Name,
					nutrition.FormatNumber(p.Cal100),
					nutrition.FormatNumber(p.Fat100),
					nutrition.FormatNumber(p.Carb100),
					nutrition.FormatNumber(p.Prot100),
					formatMuted(p.Slug()),
				)
			}
			fmt.Fprintln(w, formatMuted("\nValues are per 100 g."))
			return nil
		},
	}
}
