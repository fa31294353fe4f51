package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/caloriecalc/internal/nutrition"
	"github.com/javiermolinar/caloriecalc/internal/render"
)

func (a *App) calcCmd() *cobra.Command {
	var (
		ff      fieldFlags
		save    bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Print the nutrition report",
		Long: `Print the nutrition report for the saved inputs.

A preset replaces the per-100g values; explicit flags override both.
Non-numeric values count as 0. Inputs are saved only with --save.`,
		Example: `  caloriecalc calc
  caloriecalc calc --preset banana --weight 120
  caloriecalc calc --weight 200 --cal100 400 --fat100 1.8 --carb100 64 --prot100 7.4 --save`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			f, err := a.loadFields(cmd)
			if err != nil {
				return err
			}
			f, err = ff.apply(cmd, f)
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), f)

			if save {
				if err := nutrition.SaveSnapshot(context.Background(), a.store, f); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatMuted("\nInputs saved."))
			}
			return nil
		},
	}

	ff.register(cmd)
	cmd.Flags().BoolVar(&save, "save", false, "Save the resulting inputs")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

// printReport writes the labelled report for f.
func printReport(w io.Writer, f nutrition.Fields) {
	l := render.NewReport(f).Labels()
	width := min(termWidth(), 48)

	fmt.Fprintln(w, formatHeader(l.Title))
	fmt.Fprintln(w, formatMuted(l.Weight))
	fmt.Fprintln(w, formatMuted(strings.Repeat("─", width)))
	for _, r := range l.Rows {
		fmt.Fprintf(w, "%-10s %s\n", r.Label, formatValue(r.Value))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, formatHeader(l.BreakdownTitle))
	for i, line := range l.Breakdown {
		fmt.Fprintln(w, "  "+formatMacro(i, line))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, formatHeader(l.MacroTotal))
	fmt.Fprintln(w, formatDelta(l.Delta, l.DeltaOver))
}
