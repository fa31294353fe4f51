package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/caloriecalc/internal/nutrition"
)

// deleter is implemented by stores that can remove a key.
type deleter interface {
	Delete(ctx context.Context, key string) error
}

func (a *App) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved inputs",
		Long: `Remove the saved inputs so the next start shows the default values.

Example:
  caloriecalc reset`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			ctx := context.Background()
			if d, ok := a.store.(deleter); ok {
				if err := d.Delete(ctx, nutrition.SnapshotKey); err != nil {
					return fmt.Errorf("deleting snapshot: %w", err)
				}
			} else if err := nutrition.SaveSnapshot(ctx, a.store, nutrition.Defaults()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved inputs cleared.")
			return nil
		},
	}
}
