package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/caloriecalc/internal/config"
	"github.com/javiermolinar/caloriecalc/internal/db"
	"github.com/javiermolinar/caloriecalc/internal/nutrition"
	"github.com/javiermolinar/caloriecalc/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store     nutrition.Store
	ownsStore bool // store was opened here and must be closed
	config    *config.Config
	root      *cobra.Command
	debug     bool // Enable debug logging
	noPersist bool // Keep the snapshot in memory only
}

// NewApp creates a new CLI application with the given store and config.
// A nil store opens the configured database on first use.
func NewApp(store nutrition.Store, cfg *config.Config) *App {
	a := &App{store: store, config: cfg}

	a.root = &cobra.Command{
		Use:   "caloriecalc",
		Short: "A nutrition calculator for the terminal",
		Long: `caloriecalc computes the calories and macronutrients of a portion of food.

Enter the portion weight and the per-100g values from the label. The
report compares the label's calories with the energy implied by fat,
carbs and protein, and draws an animated chart of the split.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			store := a.store
			if a.noPersist {
				store = nutrition.NewMemoryStore()
			}
			return tui.RunWithDebug(store, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+tui.DebugLogPath+")")
	a.root.PersistentFlags().BoolVar(&a.noPersist, "no-persist", false, "Do not read or write the saved inputs")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.calcCmd())
	a.root.AddCommand(a.presetsCmd())
	a.root.AddCommand(a.renderCmd())
	a.root.AddCommand(a.resetCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "caloriecalc %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureStore opens the snapshot store unless one is already set.
func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}
	if a.noPersist {
		a.store = nutrition.NewMemoryStore()
		return nil
	}
	s, err := db.Open(a.config.Storage.DBPath)
	if err != nil {
		return err
	}
	a.store = s
	a.ownsStore = true
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the store if the app opened it.
func (a *App) Close() error {
	if !a.ownsStore || a.store == nil {
		return nil
	}
	a.ownsStore = false
	return a.store.Close()
}
