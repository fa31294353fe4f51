package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/caloriecalc/internal/config"
	"github.com/javiermolinar/caloriecalc/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  caloriecalc config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.UI.PreviewScale = promptFloat(reader, out, "Preview scale (0-1]", cfg.UI.PreviewScale)
	cfg.UI.FPS = promptInt(reader, out, "Animation FPS", cfg.UI.FPS)
	cfg.Render.Width = promptFloat(reader, out, "PNG width", cfg.Render.Width)
	cfg.Render.Height = promptFloat(reader, out, "PNG height", cfg.Render.Height)
	cfg.Render.DPR = promptFloat(reader, out, "PNG device pixel ratio", cfg.Render.DPR)
	cfg.Render.DurationMS = promptInt(reader, out, "Animation duration (ms)", cfg.Render.DurationMS)
	cfg.Render.Output = promptValue(reader, out, "PNG output file", cfg.Render.Output)
	cfg.Update.Enabled = promptBool(reader, out, "Check for updates", cfg.Update.Enabled)
	if cfg.Update.Enabled {
		cfg.Update.IntervalSeconds = promptInt(reader, out, "Update check interval (s)", cfg.Update.IntervalSeconds)
	}

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[storage]")
	fmt.Fprintf(out, "  db_path          = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme            = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  preview_scale    = %g\n", cfg.UI.PreviewScale)
	fmt.Fprintf(out, "  fps              = %d\n", cfg.UI.FPS)
	fmt.Fprintln(out, "\n[render]")
	fmt.Fprintf(out, "  width            = %g\n", cfg.Render.Width)
	fmt.Fprintf(out, "  height           = %g\n", cfg.Render.Height)
	fmt.Fprintf(out, "  dpr              = %g\n", cfg.Render.DPR)
	fmt.Fprintf(out, "  duration_ms      = %d\n", cfg.Render.DurationMS)
	fmt.Fprintf(out, "  output           = %s\n", cfg.Render.Output)
	fmt.Fprintln(out, "\n[update]")
	fmt.Fprintf(out, "  enabled          = %t\n", cfg.Update.Enabled)
	fmt.Fprintf(out, "  interval_seconds = %d\n", cfg.Update.IntervalSeconds)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptFloat(reader *bufio.Reader, out io.Writer, label string, current float64) float64 {
	for {
		value := promptValue(reader, out, label, strconv.FormatFloat(current, 'f', -1, 64))
		v, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return v
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		v, err := strconv.Atoi(value)
		if err == nil {
			return v
		}
		fmt.Fprintf(out, "  Invalid integer %q\n", value)
	}
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	for {
		value := promptValue(reader, out, label, strconv.FormatBool(current))
		v, err := strconv.ParseBool(value)
		if err == nil {
			return v
		}
		fmt.Fprintf(out, "  Invalid value %q (true/false)\n", value)
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	if !theme.IsAvailable(current) {
		current = theme.Available()[0]
	}
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
