package tui

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gg"

	"github.com/javiermolinar/caloriecalc/internal/nutrition"
	"github.com/javiermolinar/caloriecalc/internal/update"
)

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "caloriecalc-debug.log"

var (
	debugLog  = slog.New(slog.DiscardHandler)
	debugFile *os.File
)

// InitDebugLogger initializes the debug logger if debug mode is enabled.
// The same logger receives the drawing library's diagnostics.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = slog.New(slog.DiscardHandler)
		return nil
	}

	// Create log file in current directory with fixed name (easy to find)
	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	debugFile = f
	debugLog = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	gg.SetLogger(debugLog)

	debugLog.Info("DEBUG_START", "log_file", DebugLogPath)
	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugFile == nil {
		return
	}
	debugLog.Info("DEBUG_END")
	gg.SetLogger(nil)
	_ = debugFile.Close()
	debugFile = nil
	debugLog = slog.New(slog.DiscardHandler)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	debugLog.Debug("KEY_PRESS", "key", msg.String(), "type", msg.Type.String())
}

// LogFieldChange logs an edited input and the number it was read as.
func LogFieldChange(id nutrition.FieldID, raw string, value float64) {
	debugLog.Debug("FIELD_CHANGE", "field", id.Key(), "raw", raw, "value", value)
}

// LogPresetApplied logs a preset selection.
func LogPresetApplied(p nutrition.Preset) {
	debugLog.Info("PRESET_APPLIED", "preset", p.Slug())
}

// LogAnimation logs animation lifecycle events.
func LogAnimation(event string, progress float64) {
	debugLog.Debug("ANIMATION", "event", event, "progress", progress)
}

// LogResize logs a preview surface resize.
func LogResize(cols, rows int, dpr float64) {
	debugLog.Debug("RESIZE", "cols", cols, "rows", rows, "dpr", dpr)
}

// LogUpdate logs a new-version notice.
func LogUpdate(n update.Notice) {
	debugLog.Info("UPDATE_AVAILABLE", "path", n.Path, "mod_time", n.ModTime)
}

// LogError logs an error.
func LogError(context string, err error) {
	debugLog.Error("ERROR", "context", context, "error", err.Error())
}
