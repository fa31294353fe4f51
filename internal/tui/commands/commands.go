// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/caloriecalc/internal/nutrition"
	"github.com/javiermolinar/caloriecalc/internal/render"
	"github.com/javiermolinar/caloriecalc/internal/update"
)

// SnapshotLoadedMsg is sent when the persisted fields are read.
// Fields holds the defaults when Err is set.
type SnapshotLoadedMsg struct {
	Fields nutrition.Fields
	Err    error
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// UpdateAvailableMsg is sent when a newer binary is installed.
type UpdateAvailableMsg struct {
	Notice update.Notice
}

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// LoadSnapshot reads the last saved fields from store.
func LoadSnapshot(store nutrition.Store) tea.Cmd {
	return func() tea.Msg {
		f, err := nutrition.LoadSnapshot(context.Background(), store)
		return SnapshotLoadedMsg{Fields: f, Err: err}
	}
}

// SaveSnapshot queues f on w and returns a command that writes it. The
// sequence number is taken when the command is built, so commands from
// older edits never overwrite newer ones.
func SaveSnapshot(w *nutrition.SnapshotWriter, f nutrition.Fields) tea.Cmd {
	seq := w.Queue(f)
	return func() tea.Msg {
		if err := w.Write(context.Background(), seq); err != nil {
			return ErrMsg{Err: err}
		}
		return nil
	}
}

// WaitForUpdate blocks until the checker reports a newer binary.
// A closed channel yields no message.
func WaitForUpdate(notices <-chan update.Notice) tea.Cmd {
	if notices == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-notices
		if !ok {
			return nil
		}
		return UpdateAvailableMsg{Notice: n}
	}
}

// ExportPNG writes the fully drawn report to path.
func ExportPNG(path string, r render.Report, w, h, dpr float64) tea.Cmd {
	return func() tea.Msg {
		if err := render.RenderFile(path, r, w, h, dpr, 1); err != nil {
			return ErrMsg{Err: err}
		}
		return StatusMsgCmd{Msg: fmt.Sprintf("Saved %s", path)}
	}
}

// CopyText puts text on the system clipboard.
func CopyText(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied report to clipboard"}
	}
}
