package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/caloriecalc/internal/tui/commands"
)

// Update handles messages and updates the model. Frames requested while
// handling msg are scheduled afterwards.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.update(msg)
	next, ok := updated.(Model)
	if !ok || next.preview == nil {
		return updated, cmd
	}
	return next, tea.Batch(cmd, next.preview.sched.Cmd())
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(0, msg.Width-4)
		m.resizePreview()
		return m, nil

	case frameMsg:
		m.preview.sched.Fire(msg)
		return m, nil

	case commands.SnapshotLoadedMsg:
		m.fields = msg.Fields
		m.loaded = true
		m.syncInputs()
		m.preview.SetReport(m.report())
		if msg.Err != nil {
			LogError("load snapshot", msg.Err)
			return m.setError(msg.Err)
		}
		return m, nil

	case commands.UpdateAvailableMsg:
		LogUpdate(msg.Notice)
		m.openUpdateModal(msg.Notice)
		return m, nil

	case commands.ErrMsg:
		LogError("command", msg.Err)
		return m.setError(msg.Err)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusErr = false
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	// Cursor blink and other input messages go to the focused field
	if m.focus < focusPresets {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) setError(err error) (tea.Model, tea.Cmd) {
	m.statusMsg = fmt.Sprintf("Error: %v", err)
	m.statusErr = true
	m.statusTime = time.Now().Add(5 * time.Second)
	return m, tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
