package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/caloriecalc/internal/nutrition"
	"github.com/javiermolinar/caloriecalc/internal/tui/commands"
)

// keyMap defines the TUI key bindings. It implements help.KeyMap.
type keyMap struct {
	Next        key.Binding
	Prev        key.Binding
	PresetLeft  key.Binding
	PresetRight key.Binding
	PresetPick  key.Binding
	Apply       key.Binding
	Export      key.Binding
	Copy        key.Binding
	Help        key.Binding
	Quit        key.Binding

	Accept  key.Binding
	Decline key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		PresetLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous preset"),
		),
		PresetRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next preset"),
		),
		PresetPick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "pick preset"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply preset"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save png"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy report"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Accept: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "update"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "later"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Export, k.Copy, k.Help, k.Quit}
}

// FullHelp returns the bindings shown when help is expanded.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.PresetLeft, k.PresetRight, k.PresetPick, k.Apply},
		{k.Export, k.Copy},
		{k.Help, k.Quit},
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.mode == ModeModal {
		return m.handleModalKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.Prev):
		return m.setFocus(m.focus - 1)
	case key.Matches(msg, m.keys.Export):
		r := m.config.Render
		return m, commands.ExportPNG(r.Output, m.report(), r.Width, r.Height, r.DPR)
	case key.Matches(msg, m.keys.Copy):
		return m, commands.CopyText(m.reportText())
	}

	if m.focus == focusPresets {
		return m.handlePresetKeys(msg)
	}
	return m.handleInputKeys(msg)
}

// handlePresetKeys handles keys while the preset row is focused.
func (m Model) handlePresetKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.presets)
	if n == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.PresetLeft):
		m.preset = (m.preset - 1 + n) % n
	case key.Matches(msg, m.keys.PresetRight):
		m.preset = (m.preset + 1) % n
	case key.Matches(msg, m.keys.PresetPick):
		idx := int(msg.Runes[0] - '1')
		if idx < n {
			m.preset = idx
		}
	case key.Matches(msg, m.keys.Apply):
		return m.applyPreset(m.presets[m.preset])
	}
	return m, nil
}

// handleInputKeys forwards a key to the focused input and recalculates
// when its value changed.
func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := nutrition.AllFields[m.focus]
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	raw := m.inputs[m.focus].Value()
	if raw == before {
		return m, cmd
	}
	v := nutrition.ParseNumber(raw)
	LogFieldChange(id, raw, v)
	m.fields = m.fields.Set(id, v)
	return m, tea.Batch(cmd, m.recalculate())
}

// handleModalKeys handles keys while the update modal is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Accept):
		m.reload = m.notice.Path
		return m, tea.Quit
	case key.Matches(msg, m.keys.Decline):
		m.closeModal()
		return m, commands.WaitForUpdate(m.updates)
	}
	return m, nil
}
