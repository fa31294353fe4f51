// Package tui provides the terminal user interface for caloriecalc.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/caloriecalc/internal/config"
	"github.com/javiermolinar/caloriecalc/internal/db"
	"github.com/javiermolinar/caloriecalc/internal/nutrition"
	"github.com/javiermolinar/caloriecalc/internal/render"
	"github.com/javiermolinar/caloriecalc/internal/tui/commands"
	"github.com/javiermolinar/caloriecalc/internal/tui/theme"
	"github.com/javiermolinar/caloriecalc/internal/update"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone   ModalType = iota
	ModalUpdate           // New binary installed
)

// focusPresets is the focus index of the preset row, after the five inputs.
const focusPresets = 5

const focusCount = focusPresets + 1

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  nutrition.Store
	saver  *nutrition.SnapshotWriter
	config *config.Config

	// Theme and styles
	theme   *theme.Theme
	styles  *Styles
	keys    keyMap
	help    help.Model
	profile termenv.Profile

	// Form state
	inputs  [focusPresets]textinput.Model
	presets []nutrition.Preset
	fields  nutrition.Fields
	focus   int
	preset  int
	loaded  bool // Snapshot read; saves are enabled from here on

	// Animated preview, shared by model copies
	preview *preview

	// Modal state
	mode      Mode
	modalType ModalType
	notice    update.Notice
	updates   <-chan update.Notice
	reload    string // Executable to re-exec after quitting

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusErr  bool      // statusMsg reports an error
	statusTime time.Time // When to clear message
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithUpdates makes the model listen for new-version notices.
func WithUpdates(ch <-chan update.Notice) ModelOption {
	return func(m *Model) {
		m.updates = ch
	}
}

// WithProfile sets the color profile used for preview pixels.
func WithProfile(p termenv.Profile) ModelOption {
	return func(m *Model) {
		m.profile = p
	}
}

// New creates a new TUI model.
func New(store nutrition.Store, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}
	palette := theme.NewPalette(t)
	styles := NewStyles(t)

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.ShortSeparator = styles.HelpSepStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle
	h.Styles.FullSeparator = styles.HelpSepStyle
	h.Styles.Ellipsis = styles.HelpSepStyle

	m := &Model{
		store:   store,
		config:  cfg,
		theme:   t,
		styles:  styles,
		keys:    defaultKeyMap(),
		help:    h,
		profile: termenv.TrueColor,
		presets: nutrition.Presets(),
		fields:  nutrition.Defaults(),
		mode:    ModeNormal,
	}
	if store != nil {
		m.saver = nutrition.NewSnapshotWriter(store)
	}
	for i := range m.inputs {
		m.inputs[i] = newInput(styles)
	}
	m.syncInputs()
	m.inputs[0].Focus()

	for _, opt := range opts {
		opt(m)
	}

	m.preview = newPreview(cfg.UI.PreviewScale, cfg.UI.FrameInterval(), cfg.Render.Duration(), palette.BgRGB, m.profile)
	m.preview.SetReport(m.report())
	return m
}

func newInput(styles *Styles) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "0"
	ti.CharLimit = 10
	ti.Width = inputWidth
	ti.PlaceholderStyle = styles.PlaceholderStyle
	ti.TextStyle = styles.InputTextStyle
	ti.Cursor.Style = styles.CursorStyle
	ti.Cursor.TextStyle = styles.InputTextStyle
	return ti
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, commands.WaitForUpdate(m.updates)}
	if m.store != nil {
		cmds = append(cmds, commands.LoadSnapshot(m.store))
	}
	return tea.Batch(cmds...)
}

// Fields returns the current inputs.
func (m Model) Fields() nutrition.Fields {
	return m.fields
}

// syncInputs writes the field values into the input boxes.
func (m *Model) syncInputs() {
	for i, id := range nutrition.AllFields {
		m.inputs[i].SetValue(nutrition.FormatNumber(m.fields.Get(id)))
		m.inputs[i].CursorEnd()
	}
}

// setFocus moves focus, wrapping around the inputs and the preset row.
func (m Model) setFocus(focus int) (tea.Model, tea.Cmd) {
	focus = (focus%focusCount + focusCount) % focusCount
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = focus
	if focus == focusPresets {
		return m, nil
	}
	return m, m.inputs[focus].Focus()
}

// applyPreset copies a preset into the composition fields.
func (m Model) applyPreset(p nutrition.Preset) (tea.Model, tea.Cmd) {
	LogPresetApplied(p)
	m.fields = m.fields.ApplyPreset(p)
	m.syncInputs()
	return m, tea.Batch(m.recalculate(), statusCmd("Applied "+p.Name))
}

// recalculate redraws the preview and persists the fields.
func (m Model) recalculate() tea.Cmd {
	m.preview.SetReport(m.report())
	if !m.loaded || m.saver == nil {
		return nil
	}
	return commands.SaveSnapshot(m.saver, m.fields)
}

func (m Model) report() render.Report {
	return render.NewReport(m.fields)
}

// reportText is the plain-text report put on the clipboard.
func (m Model) reportText() string {
	return strings.Join(m.report().Labels().Lines(), "\n")
}

func (m *Model) openUpdateModal(n update.Notice) {
	m.notice = n
	m.mode = ModeModal
	m.modalType = ModalUpdate
}

func (m *Model) closeModal() {
	m.mode = ModeNormal
	m.modalType = ModalNone
}

func statusCmd(msg string) tea.Cmd {
	return func() tea.Msg {
		return commands.StatusMsgCmd{Msg: msg}
	}
}

// Run starts the TUI.
func Run(store nutrition.Store, cfg *config.Config) error {
	return RunWithDebug(store, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging. A nil store opens
// the configured database. Accepting an update replaces the process.
func RunWithDebug(store nutrition.Store, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	initialStore := store
	if store == nil {
		s, err := db.Open(cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		store = s
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := []ModelOption{WithProfile(termenv.ColorProfile())}
	if cfg.Update.Enabled {
		if path, err := update.Executable(); err == nil {
			checker := update.NewChecker(path, cfg.Update.Interval())
			opts = append(opts, WithUpdates(checker.Watch(ctx)))
		}
	}

	model := New(store, cfg, opts...)
	p := tea.NewProgram(*model, tea.WithAltScreen())
	finalModel, err := p.Run()
	cancel()
	_ = model.preview.Close()
	if model.saver != nil {
		if ferr := model.saver.Flush(context.Background()); ferr != nil {
			LogError("flush snapshot", ferr)
		}
	}
	if initialStore == nil {
		_ = store.Close()
	}
	if err != nil {
		return err
	}

	if m, ok := finalModel.(Model); ok && m.reload != "" {
		CloseDebugLogger()
		return update.Reload(m.reload)
	}
	return nil
}
