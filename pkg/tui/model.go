// Package tui is the interactive rule form: four inputs, a live preview of
// the rule buffer and keys to commit, clear, copy and export.
package tui

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/pdarules/pkg/builder"
	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/export"
	"github.com/arthur-debert/pdarules/pkg/highlight"
	"github.com/arthur-debert/pdarules/pkg/logging"
	"github.com/arthur-debert/pdarules/pkg/rules"
	"github.com/arthur-debert/pdarules/pkg/ui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const copyTimeout = 5 * time.Second

var labels = map[rules.Field]string{
	rules.FieldRuleType: "Type",
	rules.FieldElement:  "Element",
	rules.FieldPresets:  "Presets",
	rules.FieldMode:     "Mode",
}

var placeholders = map[rules.Field]string{
	rules.FieldRuleType: "raceFemale, npc, blacklisted...",
	rules.FieldElement:  "NordRace, Serana, Skyrim.esm|0x12345...",
	rules.FieldPresets:  "Preset1,Preset2",
	rules.FieldMode:     "empty, 1, 0, -, x-, *, x*",
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// Options configures the form
type Options struct {
	Builder *builder.Builder
	// Fs and ExportPath are used by the export key
	Fs         afero.Fs
	ExportPath string
	// ModeLevel is the initial mode filter for the mode hint
	ModeLevel rules.Level
}

// Model is the bubbletea model of the form
type Model struct {
	builder *builder.Builder
	inputs  []textinput.Model
	focus   int
	level   rules.Level

	fs               afero.Fs
	exportPath       string
	confirmOverwrite bool

	status     string
	statusKind statusKind

	width    int
	quitting bool

	logger zerolog.Logger
}

type copiedMsg struct {
	strategy string
	err      error
}

type exportedMsg struct {
	path string
	err  error
}

// New creates the form model
func New(opts Options) Model {
	b := opts.Builder
	if b == nil {
		b = builder.New(builder.Options{})
	}
	level := opts.ModeLevel
	if _, ok := rules.ParseLevel(string(level)); !ok {
		level = rules.LevelBasic
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	path := opts.ExportPath
	if path == "" {
		path = export.DefaultFileName
	}

	inputs := make([]textinput.Model, len(rules.Fields))
	for i, f := range rules.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[f]
		in.CharLimit = 512
		in.Width = 48
		inputs[i] = in
	}
	inputs[0].Focus()

	m := Model{
		builder:    b,
		inputs:     inputs,
		level:      level,
		fs:         fs,
		exportPath: path,
		logger:     logging.GetLogger("tui"),
	}
	m.syncAll(-1)
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.setError(msg.err)
		} else {
			m.setStatus(statusSuccess, fmt.Sprintf(msgCopied, msg.strategy))
		}
		return m, nil

	case exportedMsg:
		switch {
		case errors.IsErrorCode(msg.err, errors.ErrFileExists):
			m.confirmOverwrite = true
			m.setStatus(statusInfo, fmt.Sprintf(msgConfirmOverwrite, msg.path))
		case msg.err != nil:
			m.setError(msg.err)
		default:
			m.setStatus(statusSuccess, fmt.Sprintf(msgExported, msg.path))
		}
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key != "ctrl+s" {
			m.confirmOverwrite = false
		}

		switch key {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "tab", "enter":
			return m, m.moveFocus(1)

		case "shift+tab":
			return m, m.moveFocus(-1)

		case "up", "down":
			if rules.Fields[m.focus] == rules.FieldElement && m.builder.ElementChoices() != nil {
				delta := 1
				if key == "up" {
					delta = -1
				}
				m.cycleChoice(delta)
				return m, nil
			}
			if key == "up" {
				return m, m.moveFocus(-1)
			}
			return m, m.moveFocus(1)

		case "ctrl+n":
			m.commit()
			return m, nil

		case "ctrl+l":
			m.builder.Clear()
			m.setStatus(statusInfo, msgCleared)
			return m, nil

		case "ctrl+y":
			return m, m.copyCmd()

		case "ctrl+s":
			overwrite := m.confirmOverwrite
			m.confirmOverwrite = false
			return m, m.exportCmd(overwrite)

		case "ctrl+t":
			m.level = nextLevel(m.level)
			m.setStatus(statusInfo, fmt.Sprintf(msgModeLevel, m.level))
			return m, nil
		}
	}

	return m, m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and pushes a changed
// value into the draft
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if value := m.inputs[m.focus].Value(); value != before {
		field := rules.Fields[m.focus]
		if err := m.builder.UpdateDraftField(field, value); err != nil {
			m.setError(err)
			return cmd
		}
		if field == rules.FieldRuleType || field == rules.FieldElement {
			m.syncInputs()
		}
	}
	return cmd
}

// syncInputs copies the draft into every input but the focused one
func (m *Model) syncInputs() {
	m.syncAll(m.focus)
}

func (m *Model) syncAll(skip int) {
	d := m.builder.Draft()
	values := map[rules.Field]string{
		rules.FieldRuleType: d.RuleType,
		rules.FieldElement:  d.ElementValue,
		rules.FieldPresets:  d.PresetsText(),
		rules.FieldMode:     d.Mode,
	}
	for i, f := range rules.Fields {
		if i == skip {
			continue
		}
		m.inputs[i].SetValue(values[f])
	}
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *Model) cycleChoice(delta int) {
	choices := m.builder.ElementChoices()
	current := m.builder.Draft().ElementValue
	next := 0
	if delta < 0 {
		next = len(choices) - 1
	}
	for i, c := range choices {
		if c == current {
			next = (i + delta + len(choices)) % len(choices)
			break
		}
	}

	if err := m.builder.UpdateDraftField(rules.FieldElement, choices[next]); err != nil {
		m.setError(err)
		return
	}
	m.inputs[m.focus].SetValue(m.builder.Draft().ElementValue)
	m.inputs[m.focus].CursorEnd()
	m.syncInputs()
}

func (m *Model) commit() {
	entry, err := m.builder.Commit()
	if err != nil {
		m.setError(err)
		return
	}
	m.syncAll(-1)
	m.inputs[m.focus].Blur()
	m.focus = 1
	m.inputs[m.focus].Focus()
	m.setStatus(statusSuccess, fmt.Sprintf(msgCommitted, entry.Rule))
}

func (m Model) copyCmd() tea.Cmd {
	b := m.builder
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
		defer cancel()
		res, err := b.Copy(ctx)
		return copiedMsg{strategy: res.Strategy, err: err}
	}
}

func (m Model) exportCmd(overwrite bool) tea.Cmd {
	text := m.builder.Transcript()
	fs, path := m.fs, m.exportPath
	return func() tea.Msg {
		return exportedMsg{path: path, err: export.WriteTranscript(fs, path, text, overwrite)}
	}
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.status = text
	m.statusKind = kind
}

func (m *Model) setError(err error) {
	m.logger.Debug().Err(err).Str("status", userMessage(err)).Msg("Form error")
	m.setStatus(statusError, userMessage(err))
}

// userMessage turns coded errors into the feedback the form shows
func userMessage(err error) string {
	switch errors.GetErrorCode(err) {
	case errors.ErrEmptyClipboardSource:
		return msgNothingToCopy
	case errors.ErrEmptyFile:
		return msgNothingToExport
	case errors.ErrIncompleteDraft:
		return msgIncomplete
	case errors.ErrClipboardUnavailable, errors.ErrClipboardFailed:
		return msgCopyFailed
	}
	var pe *errors.PdaError
	if stderrors.As(err, &pe) {
		return pe.Message
	}
	return err.Error()
}

func nextLevel(l rules.Level) rules.Level {
	switch l {
	case rules.LevelBasic:
		return rules.LevelMedium
	case rules.LevelMedium:
		return rules.LevelAdvanced
	default:
		return rules.LevelBasic
	}
}

// Preview returns the highlighted preview lines currently shown
func (m Model) Preview() []highlight.Line {
	return m.builder.RenderPreview()
}

// Status returns the status line text
func (m Model) Status() string {
	return m.status
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.GetStyle("Title").Render("OBody PDA rule builder"))
	b.WriteString("\n")

	for i, f := range rules.Fields {
		label := styles.GetStyle("Label")
		if i == m.focus {
			label = styles.GetStyle("FocusedLabel")
		}
		b.WriteString(label.Render(labels[f]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString(styles.GetStyle("Hint").Render(m.hint()))
	b.WriteString("\n\n")

	preview := highlight.RenderTerminal(m.builder.RenderPreview(), styles.HighlightStyles())
	box := styles.GetStyle("Preview").Border(lipgloss.RoundedBorder())
	if m.width > 4 {
		box = box.Width(m.width - 2)
	}
	b.WriteString(box.Render(preview))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.statusStyle().Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(styles.GetStyle("Muted").Render(helpLine))
	return b.String()
}

func (m Model) statusStyle() lipgloss.Style {
	switch m.statusKind {
	case statusSuccess:
		return styles.GetStyle("Success")
	case statusError:
		return styles.GetStyle("Error")
	default:
		return styles.GetStyle("Warning")
	}
}

// hint describes what the focused input accepts
func (m Model) hint() string {
	switch rules.Fields[m.focus] {
	case rules.FieldRuleType:
		return "Rule types: " + strings.Join(m.builder.Catalog().Keys(), ", ")
	case rules.FieldElement:
		choices := m.builder.ElementChoices()
		if choices == nil {
			return "Free text"
		}
		const shown = 6
		list := choices
		suffix := ""
		if len(list) > shown {
			list = list[:shown]
			suffix = fmt.Sprintf(", ... (%d more)", len(choices)-shown)
		}
		return "up/down to pick: " + strings.Join(list, ", ") + suffix
	case rules.FieldPresets:
		return "Comma separated preset names"
	default:
		parts := make([]string, 0, len(rules.KnownModes))
		for _, mode := range rules.ModesFor(m.level) {
			code := mode.Code
			if code == "" {
				code = "(empty)"
			}
			parts = append(parts, code+" "+mode.Description)
		}
		return fmt.Sprintf("Modes (%s): %s", m.level, strings.Join(parts, " | "))
	}
}

// Run starts the form on the terminal
func Run(opts Options) error {
	_, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run()
	return err
}
