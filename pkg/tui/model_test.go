package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/arthur-debert/pdarules/pkg/builder"
	"github.com/arthur-debert/pdarules/pkg/clipboard"
	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/highlight"
	"github.com/arthur-debert/pdarules/pkg/rules"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCopier struct {
	texts []string
}

func (f *fakeCopier) Copy(_ context.Context, text string) (clipboard.Result, error) {
	f.texts = append(f.texts, text)
	return clipboard.Result{Strategy: "fake"}, nil
}

func newTestModel(t *testing.T, opts builder.Options) (Model, *fakeCopier, afero.Fs) {
	t.Helper()
	copier := &fakeCopier{}
	opts.Copier = copier
	fs := afero.NewMemMapFs()
	m := New(Options{Builder: builder.New(opts), Fs: fs, ExportPath: "/out/rules.ini"})
	return m, copier, fs
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// run is send for keys whose work happens in a command: the command is run
// and its result fed back
func run(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	require.NotNil(t, cmd)
	next, _ = m.Update(cmd())
	return next.(Model)
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func fillForm(t *testing.T, m Model, values ...string) Model {
	t.Helper()
	for i, v := range values {
		if v != "" {
			m = typeText(t, m, v)
		}
		if i < len(values)-1 {
			m = send(t, m, key(tea.KeyTab))
		}
	}
	return m
}

func TestTypingUpdatesDraftAndPreview(t *testing.T) {
	m, _, _ := newTestModel(t, builder.Options{})

	assert.Equal(t, builder.DefaultPlaceholder, highlight.RenderPlain(m.Preview()))

	m = fillForm(t, m, "raceFemale", "NordRace", "Preset1,Preset2")
	assert.Equal(t,
		";NordRace presets in mode simple application\nraceFemale = NordRace|Preset1,Preset2|",
		highlight.RenderPlain(m.Preview()))
	assert.Equal(t, 0, m.builder.Len(), "typing never commits")
}

func TestFocusCycling(t *testing.T) {
	m, _, _ := newTestModel(t, builder.Options{})
	assert.Equal(t, 0, m.focus)

	m = send(t, m, key(tea.KeyShiftTab))
	assert.Equal(t, 3, m.focus)
	assert.True(t, m.inputs[3].Focused())
	assert.False(t, m.inputs[0].Focused())

	m = send(t, m, key(tea.KeyTab))
	assert.Equal(t, 0, m.focus)
}

func TestCommitKey(t *testing.T) {
	m, _, _ := newTestModel(t, builder.Options{})
	m = fillForm(t, m, "npc", "Lydia", "A,B", "1")

	m = send(t, m, key(tea.KeyCtrlN))
	require.Equal(t, 1, m.builder.Len())
	assert.Equal(t, "npc = Lydia|A,B|1", m.builder.Entries()[0].Rule)
	assert.Contains(t, m.Status(), "npc = Lydia|A,B|1")

	assert.Equal(t, "npc", m.inputs[0].Value(), "rule type is kept")
	for i := 1; i < len(m.inputs); i++ {
		assert.Empty(t, m.inputs[i].Value())
	}
	assert.Equal(t, 1, m.focus)
}

func TestCommitKey_Incomplete(t *testing.T) {
	m, _, _ := newTestModel(t, builder.Options{})
	m = fillForm(t, m, "npc", "Lydia")

	m = send(t, m, key(tea.KeyCtrlN))
	assert.Equal(t, 0, m.builder.Len())
	assert.Equal(t, msgIncomplete, m.Status())
	assert.Equal(t, statusError, m.statusKind)
}

func TestClearKey(t *testing.T) {
	m, _, _ := newTestModel(t, builder.Options{})
	m = fillForm(t, m, "npc", "Lydia", "A")
	m = send(t, m, key(tea.KeyCtrlN))
	require.Equal(t, 1, m.builder.Len())

	m = send(t, m, key(tea.KeyCtrlL))
	assert.Equal(t, 0, m.builder.Len())
	assert.Equal(t, msgCleared, m.Status())
}

func TestCopyKey(t *testing.T) {
	m, copier, _ := newTestModel(t, builder.Options{})

	m = run(t, m, key(tea.KeyCtrlY))
	assert.Equal(t, msgNothingToCopy, m.Status())
	assert.Empty(t, copier.texts)

	m = fillForm(t, m, "npc", "Lydia", "A")
	m = send(t, m, key(tea.KeyCtrlN))
	m = run(t, m, key(tea.KeyCtrlY))

	require.Len(t, copier.texts, 1)
	assert.Equal(t, ";Lydia presets in mode simple application\nnpc = Lydia|A|", copier.texts[0])
	assert.Equal(t, "Copied to clipboard (fake)", m.Status())
}

func TestExportKey(t *testing.T) {
	m, _, fs := newTestModel(t, builder.Options{})

	m = run(t, m, key(tea.KeyCtrlS))
	assert.Equal(t, msgNothingToExport, m.Status())

	m = fillForm(t, m, "npc", "Lydia", "A")
	m = send(t, m, key(tea.KeyCtrlN))
	m = run(t, m, key(tea.KeyCtrlS))
	assert.Equal(t, "Saved /out/rules.ini", m.Status())

	data, err := afero.ReadFile(fs, "/out/rules.ini")
	require.NoError(t, err)
	assert.Equal(t, ";Lydia presets in mode simple application\nnpc = Lydia|A|\n", string(data))

	// a second save asks before overwriting
	m = typeText(t, m, "Aela")
	m = run(t, m, key(tea.KeyCtrlS))
	assert.True(t, m.confirmOverwrite)
	assert.Contains(t, m.Status(), "press ctrl+s again")

	m = run(t, m, key(tea.KeyCtrlS))
	assert.False(t, m.confirmOverwrite)
	assert.Equal(t, "Saved /out/rules.ini", m.Status())
}

func TestModeLevelKey(t *testing.T) {
	m, _, _ := newTestModel(t, builder.Options{})
	m.focus = 3
	assert.NotContains(t, m.hint(), "remove preset")

	m = send(t, m, key(tea.KeyCtrlT))
	assert.Equal(t, rules.LevelMedium, m.level)
	assert.Contains(t, m.hint(), "remove preset")
	assert.NotContains(t, m.hint(), "remove element")

	m = send(t, m, key(tea.KeyCtrlT))
	assert.Contains(t, m.hint(), "x* unlimited element remove")

	m = send(t, m, key(tea.KeyCtrlT))
	assert.Equal(t, rules.LevelBasic, m.level)
}

func TestElementChoices(t *testing.T) {
	m, _, _ := newTestModel(t, builder.Options{})
	m = typeText(t, m, "raceFemale")
	m = send(t, m, key(tea.KeyTab))

	m = send(t, m, key(tea.KeyDown))
	assert.Equal(t, "NordRace", m.inputs[1].Value())
	m = send(t, m, key(tea.KeyDown))
	assert.Equal(t, "ImperialRace", m.inputs[1].Value())
	m = send(t, m, key(tea.KeyUp))
	assert.Equal(t, "NordRace", m.builder.Draft().ElementValue)
	assert.Contains(t, m.hint(), "up/down to pick")
}

func TestAutofillSyncsInputs(t *testing.T) {
	m, _, _ := newTestModel(t, builder.Options{Autofill: true})
	m = typeText(t, m, "npc")

	assert.Equal(t, "Serana", m.inputs[1].Value())
	assert.Equal(t, "Custom Preset 1,Custom Preset 2", m.inputs[2].Value())
	assert.True(t, strings.HasSuffix(highlight.RenderPlain(m.Preview()), "npc = Serana|Custom Preset 1,Custom Preset 2|"))
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m, _, _ := newTestModel(t, builder.Options{})
		next, cmd := m.Update(key(k))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, next.View())
	}
}

func TestView(t *testing.T) {
	m, _, _ := newTestModel(t, builder.Options{})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = fillForm(t, m, "npc", "Lydia", "A")

	view := m.View()
	for _, want := range []string{"OBody PDA rule builder", "Type", "Element", "Presets", "Mode", "Lydia", "ctrl+n add"} {
		assert.Contains(t, view, want)
	}
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, msgCopyFailed, userMessage(errors.New(errors.ErrClipboardUnavailable, "x")))
	assert.Equal(t, "bad thing", userMessage(errors.New(errors.ErrFileWrite, "bad thing")))
}

func TestErrorsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	m, _, _ := newTestModel(t, builder.Options{})
	m = run(t, m, key(tea.KeyCtrlY))

	assert.Equal(t, msgNothingToCopy, m.Status())
	assert.Contains(t, buf.String(), `"component":"tui"`)
	assert.Contains(t, buf.String(), "Form error")
	assert.Contains(t, buf.String(), "EMPTY_CLIPBOARD_SOURCE")
}
