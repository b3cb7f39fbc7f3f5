package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pdarules/pkg/highlight"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	expectedStyles := []string{
		"RuleComment", "RuleKey", "RuleElement", "RulePresets", "RuleMode",
		"Success", "Error", "Warning", "Muted",
		"Title", "Label", "FocusedLabel", "Hint", "Preview",
	}

	for _, styleName := range expectedStyles {
		t.Run(styleName, func(t *testing.T) {
			_, exists := StyleRegistry[styleName]
			assert.True(t, exists, "Style %s should exist in registry", styleName)
		})
	}
}

func TestGetStyle(t *testing.T) {
	assert.True(t, GetStyle("RuleKey").GetBold())
	assert.Equal(t, lipgloss.NewStyle(), GetStyle("NonExistentStyle"))
}

func TestHighlightStyles(t *testing.T) {
	hs := HighlightStyles()

	for _, kind := range []highlight.Kind{highlight.Comment, highlight.Key, highlight.Element, highlight.Presets, highlight.Mode} {
		_, ok := hs[kind]
		assert.True(t, ok, "kind %s should be styled", kind)
	}
	_, ok := hs[highlight.Separator]
	assert.False(t, ok)
	_, ok = hs[highlight.Plain]
	assert.False(t, ok)

	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#005CC5", Dark: "#79C0FF"}, hs[highlight.Key].GetForeground())
}

func TestLoadFile(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, Load(defaultStyles)) })

	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  red:
    light: "#FF0000"
    dark: "#FF0000"
styles:
  RuleKey:
    underline: true
    foreground: red
`), 0644))

	require.NoError(t, LoadFile(path))
	assert.True(t, GetStyle("RuleKey").GetUnderline())
	assert.Len(t, HighlightStyles(), 1)

	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, Load([]byte("styles: [")))
}
