package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"modes.md":              {Data: []byte("# Modes\n\nDistribution modes")},
		"rule-types.txt":        {Data: []byte("Rule types")},
		"nested/option-copy.md": {Data: []byte("Copies the transcript")},
		"notes.txxt":            {Data: []byte("Not a topic by default")},
		"ignore.json":           {Data: []byte("{}")},
	}
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	return format + ":" + strings.ToUpper(content)
}

func TestTopicManager_Load(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS(), Options{})
		require.NoError(t, tm.Load())

		assert.Equal(t, []string{"modes", "option-copy", "rule-types"}, tm.ListTopics())

		topic, ok := tm.GetTopic("modes")
		require.True(t, ok)
		assert.Equal(t, "modes.md", topic.FilePath)
		assert.Equal(t, "# Modes\n\nDistribution modes", topic.Content)

		_, ok = tm.GetTopic("notes")
		assert.False(t, ok)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := New(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.Load())
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("empty fs", func(t *testing.T) {
		tm := New(fstest.MapFS{}, Options{})
		require.NoError(t, tm.Load())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopic_FlagStyle(t *testing.T) {
	tm := New(testFS(), Options{})
	require.NoError(t, tm.Load())

	for _, name := range []string{"--copy", "-copy", "copy", "option-copy"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-copy", topic.Name)
	}
}

func TestRender(t *testing.T) {
	tm := New(testFS(), Options{Renderer: upperRenderer{}})
	require.NoError(t, tm.Load())

	out, ok := tm.Render("rule-types")
	require.True(t, ok)
	assert.Equal(t, ".txt:RULE TYPES", out)

	_, ok = tm.Render("missing")
	assert.False(t, ok)
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "# x\n", PlainRenderer{}.Render("# x", ".md"))
	assert.Equal(t, "a\n\nb\n", PlainRenderer{}.Render("a\n\nb\n\n\n", ".txt"))

	var r Renderer = RendererFunc(func(content, ext string) string { return ext + content })
	assert.Equal(t, ".mdx", r.Render("x", ".md"))
}

func TestGlamourRenderer_NonMarkdownUnchanged(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}
	assert.Equal(t, "plain *text*\n", r.Render("plain *text*", ".txt"))

	out := r.Render("# Modes\n\nSome *text*", ".md")
	assert.Contains(t, out, "Modes")
	assert.Contains(t, out, "text")
	assert.NotEqual(t, "# Modes\n\nSome *text*", out)
}

func TestWriteList(t *testing.T) {
	tm := New(testFS(), Options{})
	require.NoError(t, tm.Load())

	var buf bytes.Buffer
	tm.WriteList(&buf, "pdarules")

	out := buf.String()
	assert.Contains(t, out, "General topics:\n  modes\n  rule-types\n")
	assert.Contains(t, out, "Option topics:\n  --copy\n")
	assert.Contains(t, out, "Use 'pdarules help <topic>'")

	buf.Reset()
	New(fstest.MapFS{}, Options{}).WriteList(&buf, "pdarules")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func TestInitialize(t *testing.T) {
	newRoot := func() (*cobra.Command, *bytes.Buffer) {
		root := &cobra.Command{Use: "pdarules", Short: "root help text", Run: func(*cobra.Command, []string) {}}
		root.AddCommand(&cobra.Command{Use: "rule", Short: "rule help text", Run: func(*cobra.Command, []string) {}})

		tm := New(testFS(), Options{})
		require.NoError(t, tm.Load())
		Initialize(root, tm)

		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetErr(&buf)
		return root, &buf
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"topic", []string{"help", "modes"}, "Distribution modes"},
		{"topic list", []string{"help", "topics"}, "Available help topics:"},
		{"command help", []string{"help", "rule"}, "rule help text"},
		{"root help", []string{"help"}, "root help text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, buf := newRoot()
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
