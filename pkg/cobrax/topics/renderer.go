package topics

import "strings"

// Renderer formats topic content for display. ext is the extension of the
// topic file, dot included.
type Renderer interface {
	Render(content string, ext string) string
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(content, ext string) string

// Render calls f
func (f RendererFunc) Render(content, ext string) string { return f(content, ext) }

// PlainRenderer prints topics as written, ending with exactly one newline
type PlainRenderer struct{}

// Render trims trailing blank lines and terminates the last line
func (PlainRenderer) Render(content, _ string) string {
	return strings.TrimRight(content, "\n") + "\n"
}
