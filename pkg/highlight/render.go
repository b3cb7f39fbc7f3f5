package highlight

import (
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderPlain renders lines as unstyled text
func RenderPlain(lines []Line) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text()
	}
	return strings.Join(out, "\n")
}

// Styles maps token kinds to terminal styles. Kinds without an entry are
// rendered unstyled.
type Styles map[Kind]lipgloss.Style

// RenderTerminal renders lines with lipgloss styles
func RenderTerminal(lines []Line, styles Styles) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		var b strings.Builder
		for _, t := range l {
			if st, ok := styles[t.Kind]; ok && t.Text != "" {
				b.WriteString(st.Render(t.Text))
				continue
			}
			b.WriteString(t.Text)
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}

// HTMLClass returns the CSS class the web form used for a kind, or "" for
// kinds rendered as bare text
func HTMLClass(k Kind) string {
	switch k {
	case Comment:
		return "rule-comment"
	case Key:
		return "rule-key"
	case Element:
		return "rule-element"
	case Presets:
		return "rule-presets"
	case Mode:
		return "rule-mode"
	}
	return ""
}

// RenderHTML renders lines as escaped HTML with one span per styled token
func RenderHTML(lines []Line) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		var b strings.Builder
		for _, t := range l {
			text := html.EscapeString(t.Text)
			class := HTMLClass(t.Kind)
			if class == "" {
				b.WriteString(text)
				continue
			}
			b.WriteString(`<span class="`)
			b.WriteString(class)
			b.WriteString(`">`)
			b.WriteString(text)
			b.WriteString(`</span>`)
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}
