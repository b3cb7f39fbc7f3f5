// Package terminal provides highlighted terminal output
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/pdarules/pkg/highlight"
	"github.com/arthur-debert/pdarules/pkg/ui/styles"
)

// Renderer writes lipgloss styled output
type Renderer struct {
	output io.Writer
	styles highlight.Styles
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w, styles: styles.HighlightStyles()}
}

// RenderLines renders lines with the rule token styles
func (r *Renderer) RenderLines(lines []highlight.Line) error {
	_, err := fmt.Fprintln(r.output, highlight.RenderTerminal(lines, r.styles))
	return err
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render("Error: "+err.Error()))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.GetStyle("Muted").Render(msg))
	return err
}
