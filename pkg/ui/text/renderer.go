// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/pdarules/pkg/highlight"
)

// Renderer writes unstyled output
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderLines writes the transcript text as is
func (r *Renderer) RenderLines(lines []highlight.Line) error {
	_, err := fmt.Fprintln(r.output, highlight.RenderPlain(lines))
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
