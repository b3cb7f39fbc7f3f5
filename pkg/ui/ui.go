// Package ui renders rule transcripts and feedback in the selected output
// format: terminal (highlighted), text (plain) or JSON (tokens).
package ui

import (
	"io"

	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/highlight"
	"github.com/arthur-debert/pdarules/pkg/ui/json"
	"github.com/arthur-debert/pdarules/pkg/ui/terminal"
	"github.com/arthur-debert/pdarules/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderLines renders highlighted transcript lines
	RenderLines(lines []highlight.Line) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format, detecting terminal
// capabilities when format is Auto
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(output), output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
