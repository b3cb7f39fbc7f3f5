// Package json provides machine-readable JSON output
package json

import (
	"io"

	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/highlight"
	"github.com/goccy/go-json"
)

// Transcript is the JSON shape of rendered lines
type Transcript struct {
	Text  string           `json:"text"`
	Lines []highlight.Line `json:"lines"`
}

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// RenderLines renders the plain text and the tokens of every line
func (r *Renderer) RenderLines(lines []highlight.Line) error {
	return r.encoder.Encode(Transcript{Text: highlight.RenderPlain(lines), Lines: lines})
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{
		"code":    string(errors.GetErrorCode(err)),
		"message": err.Error(),
	})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
