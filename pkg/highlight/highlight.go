// Package highlight tokenizes rule transcripts for display.
//
// Highlight is a pure function from text to lines of typed tokens; the
// renderers in this package map tokens to terminal styles, HTML spans or
// plain text. Nothing here touches a terminal or a document.
package highlight

import (
	"fmt"
	"strings"
)

// Kind classifies a token
type Kind int

const (
	Plain Kind = iota
	Comment
	Key
	Separator
	Element
	Presets
	Mode
)

var kindNames = map[Kind]string{
	Plain:     "plain",
	Comment:   "comment",
	Key:       "key",
	Separator: "separator",
	Element:   "element",
	Presets:   "presets",
	Mode:      "mode",
}

// String returns the lower-case kind name
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText lets token kinds serialize as names in JSON
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", text)
}

// Token is a run of text with a single kind
type Token struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Line is the token list for one source line
type Line []Token

const (
	commentMarker = ";"
	keySeparator  = " = "
	valueSep      = "|"
)

// Highlight splits text into lines and tokenizes each one:
//   - a line starting with ';' (after trimming) is one Comment token
//   - a line containing '=' becomes Key, " = ", then the '|' separated
//     element, presets and mode segments that are present in the source
//   - anything else is one Plain token, unchanged
func Highlight(text string) []Line {
	src := strings.Split(text, "\n")
	lines := make([]Line, len(src))
	for i, l := range src {
		lines[i] = tokenizeLine(l)
	}
	return lines
}

func tokenizeLine(line string) Line {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, commentMarker) {
		return Line{{Kind: Comment, Text: line}}
	}

	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return Line{{Kind: Plain, Text: line}}
	}

	segments := strings.SplitN(strings.TrimSpace(value), valueSep, 3)
	out := Line{
		{Kind: Key, Text: strings.TrimSpace(key)},
		{Kind: Separator, Text: keySeparator},
		{Kind: Element, Text: strings.TrimSpace(segments[0])},
	}
	if len(segments) > 1 {
		out = append(out,
			Token{Kind: Separator, Text: valueSep},
			Token{Kind: Presets, Text: strings.TrimSpace(segments[1])})
	}
	if len(segments) > 2 {
		out = append(out,
			Token{Kind: Separator, Text: valueSep},
			Token{Kind: Mode, Text: strings.TrimSpace(segments[2])})
	}
	return out
}

// Text reassembles a line without styling
func (l Line) Text() string {
	var b strings.Builder
	for _, t := range l {
		b.WriteString(t.Text)
	}
	return b.String()
}
