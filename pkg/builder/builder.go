// Package builder holds the state of the rule form: the draft being filled
// and the buffer of committed rules.
//
// A Builder is owned by a single front end (CLI command, terminal form or
// HTTP handler) and is not safe for concurrent use.
package builder

import (
	"context"
	"strings"

	"github.com/arthur-debert/pdarules/pkg/catalog"
	"github.com/arthur-debert/pdarules/pkg/clipboard"
	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/highlight"
	"github.com/arthur-debert/pdarules/pkg/logging"
	"github.com/arthur-debert/pdarules/pkg/rules"
	"github.com/rs/zerolog"
)

// DefaultPlaceholder is shown when there is neither a buffer nor a
// complete draft
const DefaultPlaceholder = "; Complete all fields to generate the INI rule"

// Options configures a Builder
type Options struct {
	// Catalog supplies sample values when Autofill is set
	Catalog *catalog.Catalog
	// Copier is used by Copy; nil disables copying
	Copier clipboard.Copier
	// Placeholder replaces DefaultPlaceholder when set
	Placeholder string
	// Autofill pre-fills element and presets when the rule type changes
	Autofill bool
	// OnChange is called with the new preview after every mutation
	OnChange func(preview []highlight.Line)
}

// Builder is the rule form state
type Builder struct {
	draft   rules.RuleDraft
	entries []rules.Entry

	// customElement is set when "custom" was picked from a select list
	customElement bool

	catalog     *catalog.Catalog
	copier      clipboard.Copier
	placeholder string
	autofill    bool
	onChange    func([]highlight.Line)
	logger      zerolog.Logger
}

// New creates an empty Builder
func New(opts Options) *Builder {
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	return &Builder{
		catalog:     cat,
		copier:      opts.Copier,
		placeholder: placeholder,
		autofill:    opts.Autofill,
		onChange:    opts.OnChange,
		logger:      logging.GetLogger("builder"),
	}
}

// Draft returns a copy of the current draft
func (b *Builder) Draft() rules.RuleDraft {
	d := b.draft
	d.Presets = append([]string(nil), b.draft.Presets...)
	return d
}

// SetDraft replaces the whole draft
func (b *Builder) SetDraft(d rules.RuleDraft) {
	b.draft = rules.RuleDraft{
		RuleType:     strings.TrimSpace(d.RuleType),
		ElementValue: strings.TrimSpace(d.ElementValue),
		Presets:      rules.SplitPresets(strings.Join(d.Presets, ",")),
		Mode:         strings.TrimSpace(d.Mode),
	}
	b.customElement = false
	b.changed()
}

// UpdateDraftField sets one attribute of the draft and re-renders
func (b *Builder) UpdateDraftField(field rules.Field, value string) error {
	value = strings.TrimSpace(value)

	switch field {
	case rules.FieldRuleType:
		b.setRuleType(value)
	case rules.FieldElement:
		b.setElement(value)
	case rules.FieldPresets:
		b.draft.Presets = rules.SplitPresets(value)
	case rules.FieldMode:
		b.draft.Mode = value
	default:
		return errors.Newf(errors.ErrUnknownField, "unknown draft field %q", field).
			WithDetail("field", string(field))
	}

	b.logger.Trace().Str("field", string(field)).Str("value", value).Msg("Draft field updated")
	b.changed()
	return nil
}

func (b *Builder) setRuleType(value string) {
	b.draft.RuleType = value
	b.draft.ElementValue = ""
	b.customElement = false

	if value == "" {
		b.draft.Presets = nil
		b.draft.Mode = ""
		return
	}
	if !b.autofill {
		return
	}
	if _, ok := b.catalog.Lookup(value); !ok {
		return
	}
	b.draft.ElementValue = b.catalog.SampleElement(value)
	b.draft.Presets = rules.SplitPresets(b.catalog.SamplePresets(value, ""))
}

func (b *Builder) setElement(value string) {
	if value == catalog.CustomValue && b.catalog.IsSelect(b.draft.RuleType) && !b.customElement {
		b.customElement = true
		b.draft.ElementValue = ""
		return
	}
	b.draft.ElementValue = value

	if b.autofill && value != "" && b.catalog.HasElementPresets(b.draft.RuleType) {
		if p := b.catalog.SamplePresets(b.draft.RuleType, value); p != "" {
			b.draft.Presets = rules.SplitPresets(p)
		}
	}
}

// ElementChoices returns the values the element can be picked from, or nil
// when the element is free text
func (b *Builder) ElementChoices() []string {
	if b.customElement {
		return nil
	}
	return b.catalog.Values(b.draft.RuleType)
}

// Catalog returns the vocabulary the builder fills samples from
func (b *Builder) Catalog() *catalog.Catalog {
	return b.catalog
}

// Entries returns a copy of the committed entries
func (b *Builder) Entries() []rules.Entry {
	return append([]rules.Entry(nil), b.entries...)
}

// Len returns the number of committed entries
func (b *Builder) Len() int {
	return len(b.entries)
}

// Text returns the committed buffer, entries separated by a blank line
func (b *Builder) Text() string {
	return rules.JoinEntries(b.entries)
}

// Transcript returns the buffer plus the uncommitted preview entry when the
// draft is complete. It never contains the placeholder.
func (b *Builder) Transcript() string {
	text := b.Text()
	entry, err := rules.FormatEntry(b.draft)
	if err != nil {
		return text
	}
	if text == "" {
		return entry.Text()
	}
	return text + rules.EntrySeparator + entry.Text()
}

// PreviewText is the text RenderPreview highlights
func (b *Builder) PreviewText() string {
	if t := b.Transcript(); t != "" {
		return t
	}
	return b.placeholder
}

// RenderPreview highlights the buffer and, when the draft is complete, one
// preview entry built from it. It does not mutate the buffer.
func (b *Builder) RenderPreview() []highlight.Line {
	return highlight.Highlight(b.PreviewText())
}

// ShowsPlaceholder reports whether the preview is the placeholder message
func (b *Builder) ShowsPlaceholder() bool {
	return b.Transcript() == ""
}

// Commit appends the draft to the buffer. The element, presets and mode
// are cleared afterwards; the rule type is kept so several rules of the
// same type can be entered in a row.
func (b *Builder) Commit() (rules.Entry, error) {
	entry, err := rules.FormatEntry(b.draft)
	if err != nil {
		b.logger.Debug().Err(err).Msg("Commit rejected")
		b.changed()
		return rules.Entry{}, err
	}

	b.entries = append(b.entries, entry)
	b.draft.ElementValue = ""
	b.draft.Presets = nil
	b.draft.Mode = ""
	b.customElement = false

	b.logger.Info().Str("rule", entry.Rule).Int("entries", len(b.entries)).Msg("Rule committed")
	b.changed()
	return entry, nil
}

// Clear empties the buffer. The draft is left untouched.
func (b *Builder) Clear() {
	b.entries = nil
	b.logger.Info().Msg("Rule buffer cleared")
	b.changed()
}

// Copy puts the transcript on the clipboard
func (b *Builder) Copy(ctx context.Context) (clipboard.Result, error) {
	text := b.Transcript()
	if strings.TrimSpace(text) == "" {
		return clipboard.Result{}, errors.New(errors.ErrEmptyClipboardSource, "generate a rule first")
	}
	if b.copier == nil {
		return clipboard.Result{}, errors.New(errors.ErrClipboardUnavailable, "no clipboard configured")
	}
	return b.copier.Copy(ctx, text)
}

func (b *Builder) changed() {
	if b.onChange != nil {
		b.onChange(b.RenderPreview())
	}
}
