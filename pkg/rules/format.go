package rules

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/pdarules/pkg/errors"
)

// Comment builds the ';' line that precedes a rule
func Comment(d RuleDraft) string {
	if d.RuleType == RuleTypeBlacklisted {
		return fmt.Sprintf(";%s blacklisted in mode simple application", d.ElementValue)
	}
	return fmt.Sprintf(";%s presets in mode %s", d.ElementValue, Describe(d.Mode))
}

// RuleLine builds the rule line itself. It does not validate.
func RuleLine(d RuleDraft) string {
	return fmt.Sprintf("%s = %s|%s|%s", d.RuleType, d.ElementValue, d.PresetsText(), d.Mode)
}

// FormatEntry validates the draft and returns its comment and rule lines
func FormatEntry(d RuleDraft) (Entry, error) {
	if missing := d.Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = string(f)
		}
		return Entry{}, errors.Newf(errors.ErrIncompleteDraft,
			"complete all fields to generate the INI rule (missing %s)", strings.Join(names, ", ")).
			WithDetail("missing", names)
	}
	return Entry{Comment: Comment(d), Rule: RuleLine(d)}, nil
}

// ParsedRule is a rule line split back into its parts
type ParsedRule struct {
	RuleType string
	Element  string
	Presets  string
	Mode     string
	// Segments is how many '|' separated parts the value had
	Segments int
}

// SplitRuleLine splits a generated rule line back into its parts. The key
// ends at the first " = " (or the first '=' for hand-written lines); the
// value is split on '|' into at most three segments, so a mode containing
// '|' is kept whole.
func SplitRuleLine(line string) (ParsedRule, bool) {
	key, value, ok := strings.Cut(line, " = ")
	if !ok {
		key, value, ok = strings.Cut(line, "=")
		if !ok {
			return ParsedRule{}, false
		}
		value = strings.TrimSpace(value)
	}
	parts := strings.SplitN(value, "|", 3)
	p := ParsedRule{
		RuleType: strings.TrimSpace(key),
		Segments: len(parts),
	}
	p.Element = parts[0]
	if len(parts) > 1 {
		p.Presets = parts[1]
	}
	if len(parts) > 2 {
		p.Mode = parts[2]
	}
	return p, true
}
