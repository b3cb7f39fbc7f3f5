package rules

import "strings"

// Field names a single attribute of a RuleDraft
type Field string

const (
	FieldRuleType Field = "rule_type"
	FieldElement  Field = "element"
	FieldPresets  Field = "presets"
	FieldMode     Field = "mode"
)

// Fields lists the draft fields in form order
var Fields = []Field{FieldRuleType, FieldElement, FieldPresets, FieldMode}

// ParseField maps user input onto a Field. It accepts the canonical names
// and a few spellings used by the form labels.
func ParseField(s string) (Field, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rule_type", "ruletype", "type":
		return FieldRuleType, true
	case "element", "element_value", "elementvalue", "value":
		return FieldElement, true
	case "presets", "preset":
		return FieldPresets, true
	case "mode":
		return FieldMode, true
	}
	return "", false
}

// RuleTypeBlacklisted is the rule type whose comment uses the fixed
// "blacklisted" phrasing instead of naming the mode.
const RuleTypeBlacklisted = "blacklisted"

// RuleDraft is the set of form inputs a rule is built from
type RuleDraft struct {
	RuleType     string   `json:"type" yaml:"type"`
	ElementValue string   `json:"element" yaml:"element"`
	Presets      []string `json:"presets" yaml:"presets"`
	Mode         string   `json:"mode" yaml:"mode"`
}

// PresetsText returns the presets joined with ',' exactly as they will
// appear in the rule line.
func (d RuleDraft) PresetsText() string {
	return strings.Join(d.Presets, ",")
}

// Missing returns the required fields that are still empty
func (d RuleDraft) Missing() []Field {
	var missing []Field
	if strings.TrimSpace(d.RuleType) == "" {
		missing = append(missing, FieldRuleType)
	}
	if strings.TrimSpace(d.ElementValue) == "" {
		missing = append(missing, FieldElement)
	}
	if strings.TrimSpace(d.PresetsText()) == "" {
		missing = append(missing, FieldPresets)
	}
	return missing
}

// Complete reports whether every required field is filled
func (d RuleDraft) Complete() bool {
	return len(d.Missing()) == 0
}

// SplitPresets turns the comma separated presets field into a slice. The
// text is trimmed as a whole but individual names are kept verbatim, so
// joining the result reproduces the trimmed input.
func SplitPresets(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// Entry is one committed rule: the comment line and the rule line
type Entry struct {
	Comment string `json:"comment"`
	Rule    string `json:"rule"`
}

// Text renders the entry as it appears in a transcript
func (e Entry) Text() string {
	return e.Comment + "\n" + e.Rule
}

// EntrySeparator separates entries in a transcript
const EntrySeparator = "\n\n"

// JoinEntries renders entries as a transcript, one blank line between rules
func JoinEntries(entries []Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Text()
	}
	return strings.Join(parts, EntrySeparator)
}
