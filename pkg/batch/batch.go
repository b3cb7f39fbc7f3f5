// Package batch builds rule transcripts from YAML files.
//
// A batch file lists drafts under a rules key:
//
//	rules:
//	  - type: raceFemale
//	    element: NordRace
//	    presets: [Preset1, Preset2]
//	  - type: npc
//	    element: Lydia
//	    presets: "Custom Preset 1,Custom Preset 2"
//	    mode: "1"
package batch

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pdarules/pkg/builder"
	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/logging"
	"github.com/arthur-debert/pdarules/pkg/rules"
	"gopkg.in/yaml.v3"
)

// PresetList accepts either a YAML sequence or a comma separated string.
// Both forms are kept as written: a sequence is the comma joined text of
// its items, and only the field as a whole is trimmed, as the rule form
// does.
type PresetList []string

// UnmarshalYAML implements yaml.Unmarshaler
func (p *PresetList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*p = rules.SplitPresets(value.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*p = rules.SplitPresets(strings.Join(items, ","))
		return nil
	default:
		return fmt.Errorf("line %d: presets must be a list or a comma separated string", value.Line)
	}
}

type fileRule struct {
	Type    string     `yaml:"type"`
	Element string     `yaml:"element"`
	Presets PresetList `yaml:"presets"`
	Mode    string     `yaml:"mode"`
}

type file struct {
	Rules []fileRule `yaml:"rules"`
}

// Load decodes the drafts of a batch file
func Load(r io.Reader) ([]rules.RuleDraft, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrBatchParse, "invalid batch file")
	}

	drafts := make([]rules.RuleDraft, len(f.Rules))
	for i, fr := range f.Rules {
		drafts[i] = rules.RuleDraft{
			RuleType:     strings.TrimSpace(fr.Type),
			ElementValue: strings.TrimSpace(fr.Element),
			Presets:      []string(fr.Presets),
			Mode:         strings.TrimSpace(fr.Mode),
		}
	}
	return drafts, nil
}

// Failure is a draft that could not be committed
type Failure struct {
	// Index is the position of the draft in the batch, from 0
	Index int
	Draft rules.RuleDraft
	Err   error
}

// Report is the outcome of Apply
type Report struct {
	Committed []rules.Entry
	Failures  []Failure
}

// OK reports whether every draft was committed
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

// Apply commits the drafts in order. A draft that fails is recorded and
// the rest are still committed.
func Apply(b *builder.Builder, drafts []rules.RuleDraft) Report {
	logger := logging.GetLogger("batch")
	var report Report

	for i, d := range drafts {
		b.SetDraft(d)
		entry, err := b.Commit()
		if err != nil {
			logger.Warn().Int("index", i).Err(err).Msg("Skipping batch rule")
			report.Failures = append(report.Failures, Failure{Index: i, Draft: d, Err: err})
			continue
		}
		report.Committed = append(report.Committed, entry)
	}

	logger.Info().
		Int("committed", len(report.Committed)).
		Int("failed", len(report.Failures)).
		Msg("Batch applied")
	return report
}
