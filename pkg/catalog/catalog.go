// Package catalog holds the vocabulary the rule form offers: rule types,
// the enumerated element values of select-style rule types and the sample
// presets used to pre-fill the form.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"

	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// InputKind tells a front end how the element value is entered
type InputKind string

const (
	InputText   InputKind = "text"
	InputSelect InputKind = "select"
)

// CustomValue is the select entry that switches the element to free text
const CustomValue = "custom"

// RuleType describes one configuration key of the PDA format
type RuleType struct {
	Key      string    `toml:"key" json:"key"`
	Label    string    `toml:"label" json:"label"`
	Input    InputKind `toml:"input" json:"input"`
	ValueSet string    `toml:"value_set" json:"-"`
	Values   []string  `toml:"values" json:"values,omitempty"`
	Presets  []string  `toml:"presets" json:"presets,omitempty"`
}

// Catalog is the decoded vocabulary
type Catalog struct {
	RuleTypes      []RuleType                   `toml:"rule_types"`
	ValueSets      map[string][]string          `toml:"value_sets"`
	ElementPresets map[string]map[string]string `toml:"element_presets"`

	index map[string]int
}

//go:embed catalog.toml
var embeddedCatalog []byte

// Default returns the embedded catalog. It panics if the embedded file is
// malformed, which a unit test guards against.
func Default() *Catalog {
	c, err := Parse(embeddedCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Parse decodes a catalog document and resolves value sets
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(err, errors.ErrCatalogParse, "failed to decode catalog")
	}

	c.index = make(map[string]int, len(c.RuleTypes))
	for i := range c.RuleTypes {
		rt := &c.RuleTypes[i]
		if rt.Key == "" {
			return nil, errors.Newf(errors.ErrCatalogParse, "rule type %d has no key", i).
				WithDetail("index", i)
		}
		if _, dup := c.index[rt.Key]; dup {
			return nil, errors.Newf(errors.ErrCatalogParse, "duplicate rule type %q", rt.Key).
				WithDetail("rule_type", rt.Key)
		}
		if rt.Input == "" {
			rt.Input = InputText
		}
		if rt.ValueSet != "" {
			values, ok := c.ValueSets[rt.ValueSet]
			if !ok {
				return nil, errors.Newf(errors.ErrCatalogParse, "rule type %q references unknown value set %q", rt.Key, rt.ValueSet).
					WithDetails(map[string]interface{}{"rule_type": rt.Key, "value_set": rt.ValueSet})
			}
			rt.Values = values
		}
		c.index[rt.Key] = i
	}
	return &c, nil
}

// Lookup returns the rule type with the given key
func (c *Catalog) Lookup(key string) (RuleType, bool) {
	i, ok := c.index[key]
	if !ok {
		return RuleType{}, false
	}
	return c.RuleTypes[i], true
}

// Keys returns the rule type keys in catalog order
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.RuleTypes))
	for i, rt := range c.RuleTypes {
		keys[i] = rt.Key
	}
	return keys
}

// Values returns the enumerated element values for a select-style rule type
func (c *Catalog) Values(key string) []string {
	rt, ok := c.Lookup(key)
	if !ok || rt.Input != InputSelect {
		return nil
	}
	return rt.Values
}

// IsSelect reports whether the element of key is chosen from a list
func (c *Catalog) IsSelect(key string) bool {
	rt, ok := c.Lookup(key)
	return ok && rt.Input == InputSelect
}

// SamplePresets returns the presets text used to pre-fill the form. Rule
// types with per-element samples (the blacklist) use the sample for
// element, or for their first value when element has none.
func (c *Catalog) SamplePresets(key, element string) string {
	rt, ok := c.Lookup(key)
	if !ok {
		return ""
	}
	if byElement, ok := c.ElementPresets[key]; ok {
		if p, ok := byElement[element]; ok {
			return p
		}
		if len(rt.Values) > 0 {
			return byElement[rt.Values[0]]
		}
		return ""
	}
	if len(rt.Presets) == 0 {
		return ""
	}
	return rt.Presets[0]
}

// SampleElement returns a sample element for free-text rule types. Select
// types return "" because the user has to pick a value.
func (c *Catalog) SampleElement(key string) string {
	rt, ok := c.Lookup(key)
	if !ok || rt.Input == InputSelect || len(rt.Values) == 0 {
		return ""
	}
	return rt.Values[0]
}

// HasElementPresets reports whether key pre-fills presets per element
func (c *Catalog) HasElementPresets(key string) bool {
	_, ok := c.ElementPresets[key]
	return ok
}

// ValueSetNames returns the names of the value sets, sorted
func (c *Catalog) ValueSetNames() []string {
	names := make([]string, 0, len(c.ValueSets))
	for name := range c.ValueSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
