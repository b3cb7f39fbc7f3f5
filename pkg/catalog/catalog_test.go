package catalog_test

import (
	"testing"

	"github.com/arthur-debert/pdarules/pkg/catalog"
	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := catalog.Default()

	assert.Equal(t, []string{
		"npcFormID", "npc", "factionFemale", "factionMale",
		"npcPluginFemale", "npcPluginMale", "raceFemale", "raceMale", "blacklisted",
	}, c.Keys())
	assert.Equal(t, []string{"blacklist", "races"}, c.ValueSetNames())
}

func TestSelectTypes(t *testing.T) {
	c := catalog.Default()

	for _, key := range []string{"raceFemale", "raceMale", "blacklisted"} {
		assert.True(t, c.IsSelect(key), key)
		assert.NotEmpty(t, c.Values(key), key)
	}
	assert.False(t, c.IsSelect("npc"))
	assert.Nil(t, c.Values("npc"))

	races := c.Values("raceFemale")
	assert.Equal(t, "NordRace", races[0])
	assert.Equal(t, catalog.CustomValue, races[len(races)-1])
	assert.Contains(t, races, "00UBE_ArgonianRaceVampire")
}

func TestSamplePresets(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		key, element, want string
	}{
		{"raceFemale", "", "Nordic Female,Orcish Female"},
		{"npc", "Lydia", "Custom Preset 1,Custom Preset 2"},
		{"blacklisted", "", "Mjoll,Serana"},
		{"blacklisted", "OutfitsFromORefit", "LS Force Naked,OBody Nude 32"},
		{"blacklisted", "outfitsForceRefit", "Nihon - Jacket,TB Cloth [Black]"},
		{"blacklisted", "NotACategory", "Mjoll,Serana"},
		{"unknown", "", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.SamplePresets(tt.key, tt.element), "%s/%s", tt.key, tt.element)
	}
}

func TestSampleElement(t *testing.T) {
	c := catalog.Default()

	assert.Equal(t, "Serana", c.SampleElement("npc"))
	assert.Equal(t, "xx0001", c.SampleElement("npcFormID"))
	assert.Equal(t, "", c.SampleElement("raceMale"))
	assert.Equal(t, "", c.SampleElement("unknown"))
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"missing_key":       "[[rule_types]]\nlabel = \"x\"\n",
		"duplicate":         "[[rule_types]]\nkey = \"a\"\n[[rule_types]]\nkey = \"a\"\n",
		"unknown_value_set": "[[rule_types]]\nkey = \"a\"\ninput = \"select\"\nvalue_set = \"nope\"\n",
		"unknown_field":     "colour = \"red\"\n",
		"bad_toml":          "[[rule_types]\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(doc))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogParse), err.Error())
		})
	}

	_, err := catalog.Parse([]byte("[[rule_types]]\nkey = \"a\"\nvalue_set = \"races\"\n"))
	assert.Equal(t, "races", errors.GetErrorDetails(err)["value_set"])
}

func TestParse_DefaultsInputToText(t *testing.T) {
	c, err := catalog.Parse([]byte("[[rule_types]]\nkey = \"npc\"\nvalues = [\"Lydia\"]\n"))
	require.NoError(t, err)

	rt, ok := c.Lookup("npc")
	require.True(t, ok)
	assert.Equal(t, catalog.InputText, rt.Input)
	assert.False(t, c.HasElementPresets("npc"))
}
