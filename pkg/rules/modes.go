package rules

// Level groups mode codes by how advanced they are. The form only offers
// the codes of the selected level.
type Level string

const (
	LevelBasic    Level = "basic"
	LevelMedium   Level = "medium"
	LevelAdvanced Level = "advanced"
)

// ParseLevel accepts basic, medium or advanced
func ParseLevel(s string) (Level, bool) {
	switch Level(s) {
	case LevelBasic, LevelMedium, LevelAdvanced:
		return Level(s), true
	}
	return "", false
}

// Includes reports whether a mode of level other is offered at level l
func (l Level) Includes(other Level) bool {
	switch l {
	case LevelAdvanced:
		return true
	case LevelMedium:
		return other == LevelBasic || other == LevelMedium
	default:
		return other == LevelBasic
	}
}

// Mode describes one known mode code
type Mode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Level       Level  `json:"level"`
}

// KnownModes is the closed mode vocabulary, in the order the form lists it.
// Codes outside this table are passed through literally and are treated as
// disabled by the PDA engine.
var KnownModes = []Mode{
	{Code: "", Description: "simple application", Level: LevelBasic},
	{Code: "x", Description: "simple application", Level: LevelBasic},
	{Code: "1", Description: "once", Level: LevelBasic},
	{Code: "0", Description: "disabled", Level: LevelBasic},
	{Code: "-", Description: "remove preset", Level: LevelMedium},
	{Code: "x-", Description: "unlimited remove", Level: LevelMedium},
	{Code: "*", Description: "remove element", Level: LevelAdvanced},
	{Code: "x*", Description: "unlimited element remove", Level: LevelAdvanced},
}

var modeIndex = func() map[string]Mode {
	idx := make(map[string]Mode, len(KnownModes))
	for _, m := range KnownModes {
		idx[m.Code] = m
	}
	return idx
}()

// LookupMode returns the known mode for code
func LookupMode(code string) (Mode, bool) {
	m, ok := modeIndex[code]
	return m, ok
}

// Describe returns the prose used in the comment line for a mode code.
// Unknown codes are returned unchanged.
func Describe(code string) string {
	if m, ok := modeIndex[code]; ok {
		return m.Description
	}
	return code
}

// ModesFor returns the modes offered at level
func ModesFor(level Level) []Mode {
	var out []Mode
	for _, m := range KnownModes {
		if level.Includes(m.Level) {
			out = append(out, m)
		}
	}
	return out
}
