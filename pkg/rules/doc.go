// Package rules formats OBody NG Preset Distribution rules.
//
// A rule is one line of the PDA INI format:
//
//	<ruleType> = <element>|<preset,preset,...>|<mode>
//
// preceded by a generated comment line starting with ';' that describes the
// element and the mode in prose. Everything in this package is pure: no I/O,
// no global state.
package rules
