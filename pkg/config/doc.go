// Package config loads pdarules settings.
//
// Values are layered, later sources winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file: --config, or $XDG_CONFIG_HOME/pdarules/config.toml
//  3. PDARULES_* environment variables (PDARULES_BUILDER_MODE_LEVEL sets
//     builder.mode_level)
package config
