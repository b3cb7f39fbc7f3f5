package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Build rule lines for the OBody NG Preset Distribution Assistant"
	MsgRuleShort       = "Format a single rule"
	MsgBatchShort      = "Format the rules listed in a YAML file"
	MsgBuildShort      = "Build rules in an interactive form"
	MsgHighlightShort  = "Print rule text with syntax highlighting"
	MsgTypesShort      = "List the rule types"
	MsgModesShort      = "List the mode codes"
	MsgModesLong       = "Modes lists the mode codes and the description used in the rule comment. Use --level to show more advanced codes."
	MsgServeShort      = "Serve the rule builder over HTTP"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics, or the topic given as argument."
	MsgGenConfigShort  = "Print a commented configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Feedback
	MsgCopied          = "Copied %s to the clipboard (%s)"
	MsgSaved           = "Saved %s to %s"
	MsgConfigWritten   = "Wrote configuration to %s"
	MsgUnknownRuleType = "%q is not a known rule type, the rule is written as given"
	MsgBatchSkipped    = "Rule %d skipped: %s"
	MsgBatchSummary    = "%d of %d rules formatted"
	MsgNoRules         = "No rules were formatted."
	MsgServing         = "Serving on http://%s"
	MsgVersionFormat   = "pdarules version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrBatchFailed  = "%d of %d rules were skipped"
	MsgErrUnknownLevel = "unknown mode level %q (basic, medium, advanced)"
	MsgErrConfigExists = "%s already exists, use --force to replace it"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Configuration file (default $XDG_CONFIG_HOME/pdarules/config.toml)"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagType    = "Rule type, for example raceFemale or blacklisted"
	MsgFlagElement = "Element value the rule applies to"
	MsgFlagPresets = "Comma separated preset names"
	MsgFlagMode    = "Mode code (empty for simple application)"
	MsgFlagCopy    = "Copy the result to the clipboard"
	MsgFlagOutput  = "Save the result to FILE"
	MsgFlagForce   = "Replace FILE if it exists"
	MsgFlagLevel   = "Mode level to list: basic, medium or advanced"
	MsgFlagAddr    = "Address to listen on"
	MsgFlagWrite   = "Write the file to the user configuration path"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/rule-long.txt
	msgRuleLongRaw string
	MsgRuleLong    = strings.TrimSpace(msgRuleLongRaw)

	//go:embed msgs/rule-example.txt
	msgRuleExampleRaw string
	MsgRuleExample    = strings.TrimRight(msgRuleExampleRaw, "\n")

	//go:embed msgs/batch-long.txt
	msgBatchLongRaw string
	MsgBatchLong    = strings.TrimSpace(msgBatchLongRaw)

	//go:embed msgs/batch-example.txt
	msgBatchExampleRaw string
	MsgBatchExample    = strings.TrimRight(msgBatchExampleRaw, "\n")

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/highlight-long.txt
	msgHighlightLongRaw string
	MsgHighlightLong    = strings.TrimSpace(msgHighlightLongRaw)

	//go:embed msgs/serve-long.txt
	msgServeLongRaw string
	MsgServeLong    = strings.TrimSpace(msgServeLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
