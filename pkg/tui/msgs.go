package tui

const (
	msgCopied           = "Copied to clipboard (%s)"
	msgCopyFailed       = "Could not copy to the clipboard"
	msgNothingToCopy    = "No rules to copy. Generate a rule first."
	msgNothingToExport  = "No rules to export. Generate a rule first."
	msgIncomplete       = "Complete all fields to generate the INI rule"
	msgCommitted        = "Added: %s"
	msgCleared          = "Rule buffer cleared"
	msgExported         = "Saved %s"
	msgConfirmOverwrite = "%s exists, press ctrl+s again to overwrite"
	msgModeLevel        = "Mode level: %s"

	helpLine = "tab/shift+tab move  ctrl+n add  ctrl+l clear  ctrl+y copy  ctrl+s save  ctrl+t mode level  esc quit"
)
