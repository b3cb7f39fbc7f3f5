package config

import (
	"strings"
)

// GenerateConfigContent returns the defaults file with every value line
// commented out, ready to be saved as a user config
func GenerateConfigContent() string {
	lines := strings.Split(DefaultsContent(), "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "",
			strings.HasPrefix(trimmed, "#"),
			strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			out = append(out, line)
		default:
			out = append(out, "# "+line)
		}
	}

	return strings.Join(out, "\n")
}
