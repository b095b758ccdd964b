package lead

import "strings"

// ParseColumn splits one pasted column into its surviving lines: split on
// line breaks, trim each line, drop lines that are empty after trimming.
// Relative order is preserved. Never fails; empty input yields no lines.
func ParseColumn(raw string) []string {
	if raw == "" {
		return nil
	}

	lines := strings.Split(raw, "\n")
	parsed := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parsed = append(parsed, line)
	}

	if len(parsed) == 0 {
		return nil
	}
	return parsed
}
