package models

import "strings"

// OutputMode selects what an export run produces.
type OutputMode string

const (
	OutputModeExcel  OutputMode = "excel"  // one workbook, one sheet per state
	OutputModeJekyll OutputMode = "jekyll" // Markdown documents with YAML front matter
)

// ParseOutputMode resolves a flag value or prompt answer to an OutputMode.
// The numbered menu answers "1" and "2" are accepted alongside the mode names.
func ParseOutputMode(s string) (OutputMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", string(OutputModeExcel):
		return OutputModeExcel, true
	case "2", string(OutputModeJekyll):
		return OutputModeJekyll, true
	}
	return "", false
}

// DefaultOutput returns the output location offered when none is given.
func (m OutputMode) DefaultOutput() string {
	if m == OutputModeJekyll {
		return "site"
	}
	return "submissions.xlsx"
}
