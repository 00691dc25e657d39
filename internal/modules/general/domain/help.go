package domain

import "strings"

// HelpResult represents the help text listing the available commands.
type HelpResult struct {
	Message string
}

// NewHelpResult lists the given command names in order.
func NewHelpResult(commandNames []string) *HelpResult {
	quoted := make([]string, len(commandNames))
	for i, name := range commandNames {
		quoted[i] = "`/" + name + "`"
	}

	return &HelpResult{
		Message: "Currently available commands: " + strings.Join(quoted, ", ") + ".",
	}
}
